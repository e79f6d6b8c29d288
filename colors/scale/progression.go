// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// StepCount is the number of steps in every scale and progression.
const StepCount = 12

// Progression is an ordered sequence of exactly [StepCount] numeric
// values, one per scale step (a lightness or chroma channel).
type Progression [StepCount]float32

// Increasing reports whether the progression runs from its lowest
// value at the first step to its highest at the last.
func (p Progression) Increasing() bool {
	return p[StepCount-1] >= p[0]
}

// Monotonic reports whether the progression is monotonic
// (non-decreasing or non-increasing across all steps).
func (p Progression) Monotonic() bool {
	inc := p.Increasing()
	for i := 1; i < StepCount; i++ {
		if inc && p[i] < p[i-1] {
			return false
		}
		if !inc && p[i] > p[i-1] {
			return false
		}
	}
	return true
}

// TransposeStart returns the progression with its first element
// retargeted to the given value. Every other element is recomputed as
// the original value plus the endpoint delta scaled by the curve, so
// the curve controls how quickly the perturbation introduced at the
// first step decays across the rest of the progression. Monotonic
// ordering of the input is preserved.
func TransposeStart(to float32, p Progression, curve Curve) Progression {
	delta := to - p[0]
	var out Progression
	for i := range out {
		pos := float32(i) / (StepCount - 1)
		out[i] = p[i] + delta*curve.Eval(1-pos)
	}
	out[0] = to
	if p.Monotonic() {
		holdOrderFromStart(&out, p.Increasing())
	}
	return out
}

// TransposeEnd returns the progression with its last element
// retargeted to the given value, mirroring [TransposeStart].
func TransposeEnd(to float32, p Progression, curve Curve) Progression {
	delta := to - p[StepCount-1]
	var out Progression
	for i := range out {
		pos := float32(i) / (StepCount - 1)
		out[i] = p[i] + delta*curve.Eval(pos)
	}
	out[StepCount-1] = to
	if p.Monotonic() {
		holdOrderFromEnd(&out, p.Increasing())
	}
	return out
}

// holdOrderFromStart clamps values sweeping away from the anchored
// first element so the given ordering direction holds.
func holdOrderFromStart(p *Progression, inc bool) {
	for i := 1; i < StepCount; i++ {
		if inc && p[i] < p[i-1] {
			p[i] = p[i-1]
		}
		if !inc && p[i] > p[i-1] {
			p[i] = p[i-1]
		}
	}
}

// holdOrderFromEnd clamps values sweeping away from the anchored
// last element so the given ordering direction holds.
func holdOrderFromEnd(p *Progression, inc bool) {
	for i := StepCount - 2; i >= 0; i-- {
		if inc && p[i] > p[i+1] {
			p[i] = p[i+1]
		}
		if !inc && p[i] < p[i+1] {
			p[i] = p[i+1]
		}
	}
}
