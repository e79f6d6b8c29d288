// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"image/color"

	"github.com/tonal-io/tonal/base/errors"
)

// ErrStepOutOfRange is the error returned for step indexes outside
// the 1 to [StepCount] range.
var ErrStepOutOfRange = errors.New("step out of range")

// OverlayKind is the kind of static overlay ramp: black or white.
type OverlayKind int32

const (
	// OverlayBlack is the black overlay ramp, for shading content
	// on light surfaces.
	OverlayBlack OverlayKind = iota

	// OverlayWhite is the white overlay ramp, for lightening content
	// on dark surfaces.
	OverlayWhite
)

func (k OverlayKind) String() string {
	if k == OverlayWhite {
		return "white"
	}
	return "black"
}

// Overlays holds the two static 12-step translucent overlay ramps.
// They are constant across all invocations and appearances, and are
// not derived from any seed color.
type Overlays struct {
	Black [StepCount]color.NRGBA
	White [StepCount]color.NRGBA
}

// The per-step alpha values of the fixed overlay ramps.
var (
	blackOverlayAlphas = [StepCount]uint8{
		0x03, 0x07, 0x0c, 0x12, 0x17, 0x1d,
		0x24, 0x38, 0x70, 0x7a, 0x90, 0xe8,
	}
	whiteOverlayAlphas = [StepCount]uint8{
		0x00, 0x09, 0x12, 0x1b, 0x22, 0x2b,
		0x39, 0x51, 0x79, 0x9c, 0xbe, 0xeb,
	}
)

// GenerateOverlays returns the two static overlay ramps.
func GenerateOverlays() Overlays {
	var ov Overlays
	for i := 0; i < StepCount; i++ {
		ov.Black[i] = color.NRGBA{A: blackOverlayAlphas[i]}
		ov.White[i] = color.NRGBA{R: 255, G: 255, B: 255, A: whiteOverlayAlphas[i]}
	}
	return ov
}

// OverlayColor returns the overlay color of the given kind at the
// given 1-based step. It returns an error wrapping [ErrStepOutOfRange]
// if the step is outside 1 to [StepCount].
func OverlayColor(kind OverlayKind, step int) (color.NRGBA, error) {
	if step < 1 || step > StepCount {
		return color.NRGBA{}, fmt.Errorf("scale.OverlayColor: step %d: %w", step, ErrStepOutOfRange)
	}
	if kind == OverlayWhite {
		return color.NRGBA{R: 255, G: 255, B: 255, A: whiteOverlayAlphas[step-1]}, nil
	}
	return color.NRGBA{A: blackOverlayAlphas[step-1]}, nil
}
