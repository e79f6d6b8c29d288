// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Curve is a cubic bezier easing curve mapping the unit interval to
// itself, in the CSS cubic-bezier form: the first and last control
// points are fixed at (0,0) and (1,1), and X1, Y1, X2, Y2 give the two
// middle control points. Eval(0) == 0 and Eval(1) == 1 always hold.
type Curve struct {
	X1, Y1, X2, Y2 float32
}

// Eval returns the curve value at the given position x. Positions
// outside the unit interval are clamped to the endpoints.
func (c Curve) Eval(x float32) float32 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return bezierComp(c.solveT(x), c.Y1, c.Y2)
}

// bezierComp evaluates one component of the cubic bezier with endpoint
// values 0 and 1 and middle control values p1 and p2, at parameter t.
func bezierComp(t, p1, p2 float32) float32 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

// bezierDeriv is the derivative of bezierComp with respect to t.
func bezierDeriv(t, p1, p2 float32) float32 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// solveT finds the bezier parameter t at which the x component equals
// the given value, using Newton iteration with a bisection fallback.
func (c Curve) solveT(x float32) float32 {
	t := x
	for i := 0; i < 8; i++ {
		d := bezierDeriv(t, c.X1, c.X2)
		if d < 1e-6 {
			break
		}
		err := bezierComp(t, c.X1, c.X2) - x
		if abs(err) < 1e-6 {
			return t
		}
		t -= err / d
		if t < 0 || t > 1 {
			break
		}
	}
	lo, hi := float32(0), float32(1)
	t = x
	for i := 0; i < 32; i++ {
		if bezierComp(t, c.X1, c.X2) < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
