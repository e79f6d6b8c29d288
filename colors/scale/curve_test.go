// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tonal-io/tonal/base/tolassert"
)

func TestCurveEndpoints(t *testing.T) {
	curves := []Curve{
		{0.42, 0, 0.58, 1},
		{0.65, 0, 1, 1},
		{0, 0, 1, 1},
		{1.0 / 3, 1.0 / 3, 2.0 / 3, 2.0 / 3},
	}
	for _, c := range curves {
		assert.Equal(t, float32(0), c.Eval(0))
		assert.Equal(t, float32(1), c.Eval(1))
		assert.Equal(t, float32(0), c.Eval(-0.5))
		assert.Equal(t, float32(1), c.Eval(1.5))
	}
}

func TestCurveLinear(t *testing.T) {
	// control points on the diagonal give the identity easing
	lin := Curve{1.0 / 3, 1.0 / 3, 2.0 / 3, 2.0 / 3}
	for _, x := range []float32{0.1, 0.25, 0.5, 0.75, 0.9} {
		tolassert.EqualTol(t, x, lin.Eval(x), 0.001)
	}
}

func TestCurveSymmetric(t *testing.T) {
	ease := Curve{0.42, 0, 0.58, 1}
	tolassert.EqualTol(t, float32(0.5), ease.Eval(0.5), 0.001)
	// symmetric about the center
	tolassert.EqualTol(t, 1-ease.Eval(0.25), ease.Eval(0.75), 0.001)
}

func TestCurveMonotonic(t *testing.T) {
	curves := []Curve{
		{0.42, 0, 0.58, 1},
		{0.65, 0, 1, 1},
		{0.25, 0.1, 0.25, 1},
	}
	for _, c := range curves {
		prev := float32(0)
		for i := 1; i <= 100; i++ {
			v := c.Eval(float32(i) / 100)
			assert.GreaterOrEqual(t, v, prev, "curve %v at %d", c, i)
			prev = v
		}
	}
}
