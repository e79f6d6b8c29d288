// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package p3

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tonal-io/tonal/base/tolassert"
)

func inGamut(c Color) bool {
	in := func(v float32) bool { return v >= 0 && v <= 1 }
	return in(c.R) && in(c.G) && in(c.B)
}

func TestFromColor(t *testing.T) {
	red := FromColor(color.RGBA{255, 0, 0, 255})
	assert.True(t, inGamut(red))
	tolassert.EqualTol(t, float32(0.9175), red.R, 0.005)
	tolassert.EqualTol(t, float32(0.2003), red.G, 0.005)

	white := FromColor(color.RGBA{255, 255, 255, 255})
	tolassert.EqualTol(t, float32(1), white.R, 0.005)
	tolassert.EqualTol(t, float32(1), white.G, 0.005)
	tolassert.EqualTol(t, float32(1), white.B, 0.005)
}

func TestFromOKLCH(t *testing.T) {
	// highly saturated colors must gamut-map, not fail
	for _, hue := range []float32{0, 30, 90, 150, 210, 270, 330} {
		c := FromOKLCH(0.7, 0.5, hue)
		assert.True(t, inGamut(c), "hue %g", hue)
	}

	w := FromOKLCH(1, 0.3, 100)
	assert.Equal(t, Color{1, 1, 1, 1}, w)
	k := FromOKLCH(0, 0.3, 100)
	assert.Equal(t, Color{0, 0, 0, 1}, k)
}

func TestString(t *testing.T) {
	c := Color{R: 0.5, G: 0.25, B: 1, A: 1}
	assert.Equal(t, "color(display-p3 0.5000 0.2500 1.0000)", c.String())
	assert.Equal(t, "color(display-p3 0.5000 0.2500 1.0000 / 0.5000)", c.WithAlpha(0.5).String())
}
