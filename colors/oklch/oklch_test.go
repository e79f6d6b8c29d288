// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklch

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tonal-io/tonal/base/tolassert"
)

func TestSRGBToOKLCH(t *testing.T) {
	w := SRGBToOKLCH(1, 1, 1)
	tolassert.EqualTol(t, float32(1), w.L, 0.005)
	tolassert.EqualTol(t, float32(0), w.C, 0.005)

	k := SRGBToOKLCH(0, 0, 0)
	tolassert.EqualTol(t, float32(0), k.L, 0.005)
	tolassert.EqualTol(t, float32(0), k.C, 0.005)

	r := SRGBToOKLCH(1, 0, 0)
	tolassert.EqualTol(t, float32(0.62796), r.L, 0.005)
	tolassert.EqualTol(t, float32(0.25768), r.C, 0.005)
	tolassert.EqualTol(t, float32(29.23), r.H, 0.5)

	g := SRGBToOKLCH(0, 1, 0)
	tolassert.EqualTol(t, float32(0.86644), g.L, 0.005)
	tolassert.EqualTol(t, float32(0.29483), g.C, 0.005)
	tolassert.EqualTol(t, float32(142.50), g.H, 0.5)

	b := SRGBToOKLCH(0, 0, 1)
	tolassert.EqualTol(t, float32(0.45201), b.L, 0.005)
	tolassert.EqualTol(t, float32(0.31321), b.C, 0.005)
	tolassert.EqualTol(t, float32(264.05), b.H, 0.5)
}

// expectClose asserts two 8-bit colors match within one unit per channel.
func expectClose(t *testing.T, want, have color.RGBA, str string) {
	t.Helper()
	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			d = -d
		}
		return d
	}
	if diff(want.R, have.R) > 1 || diff(want.G, have.G) > 1 || diff(want.B, have.B) > 1 || want.A != have.A {
		t.Errorf("color mismatch: want %v, have %v for %s", want, have, str)
	}
}

func TestRoundTrip(t *testing.T) {
	hexes := []color.RGBA{
		{0, 0x66, 0xcc, 255},
		{0x6b, 0x72, 0x80, 255},
		{255, 255, 255, 255},
		{0, 0, 0, 255},
		{0x12, 0x34, 0x56, 255},
		{0xfa, 0xe8, 0xff, 255},
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
	}
	for _, c := range hexes {
		o := FromColor(c)
		expectClose(t, c, o.AsRGBA(), o.String())
		// reconstructing from the perceptual coordinates alone
		// reproduces the color within rounding tolerance
		expectClose(t, c, New(o.L, o.C, o.H).AsRGBA(), o.String())
	}
}

func TestGamutFit(t *testing.T) {
	// chroma far beyond what sRGB can represent at this lightness
	o := New(0.5, 0.4, 30)
	assert.LessOrEqual(t, o.C, float32(0.4))
	tolassert.EqualTol(t, float32(0.5), o.L, 0.01)
	tolassert.EqualTol(t, float32(30), o.H, 1.0)

	// representable colors keep their chroma
	in := New(0.5, 0.05, 30)
	tolassert.EqualTol(t, float32(0.05), in.C, 0.005)

	// achromatic
	gray := New(0.5, 0, 123)
	tolassert.EqualTol(t, float32(0), gray.C, 0.005)
}

func TestWith(t *testing.T) {
	o := New(0.6, 0.1, 250)
	tolassert.EqualTol(t, float32(0.8), o.WithLightness(0.8).L, 0.01)
	tolassert.EqualTol(t, float32(0.05), o.WithChroma(0.05).C, 0.005)
	tolassert.EqualTol(t, float32(120), o.WithHue(120).H, 1.0)
}

func TestContrastRatio(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	tolassert.EqualTol(t, float32(21), ContrastRatio(white, black), 0.01)
	tolassert.EqualTol(t, float32(21), ContrastRatio(black, white), 0.01)
	tolassert.EqualTol(t, float32(1), ContrastRatio(white, white), 0.01)

	tolassert.EqualTol(t, float32(21), LightnessContrastRatio(0, 1), 0.01)
	tolassert.EqualTol(t, float32(1), LightnessContrastRatio(0.5, 0.5), 0.01)
}
