// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklch implements the OKLCH color space, the cylindrical
// form of the OKLab perceptual color space, in which equal numeric
// steps correspond to roughly equal perceived differences. It is
// the basis for building perceptually even color scales.
package oklch

import (
	"fmt"
	"image/color"
	"math"

	"github.com/chewxy/math32"
)

// OKLCH is a color in the OKLCH perceptual color space, with a cached
// sRGB representation.
type OKLCH struct {

	// L is the perceptual lightness, from 0 for black to 1 for white.
	L float32

	// C is the chroma, or colorfulness. Grayscale colors have no chroma,
	// and fully saturated ones reach about 0.37. The maximum representable
	// chroma varies as a function of hue and lightness.
	C float32

	// H is the hue angle in degrees, from 0 to 360.
	H float32

	// sRGB standard gamma-corrected 0-1 normalized RGB representation
	// of the color. Components are not premultiplied by alpha.
	R, G, B, A float32
}

// New returns a new OKLCH color for the given lightness (0-1),
// chroma, and hue (0-360 degrees). It also computes and caches the
// sRGB representation, keeping it within the sRGB gamut, which may
// cause the chroma to decrease until it is inside the gamut.
func New(l, c, h float32) OKLCH {
	r, g, b := SolveToRGB(l, c, h)
	return SRGBToOKLCH(r, g, b)
}

// FromColor constructs a new OKLCH color from a standard [color.Color].
func FromColor(c color.Color) OKLCH {
	o := OKLCH{}
	o.SetUint32(c.RGBA())
	return o
}

// Model is the standard [color.Model] that converts colors to OKLCH.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if o, ok := c.(OKLCH); ok {
		return o
	}
	return FromColor(c)
}

// RGBA implements the color.Color interface.
// It performs the premultiplication of the RGB components
// by alpha at this point.
func (o OKLCH) RGBA() (r, g, b, a uint32) {
	r = uint32(o.R*o.A*65535 + 0.5)
	g = uint32(o.G*o.A*65535 + 0.5)
	b = uint32(o.B*o.A*65535 + 0.5)
	a = uint32(o.A*65535 + 0.5)
	return
}

// AsRGBA returns the color as a standard color.RGBA.
func (o OKLCH) AsRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(o.R*o.A*255 + 0.5),
		G: uint8(o.G*o.A*255 + 0.5),
		B: uint8(o.B*o.A*255 + 0.5),
		A: uint8(o.A*255 + 0.5),
	}
}

// SetUint32 sets the components from unsigned 32bit integers
// (alpha-premultiplied), as returned by [color.Color.RGBA].
func (o *OKLCH) SetUint32(r, g, b, a uint32) {
	if a == 0 {
		*o = SRGBToOKLCH(0, 0, 0)
		o.A = 0
		return
	}
	fa := float32(a) / 65535
	fr := (float32(r) / 65535) / fa
	fg := (float32(g) / 65535) / fa
	fb := (float32(b) / 65535) / fa
	*o = SRGBToOKLCH(fr, fg, fb)
	o.A = fa
}

// WithLightness returns the color with the given lightness (0-1).
// Chroma may decrease to keep the result within the sRGB gamut.
func (o OKLCH) WithLightness(l float32) OKLCH {
	return New(l, o.C, o.H)
}

// WithChroma returns the color with the given chroma, which may be
// reduced to keep the result within the sRGB gamut.
func (o OKLCH) WithChroma(c float32) OKLCH {
	return New(o.L, c, o.H)
}

// WithHue returns the color with the given hue in degrees. Chroma may
// decrease because chroma has a different maximum for any given hue
// and lightness.
func (o OKLCH) WithHue(h float32) OKLCH {
	return New(o.L, o.C, h)
}

// SRGBToOKLCH returns an OKLCH color from the given sRGB coordinates.
// The RGB value range is 0-1, and the values have gamma correction.
// Alpha is always 1.
func SRGBToOKLCH(r, g, b float32) OKLCH {
	l, a, bb := SRGBToLab(r, g, b)
	c := math32.Hypot(a, bb)
	h := math32.Atan2(bb, a) * (180 / math.Pi)
	if h < 0 {
		h += 360
	}
	return OKLCH{L: l, C: c, H: h, R: r, G: g, B: b, A: 1}
}

func (o OKLCH) String() string {
	return fmt.Sprintf("oklch(%g, %g, %g)", o.L, o.C, o.H)
}
