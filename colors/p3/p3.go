// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package p3 provides a Display P3 wide-gamut color representation.
// Display P3 covers more colors than standard sRGB; colors outside it
// are gamut-mapped by reducing chroma at constant lightness and hue.
package p3

import (
	"fmt"
	"image/color"

	"github.com/tonal-io/tonal/colors/cie"
	"github.com/tonal-io/tonal/colors/oklch"
)

// Color is a color in the Display P3 color space.
type Color struct {

	// R, G, B are the gamma-corrected 0-1 normalized Display P3
	// components of the color. The same transfer function as sRGB
	// applies.
	R, G, B float32

	// A is the 0-1 alpha. Components are not premultiplied by alpha.
	A float32
}

// FromOKLCH returns the Display P3 color for the given OKLCH
// coordinates: lightness (0-1), chroma, and hue (0-360 degrees).
// If the requested chroma lies outside the P3 gamut boundary, it is
// reduced by binary search at constant lightness and hue until the
// color is representable.
func FromOKLCH(l, c, h float32) Color {
	if l <= 0 {
		return Color{0, 0, 0, 1}
	}
	if l >= 1 {
		return Color{1, 1, 1, 1}
	}
	if !inP3(l, c, h) {
		lo, hi := float32(0), c
		for i := 0; i < 16; i++ {
			mid := (lo + hi) / 2
			if inP3(l, mid, h) {
				lo = mid
			} else {
				hi = mid
			}
		}
		c = lo
	}
	rl, gl, bl := lchToP3Lin(l, c, h)
	r, g, b := cie.SRGBFromLinear(clamp01(rl), clamp01(gl), clamp01(bl))
	return Color{r, g, b, 1}
}

// FromColor returns the Display P3 representation of a standard
// [color.Color]. sRGB colors are always inside the P3 gamut, so no
// chroma reduction occurs.
func FromColor(c color.Color) Color {
	o := oklch.FromColor(c)
	rl, gl, bl := cie.SRGBToLinear(o.R, o.G, o.B)
	x, y, z := cie.SRGBLinToXYZ(rl, gl, bl)
	pr, pg, pb := cie.XYZToP3Lin(x, y, z)
	r, g, b := cie.SRGBFromLinear(clamp01(pr), clamp01(pg), clamp01(pb))
	return Color{r, g, b, o.A}
}

// WithAlpha returns the color with the given 0-1 alpha.
func (c Color) WithAlpha(a float32) Color {
	c.A = clamp01(a)
	return c
}

// String returns the color as a CSS color(display-p3 ...) function,
// with the alpha component included only when translucent.
func (c Color) String() string {
	if c.A < 1 {
		return fmt.Sprintf("color(display-p3 %.4f %.4f %.4f / %.4f)", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("color(display-p3 %.4f %.4f %.4f)", c.R, c.G, c.B)
}

const gamutEps = 1e-4

func lchToP3Lin(l, c, h float32) (rl, gl, bl float32) {
	r, g, b := oklch.LCHToLinear(l, c, h)
	x, y, z := cie.SRGBLinToXYZ(r, g, b)
	return cie.XYZToP3Lin(x, y, z)
}

func inP3(l, c, h float32) bool {
	rl, gl, bl := lchToP3Lin(l, c, h)
	return inUnit(rl) && inUnit(gl) && inUnit(bl)
}

func inUnit(v float32) bool {
	return v >= -gamutEps && v <= 1+gamutEps
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
