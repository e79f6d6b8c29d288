// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE standard colorimetry conversions:
// sRGB gamma linearization, XYZ tristimulus coordinates, the
// Display P3 primaries, and relative luminance.
package cie

import "github.com/chewxy/math32"

// SRGBToLinearComp converts an sRGB gamma-corrected component
// in the 0-1 range to its linear-light form.
func SRGBToLinearComp(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear-light component in the
// 0-1 range to its sRGB gamma-corrected form.
func SRGBFromLinearComp(v float32) float32 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math32.Pow(v, 1/2.4) - 0.055
}

// SRGBToLinear converts sRGB gamma-corrected components
// to linear-light values.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts linear-light components to
// sRGB gamma-corrected values.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// LuminanceY returns the CIE relative luminance Y, scaled 0-100,
// of the given sRGB gamma-corrected components.
func LuminanceY(r, g, b float32) float32 {
	rl, gl, bl := SRGBToLinear(r, g, b)
	return 100 * (0.21263901*rl + 0.71516868*gl + 0.07219232*bl)
}

// ContrastRatioOfYs returns the contrast ratio of two relative
// luminance Y values scaled 0-100. The ratio is between 1 and 21.
func ContrastRatioOfYs(a, b float32) float32 {
	lighter := math32.Max(a, b)
	darker := math32.Min(a, b)
	return (lighter + 5) / (darker + 5)
}
