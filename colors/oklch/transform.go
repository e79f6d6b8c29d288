// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklch

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/tonal-io/tonal/colors/cie"
)

// LinearToLab converts linear-light sRGB components to the cartesian
// OKLab coordinates: lightness, then the green-red and blue-yellow
// opponent axes.
func LinearToLab(r, g, b float32) (l, a, bb float32) {
	lm := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	mm := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	sm := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math32.Cbrt(lm)
	mp := math32.Cbrt(mm)
	sp := math32.Cbrt(sm)

	l = 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	a = 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	bb = 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp
	return
}

// LabToLinear converts cartesian OKLab coordinates to linear-light
// sRGB components, which may lie outside 0-1 for out-of-gamut colors.
func LabToLinear(l, a, bb float32) (r, g, b float32) {
	lp := l + 0.3963377774*a + 0.2158037573*bb
	mp := l - 0.1055613458*a - 0.0638541728*bb
	sp := l - 0.0894841775*a - 1.2914855480*bb

	lm := lp * lp * lp
	mm := mp * mp * mp
	sm := sp * sp * sp

	r = 4.0767416621*lm - 3.3077115913*mm + 0.2309699292*sm
	g = -1.2684380046*lm + 2.6097574011*mm - 0.3413193965*sm
	b = -0.0041960863*lm - 0.7034186147*mm + 1.7076147010*sm
	return
}

// SRGBToLab converts sRGB gamma-corrected components to cartesian
// OKLab coordinates.
func SRGBToLab(r, g, b float32) (l, a, bb float32) {
	rl, gl, bl := cie.SRGBToLinear(r, g, b)
	return LinearToLab(rl, gl, bl)
}

// Lab returns the cartesian OKLab coordinates of the color.
func (o OKLCH) Lab() (l, a, b float32) {
	hr := o.H * (math.Pi / 180)
	return o.L, o.C * math32.Cos(hr), o.C * math32.Sin(hr)
}

// FromLab returns the OKLCH color for the given cartesian OKLab
// coordinates, fit into the sRGB gamut.
func FromLab(l, a, b float32) OKLCH {
	c := math32.Hypot(a, b)
	h := math32.Atan2(b, a) * (180 / math.Pi)
	if h < 0 {
		h += 360
	}
	return New(l, c, h)
}

// LCHToLinear converts OKLCH coordinates to linear-light sRGB
// components, which may lie outside 0-1 for out-of-gamut colors.
func LCHToLinear(l, c, h float32) (r, g, b float32) {
	hr := h * (math.Pi / 180)
	return LabToLinear(l, c*math32.Cos(hr), c*math32.Sin(hr))
}

// SolveToRGB returns the sRGB gamma-corrected 0-1 components for the
// given OKLCH coordinates. If the requested chroma is not representable
// at the given lightness and hue, the chroma is reduced by binary search
// at constant lightness and hue until the color is inside the gamut.
func SolveToRGB(l, c, h float32) (r, g, b float32) {
	if l <= 0 {
		return 0, 0, 0
	}
	if l >= 1 {
		return 1, 1, 1
	}
	if !inSRGB(l, c, h) {
		lo, hi := float32(0), c
		for i := 0; i < 16; i++ {
			mid := (lo + hi) / 2
			if inSRGB(l, mid, h) {
				lo = mid
			} else {
				hi = mid
			}
		}
		c = lo
	}
	rl, gl, bl := LCHToLinear(l, c, h)
	return cie.SRGBFromLinear(clamp01(rl), clamp01(gl), clamp01(bl))
}

// gamutEps absorbs float32 rounding at the gamut boundary.
const gamutEps = 1e-4

func inSRGB(l, c, h float32) bool {
	rl, gl, bl := LCHToLinear(l, c, h)
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
