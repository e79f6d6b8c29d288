// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklch

import (
	"image/color"

	"github.com/tonal-io/tonal/colors/cie"
)

// ContrastRatio returns the contrast ratio between the given two colors.
// The contrast ratio will be between 1 and 21.
func ContrastRatio(a, b color.Color) float32 {
	ao := FromColor(a)
	bo := FromColor(b)
	return cie.ContrastRatioOfYs(
		cie.LuminanceY(ao.R, ao.G, ao.B),
		cie.LuminanceY(bo.R, bo.G, bo.B),
	)
}

// LightnessContrastRatio returns the contrast ratio between two OKLab
// lightness values, which should be between 0 and 1 and will be clamped
// to such. The contrast ratio will be between 1 and 21.
func LightnessContrastRatio(a, b float32) float32 {
	a = clamp01(a)
	b = clamp01(b)
	// for achromatic colors, OKLab lightness is the cube root of the
	// relative luminance
	return cie.ContrastRatioOfYs(100*a*a*a, 100*b*b*b)
}
