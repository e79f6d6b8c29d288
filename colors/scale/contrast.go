// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"image/color"

	"github.com/tonal-io/tonal/colors/oklch"
)

// ContrastLight and ContrastDark are the two fixed foreground
// candidates that [SelectContrast] chooses between.
var (
	ContrastLight = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ContrastDark  = color.RGBA{R: 29, G: 29, B: 29, A: 255}
)

// SelectContrast returns whichever of [ContrastLight] and
// [ContrastDark] is more readable against the given color, by
// contrast ratio. Ties pick the dark candidate.
func SelectContrast(c color.Color) color.RGBA {
	light := oklch.ContrastRatio(c, ContrastLight)
	dark := oklch.ContrastRatio(c, ContrastDark)
	if dark >= light {
		return ContrastDark
	}
	return ContrastLight
}
