// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/tonal-io/tonal/colors"
	"github.com/tonal-io/tonal/colors/p3"
)

// AlphaColor returns the translucent color that reproduces the given
// solid color when alpha-composited over the given opaque background.
// The alpha is the smallest that keeps every back-solved channel in
// range, so the result is as translucent as possible; compositing it
// over the background reproduces the solid color within one unit per
// channel.
func AlphaColor(solid, background color.Color) color.NRGBA {
	s := colors.AsRGBA(solid)
	b := colors.AsRGBA(background)

	need := max(
		channelAlpha(float32(s.R)/255, float32(b.R)/255),
		channelAlpha(float32(s.G)/255, float32(b.G)/255),
		channelAlpha(float32(s.B)/255, float32(b.B)/255),
	)
	if need <= 0 {
		// solid equals background; fully transparent reproduces it
		return color.NRGBA{R: s.R, G: s.G, B: s.B, A: 0}
	}
	// round alpha up to the next representable 1/255 so the solved
	// channels stay inside 0-255
	a := uint8(math32.Ceil(need * 255))
	af := float32(a) / 255
	return color.NRGBA{
		R: solveChannel(float32(s.R), float32(b.R), af),
		G: solveChannel(float32(s.G), float32(b.G), af),
		B: solveChannel(float32(s.B), float32(b.B), af),
		A: a,
	}
}

// channelAlpha returns the minimum alpha at which the 0-1 solid
// channel value s remains reachable over the background value b.
func channelAlpha(s, b float32) float32 {
	switch {
	case s > b:
		return (s - b) / (1 - b)
	case s < b:
		return (b - s) / b
	default:
		return 0
	}
}

func solveChannel(s, b, a float32) uint8 {
	v := (s - (1-a)*b) / a
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v + 0.5)
}

// alphaColorP3 is [AlphaColor] in Display P3 float components, used
// for the wide-gamut alpha sequences. No quantization applies.
func alphaColorP3(solid, background p3.Color) p3.Color {
	a := max(
		channelAlpha(solid.R, background.R),
		channelAlpha(solid.G, background.G),
		channelAlpha(solid.B, background.B),
	)
	if a <= 0 {
		return solid.WithAlpha(0)
	}
	return p3.Color{
		R: solveChannelF(solid.R, background.R, a),
		G: solveChannelF(solid.G, background.G, a),
		B: solveChannelF(solid.B, background.B, a),
		A: a,
	}
}

func solveChannelF(s, b, a float32) float32 {
	v := (s - (1-a)*b) / a
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
