// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// The canonical progressions below are the hand-tuned reference scales
// that every generated scale is derived from. Lightness values are
// absolute OKLab lightness per step; chroma values are multipliers of
// the seed color's chroma, peaking at the solid step. Light-appearance
// progressions run lightest to darkest, dark-appearance ones the
// inverse.

var (
	lightAccentLightness = Progression{
		0.9939, 0.9827, 0.9624, 0.9350, 0.9016, 0.8614,
		0.8115, 0.7440, 0.6496, 0.6100, 0.5263, 0.3593,
	}

	lightGrayLightness = Progression{
		0.9911, 0.9817, 0.9550, 0.9318, 0.9099, 0.8862,
		0.8540, 0.7912, 0.6451, 0.6049, 0.5030, 0.2425,
	}

	darkAccentLightness = Progression{
		0.1912, 0.2132, 0.2648, 0.3072, 0.3501, 0.3950,
		0.4516, 0.5251, 0.6496, 0.6830, 0.7826, 0.9053,
	}

	darkGrayLightness = Progression{
		0.1776, 0.2122, 0.2542, 0.2832, 0.3130, 0.3470,
		0.3960, 0.4880, 0.5411, 0.5866, 0.7700, 0.9491,
	}

	lightAccentChroma = Progression{
		0.04, 0.09, 0.21, 0.33, 0.45, 0.57,
		0.70, 0.86, 1.00, 0.95, 0.88, 0.65,
	}

	darkAccentChroma = Progression{
		0.15, 0.22, 0.38, 0.50, 0.60, 0.70,
		0.80, 0.92, 1.00, 0.96, 0.90, 0.65,
	}

	grayChroma = Progression{
		0.30, 0.35, 0.45, 0.55, 0.65, 0.75,
		0.85, 1.00, 1.00, 1.00, 0.90, 0.70,
	}
)

// backgroundCurve shapes how the perturbation from anchoring step 1 to
// the real background decays: it hugs the anchored end, so only the
// first few steps track the background strongly.
var backgroundCurve = Curve{0.65, 0, 1, 1}

// seedCurve shapes how anchoring step 12 to the real seed lightness
// redistributes across the scale. A strong ease-in keeps the
// perturbation near the dark end, so the light steps stay put.
var seedCurve = Curve{0.7, 0, 0.84, 0}

func accentLightness(a Appearance) Progression {
	if a == Dark {
		return darkAccentLightness
	}
	return lightAccentLightness
}

func grayLightness(a Appearance) Progression {
	if a == Dark {
		return darkGrayLightness
	}
	return lightGrayLightness
}

func accentChroma(a Appearance) Progression {
	if a == Dark {
		return darkAccentChroma
	}
	return lightAccentChroma
}
