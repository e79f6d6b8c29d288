// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale generates perceptually tuned 12-step color scales
// from a set of seed colors: an accent, a neutral gray, and a
// background. Scales are built by anchoring canonical hand-tuned
// progressions onto the seeds through bezier-curve transposition,
// with translucent, wide-gamut, contrast, and surface variants
// derived from the solid steps.
package scale

import (
	"fmt"
	"image/color"
	"math"

	"github.com/chewxy/math32"

	"github.com/tonal-io/tonal/colors"
	"github.com/tonal-io/tonal/colors/oklch"
	"github.com/tonal-io/tonal/colors/p3"
)

// SolidStep is the 1-based designated solid step, the primary
// button and fill color of a scale. The contrast color is selected
// against it.
const SolidStep = 9

// Appearance is the light or dark mode a scale is generated for.
type Appearance int32

const (
	Light Appearance = iota
	Dark
)

func (a Appearance) String() string {
	if a == Dark {
		return "dark"
	}
	return "light"
}

// Config controls which optional parts of a [ColorScale] are
// populated. It never changes the numeric values of the parts that
// are populated.
type Config struct {

	// Alpha generates the per-step translucent variants.
	Alpha bool

	// WideGamut generates the Display P3 variants.
	WideGamut bool

	// GrayScale generates the 12-step gray scale and gray surface.
	GrayScale bool

	// Overlays includes the static black and white overlay ramps.
	Overlays bool
}

// DefaultConfig returns the default [Config], with every part
// enabled.
func DefaultConfig() *Config {
	return &Config{Alpha: true, WideGamut: true, GrayScale: true, Overlays: true}
}

// ColorScale is the complete per-appearance result of [Generate].
// Every 12-element sequence has exactly [StepCount] entries.
type ColorScale struct {

	// Appearance the scale was generated for.
	Appearance Appearance

	// Background is the seed background color.
	Background color.RGBA

	// Accent is the 12-step solid accent scale, lightest first in
	// light appearance and darkest first in dark appearance.
	Accent [StepCount]color.RGBA

	// AccentAlpha holds, per step, the translucent color that
	// reproduces the solid step when composited over Background.
	AccentAlpha [StepCount]color.NRGBA

	// AccentWide is the Display P3 accent scale.
	AccentWide [StepCount]p3.Color

	// AccentWideAlpha is the Display P3 translucent accent scale.
	AccentWideAlpha [StepCount]p3.Color

	// AccentContrast is the readable foreground for the solid step;
	// always exactly [ContrastLight] or [ContrastDark].
	AccentContrast color.RGBA

	// AccentSurface sits between Background and the first accent
	// step, for tinted panel backgrounds.
	AccentSurface color.RGBA

	// AccentSurfaceWide is the Display P3 accent surface.
	AccentSurfaceWide p3.Color

	// Gray is the 12-step neutral scale.
	Gray [StepCount]color.RGBA

	GrayAlpha     [StepCount]color.NRGBA
	GrayWide      [StepCount]p3.Color
	GrayWideAlpha [StepCount]p3.Color

	// GraySurface sits between Background and the first gray step.
	GraySurface color.RGBA

	// GraySurfaceWide is the Display P3 gray surface.
	GraySurfaceWide p3.Color

	// Overlays are the static black and white overlay ramps.
	Overlays Overlays
}

// step is the perceptual target of one scale step.
type step struct {
	l, c, h float32
}

// Generate builds the complete [ColorScale] for the given appearance
// from hex seed colors. A nil config is treated as [DefaultConfig].
// It returns an error wrapping [colors.ErrInvalidFormat], and no
// partial result, if any seed is malformed.
func Generate(appearance Appearance, accent, gray, background string, cfg *Config) (*ColorScale, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	ac, err := colors.FromHex(accent)
	if err != nil {
		return nil, fmt.Errorf("scale.Generate: accent: %w", err)
	}
	gc, err := colors.FromHex(gray)
	if err != nil {
		return nil, fmt.Errorf("scale.Generate: gray: %w", err)
	}
	bc, err := colors.FromHex(background)
	if err != nil {
		return nil, fmt.Errorf("scale.Generate: background: %w", err)
	}

	accentSeed := oklch.FromColor(ac)
	graySeed := oklch.FromColor(gc)
	bgSeed := oklch.FromColor(bc)

	s := &ColorScale{Appearance: appearance, Background: bc}

	accSteps := buildSteps(accentLightness(appearance), accentChroma(appearance), accentSeed, bgSeed)
	accSurface := surfaceStep(bgSeed, accSteps[0])
	for i, st := range accSteps {
		s.Accent[i] = oklch.New(st.l, st.c, st.h).AsRGBA()
	}
	s.AccentSurface = oklch.New(accSurface.l, accSurface.c, accSurface.h).AsRGBA()
	s.AccentContrast = SelectContrast(s.Accent[SolidStep-1])

	graySteps := buildSteps(grayLightness(appearance), grayChroma, graySeed, bgSeed)
	graySurface := surfaceStep(bgSeed, graySteps[0])
	if cfg.GrayScale {
		for i, st := range graySteps {
			s.Gray[i] = oklch.New(st.l, st.c, st.h).AsRGBA()
		}
		s.GraySurface = oklch.New(graySurface.l, graySurface.c, graySurface.h).AsRGBA()
	}

	if cfg.Alpha {
		for i := range s.Accent {
			s.AccentAlpha[i] = AlphaColor(s.Accent[i], bc)
		}
		if cfg.GrayScale {
			for i := range s.Gray {
				s.GrayAlpha[i] = AlphaColor(s.Gray[i], bc)
			}
		}
	}

	if cfg.WideGamut {
		bgWide := p3.FromColor(bc)
		for i, st := range accSteps {
			s.AccentWide[i] = p3.FromOKLCH(st.l, st.c, st.h)
		}
		s.AccentSurfaceWide = p3.FromOKLCH(accSurface.l, accSurface.c, accSurface.h)
		if cfg.Alpha {
			for i := range s.AccentWide {
				s.AccentWideAlpha[i] = alphaColorP3(s.AccentWide[i], bgWide)
			}
		}
		if cfg.GrayScale {
			for i, st := range graySteps {
				s.GrayWide[i] = p3.FromOKLCH(st.l, st.c, st.h)
			}
			s.GraySurfaceWide = p3.FromOKLCH(graySurface.l, graySurface.c, graySurface.h)
			if cfg.Alpha {
				for i := range s.GrayWide {
					s.GrayWideAlpha[i] = alphaColorP3(s.GrayWide[i], bgWide)
				}
			}
		}
	}

	if cfg.Overlays {
		s.Overlays = GenerateOverlays()
	}
	return s, nil
}

// buildSteps derives the per-step perceptual targets for one scale:
// the lightness channel is the canonical progression anchored at the
// start to the background lightness and at the end to the seed
// lightness; the chroma channel is the canonical multiplier ramp
// scaled by the seed chroma; the hue is carried from the seed.
func buildSteps(lightness, chromaMult Progression, seed, bg oklch.OKLCH) [StepCount]step {
	l := TransposeStart(bg.L, lightness, backgroundCurve)
	l = TransposeEnd(seed.L, l, seedCurve)
	var out [StepCount]step
	for i := range out {
		c := chromaMult[i] * seed.C
		if c < 0 {
			c = 0
		}
		out[i] = step{l: l[i], c: c, h: seed.H}
	}
	return out
}

// surfaceStep is the OKLab midpoint of the background and the scale's
// first step, which sits perceptually between the two.
func surfaceStep(bg oklch.OKLCH, first step) step {
	fo := oklch.New(first.l, first.c, first.h)
	bl, ba, bb := bg.Lab()
	fl, fa, fb := fo.Lab()
	ml, ma, mb := (bl+fl)/2, (ba+fa)/2, (bb+fb)/2
	mc := math32.Hypot(ma, mb)
	mh := math32.Atan2(mb, ma) * (180 / math.Pi)
	if mh < 0 {
		mh += 360
	}
	return step{l: ml, c: mc, h: mh}
}
