// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides parsing, formatting, and conversion
// helpers for colors expressed as hex strings.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/tonal-io/tonal/base/errors"
)

// ErrInvalidFormat is the error returned for color strings that are
// not well-formed 3, 6, or 8 digit hex colors.
var ErrInvalidFormat = errors.New("invalid color format")

// AsRGBA returns the given color as an RGBA (alpha-premultiplied) color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsNRGBA returns the given color as an NRGBA (non-alpha-premultiplied)
// color.
func AsNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// FromHex parses the given 3, 6, or 8 digit hex color string, with or
// without a leading #, and returns the resulting color. It returns an
// error wrapping [ErrInvalidFormat] for anything else; see [MustFromHex]
// and [LogFromHex] for versions that do not return an error.
func FromHex(hex string) (color.RGBA, error) {
	hs := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	a := uint8(255)
	switch len(hs) {
	case 3:
		r, err := nibble(hs[0])
		g, gerr := nibble(hs[1])
		b, berr := nibble(hs[2])
		if err != nil || gerr != nil || berr != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: %q: %w", hex, ErrInvalidFormat)
		}
		return color.RGBA{R: r, G: g, B: b, A: a}, nil
	case 8:
		av, err := strconv.ParseUint(hs[6:8], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: %q: %w", hex, ErrInvalidFormat)
		}
		a = uint8(av)
		fallthrough
	case 6:
		v, err := strconv.ParseUint(hs[:6], 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: %q: %w", hex, ErrInvalidFormat)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: a}, nil
	default:
		return color.RGBA{}, fmt.Errorf("colors.FromHex: %q: %w", hex, ErrInvalidFormat)
	}
}

// nibble expands a single hex digit into its doubled byte value
// (f -> 0xff).
func nibble(b byte) (uint8, error) {
	v, err := strconv.ParseUint(string(b), 16, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v | v<<4), nil
}

// MustFromHex parses the given hex color string and returns the
// resulting color. It panics on any resulting error; see [FromHex]
// for a version that returns an error.
func MustFromHex(hex string) color.RGBA {
	return errors.Must1(FromHex(hex))
}

// LogFromHex parses the given hex color string and returns the
// resulting color. It logs any resulting error; see [FromHex]
// for a version that returns an error.
func LogFromHex(hex string) color.RGBA {
	return errors.Log1(FromHex(hex))
}

// AsHex returns the color as a canonical lowercase hex string:
// 6 digits for opaque colors and 8 digits otherwise. Alpha is not
// premultiplied into the color components.
func AsHex(c color.Color) string {
	if c == nil {
		return ""
	}
	n := AsNRGBA(c)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
