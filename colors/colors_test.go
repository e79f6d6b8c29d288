// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHex(t *testing.T) {
	tests := map[string]color.RGBA{
		"#0066cc":   {R: 0, G: 0x66, B: 0xcc, A: 255},
		"0066CC":    {R: 0, G: 0x66, B: 0xcc, A: 255},
		"#fff":      {R: 255, G: 255, B: 255, A: 255},
		"#1d8":      {R: 0x11, G: 0xdd, B: 0x88, A: 255},
		"#00000003": {R: 0, G: 0, B: 0, A: 3},
		"#ffffffeb": {R: 255, G: 255, B: 255, A: 0xeb},
		" #6b7280 ": {R: 0x6b, G: 0x72, B: 0x80, A: 255},
	}
	for hex, want := range tests {
		have, err := FromHex(hex)
		assert.NoError(t, err, hex)
		assert.Equal(t, want, have, hex)
	}
}

func TestFromHexInvalid(t *testing.T) {
	for _, hex := range []string{"", "#", "#ff", "#ffff", "#fffff", "#fffffff", "#gggggg", "#12345g", "blue", "#0066cc0"} {
		_, err := FromHex(hex)
		assert.ErrorIs(t, err, ErrInvalidFormat, hex)
	}
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#0066cc", AsHex(color.RGBA{R: 0, G: 0x66, B: 0xcc, A: 255}))
	assert.Equal(t, "#00000003", AsHex(color.NRGBA{A: 3}))
	assert.Equal(t, "#ffffffeb", AsHex(color.NRGBA{R: 255, G: 255, B: 255, A: 0xeb}))
	assert.Equal(t, "", AsHex(nil))
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#0066cc", "#6b7280", "#ffffff", "#000000", "#123456", "#fae8ff"} {
		c, err := FromHex(hex)
		assert.NoError(t, err)
		assert.Equal(t, hex, AsHex(c))
	}
}

func TestMustFromHex(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, MustFromHex("#ffffff"))
	assert.Panics(t, func() { MustFromHex("not-a-color") })
}
