// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// Matrices are the standard D65 two-degree observer values.

// SRGBLinToXYZ converts linear-light sRGB components to
// XYZ tristimulus coordinates.
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = 0.41239080*rl + 0.35758434*gl + 0.18048079*bl
	y = 0.21263901*rl + 0.71516868*gl + 0.07219232*bl
	z = 0.01933082*rl + 0.11919478*gl + 0.95053215*bl
	return
}

// XYZToSRGBLin converts XYZ tristimulus coordinates to
// linear-light sRGB components, which may lie outside 0-1
// for out-of-gamut colors.
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	rl = 3.2409699419*x - 1.5373831776*y - 0.4986107603*z
	gl = -0.9692436363*x + 1.8759675015*y + 0.0415550574*z
	bl = 0.0556300797*x - 0.2039769589*y + 1.0569715142*z
	return
}

// P3LinToXYZ converts linear-light Display P3 components to
// XYZ tristimulus coordinates.
func P3LinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = 0.4865709486*rl + 0.2656676932*gl + 0.1982172852*bl
	y = 0.2289745641*rl + 0.6917385218*gl + 0.0792869141*bl
	z = 0.0451133819*gl + 1.0439443689*bl
	return
}

// XYZToP3Lin converts XYZ tristimulus coordinates to linear-light
// Display P3 components, which may lie outside 0-1 for colors
// outside the P3 gamut.
func XYZToP3Lin(x, y, z float32) (rl, gl, bl float32) {
	rl = 2.4934969119*x - 0.9313836179*y - 0.4027107845*z
	gl = -0.8294889696*x + 1.7626640603*y + 0.0236246858*z
	bl = 0.0358458302*x - 0.0761723893*y + 0.9568845240*z
	return
}
