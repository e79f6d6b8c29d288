// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for making assertions
// with tolerance, for use with floating point numbers in tests.
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal asserts that the two values are equal within a standard
// tolerance of 0.001.
func Equal[T float32 | float64](t *testing.T, expected, actual T, msgAndArgs ...any) bool {
	t.Helper()
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol asserts that the two values are equal within the
// given tolerance.
func EqualTol[T float32 | float64](t *testing.T, expected, actual, tolerance T, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, expected, actual, float64(tolerance), msgAndArgs...)
}
