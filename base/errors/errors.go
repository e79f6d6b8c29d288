// Copyright (c) 2026, Tonal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package.
package errors

import (
	"errors"
	"log/slog"
)

// Aliases to the standard library errors package.
var (
	As     = errors.As
	Is     = errors.Is
	Join   = errors.Join
	New    = errors.New
	Unwrap = errors.Unwrap
)

// Log takes the given error and logs it if it is non-nil.
// It returns the error either way, so it can be used in
// return statements.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 takes the given value and error and logs the error
// if it is non-nil. It returns the value either way.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Must panics if the given error is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and panics if the
// error is non-nil. Otherwise, it returns the value.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
