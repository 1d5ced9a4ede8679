// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"log/slog"
	"runtime"
	"strconv"
)

// Log takes the given error and logs it to [slog] if it is non-nil,
// tagging the record with the caller's file and line. The intended
// usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error()+" | "+CallerInfo(), "caller", CallerInfo())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns the zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
		var zero T
		return zero
	}
	return v
}

// Log2 takes the given two values and error and returns the values if
// the error is nil, and logs the error and returns zero values
// if the error is non-nil.
func Log2[T1, T2 any](v1 T1, v2 T2, err error) (T1, T2) {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
		var zero1 T1
		var zero2 T2
		return zero1, zero2
	}
	return v1, v2
}

// Must takes the given error and panics if it is non-nil.
// Reserved for assertion-class violations (such as debug-only bounds
// checks) — never call this on a recoverable domain error.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 is the generic version of [Must] for a single return value.
func Must1[T any](v T, err error) T {
	Must(err)
	return v
}

// CallerInfo returns a string describing the file and line of the
// caller of the function that called CallerInfo (i.e. two frames up).
func CallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown caller"
	}
	return file + ":" + strconv.Itoa(line)
}
