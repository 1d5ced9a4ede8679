// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Round rounds p's components to the nearest integer value, still
// represented in the same floating-point type.
func (p PointOf[T]) Round() PointOf[T] {
	return PointOf[T]{T(math.Round(float64(p.X))), T(math.Round(float64(p.Y)))}
}

// Floor rounds p's components down.
func (p PointOf[T]) Floor() PointOf[T] {
	return PointOf[T]{T(math.Floor(float64(p.X))), T(math.Floor(float64(p.Y)))}
}

// Ceil rounds p's components up.
func (p PointOf[T]) Ceil() PointOf[T] {
	return PointOf[T]{T(math.Ceil(float64(p.X))), T(math.Ceil(float64(p.Y)))}
}

// Trunc truncates p's components towards zero.
func (p PointOf[T]) Trunc() PointOf[T] {
	return PointOf[T]{T(math.Trunc(float64(p.X))), T(math.Trunc(float64(p.Y)))}
}

// Round rounds s's components to the nearest integer value.
func (s SizeOf[T]) Round() SizeOf[T] {
	return SizeOf[T]{T(math.Round(float64(s.Width))), T(math.Round(float64(s.Height)))}
}

// Floor rounds s's components down.
func (s SizeOf[T]) Floor() SizeOf[T] {
	return SizeOf[T]{T(math.Floor(float64(s.Width))), T(math.Floor(float64(s.Height)))}
}

// Ceil rounds s's components up.
func (s SizeOf[T]) Ceil() SizeOf[T] {
	return SizeOf[T]{T(math.Ceil(float64(s.Width))), T(math.Ceil(float64(s.Height)))}
}

// Trunc truncates s's components towards zero.
func (s SizeOf[T]) Trunc() SizeOf[T] {
	return SizeOf[T]{T(math.Trunc(float64(s.Width))), T(math.Trunc(float64(s.Height)))}
}
