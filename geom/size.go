// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// SizeOf is a 2D width/height pair with components of type T.
type SizeOf[T Unit] struct {
	Width, Height T
}

// Sz returns a new [SizeOf].
func Sz[T Unit](w, h T) SizeOf[T] { return SizeOf[T]{Width: w, Height: h} }

// SzScalar returns a new [SizeOf] with both components set to v.
func SzScalar[T Unit](v T) SizeOf[T] { return SizeOf[T]{Width: v, Height: v} }

// Add returns the element-wise sum of s and o.
func (s SizeOf[T]) Add(o SizeOf[T]) SizeOf[T] { return SizeOf[T]{s.Width + o.Width, s.Height + o.Height} }

// Sub returns the element-wise difference of s and o.
func (s SizeOf[T]) Sub(o SizeOf[T]) SizeOf[T] { return SizeOf[T]{s.Width - o.Width, s.Height - o.Height} }

// Mul returns the element-wise product of s and o.
func (s SizeOf[T]) Mul(o SizeOf[T]) SizeOf[T] { return SizeOf[T]{s.Width * o.Width, s.Height * o.Height} }

// MulScalar returns s scaled by v.
func (s SizeOf[T]) MulScalar(v T) SizeOf[T] { return SizeOf[T]{s.Width * v, s.Height * v} }

// DivScalar returns s with both components divided by v.
func (s SizeOf[T]) DivScalar(v T) SizeOf[T] { return SizeOf[T]{s.Width / v, s.Height / v} }

// Min returns the element-wise minimum of s and o.
func (s SizeOf[T]) Min(o SizeOf[T]) SizeOf[T] {
	return SizeOf[T]{min(s.Width, o.Width), min(s.Height, o.Height)}
}

// Max returns the element-wise maximum of s and o.
func (s SizeOf[T]) Max(o SizeOf[T]) SizeOf[T] {
	return SizeOf[T]{max(s.Width, o.Width), max(s.Height, o.Height)}
}

// Area returns width*height.
func (s SizeOf[T]) Area() T { return s.Width * s.Height }

// ShortestSide returns the smaller of width and height.
func (s SizeOf[T]) ShortestSide() T { return min(s.Width, s.Height) }

// LongestSide returns the larger of width and height.
func (s SizeOf[T]) LongestSide() T { return max(s.Width, s.Height) }

// Flipped returns s with width and height swapped.
func (s SizeOf[T]) Flipped() SizeOf[T] { return SizeOf[T]{s.Height, s.Width} }

// FlippedIf returns s.Flipped() if flip, else s unchanged.
func (s SizeOf[T]) FlippedIf(flip bool) SizeOf[T] {
	if flip {
		return s.Flipped()
	}
	return s
}

// PointOf returns s reinterpreted as a [PointOf].
func (s SizeOf[T]) PointOf() PointOf[T] { return PointOf[T]{X: s.Width, Y: s.Height} }

// SizeConv converts a [SizeOf] of one unit type to another.
func SizeConv[To, From Unit](s SizeOf[From]) SizeOf[To] {
	return SizeOf[To]{Width: To(s.Width), Height: To(s.Height)}
}
