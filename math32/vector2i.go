// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector2i is a 2D vector/point with int32 components, used for pixel-snapped
// geometry (device pixels, atlas coordinates).
type Vector2i struct {
	X, Y int32
}

// Vec2i returns a new [Vector2i].
func Vec2i(x, y int32) Vector2i { return Vector2i{X: x, Y: y} }

// Vector2iScalar returns a new [Vector2i] with both components set to s.
func Vector2iScalar(s int32) Vector2i { return Vector2i{X: s, Y: s} }

// Set sets the x, y components.
func (v *Vector2i) Set(x, y int32) { v.X = x; v.Y = y }

// SetScalar sets both components to s.
func (v *Vector2i) SetScalar(s int32) { v.X = s; v.Y = s }

// SetFromVector2 sets from a float vector by truncation.
func (v *Vector2i) SetFromVector2(o Vector2) {
	v.X = int32(o.X)
	v.Y = int32(o.Y)
}

// SetDim sets the given dimension's component.
func (v *Vector2i) SetDim(d Dims, val int32) {
	switch d {
	case X:
		v.X = val
	case Y:
		v.Y = val
	}
}

// Dim returns the given dimension's component.
func (v Vector2i) Dim(d Dims) int32 {
	switch d {
	case X:
		return v.X
	case Y:
		return v.Y
	default:
		return 0
	}
}

// ToVector2 converts to a float [Vector2].
func (v Vector2i) ToVector2() Vector2 { return Vector2{float32(v.X), float32(v.Y)} }

// Add returns the element-wise sum of v and o.
func (v Vector2i) Add(o Vector2i) Vector2i { return Vector2i{v.X + o.X, v.Y + o.Y} }

// Sub returns the element-wise difference of v and o.
func (v Vector2i) Sub(o Vector2i) Vector2i { return Vector2i{v.X - o.X, v.Y - o.Y} }

// Mul returns the element-wise product of v and o.
func (v Vector2i) Mul(o Vector2i) Vector2i { return Vector2i{v.X * o.X, v.Y * o.Y} }

// Flipped returns v with its axes swapped.
func (v Vector2i) Flipped() Vector2i { return Vector2i{v.Y, v.X} }
