// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides generic 2D point, size, rectangle, edges, and
// corners types shared by int and float instantiations: GUI-space values
// use float, pixel-snapped values use int.
package geom

import "golang.org/x/exp/constraints"

// Unit is the set of component types a [geom] primitive can be built over.
type Unit interface {
	constraints.Integer | constraints.Float
}

// PointOf is a 2D point with components of type T.
type PointOf[T Unit] struct {
	X, Y T
}

// Pt returns a new [PointOf] with the given x, y components.
func Pt[T Unit](x, y T) PointOf[T] { return PointOf[T]{X: x, Y: y} }

// PtScalar returns a new [PointOf] with both components set to v.
func PtScalar[T Unit](v T) PointOf[T] { return PointOf[T]{X: v, Y: v} }

// Add returns the element-wise sum of p and o.
func (p PointOf[T]) Add(o PointOf[T]) PointOf[T] { return PointOf[T]{p.X + o.X, p.Y + o.Y} }

// Sub returns the element-wise difference of p and o.
func (p PointOf[T]) Sub(o PointOf[T]) PointOf[T] { return PointOf[T]{p.X - o.X, p.Y - o.Y} }

// Mul returns the element-wise product of p and o.
func (p PointOf[T]) Mul(o PointOf[T]) PointOf[T] { return PointOf[T]{p.X * o.X, p.Y * o.Y} }

// Div returns the element-wise quotient of p and o.
func (p PointOf[T]) Div(o PointOf[T]) PointOf[T] { return PointOf[T]{p.X / o.X, p.Y / o.Y} }

// MulScalar returns p scaled by v.
func (p PointOf[T]) MulScalar(v T) PointOf[T] { return PointOf[T]{p.X * v, p.Y * v} }

// DivScalar returns p with both components divided by v.
func (p PointOf[T]) DivScalar(v T) PointOf[T] { return PointOf[T]{p.X / v, p.Y / v} }

// Negate returns -p.
func (p PointOf[T]) Negate() PointOf[T] { return PointOf[T]{-p.X, -p.Y} }

// Min returns the element-wise minimum of p and o.
func (p PointOf[T]) Min(o PointOf[T]) PointOf[T] { return PointOf[T]{min(p.X, o.X), min(p.Y, o.Y)} }

// Max returns the element-wise maximum of p and o.
func (p PointOf[T]) Max(o PointOf[T]) PointOf[T] { return PointOf[T]{max(p.X, o.X), max(p.Y, o.Y)} }

// Flipped returns p with its axes swapped.
func (p PointOf[T]) Flipped() PointOf[T] { return PointOf[T]{p.Y, p.X} }

// FlippedIf returns p.Flipped() if flip, else p unchanged.
func (p PointOf[T]) FlippedIf(flip bool) PointOf[T] {
	if flip {
		return p.Flipped()
	}
	return p
}

// SizeOf returns p reinterpreted as a [SizeOf].
func (p PointOf[T]) SizeOf() SizeOf[T] { return SizeOf[T]{Width: p.X, Height: p.Y} }

// PointConv converts a [PointOf] of one unit type to another by element-wise
// conversion (e.g. float32 GUI-space to int pixel-snapped space, and back).
func PointConv[To, From Unit](p PointOf[From]) PointOf[To] {
	return PointOf[To]{X: To(p.X), Y: To(p.Y)}
}
