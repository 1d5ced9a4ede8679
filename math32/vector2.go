// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Dims is a dimension enum for indexed access to 2D vector components.
type Dims int32 //enums:enum

const (
	X Dims = iota
	Y
)

// Vector2 is a 2D vector/point with float32 components.
type Vector2 struct {
	X, Y float32
}

// Vec2 returns a new [Vector2] with the given x, y components.
func Vec2(x, y float32) Vector2 { return Vector2{X: x, Y: y} }

// Vector2Scalar returns a new [Vector2] with both components set to s.
func Vector2Scalar(s float32) Vector2 { return Vector2{X: s, Y: s} }

// Vector2FromPoint returns a [Vector2] from an [image.Point].
func Vector2FromPoint(p image.Point) Vector2 { return Vector2{X: float32(p.X), Y: float32(p.Y)} }

// Vector2FromFixed returns a [Vector2] from a [fixed.Point26_6].
func Vector2FromFixed(p fixed.Point26_6) Vector2 {
	return Vector2{X: float32(p.X) / 64, Y: float32(p.Y) / 64}
}

// Set sets the x, y components.
func (v *Vector2) Set(x, y float32) { v.X = x; v.Y = y }

// SetScalar sets both components to s.
func (v *Vector2) SetScalar(s float32) { v.X = s; v.Y = s }

// SetFromVector2i sets from an integer vector.
func (v *Vector2) SetFromVector2i(o Vector2i) {
	v.X = float32(o.X)
	v.Y = float32(o.Y)
}

// SetDim sets the given dimension's component.
func (v *Vector2) SetDim(d Dims, val float32) {
	switch d {
	case X:
		v.X = val
	case Y:
		v.Y = val
	}
}

// Dim returns the given dimension's component.
func (v Vector2) Dim(d Dims) float32 {
	switch d {
	case X:
		return v.X
	case Y:
		return v.Y
	default:
		return 0
	}
}

// SetPointDim sets the given dimension of an [image.Point].
func SetPointDim(p *image.Point, d Dims, val int) {
	switch d {
	case X:
		p.X = val
	case Y:
		p.Y = val
	}
}

// PointDim returns the given dimension of an [image.Point].
func PointDim(p image.Point, d Dims) int {
	switch d {
	case X:
		return p.X
	case Y:
		return p.Y
	default:
		return 0
	}
}

// AddDim returns v with d's component incremented by val.
func (v Vector2) AddDim(d Dims, val float32) Vector2 {
	v.SetDim(d, v.Dim(d)+val)
	return v
}

// SubDim returns v with d's component decremented by val.
func (v Vector2) SubDim(d Dims, val float32) Vector2 {
	v.SetDim(d, v.Dim(d)-val)
	return v
}

// MulDim returns v with d's component multiplied by val.
func (v Vector2) MulDim(d Dims, val float32) Vector2 {
	v.SetDim(d, v.Dim(d)*val)
	return v
}

// DivDim returns v with d's component divided by val.
func (v Vector2) DivDim(d Dims, val float32) Vector2 {
	v.SetDim(d, v.Dim(d)/val)
	return v
}

// Add returns the element-wise sum of v and o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// AddScalar returns v with s added to both components.
func (v Vector2) AddScalar(s float32) Vector2 { return Vector2{v.X + s, v.Y + s} }

// Sub returns the element-wise difference of v and o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// SubScalar returns v with s subtracted from both components.
func (v Vector2) SubScalar(s float32) Vector2 { return Vector2{v.X - s, v.Y - s} }

// Mul returns the element-wise product of v and o.
func (v Vector2) Mul(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }

// MulScalar returns v scaled by s.
func (v Vector2) MulScalar(s float32) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Div returns the element-wise quotient of v and o.
func (v Vector2) Div(o Vector2) Vector2 { return Vector2{v.X / o.X, v.Y / o.Y} }

// DivScalar returns v with both components divided by s.
func (v Vector2) DivScalar(s float32) Vector2 { return Vector2{v.X / s, v.Y / s} }

// Min returns the element-wise minimum of v and o.
func (v Vector2) Min(o Vector2) Vector2 { return Vector2{Min(v.X, o.X), Min(v.Y, o.Y)} }

// Max returns the element-wise maximum of v and o.
func (v Vector2) Max(o Vector2) Vector2 { return Vector2{Max(v.X, o.X), Max(v.Y, o.Y)} }

// Negate returns -v.
func (v Vector2) Negate() Vector2 { return Vector2{-v.X, -v.Y} }

// Flipped returns v with its axes swapped (x,y) -> (y,x).
func (v Vector2) Flipped() Vector2 { return Vector2{v.Y, v.X} }

// Length returns the Euclidean length of v.
func (v Vector2) Length() float32 { return Hypot(v.X, v.Y) }

// LengthSquared returns the squared Euclidean length of v.
func (v Vector2) LengthSquared() float32 { return v.X*v.X + v.Y*v.Y }

// Normal returns v scaled to unit length; the zero vector is returned unchanged.
func (v Vector2) Normal() Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.DivScalar(l)
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float32 { return v.X*o.X + v.Y*o.Y }

// ToCeil returns v with both components rounded up.
func (v Vector2) ToCeil() Vector2 { return Vector2{Ceil(v.X), Ceil(v.Y)} }

// ToFloor returns v with both components rounded down.
func (v Vector2) ToFloor() Vector2 { return Vector2{Floor(v.X), Floor(v.Y)} }

// ToRound returns v with both components rounded to nearest.
func (v Vector2) ToRound() Vector2 { return Vector2{Round(v.X), Round(v.Y)} }

// ToPoint converts v to an [image.Point] by truncation.
func (v Vector2) ToPoint() image.Point { return image.Pt(int(v.X), int(v.Y)) }

// ToPointCeil converts v to an [image.Point], rounding up.
func (v Vector2) ToPointCeil() image.Point { return image.Pt(int(Ceil(v.X)), int(Ceil(v.Y))) }

// ToPointFloor converts v to an [image.Point], rounding down.
func (v Vector2) ToPointFloor() image.Point { return image.Pt(int(Floor(v.X)), int(Floor(v.Y))) }

// ToPointRound converts v to an [image.Point], rounding to nearest.
func (v Vector2) ToPointRound() image.Point { return image.Pt(int(Round(v.X)), int(Round(v.Y))) }

// ToFixed converts v to a [fixed.Point26_6].
func (v Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(v.X * 64), Y: fixed.Int26_6(v.Y * 64)}
}

// RectFromPosSizeMax returns an [image.Rectangle] from a position and size,
// flooring the min corner and rounding the max corner to the nearest pixel.
func RectFromPosSizeMax(pos, size Vector2) image.Rectangle {
	max := pos.Add(size).ToRound()
	min := pos.ToFloor()
	return image.Rect(int(min.X), int(min.Y), int(max.X), int(max.Y))
}
