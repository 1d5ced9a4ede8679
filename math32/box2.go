// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box2 is an axis-aligned 2D bounding box with float32 coordinates,
// represented by its minimum and maximum corners.
type Box2 struct {
	Min, Max Vector2
}

// B2 returns a new [Box2] from two opposite corners given as components.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Min: Vec2(x0, y0), Max: Vec2(x1, y1)}
}

// BoxFromVectors returns a new [Box2] from two opposite corner vectors.
func BoxFromVectors(min, max Vector2) Box2 { return Box2{Min: min, Max: max} }

// Size returns the width/height of the box as a [Vector2].
func (b Box2) Size() Vector2 { return b.Max.Sub(b.Min) }

// Center returns the center point of the box.
func (b Box2) Center() Vector2 { return b.Min.Add(b.Max).MulScalar(0.5) }

// IsEmpty returns whether the box has zero or negative area on either axis.
func (b Box2) IsEmpty() bool { return b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y }

// ContainsPoint returns whether p lies within the box (max-exclusive).
func (b Box2) ContainsPoint(p Vector2) bool {
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// Union returns the smallest box containing both b and o.
func (b Box2) Union(o Box2) Box2 {
	return Box2{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Intersect returns the overlapping region of b and o. If they do not
// overlap, the result [Box2.IsEmpty] returns true.
func (b Box2) Intersect(o Box2) Box2 {
	return Box2{Min: b.Min.Max(o.Min), Max: b.Max.Min(o.Max)}
}

// Translate returns b shifted by delta.
func (b Box2) Translate(delta Vector2) Box2 {
	return Box2{Min: b.Min.Add(delta), Max: b.Max.Add(delta)}
}

// MulMatrix2 transforms both corners of b by m and returns the
// axis-aligned bounding box of the (possibly rotated) result.
func (b Box2) MulMatrix2(m Matrix2) Box2 {
	p0 := m.MulPoint(b.Min)
	p1 := m.MulPoint(Vec2(b.Max.X, b.Min.Y))
	p2 := m.MulPoint(Vec2(b.Min.X, b.Max.Y))
	p3 := m.MulPoint(b.Max)
	min := p0.Min(p1).Min(p2.Min(p3))
	max := p0.Max(p1).Max(p2.Max(p3))
	return Box2{Min: min, Max: max}
}
