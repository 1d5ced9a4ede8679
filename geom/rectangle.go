// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// RectangleOf is a 2D axis-aligned rectangle, stored as its minimum and
// maximum corners.
type RectangleOf[T Unit] struct {
	Min, Max PointOf[T]
}

// Rect returns a new [RectangleOf] from two opposite corners given as
// components.
func Rect[T Unit](x0, y0, x1, y1 T) RectangleOf[T] {
	return RectangleOf[T]{Min: PointOf[T]{x0, y0}, Max: PointOf[T]{x1, y1}}
}

// RectFromPoints returns a new [RectangleOf] from two opposite corner points.
func RectFromPoints[T Unit](min, max PointOf[T]) RectangleOf[T] {
	return RectangleOf[T]{Min: min, Max: max}
}

// RectFromPosSize returns a new [RectangleOf] from a position and a size.
func RectFromPosSize[T Unit](pos PointOf[T], size SizeOf[T]) RectangleOf[T] {
	return RectangleOf[T]{Min: pos, Max: pos.Add(size.PointOf())}
}

// Size returns the width/height of the rectangle as a [SizeOf].
func (r RectangleOf[T]) Size() SizeOf[T] {
	d := r.Max.Sub(r.Min)
	return SizeOf[T]{Width: d.X, Height: d.Y}
}

// Width returns the rectangle's width (Max.X - Min.X).
func (r RectangleOf[T]) Width() T { return r.Max.X - r.Min.X }

// Height returns the rectangle's height (Max.Y - Min.Y).
func (r RectangleOf[T]) Height() T { return r.Max.Y - r.Min.Y }

// Area returns width*height.
func (r RectangleOf[T]) Area() T { return r.Width() * r.Height() }

// ShortestSide returns the smaller of width and height.
func (r RectangleOf[T]) ShortestSide() T { return min(r.Width(), r.Height()) }

// LongestSide returns the larger of width and height.
func (r RectangleOf[T]) LongestSide() T { return max(r.Width(), r.Height()) }

// Empty reports whether the rectangle has zero or negative area on either axis.
func (r RectangleOf[T]) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }

// Center returns the midpoint of the rectangle.
func (r RectangleOf[T]) Center() PointOf[T] { return r.At(0.5, 0.5) }

// At returns the point within the rectangle at normalized coordinates
// (nx, ny), where (0,0) is Min and (1,1) is Max.
func (r RectangleOf[T]) At(nx, ny float64) PointOf[T] {
	sz := r.Size()
	return PointOf[T]{
		X: r.Min.X + T(float64(sz.Width)*nx),
		Y: r.Min.Y + T(float64(sz.Height)*ny),
	}
}

// Split returns the sub-rectangle at normalized position (x,y) with
// normalized size (w,h), relative to r.
func (r RectangleOf[T]) Split(x, y, w, h float64) RectangleOf[T] {
	return RectangleOf[T]{Min: r.At(x, y), Max: r.At(x+w, y+h)}
}

// Contains reports whether p lies within the rectangle (max-exclusive).
func (r RectangleOf[T]) Contains(p PointOf[T]) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Union returns the smallest rectangle containing both r and o.
func (r RectangleOf[T]) Union(o RectangleOf[T]) RectangleOf[T] {
	return RectangleOf[T]{Min: r.Min.Min(o.Min), Max: r.Max.Max(o.Max)}
}

// Intersection returns the overlapping region of r and o. If they do not
// overlap, the result's [RectangleOf.Empty] returns true.
func (r RectangleOf[T]) Intersection(o RectangleOf[T]) RectangleOf[T] {
	return RectangleOf[T]{Min: r.Min.Max(o.Min), Max: r.Max.Min(o.Max)}
}

// WithOffset returns r translated by delta.
func (r RectangleOf[T]) WithOffset(delta PointOf[T]) RectangleOf[T] {
	return RectangleOf[T]{Min: r.Min.Add(delta), Max: r.Max.Add(delta)}
}

// WithStart returns r repositioned so that Min = p, preserving its size.
func (r RectangleOf[T]) WithStart(p PointOf[T]) RectangleOf[T] {
	return RectangleOf[T]{Min: p, Max: p.Add(r.Max.Sub(r.Min))}
}

// WithSize returns r with the same Min but resized to size.
func (r RectangleOf[T]) WithSize(size SizeOf[T]) RectangleOf[T] {
	return RectangleOf[T]{Min: r.Min, Max: r.Min.Add(size.PointOf())}
}

// WithScale returns r with both corners scaled about the origin by (sx, sy).
func (r RectangleOf[T]) WithScale(sx, sy T) RectangleOf[T] {
	return RectangleOf[T]{
		Min: PointOf[T]{r.Min.X * sx, r.Min.Y * sy},
		Max: PointOf[T]{r.Max.X * sx, r.Max.Y * sy},
	}
}

// WithMargin returns r expanded outward on all sides by m.
func (r RectangleOf[T]) WithMargin(m EdgesOf[T]) RectangleOf[T] {
	return RectangleOf[T]{
		Min: PointOf[T]{r.Min.X - m.Left, r.Min.Y - m.Top},
		Max: PointOf[T]{r.Max.X + m.Right, r.Max.Y + m.Bottom},
	}
}

// WithPadding returns r shrunk inward on all sides by p, the inverse of
// [RectangleOf.WithMargin].
func (r RectangleOf[T]) WithPadding(p EdgesOf[T]) RectangleOf[T] {
	return RectangleOf[T]{
		Min: PointOf[T]{r.Min.X + p.Left, r.Min.Y + p.Top},
		Max: PointOf[T]{r.Max.X - p.Right, r.Max.Y - p.Bottom},
	}
}

// AlignedRect returns a rectangle of the given size positioned within outer
// per the given normalized alignment factors (0 = start, 0.5 = center,
// 1 = end along each axis).
func AlignedRect[T Unit](outer RectangleOf[T], size SizeOf[T], alignX, alignY float64) RectangleOf[T] {
	free := outer.Size().Sub(size)
	pos := PointOf[T]{
		X: outer.Min.X + T(float64(free.Width)*alignX),
		Y: outer.Min.Y + T(float64(free.Height)*alignY),
	}
	return RectFromPosSize(pos, size)
}

// RectangleConv converts a [RectangleOf] of one unit type to another.
func RectangleConv[To, From Unit](r RectangleOf[From]) RectangleOf[To] {
	return RectangleOf[To]{Min: PointConv[To](r.Min), Max: PointConv[To](r.Max)}
}

// Round rounds both corners to the nearest integer value.
func (r RectangleOf[T]) Round() RectangleOf[T] {
	return RectangleOf[T]{Min: r.Min.Round(), Max: r.Max.Round()}
}

// Floor rounds both corners down.
func (r RectangleOf[T]) Floor() RectangleOf[T] {
	return RectangleOf[T]{Min: r.Min.Floor(), Max: r.Max.Floor()}
}

// Ceil rounds both corners up.
func (r RectangleOf[T]) Ceil() RectangleOf[T] {
	return RectangleOf[T]{Min: r.Min.Ceil(), Max: r.Max.Ceil()}
}
