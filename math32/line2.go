// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Line2 is a 2D line segment between two points, used by the stroker for
// join/cap geometry and hit-testing against path segments.
type Line2 struct {
	Start, End Vector2
}

// NewLine2 returns a new [Line2].
func NewLine2(start, end Vector2) Line2 { return Line2{Start: start, End: end} }

// Center returns the midpoint of the line.
func (l Line2) Center() Vector2 { return l.Start.Add(l.End).MulScalar(0.5) }

// Delta returns End - Start.
func (l Line2) Delta() Vector2 { return l.End.Sub(l.Start) }

// Length returns the length of the line.
func (l Line2) Length() float32 { return l.Delta().Length() }

// LengthSquared returns the squared length of the line.
func (l Line2) LengthSquared() float32 { return l.Delta().LengthSquared() }

// ClosestPointToPoint returns the point on the segment closest to p.
func (l Line2) ClosestPointToPoint(p Vector2) Vector2 {
	d := l.Delta()
	lenSq := d.LengthSquared()
	if lenSq == 0 {
		return l.Start
	}
	t := p.Sub(l.Start).Dot(d) / lenSq
	t = Clamp(t, 0, 1)
	return l.Start.Add(d.MulScalar(t))
}
