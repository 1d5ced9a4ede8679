// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package path builds 2D vector paths (lines, cubic Béziers, arcs, and
// the higher-level shapes built from them) and rasterizes them to 8-bit
// alpha-coverage sprites for the renderer.
package path

import (
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/math32"
)

// Element tags one recorded command in a [Path].
type Element uint8

const (
	MoveTo Element = iota
	LineTo
	CubicTo
	Close
)

// Direction is the winding direction used when a shape-adding method
// (addCircle, addRect, ...) generates its points.
type Direction uint8

const (
	CCW Direction = iota
	CW
)

// segment is one recorded path command. CubicTo uses C1, C2, and End;
// LineTo and MoveTo use only End.
type segment struct {
	Element Element
	C1, C2  geom.PointOf[float32]
	End     geom.PointOf[float32]
}

// Path is an ordered sequence of MoveTo/LineTo/CubicTo/Close elements.
// Every subpath begins with a MoveTo; Close emits a line back to the
// subpath's start without duplicating that point.
type Path struct {
	segments []segment
	start    geom.PointOf[float32] // current subpath's MoveTo target
	current  geom.PointOf[float32]
	hasStart bool
}

// New returns an empty path.
func New() *Path { return &Path{} }

// Empty reports whether p has no recorded segments.
func (p *Path) Empty() bool { return len(p.segments) == 0 }

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt geom.PointOf[float32]) {
	p.segments = append(p.segments, segment{Element: MoveTo, End: pt})
	p.start = pt
	p.current = pt
	p.hasStart = true
}

// LineTo appends a straight line from the current point to pt.
func (p *Path) LineTo(pt geom.PointOf[float32]) {
	if !p.hasStart {
		p.MoveTo(pt)
		return
	}
	p.segments = append(p.segments, segment{Element: LineTo, End: pt})
	p.current = pt
}

// QuadraticTo appends a quadratic Bézier curve, re-expressed as the
// equivalent cubic (standard degree-elevation: c1' = p0 + 2/3(c1-p0),
// c2' = e + 2/3(c1-e)) so only CubicTo needs a flattening implementation.
func (p *Path) QuadraticTo(c geom.PointOf[float32], end geom.PointOf[float32]) {
	p0 := p.current
	c1 := geom.Pt(p0.X+2.0/3.0*(c.X-p0.X), p0.Y+2.0/3.0*(c.Y-p0.Y))
	c2 := geom.Pt(end.X+2.0/3.0*(c.X-end.X), end.Y+2.0/3.0*(c.Y-end.Y))
	p.CubicTo(c1, c2, end)
}

// CubicTo appends a cubic Bézier curve from the current point through
// control points c1, c2 to end.
func (p *Path) CubicTo(c1, c2, end geom.PointOf[float32]) {
	if !p.hasStart {
		p.MoveTo(end)
		return
	}
	p.segments = append(p.segments, segment{Element: CubicTo, C1: c1, C2: c2, End: end})
	p.current = end
}

// ArcTo appends an arc of rect's inscribed ellipse from startAngle
// (degrees, clockwise from the positive x-axis) sweeping sweepAngle
// degrees, approximated as one or more cubic curves. If forceMoveTo or
// the path has no current point, the arc's start point becomes a
// MoveTo; otherwise a line connects the current point to it.
func (p *Path) ArcTo(rect geom.RectangleOf[float32], startAngle, sweepAngle float32, forceMoveTo bool) {
	cx, cy := rect.Center().X, rect.Center().Y
	rx, ry := rect.Width()/2, rect.Height()/2

	const maxArc = 90.0
	segs := int(math32.Ceil(math32.Abs(sweepAngle) / maxArc))
	if segs < 1 {
		segs = 1
	}
	step := sweepAngle / float32(segs)

	first := true
	a0 := startAngle
	for i := 0; i < segs; i++ {
		a1 := a0 + step
		p0 := ellipsePoint(cx, cy, rx, ry, a0)
		p3 := ellipsePoint(cx, cy, rx, ry, a1)
		k := arcKappa(step) * rx
		kY := arcKappa(step) * ry
		t0 := math32.DegToRad(a0)
		t1 := math32.DegToRad(a1)
		c1 := geom.Pt(p0.X-k*math32.Sin(t0), p0.Y+kY*math32.Cos(t0))
		c2 := geom.Pt(p3.X+k*math32.Sin(t1), p3.Y-kY*math32.Cos(t1))

		if first {
			if forceMoveTo || !p.hasStart {
				p.MoveTo(p0)
			} else {
				p.LineTo(p0)
			}
			first = false
		}
		p.CubicTo(c1, c2, p3)
		a0 = a1
	}
}

func ellipsePoint(cx, cy, rx, ry, angleDeg float32) geom.PointOf[float32] {
	t := math32.DegToRad(angleDeg)
	return geom.Pt(cx+rx*math32.Cos(t), cy+ry*math32.Sin(t))
}

// arcKappa returns the Bézier control-point distance factor (as a
// fraction of the radius) that best approximates a circular arc
// spanning sweepDeg degrees.
func arcKappa(sweepDeg float32) float32 {
	t := math32.DegToRad(sweepDeg) / 2
	return 4.0 / 3.0 * math32.Sin(t) / (1 + math32.Cos(t))
}

// Close closes the current subpath with a line back to its MoveTo
// point, without duplicating that point if current already equals it.
func (p *Path) Close() {
	if !p.hasStart {
		return
	}
	p.segments = append(p.segments, segment{Element: Close, End: p.start})
	p.current = p.start
}

// Reset empties the path.
func (p *Path) Reset() {
	p.segments = p.segments[:0]
	p.hasStart = false
}

// Clone returns an independent copy of p.
func (p *Path) Clone() *Path {
	c := &Path{
		segments: append([]segment(nil), p.segments...),
		start:    p.start,
		current:  p.current,
		hasStart: p.hasStart,
	}
	return c
}

// AddPath appends other's segments to p unchanged.
func (p *Path) AddPath(other *Path) {
	p.AddPathTransformed(other, math32.Identity2())
}

// AddPathTransformed appends other's segments to p, transformed by m.
func (p *Path) AddPathTransformed(other *Path, m math32.Matrix2) {
	for _, s := range other.segments {
		switch s.Element {
		case MoveTo:
			p.MoveTo(transformPoint(m, s.End))
		case LineTo:
			p.LineTo(transformPoint(m, s.End))
		case CubicTo:
			p.CubicTo(transformPoint(m, s.C1), transformPoint(m, s.C2), transformPoint(m, s.End))
		case Close:
			p.Close()
		}
	}
}

// Transform applies m to every point of p in place.
func (p *Path) Transform(m math32.Matrix2) {
	for i, s := range p.segments {
		switch s.Element {
		case MoveTo, LineTo:
			p.segments[i].End = transformPoint(m, s.End)
		case CubicTo:
			p.segments[i].C1 = transformPoint(m, s.C1)
			p.segments[i].C2 = transformPoint(m, s.C2)
			p.segments[i].End = transformPoint(m, s.End)
		}
	}
	p.start = transformPoint(m, p.start)
	p.current = transformPoint(m, p.current)
}

// Transformed returns a transformed copy of p, leaving p unchanged.
func (p *Path) Transformed(m math32.Matrix2) *Path {
	c := p.Clone()
	c.Transform(m)
	return c
}

func transformPoint(m math32.Matrix2, pt geom.PointOf[float32]) geom.PointOf[float32] {
	v := m.MulPoint(math32.Vec2(pt.X, pt.Y))
	return geom.Pt(v.X, v.Y)
}

// AddRect adds a rectangle as a closed subpath.
func (p *Path) AddRect(rect geom.RectangleOf[float32], dir Direction) {
	corners := []geom.PointOf[float32]{
		{X: rect.Min.X, Y: rect.Min.Y},
		{X: rect.Max.X, Y: rect.Min.Y},
		{X: rect.Max.X, Y: rect.Max.Y},
		{X: rect.Min.X, Y: rect.Max.Y},
	}
	if dir == CCW {
		corners[1], corners[3] = corners[3], corners[1]
	}
	p.MoveTo(corners[0])
	p.LineTo(corners[1])
	p.LineTo(corners[2])
	p.LineTo(corners[3])
	p.Close()
}

// AddEllipse adds rect's inscribed ellipse as a closed subpath.
func (p *Path) AddEllipse(rect geom.RectangleOf[float32], dir Direction) {
	sweep := float32(360)
	if dir == CCW {
		sweep = -360
	}
	p.ArcTo(rect, 0, sweep, true)
	p.Close()
}

// AddCircle adds a circle of the given radius centered at (cx,cy).
func (p *Path) AddCircle(cx, cy, radius float32, dir Direction) {
	p.AddEllipse(geom.Rect(cx-radius, cy-radius, cx+radius, cy+radius), dir)
}

// AddRoundRect adds a rectangle with corners rounded by rx, ry as a
// closed subpath.
func (p *Path) AddRoundRect(rect geom.RectangleOf[float32], rx, ry float32, dir Direction) {
	rx = math32.Clamp(rx, 0, rect.Width()/2)
	ry = math32.Clamp(ry, 0, rect.Height()/2)
	if rx <= 0 || ry <= 0 {
		p.AddRect(rect, dir)
		return
	}

	mark := len(p.segments)
	l, t, r, b := rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y
	p.MoveTo(geom.Pt(l+rx, t))
	p.LineTo(geom.Pt(r-rx, t))
	p.ArcTo(geom.Rect(r-2*rx, t, r, t+2*ry), -90, 90, false)
	p.LineTo(geom.Pt(r, b-ry))
	p.ArcTo(geom.Rect(r-2*rx, b-2*ry, r, b), 0, 90, false)
	p.LineTo(geom.Pt(l+rx, b))
	p.ArcTo(geom.Rect(l, b-2*ry, l+2*rx, b), 90, 90, false)
	p.LineTo(geom.Pt(l, t+ry))
	p.ArcTo(geom.Rect(l, t, l+2*rx, t+2*ry), 180, 90, false)
	p.Close()

	if dir == CCW {
		built := append([]segment(nil), p.segments[mark:]...)
		p.segments = append(p.segments[:mark], reverseSubpath(built)...)
		last := p.segments[len(p.segments)-1]
		p.current = last.End
		p.start = p.segments[mark].End
	}
}

// reverseSubpath returns segs (a single subpath starting with MoveTo,
// optionally ending with Close) retraced in the opposite direction.
func reverseSubpath(segs []segment) []segment {
	n := len(segs)
	if n == 0 {
		return nil
	}
	closed := segs[n-1].Element == Close
	out := make([]segment, 0, n)
	out = append(out, segment{Element: MoveTo, End: segs[n-1].End})
	for i := n - 1; i >= 1; i-- {
		from := segs[i]
		to := segs[i-1].End
		switch from.Element {
		case CubicTo:
			out = append(out, segment{Element: CubicTo, C1: from.C2, C2: from.C1, End: to})
		default: // LineTo, Close
			out = append(out, segment{Element: LineTo, End: to})
		}
	}
	if closed {
		out = append(out, segment{Element: Close, End: out[0].End})
	}
	return out
}

// AddPolygon adds a regular polygon with the given number of points,
// radius, corner roundness in [0,1], starting angle in degrees, and
// center.
func (p *Path) AddPolygon(points int, radius, roundness, startAngleDeg, cx, cy float32, dir Direction) {
	p.addStarShape(points, radius, radius, roundness, roundness, startAngleDeg, cx, cy, dir, false)
}

// AddPolystar adds a star with the given number of points, inner/outer
// radii, inner/outer corner roundness in [0,1], starting angle in
// degrees, and center.
func (p *Path) AddPolystar(points int, innerRadius, outerRadius, innerRoundness, outerRoundness, startAngleDeg, cx, cy float32, dir Direction) {
	p.addStarShape(points, innerRadius, outerRadius, innerRoundness, outerRoundness, startAngleDeg, cx, cy, dir, true)
}

func (p *Path) addStarShape(points int, innerRadius, outerRadius, innerRoundness, outerRoundness, startAngleDeg, cx, cy float32, dir Direction, star bool) {
	if points < 2 {
		return
	}
	n := points
	if star {
		n = points * 2
	}
	step := float32(360) / float32(n)
	if dir == CCW {
		step = -step
	}
	angle := startAngleDeg
	for i := 0; i < n; i++ {
		radius := outerRadius
		if star && i%2 == 1 {
			radius = innerRadius
		}
		pt := ellipsePoint(cx, cy, radius, radius, angle)
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
		angle += step
	}
	p.Close()
}

// Length returns the approximate length of p by summing the flattened
// polyline segment lengths of every subpath.
func (p *Path) Length() float32 {
	var total float32
	for _, poly := range p.flatten() {
		for i := 1; i < len(poly); i++ {
			total += distance(poly[i-1], poly[i])
		}
	}
	return total
}

func distance(a, b geom.PointOf[float32]) float32 {
	return math32.Hypot(b.X-a.X, b.Y-a.Y)
}

// BoundingBoxApprox returns an approximate bounding box of p, computed
// from the flattened polyline points (curves are not analytically
// bounded, matching the source's "approx" contract).
func (p *Path) BoundingBoxApprox() geom.RectangleOf[float32] {
	var (
		minX, minY = float32(0), float32(0)
		maxX, maxY = float32(0), float32(0)
		any        bool
	)
	for _, poly := range p.flatten() {
		for _, pt := range poly {
			if !any {
				minX, maxX, minY, maxY = pt.X, pt.X, pt.Y, pt.Y
				any = true
				continue
			}
			minX = math32.Min(minX, pt.X)
			minY = math32.Min(minY, pt.Y)
			maxX = math32.Max(maxX, pt.X)
			maxY = math32.Max(maxY, pt.Y)
		}
	}
	if !any {
		return geom.RectangleOf[float32]{}
	}
	return geom.Rect(minX, minY, maxX, maxY)
}
