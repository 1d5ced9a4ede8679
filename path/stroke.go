// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/math32"
)

// FillRule selects how a filled path's self-overlaps and nested
// subpaths combine into the final coverage.
type FillRule uint8

const (
	EvenOdd FillRule = iota
	Winding
)

// JoinStyle selects how two stroked segments meet at a vertex.
type JoinStyle uint8

const (
	JoinMiter JoinStyle = iota
	JoinBevel
	JoinRound
)

// CapStyle selects how an open subpath's stroke ends.
type CapStyle uint8

const (
	CapFlat CapStyle = iota
	CapSquare
	CapRound
)

// FillParams selects the fill rule for a fill rasterization.
type FillParams struct {
	Rule FillRule
}

// StrokeParams selects the join/cap/width/miter-limit for a stroke
// rasterization.
type StrokeParams struct {
	JoinStyle   JoinStyle
	CapStyle    CapStyle
	StrokeWidth float32
	MiterLimit  float32
}

// FillOrStroke is a tagged union of [FillParams] and [StrokeParams]:
// exactly one of Fill or Stroke is meaningful, selected by IsStroke.
// The source models this as a variant; Path element kinds and shader
// kinds elsewhere in this package use the same tagged-struct idiom
// since Go has no closed sum type.
type FillOrStroke struct {
	IsStroke bool
	Fill     FillParams
	Stroke   StrokeParams
}

// AsFill wraps fill as a [FillOrStroke].
func AsFill(fill FillParams) FillOrStroke { return FillOrStroke{Fill: fill} }

// AsStroke wraps stroke as a [FillOrStroke].
func AsStroke(stroke StrokeParams) FillOrStroke {
	return FillOrStroke{IsStroke: true, Stroke: stroke}
}

// Dashed returns a copy of p with every subpath cut into dash segments
// per pattern (alternating on/off lengths), starting offset distance
// into the pattern. An empty or all-zero pattern returns a clone of p
// unchanged.
func (p *Path) Dashed(pattern []float32, offset float32) *Path {
	total := float32(0)
	for _, v := range pattern {
		total += v
	}
	if len(pattern) == 0 || total <= 0 {
		return p.Clone()
	}

	out := New()
	for _, poly := range p.flatten() {
		dashPolyline(out, poly, pattern, offset)
	}
	return out
}

func dashPolyline(out *Path, poly []geom.PointOf[float32], pattern []float32, offset float32) {
	if len(poly) < 2 {
		return
	}

	total := float32(0)
	for _, v := range pattern {
		total += v
	}
	pos := math32.Mod(offset, total)
	if pos < 0 {
		pos += total
	}
	idx := 0
	for pos >= pattern[idx] {
		pos -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	on := idx%2 == 0
	remaining := pattern[idx] - pos

	penDown := false
	start := func(pt geom.PointOf[float32]) {
		out.MoveTo(pt)
		penDown = true
	}
	lineOrMove := func(pt geom.PointOf[float32]) {
		if on {
			if !penDown {
				out.MoveTo(pt)
				penDown = true
			} else {
				out.LineTo(pt)
			}
		} else {
			penDown = false
		}
	}

	if on {
		start(poly[0])
	}

	for i := 1; i < len(poly); i++ {
		a, b := poly[i-1], poly[i]
		segLen := distance(a, b)
		traveled := float32(0)
		for traveled < segLen {
			step := math32.Min(remaining, segLen-traveled)
			traveled += step
			remaining -= step
			t := traveled / segLen
			pt := geom.Pt(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
			if remaining <= 0 {
				lineOrMove(pt)
				idx = (idx + 1) % len(pattern)
				on = !on
				remaining = pattern[idx]
				if on {
					start(pt)
				} else {
					penDown = false
				}
			}
		}
		if on && penDown {
			out.LineTo(b)
		}
	}
}

// strokeToFill expands every subpath of p's flattened centerline into a
// fillable outline polygon: closed subpaths become a pair of rings (outer
// boundary plus a reversed inner boundary, opening a hole along the
// centerline), open subpaths become a single ring that walks one offset
// side out, caps the end, walks the other side back, and caps the start.
func strokeToFill(p *Path, sp StrokeParams) *Path {
	hw := sp.StrokeWidth / 2
	out := New()
	for _, poly := range p.flatten() {
		pts := poly
		closed := len(pts) > 2 && pts[0] == pts[len(pts)-1]
		if closed {
			pts = pts[:len(pts)-1]
		}
		if len(pts) < 2 {
			continue
		}
		strokeSubpath(out, pts, closed, hw, sp)
	}
	return out
}

func strokeSubpath(out *Path, pts []geom.PointOf[float32], closed bool, hw float32, sp StrokeParams) {
	n := len(pts)
	segCount := n - 1
	if closed {
		segCount = n
	}
	if segCount < 1 {
		return
	}

	dirs := make([]geom.PointOf[float32], segCount)
	normals := make([]geom.PointOf[float32], segCount)
	for i := 0; i < segCount; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math32.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		dirs[i] = geom.Pt(dx/l, dy/l)
		normals[i] = geom.Pt(-dirs[i].Y, dirs[i].X)
	}

	left := buildOffsetSide(pts, dirs, normals, hw, closed, sp.JoinStyle, sp.MiterLimit)
	right := buildOffsetSide(pts, dirs, normals, -hw, closed, sp.JoinStyle, sp.MiterLimit)
	if len(left) == 0 || len(right) == 0 {
		return
	}

	if closed {
		emitClosed(out, left)
		emitClosed(out, reversePoints(right))
		return
	}

	var ring []geom.PointOf[float32]
	ring = append(ring, left...)
	ring = append(ring, capGeometry(pts[n-1], dirs[segCount-1], normals[segCount-1], hw, sp.CapStyle)...)
	ring = append(ring, reversePoints(right)...)
	ring = append(ring, capGeometry(pts[0], dirs[0].Negate(), normals[0].Negate(), hw, sp.CapStyle)...)
	emitClosed(out, ring)
}

// buildOffsetSide walks pts' edges and returns one continuous offset
// polyline signedHW away from the centerline (positive runs along each
// edge's left normal, negative along its right normal), inserting join
// geometry between consecutive edges per join/miterLimit.
func buildOffsetSide(pts, dirs, normals []geom.PointOf[float32], signedHW float32, closed bool, join JoinStyle, miterLimit float32) []geom.PointOf[float32] {
	segCount := len(dirs)
	n := len(pts)
	var out []geom.PointOf[float32]
	for i := 0; i < segCount; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		aOff := a.Add(normals[i].MulScalar(signedHW))
		bOff := b.Add(normals[i].MulScalar(signedHW))
		out = append(out, aOff, bOff)

		if i+1 < segCount || closed {
			j := (i + 1) % segCount
			if normals[i] != normals[j] {
				out = append(out, joinPoints(b, dirs[i], normals[i], dirs[j], normals[j], signedHW, join, miterLimit)...)
			}
		}
	}
	return out
}

func joinPoints(vertex, dirPrev, normalPrev, dirNext, normalNext geom.PointOf[float32], signedHW float32, join JoinStyle, miterLimit float32) []geom.PointOf[float32] {
	switch join {
	case JoinRound:
		p0 := vertex.Add(normalPrev.MulScalar(signedHW))
		p1 := vertex.Add(normalNext.MulScalar(signedHW))
		return arcBetween(vertex, p0, p1, math32.Abs(signedHW))
	case JoinMiter:
		p0 := vertex.Add(normalPrev.MulScalar(signedHW))
		p1 := vertex.Add(normalNext.MulScalar(signedHW))
		if mp, ok := lineIntersect(p0, dirPrev, p1, dirNext); ok {
			if distance(vertex, mp) <= miterLimit*math32.Abs(signedHW) {
				return []geom.PointOf[float32]{mp}
			}
		}
		return nil // miter limit exceeded, falls back to a bevel
	default: // JoinBevel
		return nil
	}
}

// capGeometry returns the intermediate points (excluding the two offset
// endpoints already in the ring) that close off an open subpath's end.
// outwardDir points away from the subpath at that end.
func capGeometry(center, outwardDir, normal geom.PointOf[float32], hw float32, style CapStyle) []geom.PointOf[float32] {
	switch style {
	case CapSquare:
		p0 := center.Add(normal.MulScalar(hw))
		p1 := center.Add(normal.MulScalar(-hw))
		ext := outwardDir.MulScalar(hw)
		return []geom.PointOf[float32]{p0.Add(ext), p1.Add(ext)}
	case CapRound:
		return capArc(center, outwardDir, normal, hw)
	default: // CapFlat
		return nil
	}
}

// capArc sweeps from center+normal*hw to center-normal*hw, bulging
// outward along dir, as a half-circle approximated by line segments.
func capArc(center, dir, normal geom.PointOf[float32], hw float32) []geom.PointOf[float32] {
	const steps = 8
	out := make([]geom.PointOf[float32], 0, steps-1)
	for i := 1; i < steps; i++ {
		theta := math32.Pi * float32(i) / float32(steps)
		c, s := math32.Cos(theta), math32.Sin(theta)
		out = append(out, geom.Pt(
			center.X+normal.X*hw*c+dir.X*hw*s,
			center.Y+normal.Y*hw*c+dir.Y*hw*s,
		))
	}
	return out
}

// arcBetween returns the points (excluding p0 and p1) along the shorter
// circular arc of the given radius around c from p0 to p1.
func arcBetween(c, p0, p1 geom.PointOf[float32], radius float32) []geom.PointOf[float32] {
	a0 := math32.Atan2(p0.Y-c.Y, p0.X-c.X)
	a1 := math32.Atan2(p1.Y-c.Y, p1.X-c.X)
	delta := a1 - a0
	for delta > math32.Pi {
		delta -= 2 * math32.Pi
	}
	for delta < -math32.Pi {
		delta += 2 * math32.Pi
	}
	steps := int(math32.Abs(delta)/math32.DegToRad(15)) + 1
	out := make([]geom.PointOf[float32], 0, steps)
	for i := 1; i < steps; i++ {
		t := float32(i) / float32(steps)
		a := a0 + delta*t
		out = append(out, geom.Pt(c.X+radius*math32.Cos(a), c.Y+radius*math32.Sin(a)))
	}
	return out
}

func lineIntersect(p0, d0, p1, d1 geom.PointOf[float32]) (geom.PointOf[float32], bool) {
	cross := d0.X*d1.Y - d0.Y*d1.X
	if math32.Abs(cross) < 1e-6 {
		return geom.PointOf[float32]{}, false
	}
	t := ((p1.X-p0.X)*d1.Y - (p1.Y-p0.Y)*d1.X) / cross
	return p0.Add(d0.MulScalar(t)), true
}

func reversePoints(pts []geom.PointOf[float32]) []geom.PointOf[float32] {
	out := make([]geom.PointOf[float32], len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func emitClosed(out *Path, ring []geom.PointOf[float32]) {
	if len(ring) < 3 {
		return
	}
	out.MoveTo(ring[0])
	for _, p := range ring[1:] {
		out.LineTo(p)
	}
	out.Close()
}
