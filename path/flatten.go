// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/math32"
)

// flatten reduces p to one polyline per subpath, approximating every
// CubicTo with a run of line segments. The point count per curve scales
// with its chord-length estimate (same heuristic as fogleman/gg's
// bezier flattener: roughly one point per device pixel of travel,
// floored at 4), rather than a fixed tessellation, so short curves
// (most glyph outline segments) don't waste points and long ones stay
// smooth.
func (p *Path) flatten() [][]geom.PointOf[float32] {
	var subpaths [][]geom.PointOf[float32]
	var cur []geom.PointOf[float32]

	flushCur := func() {
		if len(cur) > 0 {
			subpaths = append(subpaths, cur)
			cur = nil
		}
	}

	for _, s := range p.segments {
		switch s.Element {
		case MoveTo:
			flushCur()
			cur = []geom.PointOf[float32]{s.End}
		case LineTo:
			cur = append(cur, s.End)
		case Close:
			cur = append(cur, s.End)
		case CubicTo:
			if len(cur) == 0 {
				cur = []geom.PointOf[float32]{s.End}
				continue
			}
			start := cur[len(cur)-1]
			pts := flattenCubic(start, s.C1, s.C2, s.End)
			cur = append(cur, pts[1:]...)
		}
	}
	flushCur()
	return subpaths
}

// flattenCubic tessellates a cubic Bézier into a polyline, including
// both endpoints.
func flattenCubic(p0, c1, c2, p3 geom.PointOf[float32]) []geom.PointOf[float32] {
	l := math32.Hypot(c1.X-p0.X, c1.Y-p0.Y) +
		math32.Hypot(c2.X-c1.X, c2.Y-c1.Y) +
		math32.Hypot(p3.X-c2.X, p3.Y-c2.Y)
	n := int(l + 0.5)
	if n < 4 {
		n = 4
	}
	out := make([]geom.PointOf[float32], n)
	d := float32(n - 1)
	for i := 0; i < n; i++ {
		t := float32(i) / d
		out[i] = cubicPoint(p0, c1, c2, p3, t)
	}
	return out
}

func cubicPoint(p0, c1, c2, p3 geom.PointOf[float32], t float32) geom.PointOf[float32] {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return geom.Pt(
		a*p0.X+b*c1.X+c*c2.X+d*p3.X,
		a*p0.Y+b*c1.Y+c*c2.Y+d*p3.Y,
	)
}
