// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"github.com/glimmerui/glimmer/canvas"
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/math32"
	"github.com/glimmerui/glimmer/path"
	"github.com/glimmerui/glimmer/render"
)

// Painter draws a widget's box into rect on cv, using s's resolved values.
// A widget tree's Paint phase calls the widget's Painter (or BoxPainter if
// none was set) once per frame, in z-order.
type Painter func(cv *canvas.Canvas, s *Style, rect geom.RectangleOf[float32])

// BoxPainter is the default Painter: it draws, in order, the drop shadow (if
// ShadowSize is nonzero), the background fill, and the border stroke. Corner
// radii and border widths are taken from s's resolved values.
//
// path.Path only supports a single uniform (rx, ry) radius per rounded
// rect, unlike the four independent per-corner radii BorderRadius resolves
// to, so BoxPainter takes a fast uniform-radius path when all four corners
// (and, for the border, all four edge widths) agree, and otherwise falls
// back to the largest corner radius for the whole rect: an approximation,
// not a per-corner render.
func BoxPainter(cv *canvas.Canvas, s *Style, rect geom.RectangleOf[float32]) {
	tl, tr, br, bl := s.BorderRadius()
	radius := tl
	if tr != tl || br != tl || bl != tl {
		radius = math32.Max(math32.Max(tl, tr), math32.Max(br, bl))
	}

	if shadow := s.ShadowSize(); shadow > 0 {
		cv.Raw().DrawShadow(rect, radius, shadow, geom.PointOf[float32]{}, render.FlatPaint(s.ShadowColor()), cv.Transform())
	}

	bg := s.BackgroundColor()
	if bg.A > 0 {
		p := path.New()
		p.AddRoundRect(rect, radius, radius, path.CCW)
		cv.SetFillPaint(render.FlatPaint(bg))
		cv.FillPath(p)
	}

	top, right, bottom, left := s.BorderWidth()
	if top > 0 || right > 0 || bottom > 0 || left > 0 {
		width := top
		if right > width {
			width = right
		}
		if bottom > width {
			width = bottom
		}
		if left > width {
			width = left
		}
		p := path.New()
		p.AddRoundRect(rect, radius, radius, path.CCW)
		cv.SetStrokePaint(render.FlatPaint(s.BorderColor()))
		cv.SetStrokeWidth(width)
		cv.StrokePath(p)
	}
}
