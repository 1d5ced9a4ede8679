// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package font

import (
	"github.com/glimmerui/glimmer/canvas"
	"github.com/glimmerui/glimmer/geom"
)

// CanvasShaper adapts a [Manager] to [canvas.FontShaper], so a [canvas.Canvas]
// can call FillText without its caller threading glyph sprites through by
// hand. It only ever shapes with [LTR] base direction and no special
// [LayoutOptions]; a caller that needs bidi or single-line layout shapes
// through the [Manager] directly and draws the result with
// [canvas.Canvas.FillPrerenderedText] instead.
type CanvasShaper struct {
	manager *Manager
}

// NewCanvasShaper returns a [canvas.FontShaper] backed by manager.
func NewCanvasShaper(manager *Manager) *CanvasShaper {
	return &CanvasShaper{manager: manager}
}

// Shape implements [canvas.FontShaper].
func (s *CanvasShaper) Shape(text string, cf canvas.Font) canvas.GlyphRun {
	f := Font{Family: cf.Family, Size: cf.Size, Weight: Regular, LineHeight: 1.2, TabWidth: 8}
	shaped := s.manager.Shape(f, TextWithOptions{Text: text})

	var glyphs []canvas.Glyph
	var advance float32
	for _, run := range shaped.Runs {
		for _, g := range run.Glyphs {
			gs := s.manager.sprites.Get(s.manager.backend, run.Face, g.GlyphID, run.FontSize, 0, f.Flags)
			if end := g.Pos.X + gs.Advance; end > advance {
				advance = end
			}
			if gs.Sprite == nil {
				continue
			}
			origin := g.Pos.Add(gs.Bearing)
			rect := geom.Rect(
				origin.X, origin.Y,
				origin.X+float32(gs.Size.Width), origin.Y+float32(gs.Size.Height),
			)
			glyphs = append(glyphs, canvas.Glyph{
				Rect:   rect,
				UV:     geom.Rect[float32](0, 0, 1, 1),
				Sprite: gs.Sprite,
			})
		}
	}
	return canvas.GlyphRun{Glyphs: glyphs, Advance: advance}
}
