// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package font is the consumer side of an external OpenType shaper: it
// declares [Font]/[TextWithOptions] as the inputs a [Backend] shapes,
// [ShapedRuns]/[GlyphRun]/[Glyph] as what comes back, and [Manager] as
// the glyph-sprite and shaped-run caches that sit in front of it so a
// widget tree calling Shape every frame doesn't re-run OpenType shaping
// or re-rasterize a glyph it already has.
package font

import (
	"github.com/glimmerui/glimmer/geom"
)

// Style is a font's slant.
type Style uint8

const (
	Normal Style = iota
	Italic
)

// Weight is a font's stroke weight, on the same 100-900 scale as CSS
// font-weight.
type Weight uint16

const (
	Thin       Weight = 100
	ExtraLight Weight = 200
	Light      Weight = 300
	Regular    Weight = 400
	Medium     Weight = 500
	SemiBold   Weight = 600
	Bold       Weight = 700
	ExtraBold  Weight = 800
	Black      Weight = 900
)

// Decoration is a bitset of line decorations drawn alongside text.
type Decoration uint8

const (
	DecorationNone Decoration = 0
	Underline      Decoration = 1 << (iota - 1)
	Overline
	LineThrough
)

// Flags selects shaping/rasterization options a [Backend] honors.
type Flags uint8

const (
	FlagsDefault   Flags = 0
	DisableKerning Flags = 1 << (iota - 1)
	DisableHinting
	DisableLigatures
)

// Font is a font request: a family name (resolved by the backend
// against installed/registered fonts, including merged fallback
// families) plus the style axes and text-layout knobs that affect
// shaping. It must stay comparable (no slices/maps) since it is half of
// the shaping cache's key.
type Font struct {
	Family        string
	Size          float32
	Style         Style
	Weight        Weight
	Decoration    Decoration
	LineHeight    float32
	TabWidth      float32
	LetterSpacing float32
	WordSpacing   float32
	VerticalAlign float32
	Flags         Flags
}

// Default returns the font a widget with no explicit font styling uses.
func Default() Font {
	return Font{Size: 10, Weight: Regular, LineHeight: 1.2, TabWidth: 8}
}

// Direction is a run's reading direction.
type Direction uint8

const (
	LTR Direction = iota
	RTL
)

// LayoutOptions modifies how [TextWithOptions.Text] is shaped.
type LayoutOptions uint32

const (
	LayoutDefault    LayoutOptions = 0
	LayoutSingleLine LayoutOptions = 1
)

// TextWithOptions is shaping's other input: the text itself plus the
// layout flags and base direction that affect how it breaks and
// resolves mixed-direction runs. Like [Font], it must stay comparable.
type TextWithOptions struct {
	Text             string
	Options          LayoutOptions
	DefaultDirection Direction
}

// Metrics is a font's vertical measurements at its shaped size.
type Metrics struct {
	Size          float32
	Ascender      float32
	Descender     float32
	Height        float32
	SpaceAdvanceX float32
	LineThickness float32
	XHeight       float32
	CapitalHeight float32
}

// LineGap is the leading left over once ascender-descender is
// subtracted from the line height.
func (m Metrics) LineGap() float32 { return m.Height - (m.Ascender - m.Descender) }

// GlyphFlags is a bitset of per-glyph properties a shaper reports
// alongside its position, used to drive line breaking without
// re-deriving it from the codepoint.
type GlyphFlags uint8

const (
	GlyphNone    GlyphFlags = 0
	SafeToBreak  GlyphFlags = 1 << (iota - 1)
	AtLineBreak
	IsControl
	IsPrintable
	IsCompactedWhitespace
)

// Glyph is one shaped glyph: its id within its face, the codepoint it
// came from, its pen position relative to the run's origin, and the
// caret offsets either side of it for cursor placement.
type Glyph struct {
	GlyphID    uint32
	Codepoint  rune
	Pos        geom.PointOf[float32]
	LeftCaret  float32
	RightCaret float32
	BeginChar  uint32
	EndChar    uint32
	Direction  Direction
	Flags      GlyphFlags
}

// Face identifies a shaped run's backing font face, opaque to this
// package; a [Backend] hands one back per [Font] it resolves, and a
// glyph's rasterized sprite is cached keyed partly by it, since the
// same glyph id means different glyphs in different faces.
type Face uintptr

// GlyphRun is one shaped, directionally-uniform run of glyphs sharing a
// face, size and decoration.
type GlyphRun struct {
	Glyphs        []Glyph
	Face          Face
	FontSize      float32
	Metrics       Metrics
	Decoration    Decoration
	Direction     Direction
	VisualOrder   int32
	VerticalAlign float32
	Line          int
	Position      geom.PointOf[float32]
}

// Bounds returns the run's extent in its own coordinate space:
// horizontally from the leftmost to the rightmost glyph pen position
// (the last glyph's own advance is not included), vertically from
// -Ascender to -Descender.
func (r GlyphRun) Bounds() geom.RectangleOf[float32] {
	if len(r.Glyphs) == 0 {
		return geom.RectangleOf[float32]{}
	}
	minX, maxX := r.Glyphs[0].Pos.X, r.Glyphs[0].Pos.X
	for _, g := range r.Glyphs {
		minX = min(minX, g.Pos.X)
		maxX = max(maxX, g.Pos.X)
	}
	return geom.Rect(minX, -r.Metrics.Ascender, maxX, -r.Metrics.Descender)
}

// ShapedRuns is a shaping call's full result: one or more directionally-
// uniform [GlyphRun]s (bidi text splits into more than one).
type ShapedRuns struct {
	Runs    []GlyphRun
	Options LayoutOptions
}

// Backend is the external OpenType shaper and face loader this package
// consumes. A concrete implementation wraps a real shaping/rasterizing
// library (HarfBuzz, FreeType, or a platform text API); this package
// never shapes or rasterizes itself.
type Backend interface {
	// Shape lays text out under font, returning one or more glyph runs.
	Shape(font Font, text TextWithOptions) ShapedRuns
	// Metrics returns font's vertical measurements.
	Metrics(font Font) Metrics
	// HasCodepoint reports whether font (or one of its fallback
	// families) can render r.
	HasCodepoint(font Font, r rune) bool
	// Bounds returns the rectangle text occupies when shaped under font.
	Bounds(font Font, text TextWithOptions) geom.RectangleOf[float32]
	// RasterizeGlyph rasterizes glyphID from face at fontSize into an
	// 8-bit coverage bitmap, offset by subpixelX/256ths of a pixel for
	// subpixel-positioned text. ok is false if the glyph has no ink
	// (e.g. a space).
	RasterizeGlyph(face Face, glyphID uint32, fontSize float32, subpixelX int8, flags Flags) (GlyphBitmap, bool)
}

// GlyphBitmap is a rasterized glyph's coverage bitmap plus the
// positioning data needed to place it relative to the pen: Bearing is
// the offset from the pen position to the bitmap's top-left corner,
// and Advance is how far the pen moves after drawing it.
type GlyphBitmap struct {
	Size     geom.SizeOf[int]
	Pixels   []uint8
	Bearing  geom.PointOf[float32]
	Advance  float32
}
