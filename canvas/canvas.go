// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"github.com/glimmerui/glimmer/colors"
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/gradient"
	"github.com/glimmerui/glimmer/math32"
	"github.com/glimmerui/glimmer/path"
	"github.com/glimmerui/glimmer/render"
	"github.com/glimmerui/glimmer/sprite"
)

// Font is the subset of font identity Canvas carries as state; the
// shaping pipeline that turns (Font, text) into a [GlyphRun] lives
// outside this package and is supplied through a [FontShaper].
type Font struct {
	Family string
	Size   float32
}

// Glyph is one shaped, positioned glyph: Rect is its quad relative to
// the run's origin, UV its region within the glyph atlas texture, and
// Sprite the backing coverage bitmap a caller must keep retained until
// the command referencing it has flushed (DrawText does this for you).
type Glyph struct {
	Rect   geom.RectangleOf[float32]
	UV     geom.RectangleOf[float32]
	Sprite *sprite.Resource
}

// GlyphRun is a shaped run of glyphs ready to draw as a single command.
type GlyphRun struct {
	Glyphs  []Glyph
	Advance float32
}

// FontShaper turns text into a [GlyphRun] under font. The font/text
// pipeline provides the concrete implementation; Canvas only needs the
// result.
type FontShaper interface {
	Shape(text string, font Font) GlyphRun
}

// Paint is a draw operation's fill or stroke source: a flat color, a
// gradient, or an image as a repeating pattern. It mirrors the
// source's std::variant<ColorF, GradientPtr, Texture>; Go has no closed
// sum type, so at most one of Gradient/Texture is set, with Color as
// the fallback. Canvas's draw calls do not sample Texture: a Paint with
// only Texture set draws as its Color.
type Paint struct {
	Color    colors.Color[float32]
	Gradient *gradient.Resource
	Texture  *sprite.Resource
	// TextureMatrix transforms Texture's sample coordinates when Texture
	// is set; the identity matrix samples it 1:1 against the draw rect.
	TextureMatrix math32.Matrix2
}

// FlatPaint returns a [Paint] that draws a solid color.
func FlatPaint(c colors.Color[float32]) Paint { return Paint{Color: c} }

// GradientPaint returns a [Paint] that samples gradient's LUT.
func GradientPaint(g *gradient.Resource) Paint { return Paint{Gradient: g} }

// TexturePaint returns a [Paint] holding tex as a repeating pattern,
// transformed by matrix. Its Color is zero, and Canvas's draw calls do
// not sample Texture (see [Paint]).
func TexturePaint(tex *sprite.Resource, matrix math32.Matrix2) Paint {
	return Paint{Texture: tex, TextureMatrix: matrix}
}

func (p Paint) renderPaint() render.Paint {
	if p.Gradient != nil {
		return render.GradientPaint(p.Gradient.ID)
	}
	return render.FlatPaint(p.Color)
}

// state is the snapshot [Canvas.Save] pushes and [Canvas.Restore] pops.
type state struct {
	clipRect    geom.RectangleOf[float32]
	transform   math32.Matrix2
	strokePaint Paint
	fillPaint   Paint
	dashArray   []float32
	opacity     float32
	strokeWidth float32
	miterLimit  float32
	dashOffset  float32
	fillRule    path.FillRule
	joinStyle   path.JoinStyle
	capStyle    path.CapStyle
	font        Font
}

var defaultState = state{
	fillPaint:   FlatPaint(colors.New[float32](0, 0, 0, 1)),
	strokePaint: FlatPaint(colors.New[float32](0, 0, 0, 1)),
	opacity:     1,
	strokeWidth: 1,
	miterLimit:  4,
	transform:   math32.Identity2(),
	fillRule:    path.EvenOdd,
}

// Canvas is a thin state machine wrapping [RawCanvas]: it carries the
// current paint, stroke style, font, transform and clip rect so draw
// calls don't need to repeat them, and a stack of saved [state] values
// for Save/Restore. All coordinates Canvas's drawing methods take are
// in the canvas's own, pre-transform space; [Canvas.Transform] and
// friends affect how they land on the raw canvas beneath.
type Canvas struct {
	raw    *RawCanvas
	shaper FontShaper

	st    state
	stack []state
}

// New returns a [Canvas] drawing through raw, using shaper (which may
// be nil if the caller never calls FillText) to shape text.
func New(raw *RawCanvas, shaper FontShaper) *Canvas {
	return &Canvas{raw: raw, shaper: shaper, st: defaultState}
}

// Raw exposes the underlying [RawCanvas], for callers that need to drop
// beneath Canvas's state machine for one call.
func (c *Canvas) Raw() *RawCanvas { return c.raw }

func (c *Canvas) StrokePaint() Paint        { return c.st.strokePaint }
func (c *Canvas) SetStrokePaint(p Paint)    { c.st.strokePaint = p }
func (c *Canvas) FillPaint() Paint          { return c.st.fillPaint }
func (c *Canvas) SetFillPaint(p Paint)      { c.st.fillPaint = p }
func (c *Canvas) StrokeWidth() float32      { return c.st.strokeWidth }
func (c *Canvas) SetStrokeWidth(w float32)  { c.st.strokeWidth = w }
func (c *Canvas) Opacity() float32          { return c.st.opacity }
func (c *Canvas) SetOpacity(o float32)      { c.st.opacity = o }
func (c *Canvas) MiterLimit() float32       { return c.st.miterLimit }
func (c *Canvas) SetMiterLimit(l float32)   { c.st.miterLimit = l }
func (c *Canvas) FillRule() path.FillRule   { return c.st.fillRule }
func (c *Canvas) SetFillRule(r path.FillRule) { c.st.fillRule = r }
func (c *Canvas) JoinStyle() path.JoinStyle { return c.st.joinStyle }
func (c *Canvas) SetJoinStyle(j path.JoinStyle) { c.st.joinStyle = j }
func (c *Canvas) CapStyle() path.CapStyle   { return c.st.capStyle }
func (c *Canvas) SetCapStyle(s path.CapStyle) { c.st.capStyle = s }
func (c *Canvas) DashOffset() float32       { return c.st.dashOffset }
func (c *Canvas) SetDashOffset(o float32)   { c.st.dashOffset = o }
func (c *Canvas) DashArray() []float32      { return c.st.dashArray }
func (c *Canvas) SetDashArray(a []float32)  { c.st.dashArray = a }
func (c *Canvas) Font() Font                { return c.st.font }
func (c *Canvas) SetFont(f Font)            { c.st.font = f }
func (c *Canvas) Transform() math32.Matrix2 { return c.st.transform }
func (c *Canvas) SetTransform(m math32.Matrix2) { c.st.transform = m }

// ApplyTransform composes m onto the canvas's current transform.
func (c *Canvas) ApplyTransform(m math32.Matrix2) { c.st.transform = c.st.transform.Mul(m) }

// ClipRect returns the current clip rectangle and whether one is set.
func (c *Canvas) ClipRect() (geom.RectangleOf[float32], bool) {
	return c.st.clipRect, !c.st.clipRect.Empty()
}

// SetClipRect sets the canvas's clip rectangle to rect, replacing any
// earlier one rather than intersecting with it.
func (c *Canvas) SetClipRect(rect geom.RectangleOf[float32]) {
	c.st.clipRect = rect
	c.raw.state.Scissor = rect
}

// ResetClipRect clears the canvas's clip rectangle, so draws reach the
// whole canvas again.
func (c *Canvas) ResetClipRect() {
	c.st.clipRect = geom.RectangleOf[float32]{}
	c.raw.state.Scissor = geom.RectangleOf[float32]{}
}

// Reset puts the canvas's state back to its defaults and clears the
// save stack.
func (c *Canvas) Reset() {
	c.st = defaultState
	c.stack = c.stack[:0]
	c.raw.state = State{}
}

// Save pushes a copy of the canvas's current state onto its stack.
func (c *Canvas) Save() { c.stack = append(c.stack, c.st) }

// Restore pops and applies the most recently saved state.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.st = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.raw.state.Scissor = c.st.clipRect
}

// RestoreNoPop applies the most recently saved state without removing
// it from the stack, so a subsequent Restore still pops it.
func (c *Canvas) RestoreNoPop() {
	if len(c.stack) == 0 {
		return
	}
	c.st = c.stack[len(c.stack)-1]
	c.raw.state.Scissor = c.st.clipRect
}

func (c *Canvas) fillOrStroke() path.FillOrStroke {
	return path.AsFill(path.FillParams{Rule: c.st.fillRule})
}

func (c *Canvas) strokeParams() path.FillOrStroke {
	return path.AsStroke(path.StrokeParams{
		JoinStyle:   c.st.joinStyle,
		CapStyle:    c.st.capStyle,
		StrokeWidth: c.st.strokeWidth,
		MiterLimit:  c.st.miterLimit,
	})
}

func (c *Canvas) strokeShape(p *path.Path) *path.Path {
	if len(c.st.dashArray) > 0 {
		return p.Dashed(c.st.dashArray, c.st.dashOffset)
	}
	return p
}

func (c *Canvas) opaque(p Paint) render.Paint {
	rp := p.renderPaint()
	rp.Color.A *= c.st.opacity
	return rp
}

// StrokePath strokes p with the canvas's current stroke settings.
func (c *Canvas) StrokePath(p *path.Path) error {
	return c.raw.DrawPath(c.strokeShape(p), c.strokeParams(), c.opaque(c.st.strokePaint), c.st.transform)
}

// FillPath fills p with the canvas's current fill settings.
func (c *Canvas) FillPath(p *path.Path) error {
	return c.raw.DrawPath(p, c.fillOrStroke(), c.opaque(c.st.fillPaint), c.st.transform)
}

// StrokeRect strokes rect with the canvas's current stroke settings.
func (c *Canvas) StrokeRect(rect geom.RectangleOf[float32]) error {
	return c.raw.DrawRectangle(rect, 0, 0, c.strokeParams(), c.opaque(c.st.strokePaint), c.st.transform)
}

// FillRect fills rect with the canvas's current fill settings.
func (c *Canvas) FillRect(rect geom.RectangleOf[float32]) error {
	return c.raw.DrawRectangle(rect, 0, 0, c.fillOrStroke(), c.opaque(c.st.fillPaint), c.st.transform)
}

// StrokeEllipse strokes the ellipse inscribed in rect.
func (c *Canvas) StrokeEllipse(rect geom.RectangleOf[float32]) error {
	return c.raw.DrawEllipse(rect, c.strokeParams(), c.opaque(c.st.strokePaint), c.st.transform)
}

// FillEllipse fills the ellipse inscribed in rect.
func (c *Canvas) FillEllipse(rect geom.RectangleOf[float32]) error {
	return c.raw.DrawEllipse(rect, c.fillOrStroke(), c.opaque(c.st.fillPaint), c.st.transform)
}

func polygonPath(points []geom.PointOf[float32], close bool) *path.Path {
	p := path.New()
	if len(points) == 0 {
		return p
	}
	p.MoveTo(points[0])
	for _, pt := range points[1:] {
		p.LineTo(pt)
	}
	if close {
		p.Close()
	}
	return p
}

// StrokePolygon strokes the polyline through points, closing it back to
// points[0] first when close is true.
func (c *Canvas) StrokePolygon(points []geom.PointOf[float32], close bool) error {
	return c.StrokePath(polygonPath(points, close))
}

// FillPolygon fills the polygon through points, implicitly closed.
func (c *Canvas) FillPolygon(points []geom.PointOf[float32], close bool) error {
	return c.FillPath(polygonPath(points, close))
}

// StrokeLine strokes a single segment between pt1 and pt2.
func (c *Canvas) StrokeLine(pt1, pt2 geom.PointOf[float32]) error {
	return c.raw.DrawLine(pt1, pt2, c.st.strokeWidth, capStyleToEnd(c.st.capStyle), c.opaque(c.st.strokePaint), c.st.transform)
}

func capStyleToEnd(s path.CapStyle) LineEnd {
	switch s {
	case path.CapSquare:
		return Square
	case path.CapRound:
		return Round
	default:
		return Butt
	}
}

// FillText shapes text under the canvas's current font and draws it at
// position, offset by alignment*size (alignment {0,0} is top-left,
// {0.5,0.5} centers it on position, matching the source's convention).
func (c *Canvas) FillText(text string, position geom.PointOf[float32], alignment geom.PointOf[float32]) error {
	if c.shaper == nil {
		return nil
	}
	run := c.shaper.Shape(text, c.st.font)
	origin := geom.Pt(position.X-alignment.X*run.Advance, position.Y-alignment.Y*c.st.font.Size)
	return c.raw.DrawText(run, origin, c.opaque(c.st.fillPaint), render.SubpixelOff, c.st.transform)
}

// FillTextRect shapes text and draws it aligned within rect.
func (c *Canvas) FillTextRect(text string, rect geom.RectangleOf[float32], alignment geom.PointOf[float32]) error {
	if c.shaper == nil {
		return nil
	}
	run := c.shaper.Shape(text, c.st.font)
	origin := geom.Pt(
		rect.Min.X+alignment.X*(rect.Width()-run.Advance),
		rect.Min.Y+alignment.Y*(rect.Height()-c.st.font.Size),
	)
	return c.raw.DrawText(run, origin, c.opaque(c.st.fillPaint), render.SubpixelOff, c.st.transform)
}

// FillPrerenderedText draws a [GlyphRun] already shaped elsewhere (e.g.
// cached across frames), skipping the shaper entirely.
func (c *Canvas) FillPrerenderedText(run GlyphRun, position geom.PointOf[float32]) error {
	return c.raw.DrawText(run, position, c.opaque(c.st.fillPaint), render.SubpixelOff, c.st.transform)
}

// DrawImage draws image into rect, sampled through matrix.
func (c *Canvas) DrawImage(rect geom.RectangleOf[float32], image *sprite.Resource, matrix math32.Matrix2) error {
	return c.raw.DrawTexture(rect, image, 0, c.st.transform.Mul(matrix))
}
