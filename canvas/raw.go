// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package canvas is the drawing surface the widget tree paints onto:
// [RawCanvas] emits one [render.RenderState] command per call with no
// memory of its own, and [Canvas] wraps it with the paint/transform/clip
// state a caller would otherwise have to thread through every call
// itself.
package canvas

import (
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/gradient"
	"github.com/glimmerui/glimmer/math32"
	"github.com/glimmerui/glimmer/path"
	"github.com/glimmerui/glimmer/render"
	"github.com/glimmerui/glimmer/sprite"
)

// LineEnd selects how an open stroke's endpoint is capped. It mirrors
// [path.CapStyle]; RawCanvas keeps its own name for it since a caller
// drawing a single line has no Path in hand to hang path's name on.
type LineEnd uint8

const (
	Butt LineEnd = iota
	Square
	Round
)

func (e LineEnd) capStyle() path.CapStyle {
	switch e {
	case Square:
		return path.CapSquare
	case Round:
		return path.CapRound
	default:
		return path.CapFlat
	}
}

// State is the scissor/offset a [Save] snapshots and restores around a
// block of RawCanvas calls. It is deliberately smaller than [Canvas]'s
// own State: RawCanvas has no paint or font, only the clip and the
// coordinate offset (see [RawCanvas.SetOffset]).
type State struct {
	Scissor     geom.RectangleOf[float32]
	ScissorCorners RoundedCorners
	Offset      geom.PointOf[float32]
}

// RoundedCorners selects which of a scissor rectangle's four corners
// are rounded; bit i set means corner i is rounded, in
// top-left/top-right/bottom-right/bottom-left order.
type RoundedCorners uint8

const AllCorners RoundedCorners = 0b1111

// RawCanvas draws directly against a [render.Stream], taking every piece
// of state (paint, transform, clip) as call arguments. It has no saved
// state of its own beyond the current [State], which [Save] snapshots
// and restores; [Canvas] is the stateful wrapper most callers want.
type RawCanvas struct {
	stream      *render.Stream
	pixelRatio  float32
	state       State
}

// NewRawCanvas returns a [RawCanvas] emitting commands to stream.
// pixelRatio converts between the canvas's logical "dp" units and the
// device pixels the rasterizer and RenderState scissors work in; pass 1
// for a canvas already working in device pixels.
func NewRawCanvas(stream *render.Stream, pixelRatio float32) *RawCanvas {
	return &RawCanvas{stream: stream, pixelRatio: pixelRatio}
}

// dp converts a device-pixel length to the canvas's logical units.
func (c *RawCanvas) dp(px float32) float32 { return px / c.pixelRatio }

// idp converts a logical-unit length to device pixels.
func (c *RawCanvas) idp(dp float32) float32 { return dp * c.pixelRatio }

// invertdp converts a device-pixel point to logical units.
func (c *RawCanvas) invertdp(px geom.PointOf[float32]) geom.PointOf[float32] {
	return geom.Pt(c.dp(px.X), c.dp(px.Y))
}

// invertidp converts a logical-unit point to device pixels.
func (c *RawCanvas) invertidp(dp geom.PointOf[float32]) geom.PointOf[float32] {
	return geom.Pt(c.idp(dp.X), c.idp(dp.Y))
}

// State returns the canvas's current scissor/offset.
func (c *RawCanvas) State() State { return c.state }

// Flush submits any commands pushed so far to the stream's encoder. A
// caller driving a frame loop calls this once per frame, after every
// widget has drawn; tests call it directly to inspect what a draw call
// compiled down to.
func (c *RawCanvas) Flush() error { return c.stream.Flush() }

// Save is a snapshot of a [RawCanvas]'s [State], restored by calling
// Restore. The source expresses this as an RAII guard; Go has no
// destructor, so the caller must call Restore explicitly (typically with
// defer).
type Save struct {
	canvas *RawCanvas
	prior  State
}

// Save snapshots the canvas's current state, returning a [Save] that
// restores it on Restore.
func (c *RawCanvas) Save() Save {
	return Save{canvas: c, prior: c.state}
}

// Restore puts the canvas's state back to what it was when s was taken.
func (s Save) Restore() { s.canvas.state = s.prior }

// IntersectScissor narrows the canvas's current scissor to its
// intersection with rect, offset by the canvas's current offset.
func (c *RawCanvas) IntersectScissor(rect geom.RectangleOf[float32]) {
	offsetRect := geom.Rect(rect.Min.X+c.state.Offset.X, rect.Min.Y+c.state.Offset.Y,
		rect.Max.X+c.state.Offset.X, rect.Max.Y+c.state.Offset.Y)
	if c.state.Scissor.Empty() {
		c.state.Scissor = offsetRect
		return
	}
	c.state.Scissor = geom.Rect(
		max(c.state.Scissor.Min.X, offsetRect.Min.X), max(c.state.Scissor.Min.Y, offsetRect.Min.Y),
		min(c.state.Scissor.Max.X, offsetRect.Max.X), min(c.state.Scissor.Max.Y, offsetRect.Max.Y),
	)
}

// SetOffset sets the coordinate offset that IntersectScissor, DrawTexture
// and DrawMask translate their rectangles by. DrawPath, DrawLine,
// DrawRectangle, DrawEllipse, DrawArc, DrawShadow and DrawText do not
// apply it.
func (c *RawCanvas) SetOffset(offset geom.PointOf[float32]) { c.state.Offset = offset }

func (c *RawCanvas) offsetRect(r geom.RectangleOf[float32]) geom.RectangleOf[float32] {
	return geom.Rect(r.Min.X+c.state.Offset.X, r.Min.Y+c.state.Offset.Y, r.Max.X+c.state.Offset.X, r.Max.Y+c.state.Offset.Y)
}

func (c *RawCanvas) scissorOrFullPlane() geom.RectangleOf[float32] {
	if c.state.Scissor.Empty() {
		return geom.Rect[float32](-1<<20, -1<<20, 1<<20, 1<<20)
	}
	return c.state.Scissor
}

// clipRectPixels converts rect's logical-unit scissor to the integer
// device-pixel rectangle [path.Rasterize] clips against.
func (c *RawCanvas) clipRectPixels() geom.RectangleOf[int] {
	s := c.scissorOrFullPlane()
	return geom.RectangleOf[int]{
		Min: geom.Pt(int(c.idp(s.Min.X)), int(c.idp(s.Min.Y))),
		Max: geom.Pt(int(c.idp(s.Max.X)), int(c.idp(s.Max.Y))),
	}
}

func (c *RawCanvas) pushMask(rp path.RasterizedPath, paint render.Paint, matrix math32.Matrix2) error {
	if rp.Sprite == nil {
		return nil
	}
	state := render.RenderState{
		Shader:        render.ShaderMask,
		Fill:          paint,
		Scissor:       c.state.Scissor,
		PatternSprite: rp.Sprite.ID,
		Matrix:        matrix,
	}
	return c.stream.Push(state, nil, 1, rp.Sprite)
}

// DrawPath rasterizes p per fillOrStroke and draws its coverage with
// paint, transformed by matrix.
func (c *RawCanvas) DrawPath(p *path.Path, fillOrStroke path.FillOrStroke, paint render.Paint, matrix math32.Matrix2) error {
	rp, err := path.Rasterize(p, fillOrStroke, c.clipRectPixels())
	if err != nil {
		return err
	}
	return c.pushMask(rp, paint, matrix)
}

// DrawLine strokes a single segment from pt1 to pt2 with the given
// width and end style.
func (c *RawCanvas) DrawLine(pt1, pt2 geom.PointOf[float32], width float32, end LineEnd, paint render.Paint, matrix math32.Matrix2) error {
	p := path.New()
	p.MoveTo(c.invertidp(pt1))
	p.LineTo(c.invertidp(pt2))
	sp := path.AsStroke(path.StrokeParams{CapStyle: end.capStyle(), StrokeWidth: c.idp(width), MiterLimit: 4})
	return c.DrawPath(p, sp, paint, matrix)
}

// DrawRectangle fills or strokes rect with an optional uniform border
// radius, rotated by angle radians about its center.
func (c *RawCanvas) DrawRectangle(rect geom.RectangleOf[float32], borderRadius float32, angle float32, fillOrStroke path.FillOrStroke, paint render.Paint, matrix math32.Matrix2) error {
	device := geom.RectangleOf[float32]{
		Min: geom.Pt(c.idp(rect.Min.X), c.idp(rect.Min.Y)),
		Max: geom.Pt(c.idp(rect.Max.X), c.idp(rect.Max.Y)),
	}
	p := path.New()
	if borderRadius > 0 {
		p.AddRoundRect(device, c.idp(borderRadius), c.idp(borderRadius), path.CW)
	} else {
		p.AddRect(device, path.CW)
	}
	if angle != 0 {
		center := device.Center()
		m := math32.Translate2D(center.X, center.Y).Mul(math32.Rotate2D(angle)).Mul(math32.Translate2D(-center.X, -center.Y))
		p.Transform(m)
	}
	return c.DrawPath(p, fillOrStroke, paint, matrix)
}

// DrawEllipse fills or strokes the ellipse inscribed in rect.
func (c *RawCanvas) DrawEllipse(rect geom.RectangleOf[float32], fillOrStroke path.FillOrStroke, paint render.Paint, matrix math32.Matrix2) error {
	device := geom.RectangleOf[float32]{
		Min: geom.Pt(c.idp(rect.Min.X), c.idp(rect.Min.Y)),
		Max: geom.Pt(c.idp(rect.Max.X), c.idp(rect.Max.Y)),
	}
	p := path.New()
	p.AddEllipse(device, path.CW)
	return c.DrawPath(p, fillOrStroke, paint, matrix)
}

// DrawArc fills or strokes the arc of rect's inscribed ellipse spanning
// [startAngle, startAngle+sweepAngle) radians.
func (c *RawCanvas) DrawArc(rect geom.RectangleOf[float32], startAngle, sweepAngle float32, fillOrStroke path.FillOrStroke, paint render.Paint, matrix math32.Matrix2) error {
	device := geom.RectangleOf[float32]{
		Min: geom.Pt(c.idp(rect.Min.X), c.idp(rect.Min.Y)),
		Max: geom.Pt(c.idp(rect.Max.X), c.idp(rect.Max.Y)),
	}
	p := path.New()
	deg := func(r float32) float32 { return r * 180 / math32.Pi }
	p.ArcTo(device, deg(startAngle), deg(sweepAngle), true)
	return c.DrawPath(p, fillOrStroke, paint, matrix)
}

// DrawShadow fills rect's rounded-rectangle silhouette, blurred by
// radius and offset by offset, behind whatever draws rect itself.
func (c *RawCanvas) DrawShadow(rect geom.RectangleOf[float32], borderRadius, blurRadius float32, offset geom.PointOf[float32], color render.Paint, matrix math32.Matrix2) error {
	shadowRect := geom.Rect(rect.Min.X+offset.X, rect.Min.Y+offset.Y, rect.Max.X+offset.X, rect.Max.Y+offset.Y)
	device := geom.RectangleOf[float32]{
		Min: geom.Pt(c.idp(shadowRect.Min.X), c.idp(shadowRect.Min.Y)),
		Max: geom.Pt(c.idp(shadowRect.Max.X), c.idp(shadowRect.Max.Y)),
	}
	p := path.New()
	if borderRadius > 0 {
		p.AddRoundRect(device, c.idp(borderRadius), c.idp(borderRadius), path.CW)
	} else {
		p.AddRect(device, path.CW)
	}
	rp, err := path.Rasterize(p, path.AsFill(path.FillParams{Rule: path.Winding}), c.clipRectPixels())
	if err != nil {
		return err
	}
	if rp.Sprite == nil {
		return nil
	}
	state := render.RenderState{
		Shader:        render.ShaderMask,
		Fill:          color,
		Scissor:       c.state.Scissor,
		PatternSprite: rp.Sprite.ID,
		BlurRadius:    c.idp(blurRadius),
		Shadow:        true,
		Matrix:        matrix,
	}
	return c.stream.Push(state, nil, 1, rp.Sprite)
}

// DrawTexture draws tex into rect, sampled through matrix; channel
// selects which texture unit/channel the shader samples it from (the
// sprite atlas texture vs. a separate pattern texture), mirroring
// RenderState.TextureChannel.
func (c *RawCanvas) DrawTexture(rect geom.RectangleOf[float32], tex *sprite.Resource, channel int32, matrix math32.Matrix2) error {
	if tex == nil {
		return nil
	}
	state := render.RenderState{
		Shader:         render.ShaderRectangles,
		Scissor:        c.state.Scissor,
		PatternSprite:  tex.ID,
		TextureChannel: channel,
		Matrix:         matrix,
	}
	device := c.offsetRect(rect)
	data := []float32{c.idp(device.Min.X), c.idp(device.Min.Y), c.idp(device.Max.X), c.idp(device.Max.Y)}
	return c.stream.Push(state, data, 1, tex)
}

// DrawMask draws mask (an 8-bit coverage sprite, e.g. a glyph or an
// icon's rasterized path) into rect using paint as its color source.
func (c *RawCanvas) DrawMask(rect geom.RectangleOf[float32], mask *sprite.Resource, paint render.Paint, matrix math32.Matrix2) error {
	if mask == nil {
		return nil
	}
	state := render.RenderState{
		Shader:        render.ShaderMask,
		Fill:          paint,
		Scissor:       c.state.Scissor,
		PatternSprite: mask.ID,
		Matrix:        matrix,
	}
	device := c.offsetRect(rect)
	data := []float32{c.idp(device.Min.X), c.idp(device.Min.Y), c.idp(device.Max.X), c.idp(device.Max.Y)}
	return c.stream.Push(state, data, 1, mask)
}

// DrawText draws a shaped glyph run (see [FontShaper]) at pos, colored
// by paint. Every glyph in the run shares one Text-shader RenderState;
// their quads and atlas UVs are the command's per-instance data, so one
// DrawText call costs one command regardless of the run's glyph count.
func (c *RawCanvas) DrawText(run GlyphRun, pos geom.PointOf[float32], paint render.Paint, subpixel render.SubpixelMode, matrix math32.Matrix2) error {
	if len(run.Glyphs) == 0 {
		return nil
	}
	data := make([]float32, 0, len(run.Glyphs)*8)
	textures := make([]*sprite.Resource, 0, len(run.Glyphs))
	for _, g := range run.Glyphs {
		quad := geom.Rect(
			c.idp(pos.X+g.Rect.Min.X), c.idp(pos.Y+g.Rect.Min.Y),
			c.idp(pos.X+g.Rect.Max.X), c.idp(pos.Y+g.Rect.Max.Y),
		)
		data = append(data, quad.Min.X, quad.Min.Y, quad.Max.X, quad.Max.Y,
			g.UV.Min.X, g.UV.Min.Y, g.UV.Max.X, g.UV.Max.Y)
		if g.Sprite != nil {
			textures = append(textures, g.Sprite)
		}
	}
	state := render.RenderState{
		Shader:   render.ShaderText,
		Subpixel: subpixel,
		Fill:     paint,
		Scissor:  c.state.Scissor,
		Matrix:   matrix,
	}
	return c.stream.Push(state, data, len(run.Glyphs), textures...)
}

// gradientPaint is a convenience constructor mirroring render.GradientPaint,
// kept here so callers drawing through canvas don't need a direct
// gradient import just to build a [render.Paint].
func gradientPaint(r *gradient.Resource) render.Paint {
	if r == nil {
		return render.Paint{}
	}
	return render.GradientPaint(r.ID)
}
