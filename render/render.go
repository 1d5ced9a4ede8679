// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render defines [RenderState], the GPU-facing command a draw
// call compiles down to, and [Stream], which batches and flushes a run
// of them against a backend [Encoder].
package render

import (
	"github.com/glimmerui/glimmer/colors"
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/gradient"
	"github.com/glimmerui/glimmer/math32"
)

// ShaderKind selects which fragment shader a [RenderState] dispatches to.
// Rectangles, Arcs, and Text are specialized shaders that draw their
// primitive directly from a few instance floats without rasterizing a
// sprite first; Mask draws the coverage sprite a path was rasterized to.
type ShaderKind uint8

const (
	ShaderMask ShaderKind = iota
	ShaderRectangles
	ShaderArcs
	ShaderText
)

// SubpixelMode selects how a Text-shader [RenderState] resolves partial
// pixel coverage at glyph edges.
type SubpixelMode uint8

const (
	SubpixelOff SubpixelMode = iota
	SubpixelRGB
	SubpixelBGR
)

// Paint is a RenderState's fill or stroke source: either a flat color or
// a row in the gradient atlas, selected by GradientID being nonzero.
type Paint struct {
	Color      colors.Color[float32]
	GradientID gradient.ID
}

// FlatPaint returns a [Paint] that draws a solid color.
func FlatPaint(c colors.Color[float32]) Paint { return Paint{Color: c} }

// GradientPaint returns a [Paint] that samples g's LUT row.
func GradientPaint(id gradient.ID) Paint { return Paint{GradientID: id} }

// RenderState is one GPU draw command: the tag-indexed argument list
// spec.md's render pipeline builds up (shader kind, subpixel mode,
// fill/stroke paint, gradient control points, scissor, pattern texture,
// blur, texture channel, contour/shadow flags, coordinate matrix) plus
// the {offset, size, instances} window it occupies in the batch's
// shared per-instance data buffer, filled in by [Stream.Push]. The
// command-count accounting the stream flushes against treats every
// RenderState as a fixed 256-byte slot regardless of its actual Go
// layout size, matching the budget the backend's constant buffer is
// sized for.
type RenderState struct {
	Shader   ShaderKind
	Subpixel SubpixelMode

	Fill   Paint
	Stroke Paint

	GradientP1, GradientP2 geom.PointOf[float32]

	Scissor geom.RectangleOf[float32]

	// PatternSprite is a sprite atlas id sampled as a repeating pattern
	// texture instead of Fill.Color; 0 means no pattern.
	PatternSprite uint64

	BlurRadius     float32
	TextureChannel int32

	Contour bool
	Shadow  bool

	Matrix math32.Matrix2

	DataOffset uint32
	DataSize   uint32
	Instances  uint32
}
