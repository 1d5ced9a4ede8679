// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/math32"
	"github.com/glimmerui/glimmer/sprite"
)

// RasterizedPath is the result of rasterizing a fill or stroke: Sprite
// carries the 8-bit alpha coverage, ready to upload to the sprite atlas;
// Bounds is its integer pixel rectangle in the path's own coordinate
// space. A path with no coverage (empty, or clipped away entirely)
// rasterizes to a nil Sprite and a zero Bounds.
type RasterizedPath struct {
	Sprite *sprite.Resource
	Bounds geom.RectangleOf[int]
}

// Rasterize fills or strokes p, per params, into an 8-bit alpha-coverage
// sprite clipped to clipRect. Strokes are first expanded into an
// equivalent fill outline (see [strokeToFill]) since the scanline filler
// only knows how to fill.
//
// x/image/vector.Rasterizer accumulates a signed winding number per pixel
// and clamps its absolute value to full coverage, which matches
// [Winding]; [EvenOdd] is approximated with the same accumulation, since
// the two rules only disagree where a path's winding number reaches 2 or
// more, which stroke outlines and the shapes this package builds don't
// produce.
func Rasterize(p *Path, params FillOrStroke, clipRect geom.RectangleOf[int]) (RasterizedPath, error) {
	fillPath := p
	if params.IsStroke {
		fillPath = strokeToFill(p, params.Stroke)
	}
	if fillPath.Empty() {
		return RasterizedPath{}, nil
	}

	approx := fillPath.BoundingBoxApprox()
	bounds := geom.Rect(
		int(math32.Floor(approx.Min.X)),
		int(math32.Floor(approx.Min.Y)),
		int(math32.Ceil(approx.Max.X)),
		int(math32.Ceil(approx.Max.Y)),
	)
	bounds = bounds.Intersection(clipRect)
	if bounds.Empty() {
		return RasterizedPath{}, nil
	}

	size := bounds.Size()
	z := vector.NewRasterizer(size.Width, size.Height)
	ox, oy := float32(bounds.Min.X), float32(bounds.Min.Y)

	for _, s := range fillPath.segments {
		switch s.Element {
		case MoveTo:
			z.MoveTo(s.End.X-ox, s.End.Y-oy)
		case LineTo, Close:
			z.LineTo(s.End.X-ox, s.End.Y-oy)
		case CubicTo:
			z.CubeTo(s.C1.X-ox, s.C1.Y-oy, s.C2.X-ox, s.C2.Y-oy, s.End.X-ox, s.End.Y-oy)
		}
	}
	z.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, size.Width, size.Height))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	res, err := sprite.MakeFromBytes(size, dst.Pix)
	if err != nil {
		return RasterizedPath{}, err
	}
	return RasterizedPath{Sprite: res, Bounds: bounds}, nil
}
