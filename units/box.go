// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

// PointL is a 2D point with [Length] components, used for style properties
// like transform-origin that can mix units per axis. Unlike [geom.PointOf],
// this is not built on the generic numeric engine: Go has no operator
// overloading, so [Length] (which needs unit-aware arithmetic, not raw
// +/-/*) gets its own small, non-generic struct instead of instantiating
// geom's generic type over a non-numeric T.
type PointL struct {
	X, Y Length
}

// SizeL is a 2D width/height pair with [Length] components.
type SizeL struct {
	Width, Height Length
}

// EdgesL holds four edge [Length] measures, used for margin/padding/
// border-width style properties before they are resolved to pixels.
type EdgesL struct {
	Top, Right, Bottom, Left Length
}

// EdgesLAll returns an [EdgesL] with all four sides set to l.
func EdgesLAll(l Length) EdgesL { return EdgesL{l, l, l, l} }

// EdgesLHV returns an [EdgesL] with horizontal sides set to h and vertical
// sides set to v.
func EdgesLHV(h, v Length) EdgesL { return EdgesL{Top: v, Right: h, Bottom: v, Left: h} }

// CornersL holds four corner [Length] measures, used for border-radius
// style properties before they are resolved to pixels.
type CornersL struct {
	TopLeft, TopRight, BottomRight, BottomLeft Length
}

// CornersLAll returns a [CornersL] with all four corners set to l.
func CornersLAll(l Length) CornersL { return CornersL{l, l, l, l} }

// Context carries the values [Length] resolution needs to turn a
// font-relative, percent-relative, or viewport-relative unit into pixels.
type Context struct {
	// FontSize is the current element's resolved font size in pixels, the
	// scale factor for [Em].
	FontSize float32
	// DevicePixelRatio is the scale factor from GUI pixels to device pixels.
	DevicePixelRatio float32
	// Containing is the size, in pixels, that [Percent] is relative to.
	Containing float32
	// Viewport is the size, in pixels, that [Vw]/[Vh]/[Vmin]/[Vmax] are relative to.
	Viewport [2]float32
}

// Resolve converts l to pixels using ctx, leaving [Pixels] and
// [AlignedPixels] values unchanged (alignment to the device grid happens
// in a later layout pass) and returning 0 for valueless units.
func (ctx Context) Resolve(l Length) float32 {
	switch l.Unit() {
	case Pixels, AlignedPixels:
		return l.Value()
	case DevicePixels:
		if ctx.DevicePixelRatio == 0 {
			return l.Value()
		}
		return l.Value() / ctx.DevicePixelRatio
	case Em:
		return l.Value() * ctx.FontSize
	case Percent:
		return l.Value() / 100 * ctx.Containing
	case Vw:
		return l.Value() / 100 * ctx.Viewport[0]
	case Vh:
		return l.Value() / 100 * ctx.Viewport[1]
	case Vmin:
		return l.Value() / 100 * min(ctx.Viewport[0], ctx.Viewport[1])
	case Vmax:
		return l.Value() / 100 * max(ctx.Viewport[0], ctx.Viewport[1])
	default:
		return 0
	}
}

// ResolveEdges resolves every side of e to pixels.
func (ctx Context) ResolveEdges(e EdgesL) (top, right, bottom, left float32) {
	return ctx.Resolve(e.Top), ctx.Resolve(e.Right), ctx.Resolve(e.Bottom), ctx.Resolve(e.Left)
}
