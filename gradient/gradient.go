// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient constructs [Gradient] resources and rasterizes them into
// fixed-width lookup tables suitable for upload to the gradient atlas.
package gradient

import (
	"sort"
	"sync/atomic"

	"github.com/glimmerui/glimmer/colors"
	"github.com/glimmerui/glimmer/geom"
)

// ColorF is the floating-point color type gradient stops and LUT entries
// are stored as; it carries enough precision that repeated interpolation
// across 1024 entries doesn't visibly band.
type ColorF = colors.Color[float32]

// Type identifies the geometric interpretation a [Gradient]'s two control
// points and stop list are given when rasterized by the renderer.
type Type int

const (
	Linear Type = iota
	Radial
	Angle
	Reflected
	Diamond
	InsideOutside
)

// Stop is a single color stop within a gradient, at Position∈[0,1].
type Stop struct {
	Position float32
	Color    ColorF
}

// Resolution is the number of entries a rasterized [Data] LUT holds. The
// renderer's gradient shader stage reads exactly this many entries per
// gradient slot, so it must not change independently of the shader.
const Resolution = 1024

// Gradient describes a gradient's shape and color stops, independent of
// any particular rasterization.
type Gradient struct {
	Type       Type
	StartPoint geom.PointOf[float32]
	EndPoint   geom.PointOf[float32]
	Stops      []Stop
}

// New returns an empty gradient of the given type with zero-valued control
// points.
func New(t Type) *Gradient {
	return &Gradient{Type: t}
}

// NewBetween returns a gradient of the given type running from start to end.
func NewBetween(t Type, start, end geom.PointOf[float32]) *Gradient {
	return &Gradient{Type: t, StartPoint: start, EndPoint: end}
}

// AddStop appends a color stop at position (not required to be sorted;
// [Gradient.Rasterize] sorts by position before sampling).
func (g *Gradient) AddStop(position float32, color ColorF) {
	g.Stops = append(g.Stops, Stop{Position: position, Color: color})
}

// sortedStops returns a copy of g.Stops sorted by Position.
func (g *Gradient) sortedStops() []Stop {
	stops := make([]Stop, len(g.Stops))
	copy(stops, g.Stops)
	sort.Slice(stops, func(i, j int) bool { return stops[i].Position < stops[j].Position })
	return stops
}

// At returns the interpolated color at position x∈[0,1] by linearly mixing
// between the two bracketing stops in premultiplied-straight space (see
// [colors.Mix]). x outside the stop range clamps to the nearest stop's
// color; a gradient with no stops returns the zero color.
func (g *Gradient) At(x float32) ColorF {
	stops := g.sortedStops()
	if len(stops) == 0 {
		return ColorF{}
	}
	if x <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if x >= last.Position {
		return last.Color
	}
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		if x >= a.Position && x <= b.Position {
			span := b.Position - a.Position
			if span <= 0 {
				return b.Color
			}
			t := (x - a.Position) / span
			return colors.Mix(t, a.Color, b.Color, colors.Straight)
		}
	}
	return last.Color
}

// Data is a rasterized gradient: a fixed-width LUT of [Resolution] colors
// sampled evenly across [0,1], the form the gradient atlas uploads.
type Data struct {
	Entries [Resolution]ColorF
}

// Rasterize samples g at [Resolution] evenly spaced positions into a [Data]
// LUT.
func (g *Gradient) Rasterize() Data {
	var d Data
	for i := range d.Entries {
		x := float32(i) / float32(Resolution-1)
		d.Entries[i] = g.At(x)
	}
	return d
}

// RasterizeFunc builds a [Data] LUT by sampling fn at [Resolution] evenly
// spaced positions in [0,1], bypassing stop-list interpolation entirely
// (e.g. for a procedurally generated gradient, or a perceptual gradient
// computed through [github.com/glimmerui/glimmer/colors/space]).
func RasterizeFunc(fn func(x float32) ColorF) Data {
	var d Data
	for i := range d.Entries {
		x := float32(i) / float32(Resolution-1)
		d.Entries[i] = fn(x)
	}
	return d
}

var nextID uint64

// ID uniquely identifies a rasterized gradient resource within the
// gradient atlas.
type ID uint64

// Resource pairs rasterized [Data] with the [ID] the atlas addresses it by.
type Resource struct {
	ID   ID
	Data Data
}

// MakeResource rasterizes g and assigns it a fresh, process-wide-unique ID.
func MakeResource(g *Gradient) *Resource {
	return &Resource{ID: ID(atomic.AddUint64(&nextID, 1)), Data: g.Rasterize()}
}
