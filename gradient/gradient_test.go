// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"testing"

	"github.com/glimmerui/glimmer/colors"
	"github.com/glimmerui/glimmer/geom"
	"github.com/stretchr/testify/assert"
)

func red() ColorF  { return colors.New[float32](1, 0, 0, 1) }
func blue() ColorF { return colors.New[float32](0, 0, 1, 1) }

func TestLinearEndpoints(t *testing.T) {
	g := NewBetween(Linear, geom.Pt[float32](0, 0), geom.Pt[float32](100, 0))
	g.AddStop(0, red())
	g.AddStop(1, blue())

	assert.Equal(t, red(), g.At(0))
	assert.Equal(t, blue(), g.At(1))
}

func TestLinearMidpointIsPremultipliedMix(t *testing.T) {
	g := New(Linear)
	g.AddStop(0, red())
	g.AddStop(1, blue())

	mid := g.At(0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-5)
	assert.InDelta(t, 0, mid.G, 1e-5)
	assert.InDelta(t, 0.5, mid.B, 1e-5)
	assert.InDelta(t, 1, mid.A, 1e-5)
}

func TestOutOfRangeClampsToNearestStop(t *testing.T) {
	g := New(Linear)
	g.AddStop(0.25, red())
	g.AddStop(0.75, blue())

	assert.Equal(t, red(), g.At(0))
	assert.Equal(t, blue(), g.At(1))
}

func TestUnsortedStopsSortBeforeSampling(t *testing.T) {
	g := New(Linear)
	g.AddStop(1, blue())
	g.AddStop(0, red())

	assert.Equal(t, red(), g.At(0))
	assert.Equal(t, blue(), g.At(1))
}

func TestEmptyGradientReturnsZeroColor(t *testing.T) {
	g := New(Linear)
	assert.Equal(t, ColorF{}, g.At(0.5))
}

func TestRasterizeProducesFullResolution(t *testing.T) {
	g := New(Linear)
	g.AddStop(0, red())
	g.AddStop(1, blue())

	data := g.Rasterize()
	assert.Equal(t, red(), data.Entries[0])
	assert.Equal(t, blue(), data.Entries[Resolution-1])
}

func TestMakeResourceAssignsUniqueIDs(t *testing.T) {
	g := New(Linear)
	g.AddStop(0, red())
	g.AddStop(1, blue())

	r1 := MakeResource(g)
	r2 := MakeResource(g)
	assert.NotEqual(t, r1.ID, r2.ID)
}

func TestRasterizeFunc(t *testing.T) {
	data := RasterizeFunc(func(x float32) ColorF {
		return colors.New[float32](x, x, x, 1)
	})
	assert.InDelta(t, 0, data.Entries[0].R, 1e-5)
	assert.InDelta(t, 1, data.Entries[Resolution-1].R, 1e-5)
}
