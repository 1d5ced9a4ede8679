// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atlas

import (
	"testing"

	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/gradient"
	"github.com/stretchr/testify/assert"
)

func makePixels(size geom.SizeOf[int], value uint8) []uint8 {
	p := make([]uint8, size.Area())
	for i := range p {
		p[i] = value
	}
	return p
}

func TestSpriteAtlasUploadAndLookup(t *testing.T) {
	a, err := NewSpriteAtlas(256, Budget{Min: 256 * 64, Max: 256 * 1024})
	assert.NoError(t, err)

	size := geom.Sz(8, 8)
	gen0 := a.Generation()
	rect, err := a.Upload(1, size, makePixels(size, 200))
	assert.NoError(t, err)
	assert.Equal(t, size, rect.Size())
	assert.Greater(t, a.Generation(), gen0)

	got, ok := a.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, rect, got)

	_, ok = a.Lookup(2)
	assert.False(t, ok)
}

func TestSpriteAtlasRejectsShortPixelBuffer(t *testing.T) {
	a, err := NewSpriteAtlas(256, Budget{Min: 256 * 64, Max: 256 * 1024})
	assert.NoError(t, err)
	_, err = a.Upload(1, geom.Sz(8, 8), make([]uint8, 4))
	assert.Error(t, err)
}

func TestSpriteAtlasRejectsOversizedWidth(t *testing.T) {
	_, err := NewSpriteAtlas(MaxAtlasDim+1, Budget{Min: 1, Max: 1024})
	assert.Error(t, err)
}

func TestSpriteAtlasGrowsWithinBudgetAndRejectsBeyondMax(t *testing.T) {
	a, err := NewSpriteAtlas(16, Budget{Min: 16 * 16, Max: 16 * 32})
	assert.NoError(t, err)

	for i := 0; i < 8; i++ {
		_, err := a.Upload(uint64(i), geom.Sz(8, 8), makePixels(geom.Sz(8, 8), uint8(i)))
		assert.NoError(t, err)
	}
	// Enough 8x8 sprites in a 16-wide atlas eventually exceed the max budget.
	var lastErr error
	for i := 8; i < 64; i++ {
		_, lastErr = a.Upload(uint64(i), geom.Sz(8, 8), makePixels(geom.Sz(8, 8), uint8(i)))
		if lastErr != nil {
			break
		}
	}
	assert.Error(t, lastErr)
}

func TestSpriteAtlasBeginEndFrameEvictsUntouched(t *testing.T) {
	// A 160-wide atlas packs ten 16x16 sprites into one exact row (160 =
	// 10*16), so the sum of sprite areas fills the budget precisely and
	// crosses the low-water mark once all ten are uploaded.
	a, err := NewSpriteAtlas(160, Budget{Min: 160 * 4, Max: 160 * 16})
	assert.NoError(t, err)

	size := geom.Sz(16, 16)
	for i := 0; i < 10; i++ {
		_, err := a.Upload(uint64(i), size, makePixels(size, 1))
		assert.NoError(t, err)
	}

	a.BeginFrame()
	// Touch only id 0.
	_, ok := a.Lookup(0)
	assert.True(t, ok)
	evicted := a.EndFrame()
	assert.Greater(t, evicted, 0)

	_, ok = a.Lookup(0)
	assert.True(t, ok, "touched sprite must survive eviction")
	_, ok = a.Lookup(9)
	assert.False(t, ok, "untouched sprite should have been evicted")
}

func TestSpriteAtlasEndFrameNoopBelowLowWaterMark(t *testing.T) {
	a, err := NewSpriteAtlas(64, Budget{Min: 64 * 64, Max: 64 * 128})
	assert.NoError(t, err)
	_, err = a.Upload(1, geom.Sz(4, 4), makePixels(geom.Sz(4, 4), 9))
	assert.NoError(t, err)

	a.BeginFrame()
	evicted := a.EndFrame()
	assert.Equal(t, 0, evicted)
	_, ok := a.Lookup(1)
	assert.True(t, ok)
}

func TestGradientAtlasUploadAndLookup(t *testing.T) {
	ga, err := NewGradientAtlas(4)
	assert.NoError(t, err)

	g := gradient.New(gradient.Linear)
	g.AddStop(0, gradient.ColorF{})
	data := g.Rasterize()

	gen0 := ga.Generation()
	row, err := ga.Upload(10, data)
	assert.NoError(t, err)
	assert.Equal(t, 0, row)
	assert.Greater(t, ga.Generation(), gen0)

	gotRow, gotData, ok := ga.Lookup(10)
	assert.True(t, ok)
	assert.Equal(t, row, gotRow)
	assert.Equal(t, data, gotData)
}

func TestGradientAtlasReusesSlotOnReupload(t *testing.T) {
	ga, err := NewGradientAtlas(2)
	assert.NoError(t, err)
	data := gradient.Data{}

	row1, err := ga.Upload(1, data)
	assert.NoError(t, err)
	row2, err := ga.Upload(1, data)
	assert.NoError(t, err)
	assert.Equal(t, row1, row2)
}

func TestGradientAtlasEnforcesDeviceLimit(t *testing.T) {
	ga, err := NewGradientAtlas(2)
	assert.NoError(t, err)
	data := gradient.Data{}

	_, err = ga.Upload(1, data)
	assert.NoError(t, err)
	_, err = ga.Upload(2, data)
	assert.NoError(t, err)
	_, err = ga.Upload(3, data)
	assert.Error(t, err)
}

func TestGradientAtlasReleaseFreesSlotForReuse(t *testing.T) {
	ga, err := NewGradientAtlas(1)
	assert.NoError(t, err)
	data := gradient.Data{}

	_, err = ga.Upload(1, data)
	assert.NoError(t, err)
	ga.Release(1)
	_, _, ok := ga.Lookup(1)
	assert.False(t, ok)

	_, err = ga.Upload(2, data)
	assert.NoError(t, err)
}
