// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package font

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/glimmerui/glimmer/geom"
)

// fakeBackend shapes every string as one glyph per rune, advancing by a
// fixed width, and counts how many times Shape/RasterizeGlyph were
// called so tests can assert on cache hits.
type fakeBackend struct {
	shapeCalls     int
	rasterizeCalls int
}

func (b *fakeBackend) Shape(f Font, text TextWithOptions) ShapedRuns {
	b.shapeCalls++
	glyphs := make([]Glyph, 0, len(text.Text))
	var x float32
	for _, r := range text.Text {
		glyphs = append(glyphs, Glyph{GlyphID: uint32(r), Codepoint: r, Pos: geom.Pt(x, 0)})
		x += f.Size
	}
	return ShapedRuns{Runs: []GlyphRun{{Glyphs: glyphs, Face: Face(1), FontSize: f.Size}}}
}

func (b *fakeBackend) Metrics(f Font) Metrics {
	return Metrics{Size: f.Size, Ascender: f.Size * 0.8, Descender: -f.Size * 0.2, Height: f.Size * 1.2}
}

func (b *fakeBackend) HasCodepoint(f Font, r rune) bool { return r != 0 }

func (b *fakeBackend) Bounds(f Font, text TextWithOptions) geom.RectangleOf[float32] {
	return geom.Rect(0, 0, f.Size*float32(len(text.Text)), f.Size)
}

func (b *fakeBackend) RasterizeGlyph(face Face, glyphID uint32, fontSize float32, subpixelX int8, flags Flags) (GlyphBitmap, bool) {
	b.rasterizeCalls++
	if glyphID == ' ' {
		return GlyphBitmap{}, false
	}
	size := geom.Sz(4, 4)
	return GlyphBitmap{Size: size, Pixels: make([]uint8, size.Area()), Advance: fontSize}, true
}

func TestShapeCachesRepeatedCalls(t *testing.T) {
	backend := &fakeBackend{}
	m := NewManager(backend, time.Minute)

	f := Font{Size: 12}
	txt := TextWithOptions{Text: "hi"}

	_ = m.Shape(f, txt)
	_ = m.Shape(f, txt)
	_ = m.Shape(f, txt)

	assert.Equal(t, 1, backend.shapeCalls)
	assert.Equal(t, 1, m.CacheLen())
}

func TestShapeDistinguishesFontAndText(t *testing.T) {
	backend := &fakeBackend{}
	m := NewManager(backend, time.Minute)

	m.Shape(Font{Size: 12}, TextWithOptions{Text: "hi"})
	m.Shape(Font{Size: 14}, TextWithOptions{Text: "hi"})
	m.Shape(Font{Size: 12}, TextWithOptions{Text: "bye"})

	assert.Equal(t, 3, backend.shapeCalls)
	assert.Equal(t, 3, m.CacheLen())
}

func TestGarbageCollectCacheEvictsExpiredEntries(t *testing.T) {
	backend := &fakeBackend{}
	m := NewManager(backend, 10*time.Millisecond)

	m.Shape(Font{Size: 12}, TextWithOptions{Text: "hi"})
	assert.Equal(t, 1, m.CacheLen())

	removed := m.GarbageCollectCache(time.Now().Add(time.Hour))
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, m.CacheLen())
}

func TestGarbageCollectCacheKeepsFreshEntries(t *testing.T) {
	backend := &fakeBackend{}
	m := NewManager(backend, time.Hour)

	m.Shape(Font{Size: 12}, TextWithOptions{Text: "hi"})
	removed := m.GarbageCollectCache(time.Now())
	assert.Equal(t, 0, removed)
	assert.Equal(t, 1, m.CacheLen())
}

func TestSpriteCacheRasterizesOncePerGlyph(t *testing.T) {
	backend := &fakeBackend{}
	cache := NewSpriteCache()

	g1 := cache.Get(backend, Face(1), 'a', 12, 0, FlagsDefault)
	g2 := cache.Get(backend, Face(1), 'a', 12, 0, FlagsDefault)

	assert.Equal(t, 1, backend.rasterizeCalls)
	assert.Same(t, g1.Sprite, g2.Sprite)
}

func TestSpriteCacheDistinguishesSubpixelPhase(t *testing.T) {
	backend := &fakeBackend{}
	cache := NewSpriteCache()

	cache.Get(backend, Face(1), 'a', 12, 0, FlagsDefault)
	cache.Get(backend, Face(1), 'a', 12, 1, FlagsDefault)

	assert.Equal(t, 2, backend.rasterizeCalls)
	assert.Equal(t, 2, cache.Len())
}

func TestSpriteCacheCachesInklessGlyphs(t *testing.T) {
	backend := &fakeBackend{}
	cache := NewSpriteCache()

	gs := cache.Get(backend, Face(1), ' ', 12, 0, FlagsDefault)
	assert.Nil(t, gs.Sprite)

	cache.Get(backend, Face(1), ' ', 12, 0, FlagsDefault)
	assert.Equal(t, 1, backend.rasterizeCalls)
}
