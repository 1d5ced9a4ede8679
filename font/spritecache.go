// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package font

import (
	"sync"

	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/sprite"
)

// spriteKey identifies one rasterized glyph: the same glyph id means a
// different glyph in a different face, and the same glyph at a
// different subpixel phase or with different hinting/kerning flags
// rasterizes to different coverage, so all four must be in the key.
type spriteKey struct {
	face      Face
	glyphID   uint32
	subpixelX int8
	flags     Flags
}

// GlyphSprite is a rasterized glyph's cached coverage bitmap plus the
// positioning data a caller needs to place it relative to the pen.
type GlyphSprite struct {
	Size    geom.SizeOf[int]
	Sprite  *sprite.Resource
	Bearing geom.PointOf[float32]
	Advance float32
}

// SpriteCache caches rasterized glyphs keyed by (face, glyph_id,
// subpixel_x, font_flags), so the same glyph at the same phase rasterizes
// through a [Backend] at most once no matter how many times it is drawn.
type SpriteCache struct {
	mu      sync.Mutex
	entries map[spriteKey]GlyphSprite
}

// NewSpriteCache returns an empty [SpriteCache].
func NewSpriteCache() *SpriteCache {
	return &SpriteCache{entries: make(map[spriteKey]GlyphSprite)}
}

// Get returns a glyph's cached sprite, rasterizing and caching it via
// backend on a miss. A glyph with no ink (a space, a zero-width joiner)
// caches a GlyphSprite with a nil Sprite, so repeat lookups still skip
// the backend call.
func (c *SpriteCache) Get(backend Backend, face Face, glyphID uint32, fontSize float32, subpixelX int8, flags Flags) GlyphSprite {
	key := spriteKey{face: face, glyphID: glyphID, subpixelX: subpixelX, flags: flags}

	c.mu.Lock()
	if gs, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return gs
	}
	c.mu.Unlock()

	var gs GlyphSprite
	if bmp, ok := backend.RasterizeGlyph(face, glyphID, fontSize, subpixelX, flags); ok {
		spr, err := sprite.MakeFromBytes(bmp.Size, bmp.Pixels)
		if err == nil {
			gs = GlyphSprite{Size: bmp.Size, Sprite: spr, Bearing: bmp.Bearing, Advance: bmp.Advance}
		}
	}

	c.mu.Lock()
	c.entries[key] = gs
	c.mu.Unlock()
	return gs
}

// Len reports how many glyphs are currently cached, for tests and
// memory diagnostics.
func (c *SpriteCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
