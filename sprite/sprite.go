// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sprite is the small-grayscale-bitmap resource the rasterizer
// and font pipeline produce and the sprite atlas packs: a [Resource]
// carries its own id, size, and pixel bytes, and [Cache] bridges it to
// an [atlas.SpriteAtlas].
package sprite

import (
	"sync/atomic"

	"github.com/glimmerui/glimmer/atlas"
	"github.com/glimmerui/glimmer/errors"
	"github.com/glimmerui/glimmer/geom"
)

// Resource is a small single-channel bitmap addressed by a monotonically
// increasing id. The source reference-counts these with a shared_ptr
// (RC<SpriteResource>); a Go *Resource held by any caller is kept alive
// by the garbage collector instead, so there is no explicit refcount
// here.
type Resource struct {
	ID    uint64
	Size  geom.SizeOf[int]
	Bytes []uint8
}

var nextID uint64

// Make allocates a zeroed sprite of the given size with a fresh id.
func Make(size geom.SizeOf[int]) *Resource {
	return &Resource{
		ID:    atomic.AddUint64(&nextID, 1),
		Size:  size,
		Bytes: make([]uint8, size.Area()),
	}
}

// MakeFromBytes allocates a sprite of the given size with a fresh id,
// copying bytes as its pixel data. bytes must hold exactly size.Area()
// elements.
func MakeFromBytes(size geom.SizeOf[int], bytes []uint8) (*Resource, error) {
	if len(bytes) != size.Area() {
		return nil, errors.NewArgument("sprite.MakeFromBytes", "bytes has length %d, want %d for size %v", len(bytes), size.Area(), size)
	}
	r := Make(size)
	copy(r.Bytes, bytes)
	return r, nil
}

// Cache packs [Resource] values into an [atlas.SpriteAtlas], keyed by
// the resource's own id, and remembers the atlas generation each
// resource was last uploaded at so a caller can tell whether its cached
// GPU region is still valid.
type Cache struct {
	atlas *atlas.SpriteAtlas
}

// NewCache wraps atl as a sprite cache.
func NewCache(atl *atlas.SpriteAtlas) *Cache {
	return &Cache{atlas: atl}
}

// Touch looks up r's current region in the atlas without re-uploading,
// marking it touched for the current frame. ok is false if r has never
// been uploaded (or was evicted).
func (c *Cache) Touch(r *Resource) (rect geom.RectangleOf[int], ok bool) {
	return c.atlas.Lookup(r.ID)
}

// Upload ensures r is resident in the atlas, (re-)uploading its pixel
// bytes if it is new or was evicted, and returns its region.
func (c *Cache) Upload(r *Resource) (geom.RectangleOf[int], error) {
	if rect, ok := c.atlas.Lookup(r.ID); ok {
		return rect, nil
	}
	return c.atlas.Upload(r.ID, r.Size, r.Bytes)
}

// Generation returns the backing atlas's current generation.
func (c *Cache) Generation() atlas.Generation {
	return c.atlas.Generation()
}

// BeginFrame starts a new frame on the backing atlas.
func (c *Cache) BeginFrame() { c.atlas.BeginFrame() }

// EndFrame evicts sprites untouched this frame from the backing atlas.
func (c *Cache) EndFrame() int { return c.atlas.EndFrame() }
