// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import (
	"testing"

	"github.com/glimmerui/glimmer/atlas"
	"github.com/glimmerui/glimmer/geom"
	"github.com/stretchr/testify/assert"
)

func TestMakeAssignsIncreasingIDs(t *testing.T) {
	a := Make(geom.Sz(4, 4))
	b := Make(geom.Sz(4, 4))
	assert.Greater(t, b.ID, a.ID)
	assert.Len(t, a.Bytes, 16)
}

func TestMakeFromBytesRejectsWrongLength(t *testing.T) {
	_, err := MakeFromBytes(geom.Sz(4, 4), []uint8{1, 2, 3})
	assert.Error(t, err)
}

func TestMakeFromBytesCopiesData(t *testing.T) {
	src := []uint8{1, 2, 3, 4}
	r, err := MakeFromBytes(geom.Sz(2, 2), src)
	assert.NoError(t, err)
	assert.Equal(t, src, r.Bytes)
	src[0] = 99
	assert.Equal(t, uint8(1), r.Bytes[0], "MakeFromBytes must copy, not alias")
}

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	a, err := atlas.NewSpriteAtlas(256, atlas.Budget{Min: 256 * 64, Max: 256 * 1024})
	assert.NoError(t, err)
	return NewCache(a)
}

func TestCacheUploadThenTouch(t *testing.T) {
	c := newTestCache(t)
	r, err := MakeFromBytes(geom.Sz(4, 4), make([]uint8, 16))
	assert.NoError(t, err)

	rect, err := c.Upload(r)
	assert.NoError(t, err)
	assert.Equal(t, r.Size, rect.Size())

	got, ok := c.Touch(r)
	assert.True(t, ok)
	assert.Equal(t, rect, got)
}

func TestCacheUploadIsIdempotent(t *testing.T) {
	c := newTestCache(t)
	r, err := MakeFromBytes(geom.Sz(4, 4), make([]uint8, 16))
	assert.NoError(t, err)

	gen0 := c.Generation()
	_, err = c.Upload(r)
	assert.NoError(t, err)
	gen1 := c.Generation()
	assert.Greater(t, gen1, gen0)

	_, err = c.Upload(r)
	assert.NoError(t, err)
	assert.Equal(t, gen1, c.Generation(), "a second Upload of an already-resident sprite must not bump the generation")
}

func TestCacheEvictionMakesResourceUploadableAgain(t *testing.T) {
	a, err := atlas.NewSpriteAtlas(160, atlas.Budget{Min: 160 * 4, Max: 160 * 16})
	assert.NoError(t, err)
	c := NewCache(a)

	var resources []*Resource
	for i := 0; i < 10; i++ {
		r, err := MakeFromBytes(geom.Sz(16, 16), make([]uint8, 256))
		assert.NoError(t, err)
		_, err = c.Upload(r)
		assert.NoError(t, err)
		resources = append(resources, r)
	}

	c.BeginFrame()
	c.Touch(resources[0])
	evicted := c.EndFrame()
	assert.Greater(t, evicted, 0)

	_, ok := c.Touch(resources[len(resources)-1])
	assert.False(t, ok)

	_, err = c.Upload(resources[len(resources)-1])
	assert.NoError(t, err)
}
