// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package szalloc

import (
	"math/rand"
	"testing"

	"github.com/glimmerui/glimmer/geom"
	"github.com/stretchr/testify/assert"
)

func TestRandSzAlloc(t *testing.T) {
	var sa SzAlloc
	sizes := make([]geom.SizeOf[int], 300)
	for i := range sizes {
		sizes[i] = geom.Sz(rand.Intn(1024), rand.Intn(1024))
	}
	sa.SetSizes(geom.Sz(4, 4), 16, sizes)
	sa.Alloc()
	assert.LessOrEqual(t, len(sa.GpAllocs), 16)
	assert.Len(t, sa.ItemAllocs, len(sizes))
}

func TestUniqSzAlloc(t *testing.T) {
	var sa SzAlloc
	sizes := make([]geom.SizeOf[int], 20)
	for i := range sizes {
		if i%2 == 0 {
			sizes[i] = geom.Sz(9, 9)
		} else {
			sizes[i] = geom.Sz(rand.Intn(1024), rand.Intn(1024))
		}
	}
	sa.SetSizes(geom.Sz(4, 4), 20, sizes)
	sa.Alloc()
	assert.LessOrEqual(t, len(sa.GpAllocs), 20)

	// every even-indexed item shares the same aligned group.
	firstGroup := sa.ItemAllocs[0].GroupIndex
	for i := 0; i < len(sizes); i += 2 {
		assert.Equal(t, firstGroup, sa.ItemAllocs[i].GroupIndex)
	}
}

func TestAlignment(t *testing.T) {
	var sa SzAlloc
	sizes := []geom.SizeOf[int]{geom.Sz(1, 1), geom.Sz(3, 3), geom.Sz(4, 4)}
	sa.SetSizes(geom.Sz(4, 4), 10, sizes)
	sa.Alloc()
	// 1x1, 3x3, and 4x4 all align up to 4x4 and so should share one group.
	assert.Equal(t, 1, len(sa.GpAllocs))
	assert.Equal(t, geom.Sz(4, 4), sa.GpAllocs[0].ItemSize)
}

func TestMaxGroupsMergesOverflow(t *testing.T) {
	var sa SzAlloc
	sizes := []geom.SizeOf[int]{geom.Sz(4, 4), geom.Sz(8, 8), geom.Sz(16, 16)}
	sa.SetSizes(geom.Sz(4, 4), 2, sizes)
	sa.Alloc()
	assert.Equal(t, 2, len(sa.GpAllocs))
}

func TestCellRect(t *testing.T) {
	var sa SzAlloc
	sizes := []geom.SizeOf[int]{geom.Sz(4, 4), geom.Sz(4, 4), geom.Sz(4, 4)}
	sa.SetSizes(geom.Sz(4, 4), 1, sizes)
	sa.Alloc()

	r0 := sa.CellRect(0, 2)
	r1 := sa.CellRect(1, 2)
	r2 := sa.CellRect(2, 2)
	assert.Equal(t, geom.Pt(0, 0), r0.Min)
	assert.Equal(t, geom.Pt(4, 0), r1.Min)
	assert.Equal(t, geom.Pt(0, 4), r2.Min)
}
