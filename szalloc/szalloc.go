// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package szalloc groups a set of requested rectangle sizes into a small
// number of common group sizes (each rounded up to a caller-given
// alignment), then lays those groups out on a shared grid. It is the
// packing strategy behind the sprite and gradient atlases: rather than one
// GPU texture region per distinct sprite size, similarly sized sprites
// share a group, keeping the atlas's region count bounded.
package szalloc

import (
	"sort"

	"github.com/glimmerui/glimmer/geom"
)

// GroupAlloc is one group of same-sized items: the group's (aligned) item
// size, the indexes into the original input slice assigned to it, and the
// item's position within the group's shared grid.
type GroupAlloc struct {
	ItemSize geom.SizeOf[int]
	Indexes  []int
}

// ItemAlloc records where one input item landed: which group it joined,
// and its index within that group's list (used to compute its grid cell).
type ItemAlloc struct {
	GroupIndex int
	CellIndex  int
}

// SzAlloc groups a set of requested sizes into GpAllocs. Call SetSizes then
// Alloc.
type SzAlloc struct {
	// Align is the alignment every group's item size is rounded up to.
	Align geom.SizeOf[int]
	// MaxGroups caps how many distinct groups Alloc will ever produce;
	// sizes are merged into the closest existing group once this limit is
	// reached.
	MaxGroups int

	sizes []geom.SizeOf[int]

	// GpAllocs holds one entry per group after Alloc.
	GpAllocs []GroupAlloc
	// ItemAllocs holds one entry per input size, indexed the same as the
	// slice passed to SetSizes.
	ItemAllocs []ItemAlloc
}

// SetSizes records the alignment, group cap, and input sizes for the next
// call to Alloc.
func (sa *SzAlloc) SetSizes(align geom.SizeOf[int], maxGroups int, sizes []geom.SizeOf[int]) {
	sa.Align = align
	sa.MaxGroups = maxGroups
	sa.sizes = sizes
	sa.GpAllocs = nil
	sa.ItemAllocs = nil
}

func (sa *SzAlloc) alignSize(sz geom.SizeOf[int]) geom.SizeOf[int] {
	return geom.Sz(alignUp(sz.Width, sa.Align.Width), alignUp(sz.Height, sa.Align.Height))
}

func alignUp(v, align int) int {
	if align <= 0 {
		return v
	}
	return ((v + align - 1) / align) * align
}

// Alloc groups sa.sizes (as recorded by [SzAlloc.SetSizes]) into
// [SzAlloc.GpAllocs], merging distinct aligned sizes beyond MaxGroups into
// whichever existing group has the closest area, so the result never
// exceeds MaxGroups groups.
func (sa *SzAlloc) Alloc() {
	if sa.MaxGroups < 1 {
		sa.MaxGroups = 1
	}
	sa.ItemAllocs = make([]ItemAlloc, len(sa.sizes))
	groupOf := map[geom.SizeOf[int]]int{}

	for i, raw := range sa.sizes {
		aligned := sa.alignSize(raw)
		gi, ok := groupOf[aligned]
		if !ok {
			if len(sa.GpAllocs) < sa.MaxGroups {
				gi = len(sa.GpAllocs)
				sa.GpAllocs = append(sa.GpAllocs, GroupAlloc{ItemSize: aligned})
				groupOf[aligned] = gi
			} else {
				gi = sa.closestGroup(aligned)
			}
		}
		g := &sa.GpAllocs[gi]
		ci := len(g.Indexes)
		g.Indexes = append(g.Indexes, i)
		sa.ItemAllocs[i] = ItemAlloc{GroupIndex: gi, CellIndex: ci}
	}

	sort.Slice(sa.GpAllocs, func(i, j int) bool {
		return sa.GpAllocs[i].ItemSize.Area() > sa.GpAllocs[j].ItemSize.Area()
	})
	// sorting moved groups, so item allocations' GroupIndex must be
	// recomputed against the new order.
	newIndex := map[geom.SizeOf[int]]int{}
	for gi, g := range sa.GpAllocs {
		newIndex[g.ItemSize] = gi
	}
	for i, raw := range sa.sizes {
		aligned := sa.alignSize(raw)
		if gi, ok := newIndex[aligned]; ok {
			sa.ItemAllocs[i].GroupIndex = gi
		}
	}
}

// closestGroup returns the index of the existing group whose ItemSize's
// area is closest to aligned's, used once MaxGroups groups already exist.
func (sa *SzAlloc) closestGroup(aligned geom.SizeOf[int]) int {
	target := aligned.Area()
	best, bestDiff := 0, -1
	for i, g := range sa.GpAllocs {
		diff := g.ItemSize.Area() - target
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}

// CellRect returns the rectangle item idx occupies within its group's
// shared grid, laid out gridWidth cells wide.
func (sa *SzAlloc) CellRect(idx, gridWidth int) geom.RectangleOf[int] {
	a := sa.ItemAllocs[idx]
	g := sa.GpAllocs[a.GroupIndex]
	col := a.CellIndex % gridWidth
	row := a.CellIndex / gridWidth
	pos := geom.Pt(col*g.ItemSize.Width, row*g.ItemSize.Height)
	return geom.RectFromPosSize(pos, g.ItemSize)
}
