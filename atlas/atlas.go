// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package atlas implements the content-addressed GPU texture caches that
// back sprite and gradient lookups: a resource id maps to a region of a
// shared texture, and a [Generation] counter tells the render backend
// when it must re-upload.
//
// The source guards both atlases with a single recursive mutex, since
// uploads can be triggered re-entrantly from within an already-locked
// call. Go's sync.Mutex is not re-entrant, so instead every exported
// method here takes the lock itself and never calls another exported
// method while holding it; internal helpers that assume the lock is
// already held are unexported and named with a Locked suffix.
package atlas

import (
	"sync"

	"github.com/glimmerui/glimmer/base/atomiccounter"
	"github.com/glimmerui/glimmer/errors"
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/gradient"
	"github.com/glimmerui/glimmer/pixel"
	"github.com/glimmerui/glimmer/szalloc"
)

// Generation tracks changes to an atlas's backing texture. Consumers
// (the render encoder) compare a previously stored generation against
// [SpriteAtlas.Generation]/[GradientAtlas.Generation] to decide whether
// their GPU-side copy is stale. It is backed by an [atomiccounter.Counter]
// so concurrent uploads can advance it without a mutex of their own.
type Generation uint64

// MaxAtlasDim is the largest width or height either atlas's texture may
// grow to.
const MaxAtlasDim = 8192

// Budget bounds how large a [SpriteAtlas]'s backing texture may grow, in
// bytes of pixel storage.
type Budget struct {
	// Capacity is the current allocated byte size; Upload grows it toward
	// Max as needed and never shrinks it below Min.
	Capacity int
	Min      int
	Max      int
}

// LowWaterFraction is the fraction of Budget.Max above which untouched
// sprites become eviction-eligible.
const LowWaterFraction = 0.75

// spriteSlot is one sprite's placement within the atlas strip.
type spriteSlot struct {
	size         geom.SizeOf[int]
	rect         geom.RectangleOf[int]
	touchedFrame uint64
}

// SpriteAtlas is a single wide single-channel texture that sprites (small
// greyscale bitmaps: glyphs, path masks) are packed into, addressed by an
// opaque id. It grows its strip lazily and evicts sprites that go
// untouched once the budget's low-water mark is crossed.
type SpriteAtlas struct {
	mu sync.Mutex

	width  int
	budget Budget
	image  *pixel.Image[uint8]
	packer szalloc.SzAlloc

	slots []spriteSlot
	index map[uint64]int // id -> index into slots

	frame      uint64
	generation atomiccounter.Counter
}

// NewSpriteAtlas creates a sprite atlas width wide, growing its texture
// within budget as sprites are added. A width outside (0, [MaxAtlasDim]]
// is rejected with an error.
func NewSpriteAtlas(width int, budget Budget) (*SpriteAtlas, error) {
	if width <= 0 || width > MaxAtlasDim {
		return nil, errors.NewArgument("atlas.NewSpriteAtlas", "width %d outside (0, %d]", width, MaxAtlasDim)
	}
	if budget.Max <= 0 || budget.Min > budget.Max {
		return nil, errors.NewArgument("atlas.NewSpriteAtlas", "invalid budget %+v", budget)
	}
	if budget.Capacity < budget.Min {
		budget.Capacity = budget.Min
	}
	height := budget.Capacity / width
	if height < 1 {
		height = 1
	}
	img, err := pixel.New[uint8](geom.Sz(width, height), pixel.U8, pixel.Alpha)
	if err != nil {
		return nil, err
	}
	return &SpriteAtlas{
		width:  width,
		budget: budget,
		image:  img,
		index:  map[uint64]int{},
	}, nil
}

// Generation returns the atlas's current generation. It advances whenever
// a sprite is uploaded, moved, or evicted.
func (a *SpriteAtlas) Generation() Generation {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Generation(a.generation.Value())
}

// Texture returns the atlas's backing image. The render backend reads
// this to (re-)upload whenever its stored generation is stale.
func (a *SpriteAtlas) Texture() *pixel.Image[uint8] {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.image
}

// Lookup returns the region id occupies and marks it touched for the
// current frame, so it survives the next eviction sweep. ok is false if
// id has never been uploaded.
func (a *SpriteAtlas) Lookup(id uint64) (rect geom.RectangleOf[int], ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	i, found := a.index[id]
	if !found {
		return geom.RectangleOf[int]{}, false
	}
	a.slots[i].touchedFrame = a.frame
	return a.slots[i].rect, true
}

// Upload places pixels (a size.Area() single-channel image in row-major
// order) under id, packing it into the strip if id is new, and advances
// the atlas's generation. The sprite is marked touched for the current
// frame.
func (a *SpriteAtlas) Upload(id uint64, size geom.SizeOf[int], pixels []uint8) (geom.RectangleOf[int], error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(pixels) < size.Area() {
		return geom.RectangleOf[int]{}, errors.NewArgument("atlas.SpriteAtlas.Upload", "pixel buffer shorter than size %v", size)
	}

	i, exists := a.index[id]
	if !exists || a.slots[i].size != size {
		excl := -1
		if exists {
			excl = i
		}
		rect, err := a.allocateLocked(size, excl)
		if err != nil {
			return geom.RectangleOf[int]{}, err
		}
		if exists {
			a.slots[i] = spriteSlot{size: size, rect: rect}
		} else {
			i = len(a.slots)
			a.slots = append(a.slots, spriteSlot{size: size, rect: rect})
			a.index[id] = i
		}
	}

	slot := &a.slots[i]
	slot.touchedFrame = a.frame
	access, err := a.image.Map(pixel.AccessWrite, slot.rect)
	if err != nil {
		return geom.RectangleOf[int]{}, err
	}
	dst := access.Data()
	for y := 0; y < size.Height; y++ {
		copy(dst.Line(y), pixels[y*size.Width:(y+1)*size.Width])
	}
	access.Commit()
	a.generation.Inc()
	return slot.rect, nil
}

// allocateLocked finds room for size, growing the strip (and, if needed,
// the backing texture up to budget.Max) before re-packing every live
// sprite other than excludeIndex (the slot being resized, or -1 for a new
// sprite). Callers must hold a.mu.
func (a *SpriteAtlas) allocateLocked(size geom.SizeOf[int], excludeIndex int) (geom.RectangleOf[int], error) {
	sizes := make([]geom.SizeOf[int], 0, len(a.slots)+1)
	origIndex := make([]int, 0, len(a.slots)+1) // packer item -> a.slots index, -1 for the new item
	for i, s := range a.slots {
		if i == excludeIndex {
			continue
		}
		sizes = append(sizes, s.size)
		origIndex = append(origIndex, i)
	}
	sizes = append(sizes, size)
	origIndex = append(origIndex, excludeIndex) // -1 when excludeIndex is -1 (new sprite)

	a.packer.SetSizes(geom.Sz(4, 4), len(sizes), sizes)
	a.packer.Alloc()

	neededArea := 0
	for _, g := range a.packer.GpAllocs {
		cols := colsForItemWidth(a.width, g.ItemSize.Width)
		rows := (len(g.Indexes) + cols - 1) / cols
		neededArea += cols * g.ItemSize.Width * rows * g.ItemSize.Height
	}
	neededHeight := (neededArea + a.width - 1) / a.width
	neededBytes := a.width * neededHeight
	if neededBytes > a.budget.Max {
		return geom.RectangleOf[int]{}, errors.NewRenderDevice(errors.Unsupported, "atlas.SpriteAtlas.allocateLocked",
			errors.NewArgument("atlas.SpriteAtlas.allocateLocked", "sprite atlas would grow to %d bytes, budget max is %d", neededBytes, a.budget.Max))
	}

	// Repacking can move any existing sprite's rect, not just the one
	// being allocated, so every live sprite is re-blitted into a fresh
	// image sized to fit the new layout; reusing the old image in place
	// would risk clobbering a sprite before it is copied out. Capacity
	// never shrinks below what was already committed.
	if neededBytes > a.budget.Capacity {
		a.budget.Capacity = neededBytes
	}
	height := a.budget.Capacity / a.width
	if height < 1 {
		height = 1
	}
	oldImage := a.image
	newImage, err := pixel.New[uint8](geom.Sz(a.width, height), pixel.U8, pixel.Alpha)
	if err != nil {
		return geom.RectangleOf[int]{}, err
	}

	var result geom.RectangleOf[int]
	lastIdx := len(sizes) - 1
	for itemIdx, alloc := range a.packer.ItemAllocs {
		cols := colsForItemWidth(a.width, a.packer.GpAllocs[alloc.GroupIndex].ItemSize.Width)
		rect := a.packer.CellRect(itemIdx, cols)
		if itemIdx == lastIdx {
			result = rect
			continue
		}
		si := origIndex[itemIdx]
		if si < 0 {
			continue
		}
		oldRect := a.slots[si].rect
		if !oldRect.Empty() {
			if err := blitRect(oldImage, newImage, oldRect, rect); err != nil {
				return geom.RectangleOf[int]{}, err
			}
		}
		a.slots[si].rect = rect
	}
	a.image = newImage
	return result, nil
}

// blitRect copies the pixels under src in srcImg to dst in dstImg. Both
// rects must be the same size.
func blitRect(srcImg, dstImg *pixel.Image[uint8], src, dst geom.RectangleOf[int]) error {
	srcAccess, err := srcImg.Map(pixel.AccessRead, src)
	if err != nil {
		return err
	}
	dstAccess, err := dstImg.Map(pixel.AccessWrite, dst)
	if err != nil {
		return err
	}
	if err := dstAccess.CopyFrom(srcAccess); err != nil {
		return err
	}
	dstAccess.Commit()
	srcAccess.Commit()
	return nil
}

// BeginFrame starts a new frame: no sprite is touched until [SpriteAtlas.Lookup]
// or [SpriteAtlas.Upload] is called for it.
func (a *SpriteAtlas) BeginFrame() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frame++
}

// EndFrame evicts sprites untouched since the last [SpriteAtlas.BeginFrame],
// but only once the atlas's used area crosses [LowWaterFraction] of its
// budget's max. Returns the number of sprites evicted.
func (a *SpriteAtlas) EndFrame() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	used := 0
	for _, s := range a.slots {
		used += s.size.Area()
	}
	if float64(used) < float64(a.budget.Max)*LowWaterFraction {
		return 0
	}

	evicted := 0
	for id, i := range a.index {
		if a.slots[i].touchedFrame != a.frame {
			delete(a.index, id)
			evicted++
		}
	}
	if evicted == 0 {
		return 0
	}

	kept := a.slots[:0]
	remap := map[int]int{}
	for oldIdx, s := range a.slots {
		stillLive := false
		for _, i := range a.index {
			if i == oldIdx {
				stillLive = true
				break
			}
		}
		if stillLive {
			remap[oldIdx] = len(kept)
			kept = append(kept, s)
		}
	}
	a.slots = kept
	for id, oldIdx := range a.index {
		a.index[id] = remap[oldIdx]
	}
	a.generation.Inc()
	return evicted
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// colsForItemWidth returns how many grid columns of the given item width
// fit in an atlas of the given total width, guarding against a
// zero-width item (which otherwise divides by zero).
func colsForItemWidth(totalWidth, itemWidth int) int {
	if itemWidth <= 0 {
		return 1
	}
	return maxInt(1, totalWidth/itemWidth)
}

// gradientSlot is one gradient's fixed 1024-wide strip.
type gradientSlot struct {
	data gradient.Data
}

// GradientAtlas holds a fixed-size texture with one 1024-wide strip per
// gradient id. Unlike [SpriteAtlas] it never repacks: a gradient keeps
// its slot for its lifetime, and the slot count is capped by a
// construction-time device limit.
type GradientAtlas struct {
	mu sync.Mutex

	maxSlots int
	slots    []gradientSlot
	index    map[uint64]int

	generation atomiccounter.Counter
}

// NewGradientAtlas creates a gradient atlas with room for at most
// maxSlots gradients, as reported by the render device's limits.
func NewGradientAtlas(maxSlots int) (*GradientAtlas, error) {
	if maxSlots <= 0 {
		return nil, errors.NewArgument("atlas.NewGradientAtlas", "maxSlots must be positive, got %d", maxSlots)
	}
	return &GradientAtlas{maxSlots: maxSlots, index: map[uint64]int{}}, nil
}

// Generation returns the atlas's current generation.
func (a *GradientAtlas) Generation() Generation {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Generation(a.generation.Value())
}

// Lookup returns the LUT row id occupies.
func (a *GradientAtlas) Lookup(id uint64) (row int, data gradient.Data, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	i, found := a.index[id]
	if !found {
		return 0, gradient.Data{}, false
	}
	return i, a.slots[i].data, true
}

// Upload assigns id a slot (if it doesn't already have one) and stores
// data there, advancing the atlas's generation. Fails once maxSlots
// distinct gradients are live and id is not already one of them.
func (a *GradientAtlas) Upload(id uint64, data gradient.Data) (row int, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if i, ok := a.index[id]; ok {
		a.slots[i] = gradientSlot{data: data}
		a.generation.Inc()
		return i, nil
	}
	if len(a.index) >= a.maxSlots {
		return 0, errors.NewRenderDevice(errors.Unsupported, "atlas.GradientAtlas.Upload",
			errors.NewArgument("atlas.GradientAtlas.Upload", "gradient atlas full at device limit %d", a.maxSlots))
	}
	// Reuse the first slot a Release left behind before growing.
	live := make([]bool, len(a.slots))
	for _, j := range a.index {
		live[j] = true
	}
	i := len(a.slots)
	for j, l := range live {
		if !l {
			i = j
			break
		}
	}
	if i == len(a.slots) {
		a.slots = append(a.slots, gradientSlot{data: data})
	} else {
		a.slots[i] = gradientSlot{data: data}
	}
	a.index[id] = i
	a.generation.Inc()
	return i, nil
}

// Release frees id's slot. It does not compact the remaining slots,
// since slot index is the GPU-visible row and must stay stable for the
// gradients that keep their slot.
func (a *GradientAtlas) Release(id uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.index, id)
}
