// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package font

import (
	"sync"
	"time"

	"github.com/glimmerui/glimmer/base/atomiccounter"
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/nptime"
)

// shapeKey is the shaping cache's key. Both halves must stay comparable
// (see [Font] and [TextWithOptions]'s doc comments).
type shapeKey struct {
	font Font
	text TextWithOptions
}

type shapeEntry struct {
	runs     ShapedRuns
	lastUsed nptime.Time
	frame    uint64
}

// Manager is the cached front end to a [Backend]: Shape results are
// memoized in a shaping cache keyed by (Font, TextWithOptions), and
// [SpriteCache] memoizes rasterized glyphs separately so the two caches
// can be sized and evicted independently. GarbageCollectCache evicts
// shaping-cache entries whose age exceeds the configured TTL; a caller
// drives this once per frame (or on a timer), mirroring the source's
// garbageCollectCache().
type Manager struct {
	backend Backend
	sprites *SpriteCache
	ttl     time.Duration

	mu    sync.Mutex
	cache map[shapeKey]*shapeEntry
	frame atomiccounter.Counter
}

// NewManager returns a [Manager] consuming backend, with shaping-cache
// entries evicted once they have gone unused for longer than ttl.
func NewManager(backend Backend, ttl time.Duration) *Manager {
	return &Manager{
		backend: backend,
		sprites: NewSpriteCache(),
		ttl:     ttl,
		cache:   make(map[shapeKey]*shapeEntry),
	}
}

// Sprites returns the glyph sprite cache backing this manager's shaped
// runs.
func (m *Manager) Sprites() *SpriteCache { return m.sprites }

// BeginFrame advances the manager's frame counter; shaping-cache
// entries record the frame they were last used on, for diagnostics
// alongside the wall-clock TTL eviction.
func (m *Manager) BeginFrame() { m.frame.Inc() }

// Shape returns text shaped under font, from the shaping cache if
// present, else by calling the backend and caching the result. Shape
// does not check an entry's age; entries leave the cache only through
// [Manager.GarbageCollectCache].
func (m *Manager) Shape(font Font, text TextWithOptions) ShapedRuns {
	key := shapeKey{font: font, text: text}
	now := time.Now()
	frame := uint64(m.frame.Value())

	m.mu.Lock()
	if e, ok := m.cache[key]; ok {
		e.lastUsed.SetTime(now)
		e.frame = frame
		runs := e.runs
		m.mu.Unlock()
		return runs
	}
	m.mu.Unlock()

	runs := m.backend.Shape(font, text)

	e := &shapeEntry{runs: runs, frame: frame}
	e.lastUsed.SetTime(now)
	m.mu.Lock()
	m.cache[key] = e
	m.mu.Unlock()
	return runs
}

// Metrics returns font's vertical measurements, straight from the
// backend; metrics are cheap enough that caching them separately from a
// shaped run isn't worth the complexity.
func (m *Manager) Metrics(font Font) Metrics { return m.backend.Metrics(font) }

// HasCodepoint reports whether font can render r.
func (m *Manager) HasCodepoint(font Font, r rune) bool { return m.backend.HasCodepoint(font, r) }

// Bounds returns the rectangle text occupies when shaped under font.
func (m *Manager) Bounds(font Font, text TextWithOptions) geom.RectangleOf[float32] {
	return m.backend.Bounds(font, text)
}

// GarbageCollectCache evicts every shaping-cache entry whose age
// (relative to now) exceeds the manager's configured TTL, and reports
// how many entries were removed.
func (m *Manager) GarbageCollectCache(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for k, e := range m.cache {
		if e.lastUsed.Since(now) > m.ttl {
			delete(m.cache, k)
			removed++
		}
	}
	return removed
}

// CacheLen reports how many entries are currently in the shaping cache,
// for tests and memory diagnostics.
func (m *Manager) CacheLen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cache)
}
