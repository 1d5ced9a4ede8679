// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shadercache caches compiled shader bytes on disk, keyed by a
// content hash of the shader source, so repeated runs skip recompiling
// an unchanged shader. A [Cache] keeps a matching in-memory copy and
// watches its directory with fsnotify so an external removal of a cache
// file (a stale-cache cleanup script, a user clearing the directory)
// invalidates the in-memory entry too, rather than serving bytes whose
// on-disk backing no longer exists.
package shadercache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/glimmerui/glimmer/errors"
)

// Cache is a directory-backed, content-addressed store of compiled
// shader bytes.
type Cache struct {
	dir     string
	mu      sync.RWMutex
	entries map[string][]byte

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Open creates (if needed) dir and returns a [Cache] backed by it, with
// a background watch on dir already running.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.NewArgument("shadercache.Open", "cannot create cache dir %q: %v", dir, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.NewArgument("shadercache.Open", "cannot start watcher: %v", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, errors.NewArgument("shadercache.Open", "cannot watch %q: %v", dir, err)
	}

	c := &Cache{
		dir:     dir,
		entries: make(map[string][]byte),
		watcher: watcher,
		done:    make(chan struct{}),
	}
	go c.watch()
	return c, nil
}

// Hash returns the content-hash key [Get]/[Put] address source under.
func Hash(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}

// Get returns the cached compiled bytes for hash, checking the
// in-memory copy first and falling back to disk (populating the
// in-memory copy on a hit) so a cache built by a previous process run
// is still honored.
func (c *Cache) Get(hash string) ([]byte, bool) {
	c.mu.RLock()
	data, ok := c.entries[hash]
	c.mu.RUnlock()
	if ok {
		return data, true
	}

	data, err := os.ReadFile(c.path(hash))
	if err != nil {
		return nil, false
	}
	c.mu.Lock()
	c.entries[hash] = data
	c.mu.Unlock()
	return data, true
}

// Put stores compiled under hash, both on disk and in memory.
func (c *Cache) Put(hash string, compiled []byte) error {
	if err := os.WriteFile(c.path(hash), compiled, 0o644); err != nil {
		return errors.NewArgument("shadercache.Put", "cannot write cache entry %q: %v", hash, err)
	}
	c.mu.Lock()
	c.entries[hash] = compiled
	c.mu.Unlock()
	return nil
}

func (c *Cache) path(hash string) string { return filepath.Join(c.dir, hash) }

func (c *Cache) watch() {
	for {
		select {
		case ev, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				c.invalidate(filepath.Base(ev.Name))
			}
		case _, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
		case <-c.done:
			return
		}
	}
}

func (c *Cache) invalidate(hash string) {
	c.mu.Lock()
	delete(c.entries, hash)
	c.mu.Unlock()
}

// Close stops the directory watch and releases its resources.
func (c *Cache) Close() error {
	close(c.done)
	return c.watcher.Close()
}
