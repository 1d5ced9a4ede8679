// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadercache

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPutThenGetRoundTrips(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir)
	assert.NoError(t, err)
	defer c.Close()

	hash := Hash([]byte("shader source v1"))
	assert.NoError(t, c.Put(hash, []byte("compiled bytes")))

	got, ok := c.Get(hash)
	assert.True(t, ok)
	assert.Equal(t, []byte("compiled bytes"), got)
}

func TestGetMissReturnsFalse(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir)
	assert.NoError(t, err)
	defer c.Close()

	_, ok := c.Get(Hash([]byte("never stored")))
	assert.False(t, ok)
}

func TestExternalRemovalInvalidatesInMemoryEntry(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir)
	assert.NoError(t, err)
	defer c.Close()

	hash := Hash([]byte("shader source v2"))
	assert.NoError(t, c.Put(hash, []byte("compiled bytes")))

	// a second process (or a cache-clearing script) deletes the file
	// directly, bypassing Cache entirely
	assert.NoError(t, os.Remove(c.path(hash)))

	assert.Eventually(t, func() bool {
		c.mu.RLock()
		_, stillCached := c.entries[hash]
		c.mu.RUnlock()
		return !stillCached
	}, time.Second, 10*time.Millisecond)

	_, ok := c.Get(hash)
	assert.False(t, ok)
}
