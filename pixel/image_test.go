// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pixel

import (
	"testing"

	"github.com/glimmerui/glimmer/geom"
	"github.com/stretchr/testify/assert"
)

func TestNewImage(t *testing.T) {
	img, err := New[uint8](geom.Sz(4, 4), U8Gamma, RGBA)
	assert.NoError(t, err)
	assert.Equal(t, geom.Sz(4, 4), img.Size())
	assert.Equal(t, RGBA, img.Format())
	assert.False(t, img.IsLinear())
}

func TestNewImageRejectsUnsupportedFormat(t *testing.T) {
	_, err := New[uint8](geom.Sz(4, 4), U8Gamma, UnknownFormat)
	assert.Error(t, err)
}

func TestWrapRejectsTooSmallStride(t *testing.T) {
	pixels := make([]uint8, 4*4*4)
	_, err := Wrap(pixels, geom.Sz(4, 4), 3, U8, RGBA)
	assert.Error(t, err)
}

func TestDataSubrectOutOfBounds(t *testing.T) {
	d := NewData[uint8](geom.Sz(4, 4), 4)
	_, err := d.Subrect(geom.Rect(0, 0, 5, 5))
	assert.Error(t, err)
}

func TestDataClearAndLine(t *testing.T) {
	d := NewData[uint8](geom.Sz(2, 2), 4)
	d.Clear([]uint8{1, 2, 3, 255})
	for y := 0; y < 2; y++ {
		line := d.Line(y)
		assert.Equal(t, []uint8{1, 2, 3, 255, 1, 2, 3, 255}, line)
	}
}

func TestDataCopyFromMismatchedSize(t *testing.T) {
	a := NewData[uint8](geom.Sz(2, 2), 4)
	b := NewData[uint8](geom.Sz(3, 3), 4)
	assert.Error(t, a.CopyFrom(b))
}

type recordingBackend struct {
	begun, ended []AccessMode
}

func (b *recordingBackend) Begin(mode AccessMode, rect geom.RectangleOf[int]) {
	b.begun = append(b.begun, mode)
}

func (b *recordingBackend) End(mode AccessMode, rect geom.RectangleOf[int]) {
	b.ended = append(b.ended, mode)
}

func TestMapInvokesBackendHooks(t *testing.T) {
	img, err := New[uint8](geom.Sz(4, 4), U8Gamma, RGBA)
	assert.NoError(t, err)
	backend := &recordingBackend{}
	img.SetBackend(backend)

	access, err := img.MapAll(AccessWrite)
	assert.NoError(t, err)
	assert.Equal(t, []AccessMode{AccessWrite}, backend.begun)
	assert.Empty(t, backend.ended)

	access.Commit()
	assert.Equal(t, []AccessMode{AccessWrite}, backend.ended)

	// Committing twice is a no-op.
	access.Commit()
	assert.Equal(t, []AccessMode{AccessWrite}, backend.ended)
}

func TestMapOutOfBoundsRect(t *testing.T) {
	img, err := New[uint8](geom.Sz(4, 4), U8Gamma, RGBA)
	assert.NoError(t, err)
	_, err = img.Map(AccessRead, geom.Rect(0, 0, 8, 8))
	assert.Error(t, err)
}
