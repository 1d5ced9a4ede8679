// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package font

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/glimmerui/glimmer/canvas"
)

func TestCanvasShaperEmitsOneGlyphPerRune(t *testing.T) {
	backend := &fakeBackend{}
	m := NewManager(backend, time.Minute)
	shaper := NewCanvasShaper(m)

	run := shaper.Shape("hi", canvas.Font{Size: 12})

	assert.Len(t, run.Glyphs, 2)
	assert.Equal(t, float32(24), run.Advance)
}

func TestCanvasShaperSkipsInklessGlyphs(t *testing.T) {
	backend := &fakeBackend{}
	m := NewManager(backend, time.Minute)
	shaper := NewCanvasShaper(m)

	run := shaper.Shape("a b", canvas.Font{Size: 10})

	assert.Len(t, run.Glyphs, 2) // the space has no sprite, so only "a" and "b" draw
}
