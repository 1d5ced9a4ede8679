// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/sprite"
	"github.com/stretchr/testify/assert"
)

type recordingEncoder struct {
	batches [][]RenderState
	data    [][]float32
}

func (e *recordingEncoder) Batch(states []RenderState, data []float32) error {
	statesCopy := append([]RenderState(nil), states...)
	dataCopy := append([]float32(nil), data...)
	e.batches = append(e.batches, statesCopy)
	e.data = append(e.data, dataCopy)
	return nil
}

func TestStreamPushSetsDataWindow(t *testing.T) {
	enc := &recordingEncoder{}
	s := NewStream(enc, DefaultLimits())

	err := s.Push(RenderState{Shader: ShaderRectangles}, []float32{1, 2, 3, 4}, 1)
	assert.NoError(t, err)

	commands, floats := s.Pending()
	assert.Equal(t, 1, commands)
	assert.Equal(t, 4, floats)
	assert.Equal(t, uint32(0), s.states[0].DataOffset)
	assert.Equal(t, uint32(4), s.states[0].DataSize)
	assert.Equal(t, uint32(1), s.states[0].Instances)
}

func TestStreamPushAccumulatesDataOffset(t *testing.T) {
	enc := &recordingEncoder{}
	s := NewStream(enc, DefaultLimits())

	assert.NoError(t, s.Push(RenderState{}, []float32{1, 2}, 1))
	assert.NoError(t, s.Push(RenderState{}, []float32{3, 4, 5}, 1))

	assert.Equal(t, uint32(0), s.states[0].DataOffset)
	assert.Equal(t, uint32(2), s.states[1].DataOffset)
	assert.Equal(t, uint32(3), s.states[1].DataSize)
}

func TestStreamFlushResetsAndSubmits(t *testing.T) {
	enc := &recordingEncoder{}
	s := NewStream(enc, DefaultLimits())

	assert.NoError(t, s.Push(RenderState{}, []float32{1, 2}, 1))
	assert.NoError(t, s.Flush())

	commands, floats := s.Pending()
	assert.Equal(t, 0, commands)
	assert.Equal(t, 0, floats)
	assert.Len(t, enc.batches, 1)
	assert.Equal(t, []float32{1, 2}, enc.data[0])
}

func TestStreamFlushIsNoopWhenEmpty(t *testing.T) {
	enc := &recordingEncoder{}
	s := NewStream(enc, DefaultLimits())

	assert.NoError(t, s.Flush())
	assert.Len(t, enc.batches, 0)
}

func TestStreamAutoFlushesBeforeExceedingCommandBudget(t *testing.T) {
	enc := &recordingEncoder{}
	s := NewStream(enc, Limits{MaxCommandBytes: 2 * 256, MaxDataSize: 1 << 20})

	assert.NoError(t, s.Push(RenderState{}, nil, 1))
	assert.NoError(t, s.Push(RenderState{}, nil, 1))
	// a third push would make len(states)+1 == 3, exceeding the 2-slot budget
	assert.NoError(t, s.Push(RenderState{}, nil, 1))

	assert.Len(t, enc.batches, 1)
	assert.Equal(t, 2, len(enc.batches[0]))
	commands, _ := s.Pending()
	assert.Equal(t, 1, commands)
}

func TestStreamAutoFlushesBeforeExceedingDataBudget(t *testing.T) {
	enc := &recordingEncoder{}
	s := NewStream(enc, Limits{MaxCommandBytes: 4096 * 256, MaxDataSize: 4})

	assert.NoError(t, s.Push(RenderState{}, []float32{1, 2, 3}, 1))
	assert.NoError(t, s.Push(RenderState{}, []float32{4, 5}, 1))

	assert.Len(t, enc.batches, 1)
	assert.Equal(t, []float32{1, 2, 3}, enc.data[0])
	_, floats := s.Pending()
	assert.Equal(t, 2, floats)
}

func TestStreamPushRejectsDataLargerThanStreamLimit(t *testing.T) {
	enc := &recordingEncoder{}
	s := NewStream(enc, Limits{MaxCommandBytes: 4096 * 256, MaxDataSize: 2})

	err := s.Push(RenderState{}, []float32{1, 2, 3}, 1)
	assert.Error(t, err)
}

func TestStreamRetainsTexturesUntilFlush(t *testing.T) {
	enc := &recordingEncoder{}
	s := NewStream(enc, DefaultLimits())

	tex := sprite.Make(geom.Sz(10, 10))
	tex.ID = 7

	assert.NoError(t, s.Push(RenderState{}, []float32{1}, 1, tex))
	assert.Len(t, s.retainedTextures, 1)
	assert.Same(t, tex, s.retainedTextures[7])

	assert.NoError(t, s.Flush())
	assert.Len(t, s.retainedTextures, 0)
}
