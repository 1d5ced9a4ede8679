// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/glimmerui/glimmer/errors"
	"github.com/glimmerui/glimmer/sprite"
)

// Encoder accepts one flushed batch of commands. A backend's
// createEncoder()'d RenderEncoder.batch(states, data) call is the
// concrete implementation this interface abstracts over.
type Encoder interface {
	Batch(states []RenderState, data []float32) error
}

// Limits bounds how large a [Stream]'s pending batch may grow before it
// must flush, mirroring a backend's RenderDevice.limits().
type Limits struct {
	// MaxCommandBytes bounds len(states)*256; spec.md's 256-byte-per-slot
	// accounting unit, not the actual size of a RenderState value.
	MaxCommandBytes int
	// MaxDataSize bounds the number of float32s live in the data buffer.
	MaxDataSize int
}

// DefaultLimits returns conservative limits suitable when a backend has
// not yet reported its own via RenderDevice.limits().
func DefaultLimits() Limits {
	return Limits{MaxCommandBytes: 4096 * 256, MaxDataSize: 1 << 20}
}

// Stream accumulates [RenderState] commands and their per-instance data
// into a batch, auto-flushing to encoder whenever the next push would
// exceed limits. Textures referenced by commands already pushed this
// batch are retained (via retainedTextures) until the batch is actually
// submitted, so a caller doesn't need to keep its own references alive.
type Stream struct {
	encoder Encoder
	limits  Limits

	states []RenderState
	data   []float32

	retainedTextures map[uint64]*sprite.Resource
}

// NewStream returns a [Stream] that flushes full batches to encoder.
func NewStream(encoder Encoder, limits Limits) *Stream {
	return &Stream{
		encoder:          encoder,
		limits:           limits,
		retainedTextures: make(map[uint64]*sprite.Resource),
	}
}

// Push appends state to the batch, after filling in its
// {DataOffset,DataSize,Instances} window from data and instances, and
// flushing first if adding it would exceed the stream's limits. textures
// are retained (see [Stream]) until the batch this command lands in is
// submitted.
func (s *Stream) Push(state RenderState, data []float32, instances int, textures ...*sprite.Resource) error {
	if len(data) > s.limits.MaxDataSize {
		return errors.NewArgument("render.Stream.Push", "command data (%d floats) exceeds the stream's max data size (%d)", len(data), s.limits.MaxDataSize)
	}

	nextCommandBytes := (len(s.states) + 1) * 256
	if nextCommandBytes > s.limits.MaxCommandBytes || len(s.data)+len(data) > s.limits.MaxDataSize {
		if err := s.Flush(); err != nil {
			return err
		}
	}

	state.DataOffset = uint32(len(s.data))
	state.DataSize = uint32(len(data))
	state.Instances = uint32(instances)

	s.data = append(s.data, data...)
	s.states = append(s.states, state)
	for _, t := range textures {
		if t != nil {
			s.retainedTextures[t.ID] = t
		}
	}
	return nil
}

// Flush submits the pending batch to the encoder and resets the stream.
// It is a no-op when nothing is pending.
func (s *Stream) Flush() error {
	if len(s.states) == 0 {
		return nil
	}
	if err := s.encoder.Batch(s.states, s.data); err != nil {
		return err
	}
	s.states = s.states[:0]
	s.data = s.data[:0]
	s.retainedTextures = make(map[uint64]*sprite.Resource)
	return nil
}

// Pending reports the number of commands and data floats currently
// buffered, awaiting a flush.
func (s *Stream) Pending() (commands, dataFloats int) {
	return len(s.states), len(s.data)
}
