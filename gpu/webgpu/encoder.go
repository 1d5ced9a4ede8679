// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webgpu

import (
	"encoding/binary"
	"math"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/glimmerui/glimmer/bools"
	"github.com/glimmerui/glimmer/colors"
	"github.com/glimmerui/glimmer/errors"
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/gpu"
	"github.com/glimmerui/glimmer/render"
)

// Encoder is the WebGPU-backed [gpu.RenderEncoder]. It owns the growable
// constant buffer (one slot per pending [render.RenderState]) and data
// buffer (the shared per-instance float payload) that back()
// [render.Stream.Push]'s {data_offset, data_size} windows, and rebuilds
// them with a fresh wgpu.Buffer whenever a batch needs more room than the
// last one allocated.
type Encoder struct {
	device *Device

	visual gpu.VisualSettings

	target      gpu.RenderTarget
	cmdEncoder  *wgpu.CommandEncoder
	renderPass  *wgpu.RenderPassEncoder

	constantBuffer     *wgpu.Buffer
	constantBufferSize int
	dataBuffer         *wgpu.Buffer
	dataBufferSize     int

	pipelineCache map[pipelineKey]*wgpu.RenderPipeline
}

type pipelineKey struct {
	format             wgpu.TextureFormat
	dualSourceBlending bool
}

func newEncoder(d *Device) *Encoder {
	return &Encoder{
		device:        d,
		visual:        gpu.VisualSettings{Gamma: 1, SubpixelText: true},
		pipelineCache: make(map[pipelineKey]*wgpu.RenderPipeline),
	}
}

func (e *Encoder) VisualSettings() gpu.VisualSettings       { return e.visual }
func (e *Encoder) SetVisualSettings(v gpu.VisualSettings)   { e.visual = v }

// Begin opens a command encoder and render pass targeting target. With
// no dirtyRects the pass clears target to clear. With any dirtyRects the
// pass loads target's existing contents and clears nothing: the clear
// color goes unused and the pass is not scissored to the rectangles.
func (e *Encoder) Begin(target gpu.RenderTarget, clear colors.Color[float32], dirtyRects []geom.RectangleOf[float32]) error {
	e.target = target
	enc, err := e.device.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "glimmer-frame"})
	if err != nil {
		return gpu.Internal("webgpu.Encoder.Begin", err)
	}
	e.cmdEncoder = enc

	view, format, err := renderTargetView(target)
	if err != nil {
		return err
	}

	loadOp := wgpu.LoadOpClear
	if len(dirtyRects) > 0 {
		// partial repaint: preserve the existing contents
		loadOp = wgpu.LoadOpLoad
	}

	pass, err := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     loadOp,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: colorToWGPU(clear),
		}},
	})
	if err != nil {
		return gpu.Internal("webgpu.Encoder.Begin", err)
	}
	e.renderPass = pass
	_ = format
	return nil
}

// Batch implements [render.Encoder]: it uploads states as the per-command
// uniform buffer and data as the per-instance data buffer, growing either
// wgpu.Buffer when the incoming batch is larger than the last one this
// encoder allocated, then issues one draw per [render.RenderState].
func (e *Encoder) Batch(states []render.RenderState, data []float32) error {
	if e.renderPass == nil {
		return gpu.Internal("webgpu.Encoder.Batch", errBatchBeforeBegin)
	}

	needConstant := len(states) * 256
	if needConstant > e.constantBufferSize {
		if e.constantBuffer != nil {
			e.constantBuffer.Release()
		}
		buf, err := e.device.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "glimmer-constants",
			Size:  uint64(needConstant),
			Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return gpu.Internal("webgpu.Encoder.Batch", err)
		}
		e.constantBuffer = buf
		e.constantBufferSize = needConstant
	}

	needData := len(data) * 4
	if needData > e.dataBufferSize {
		if e.dataBuffer != nil {
			e.dataBuffer.Release()
		}
		buf, err := e.device.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "glimmer-data",
			Size:  uint64(needData),
			Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return gpu.Internal("webgpu.Encoder.Batch", err)
		}
		e.dataBuffer = buf
		e.dataBufferSize = needData
	}

	if len(data) > 0 {
		e.device.queue.WriteBuffer(e.dataBuffer, 0, float32SliceToBytes(data))
	}

	for i, st := range states {
		pipeline, err := e.pipelineFor(st)
		if err != nil {
			return err
		}
		e.device.queue.WriteBuffer(e.constantBuffer, uint64(i*256), renderStateToBytes(st))
		e.renderPass.SetPipeline(pipeline)
		e.renderPass.Draw(4, st.Instances, 0, uint32(i))
	}
	return nil
}

func (e *Encoder) pipelineFor(st render.RenderState) (*wgpu.RenderPipeline, error) {
	key := pipelineKey{format: wgpu.TextureFormatRGBA8UnormSrgb, dualSourceBlending: e.device.dualSourceBlending}
	if p, ok := e.pipelineCache[key]; ok {
		return p, nil
	}
	p, err := e.device.createPipeline(key.format, key.dualSourceBlending)
	if err != nil {
		return nil, err
	}
	e.pipelineCache[key] = p
	return p, nil
}

func (e *Encoder) End() error {
	if e.renderPass != nil {
		e.renderPass.End()
		e.renderPass = nil
	}
	if e.cmdEncoder == nil {
		return nil
	}
	cmd, err := e.cmdEncoder.Finish(nil)
	if err != nil {
		return gpu.Internal("webgpu.Encoder.End", err)
	}
	e.device.queue.Submit(cmd)
	e.cmdEncoder = nil
	return nil
}

// Wait blocks until the device has finished processing every command
// submitted so far.
func (e *Encoder) Wait() error {
	e.device.device.Poll(true, nil)
	return nil
}

var errBatchBeforeBegin = errors.NewArgument("webgpu.Encoder.Batch", "Batch called before Begin")

func float32SliceToBytes(data []float32) []byte {
	out := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

// renderStateToBytes packs the uniform fields a shader reads for one
// [render.RenderState] into its fixed 256-byte slot. Layout mirrors the
// field order declared on [render.RenderState]; unused tail bytes are
// left zeroed padding.
func renderStateToBytes(st render.RenderState) []byte {
	out := make([]byte, 256)
	putF := func(off int, v float32) { binary.LittleEndian.PutUint32(out[off:], math.Float32bits(v)) }
	putU := func(off int, v uint32) { binary.LittleEndian.PutUint32(out[off:], v) }

	putU(0, uint32(st.Shader))
	putU(4, uint32(st.Subpixel))
	putF(8, st.Fill.Color.R)
	putF(12, st.Fill.Color.G)
	putF(16, st.Fill.Color.B)
	putF(20, st.Fill.Color.A)
	putU(24, uint32(st.Fill.GradientID))
	putF(28, st.Stroke.Color.R)
	putF(32, st.Stroke.Color.G)
	putF(36, st.Stroke.Color.B)
	putF(40, st.Stroke.Color.A)
	putU(44, uint32(st.Stroke.GradientID))
	putF(48, st.GradientP1.X)
	putF(52, st.GradientP1.Y)
	putF(56, st.GradientP2.X)
	putF(60, st.GradientP2.Y)
	putF(64, st.Scissor.Min.X)
	putF(68, st.Scissor.Min.Y)
	putF(72, st.Scissor.Max.X)
	putF(76, st.Scissor.Max.Y)
	putU(80, uint32(st.PatternSprite))
	putF(88, st.BlurRadius)
	putU(92, uint32(st.TextureChannel))
	m := [6]float32{st.Matrix.XX, st.Matrix.YX, st.Matrix.XY, st.Matrix.YY, st.Matrix.X0, st.Matrix.Y0}
	for i, v := range m {
		putF(96+i*4, v)
	}
	putU(160, bools.ToUint32(st.Contour))
	putU(164, bools.ToUint32(st.Shadow))
	return out
}
