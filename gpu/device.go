// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu defines the renderer backend abstraction: [RenderDevice],
// [RenderEncoder], and the window/image render targets they produce.
// Two concrete backends satisfy this interface: gpu/webgpu and
// gpu/d3d11. Both packages build on every platform; gpu/d3d11's Open
// always returns an Unsupported error.
package gpu

import (
	"github.com/glimmerui/glimmer/colors"
	"github.com/glimmerui/glimmer/errors"
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/pixel"
	"github.com/glimmerui/glimmer/render"
)

// Backend names a compiled-in rendering API.
type Backend uint8

const (
	BackendDefault Backend = iota
	BackendWebGPU
	// BackendD3D11 names the gpu/d3d11 backend, whose Open always fails
	// with an Unsupported error.
	BackendD3D11
)

// Selection picks which physical adapter a backend should open.
type Selection uint8

const (
	SelectionDefault Selection = iota
	SelectionHighPerformance
	SelectionLowPower
)

// Info reports static facts about an open [RenderDevice].
type Info struct {
	API        string
	APIVersion int
	Vendor     string
	Device     string
}

// Limits are the resource ceilings a [RenderDevice] enforces; a
// [render.Stream] is configured from these so it flushes before a batch
// would overrun the backend's actual buffers.
type Limits struct {
	MaxDataSize  int
	MaxAtlasSize int
	MaxGradients int
}

// DepthStencil selects a render target's depth/stencil buffer format.
type DepthStencil uint8

const (
	DepthStencilNone DepthStencil = iota
	DepthStencilD24S8
	DepthStencilD32
)

// VisualSettings are encoder-wide display adjustments applied after
// compositing: blue-light filtering, gamma, and subpixel text toggling.
type VisualSettings struct {
	BlueLightFilter float32
	Gamma           float32
	SubpixelText    bool
}

// RenderTarget is anything a [RenderEncoder] can draw into.
type RenderTarget interface {
	Size() geom.SizeOf[int]
}

// WindowRenderTarget is a [RenderTarget] backed by a live OS window
// swapchain.
type WindowRenderTarget interface {
	RenderTarget
	ResizeBackbuffer(size geom.SizeOf[int])
	Present() error
	VSyncInterval() int
	SetVSyncInterval(interval int)
}

// ImageRenderTarget is a [RenderTarget] backed by an offscreen image,
// used for render-to-texture and headless/test rendering.
type ImageRenderTarget interface {
	RenderTarget
	SetSize(size geom.SizeOf[int])
	Image() *pixel.Image[uint8]
}

// OSWindowHandle is the native handle a platform window exposes so a
// backend can create a swapchain against it; its fields are filled in by
// the platform-specific app layer, never by gpu itself.
type OSWindowHandle struct {
	Win32HWND  uintptr
	CocoaView  uintptr
	X11Window  uint64
	X11Display uintptr
	WaylandSurface uintptr
}

// OSWindow is the minimal view of a platform window a [RenderDevice]
// needs to create a [WindowRenderTarget].
type OSWindow interface {
	FramebufferSize() geom.SizeOf[int]
	Handle() OSWindowHandle
}

// RenderDevice is an open connection to a graphics API/adapter pair. It
// creates render targets, encoders, and image backends, and reports the
// resource limits a [render.Stream] must respect.
type RenderDevice interface {
	Info() Info
	Limits() Limits

	CreateWindowTarget(win OSWindow, depth DepthStencil, samples int) (WindowRenderTarget, error)
	CreateImageTarget(size geom.SizeOf[int], depth DepthStencil, samples int) (ImageRenderTarget, error)
	CreateEncoder() (RenderEncoder, error)

	// CreateImageBackend attaches a GPU-side staging strategy to img so
	// its Map/Access calls copy to/from device memory around CPU access.
	CreateImageBackend(img *pixel.Image[uint8]) (pixel.Backend, error)

	Close() error
}

// RenderEncoder drives one frame: begin a target, flush batches of
// [render.RenderState] commands against it via [render.Stream], end, and
// optionally wait for the GPU to finish. It also implements
// [render.Encoder] so a [render.Stream] can flush straight into it.
type RenderEncoder interface {
	render.Encoder

	VisualSettings() VisualSettings
	SetVisualSettings(v VisualSettings)

	Begin(target RenderTarget, clear colors.Color[float32], dirtyRects []geom.RectangleOf[float32]) error
	End() error
	Wait() error
}

// Unsupported wraps err as an [errors.RenderDevice] error tagged
// Unsupported, for a requested feature/format/limit the active backend
// cannot provide.
func Unsupported(op string, err error) error {
	return errors.NewRenderDevice(errors.Unsupported, op, err)
}

// Internal wraps err as an [errors.RenderDevice] error tagged
// InternalError, for an underlying graphics-API call failure.
func Internal(op string, err error) error {
	return errors.NewRenderDevice(errors.InternalError, op, err)
}
