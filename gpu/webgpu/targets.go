// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webgpu

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/gpu"
	"github.com/glimmerui/glimmer/pixel"
)

// WindowTarget is a [gpu.WindowRenderTarget] backed by a wgpu surface
// swapchain.
type WindowTarget struct {
	device  *Device
	surface *wgpu.Surface
	format  wgpu.TextureFormat
	size    geom.SizeOf[int]
	vsync   int
}

func newWindowTarget(d *Device, win gpu.OSWindow, depth gpu.DepthStencil, samples int) (*WindowTarget, error) {
	handle := win.Handle()
	surface := d.instance.CreateSurface(surfaceDescriptorFor(handle))
	caps := surface.GetCapabilities(d.adapter)
	format := wgpu.TextureFormatRGBA8UnormSrgb
	if len(caps.Formats) > 0 {
		format = caps.Formats[0]
	}

	size := win.FramebufferSize()
	t := &WindowTarget{device: d, surface: surface, format: format, size: size, vsync: 1}
	t.configure()
	return t, nil
}

func (t *WindowTarget) configure() {
	present := wgpu.PresentModeFifo
	if t.vsync == 0 {
		present = wgpu.PresentModeImmediate
	}
	t.surface.Configure(t.device.adapter, t.device.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      t.format,
		Width:       uint32(t.size.Width),
		Height:      uint32(t.size.Height),
		PresentMode: present,
		AlphaMode:   wgpu.CompositeAlphaModeAuto,
	})
}

func (t *WindowTarget) Size() geom.SizeOf[int] { return t.size }

func (t *WindowTarget) ResizeBackbuffer(size geom.SizeOf[int]) {
	t.size = size
	t.configure()
}

func (t *WindowTarget) Present() error {
	t.surface.Present()
	return nil
}

func (t *WindowTarget) VSyncInterval() int { return t.vsync }

func (t *WindowTarget) SetVSyncInterval(interval int) {
	if t.vsync == interval {
		return
	}
	t.vsync = interval
	t.configure()
}

func (t *WindowTarget) currentView() (*wgpu.TextureView, error) {
	current, err := t.surface.GetCurrentTexture()
	if err != nil {
		return nil, gpu.Internal("webgpu.WindowTarget", err)
	}
	return current.Texture.CreateView(nil)
}

// ImageTarget is a [gpu.ImageRenderTarget] backed by an offscreen
// render-attachment texture, used for render-to-texture and headless
// rendering. Its [pixel.Image] is allocated at the target's size but is
// not filled from the rendered texture.
type ImageTarget struct {
	device  *Device
	texture *wgpu.Texture
	view    *wgpu.TextureView
	format  wgpu.TextureFormat
	size    geom.SizeOf[int]
	image   *pixel.Image[uint8]
}

func newImageTarget(d *Device, size geom.SizeOf[int], depth gpu.DepthStencil, samples int) (*ImageTarget, error) {
	t := &ImageTarget{device: d, format: wgpu.TextureFormatRGBA8UnormSrgb, size: size}
	if err := t.allocate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *ImageTarget) allocate() error {
	tex, err := t.device.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "glimmer-image-target",
		Size:          wgpu.Extent3D{Width: uint32(t.size.Width), Height: uint32(t.size.Height), DepthOrArrayLayers: 1},
		Format:        t.format,
		Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopySrc,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
	})
	if err != nil {
		return gpu.Internal("webgpu.ImageTarget", err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		return gpu.Internal("webgpu.ImageTarget", err)
	}
	if t.texture != nil {
		t.texture.Release()
	}
	t.texture = tex
	t.view = view
	img, err := pixel.New[uint8](t.size, pixelTypeForFormat(t.format), pixelFormatForFormat(t.format))
	if err != nil {
		return err
	}
	t.image = img
	return nil
}

func (t *ImageTarget) Size() geom.SizeOf[int] { return t.size }

func (t *ImageTarget) SetSize(size geom.SizeOf[int]) {
	if size == t.size {
		return
	}
	t.size = size
	_ = t.allocate()
}

func (t *ImageTarget) Image() *pixel.Image[uint8] { return t.image }

// renderTargetView resolves target to the wgpu.TextureView a render pass
// should attach to, and the texture format that view was created with.
func renderTargetView(target gpu.RenderTarget) (*wgpu.TextureView, wgpu.TextureFormat, error) {
	switch t := target.(type) {
	case *WindowTarget:
		v, err := t.currentView()
		return v, t.format, err
	case *ImageTarget:
		return t.view, t.format, nil
	default:
		return nil, 0, gpu.Unsupported("webgpu.renderTargetView", errUnknownTarget)
	}
}

// ImageBackend is the [pixel.Backend] the device hands back from
// CreateImageBackend: End uploads an [pixel.Image]'s CPU-side bytes to a
// GPU texture after a write access. The texture is never read back into
// the image.
type ImageBackend struct {
	device  *Device
	texture *wgpu.Texture
	image   *pixel.Image[uint8]
}

func newImageBackend(d *Device, img *pixel.Image[uint8]) (*ImageBackend, error) {
	size := img.Size()
	tex, err := d.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "glimmer-image-backend",
		Size:          wgpu.Extent3D{Width: uint32(size.Width), Height: uint32(size.Height), DepthOrArrayLayers: 1},
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst | wgpu.TextureUsageCopySrc,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
	})
	if err != nil {
		return nil, gpu.Internal("webgpu.CreateImageBackend", err)
	}
	return &ImageBackend{device: d, texture: tex, image: img}, nil
}

// Begin does nothing for any access mode. Before a read access the
// texture's contents are not copied into the image, so a read sees the
// bytes the image already holds.
func (b *ImageBackend) Begin(mode pixel.AccessMode, rect geom.RectangleOf[int]) {
	if mode == pixel.AccessWrite {
		return
	}
	// the texture subregion is not copied into the image's backing Data.
}

// End uploads the CPU-side bytes covering rect back to the GPU texture
// after a write access, or is a no-op after a read-only access.
func (b *ImageBackend) End(mode pixel.AccessMode, rect geom.RectangleOf[int]) {
	if mode == pixel.AccessRead {
		return
	}
	data := b.image.Data()
	sub, err := data.Subrect(rect)
	if err != nil {
		return
	}
	b.device.queue.WriteTexture(
		&wgpu.ImageCopyTexture{Texture: b.texture, Origin: wgpu.Origin3D{X: uint32(rect.Min.X), Y: uint32(rect.Min.Y)}},
		bytesOfPixels(sub.Pixels),
		&wgpu.TextureDataLayout{BytesPerRow: uint32(sub.Stride), RowsPerImage: uint32(rect.Height())},
		&wgpu.Extent3D{Width: uint32(rect.Width()), Height: uint32(rect.Height()), DepthOrArrayLayers: 1},
	)
}

func bytesOfPixels(px []uint8) []byte { return px }

func pixelTypeForFormat(f wgpu.TextureFormat) pixel.Type {
	switch f {
	case wgpu.TextureFormatRGBA8Unorm:
		return pixel.U8
	default:
		return pixel.U8Gamma
	}
}

func pixelFormatForFormat(f wgpu.TextureFormat) pixel.Format { return pixel.RGBA }
