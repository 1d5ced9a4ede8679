// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package webgpu is the cross-platform [gpu.RenderDevice] backend, built
// on github.com/cogentcore/webgpu/wgpu. It is the backend every platform
// this repo targets can build, mirroring how the teacher's own gpu
// package treats WebGPU as the default rather than a Windows-only
// fallback (that role belongs to gpu/d3d11).
package webgpu

import (
	"github.com/Masterminds/semver/v3"
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/glimmerui/glimmer/colors"
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/gpu"
	"github.com/glimmerui/glimmer/pixel"
)

// Device is the WebGPU-backed [gpu.RenderDevice].
type Device struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	info   gpu.Info
	limits gpu.Limits

	// dualSourceBlending requires the adapter's dual-source-blending
	// feature bit. When a semver version can be parsed from the adapter's
	// driver description, that version must also be >= 1.0.0; with no
	// parseable version the feature bit alone decides.
	dualSourceBlending bool
}

// Open creates a [Device] against the requested selection.
// [gpu.SelectionDefault] leaves the power preference undefined, so the
// platform picks its default adapter.
func Open(selection gpu.Selection) (*Device, error) {
	instance := wgpu.CreateInstance(nil)

	var power wgpu.PowerPreference
	switch selection {
	case gpu.SelectionHighPerformance:
		power = wgpu.PowerPreferenceHighPerformance
	case gpu.SelectionLowPower:
		power = wgpu.PowerPreferenceLowPower
	default:
		power = wgpu.PowerPreferenceUndefined
	}

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{PowerPreference: power})
	if err != nil {
		return nil, gpu.Unsupported("webgpu.Open", err)
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "glimmer"})
	if err != nil {
		return nil, gpu.Internal("webgpu.Open", err)
	}

	props := adapter.GetProperties()
	limitsOut := device.GetLimits()

	d := &Device{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    device.GetQueue(),
		info: gpu.Info{
			API:        "WebGPU",
			APIVersion: 1,
			Vendor:     props.VendorName,
			Device:     props.Name,
		},
		limits: gpu.Limits{
			MaxDataSize:  int(limitsOut.Limits.MaxBufferSize) / 4,
			MaxAtlasSize: int(limitsOut.Limits.MaxTextureDimension2D),
			MaxGradients: int(limitsOut.Limits.MaxTextureDimension1D),
		},
	}
	d.dualSourceBlending = detectDualSourceBlending(adapter, props.DriverDescription)
	return d, nil
}

// detectDualSourceBlending parses the adapter's driver-description string
// for a semver-looking token and requires it to be at least 1.0.0 before
// trusting the feature bit the adapter reports; drivers below that have
// historically advertised the extension without implementing it
// correctly.
func detectDualSourceBlending(adapter *wgpu.Adapter, driverDescription string) bool {
	if !adapter.HasFeature(wgpu.FeatureNameDualSourceBlending) {
		return false
	}
	v, err := semver.NewVersion(driverDescription)
	if err != nil {
		// no parseable version token; trust the feature bit on its own
		return true
	}
	min := semver.MustParse("1.0.0")
	return !v.LessThan(min)
}

func (d *Device) Info() gpu.Info     { return d.info }
func (d *Device) Limits() gpu.Limits { return d.limits }

func (d *Device) CreateEncoder() (gpu.RenderEncoder, error) {
	return newEncoder(d), nil
}

func (d *Device) CreateWindowTarget(win gpu.OSWindow, depth gpu.DepthStencil, samples int) (gpu.WindowRenderTarget, error) {
	return newWindowTarget(d, win, depth, samples)
}

func (d *Device) CreateImageTarget(size geom.SizeOf[int], depth gpu.DepthStencil, samples int) (gpu.ImageRenderTarget, error) {
	return newImageTarget(d, size, depth, samples)
}

func (d *Device) CreateImageBackend(img *pixel.Image[uint8]) (pixel.Backend, error) {
	return newImageBackend(d, img)
}

func (d *Device) Close() error {
	d.queue.Release()
	d.device.Release()
	d.adapter.Release()
	d.instance.Release()
	return nil
}

func colorToWGPU(c colors.Color[float32]) wgpu.Color {
	return wgpu.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}
