// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webgpu

import (
	"errors"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/glimmerui/glimmer/gpu"
)

// shaderWGSL is the single shader module the pipeline is built from.
// Its vertex stage emits the four corners of one full-screen quad from
// vertex_index alone, and its fragment stage returns transparent black
// for every pixel. The state and instanceData bindings are declared but
// read by neither stage, so the Shader field and per-instance data of a
// [render.RenderState] do not affect what is drawn.
const shaderWGSL = `
struct RenderState {
	shader: u32,
	subpixel: u32,
}

@group(0) @binding(0) var<uniform> state: RenderState;
@group(0) @binding(1) var<storage, read> instanceData: array<f32>;

@vertex
fn vs_main(@builtin(vertex_index) vertexIndex: u32) -> @builtin(position) vec4<f32> {
	var corners = array<vec2<f32>, 4>(
		vec2<f32>(-1.0, -1.0), vec2<f32>(1.0, -1.0),
		vec2<f32>(-1.0, 1.0), vec2<f32>(1.0, 1.0));
	return vec4<f32>(corners[vertexIndex], 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
	return vec4<f32>(0.0, 0.0, 0.0, 0.0);
}
`

func (d *Device) createPipeline(format wgpu.TextureFormat, dualSourceBlending bool) (*wgpu.RenderPipeline, error) {
	shader, err := d.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "glimmer-shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaderWGSL},
	})
	if err != nil {
		return nil, gpu.Internal("webgpu.createPipeline", err)
	}
	defer shader.Release()

	blend := &wgpu.BlendState{
		Color: wgpu.BlendComponent{SrcFactor: wgpu.BlendFactorSrcAlpha, DstFactor: wgpu.BlendFactorOneMinusSrcAlpha, Operation: wgpu.BlendOperationAdd},
		Alpha: wgpu.BlendComponent{SrcFactor: wgpu.BlendFactorOne, DstFactor: wgpu.BlendFactorOneMinusSrcAlpha, Operation: wgpu.BlendOperationAdd},
	}
	if dualSourceBlending {
		blend.Color.SrcFactor = wgpu.BlendFactorSrc1
		blend.Color.DstFactor = wgpu.BlendFactorOneMinusSrc1
	}

	pipeline, err := d.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "glimmer-pipeline",
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleStrip,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     blend,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Multisample: wgpu.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
	})
	if err != nil {
		return nil, gpu.Internal("webgpu.createPipeline", err)
	}
	return pipeline, nil
}

// surfaceDescriptorFor builds the platform-specific wgpu surface
// descriptor for handle; exactly one of its fields is populated per
// platform, mirroring the original's per-platform
// WindowRenderTarget_<Platform>.cpp split collapsed into one function
// since Go has no #ifdef, just a runtime switch on which field is set.
func surfaceDescriptorFor(handle gpu.OSWindowHandle) *wgpu.SurfaceDescriptor {
	switch {
	case handle.Win32HWND != 0:
		return &wgpu.SurfaceDescriptor{WindowsHWND: &wgpu.SurfaceDescriptorFromWindowsHWND{Hwnd: handle.Win32HWND}}
	case handle.CocoaView != 0:
		return &wgpu.SurfaceDescriptor{MetalLayer: &wgpu.SurfaceDescriptorFromMetalLayer{Layer: handle.CocoaView}}
	case handle.WaylandSurface != 0:
		return &wgpu.SurfaceDescriptor{WaylandSurface: &wgpu.SurfaceDescriptorFromWaylandSurface{Surface: handle.WaylandSurface}}
	case handle.X11Window != 0:
		return &wgpu.SurfaceDescriptor{XlibWindow: &wgpu.SurfaceDescriptorFromXlibWindow{Window: uint32(handle.X11Window), Display: handle.X11Display}}
	default:
		return &wgpu.SurfaceDescriptor{}
	}
}

var errUnknownTarget = errors.New("webgpu: render target is not one created by this package")
