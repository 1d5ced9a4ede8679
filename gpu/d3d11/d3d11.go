// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package d3d11 is the Direct3D 11 [gpu.RenderDevice] backend slot; it
// carries no build constraint and compiles on every platform. No
// D3D11 Go binding appears anywhere in the example pack or go.mod (the
// original links straight against d3d11.h/dxgi1_6.h through COM), so
// unlike gpu/webgpu this package cannot wire a real device: [Open]
// always fails with an [gpu.Unsupported] error. It exists so app-layer
// backend-selection code can try D3D11 first on Windows and fall back
// to gpu/webgpu uniformly, without a platform-specific import graph.
package d3d11

import (
	"github.com/glimmerui/glimmer/gpu"
)

// maxResourceBytes is the guaranteed per-resource size under D3D11.0,
// carried here as a documented constant even though Open never
// allocates a resource, so a future real implementation has it ready.
const maxResourceBytes = 128 * 1048576

var errNoBinding = notImplemented("gpu/d3d11: no D3D11 binding library is available to this build")

type notImplemented string

func (e notImplemented) Error() string { return string(e) }

// Open always returns an [gpu.Unsupported] error; see the package doc.
func Open(selection gpu.Selection) (gpu.RenderDevice, error) {
	return nil, gpu.Unsupported("d3d11.Open", errNoBinding)
}
