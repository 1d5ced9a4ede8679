// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import "fmt"

// Argument indicates a caller passed an invalid argument: an out-of-bounds
// subrect, an incompatible image cast, or (in debug builds) an out-of-range
// image access. Never caught inside the core; the caller is expected to
// fix the call site.
type Argument struct {
	Op  string
	Msg string
}

func (e *Argument) Error() string { return "invalid argument in " + e.Op + ": " + e.Msg }

// NewArgument returns a new [Argument] error.
func NewArgument(op, format string, args ...any) *Argument {
	return &Argument{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Range indicates an image mapping address bounds violation detected in a
// debug build. Debug-only; callers should treat this as an assertion
// failure in their own code, not a recoverable condition.
type Range struct {
	Op  string
	Msg string
}

func (e *Range) Error() string { return "range violation in " + e.Op + ": " + e.Msg }

// NewRange returns a new [Range] error.
func NewRange(op, format string, args ...any) *Range {
	return &Range{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Image indicates the active GPU backend cannot represent a requested
// pixel type/format pairing. The caller should choose a convertible type.
type Image struct {
	Op  string
	Msg string
}

func (e *Image) Error() string { return "image error in " + e.Op + ": " + e.Msg }

// NewImage returns a new [Image] error.
func NewImage(op, format string, args ...any) *Image {
	return &Image{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Font indicates the shaper or face loading failed. Drawing code that
// receives this should fall back to the fallback face rather than abort.
type Font struct {
	Op  string
	Msg string
}

func (e *Font) Error() string { return "font error in " + e.Op + ": " + e.Msg }

// NewFont returns a new [Font] error.
func NewFont(op, format string, args ...any) *Font {
	return &Font{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// RenderDeviceKind classifies a [RenderDevice] failure.
type RenderDeviceKind int

const (
	// Unsupported means the requested feature, format, or limit is not
	// supported by the selected backend/adapter.
	Unsupported RenderDeviceKind = iota
	// ShaderError means a shader module failed to compile or link.
	ShaderError
	// InternalError wraps an underlying graphics-API failure (e.g. a failed
	// D3D11 or WebGPU call) at the abstraction boundary.
	InternalError
)

func (k RenderDeviceKind) String() string {
	switch k {
	case Unsupported:
		return "Unsupported"
	case ShaderError:
		return "ShaderError"
	case InternalError:
		return "InternalError"
	default:
		return "UnknownRenderDeviceKind"
	}
}

// RenderDevice reports a failure from device creation, pipeline
// compilation, or a GPU wait timeout. Device-creation errors are returned
// rather than panicked so the host application can decide whether to
// retry with a different backend.
type RenderDevice struct {
	Kind RenderDeviceKind
	Op   string
	Err  error
}

func (e *RenderDevice) Error() string {
	return "render device error (" + e.Kind.String() + ") in " + e.Op + ": " + e.Err.Error()
}

func (e *RenderDevice) Unwrap() error { return e.Err }

// NewRenderDevice wraps err as a [RenderDevice] error of the given kind.
// A GPU-API-specific failure (e.g. a failed D3D11 call) should always be
// wrapped as [InternalError] at the backend boundary.
func NewRenderDevice(kind RenderDeviceKind, op string, err error) *RenderDevice {
	return &RenderDevice{Kind: kind, Op: op, Err: err}
}
