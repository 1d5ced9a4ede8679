// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app drives the windowing lifecycle on top of the core widget
// tree: the main-thread event pump, the Unified/Dual scheduling models, a
// cross-thread TaskQueue, and the quit/modal-run machinery that a host
// program's main function calls into.
package app

import (
	"time"

	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/input"
)

// PlatformWindow is everything a host's native windowing layer (desktop,
// web, mobile) must supply; it is the collaborator spec.md treats as
// external to the core — glfw3/cocoa/android-activity equivalents never
// appear here, only the shape a Window needs from one.
type PlatformWindow interface {
	// FramebufferSize returns the window's drawable size in device pixels.
	FramebufferSize() geom.SizeOf[float32]

	// Handle returns the native window/surface handle a GPU backend needs
	// to create a swapchain against; its concrete type is backend-specific
	// (e.g. an HWND, an NSView pointer, a wl_surface).
	Handle() any

	// HasPendingEvents reports whether PollEvent would return immediately;
	// the main loop polls when true and blocks in WaitEvent otherwise.
	HasPendingEvents() bool

	// PollEvent returns the next queued OS event without blocking, or
	// ok=false if none is pending.
	PollEvent() (input.Event, bool)

	// WaitEvent blocks until an OS event arrives, or until WakeUp is
	// called, in which case it returns an [input.NoOp] event.
	WaitEvent() input.Event

	// WakeUp unblocks a pending WaitEvent call by posting a synthetic
	// [input.NoOp] event, the mechanism [WindowApplication.Quit] and
	// [TaskQueue.Dispatch] use to get a blocked main thread's attention.
	WakeUp()

	// Closed reports whether the user or OS has requested this window
	// close; the main loop removes it from the application on the next
	// iteration once true.
	Closed() bool

	// RequestClose asks the platform layer to close the window, e.g. in
	// response to a widget's "close" action.
	RequestClose()

	// DoubleClickInterval and DoubleClickDistance report the platform's
	// configured double-click parameters, consulted by input.Queue.
	DoubleClickInterval() time.Duration
	DoubleClickDistance() float32
}
