// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/tree"
)

// Widget is the surface a node needs to participate in hit-testing, focus,
// and dispatch; core.WidgetBase satisfies it. Kept minimal
// and decoupled from any concrete widget package so input has no import
// cycle back onto the widget tree.
type Widget interface {
	tree.Node

	// HandleEvent delivers ev to the widget. The widget may call
	// ev.SetHandled or ev.SetBubbles(false) to stop propagation.
	HandleEvent(ev *Event)
}

// HitEntry is one widget's entry in the hit-test map rebuilt by the
// geometry pass every frame: its screen rectangle, stacking order, and the
// flags that govern whether a point counts as "inside" it.
type HitEntry struct {
	Widget Widget
	Rect   geom.RectangleOf[float32]
	ZIndex int

	// Anywhere means the widget accepts events anywhere on screen,
	// ignoring Rect (used by modal scrims and full-window drag targets).
	Anywhere bool

	Visible          bool
	InTabGroup       bool
	MouseTransparent bool

	// Scissor is the visible (clipped) rectangle, possibly smaller than
	// Rect when an ancestor clips overflow; a point inside Rect but
	// outside Scissor does not hit this widget.
	Scissor geom.RectangleOf[float32]
}

// contains reports whether p counts as hitting this entry: either the
// entry accepts hits anywhere, or p falls inside both its own rect and
// its scissored (clipped) rect.
func (h HitEntry) contains(p geom.PointOf[float32]) bool {
	if h.Anywhere {
		return true
	}
	if !h.Rect.Contains(p) {
		return false
	}
	// a zero-value Scissor means the geometry pass didn't set one, i.e.
	// no ancestor clips this widget; treat that as unbounded rather than
	// failing every hit test against an empty rectangle.
	if h.Scissor.Empty() {
		return true
	}
	return h.Scissor.Contains(p)
}
