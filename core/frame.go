// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/glimmerui/glimmer/canvas"
	"github.com/glimmerui/glimmer/input"
	"github.com/glimmerui/glimmer/layout"
	"github.com/glimmerui/glimmer/styles"
	"github.com/glimmerui/glimmer/tree"
)

// Tree drives one widget subtree's per-frame phases, triggered either by
// event delivery or by an explicit refresh request from the owning
// window.
type Tree struct {
	// Root is the tree's root widget.
	Root tree.Node

	// Stylesheet holds the rules the Styling phase applies every pass.
	Stylesheet *styles.Stylesheet

	// Input receives the hit-test map the Geometry phase rebuilds every
	// frame, and is what a window's event dispatch runs against.
	Input *input.Queue

	DevicePixelRatio float32
	Viewport         [2]float32
}

// RunFrame runs, in order, the Rebuild, Styling, Layout, Geometry &
// hit-test, Animation, and Paint phases over t.Root, painting into cv.
// It returns whether any widget's animation is still active, i.e.
// whether the caller should schedule another frame even with no further
// input.
func (t *Tree) RunFrame(available layout.AvailableSize, frameTime float32, cv *canvas.Canvas) bool {
	rebuild(t.Root)
	restyle(t.Root, t.Stylesheet, t.DevicePixelRatio, t.Viewport)

	if ln, ok := t.Root.(layout.Node); ok {
		layout.CalculateLayout(ln, available)
	}

	updateHitTest(t.Root, t.Input)

	more := animate(t.Root, frameTime)

	if cv != nil {
		paintTree(t.Root, cv)
	}
	return more
}

// animate runs the Animation phase and reports whether any widget's
// color transitions are still active afterward, by consuming each
// style's pending Style update flag (set by [styles.Style.Tick] when a
// transition hasn't finished).
func animate(root tree.Node, frameTime float32) bool {
	wn, ok := asWidgetNode(root)
	if !ok {
		return false
	}
	style := wn.Style()
	style.SetFrameTime(frameTime)
	style.Tick()
	needsMore := style.TakeUpdates().Style
	for _, c := range root.AsTree().Children {
		if animate(c, frameTime) {
			needsMore = true
		}
	}
	return needsMore
}
