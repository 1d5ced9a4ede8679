// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/input"
	"github.com/glimmerui/glimmer/styles"
	"github.com/glimmerui/glimmer/tree"
)

// absoluteRects walks root's subtree converting each widget's
// parent-relative layout rectangle (set by the Layout phase) into an
// absolute, screen-space rectangle, since [layout.Node.SetLayoutRect]
// only ever records a child's rect relative to its parent's border-box
// origin.
func absoluteRects(root tree.Node, originAt geom.PointOf[float32], visit func(wn widgetNode, abs geom.RectangleOf[float32], scissor geom.RectangleOf[float32], hasScissor bool)) {
	absoluteRectsWalk(root, originAt, visit, geom.RectangleOf[float32]{}, false)
}

func absoluteRectsWalk(n tree.Node, origin geom.PointOf[float32], visit func(wn widgetNode, abs geom.RectangleOf[float32], scissor geom.RectangleOf[float32], hasScissor bool), scissor geom.RectangleOf[float32], hasScissor bool) {
	wn, ok := asWidgetNode(n)
	if !ok {
		return
	}
	rect := wn.Rect()
	abs := geom.RectFromPosSize(origin.Add(rect.Min), rect.Size())

	visit(wn, abs, scissor, hasScissor)

	childScissor, childHasScissor := scissor, hasScissor
	if wn.Style().Overflow() != styles.OverflowVisible {
		if hasScissor {
			childScissor = childScissor.Intersection(abs)
		} else {
			childScissor = abs
		}
		childHasScissor = true
	}

	for _, c := range n.AsTree().Children {
		absoluteRectsWalk(c, abs.Min, visit, childScissor, childHasScissor)
	}
}

// updateHitTest runs the widget tree's Geometry & hit-test phase: it
// rebuilds the full hit-test map from root's current (post-Layout)
// rectangles and installs it on q, in the same parent-before-children
// order the tree itself uses.
func updateHitTest(root tree.Node, q *input.Queue) {
	var entries []input.HitEntry
	absoluteRects(root, geom.PointOf[float32]{}, func(wn widgetNode, abs geom.RectangleOf[float32], scissor geom.RectangleOf[float32], hasScissor bool) {
		mouseTransparent, inTabGroup, anywhere := wn.hitEntry()
		entry := input.HitEntry{
			Widget:           wn,
			Rect:             abs,
			ZIndex:           wn.Style().ZIndex(),
			Anywhere:         anywhere,
			Visible:          wn.Style().Visible(),
			InTabGroup:       inTabGroup,
			MouseTransparent: mouseTransparent,
		}
		if hasScissor {
			entry.Scissor = scissor
		} else {
			entry.Scissor = abs
		}
		entries = append(entries, entry)
	})
	q.SetHitTest(entries)
}
