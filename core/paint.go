// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"sort"

	"github.com/glimmerui/glimmer/canvas"
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/styles"
	"github.com/glimmerui/glimmer/tree"
)

// deferredLayer is a z-ordered child (or overlay such as a focus ring or
// hint tooltip) whose paint is deferred until its containing subtree has
// finished, so it draws on top of ordinary siblings regardless of tree
// order.
type deferredLayer struct {
	zIndex int
	paint  func(cv *canvas.Canvas)
}

// paintTree runs the widget tree's Paint phase: a clip-stack traversal
// where each widget paints itself, then its children in tree order, with
// any nonzero-ZIndex child instead collected as a deferred layer that
// paints after the whole subtree, sorted by ZIndex.
func paintTree(root tree.Node, cv *canvas.Canvas) {
	var layers []deferredLayer
	paintWalk(root, cv, geom.PointOf[float32]{}, &layers)
	// A deferred layer can itself defer nested z-ordered children; those
	// paint in a further round after it.
	for len(layers) > 0 {
		pending := layers
		layers = nil
		sort.SliceStable(pending, func(i, j int) bool { return pending[i].zIndex < pending[j].zIndex })
		for _, l := range pending {
			l.paint(cv)
		}
	}
}

func paintWalk(n tree.Node, cv *canvas.Canvas, origin geom.PointOf[float32], layers *[]deferredLayer) {
	wn, ok := asWidgetNode(n)
	if !ok {
		return
	}
	style := wn.Style()
	if !style.Visible() {
		return
	}
	rect := wn.Rect()
	abs := geom.RectFromPosSize(origin.Add(rect.Min), rect.Size())

	save := cv.Raw().Save()
	defer save.Restore()
	if style.Overflow() == styles.OverflowHidden {
		cv.Raw().IntersectScissor(abs)
	}

	wn.paintSelf(cv, abs)

	for _, c := range n.AsTree().Children {
		childWn, ok := asWidgetNode(c)
		if !ok {
			continue
		}
		if z := childWn.Style().ZIndex(); z != 0 {
			child, childOrigin := c, abs.Min
			*layers = append(*layers, deferredLayer{
				zIndex: z,
				paint:  func(cv *canvas.Canvas) { paintWalk(child, cv, childOrigin, layers) },
			})
			continue
		}
		paintWalk(c, cv, abs.Min, layers)
	}
}
