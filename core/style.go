// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/glimmerui/glimmer/styles"
	"github.com/glimmerui/glimmer/tree"
	"github.com/glimmerui/glimmer/units"
)

// RequestRestyle marks w as needing a Styling pass, and every ancestor as
// containing a subtree that does, so the Styling phase can start at the
// deepest dirty subtree instead of always re-walking the whole tree.
func (w *WidgetBase) RequestRestyle() {
	markDirty(w.restyleMark(), restyleNeeds)
	walkAncestorsDirty(w.NodeBase.Parent, func(wn widgetNode) *restyleState { return wn.restyleMark() })
}

// restyle runs the Styling phase over root's subtree: sheet is consulted
// for every widget whose restyle mark is set, in parent-to-child order so
// a widget's resolved font size and content-box width (used to resolve
// its children's Em/Percent lengths) are available before its children
// resolve. root is flagged MatchIsRoot for the duration of this call.
func restyle(root tree.Node, sheet *styles.Stylesheet, devicePixelRatio float32, viewport [2]float32) {
	rootCtx := units.Context{
		FontSize:         14,
		DevicePixelRatio: devicePixelRatio,
		Containing:       viewport[0],
		Viewport:         viewport,
	}
	restyleWalk(root, sheet, nil, rootCtx, true)
}

func restyleWalk(n tree.Node, sheet *styles.Stylesheet, parentStyle *styles.Style, ctx units.Context, isRoot bool) {
	wn, ok := asWidgetNode(n)
	if !ok {
		return
	}
	mark := wn.restyleMark()
	dirty := *mark != restyleClean
	*mark = restyleClean

	style := wn.Style()
	style.Parent = parentStyle
	if dirty {
		flags := styles.MatchNone
		if isRoot {
			flags = styles.MatchIsRoot
		}
		sheet.Apply(wn, style, flags)
	}
	// Resolve runs on every widget every frame, dirty or not, since a
	// container's size can change without any stylesheet change; only the
	// rule matching above is skipped for clean widgets.
	style.Resolve(ctx)

	childCtx := ctx
	childCtx.FontSize = style.FontSize()
	if content, ok := contentBoxWidth(style); ok {
		childCtx.Containing = content
	}

	for _, c := range n.AsTree().Children {
		restyleWalk(c, sheet, style, childCtx, false)
	}
}

// contentBoxWidth returns a style's content-box width (its resolved
// Width minus horizontal padding and border), and false if Width is
// unresolved (Auto/Undefined), in which case the caller keeps using its
// own incoming Containing value rather than propagating NaN downward.
func contentBoxWidth(s *styles.Style) (float32, bool) {
	w := s.Width()
	if w != w { // NaN: Auto/Undefined
		return 0, false
	}
	_, paddingRight, _, paddingLeft := s.Padding()
	_, borderRight, _, borderLeft := s.BorderWidth()
	return w - paddingLeft - paddingRight - borderLeft - borderRight, true
}
