// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core drives the widget tree's per-frame phases — Rebuild,
// Styling, Layout, Geometry & hit-test, Animation, and Paint — on top of
// the tree, styles, layout, and input packages. WidgetBase is the struct
// every concrete widget embeds to take part in them.
package core

import (
	"github.com/glimmerui/glimmer/abilities"
	"github.com/glimmerui/glimmer/canvas"
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/input"
	"github.com/glimmerui/glimmer/layout"
	"github.com/glimmerui/glimmer/styles"
	"github.com/glimmerui/glimmer/tree"
)

// restyleState tracks whether a subtree needs a Styling pass, propagated
// up to the root so the Styling phase can start at the deepest dirty
// subtree instead of always re-walking the whole tree.
type restyleState uint8

const (
	restyleClean restyleState = iota
	restyleChildNeeds
	restyleNeeds
)

// WidgetBase is the struct every concrete widget embeds. It supplies the
// method sets [tree.Node], [input.Widget], [layout.Node], and
// [styles.Matchable] need, leaving only content-specific building and
// painting to the embedder.
type WidgetBase struct {
	tree.NodeBase

	kind    string
	role    string
	id      string
	classes map[string]bool

	style *styles.Style
	state styles.WidgetState

	builders []Builder
	rebuild  restyleState

	restyle restyleState

	rect geom.RectangleOf[float32]

	measure func(available layout.AvailableSize) (geom.SizeOf[float32], bool)
	painter styles.Painter

	handler func(ev *input.Event)

	mouseTransparent bool
	inTabGroup       bool
	anywhere         bool
	autofocus        bool

	abilities abilities.Abilities
}

// Init marks a freshly constructed widget as needing both a Rebuild and a
// Styling pass the next time its tree runs a frame; a concrete widget's
// constructor calls this once after attaching it to its parent; without
// it a new widget stays blank (no children built, default style only)
// until something else marks it dirty.
func (w *WidgetBase) Init() {
	w.RequestRebuild()
	w.RequestRestyle()
}

// Style returns the widget's style, allocating a default one (see
// [styles.NewStyle]) on first use.
func (w *WidgetBase) Style() *styles.Style {
	if w.style == nil {
		w.style = styles.NewStyle()
	}
	return w.style
}

// SetKind sets the widget's tag-like type name, consulted by OfType
// selectors.
func (w *WidgetBase) SetKind(kind string) *WidgetBase { w.kind = kind; return w }

// Type implements [styles.Matchable].
func (w *WidgetBase) Type() string { return w.kind }

// SetRole sets the widget's accessibility role, consulted by OfRole
// selectors.
func (w *WidgetBase) SetRole(role string) *WidgetBase { w.role = role; return w }

// Role implements [styles.Matchable].
func (w *WidgetBase) Role() string { return w.role }

// SetID sets the widget's unique id, consulted by OfID selectors.
func (w *WidgetBase) SetID(id string) *WidgetBase { w.id = id; return w }

// ID implements [styles.Matchable].
func (w *WidgetBase) ID() string { return w.id }

// AddClass adds name to the widget's class set.
func (w *WidgetBase) AddClass(name string) *WidgetBase {
	if w.classes == nil {
		w.classes = make(map[string]bool)
	}
	w.classes[name] = true
	return w
}

// RemoveClass removes name from the widget's class set.
func (w *WidgetBase) RemoveClass(name string) { delete(w.classes, name) }

// HasClass implements [styles.Matchable].
func (w *WidgetBase) HasClass(name string) bool { return w.classes[name] }

// State returns the widget's current interaction state.
func (w *WidgetBase) State() styles.WidgetState { return w.state }

// SetState replaces the widget's interaction state and, if it changed,
// requests a Styling pass: state-scoped rules (":hover", ":pressed", …)
// may now apply differently.
func (w *WidgetBase) SetState(s styles.WidgetState) {
	if s == w.state {
		return
	}
	w.state = s
	w.RequestRestyle()
}

// Parent implements [styles.Matchable], reporting the nearest ancestor
// that is itself Matchable (every widget ancestor is; only a detached
// root's nil parent is not).
func (w *WidgetBase) Parent() (styles.Matchable, bool) {
	p := w.NodeBase.Parent
	if p == nil {
		return nil, false
	}
	m, ok := p.(styles.Matchable)
	return m, ok
}

// IndexInParent implements [styles.Matchable], shadowing the plain-int
// [tree.NodeBase.IndexInParent] promoted from the embedded field (still
// reachable as w.NodeBase.IndexInParent() by code that wants just the
// index).
func (w *WidgetBase) IndexInParent() (index, count int, ok bool) {
	if w.NodeBase.Parent == nil {
		return 0, 0, false
	}
	return w.NodeBase.IndexInParent(), len(w.NodeBase.Parent.AsTree().Children), true
}

// LayoutChildren implements [layout.Node], filtering to children that
// are themselves laid out (every widget child whose Display is not
// [styles.DisplayNone] qualifies; a non-widget tree.Node child, if one
// ever existed, would be skipped).
func (w *WidgetBase) LayoutChildren() []layout.Node {
	children := w.NodeBase.Children
	out := make([]layout.Node, 0, len(children))
	for _, c := range children {
		if n, ok := c.(layout.Node); ok && n.Style().Display() != styles.DisplayNone {
			out = append(out, n)
		}
	}
	return out
}

// Measure implements [layout.Node]; SetMeasure installs the content's
// intrinsic-sizing callback (text, images, and other leaf content), left
// unset (no self-measurement) for plain containers.
func (w *WidgetBase) Measure(available layout.AvailableSize) (geom.SizeOf[float32], bool) {
	if w.measure == nil {
		return geom.SizeOf[float32]{}, false
	}
	return w.measure(available)
}

// SetMeasure installs the widget's intrinsic content-sizing callback.
func (w *WidgetBase) SetMeasure(fn func(available layout.AvailableSize) (geom.SizeOf[float32], bool)) {
	w.measure = fn
}

// SetLayoutRect implements [layout.Node], recording this frame's computed
// rectangle relative to the parent's border-box origin.
func (w *WidgetBase) SetLayoutRect(rect geom.RectangleOf[float32]) { w.rect = rect }

// Rect returns the widget's most recently computed layout rectangle.
func (w *WidgetBase) Rect() geom.RectangleOf[float32] { return w.rect }

// SetHandler installs the widget's event handler, called by HandleEvent.
func (w *WidgetBase) SetHandler(fn func(ev *input.Event)) { w.handler = fn }

// HandleEvent implements [input.Widget].
func (w *WidgetBase) HandleEvent(ev *input.Event) {
	if w.handler != nil {
		w.handler(ev)
	}
}

// SetPainter installs a custom [styles.Painter], overriding the default
// [styles.BoxPainter] used when none is set.
func (w *WidgetBase) SetPainter(p styles.Painter) { w.painter = p }

// SetMouseTransparent marks the widget as never hit-tested (events pass
// through to whatever is beneath it).
func (w *WidgetBase) SetMouseTransparent(v bool) { w.mouseTransparent = v }

// SetInTabGroup marks the widget as a Tab/Shift-Tab stop.
func (w *WidgetBase) SetInTabGroup(v bool) { w.inTabGroup = v }

// SetAnywhere marks the widget as accepting hits anywhere on screen
// (modal scrims, full-window drag targets), ignoring its rectangle.
func (w *WidgetBase) SetAnywhere(v bool) { w.anywhere = v }

// Abilities returns the widget's ability bitmask, consulted by the input
// package wherever a widget can opt out of behavior it would otherwise
// get by default (e.g. double-click detection without Abilities.DoubleClickable).
func (w *WidgetBase) Abilities() abilities.Abilities { return w.abilities }

// SetAbilities replaces the widget's ability bitmask.
func (w *WidgetBase) SetAbilities(a abilities.Abilities) *WidgetBase {
	w.abilities = a
	return w
}

// SetAutofocus marks the widget as the focus target an enclosing
// focus-capture scope should resolve to, absent a more specific request.
func (w *WidgetBase) SetAutofocus(v bool) { w.autofocus = v }

// paintSelf paints this widget's own box (not its children) at rect — the
// widget's absolute, screen-space rectangle for this frame, not the
// parent-relative one [layout.CalculateLayout] stores in w.rect — using
// its custom Painter if one was set, else [styles.BoxPainter].
func (w *WidgetBase) paintSelf(cv *canvas.Canvas, rect geom.RectangleOf[float32]) {
	p := w.painter
	if p == nil {
		p = styles.BoxPainter
	}
	p(cv, w.Style(), rect)
}

// widgetNode is what the Rebuild/Styling/Layout/Geometry/Paint phase
// drivers need from a tree.Node, beyond styles.Matchable/layout.Node
// themselves: every concrete widget gets these for free by embedding
// WidgetBase, so phase code can type-assert a plain tree.Node to this
// interface instead of requiring a concrete *WidgetBase.
type widgetNode interface {
	tree.Node
	input.Widget
	layout.Node
	styles.Matchable

	restyleMark() *restyleState
	rebuildMark() *restyleState
	builderList() *[]Builder
	paintSelf(cv *canvas.Canvas, rect geom.RectangleOf[float32])
	hitEntry() (mouseTransparent, inTabGroup, anywhere bool)
	Rect() geom.RectangleOf[float32]
}

func (w *WidgetBase) restyleMark() *restyleState { return &w.restyle }
func (w *WidgetBase) rebuildMark() *restyleState { return &w.rebuild }
func (w *WidgetBase) builderList() *[]Builder    { return &w.builders }
func (w *WidgetBase) hitEntry() (mouseTransparent, inTabGroup, anywhere bool) {
	return w.mouseTransparent, w.inTabGroup, w.anywhere
}

// asWidgetNode type-asserts a tree.Node to widgetNode, returning false for
// a non-widget node (none exist today, but phase code stays defensive
// since Children is typed as plain tree.Node).
func asWidgetNode(n tree.Node) (widgetNode, bool) {
	wn, ok := n.(widgetNode)
	return wn, ok
}
