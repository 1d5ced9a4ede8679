// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "github.com/glimmerui/glimmer/tree"

// BuilderKind selects when a [Builder] runs during the Rebuild phase.
type BuilderKind uint8

const (
	// BuilderRegular builders run only when their widget's own rebuild was
	// explicitly requested (the common case: a widget's children depend
	// on state that changed).
	BuilderRegular BuilderKind = iota
	// BuilderDelayed builders re-run on every Rebuild pass that reaches
	// their widget, regardless of whether a rebuild was requested —
	// for children whose composition depends on something outside the
	// widget's own tracked state (window size, a live external value).
	BuilderDelayed
	// BuilderOnce builders run exactly once, the first Rebuild pass that
	// reaches their widget, and never again.
	BuilderOnce
)

// Builder is one callback contributing children to a widget's Rebuild
// pass; Fn returns the full target child list (by [tree.PlanItem]), which
// [tree.NodeBase.BuildChildren] reconciles against the existing children.
type Builder struct {
	Kind BuilderKind
	Fn   func() []tree.PlanItem

	ran bool
}

// AddBuilder appends a Builder to w's list, run in order during Rebuild.
func (w *WidgetBase) AddBuilder(kind BuilderKind, fn func() []tree.PlanItem) {
	w.builders = append(w.builders, Builder{Kind: kind, Fn: fn})
}

// RequestRebuild marks w as needing its Rebuild builders to run on the
// next Rebuild phase, and marks every ancestor as having a subtree that
// needs one, so the phase driver can skip clean subtrees entirely.
func (w *WidgetBase) RequestRebuild() {
	markDirty(w.rebuildMark(), restyleNeeds)
	walkAncestorsDirty(w.NodeBase.Parent, func(wn widgetNode) *restyleState { return wn.rebuildMark() })
}

func markDirty(mark *restyleState, state restyleState) {
	if *mark < state {
		*mark = state
	}
}

// walkAncestorsDirty marks every ancestor of a dirty node as
// restyleChildNeeds (unless already more dirty than that), stopping early
// once an ancestor is already marked, since everything above it must
// already be marked too.
func walkAncestorsDirty(start tree.Node, markOf func(widgetNode) *restyleState) {
	for n := start; n != nil; n = n.AsTree().Parent {
		wn, ok := asWidgetNode(n)
		if !ok {
			continue
		}
		mark := markOf(wn)
		if *mark != restyleClean {
			return
		}
		*mark = restyleChildNeeds
	}
}

// rebuild runs the Rebuild phase over root's subtree: each widget whose
// rebuild mark is set (directly, or because some descendant needs one)
// runs its due Builder callbacks in order and reconciles its children via
// BuildChildren.
func rebuild(root tree.Node) {
	wn, ok := asWidgetNode(root)
	if !ok {
		return
	}
	mark := wn.rebuildMark()
	if *mark == restyleClean {
		return
	}
	needsOwn := *mark == restyleNeeds
	*mark = restyleClean

	builders := wn.builderList()
	var items []tree.PlanItem
	ranAny := false
	for i := range *builders {
		b := &(*builders)[i]
		switch b.Kind {
		case BuilderDelayed:
			items = append(items, b.Fn()...)
			ranAny = true
		case BuilderOnce:
			if !b.ran {
				items = append(items, b.Fn()...)
				b.ran = true
				ranAny = true
			}
		default: // BuilderRegular
			if needsOwn {
				items = append(items, b.Fn()...)
				ranAny = true
			}
		}
	}
	if ranAny {
		wn.AsTree().BuildChildren(items)
	}

	for _, c := range wn.AsTree().Children {
		rebuild(c)
	}
}
