// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "github.com/glimmerui/glimmer/base/plan"

// PlanItem describes one target child for a Rebuild reconciliation: a
// name unique among siblings, and a constructor called only when no
// existing child with that name can be reused.
type PlanItem struct {
	Name string
	New  func() Node
}

// planNode adapts a Node to [plan.Namer] so [plan.Build] can operate on
// NodeBase.Children directly.
type planNode struct{ n Node }

func (p planNode) PlanName() string { return p.n.AsTree().Name }

// BuildChildren reconciles n's children against items: children whose
// name still appears in items are kept (and reordered if needed);
// children whose name no longer appears are detached; names present in
// items with no existing match are constructed fresh via New. This is
// what the widget tree's Rebuild phase runs every Builder's output
// through, rather than tearing down and rebuilding the whole subtree on
// every rebuild request. It returns whether anything changed.
func (n *NodeBase) BuildChildren(items []PlanItem) bool {
	wrapped := make([]planNode, len(n.Children))
	for i, c := range n.Children {
		wrapped[i] = planNode{c}
	}

	var added []Node
	r, mods := plan.Build(wrapped, len(items),
		func(i int) string { return items[i].Name },
		func(name string, i int) planNode {
			child := items[i].New()
			child.AsTree().SetName(name)
			added = append(added, child)
			return planNode{child}
		},
		func(e planNode) { e.n.AsTree().Parent = nil },
	)

	children := make([]Node, len(r))
	for i, w := range r {
		children[i] = w.n
		w.n.AsTree().Parent = n.This
	}
	n.Children = children
	for _, child := range added {
		n.notifyChildAdded(child)
	}
	return mods
}
