// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// Continue and Break are the two values a walk callback returns: Continue
// keeps the traversal going, Break stops it (and, for WalkDown, skips the
// current node's children).
const (
	Continue = true
	Break    = false
)

// WalkDown calls fn on n and then, as long as fn keeps returning
// Continue, recursively on each child in order. Returning Break from fn
// for a node skips that node's children and moves on to its siblings.
func (n *NodeBase) WalkDown(fn func(Node) bool) {
	if !fn(n.This) {
		return
	}
	for _, c := range n.Children {
		c.AsTree().WalkDown(fn)
	}
}

// WalkDownPost calls enter on n; if enter returns Continue, it recurses
// into each child, then calls exit on n regardless. This is the shape
// the paint pass uses: enter pushes clip state, exit pops it after
// children have painted.
func (n *NodeBase) WalkDownPost(enter, exit func(Node) bool) {
	if enter(n.This) {
		for _, c := range n.Children {
			c.AsTree().WalkDownPost(enter, exit)
		}
	}
	exit(n.This)
}

// WalkUp calls fn on n and then, as long as fn returns Continue, on each
// ancestor up to the root.
func (n *NodeBase) WalkUp(fn func(Node) bool) {
	cur := n.This
	for cur != nil {
		if !fn(cur) {
			return
		}
		cur = cur.AsTree().Parent
	}
}

// WalkUpParent is WalkUp starting at this node's parent, skipping n
// itself; used by focus navigation to ask "does some ancestor want this
// event" without the ancestor also seeing itself redundantly.
func (n *NodeBase) WalkUpParent(fn func(Node) bool) {
	if n.Parent == nil {
		return
	}
	n.Parent.AsTree().WalkUp(fn)
}

// WalkDownBreadth visits n and its descendants in breadth-first order.
// Returning Break from fn stops the entire traversal (not just the
// current node's subtree), since breadth-first has no well-defined
// "skip this subtree" semantics once siblings of other subtrees are
// already queued.
func (n *NodeBase) WalkDownBreadth(fn func(Node) bool) {
	queue := []Node{n.This}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !fn(cur) {
			return
		}
		queue = append(queue, cur.AsTree().Children...)
	}
}

// Next returns the node that follows n in a depth-first, pre-order
// traversal of the whole tree (descending into children first, then
// moving to the next sibling, then up to the parent's next sibling),
// or nil if n is the last node. Used for forward tab-order traversal.
func Next(n Node) Node {
	nb := n.AsTree()
	if len(nb.Children) > 0 {
		return nb.Children[0]
	}
	return nextSibling(n)
}

func nextSibling(n Node) Node {
	nb := n.AsTree()
	if nb.Parent == nil {
		return nil
	}
	idx := nb.IndexInParent()
	siblings := nb.Parent.AsTree().Children
	if idx+1 < len(siblings) {
		return siblings[idx+1]
	}
	return nextSibling(nb.Parent)
}

// Previous returns the node preceding n in the same traversal order
// Next uses, or nil if n is the first (root) node.
func Previous(n Node) Node {
	nb := n.AsTree()
	if nb.Parent == nil {
		return nil
	}
	idx := nb.IndexInParent()
	siblings := nb.Parent.AsTree().Children
	if idx == 0 {
		return nb.Parent
	}
	return Last(siblings[idx-1])
}

// Last returns the last node in n's subtree under pre-order traversal:
// n itself if it has no children, else the last descendant of its last
// child.
func Last(n Node) Node {
	nb := n.AsTree()
	for len(nb.Children) > 0 {
		n = nb.Children[len(nb.Children)-1]
		nb = n.AsTree()
	}
	return n
}
