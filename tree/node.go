// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree implements the generic parent/child graph that the widget
// tree, the styling pass, and layout traversal are all built on: every
// widget embeds a [NodeBase], which tracks its parent, its children in
// paint order, and a property bag used by the style and devtools layers.
package tree

import (
	"fmt"
	"strings"
)

// Node is the interface satisfied by every tree element. Widgets embed
// [NodeBase] and satisfy it automatically; AsTree is the seam that lets
// generic tree code operate on the embedded base without knowing the
// concrete widget type.
type Node interface {
	// AsTree returns the [NodeBase] embedded in this node.
	AsTree() *NodeBase
}

// NodeBase is the struct embedded by every node in the tree. Fields are
// exported because styling, devtools, and layout code all need direct
// access to them; nothing here is safe for concurrent use without
// external synchronization, matching the rest of the UI-thread-only tree.
type NodeBase struct {
	// Name is the node's name, unique among its siblings. Unset, it
	// defaults to a type-derived placeholder the first time it matters
	// (path computation, child lookup by name).
	Name string

	// Parent is this node's parent, or nil for a root.
	Parent Node

	// Children are this node's children, in paint/traversal order.
	Children []Node

	// This holds the concrete node value (e.g. the embedding *Button),
	// so generic NodeBase code can call back into overridden behavior.
	// Set by [New] and [NewRoot]; a NodeBase constructed by hand (as in
	// tests) must call [NodeBase.SetThis] itself.
	This Node

	// properties is an open bag of named values consulted by the style
	// system and devtools; most widgets never touch it directly.
	properties map[string]any

	onChildAdded []func(n Node)
}

// AsTree implements [Node].
func (n *NodeBase) AsTree() *NodeBase { return n }

// SetThis records this as the concrete node value returned by future
// AsTree-independent lookups that need the overridden type (for example,
// a Widget method set). Called by [New] and [NewRoot]; code building a
// NodeBase directly must call it once after construction.
func (n *NodeBase) SetThis(this Node) *NodeBase {
	n.This = this
	return n
}

// New creates a node of type T, optionally as a child of parent, and
// records it as its own This. With no parent it is a root, detached
// until something calls AddChild on it.
func New[T Node](parent ...Node) T {
	n := newOf[T]()
	n.AsTree().SetThis(any(n).(Node))
	if len(parent) > 0 && parent[0] != nil {
		parent[0].AsTree().AddChild(n)
	}
	return n
}

// NewRoot creates a root node of type T with the given name (or a
// default name if omitted), detached from any parent.
func NewRoot[T Node](name ...string) T {
	n := New[T]()
	if len(name) > 0 {
		n.AsTree().SetName(name[0])
	}
	return n
}

// SetName sets the node's name and returns the node so calls can chain,
// matching the rest of the builder-style API.
func (n *NodeBase) SetName(name string) *NodeBase {
	n.Name = name
	return n
}

// escapeName escapes path separators and the escape character itself so
// Path/FindPath round-trip names containing '/' or '.'.
func escapeName(name string) string {
	r := strings.NewReplacer(`\`, `\\`, `/`, `\,`)
	return r.Replace(name)
}

func unescapeName(name string) string {
	r := strings.NewReplacer(`\,`, `/`, `\\`, `\`)
	return r.Replace(name)
}

// Path returns the slash-separated path from the root to this node,
// with each name escaped so embedded slashes are unambiguous.
func (n *NodeBase) Path() string {
	if n.Parent == nil {
		return "/" + escapeName(n.Name)
	}
	return n.Parent.AsTree().Path() + "/" + escapeName(n.Name)
}

// PathFrom returns this node's path relative to ancestor, without a
// leading slash. If ancestor is not actually an ancestor, PathFrom
// returns the same as Path (with the leading slash trimmed).
func (n *NodeBase) PathFrom(ancestor Node) string {
	var parts []string
	cur := Node(n)
	for cur != nil && cur != ancestor {
		parts = append([]string{escapeName(cur.AsTree().Name)}, parts...)
		cur = cur.AsTree().Parent
	}
	return strings.Join(parts, "/")
}

// FindPath locates a descendant by the path returned from [NodeBase.Path]
// or [NodeBase.PathFrom], relative to this node. It returns nil if no
// such descendant exists.
func (n *NodeBase) FindPath(path string) Node {
	path = strings.TrimPrefix(path, n.Path())
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return n.This
	}
	cur := n.This
	for _, seg := range splitPath(path) {
		nm := unescapeName(seg)
		child := cur.AsTree().ChildByName(nm)
		if child == nil {
			return nil
		}
		cur = child
	}
	return cur
}

// splitPath splits an escaped path into its name segments, honoring the
// escape character so an escaped slash doesn't split a name in two.
func splitPath(path string) []string {
	var segs []string
	var cur strings.Builder
	esc := false
	for _, r := range path {
		switch {
		case esc:
			cur.WriteRune(r)
			esc = false
		case r == '\\':
			cur.WriteRune(r)
			esc = true
		case r == '/':
			segs = append(segs, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	segs = append(segs, cur.String())
	return segs
}

// NumChildren returns the number of direct children.
func (n *NodeBase) NumChildren() int { return len(n.Children) }

// HasChildren reports whether the node has any children.
func (n *NodeBase) HasChildren() bool { return len(n.Children) > 0 }

// Child returns the child at index i, or nil if out of range.
func (n *NodeBase) Child(i int) Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// IndexInParent returns this node's index among its parent's children,
// or -1 if it has no parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	for i, c := range n.Parent.AsTree().Children {
		if c == n.This {
			return i
		}
	}
	return -1
}

// ChildByName returns the first child (starting the scan at startIndex,
// wrapping around) whose Name matches name, or nil.
func (n *NodeBase) ChildByName(name string, startIndex ...int) Node {
	nk := len(n.Children)
	if nk == 0 {
		return nil
	}
	start := 0
	if len(startIndex) > 0 {
		start = startIndex[0]
	}
	if start < 0 || start >= nk {
		start = 0
	}
	for i := 0; i < nk; i++ {
		idx := (start + i) % nk
		if n.Children[idx].AsTree().Name == name {
			return n.Children[idx]
		}
	}
	return nil
}

// AddChild appends child to this node's children, setting its Parent.
// If child has no name, it is given a default one derived from its
// position.
func (n *NodeBase) AddChild(child Node) {
	n.InsertChild(child, len(n.Children))
}

// InsertChild inserts child at index at, setting its Parent.
func (n *NodeBase) InsertChild(child Node, at int) {
	cb := child.AsTree()
	cb.Parent = n.This
	if cb.Name == "" {
		cb.Name = defaultChildName(n, child)
	}
	if at < 0 {
		at = 0
	}
	if at > len(n.Children) {
		at = len(n.Children)
	}
	n.Children = append(n.Children, nil)
	copy(n.Children[at+1:], n.Children[at:])
	n.Children[at] = child
	for _, f := range n.onChildAdded {
		f(child)
	}
	if n.Parent != nil {
		// bubble the notification up so ancestors watching for additions
		// anywhere in their subtree (e.g. Scene root) also see it.
		n.Parent.AsTree().notifyChildAdded(child)
	}
}

func (n *NodeBase) notifyChildAdded(child Node) {
	for _, f := range n.onChildAdded {
		f(child)
	}
	if n.Parent != nil {
		n.Parent.AsTree().notifyChildAdded(child)
	}
}

// InsertNewChild inserts an already-constructed child at index at,
// equivalent to InsertChild; it exists as a distinct name to mirror
// callers that think in terms of "new child at position" rather than
// "move/insert an existing one".
func (n *NodeBase) InsertNewChild(child Node, at int) Node {
	n.InsertChild(child, at)
	return child
}

// SetOnChildAdded registers f to be called whenever a descendant (direct
// or indirect) is added under this node.
func (n *NodeBase) SetOnChildAdded(f func(n Node)) {
	n.onChildAdded = append(n.onChildAdded, f)
}

func defaultChildName(parent *NodeBase, child Node) string {
	return fmt.Sprintf("%T-%d", child, len(parent.Children)) // #nosec G104 -- cosmetic only
}

// DeleteChildAt removes and returns the child at index i, or nil if out
// of range.
func (n *NodeBase) DeleteChildAt(i int) Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	child := n.Children[i]
	n.Children = append(n.Children[:i], n.Children[i+1:]...)
	child.AsTree().Parent = nil
	return child
}

// DeleteChild removes child from this node's children, if present.
func (n *NodeBase) DeleteChild(child Node) {
	for i, c := range n.Children {
		if c == child {
			n.DeleteChildAt(i)
			return
		}
	}
}

// DeleteChildByName removes the first child named name, if present.
func (n *NodeBase) DeleteChildByName(name string) {
	if c := n.ChildByName(name); c != nil {
		n.DeleteChild(c)
	}
}

// DeleteChildren removes all children.
func (n *NodeBase) DeleteChildren() {
	for _, c := range n.Children {
		c.AsTree().Parent = nil
	}
	n.Children = nil
}

// Delete removes this node from its parent, if it has one; a no-op on
// a root.
func (n *NodeBase) Delete() {
	if n.Parent == nil {
		return
	}
	n.Parent.AsTree().DeleteChild(n.This)
}

// Move repositions the child currently at index from to index to,
// shifting the intervening children, matching the reordering the layout
// pass needs when z-order or tab order changes without a full rebuild.
func (n *NodeBase) Move(from, to int) {
	nk := len(n.Children)
	if from < 0 || from >= nk || to < 0 || to >= nk || from == to {
		return
	}
	c := n.Children[from]
	n.Children = append(n.Children[:from], n.Children[from+1:]...)
	n.Children = append(n.Children[:to], append([]Node{c}, n.Children[to:]...)...)
}

// Property returns a value previously set with SetProperty, or nil.
func (n *NodeBase) Property(key string) any {
	if n.properties == nil {
		return nil
	}
	return n.properties[key]
}

// SetProperty sets a named property on this node, for consumption by the
// style system's property-based rules or by devtools.
func (n *NodeBase) SetProperty(key string, value any) *NodeBase {
	if n.properties == nil {
		n.properties = make(map[string]any)
	}
	n.properties[key] = value
	return n
}

// DeleteProperty removes a named property.
func (n *NodeBase) DeleteProperty(key string) {
	delete(n.properties, key)
}

// Properties returns the node's property bag directly; callers must not
// retain it across a DeleteProperty/SetProperty call without re-reading.
func (n *NodeBase) Properties() map[string]any {
	return n.properties
}

// ParentLevel returns how many steps up the parent chain ancestor is
// found, or -1 if it is not an ancestor of this node.
func (n *NodeBase) ParentLevel(ancestor Node) int {
	level := 0
	cur := n.Parent
	for cur != nil {
		if cur == ancestor {
			return level
		}
		level++
		cur = cur.AsTree().Parent
	}
	return -1
}

// String returns the node's path, the same representation the teacher's
// Stringer used for tree debugging and test failure messages.
func (n *NodeBase) String() string {
	return n.Path()
}

// Clone returns a deep copy of this node and its subtree, detached from
// any parent. The copy's concrete type matches the original's via This.
func (n *NodeBase) Clone() Node {
	clone := shallowCopy(n.This)
	cb := clone.AsTree()
	cb.Parent = nil
	cb.Children = nil
	cb.onChildAdded = nil
	cb.SetThis(clone)
	if n.properties != nil {
		cb.properties = make(map[string]any, len(n.properties))
		for k, v := range n.properties {
			cb.properties[k] = v
		}
	}
	for _, c := range n.Children {
		cb.AddChild(c.AsTree().Clone())
	}
	return clone
}

// CopyFrom copies src's exported NodeBase state (name and properties,
// not parent/children/identity) onto n, the way a widget's CopyFieldsFrom
// uses it to clone style-relevant state without re-parenting.
func (n *NodeBase) CopyFrom(src Node) {
	sb := src.AsTree()
	n.Name = sb.Name
	if sb.properties != nil {
		n.properties = make(map[string]any, len(sb.properties))
		for k, v := range sb.properties {
			n.properties[k] = v
		}
	}
}

