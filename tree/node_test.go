// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/glimmerui/glimmer/tree"
)

// widget is a stand-in embedder, the way a real Widget embeds NodeBase,
// used to exercise the tree package without depending on core.
type widget struct {
	NodeBase
	Label string
}

func TestAddChild(t *testing.T) {
	parent := NewRoot[*NodeBase]("par")
	child := New[*NodeBase]()
	parent.AddChild(child)
	child.SetName("child1")
	assert.Len(t, parent.Children, 1)
	assert.Equal(t, Node(parent), child.Parent)
	assert.Equal(t, "/par/child1", child.Path())
}

func TestEmbedAddChild(t *testing.T) {
	parent := NewRoot[*widget]("par")
	child := New[*widget](parent)
	child.SetName("child1")
	assert.Len(t, parent.Children, 1)
	assert.Equal(t, Node(parent), child.Parent)
	assert.Equal(t, "/par/child1", child.Path())
}

func TestPath(t *testing.T) {
	parent := NewRoot[*widget]("par")
	child1 := New[*widget](parent)
	child1.SetName("child1")
	child2 := New[*widget](parent)
	child2.SetName("child2")
	assert.Len(t, parent.Children, 2)
	assert.Equal(t, "/par/child1", child1.Path())
	assert.Equal(t, "/par/child2", child2.Path())
}

func TestEscapedPaths(t *testing.T) {
	parent := NewRoot[*widget]("par")
	child := New[*widget](parent)
	child.SetName("child.go")
	child2 := New[*widget](parent)
	child2.SetName("child/sub")

	assert.Equal(t, `/par/child.go`, child.Path())
	assert.Equal(t, `/par/child\,sub`, child2.Path())

	assert.Equal(t, Node(child), parent.FindPath(child.Path()))
	assert.Equal(t, Node(child2), parent.FindPath(child2.Path()))
}

func TestPathFrom(t *testing.T) {
	a := NewRoot[*NodeBase]("a")
	b := New[*NodeBase](a)
	b.SetName("b")
	c := New[*NodeBase](b)
	c.SetName("c")
	d := New[*NodeBase](c)
	d.SetName("d")

	assert.Equal(t, "c/d", d.PathFrom(b))
}

func TestDeleteChild(t *testing.T) {
	parent := NewRoot[*widget]("par")
	child := New[*widget](parent)
	child.SetName("child1")
	parent.DeleteChild(child)
	assert.Zero(t, len(parent.Children))
	assert.Nil(t, child.Parent)
}

func TestDeleteChildByName(t *testing.T) {
	parent := NewRoot[*widget]("par")
	child := New[*widget](parent)
	child.SetName("child1")
	parent.DeleteChildByName("child1")
	assert.Zero(t, len(parent.Children))
}

func TestChildByName(t *testing.T) {
	parent := NewRoot[*widget]("par")
	names := []string{"name0", "name1", "name2", "name3"}
	for _, nm := range names {
		c := New[*widget](parent)
		c.SetName(nm)
	}
	for i, nm := range names {
		found := parent.ChildByName(nm)
		assert.Equal(t, i, found.AsTree().IndexInParent())
	}
	assert.Nil(t, parent.ChildByName("missing"))
}

func TestMove(t *testing.T) {
	parent := NewRoot[*widget]("par")
	for _, nm := range []string{"child0", "child1", "child2", "child3"} {
		c := New[*widget](parent)
		c.SetName(nm)
	}

	names := func() []string {
		ns := make([]string, len(parent.Children))
		for i, c := range parent.Children {
			ns[i] = c.AsTree().Name
		}
		return ns
	}

	assert.Equal(t, []string{"child0", "child1", "child2", "child3"}, names())
	parent.Move(3, 1)
	assert.Equal(t, []string{"child0", "child3", "child1", "child2"}, names())
	parent.Move(0, 3)
	assert.Equal(t, []string{"child3", "child1", "child2", "child0"}, names())
}

func TestProperties(t *testing.T) {
	n := New[*widget]()
	n.SetName("node")

	n.SetProperty("intprop", 42)
	assert.Equal(t, 42, n.Property("intprop"))

	n.SetProperty("stringprop", "test string")
	assert.Equal(t, "test string", n.Property("stringprop"))

	n.DeleteProperty("stringprop")
	assert.Nil(t, n.Property("stringprop"))
	assert.Nil(t, n.Property("neverset"))

	assert.Equal(t, map[string]any{"intprop": 42}, n.Properties())
}

func TestIndexInParent(t *testing.T) {
	parent := NewRoot[*widget]("par")
	var last *widget
	for i := 0; i < 5; i++ {
		last = New[*widget](parent)
		last.SetName(fmt.Sprintf("child%d", i))
	}
	assert.Equal(t, 4, last.IndexInParent())
	assert.Equal(t, -1, parent.IndexInParent())
}

func TestParentLevel(t *testing.T) {
	a := NewRoot[*NodeBase]("a")
	b := New[*NodeBase](a)
	c := New[*NodeBase](b)
	assert.Equal(t, 0, c.ParentLevel(b))
	assert.Equal(t, 1, c.ParentLevel(a))
	assert.Equal(t, -1, c.ParentLevel(New[*NodeBase]()))
}

func TestClone(t *testing.T) {
	parent := NewRoot[*widget]("par")
	parent.Label = "root label"
	parent.SetProperty("k", "v")
	child := New[*widget](parent)
	child.SetName("child1")
	child.Label = "child label"

	clone := parent.Clone().(*widget)
	assert.Nil(t, clone.Parent)
	assert.Equal(t, "root label", clone.Label)
	assert.Equal(t, "v", clone.Property("k"))
	if assert.Len(t, clone.Children, 1) {
		ch := clone.Children[0].(*widget)
		assert.Equal(t, "child label", ch.Label)
		assert.Equal(t, Node(clone), ch.Parent)
		assert.NotSame(t, child, ch)
	}
}

func TestCopyFrom(t *testing.T) {
	src := New[*widget]()
	src.SetName("src")
	src.SetProperty("k", "v")

	dst := New[*widget]()
	dst.AsTree().CopyFrom(src)
	assert.Equal(t, "src", dst.Name)
	assert.Equal(t, "v", dst.Property("k"))
}

func TestWalkDown(t *testing.T) {
	parent := NewRoot[*widget]("par1")
	New[*widget](parent).SetName("child1")
	child2 := New[*widget](parent)
	child2.SetName("child2")
	New[*widget](parent).SetName("child3")
	New[*widget](child2).SetName("subchild1")

	var res []string
	parent.WalkDown(func(n Node) bool {
		res = append(res, n.AsTree().Path())
		return Continue
	})
	assert.Equal(t, []string{
		"/par1", "/par1/child1", "/par1/child2",
		"/par1/child2/subchild1", "/par1/child3",
	}, res)
}

func TestWalkDownBreak(t *testing.T) {
	parent := NewRoot[*widget]("par1")
	New[*widget](parent).SetName("child1")
	child2 := New[*widget](parent)
	child2.SetName("child2")
	New[*widget](parent).SetName("child3")
	New[*widget](child2).SetName("subchild1")

	var res []string
	parent.WalkDown(func(n Node) bool {
		if n.AsTree().Name == "child2" {
			return Break
		}
		res = append(res, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"par1", "child1", "child3"}, res)
}

func TestWalkUp(t *testing.T) {
	parent := NewRoot[*widget]("par1")
	child := New[*widget](parent)
	child.SetName("child1")
	sub := New[*widget](child)
	sub.SetName("sub1")

	var res []string
	sub.WalkUp(func(n Node) bool {
		res = append(res, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"sub1", "child1", "par1"}, res)
}

func TestWalkDownBreadth(t *testing.T) {
	parent := NewRoot[*widget]("par1")
	child1 := New[*widget](parent)
	child1.SetName("child1")
	child2 := New[*widget](parent)
	child2.SetName("child2")
	New[*widget](child1).SetName("sub1")

	var res []string
	parent.WalkDownBreadth(func(n Node) bool {
		res = append(res, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"par1", "child1", "child2", "sub1"}, res)
}

func TestBuildChildren(t *testing.T) {
	parent := NewRoot[*widget]("par")
	existing := New[*widget](parent)
	existing.SetName("b")
	existing.Label = "keep me"

	mods := parent.BuildChildren([]PlanItem{
		{Name: "a", New: func() Node { return New[*widget]() }},
		{Name: "b", New: func() Node { return New[*widget]() }},
		{Name: "c", New: func() Node { return New[*widget]() }},
	})
	assert.True(t, mods)
	assert.Len(t, parent.Children, 3)
	names := []string{parent.Children[0].AsTree().Name, parent.Children[1].AsTree().Name, parent.Children[2].AsTree().Name}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Same(t, existing, parent.Children[1])
	assert.Equal(t, "keep me", parent.Children[1].(*widget).Label)

	mods = parent.BuildChildren([]PlanItem{
		{Name: "a", New: func() Node { return New[*widget]() }},
		{Name: "b", New: func() Node { return New[*widget]() }},
		{Name: "c", New: func() Node { return New[*widget]() }},
	})
	assert.False(t, mods)
}
