// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/glimmerui/glimmer/tree"
)

func buildTestTree() *widget {
	root := NewRoot[*widget]("root")
	New[*widget](root).SetName("child0")
	child1 := New[*widget](root)
	child1.SetName("child1")
	schild1 := New[*widget](child1)
	schild1.SetName("subchild1")
	New[*widget](schild1).SetName("subsubchild1")
	New[*widget](root).SetName("child2")
	New[*widget](root).SetName("child3")
	return root
}

func TestNext(t *testing.T) {
	root := buildTestTree()
	var res []string
	var cur Node = root
	for cur != nil {
		res = append(res, cur.AsTree().Path())
		cur = Next(cur)
	}
	assert.Equal(t, []string{
		"/root", "/root/child0", "/root/child1",
		"/root/child1/subchild1", "/root/child1/subchild1/subsubchild1",
		"/root/child2", "/root/child3",
	}, res)
}

func TestPrevious(t *testing.T) {
	root := buildTestTree()
	cur := Last(root)
	var res []string
	for cur != nil {
		res = append(res, cur.AsTree().Path())
		cur = Previous(cur)
	}
	assert.Equal(t, []string{
		"/root/child3", "/root/child2",
		"/root/child1/subchild1/subsubchild1", "/root/child1/subchild1",
		"/root/child1", "/root/child0", "/root",
	}, res)
}
