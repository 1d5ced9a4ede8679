// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glimmerui/glimmer/geom"
	. "github.com/glimmerui/glimmer/layout"
	"github.com/glimmerui/glimmer/styles"
	"github.com/glimmerui/glimmer/units"
)

// testNode is a minimal Node, the way layout_test stands in for the real
// widget tree without depending on core.
type testNode struct {
	style    *styles.Style
	children []Node
	rect     geom.RectangleOf[float32]
}

func newTestNode(parent *testNode) *testNode {
	n := &testNode{style: styles.NewStyle()}
	if parent != nil {
		n.style.Parent = parent.style
		parent.children = append(parent.children, n)
	}
	return n
}

func (n *testNode) Style() *styles.Style    { return n.style }
func (n *testNode) LayoutChildren() []Node  { return n.children }
func (n *testNode) Measure(AvailableSize) (geom.SizeOf[float32], bool) {
	return geom.SizeOf[float32]{}, false
}
func (n *testNode) SetLayoutRect(rect geom.RectangleOf[float32]) { n.rect = rect }

func TestCalculateLayoutRowGrowDistributesLeftover(t *testing.T) {
	root := newTestNode(nil)
	root.style.SetWidth(units.Px(300))
	root.style.SetHeight(units.Px(100))
	root.style.SetFlexDirection(styles.Row)

	a := newTestNode(root)
	a.style.SetFlexGrow(1)
	b := newTestNode(root)
	b.style.SetFlexGrow(2)

	CalculateLayout(root, AvailableSize{Width: Exact(300), Height: Exact(100)})

	assert.InDelta(t, 100, a.rect.Width(), 0.01)
	assert.InDelta(t, 200, b.rect.Width(), 0.01)
	assert.InDelta(t, 0, a.rect.Min.X, 0.01)
	assert.InDelta(t, 100, b.rect.Min.X, 0.01)
}

func TestCalculateLayoutJustifyCenter(t *testing.T) {
	root := newTestNode(nil)
	root.style.SetWidth(units.Px(200))
	root.style.SetHeight(units.Px(100))
	root.style.SetFlexDirection(styles.Row)
	root.style.SetJustify(styles.JustifyCenter)

	a := newTestNode(root)
	a.style.SetWidth(units.Px(50))
	a.style.SetHeight(units.Px(20))

	CalculateLayout(root, AvailableSize{Width: Exact(200), Height: Exact(100)})

	assert.InDelta(t, 75, a.rect.Min.X, 0.01)
}

func TestCalculateLayoutAlignItemsStretch(t *testing.T) {
	root := newTestNode(nil)
	root.style.SetWidth(units.Px(100))
	root.style.SetHeight(units.Px(80))
	root.style.SetFlexDirection(styles.Row)
	root.style.SetAlignItems(styles.AlignStretch)

	a := newTestNode(root)
	a.style.SetWidth(units.Px(50))

	CalculateLayout(root, AvailableSize{Width: Exact(100), Height: Exact(80)})

	assert.InDelta(t, 80, a.rect.Height(), 0.01)
}

func TestCalculateLayoutMarginOffsetsPosition(t *testing.T) {
	root := newTestNode(nil)
	root.style.SetWidth(units.Px(200))
	root.style.SetHeight(units.Px(100))
	root.style.SetFlexDirection(styles.Column)

	a := newTestNode(root)
	a.style.SetHeight(units.Px(10))
	a.style.SetMarginTop(units.Px(5))

	CalculateLayout(root, AvailableSize{Width: Exact(200), Height: Exact(100)})

	assert.InDelta(t, 5, a.rect.Min.Y, 0.01)
}

func TestCalculateLayoutAbsoluteIgnoresFlow(t *testing.T) {
	root := newTestNode(nil)
	root.style.SetWidth(units.Px(200))
	root.style.SetHeight(units.Px(100))

	a := newTestNode(root)
	a.style.SetPositionType(styles.PositionAbsolute)
	a.style.SetWidth(units.Px(40))
	a.style.SetHeight(units.Px(40))

	b := newTestNode(root)
	b.style.SetWidth(units.Px(30))
	b.style.SetHeight(units.Px(30))

	CalculateLayout(root, AvailableSize{Width: Exact(200), Height: Exact(100)})

	// b must lay out as if a were not a flow participant at all.
	assert.InDelta(t, 0, b.rect.Min.X, 0.01)
}
