// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/glimmerui/glimmer/abilities"
	"github.com/glimmerui/glimmer/geom"
	. "github.com/glimmerui/glimmer/input"
	"github.com/glimmerui/glimmer/nptime"
	"github.com/glimmerui/glimmer/tree"
)

// testWidget records every event delivered to it and optionally stops
// propagation, so dispatch tests can assert both delivery and bubbling.
type testWidget struct {
	tree.NodeBase
	received []Event
	stop     bool
}

func (w *testWidget) HandleEvent(ev *Event) {
	w.received = append(w.received, *ev)
	if w.stop {
		ev.SetHandled()
	}
}

func newWidget(parent tree.Node, name string) *testWidget {
	var w *testWidget
	if parent != nil {
		w = tree.New[*testWidget](parent)
	} else {
		w = tree.NewRoot[*testWidget]()
	}
	w.SetName(name)
	return w
}

func at(x, y float32) geom.PointOf[float32] { return geom.Pt(x, y) }

func nowTime(t *testing.T) nptime.Time {
	var nt nptime.Time
	nt.SetTime(time.Now())
	return nt
}

func TestHandleMouseDeliversToTopmostAndBubbles(t *testing.T) {
	root := newWidget(nil, "root")
	child := newWidget(root, "child")

	var q Queue
	q.SetHitTest([]HitEntry{
		{Widget: root, Rect: geom.Rect[float32](0, 0, 100, 100), ZIndex: 0, Visible: true},
		{Widget: child, Rect: geom.Rect[float32](10, 10, 50, 50), ZIndex: 1, Visible: true},
	})

	ev := Event{Type: MouseMoved, WindowPos: at(20, 20), Time: nowTime(t)}
	q.HandleMouse(ev)

	// each widget sees the moved event itself (bubbled from child) plus a
	// MouseEntered once hover bookkeeping notices both are newly under
	// the cursor.
	if assert.Len(t, child.received, 2) {
		assert.Equal(t, MouseMoved, child.received[0].Type)
		assert.Equal(t, MouseEntered, child.received[1].Type)
	}
	if assert.Len(t, root.received, 2) {
		assert.Equal(t, MouseMoved, root.received[0].Type)
		assert.Equal(t, MouseEntered, root.received[1].Type)
	}
}

func TestHandleMouseRespectsStopPropagation(t *testing.T) {
	root := newWidget(nil, "root")
	child := newWidget(root, "child")
	child.stop = true

	var q Queue
	q.SetHitTest([]HitEntry{
		{Widget: root, Rect: geom.Rect[float32](0, 0, 100, 100), ZIndex: 0, Visible: true},
		{Widget: child, Rect: geom.Rect[float32](10, 10, 50, 50), ZIndex: 1, Visible: true},
	})

	// move into position first so hover bookkeeping is already settled and
	// the press itself is the only thing under test.
	q.HandleMouse(Event{Type: MouseMoved, WindowPos: at(20, 20), Time: nowTime(t)})
	childBefore, rootBefore := len(child.received), len(root.received)

	ev := Event{Type: ButtonPressed, Button: Left, WindowPos: at(20, 20), Time: nowTime(t)}
	q.HandleMouse(ev)

	assert.Len(t, child.received, childBefore+1)
	assert.Len(t, root.received, rootBefore)
}

func TestDoubleClickDetection(t *testing.T) {
	root := newWidget(nil, "root")

	var q Queue
	q.SetHitTest([]HitEntry{{Widget: root, Anywhere: true, Visible: true}})

	tm := nptime.Time{}
	tm.SetTime(time.Now())

	q.HandleMouse(Event{Type: ButtonPressed, Button: Left, WindowPos: at(5, 5), Time: tm})
	assert.Equal(t, ButtonPressed, root.received[0].Type)

	tm2 := tm
	tm2.NSec += int32(50 * time.Millisecond)
	q.HandleMouse(Event{Type: ButtonPressed, Button: Left, WindowPos: at(5, 5), Time: tm2})
	last := root.received[len(root.received)-1]
	assert.Equal(t, DoubleClicked, last.Type)
	assert.Equal(t, 2, last.ClickCount)
}

// noDoubleClickWidget reports an Abilities bitmask with DoubleClickable
// unset, opting out of the double/triple-click upgrade.
type noDoubleClickWidget struct {
	testWidget
}

func (w *noDoubleClickWidget) Abilities() abilities.Abilities { return 0 }

func TestDoubleClickDetectionOptOutViaAbilities(t *testing.T) {
	root := tree.NewRoot[*noDoubleClickWidget]()
	root.SetName("root")

	var q Queue
	q.SetHitTest([]HitEntry{{Widget: root, Anywhere: true, Visible: true}})

	tm := nptime.Time{}
	tm.SetTime(time.Now())

	q.HandleMouse(Event{Type: ButtonPressed, Button: Left, WindowPos: at(5, 5), Time: tm})
	assert.Equal(t, ButtonPressed, root.received[0].Type)

	tm2 := tm
	tm2.NSec += int32(50 * time.Millisecond)
	q.HandleMouse(Event{Type: ButtonPressed, Button: Left, WindowPos: at(5, 5), Time: tm2})
	last := root.received[len(root.received)-1]
	assert.Equal(t, ButtonPressed, last.Type)
	assert.Equal(t, 2, last.ClickCount)
}

func TestHoverEnterExit(t *testing.T) {
	root := newWidget(nil, "root")
	a := newWidget(root, "a")
	b := newWidget(root, "b")

	var q Queue
	q.SetHitTest([]HitEntry{
		{Widget: a, Rect: geom.Rect[float32](0, 0, 10, 10), Visible: true},
		{Widget: b, Rect: geom.Rect[float32](20, 20, 30, 30), Visible: true},
	})

	q.HandleMouse(Event{Type: MouseMoved, WindowPos: at(5, 5), Time: nowTime(t)})
	assert.Equal(t, MouseEntered, a.received[len(a.received)-1].Type)

	q.HandleMouse(Event{Type: MouseMoved, WindowPos: at(25, 25), Time: nowTime(t)})
	assert.Equal(t, MouseExited, a.received[len(a.received)-1].Type)
	assert.Equal(t, MouseEntered, b.received[len(b.received)-1].Type)
}

func TestTabOrderFocus(t *testing.T) {
	root := newWidget(nil, "root")
	a := newWidget(root, "a")
	b := newWidget(root, "b")
	c := newWidget(root, "c")

	var q Queue
	q.TabList = []Widget{a, b, c}

	q.HandleKey(Event{Type: KeyPressed, Rune: '\t', Time: nowTime(t)})
	assert.Equal(t, Widget(a), q.Focused)
	assert.Equal(t, Focused, a.received[len(a.received)-1].Type)

	q.HandleKey(Event{Type: KeyPressed, Rune: '\t', Time: nowTime(t)})
	assert.Equal(t, Widget(b), q.Focused)
	assert.Equal(t, Blurred, a.received[len(a.received)-1].Type)

	q.HandleKey(Event{Type: KeyPressed, Rune: '\t', Mods: Shift, Time: nowTime(t)})
	assert.Equal(t, Widget(a), q.Focused)
}

func TestDragAndDrop(t *testing.T) {
	root := newWidget(nil, "root")
	source := newWidget(root, "source")
	target := newWidget(root, "target")

	var q Queue
	q.SetHitTest([]HitEntry{
		{Widget: target, Rect: geom.Rect[float32](0, 0, 100, 100), Visible: true},
	})

	q.BeginDrag(source, "payload", Left, at(0, 0))
	q.HandleMouse(Event{Type: MouseMoved, WindowPos: at(10, 10), Time: nowTime(t)})

	found := false
	for _, ev := range target.received {
		if ev.Type == TargetDragging && ev.DragPhase == DragEnter {
			found = true
		}
	}
	assert.True(t, found)

	q.AllowDrop()
	q.HandleMouse(Event{Type: ButtonReleased, Button: Left, WindowPos: at(10, 10), Time: nowTime(t)})

	lastSrc := source.received[len(source.received)-1]
	assert.Equal(t, SourceDropped, lastSrc.Type)
	assert.Equal(t, DragDrop, lastSrc.DragPhase)

	lastTgt := target.received[len(target.received)-1]
	assert.Equal(t, TargetDropped, lastTgt.Type)
	assert.Equal(t, DragDrop, lastTgt.DragPhase)
}

func TestDragCancelOnNoThreshold(t *testing.T) {
	root := newWidget(nil, "root")
	source := newWidget(root, "source")

	var q Queue
	q.BeginDrag(source, "payload", Left, at(0, 0))
	q.HandleMouse(Event{Type: ButtonReleased, Button: Left, WindowPos: at(0, 0), Time: nowTime(t)})
	assert.Empty(t, source.received)
}
