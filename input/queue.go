// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"time"

	"github.com/glimmerui/glimmer/abilities"
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/nptime"
	"github.com/glimmerui/glimmer/tree"
)

// DoubleClickTime is the maximum interval between two presses for the
// second to count as a double-click (and a third, within the same window
// of the second, as a triple-click).
var DoubleClickTime = 500 * time.Millisecond

// DoubleClickDistance is the maximum pointer movement, in either axis,
// between two presses for them to still count as the same click.
var DoubleClickDistance float32 = 4

// DragThreshold is how far the pointer must move past the press-down
// point, with a button held, before dragging begins.
var DragThreshold float32 = 3

// Queue is the per-window input state machine: it holds the hit-test map
// built by the geometry pass, the focused/hovered/capturing widgets, the
// tab order, drag-and-drop state, and a FIFO of pending events. It is the
// direct descendant of the teacher's events.Mgr, generalized from GoKi's
// single-window-global event construction to an explicit, testable state
// machine driven entirely through its exported methods.
type Queue struct {
	hitTest []HitEntry

	Focused      Widget
	hovered      []Widget // topmost-first chain currently reporting hover
	MouseCapture []Widget // stack; top receives mouse events unconditionally
	KeyCapture   []Widget // stack; top receives key events before Focused
	TabList      []Widget
	AutoFocus    Widget

	DragSource Widget
	DragObject any
	DragTarget Widget
	dragButton  Button
	dragArmed   bool
	dropAllowed bool
	pressPos    geom.PointOf[float32]

	LastMouseEvent Event
	LastEvent      Event

	// Mods is the current modifier-key state; HandleKey and HandleMouse
	// set it from the Mods of each event they are given.
	Mods Modifiers

	lastPressTime  nptime.Time
	lastPressPos   geom.PointOf[float32]
	lastClickCount int

	pending  []Event
	reinject []Event
}

// SetHitTest replaces the hit-test map, as rebuilt by the geometry &
// hit-test pass every frame (spec step 4 of the widget tree's per-frame
// phases). Entries may come in any order; Queue scans for the highest
// ZIndex itself.
func (q *Queue) SetHitTest(entries []HitEntry) {
	q.hitTest = entries
}

// topmostAt returns the highest-ZIndex visible, non-transparent entry
// containing p, or nil.
func (q *Queue) topmostAt(p geom.PointOf[float32]) *HitEntry {
	var best *HitEntry
	for i := range q.hitTest {
		e := &q.hitTest[i]
		if !e.Visible || e.MouseTransparent {
			continue
		}
		if !e.contains(p) {
			continue
		}
		if best == nil || e.ZIndex > best.ZIndex {
			best = e
		}
	}
	return best
}

// chainFrom returns w and its ancestors, for hover bookkeeping and event
// bubbling; ancestors that don't implement Widget (e.g. a plain layout
// tree.NodeBase) are skipped rather than stopping the walk.
func chainFrom(w Widget) []Widget {
	var chain []Widget
	var cur tree.Node = w
	for cur != nil {
		if wi, ok := cur.(Widget); ok {
			chain = append(chain, wi)
		}
		cur = cur.AsTree().Parent
	}
	return chain
}

// HandleMouse runs the dispatch algorithm for a positional mouse event:
// hit-test (or capture override), delivery with bubbling, hover-state
// update, capture push/pop on press/release, and double/triple-click
// detection.
func (q *Queue) HandleMouse(ev Event) {
	ev.Init()
	q.Mods = ev.Mods
	if ev.Type == ButtonPressed {
		ev.PressPos = ev.WindowPos
		q.pressPos = ev.WindowPos
	} else {
		ev.PressPos = q.pressPos
	}

	var target Widget
	if len(q.MouseCapture) > 0 {
		target = q.MouseCapture[len(q.MouseCapture)-1]
	} else if e := q.topmostAt(ev.WindowPos); e != nil {
		target = e.Widget
	}

	if ev.Type == ButtonPressed {
		q.detectClickCount(&ev)
		if q.lastClickCount == 2 && supportsAbility(target, abilities.DoubleClickable) {
			ev.Type = DoubleClicked
		} else if q.lastClickCount == 3 && supportsAbility(target, abilities.DoubleClickable) {
			ev.Type = TripleClicked
		}
	}

	if target != nil {
		q.deliver(target, &ev)
	}

	if ev.Type == MouseMoved || ev.Type == ButtonPressed || ev.Type == ButtonReleased {
		q.updateHover(target)
	}

	if ev.Type == ButtonPressed {
		q.MouseCapture = append(q.MouseCapture, target)
		q.dragButton = ev.Button
	} else if ev.Type == ButtonReleased {
		q.popCapture(target)
	}

	if ev.Type == MouseMoved {
		q.updateDrag(ev.WindowPos)
	}
	if ev.Type == ButtonReleased {
		q.endDragIfArmed(ev.WindowPos)
	}

	q.LastMouseEvent = ev
	q.LastEvent = ev
}

// abilityReporter is implemented by widgets that expose an opt-in
// abilities.Abilities bitmask. A widget that doesn't implement it is
// treated as supporting whatever ability is asked about, preserving the
// old behavior for widgets that never opted in.
type abilityReporter interface {
	Abilities() abilities.Abilities
}

// supportsAbility reports whether w opts in to want, defaulting to true
// when w is nil or doesn't implement abilityReporter.
func supportsAbility(w Widget, want abilities.Abilities) bool {
	if w == nil {
		return true
	}
	ar, ok := w.(abilityReporter)
	if !ok {
		return true
	}
	return ar.Abilities().Has(want)
}

func (q *Queue) popCapture(target Widget) {
	n := len(q.MouseCapture)
	if n == 0 {
		return
	}
	if q.MouseCapture[n-1] == target {
		q.MouseCapture = q.MouseCapture[:n-1]
	}
}

func (q *Queue) detectClickCount(ev *Event) {
	interval := q.lastPressTime.Since(ev.Time.Time())
	dx := ev.WindowPos.X - q.lastPressPos.X
	dy := ev.WindowPos.Y - q.lastPressPos.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if interval <= DoubleClickTime && dx <= DoubleClickDistance && dy <= DoubleClickDistance {
		q.lastClickCount++
		if q.lastClickCount > 3 {
			q.lastClickCount = 1
		}
	} else {
		q.lastClickCount = 1
	}
	ev.ClickCount = q.lastClickCount
	q.lastPressTime = ev.Time
	q.lastPressPos = ev.WindowPos
}

// deliver sends ev to w and, while ev.ShouldBubble(), walks up the parent
// chain delivering to each ancestor in turn.
func (q *Queue) deliver(w Widget, ev *Event) {
	for _, cur := range chainFrom(w) {
		cur.HandleEvent(ev)
		if !ev.ShouldBubble() {
			return
		}
	}
}

// updateHover diffs the new topmost-to-root chain against the previous
// one: widgets only in the old chain get MouseExited, widgets only in the
// new one get MouseEntered.
func (q *Queue) updateHover(target Widget) {
	var newChain []Widget
	if target != nil {
		newChain = chainFrom(target)
	}
	inNew := make(map[Widget]bool, len(newChain))
	for _, w := range newChain {
		inNew[w] = true
	}
	for _, w := range q.hovered {
		if !inNew[w] {
			exit := Event{Type: MouseExited}
			exit.Init()
			w.HandleEvent(&exit)
		}
	}
	inOld := make(map[Widget]bool, len(q.hovered))
	for _, w := range q.hovered {
		inOld[w] = true
	}
	for _, w := range newChain {
		if !inOld[w] {
			enter := Event{Type: MouseEntered}
			enter.Init()
			w.HandleEvent(&enter)
		}
	}
	q.hovered = newChain
}

// HandleKey delivers a key/char event to the key-capture stack top if any,
// else the focused widget; Tab/Shift-Tab instead move focus within the
// current tab group.
func (q *Queue) HandleKey(ev Event) {
	ev.Init()
	q.Mods = ev.Mods
	if ev.Type == KeyPressed && ev.Rune == '\t' {
		q.advanceFocus(!ev.Mods.Has(Shift))
		return
	}
	var target Widget
	if len(q.KeyCapture) > 0 {
		target = q.KeyCapture[len(q.KeyCapture)-1]
	} else {
		target = q.Focused
	}
	if target != nil {
		q.deliver(target, &ev)
	}
	q.LastEvent = ev
}

// advanceFocus moves focus to the next (or, if forward is false, previous)
// widget in TabList, wrapping around.
func (q *Queue) advanceFocus(forward bool) {
	n := len(q.TabList)
	if n == 0 {
		return
	}
	idx := -1
	for i, w := range q.TabList {
		if w == q.Focused {
			idx = i
			break
		}
	}
	var next int
	switch {
	case idx < 0:
		next = 0
	case forward:
		next = (idx + 1) % n
	default:
		next = (idx - 1 + n) % n
	}
	q.SetFocus(q.TabList[next], true)
}

// SetFocus sends Blurred to the current focus and Focused to w, recording
// whether the change was driven by the keyboard (so the new focus ring
// can be drawn or not accordingly).
func (q *Queue) SetFocus(w Widget, byKeyboard bool) {
	if q.Focused == w {
		return
	}
	if q.Focused != nil {
		ev := Event{Type: Blurred}
		ev.Init()
		q.Focused.HandleEvent(&ev)
	}
	q.Focused = w
	if w != nil {
		ev := Event{Type: Focused, ByKeyboard: byKeyboard}
		ev.Init()
		w.HandleEvent(&ev)
	}
}

// BeginDrag arms the drag-and-drop state machine: once the pointer moves
// past DragThreshold from p0 while button is held, SourceDragging events
// begin firing to source and TargetDragging events to whatever is under
// the cursor.
func (q *Queue) BeginDrag(source Widget, object any, button Button, p0 geom.PointOf[float32]) {
	q.DragSource = source
	q.DragObject = object
	q.dragButton = button
	q.pressPos = p0
	q.dragArmed = false
}

func (q *Queue) updateDrag(p geom.PointOf[float32]) {
	if q.DragSource == nil {
		return
	}
	if !q.dragArmed {
		dx := p.X - q.pressPos.X
		dy := p.Y - q.pressPos.Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx < DragThreshold && dy < DragThreshold {
			return
		}
		q.dragArmed = true
	}

	srcEv := Event{Type: SourceDragging, WindowPos: p, DragObject: q.DragObject}
	srcEv.Init()
	q.DragSource.HandleEvent(&srcEv)

	var target Widget
	if e := q.topmostAt(p); e != nil {
		target = e.Widget
	}
	if target != q.DragTarget {
		q.dropAllowed = false
		if q.DragTarget != nil {
			exitEv := Event{Type: TargetDragging, DragPhase: DragExit, DragObject: q.DragObject}
			exitEv.Init()
			q.DragTarget.HandleEvent(&exitEv)
		}
		if target != nil {
			enterEv := Event{Type: TargetDragging, DragPhase: DragEnter, WindowPos: p, DragObject: q.DragObject}
			enterEv.Init()
			target.HandleEvent(&enterEv)
		}
		q.DragTarget = target
	} else if target != nil {
		overEv := Event{Type: TargetDragging, DragPhase: DragOver, WindowPos: p, DragObject: q.DragObject}
		overEv.Init()
		target.HandleEvent(&overEv)
	}
}

func (q *Queue) endDragIfArmed(p geom.PointOf[float32]) {
	if q.DragSource == nil || !q.dragArmed {
		q.cancelDragStateOnly()
		return
	}
	q.EndDrag(p)
}

// EndDrag completes an armed drag at p: if the current target most
// recently allowed the drop, both sides receive a Drop-phase Dropped
// event; otherwise both receive Cancel.
func (q *Queue) EndDrag(p geom.PointOf[float32]) {
	if q.DragSource == nil {
		return
	}
	phase := DragCancel
	if q.dropAllowed {
		phase = DragDrop
	}
	srcEv := Event{Type: SourceDropped, DragPhase: phase, WindowPos: p, DragObject: q.DragObject}
	srcEv.Init()
	q.DragSource.HandleEvent(&srcEv)
	if q.DragTarget != nil {
		tgtEv := Event{Type: TargetDropped, DragPhase: phase, WindowPos: p, DragObject: q.DragObject}
		tgtEv.Init()
		q.DragTarget.HandleEvent(&tgtEv)
	}
	q.clearDrag()
}

// AllowDrop is called by the current drag target during an Over event to
// permit a drop; it resets on every new target so a target must call it
// again each time the pointer re-enters.
func (q *Queue) AllowDrop() { q.dropAllowed = true }

// CancelDragging immediately cancels an in-progress or armed drag as if
// the button had been released over a target that disallowed the drop.
func (q *Queue) CancelDragging() {
	if q.DragSource == nil {
		return
	}
	q.dropAllowed = false
	q.EndDrag(q.pressPos)
}

func (q *Queue) cancelDragStateOnly() {
	q.clearDrag()
}

func (q *Queue) clearDrag() {
	q.DragSource = nil
	q.DragObject = nil
	q.DragTarget = nil
	q.dragArmed = false
	q.dropAllowed = false
}

// Enqueue appends ev to the pending FIFO, coalescing it with the tail
// entry when neither is Type.IsUnique and they share the same Type (e.g.
// a burst of MouseMoved events collapses to the latest position).
func (q *Queue) Enqueue(ev Event) {
	if n := len(q.pending); n > 0 {
		tail := &q.pending[n-1]
		if tail.Type == ev.Type && !ev.Type.IsUnique() {
			*tail = ev
			return
		}
	}
	q.pending = append(q.pending, ev)
}

// Dequeue removes and returns the oldest pending event.
func (q *Queue) Dequeue() (Event, bool) {
	if len(q.pending) == 0 {
		return Event{}, false
	}
	ev := q.pending[0]
	q.pending = q.pending[1:]
	return ev, true
}

// Reinject holds ev for redelivery, for events a recipient determined
// should be redelivered (e.g. a popup closing and re-dispatching the
// click that triggered the close); [Queue.DrainReinjected] then moves
// it to the front of the pending queue.
func (q *Queue) Reinject(ev Event) {
	q.reinject = append(q.reinject, ev)
}

// DrainReinjected moves any reinjected events to the front of the pending
// queue; called once per dispatch cycle before draining Dequeue.
func (q *Queue) DrainReinjected() {
	if len(q.reinject) == 0 {
		return
	}
	q.pending = append(q.reinject, q.pending...)
	q.reinject = nil
}
