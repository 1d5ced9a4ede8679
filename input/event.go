// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input implements the hit-test, focus, hover, capture, and
// drag-and-drop state machine that turns raw pointer/keyboard activity into
// events delivered to widgets. It is the Go-idiom descendant of the
// goki.dev/goosi-vintage events.Mgr: the same derived-event bookkeeping
// (double-click detection, drag thresholds, capture stacks), rebuilt around
// tree.Node and [nptime.Time] instead of the GoKi event-queue types.
package input

import (
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/nptime"
)

// Type identifies the kind of event carried by an [Event].
type Type int

const (
	MouseMoved Type = iota
	MouseEntered
	MouseExited
	WheelX
	WheelY
	ButtonPressed
	ButtonReleased
	DoubleClicked
	TripleClicked
	KeyPressed
	KeyReleased
	CharTyped
	SourceDragging
	SourceDropped
	TargetDragging
	TargetDropped
	Focused
	Blurred

	// NoOp carries no state; a platform's blocked OS-event wait posts one
	// purely to wake the main thread up (e.g. after a cross-thread Quit or
	// TaskQueue dispatch), never to be delivered to a widget.
	NoOp
)

// DragPhase distinguishes the sub-phase of a Source/TargetDragging or
// Dropped event, mirroring the Over/Enter/Exit and Drop/Cancel detail the
// drag-and-drop state machine needs beyond the bare event Type.
type DragPhase int

const (
	DragNone DragPhase = iota
	DragEnter
	DragOver
	DragExit
	DragDrop
	DragCancel
)

// Button identifies a mouse button, as a bitmask so held-button state
// (e.g. while dragging with two buttons down) fits in one field.
type Button uint32

const (
	NoButton Button = 0
	Left     Button = 1 << (iota - 1)
	Middle
	Right
)

// Modifiers are the keyboard modifiers held during an event.
type Modifiers uint32

const (
	NoModifiers Modifiers = 0
	Control     Modifiers = 1 << (iota - 1)
	Meta
	Alt
	Shift
)

func (m Modifiers) Has(want Modifiers) bool { return m&want == want }

// Event is the tagged union delivered to widgets by [Queue]. Only the
// fields relevant to Type are meaningful; the rest are zero.
type Event struct {
	Type Type
	Time nptime.Time

	// WindowPos is the pointer position in window coordinates; LocalPos is
	// the same position translated into the receiving widget's local
	// space, recomputed per recipient as the event bubbles.
	WindowPos geom.PointOf[float32]
	LocalPos  geom.PointOf[float32]

	// PressPos is the WindowPos at the most recent ButtonPressed, valid on
	// any event delivered while a button is held (moves, drags, releases).
	PressPos geom.PointOf[float32]

	Button     Button
	ClickCount int // 1, 2, or 3 for DoubleClicked/TripleClicked
	Mods       Modifiers

	DeltaX, DeltaY float32 // WheelX / WheelY

	Rune rune
	Code uint32

	DragPhase  DragPhase
	DragObject any

	// ByKeyboard distinguishes keyboard-driven focus changes (which should
	// draw a focus ring) from pointer-driven ones, on Focused events.
	ByKeyboard bool

	bubbles  bool
	handled  bool
}

// Init marks the event as freshly constructed: bubbling enabled, not yet
// handled. Matches the teacher Mgr's practice of calling Init on every
// event it builds before sending it.
func (e *Event) Init() {
	e.bubbles = true
	e.handled = false
}

// SetHandled marks the event consumed; ShouldBubble will return false
// regardless of prior bubbling state.
func (e *Event) SetHandled() { e.handled = true }

// IsHandled reports whether a recipient has already called SetHandled.
func (e *Event) IsHandled() bool { return e.handled }

// SetBubbles controls whether the dispatcher continues walking up the
// parent chain after delivering this event to its initial target.
func (e *Event) SetBubbles(b bool) { e.bubbles = b }

// ShouldBubble reports whether the event continues propagating to parents
// after the widget it was just delivered to.
func (e *Event) ShouldBubble() bool { return e.bubbles && !e.handled }

// SelectMode reports the selection mode implied by the event's modifiers,
// the way a list or table interprets a click: Shift extends a contiguous
// range, Control/Meta toggles one item, and no modifier replaces the
// selection outright.
func (e *Event) SelectMode() SelectModes {
	switch {
	case e.Mods.Has(Shift):
		return SelectRange
	case e.Mods.Has(Control) || e.Mods.Has(Meta):
		return SelectToggle
	default:
		return SelectOne
	}
}

// SelectModes enumerates the ways a click can alter a selection set.
type SelectModes int

const (
	SelectOne SelectModes = iota
	SelectRange
	SelectToggle
)

// IsUnique reports whether events of this Type should never be coalesced
// with a pending one of the same type already queued: presses, releases,
// clicks, key/char events, drag phase transitions, and focus changes are
// all individually significant and must never be dropped, where a run of
// MouseMoved, WheelX or WheelY events is compressed to the latest one.
func (t Type) IsUnique() bool {
	switch t {
	case MouseMoved, WheelX, WheelY:
		return false
	default:
		return true
	}
}
