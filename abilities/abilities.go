// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abilities defines the bitmask of interactions a widget opts
// into. The input dispatcher in package input consults only
// [DoubleClickable]; it delivers events to a widget whatever abilities the
// widget reports.
package abilities

// Abilities is a bitmask of the interactions a widget supports. The zero
// value means a widget that opts into none of them.
type Abilities uint32

const (
	// Editable means the widget can be edited; otherwise it is read-only.
	Editable Abilities = 1 << iota
	// Selectable means the widget can become Selected.
	Selectable
	// Activatable means the widget can become Active (e.g. a pressed button
	// stays Active until released).
	Activatable
	// Pressable means the widget receives Click events without taking on
	// the Active state that Activatable widgets get automatically.
	Pressable
	// LongPressable means the widget distinguishes a long press from a
	// regular one.
	LongPressable
	// DoubleClickable means the widget distinguishes a double click from
	// two separate clicks; without it, double-click events are delivered
	// as two ordinary clicks.
	DoubleClickable
	// Draggable means the widget can be dragged.
	Draggable
	// Droppable means the widget can receive drag-enter, drag-leave, and
	// drop events, independent of which item is being dragged.
	Droppable
	// Slideable means the widget has a slider-like element that is
	// dragged to change a value. Mutually exclusive with Draggable in
	// practice, though nothing enforces that here.
	Slideable
	// Checkable means the widget can toggle a Checked state.
	Checkable
	// Scrollable means the widget can be scrolled.
	Scrollable
	// Focusable means the widget can take keyboard focus.
	Focusable
	// FocusWithinable means the widget tracks whether any descendant has
	// focus, for focus-within style rules.
	FocusWithinable
	// Hoverable means the widget tracks pointer hover.
	Hoverable
	// LongHoverable means the widget distinguishes a sustained hover from
	// a brief one (e.g. to show a tooltip).
	LongHoverable
)

// Has reports whether ab has every ability in want set.
func (ab Abilities) Has(want Abilities) bool { return ab&want == want }

// HasAny reports whether ab has at least one ability in want set.
func (ab Abilities) HasAny(want Abilities) bool { return ab&want != 0 }

// IsPressable reports whether a widget with ab should receive Click events
// at all: Selectable, Activatable, DoubleClickable, Draggable, Slideable,
// Checkable, and Pressable widgets all do.
func (ab Abilities) IsPressable() bool {
	return ab.HasAny(Selectable | Activatable | DoubleClickable | Draggable | Slideable | Checkable | Pressable)
}

// IsHoverable reports whether a widget with ab should receive pointer-enter
// and pointer-leave events.
func (ab Abilities) IsHoverable() bool {
	return ab.HasAny(Hoverable | LongHoverable)
}
