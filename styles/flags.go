// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles implements the widget property system: a fixed set of
// typed, independently-inheritable style properties with resolvable units,
// color transitions, and a binding registry, plus the selector/stylesheet
// machinery that assigns them.
package styles

// Flag marks what a property setter must do besides storing the new value:
// whether it can run during a styling pass at all, and what recomputation
// a change requires.
type Flag uint16

const (
	// AffectLayout means a change requires a new layout pass.
	AffectLayout Flag = 1 << iota
	// AffectStyle means a change requires a repaint but not a re-layout.
	AffectStyle
	// Transition means the property animates from its old to new value
	// instead of jumping, using the widget's color transition settings.
	Transition
	// Resolvable means the stored value is unit-relative (Em, Percent,
	// viewport units) and needs resolveProperties to compute pixels.
	Resolvable
	// AffectResolve means a change invalidates other properties' resolved
	// cache even though this property itself is not Resolvable (e.g. a
	// font-size change invalidates every Em-relative sibling property).
	AffectResolve
	// AffectFont means a change requires re-shaping any text this widget
	// draws.
	AffectFont
	// Inheritable means the property accepts the inherit sentinel and is
	// copied from the parent's resolved value on every resolve pass.
	Inheritable
	// RelativeToParent means a Percent value on this property resolves
	// against the parent's content box rather than this widget's own.
	RelativeToParent
	// Compound marks a property that fans out to sub-properties instead of
	// storing a value itself (e.g. borderRadius assigning all four corners).
	Compound
)

// Has reports whether f contains every bit in want.
func (f Flag) Has(want Flag) bool { return f&want == want }

// Any reports whether f contains any bit in want.
func (f Flag) Any(want Flag) bool { return f&want != 0 }

// State is a per-property bookkeeping bitmask distinct from a widget's
// interaction [WidgetState]: it tracks whether the current value came from
// style-rule application or a direct API call.
type State uint8

const (
	// Overridden means the property was last set by a direct API call (or
	// before any stylesheet pass ran), so a later styling pass must not
	// clobber it with a rule's value.
	Overridden State = 1 << iota
	// Inherited means the property was explicitly set to the inherit
	// sentinel and is copied from the parent on every resolve pass.
	Inherited
)

// WidgetState is a widget's interaction state, consulted both by selector
// matching (":hover", ":focus", ...) and by per-setting state scoping
// (a rule that only applies while hovered).
type WidgetState uint8

const (
	StateNone WidgetState = 0
	Hover     WidgetState = 1 << (iota - 1)
	Pressed
	Focused
	KeyFocused
	Selected
	Disabled
)

// Has reports whether s contains every bit in want (the empty mask always matches).
func (s WidgetState) Has(want WidgetState) bool { return s&want == want }
