// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"github.com/glimmerui/glimmer/colors"
	"github.com/glimmerui/glimmer/units"
)

// numProperties bounds the per-property state array; every property index
// below must stay under it.
const numProperties = 48

// Property indices. A property's index is its identity for state tracking,
// inheritance, and binding notifications; Compound properties (borderRadius,
// margin, padding, borderWidth, transformOrigin) have no index of their own
// since they only fan out to the indexed sub-properties below.
const (
	PropOpacity PropertyIndex = iota
	PropBackgroundColor
	PropColor
	PropBorderColor
	PropShadowColor
	PropShadowSize
	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropMarginTop
	PropMarginRight
	PropMarginBottom
	PropMarginLeft
	PropPaddingTop
	PropPaddingRight
	PropPaddingBottom
	PropPaddingLeft
	PropBorderWidthTop
	PropBorderWidthRight
	PropBorderWidthBottom
	PropBorderWidthLeft
	PropBorderRadiusTopLeft
	PropBorderRadiusTopRight
	PropBorderRadiusBottomRight
	PropBorderRadiusBottomLeft
	PropFlexGrow
	PropFlexShrink
	PropFlexBasis
	PropFlexDirection
	PropFlexWrap
	PropJustify
	PropAlignItems
	PropAlignContent
	PropAlignSelf
	PropDisplay
	PropPositionType
	PropOverflow
	PropGapRow
	PropGapColumn
	PropFontSize
	PropFontWeight
	PropVisible
	PropZIndex
	PropTransformOriginX
	PropTransformOriginY
)

// PropertyIndex identifies one of a [Style]'s typed properties.
type PropertyIndex uint8

// propFlags holds each property's fixed flag set, indexed by [PropertyIndex].
var propFlags = [numProperties]Flag{
	PropOpacity:                 AffectStyle,
	PropBackgroundColor:         Transition | AffectStyle,
	PropColor:                   Transition | AffectStyle | AffectFont | Inheritable,
	PropBorderColor:             Transition | AffectStyle,
	PropShadowColor:             Resolvable | Transition | AffectStyle,
	PropShadowSize:              Resolvable | Inheritable | AffectStyle,
	PropWidth:                   Resolvable | AffectLayout,
	PropHeight:                  Resolvable | AffectLayout,
	PropMinWidth:                Resolvable | AffectLayout,
	PropMinHeight:               Resolvable | AffectLayout,
	PropMaxWidth:                Resolvable | AffectLayout,
	PropMaxHeight:               Resolvable | AffectLayout,
	PropMarginTop:               Resolvable | AffectLayout,
	PropMarginRight:             Resolvable | AffectLayout,
	PropMarginBottom:            Resolvable | AffectLayout,
	PropMarginLeft:              Resolvable | AffectLayout,
	PropPaddingTop:              Resolvable | AffectLayout,
	PropPaddingRight:            Resolvable | AffectLayout,
	PropPaddingBottom:           Resolvable | AffectLayout,
	PropPaddingLeft:             Resolvable | AffectLayout,
	PropBorderWidthTop:          Resolvable | AffectLayout,
	PropBorderWidthRight:        Resolvable | AffectLayout,
	PropBorderWidthBottom:       Resolvable | AffectLayout,
	PropBorderWidthLeft:         Resolvable | AffectLayout,
	PropBorderRadiusTopLeft:     Resolvable | Inheritable | AffectStyle,
	PropBorderRadiusTopRight:    Resolvable | Inheritable | AffectStyle,
	PropBorderRadiusBottomRight: Resolvable | Inheritable | AffectStyle,
	PropBorderRadiusBottomLeft:  Resolvable | Inheritable | AffectStyle,
	PropFlexGrow:                AffectLayout,
	PropFlexShrink:              AffectLayout,
	PropFlexBasis:               Resolvable | AffectLayout,
	PropFlexDirection:           AffectLayout,
	PropFlexWrap:                AffectLayout,
	PropJustify:                 AffectLayout,
	PropAlignItems:              AffectLayout,
	PropAlignContent:            AffectLayout,
	PropAlignSelf:               AffectLayout,
	PropDisplay:                 AffectLayout,
	PropPositionType:            AffectLayout,
	PropOverflow:                AffectStyle,
	PropGapRow:                  Resolvable | AffectLayout,
	PropGapColumn:               Resolvable | AffectLayout,
	PropFontSize:                Resolvable | AffectResolve | AffectFont | Inheritable | RelativeToParent,
	PropFontWeight:              AffectFont | Inheritable,
	PropVisible:                 AffectStyle,
	PropZIndex:                  AffectStyle,
	PropTransformOriginX:        Resolvable | AffectStyle,
	PropTransformOriginY:        Resolvable | AffectStyle,
}

// UpdateRequest accumulates what a styling pass changed, for the widget
// tree's later Layout/Style/Font phases to act on; a [Style] never performs
// these updates itself.
type UpdateRequest struct {
	Layout bool
	Style  bool
	Font   bool
}

// Style is a widget's complete property bag: every property's raw value,
// its resolved (pixel) form where applicable, and the 2-bit state
// (Overridden/Inherited) that governs how the next styling pass treats it.
//
// Style has no knowledge of the widget tree; the owning widget sets Parent
// before a resolve pass and clears styleApplying around stylesheet
// application, per the Rebuild/Styling/Layout phase order.
type Style struct {
	Parent *Style

	// lastContext is the unit-resolution context from the most recent
	// Resolve call, reused by resolveOrRequest so an individual setter
	// doesn't need to carry one through.
	lastContext units.Context

	states [numProperties]State

	// styleApplying is true only while a Stylesheet's rules are being
	// applied; outside that scope, every direct setter call always wins.
	styleApplying bool

	pending UpdateRequest

	// ColorTransitionDuration and ColorTransitionEasing govern every
	// Transition-flagged property's animation; both can themselves be
	// set like ordinary (non-animated) properties.
	ColorTransitionDuration float32
	ColorTransitionEasing   EasingFunc

	bindings *Registry

	// frameTime is the current frame's start time in seconds, set once per
	// frame by the widget tree's Animation phase driver and consulted by
	// every Transition-flagged setter so a freshly-started transition
	// records a sane startTime instead of always starting at 0.
	frameTime float32

	// raw/resolved property storage; see properties_*.go for the typed
	// accessors built on top of these fields.
	opacity      float32
	backgroundColor ColorTransition
	color        ColorTransition
	borderColor  ColorTransition
	shadowColor  ColorTransition
	shadowSize   units.Length
	shadowSizeResolved float32

	width, height                     units.Length
	widthResolved, heightResolved     float32
	minWidth, minHeight               units.Length
	minWidthResolved, minHeightResolved float32
	maxWidth, maxHeight               units.Length
	maxWidthResolved, maxHeightResolved float32
	margin       units.EdgesL
	marginResolved [4]float32
	padding      units.EdgesL
	paddingResolved [4]float32
	borderWidth  units.EdgesL
	borderWidthResolved [4]float32
	borderRadius units.CornersL
	borderRadiusResolved [4]float32

	flexGrow, flexShrink float32
	flexBasis            units.Length
	flexBasisResolved    float32
	flexDirection        FlexDirection
	flexWrap             Wrap
	justify              Justify
	alignItems, alignContent, alignSelf Align
	display      Display
	positionType PositionType
	overflow     Overflow
	gapRow, gapColumn units.Length
	gapRowResolved, gapColumnResolved float32

	fontSize         units.Length
	fontSizeResolved float32
	fontWeight       FontWeight

	visible bool
	zIndex  int

	transformOrigin         units.PointL
	transformOriginResolved [2]float32
}

// NewStyle returns a default Style: opaque, visible, 150ms ease-in-out-cubic
// color transitions, font size 14px.
func NewStyle() *Style {
	s := &Style{
		opacity:                 1,
		visible:                 true,
		ColorTransitionDuration: 0.15,
		ColorTransitionEasing:   EaseInOutCubic,
		fontSize:                units.Px(14),
		fontSizeResolved:        14,
		width:                   units.AutoLength,
		height:                  units.AutoLength,
		maxWidth:                units.AutoLength,
		maxHeight:               units.AutoLength,
		flexBasis:               units.AutoLength,
	}
	s.backgroundColor = NewColorTransition(transparentF)
	s.color = NewColorTransition(blackF)
	s.borderColor = NewColorTransition(transparentF)
	s.shadowColor = NewColorTransition(transparentF)
	return s
}

// SetBindings attaches the registry this style's properties notify on
// change; nil disables binding notifications (the default).
func (s *Style) SetBindings(r *Registry) { s.bindings = r }

// TakeUpdates returns and clears everything changed since the last call,
// for the widget tree phases to act on.
func (s *Style) TakeUpdates() UpdateRequest {
	u := s.pending
	s.pending = UpdateRequest{}
	return u
}

// BeginApplyingRules opens the styleApplying scope a Stylesheet pass runs
// its rule setters inside: an already-Overridden property is preserved
// rather than clobbered by a matching rule.
func (s *Style) BeginApplyingRules() { s.styleApplying = true }

// EndApplyingRules closes the scope opened by BeginApplyingRules.
func (s *Style) EndApplyingRules() { s.styleApplying = false }

// begin runs the shared prelude every non-inherit setter starts with: it
// reports whether the set should proceed (false if a styling-pass rule is
// trying to overwrite an already-Overridden property), and otherwise clears
// Inherited and, for a direct API call, sets Overridden.
func (s *Style) begin(index PropertyIndex) bool {
	state := s.states[index]
	if !s.styleApplying {
		state |= Overridden
	} else if state&Overridden != 0 {
		return false
	}
	state &^= Inherited
	s.states[index] = state
	return true
}

// beginInherit is begin's counterpart for setting a property to the
// inherit sentinel.
func (s *Style) beginInherit(index PropertyIndex) bool {
	state := s.states[index]
	if !s.styleApplying {
		state |= Overridden
	} else if state&Overridden != 0 {
		return false
	}
	state |= Inherited
	s.states[index] = state
	return true
}

// IsInherited reports whether index's value tracks its parent's.
func (s *Style) IsInherited(index PropertyIndex) bool { return s.states[index]&Inherited != 0 }

// IsOverridden reports whether index was last set by a direct API call.
func (s *Style) IsOverridden(index PropertyIndex) bool { return s.states[index]&Overridden != 0 }

// requestUpdates folds flags' AffectLayout/AffectStyle/AffectFont bits into
// the pending [UpdateRequest].
func (s *Style) requestUpdates(flags Flag) {
	if flags.Has(AffectLayout) {
		s.pending.Layout = true
	}
	if flags.Has(AffectStyle) {
		s.pending.Style = true
	}
	if flags.Has(AffectFont) {
		s.pending.Font = true
	}
}

// resolveOrRequest is the setter epilogue: properties that feed resolution
// (Inheritable, Resolvable, or AffectResolve) trigger a resolve pass, which
// itself folds in the right update flags; everything else requests updates
// directly.
func (s *Style) resolveOrRequest(index PropertyIndex) {
	flags := propFlags[index]
	if flags.Any(Inheritable | Resolvable | AffectResolve) {
		s.Resolve(s.lastContext)
	} else {
		s.requestUpdates(flags)
	}
}

func (s *Style) notify(addr any) {
	if s.bindings != nil {
		s.bindings.Notify(addr)
	}
}

// transitionsAllowed reports whether color properties should animate at
// all; a zero ColorTransitionDuration disables animation entirely.
func (s *Style) transitionsAllowed() bool { return s.ColorTransitionDuration > 0 }

func (s *Style) requestAnimationFrame() { s.pending.Style = true }

// SetFrameTime records the current frame's start time in seconds, read by
// every subsequent Transition-flagged setter and by Tick.
func (s *Style) SetFrameTime(t float32) { s.frameTime = t }

// Tick advances every active color transition against the current frame
// time, re-requesting an animation frame for any still active afterward;
// the widget tree's Animation phase calls this once per frame.
func (s *Style) Tick() {
	for _, tr := range []*ColorTransition{&s.backgroundColor, &s.color, &s.borderColor, &s.shadowColor} {
		if !tr.IsActive() {
			continue
		}
		tr.Tick(s.ColorTransitionDuration, s.ColorTransitionEasing, s.frameTime)
		if tr.IsActive() {
			s.requestAnimationFrame()
		} else {
			s.pending.Style = true
		}
	}
}

var transparentF = colors.New[float32](0, 0, 0, 0)
var blackF = colors.New[float32](0, 0, 0, 1)
