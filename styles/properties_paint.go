// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"github.com/glimmerui/glimmer/colors"
	"github.com/glimmerui/glimmer/units"
)

// Opacity returns the widget's opacity, 0 (transparent) to 1 (opaque).
func (s *Style) Opacity() float32 { return s.opacity }

// SetOpacity sets the widget's opacity.
func (s *Style) SetOpacity(v float32) {
	if !s.begin(PropOpacity) {
		return
	}
	if v == s.opacity {
		return
	}
	s.opacity = v
	s.resolveOrRequest(PropOpacity)
	s.notify(&s.opacity)
}

// colorSetter is shared by every Transition-flagged color property: it
// starts (or jumps) the transition, requests an animation frame if it is
// now active, and runs the ordinary setter epilogue.
func (s *Style) colorSetter(index PropertyIndex, tr *ColorTransition, value colors.Color[float32]) {
	duration := float32(0)
	if s.transitionsAllowed() {
		duration = s.ColorTransitionDuration
	}
	if !tr.Set(value, duration, s.frameTime) {
		return
	}
	if tr.IsActive() {
		s.requestAnimationFrame()
	}
	s.resolveOrRequest(index)
	s.notify(tr)
}

// BackgroundColor returns the widget's current (possibly mid-transition)
// background color.
func (s *Style) BackgroundColor() colors.Color[float32] { return s.backgroundColor.Current }

// SetBackgroundColor sets the widget's background color, transitioning
// from the current value per ColorTransitionDuration/Easing.
func (s *Style) SetBackgroundColor(v colors.Color[float32]) {
	if !s.begin(PropBackgroundColor) {
		return
	}
	s.colorSetter(PropBackgroundColor, &s.backgroundColor, v)
}

// Color returns the widget's current text color.
func (s *Style) Color() colors.Color[float32] { return s.color.Current }

// SetColor sets the widget's text color.
func (s *Style) SetColor(v colors.Color[float32]) {
	if !s.begin(PropColor) {
		return
	}
	s.colorSetter(PropColor, &s.color, v)
}

// SetColorInherit sets the text color to track Parent's.
func (s *Style) SetColorInherit() {
	if !s.beginInherit(PropColor) {
		return
	}
	if s.Parent == nil {
		return
	}
	s.Resolve(s.lastContext)
}

// BorderColor returns the widget's current border color.
func (s *Style) BorderColor() colors.Color[float32] { return s.borderColor.Current }

// SetBorderColor sets the widget's border color.
func (s *Style) SetBorderColor(v colors.Color[float32]) {
	if !s.begin(PropBorderColor) {
		return
	}
	s.colorSetter(PropBorderColor, &s.borderColor, v)
}

// ShadowColor returns the widget's current shadow color.
func (s *Style) ShadowColor() colors.Color[float32] { return s.shadowColor.Current }

// SetShadowColor sets the widget's shadow color.
func (s *Style) SetShadowColor(v colors.Color[float32]) {
	if !s.begin(PropShadowColor) {
		return
	}
	s.colorSetter(PropShadowColor, &s.shadowColor, v)
}

// ShadowSize returns the widget's resolved (pixel) shadow blur radius.
func (s *Style) ShadowSize() float32 { return s.shadowSizeResolved }

// SetShadowSize sets the shadow blur radius.
func (s *Style) SetShadowSize(v units.Length) {
	if !s.begin(PropShadowSize) {
		return
	}
	if v.Equal(s.shadowSize) {
		return
	}
	s.shadowSize = v
	s.resolveOrRequest(PropShadowSize)
	s.notify(&s.shadowSize)
}

// SetShadowSizeInherit sets the shadow size to track Parent's.
func (s *Style) SetShadowSizeInherit() {
	if !s.beginInherit(PropShadowSize) {
		return
	}
	if s.Parent == nil {
		return
	}
	s.Resolve(s.lastContext)
}

// Visible reports whether the widget paints and participates in hit-testing.
func (s *Style) Visible() bool { return s.visible }

// SetVisible sets the widget's visibility.
func (s *Style) SetVisible(v bool) {
	if !s.begin(PropVisible) {
		return
	}
	if v == s.visible {
		return
	}
	s.visible = v
	s.resolveOrRequest(PropVisible)
	s.notify(&s.visible)
}

// ZIndex returns the widget's paint/stacking order among siblings.
func (s *Style) ZIndex() int { return s.zIndex }

// SetZIndex sets the widget's stacking order.
func (s *Style) SetZIndex(v int) {
	if !s.begin(PropZIndex) {
		return
	}
	if v == s.zIndex {
		return
	}
	s.zIndex = v
	s.resolveOrRequest(PropZIndex)
	s.notify(&s.zIndex)
}

// BorderRadius returns the widget's resolved (pixel) per-corner radii, in
// TopLeft/TopRight/BottomRight/BottomLeft order.
func (s *Style) BorderRadius() (topLeft, topRight, bottomRight, bottomLeft float32) {
	return s.borderRadiusResolved[0], s.borderRadiusResolved[1], s.borderRadiusResolved[2], s.borderRadiusResolved[3]
}

// SetBorderRadiusTopLeft sets the top-left corner radius.
func (s *Style) SetBorderRadiusTopLeft(v units.Length) { s.setCorner(PropBorderRadiusTopLeft, &s.borderRadius.TopLeft, v) }

// SetBorderRadiusTopRight sets the top-right corner radius.
func (s *Style) SetBorderRadiusTopRight(v units.Length) {
	s.setCorner(PropBorderRadiusTopRight, &s.borderRadius.TopRight, v)
}

// SetBorderRadiusBottomRight sets the bottom-right corner radius.
func (s *Style) SetBorderRadiusBottomRight(v units.Length) {
	s.setCorner(PropBorderRadiusBottomRight, &s.borderRadius.BottomRight, v)
}

// SetBorderRadiusBottomLeft sets the bottom-left corner radius.
func (s *Style) SetBorderRadiusBottomLeft(v units.Length) {
	s.setCorner(PropBorderRadiusBottomLeft, &s.borderRadius.BottomLeft, v)
}

func (s *Style) setCorner(index PropertyIndex, field *units.Length, v units.Length) {
	if !s.begin(index) {
		return
	}
	if v.Equal(*field) {
		return
	}
	*field = v
	s.resolveOrRequest(index)
	s.notify(field)
}

// SetBorderRadius is the compound setter: it fans c out to all four corner
// sub-properties, each tracked and notified independently.
func (s *Style) SetBorderRadius(c units.CornersL) {
	s.SetBorderRadiusTopLeft(c.TopLeft)
	s.SetBorderRadiusTopRight(c.TopRight)
	s.SetBorderRadiusBottomRight(c.BottomRight)
	s.SetBorderRadiusBottomLeft(c.BottomLeft)
}
