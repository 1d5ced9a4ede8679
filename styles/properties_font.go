// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "github.com/glimmerui/glimmer/units"

// FontSize returns the widget's resolved (pixel) font size.
func (s *Style) FontSize() float32 { return s.fontSizeResolved }

// SetFontSize sets the widget's font size. FontSize is RelativeToParent:
// a Percent or Em value resolves against the parent's resolved font size,
// not this widget's own, so Resolve re-derives it every pass rather than
// caching it like the other Resolvable properties.
func (s *Style) SetFontSize(v units.Length) {
	if !s.begin(PropFontSize) {
		return
	}
	if v.Equal(s.fontSize) {
		return
	}
	s.fontSize = v
	s.resolveOrRequest(PropFontSize)
	s.notify(&s.fontSize)
}

// SetFontSizeInherit sets the font size to track Parent's.
func (s *Style) SetFontSizeInherit() {
	if !s.beginInherit(PropFontSize) {
		return
	}
	if s.Parent == nil {
		return
	}
	s.Resolve(s.lastContext)
}

// FontWeight returns the widget's font weight.
func (s *Style) FontWeight() FontWeight { return s.fontWeight }

// SetFontWeight sets the widget's font weight.
func (s *Style) SetFontWeight(v FontWeight) {
	if !s.begin(PropFontWeight) {
		return
	}
	if v == s.fontWeight {
		return
	}
	s.fontWeight = v
	s.resolveOrRequest(PropFontWeight)
	s.notify(&s.fontWeight)
}

// SetFontWeightInherit sets the font weight to track Parent's.
func (s *Style) SetFontWeightInherit() {
	if !s.beginInherit(PropFontWeight) {
		return
	}
	if s.Parent == nil {
		return
	}
	s.Resolve(s.lastContext)
}
