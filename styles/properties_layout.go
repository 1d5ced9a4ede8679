// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "github.com/glimmerui/glimmer/units"

func (s *Style) setLength(index PropertyIndex, field *units.Length, resolved *float32, v units.Length) {
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

// Width returns the widget's resolved (pixel) width, or NaN if Auto/Undefined.
func (s *Style) Width() float32 { return s.widthResolved }

// SetWidth sets the widget's width.
func (s *Style) SetWidth(v units.Length) { s.setLength(PropWidth, &s.width, &s.widthResolved, v) }

// Height returns the widget's resolved height.
func (s *Style) Height() float32 { return s.heightResolved }

// SetHeight sets the widget's height.
func (s *Style) SetHeight(v units.Length) { s.setLength(PropHeight, &s.height, &s.heightResolved, v) }

// MinWidth returns the widget's resolved minimum width. It defaults to 0,
// not Auto, matching the CSS min-width:0 default.
func (s *Style) MinWidth() float32 { return s.minWidthResolved }
func (s *Style) SetMinWidth(v units.Length) {
	s.setLength(PropMinWidth, &s.minWidth, &s.minWidthResolved, v)
}

// MinHeight returns the widget's resolved minimum height, defaulting to 0.
func (s *Style) MinHeight() float32 { return s.minHeightResolved }
func (s *Style) SetMinHeight(v units.Length) {
	s.setLength(PropMinHeight, &s.minHeight, &s.minHeightResolved, v)
}

// MaxWidth returns the widget's resolved maximum width, or NaN if Auto
// (the default: no maximum).
func (s *Style) MaxWidth() float32 { return s.maxWidthResolved }
func (s *Style) SetMaxWidth(v units.Length) {
	s.setLength(PropMaxWidth, &s.maxWidth, &s.maxWidthResolved, v)
}

// MaxHeight returns the widget's resolved maximum height, or NaN if Auto.
func (s *Style) MaxHeight() float32 { return s.maxHeightResolved }
func (s *Style) SetMaxHeight(v units.Length) {
	s.setLength(PropMaxHeight, &s.maxHeight, &s.maxHeightResolved, v)
}

// Margin returns the widget's resolved margins, Top/Right/Bottom/Left order.
func (s *Style) Margin() (top, right, bottom, left float32) {
	return s.marginResolved[0], s.marginResolved[1], s.marginResolved[2], s.marginResolved[3]
}

func (s *Style) SetMarginTop(v units.Length)    { s.setLength(PropMarginTop, &s.margin.Top, &s.marginResolved[0], v) }
func (s *Style) SetMarginRight(v units.Length)  { s.setLength(PropMarginRight, &s.margin.Right, &s.marginResolved[1], v) }
func (s *Style) SetMarginBottom(v units.Length) { s.setLength(PropMarginBottom, &s.margin.Bottom, &s.marginResolved[2], v) }
func (s *Style) SetMarginLeft(v units.Length)   { s.setLength(PropMarginLeft, &s.margin.Left, &s.marginResolved[3], v) }

// SetMargin is the compound setter fanning e out to all four edges.
func (s *Style) SetMargin(e units.EdgesL) {
	s.SetMarginTop(e.Top)
	s.SetMarginRight(e.Right)
	s.SetMarginBottom(e.Bottom)
	s.SetMarginLeft(e.Left)
}

// Padding returns the widget's resolved padding, Top/Right/Bottom/Left order.
func (s *Style) Padding() (top, right, bottom, left float32) {
	return s.paddingResolved[0], s.paddingResolved[1], s.paddingResolved[2], s.paddingResolved[3]
}

func (s *Style) SetPaddingTop(v units.Length) { s.setLength(PropPaddingTop, &s.padding.Top, &s.paddingResolved[0], v) }
func (s *Style) SetPaddingRight(v units.Length) {
	s.setLength(PropPaddingRight, &s.padding.Right, &s.paddingResolved[1], v)
}
func (s *Style) SetPaddingBottom(v units.Length) {
	s.setLength(PropPaddingBottom, &s.padding.Bottom, &s.paddingResolved[2], v)
}
func (s *Style) SetPaddingLeft(v units.Length) {
	s.setLength(PropPaddingLeft, &s.padding.Left, &s.paddingResolved[3], v)
}

// SetPadding is the compound setter fanning e out to all four edges.
func (s *Style) SetPadding(e units.EdgesL) {
	s.SetPaddingTop(e.Top)
	s.SetPaddingRight(e.Right)
	s.SetPaddingBottom(e.Bottom)
	s.SetPaddingLeft(e.Left)
}

// BorderWidth returns the widget's resolved border widths, Top/Right/Bottom/Left order.
func (s *Style) BorderWidth() (top, right, bottom, left float32) {
	return s.borderWidthResolved[0], s.borderWidthResolved[1], s.borderWidthResolved[2], s.borderWidthResolved[3]
}

func (s *Style) SetBorderWidthTop(v units.Length) {
	s.setLength(PropBorderWidthTop, &s.borderWidth.Top, &s.borderWidthResolved[0], v)
}
func (s *Style) SetBorderWidthRight(v units.Length) {
	s.setLength(PropBorderWidthRight, &s.borderWidth.Right, &s.borderWidthResolved[1], v)
}
func (s *Style) SetBorderWidthBottom(v units.Length) {
	s.setLength(PropBorderWidthBottom, &s.borderWidth.Bottom, &s.borderWidthResolved[2], v)
}
func (s *Style) SetBorderWidthLeft(v units.Length) {
	s.setLength(PropBorderWidthLeft, &s.borderWidth.Left, &s.borderWidthResolved[3], v)
}

// SetBorderWidth is the compound setter fanning e out to all four edges.
func (s *Style) SetBorderWidth(e units.EdgesL) {
	s.SetBorderWidthTop(e.Top)
	s.SetBorderWidthRight(e.Right)
	s.SetBorderWidthBottom(e.Bottom)
	s.SetBorderWidthLeft(e.Left)
}

func (s *Style) FlexGrow() float32 { return s.flexGrow }
func (s *Style) SetFlexGrow(v float32) {
	if !s.begin(PropFlexGrow) {
		return
	}
	if v == s.flexGrow {
		return
	}
	s.flexGrow = v
	s.resolveOrRequest(PropFlexGrow)
	s.notify(&s.flexGrow)
}

func (s *Style) FlexShrink() float32 { return s.flexShrink }
func (s *Style) SetFlexShrink(v float32) {
	if !s.begin(PropFlexShrink) {
		return
	}
	if v == s.flexShrink {
		return
	}
	s.flexShrink = v
	s.resolveOrRequest(PropFlexShrink)
	s.notify(&s.flexShrink)
}

// FlexBasis returns the widget's resolved flex-basis, or NaN if Auto (the
// default: fall back to the main-axis size, then content measurement).
func (s *Style) FlexBasis() float32 { return s.flexBasisResolved }
func (s *Style) SetFlexBasis(v units.Length) {
	s.setLength(PropFlexBasis, &s.flexBasis, &s.flexBasisResolved, v)
}

func (s *Style) GapRow() float32 { return s.gapRowResolved }
func (s *Style) SetGapRow(v units.Length) { s.setLength(PropGapRow, &s.gapRow, &s.gapRowResolved, v) }

func (s *Style) GapColumn() float32 { return s.gapColumnResolved }
func (s *Style) SetGapColumn(v units.Length) {
	s.setLength(PropGapColumn, &s.gapColumn, &s.gapColumnResolved, v)
}

// the remaining layout properties are plain enums with no resolution step.

func (s *Style) FlexDirection() FlexDirection { return s.flexDirection }
func (s *Style) SetFlexDirection(v FlexDirection) {
	if !s.begin(PropFlexDirection) || v == s.flexDirection {
		return
	}
	s.flexDirection = v
	s.requestUpdates(propFlags[PropFlexDirection])
	s.notify(&s.flexDirection)
}

func (s *Style) FlexWrap() Wrap { return s.flexWrap }
func (s *Style) SetFlexWrap(v Wrap) {
	if !s.begin(PropFlexWrap) || v == s.flexWrap {
		return
	}
	s.flexWrap = v
	s.requestUpdates(propFlags[PropFlexWrap])
	s.notify(&s.flexWrap)
}

func (s *Style) Justify() Justify { return s.justify }
func (s *Style) SetJustify(v Justify) {
	if !s.begin(PropJustify) || v == s.justify {
		return
	}
	s.justify = v
	s.requestUpdates(propFlags[PropJustify])
	s.notify(&s.justify)
}

func (s *Style) AlignItems() Align { return s.alignItems }
func (s *Style) SetAlignItems(v Align) {
	if !s.begin(PropAlignItems) || v == s.alignItems {
		return
	}
	s.alignItems = v
	s.requestUpdates(propFlags[PropAlignItems])
	s.notify(&s.alignItems)
}

func (s *Style) AlignContent() Align { return s.alignContent }
func (s *Style) SetAlignContent(v Align) {
	if !s.begin(PropAlignContent) || v == s.alignContent {
		return
	}
	s.alignContent = v
	s.requestUpdates(propFlags[PropAlignContent])
	s.notify(&s.alignContent)
}

func (s *Style) AlignSelf() Align { return s.alignSelf }
func (s *Style) SetAlignSelf(v Align) {
	if !s.begin(PropAlignSelf) || v == s.alignSelf {
		return
	}
	s.alignSelf = v
	s.requestUpdates(propFlags[PropAlignSelf])
	s.notify(&s.alignSelf)
}

func (s *Style) Display() Display { return s.display }
func (s *Style) SetDisplay(v Display) {
	if !s.begin(PropDisplay) || v == s.display {
		return
	}
	s.display = v
	s.requestUpdates(propFlags[PropDisplay])
	s.notify(&s.display)
}

func (s *Style) PositionType() PositionType { return s.positionType }
func (s *Style) SetPositionType(v PositionType) {
	if !s.begin(PropPositionType) || v == s.positionType {
		return
	}
	s.positionType = v
	s.requestUpdates(propFlags[PropPositionType])
	s.notify(&s.positionType)
}

func (s *Style) Overflow() Overflow { return s.overflow }
func (s *Style) SetOverflow(v Overflow) {
	if !s.begin(PropOverflow) || v == s.overflow {
		return
	}
	s.overflow = v
	s.requestUpdates(propFlags[PropOverflow])
	s.notify(&s.overflow)
}

// TransformOrigin returns the widget's resolved transform origin, X then Y.
func (s *Style) TransformOrigin() (x, y float32) {
	return s.transformOriginResolved[0], s.transformOriginResolved[1]
}

func (s *Style) SetTransformOriginX(v units.Length) {
	s.setLength(PropTransformOriginX, &s.transformOrigin.X, &s.transformOriginResolved[0], v)
}
func (s *Style) SetTransformOriginY(v units.Length) {
	s.setLength(PropTransformOriginY, &s.transformOrigin.Y, &s.transformOriginResolved[1], v)
}

// SetTransformOrigin is the compound setter fanning p out to its two axes.
func (s *Style) SetTransformOrigin(p units.PointL) {
	s.SetTransformOriginX(p.X)
	s.SetTransformOriginY(p.Y)
}
