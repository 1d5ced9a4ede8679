// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"math"

	"github.com/glimmerui/glimmer/units"
)

// resolveSizing resolves a layout-sizing length (Width/Height/Min/Max/
// FlexBasis) to pixels, except that a valueless length (Auto or Undefined)
// resolves to NaN rather than ctx.Resolve's 0: those properties use 0 as a
// legitimate resolved value (an explicit 0px), so "unset" must stay
// distinguishable from it for the layout engine to tell "no constraint"
// apart from "constrained to zero".
func resolveSizing(ctx units.Context, l units.Length) float32 {
	if !l.HasValue() {
		return float32(math.NaN())
	}
	return ctx.Resolve(l)
}

// Resolve recomputes every Resolvable property's pixel form using ctx, and
// copies every Inherited property's resolved value from Parent. It is the
// Go counterpart of Widget::resolveProperties(flags) with flags widened to
// "everything", which is what the Layout phase actually needs: a single
// bounded pass over all properties rather than a flag-filtered subset, since
// Style has no cheap way to enumerate "only the properties flags touches"
// without the reflection the teacher's C++ template metaprogramming used.
func (s *Style) Resolve(ctx units.Context) {
	s.lastContext = ctx

	s.inheritIfSet(PropShadowSize, &s.shadowSize)
	s.shadowSizeResolved = ctx.Resolve(s.shadowSize)

	s.inheritIfSet(PropWidth, &s.width)
	s.widthResolved = resolveSizing(ctx, s.width)
	s.inheritIfSet(PropHeight, &s.height)
	s.heightResolved = resolveSizing(ctx, s.height)
	s.inheritIfSet(PropMinWidth, &s.minWidth)
	s.minWidthResolved = resolveSizing(ctx, s.minWidth)
	s.inheritIfSet(PropMinHeight, &s.minHeight)
	s.minHeightResolved = resolveSizing(ctx, s.minHeight)
	s.inheritIfSet(PropMaxWidth, &s.maxWidth)
	s.maxWidthResolved = resolveSizing(ctx, s.maxWidth)
	s.inheritIfSet(PropMaxHeight, &s.maxHeight)
	s.maxHeightResolved = resolveSizing(ctx, s.maxHeight)

	s.inheritIfSet(PropMarginTop, &s.margin.Top)
	s.inheritIfSet(PropMarginRight, &s.margin.Right)
	s.inheritIfSet(PropMarginBottom, &s.margin.Bottom)
	s.inheritIfSet(PropMarginLeft, &s.margin.Left)
	s.marginResolved[0], s.marginResolved[1], s.marginResolved[2], s.marginResolved[3] = ctx.ResolveEdges(s.margin)

	s.inheritIfSet(PropPaddingTop, &s.padding.Top)
	s.inheritIfSet(PropPaddingRight, &s.padding.Right)
	s.inheritIfSet(PropPaddingBottom, &s.padding.Bottom)
	s.inheritIfSet(PropPaddingLeft, &s.padding.Left)
	s.paddingResolved[0], s.paddingResolved[1], s.paddingResolved[2], s.paddingResolved[3] = ctx.ResolveEdges(s.padding)

	s.inheritIfSet(PropBorderWidthTop, &s.borderWidth.Top)
	s.inheritIfSet(PropBorderWidthRight, &s.borderWidth.Right)
	s.inheritIfSet(PropBorderWidthBottom, &s.borderWidth.Bottom)
	s.inheritIfSet(PropBorderWidthLeft, &s.borderWidth.Left)
	s.borderWidthResolved[0], s.borderWidthResolved[1], s.borderWidthResolved[2], s.borderWidthResolved[3] =
		ctx.ResolveEdges(s.borderWidth)

	s.inheritIfSet(PropBorderRadiusTopLeft, &s.borderRadius.TopLeft)
	s.inheritIfSet(PropBorderRadiusTopRight, &s.borderRadius.TopRight)
	s.inheritIfSet(PropBorderRadiusBottomRight, &s.borderRadius.BottomRight)
	s.inheritIfSet(PropBorderRadiusBottomLeft, &s.borderRadius.BottomLeft)
	s.borderRadiusResolved[0] = ctx.Resolve(s.borderRadius.TopLeft)
	s.borderRadiusResolved[1] = ctx.Resolve(s.borderRadius.TopRight)
	s.borderRadiusResolved[2] = ctx.Resolve(s.borderRadius.BottomRight)
	s.borderRadiusResolved[3] = ctx.Resolve(s.borderRadius.BottomLeft)

	s.inheritIfSet(PropFlexBasis, &s.flexBasis)
	s.flexBasisResolved = resolveSizing(ctx, s.flexBasis)

	s.inheritIfSet(PropGapRow, &s.gapRow)
	s.gapRowResolved = ctx.Resolve(s.gapRow)
	s.inheritIfSet(PropGapColumn, &s.gapColumn)
	s.gapColumnResolved = ctx.Resolve(s.gapColumn)

	// fontSize is RelativeToParent: its own Percent/Em resolves against the
	// parent's resolved font size rather than this widget's own, and every
	// other Em-relative property in this pass already used the new
	// fontSizeResolved via ctx.FontSize, so fontSize itself must resolve
	// first next time through — callers refresh ctx.FontSize from the
	// previous pass's result.
	s.inheritIfSet(PropFontSize, &s.fontSize)
	if s.Parent != nil {
		fontCtx := ctx
		fontCtx.FontSize = s.Parent.fontSizeResolved
		s.fontSizeResolved = fontCtx.Resolve(s.fontSize)
	} else {
		s.fontSizeResolved = ctx.Resolve(s.fontSize)
	}
	if s.IsInherited(PropFontWeight) && s.Parent != nil {
		s.fontWeight = s.Parent.fontWeight
	}
	if s.IsInherited(PropColor) && s.Parent != nil {
		s.color.Current = s.Parent.color.Current
	}

	s.inheritIfSet(PropTransformOriginX, &s.transformOrigin.X)
	s.inheritIfSet(PropTransformOriginY, &s.transformOrigin.Y)
	s.transformOriginResolved[0] = ctx.Resolve(s.transformOrigin.X)
	s.transformOriginResolved[1] = ctx.Resolve(s.transformOrigin.Y)

	s.requestUpdates(AffectLayout | AffectStyle | AffectFont)
}

// inheritIfSet copies *field from the corresponding field on Parent when
// index is marked Inherited; the caller passes the matching field pointer
// since Style has no reflection-based way to address "the field index
// names" the way the teacher's C++ pointer-to-member template did.
func (s *Style) inheritIfSet(index PropertyIndex, field *units.Length) {
	if s.Parent == nil || !s.IsInherited(index) {
		return
	}
	*field = s.parentField(index)
}

// parentField looks up the parent's raw value for an Inheritable property
// by index; at the root a property with no parent simply keeps its last
// value, matching the source's "At root, the property keeps its last
// value" rule.
func (s *Style) parentField(index PropertyIndex) units.Length {
	p := s.Parent
	switch index {
	case PropShadowSize:
		return p.shadowSize
	case PropWidth:
		return p.width
	case PropHeight:
		return p.height
	case PropMinWidth:
		return p.minWidth
	case PropMinHeight:
		return p.minHeight
	case PropMaxWidth:
		return p.maxWidth
	case PropMaxHeight:
		return p.maxHeight
	case PropMarginTop:
		return p.margin.Top
	case PropMarginRight:
		return p.margin.Right
	case PropMarginBottom:
		return p.margin.Bottom
	case PropMarginLeft:
		return p.margin.Left
	case PropPaddingTop:
		return p.padding.Top
	case PropPaddingRight:
		return p.padding.Right
	case PropPaddingBottom:
		return p.padding.Bottom
	case PropPaddingLeft:
		return p.padding.Left
	case PropBorderWidthTop:
		return p.borderWidth.Top
	case PropBorderWidthRight:
		return p.borderWidth.Right
	case PropBorderWidthBottom:
		return p.borderWidth.Bottom
	case PropBorderWidthLeft:
		return p.borderWidth.Left
	case PropBorderRadiusTopLeft:
		return p.borderRadius.TopLeft
	case PropBorderRadiusTopRight:
		return p.borderRadius.TopRight
	case PropBorderRadiusBottomRight:
		return p.borderRadius.BottomRight
	case PropBorderRadiusBottomLeft:
		return p.borderRadius.BottomLeft
	case PropFlexBasis:
		return p.flexBasis
	case PropGapRow:
		return p.gapRow
	case PropGapColumn:
		return p.gapColumn
	case PropFontSize:
		return p.fontSize
	case PropTransformOriginX:
		return p.transformOrigin.X
	case PropTransformOriginY:
		return p.transformOrigin.Y
	default:
		return units.UndefinedLength
	}
}
