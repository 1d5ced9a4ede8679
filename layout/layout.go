// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout implements the flexbox-subset constraint solver the
// widget tree's Layout phase runs: given a root [Node] and the space
// available to it, [CalculateLayout] assigns every descendant a rectangle,
// honoring FlexDirection/Justify/Align/Wrap, flex-grow/shrink/basis,
// margin/padding/border, and absolute positioning.
package layout

import (
	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/styles"
)

// MeasureMode mirrors the mode half of a resolved available length: a
// widget sizing itself "=100" (Exactly) must fill it, "<=100" (AtMost)
// may size smaller to fit content, and Undefined means no constraint.
type MeasureMode uint8

const (
	Undefined MeasureMode = iota
	Exactly
	AtMost
)

// AvailableLength is one axis of the space offered to a node during layout.
type AvailableLength struct {
	Value float32
	Mode  MeasureMode
}

// Exact returns an AvailableLength constraining its axis to exactly v.
func Exact(v float32) AvailableLength { return AvailableLength{Value: v, Mode: Exactly} }

// AtMostLength returns an AvailableLength allowing up to v on its axis.
func AtMostLength(v float32) AvailableLength { return AvailableLength{Value: v, Mode: AtMost} }

// AvailableSize is the space offered to a node along both axes.
type AvailableSize struct {
	Width, Height AvailableLength
}

// Node is what calculateLayout needs from a widget: its resolved style and
// its children in paint order, plus hooks for intrinsic content sizing and
// for receiving the computed rectangle.
type Node interface {
	Style() *styles.Style
	LayoutChildren() []Node

	// Measure returns this node's intrinsic content size for the given
	// available space, and true if it measured itself (text, images, and
	// other leaf content); false falls back to pure style/children sizing.
	Measure(available AvailableSize) (geom.SizeOf[float32], bool)

	// SetLayoutRect records the computed rectangle (relative to the
	// parent's border-box origin) for this frame.
	SetLayoutRect(rect geom.RectangleOf[float32])
}

type edges struct{ top, right, bottom, left float32 }

func edgesOf(top, right, bottom, left float32) edges {
	return edges{top: top, right: right, bottom: bottom, left: left}
}

func (e edges) mainStart(horizontal bool) float32 {
	if horizontal {
		return e.left
	}
	return e.top
}
func (e edges) mainEnd(horizontal bool) float32 {
	if horizontal {
		return e.right
	}
	return e.bottom
}
func (e edges) crossStart(horizontal bool) float32 {
	if horizontal {
		return e.top
	}
	return e.left
}
func (e edges) crossEnd(horizontal bool) float32 {
	if horizontal {
		return e.bottom
	}
	return e.right
}
func (e edges) mainSum(horizontal bool) float32  { return e.mainStart(horizontal) + e.mainEnd(horizontal) }
func (e edges) crossSum(horizontal bool) float32 { return e.crossStart(horizontal) + e.crossEnd(horizontal) }

func isHorizontal(dir styles.FlexDirection) bool {
	return dir == styles.Row || dir == styles.RowReverse
}
func isReverse(dir styles.FlexDirection) bool {
	return dir == styles.RowReverse || dir == styles.ColumnReverse
}

// child bundles a Node with the flex bookkeeping computed for it during
// one calculateLayout pass over its parent.
type child struct {
	node       Node
	margin     edges
	basis      float32 // content-box main-axis size before grow/shrink
	mainSize   float32 // content-box main-axis size after grow/shrink
	crossSize  float32
	grow       float32
	shrink     float32
	mainOffset float32
}

func axisSum(e edges, horizontal bool) float32 { return e.mainSum(horizontal) }

// CalculateLayout assigns rectangles to root and every descendant, given
// the space available to root and root's own FlexDirection (a root has no
// parent to inherit a direction from). It always does the full pass and
// returns true; it does not compare the new rectangles with earlier ones,
// since Node exposes no getter for them.
func CalculateLayout(root Node, available AvailableSize) bool {
	size := resolveOwnSize(root, available)
	root.SetLayoutRect(geom.RectFromPosSize(geom.PointOf[float32]{}, size))
	layoutChildren(root, size)
	return true
}

// resolveOwnSize computes a node's own border-box size from its style
// (Width/Height, clamped to Min/Max) or, failing that, from available,
// falling back to content measurement for nodes that can self-measure.
func resolveOwnSize(n Node, available AvailableSize) geom.SizeOf[float32] {
	s := n.Style()
	w := pickAxis(s.Width(), available.Width, s.MinWidth(), s.MaxWidth())
	h := pickAxis(s.Height(), available.Height, s.MinHeight(), s.MaxHeight())
	if (w != w || h != h) && len(n.LayoutChildren()) == 0 { // NaN check: width/height unset
		if msz, ok := n.Measure(available); ok {
			if w != w {
				w = clamp(msz.Width, s.MinWidth(), s.MaxWidth())
			}
			if h != h {
				h = clamp(msz.Height, s.MinHeight(), s.MaxHeight())
			}
		}
	}
	if w != w {
		w = fallback(available.Width)
	}
	if h != h {
		h = fallback(available.Height)
	}
	return geom.Sz(w, h)
}

func pickAxis(styled float32, avail AvailableLength, minV, maxV float32) float32 {
	if styled == styled { // styled is a real number, not NaN (Auto/Undefined resolve to NaN upstream)
		return clamp(styled, minV, maxV)
	}
	if avail.Mode == Exactly {
		return clamp(avail.Value, minV, maxV)
	}
	return float32(nan())
}

func fallback(avail AvailableLength) float32 {
	if avail.Mode == Undefined {
		return 0
	}
	return avail.Value
}

func clamp(v, minV, maxV float32) float32 {
	if minV == minV && v < minV {
		v = minV
	}
	if maxV == maxV && v > maxV {
		v = maxV
	}
	return v
}

func nan() float32 {
	var zero float32
	return zero / zero
}

// layoutChildren lays out n's children within the content box implied by
// parentSize and n's own padding/border, per n's Style flex properties.
func layoutChildren(n Node, parentSize geom.SizeOf[float32]) {
	kids := n.LayoutChildren()
	if len(kids) == 0 {
		return
	}
	s := n.Style()
	pt, pr, pb, pl := s.Padding()
	bt, br, bb, bl := s.BorderWidth()
	contentW := parentSize.Width - pl - pr - bl - br
	contentH := parentSize.Height - pt - pb - bt - bb
	if contentW < 0 {
		contentW = 0
	}
	if contentH < 0 {
		contentH = 0
	}
	horizontal := isHorizontal(s.FlexDirection())
	reverse := isReverse(s.FlexDirection())

	mainAvail := contentW
	crossAvail := contentH
	if !horizontal {
		mainAvail, crossAvail = contentH, contentW
	}

	items := make([]*child, 0, len(kids))
	var absolute []Node
	for _, k := range kids {
		if k.Style().Display() == styles.DisplayNone {
			continue
		}
		if k.Style().PositionType() == styles.PositionAbsolute {
			absolute = append(absolute, k)
			continue
		}
		items = append(items, buildChild(k, horizontal, mainAvail, crossAvail))
	}

	lines := splitLines(items, mainAvail, s.FlexWrap() != styles.NoWrap, horizontal)
	resolveFlex(lines, mainAvail)
	positionLines(lines, s, mainAvail, crossAvail, horizontal, reverse)

	originX, originY := pl+bl, pt+bt
	for _, line := range lines {
		for _, it := range line {
			var rect geom.RectangleOf[float32]
			if horizontal {
				x := originX + it.mainOffset
				y := originY + it.crossOffsetPos
				rect = geom.RectFromPosSize(geom.Pt(x, y), geom.Sz(it.mainSize, it.crossSize))
			} else {
				x := originX + it.crossOffsetPos
				y := originY + it.mainOffset
				rect = geom.RectFromPosSize(geom.Pt(x, y), geom.Sz(it.crossSize, it.mainSize))
			}
			it.node.SetLayoutRect(rect)
			layoutChildren(it.node, rect.Size())
		}
	}

	for _, a := range absolute {
		layoutAbsolute(a, geom.Sz(contentW, contentH), originX, originY)
	}
}

// flexLine is a single wrap line's items, with cross-axis bookkeeping
// filled in by positionLines.
type flexLine = []*lineItem

type lineItem struct {
	*child
	crossOffsetPos float32
}

func buildChild(k Node, horizontal bool, mainAvail, crossAvail float32) *child {
	ks := k.Style()
	m := edgesOf(ks.Margin())

	var mainConstraint, crossConstraint AvailableLength
	if horizontal {
		mainConstraint, crossConstraint = axisConstraint(ks.Width(), mainAvail), axisConstraint(ks.Height(), crossAvail)
	} else {
		mainConstraint, crossConstraint = axisConstraint(ks.Height(), mainAvail), axisConstraint(ks.Width(), crossAvail)
	}

	basis := ks.FlexBasis()
	if basis != basis { // Auto: fall back to the main-axis size style, then content measurement
		if mainConstraint.Mode == Exactly {
			basis = mainConstraint.Value
		} else {
			var avail AvailableSize
			if horizontal {
				avail = AvailableSize{Width: AtMostLength(mainAvail), Height: Exact(crossAvail)}
			} else {
				avail = AvailableSize{Width: Exact(crossAvail), Height: AtMostLength(mainAvail)}
			}
			if msz, ok := k.Measure(avail); ok {
				if horizontal {
					basis = msz.Width
				} else {
					basis = msz.Height
				}
			} else {
				basis = 0
			}
		}
	}
	crossSize := crossConstraint.Value
	if crossConstraint.Mode != Exactly {
		crossSize = crossAvail - axisSum(m, !horizontal)
	}
	if crossSize < 0 {
		crossSize = 0
	}

	return &child{
		node:      k,
		margin:    m,
		basis:     basis,
		mainSize:  basis,
		crossSize: crossSize,
		grow:      ks.FlexGrow(),
		shrink:    ks.FlexShrink(),
	}
}

func axisConstraint(styled float32, avail float32) AvailableLength {
	if styled == styled {
		return Exact(styled)
	}
	return AtMostLength(avail)
}

// splitLines greedily packs items into wrap lines; when wrap is disabled
// everything goes on a single line regardless of overflow, matching the
// "single line, may overflow" CSS flexbox default.
func splitLines(items []*child, mainAvail float32, wrap bool, horizontal bool) []flexLine {
	var lines []flexLine
	var cur flexLine
	var used float32
	for _, it := range items {
		outer := it.mainSize + axisSum(it.margin, horizontal)
		if wrap && len(cur) > 0 && used+outer > mainAvail {
			lines = append(lines, cur)
			cur = nil
			used = 0
		}
		cur = append(cur, &lineItem{child: it})
		used += outer
	}
	if len(cur) > 0 || len(lines) == 0 {
		lines = append(lines, cur)
	}
	return lines
}

// resolveFlex distributes each line's leftover (or deficit) main-axis
// space across its items' grow (or shrink) factors, a single-pass
// approximation of the CSS spec's iterative freeze loop: good enough for
// the flexbox subset this adapter targets, since widgets rarely define
// min/max constraints tight enough to need a second pass.
func resolveFlex(lines []flexLine, mainAvail float32) {
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		var used float32
		for _, it := range line {
			used += it.mainSize
		}
		leftover := mainAvail - used
		if leftover > 0 {
			var totalGrow float32
			for _, it := range line {
				totalGrow += it.grow
			}
			if totalGrow > 0 {
				for _, it := range line {
					it.mainSize += leftover * (it.grow / totalGrow)
				}
			}
		} else if leftover < 0 {
			var totalShrink float32
			for _, it := range line {
				totalShrink += it.shrink * it.basis
			}
			if totalShrink > 0 {
				for _, it := range line {
					weight := (it.shrink * it.basis) / totalShrink
					it.mainSize += leftover * weight
					if it.mainSize < 0 {
						it.mainSize = 0
					}
				}
			}
		}
	}
}

// positionLines assigns mainOffset (within its line) and crossOffsetPos
// (within the whole cross axis) to every item, per Justify/Align.
func positionLines(lines []flexLine, s *styles.Style, mainAvail, crossAvail float32, horizontal, reverse bool) {
	gapRow, gapCol := s.GapRow(), s.GapColumn()
	mainGap := gapCol
	crossGap := gapRow
	if !horizontal {
		mainGap, crossGap = gapRow, gapCol
	}

	totalLinesCross := float32(0)
	lineCross := make([]float32, len(lines))
	for i, line := range lines {
		var maxCross float32
		for _, it := range line {
			outer := it.crossSize + axisSum(it.margin, !horizontal)
			if outer > maxCross {
				maxCross = outer
			}
		}
		lineCross[i] = maxCross
		totalLinesCross += maxCross
	}
	if len(lines) > 1 {
		totalLinesCross += crossGap * float32(len(lines)-1)
	}

	crossCursor := alignContentStart(s.AlignContent(), crossAvail, totalLinesCross)
	extraPerLine := float32(0)
	if s.AlignContent() == styles.AlignStretch && len(lines) > 0 {
		extra := crossAvail - totalLinesCross
		if extra > 0 {
			extraPerLine = extra / float32(len(lines))
		}
	}

	for li, line := range lines {
		lc := lineCross[li] + extraPerLine
		justifyMain(line, s.Justify(), mainAvail, mainGap, horizontal, reverse)
		for _, it := range line {
			align := it.node.Style().AlignSelf()
			if align == styles.AlignStart && s.AlignItems() != styles.AlignStart {
				align = s.AlignItems()
			}
			outer := it.crossSize + axisSum(it.margin, !horizontal)
			switch align {
			case styles.AlignCenter:
				it.crossOffsetPos = crossCursor + (lc-outer)/2 + it.margin.crossStart(!horizontal)
			case styles.AlignEnd:
				it.crossOffsetPos = crossCursor + (lc - outer) + it.margin.crossStart(!horizontal)
			case styles.AlignStretch:
				it.crossSize = lc - axisSum(it.margin, !horizontal)
				it.crossOffsetPos = crossCursor + it.margin.crossStart(!horizontal)
			default: // AlignStart, AlignBaseline (baseline not modeled; falls back to start)
				it.crossOffsetPos = crossCursor + it.margin.crossStart(!horizontal)
			}
		}
		crossCursor += lc + crossGap
	}
}

func alignContentStart(align styles.Align, crossAvail, total float32) float32 {
	switch align {
	case styles.AlignCenter:
		return (crossAvail - total) / 2
	case styles.AlignEnd:
		return crossAvail - total
	default:
		return 0
	}
}

// justifyMain assigns mainOffset to every item in line per justify,
// distributing the line's leftover main-axis space.
func justifyMain(line flexLine, justify styles.Justify, mainAvail, gap float32, horizontal, reverse bool) {
	n := len(line)
	if n == 0 {
		return
	}
	var used float32
	for _, it := range line {
		used += it.mainSize + axisSum(it.margin, horizontal)
	}
	if n > 1 {
		used += gap * float32(n-1)
	}
	leftover := mainAvail - used
	if leftover < 0 {
		leftover = 0
	}

	var start, between float32
	switch justify {
	case styles.JustifyCenter:
		start = leftover / 2
	case styles.JustifyEnd:
		start = leftover
	case styles.JustifySpaceBetween:
		if n > 1 {
			between = leftover / float32(n-1)
		}
	case styles.JustifySpaceAround:
		if n > 0 {
			between = leftover / float32(n)
			start = between / 2
		}
	case styles.JustifySpaceEvenly:
		between = leftover / float32(n+1)
		start = between
	}

	cursor := start
	order := make([]*lineItem, n)
	copy(order, line)
	if reverse {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}
	for _, it := range order {
		cursor += it.margin.mainStart(horizontal)
		it.mainOffset = cursor
		cursor += it.mainSize + it.margin.mainEnd(horizontal) + gap + between
	}
}

// layoutAbsolute positions an absolutely-positioned child against its
// containing block (the parent's content box, here), ignoring flex flow.
func layoutAbsolute(n Node, containing geom.SizeOf[float32], originX, originY float32) {
	avail := AvailableSize{Width: AtMostLength(containing.Width), Height: AtMostLength(containing.Height)}
	size := resolveOwnSize(n, avail)
	rect := geom.RectFromPosSize(geom.Pt(originX, originY), size)
	n.SetLayoutRect(rect)
	layoutChildren(n, size)
}
