// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

// FlexDirection is the main axis the flexbox layout engine lays children
// out along.
type FlexDirection uint8

const (
	Row FlexDirection = iota
	RowReverse
	Column
	ColumnReverse
)

// Justify distributes free space along the main axis.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align distributes items along the cross axis.
type Align uint8

const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
	AlignStretch
	AlignBaseline
)

// Wrap selects whether overflowing flex items wrap onto new lines.
type Wrap uint8

const (
	NoWrap Wrap = iota
	WrapReverse
	WrapForward
)

// Overflow selects how a widget handles content that exceeds its box.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// PositionType selects whether a widget participates in normal flow or is
// taken out of it and positioned against an ancestor or the viewport.
type PositionType uint8

const (
	PositionStatic PositionType = iota
	PositionRelative
	PositionAbsolute
)

// Display toggles whether a widget participates in layout at all.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone
)

// FontWeight is a coarse weight class, matching the values a rasterized
// font face is actually selected by.
type FontWeight uint16

const (
	WeightNormal FontWeight = 400
	WeightBold   FontWeight = 700
)
