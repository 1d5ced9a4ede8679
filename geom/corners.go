// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// CornersOf holds four corner measures (top-left/top-right/bottom-right/
// bottom-left), used for border-radius style properties.
type CornersOf[T Unit] struct {
	TopLeft, TopRight, BottomRight, BottomLeft T
}

// Co returns a new [CornersOf] with all four corners distinct.
func Co[T Unit](topLeft, topRight, bottomRight, bottomLeft T) CornersOf[T] {
	return CornersOf[T]{TopLeft: topLeft, TopRight: topRight, BottomRight: bottomRight, BottomLeft: bottomLeft}
}

// CoScalar returns a new [CornersOf] with all four corners set to v.
func CoScalar[T Unit](v T) CornersOf[T] { return CornersOf[T]{v, v, v, v} }

// IsZero reports whether all four corners are zero.
func (c CornersOf[T]) IsZero() bool {
	return c.TopLeft == 0 && c.TopRight == 0 && c.BottomRight == 0 && c.BottomLeft == 0
}

// Max returns the largest of the four corners.
func (c CornersOf[T]) Max() T { return max(c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft) }

// MulScalar returns c with every corner scaled by v.
func (c CornersOf[T]) MulScalar(v T) CornersOf[T] {
	return CornersOf[T]{c.TopLeft * v, c.TopRight * v, c.BottomRight * v, c.BottomLeft * v}
}
