// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vec2(20, 20), Vector2Scalar(20))
	assert.Equal(t, Vec2(15, -5), Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vec2(8, 3), Vector2FromFixed(fixed.P(8, 3)))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vec2(-1, 7), v)

	v.SetScalar(8.12)
	assert.Equal(t, Vec2(8.12, 8.12), v)

	v.SetFromVector2i(Vec2i(8, 9))
	assert.Equal(t, Vec2(8, 9), v)

	v.SetDim(X, -4)
	assert.Equal(t, Vec2(-4, 9), v)
	v.SetDim(Y, 14.3)
	assert.Equal(t, Vec2(-4, 14.3), v)

	assert.Equal(t, float32(-4), v.Dim(X))
	assert.Equal(t, float32(14.3), v.Dim(Y))

	pt := image.Point{}
	SetPointDim(&pt, X, 2)
	assert.Equal(t, image.Pt(2, 0), pt)
	SetPointDim(&pt, Y, 43)
	assert.Equal(t, image.Pt(2, 43), pt)
	assert.Equal(t, 2, PointDim(pt, X))
	assert.Equal(t, 43, PointDim(pt, Y))
}

func TestVector2Arith(t *testing.T) {
	v := Vec2(3.5, 19)
	assert.Equal(t, Vec2(7.5, 19), v.AddDim(X, 4))
	assert.Equal(t, Vec2(3.5, 20), v.AddDim(Y, 1))
	assert.Equal(t, Vec2(-2, 19), v.SubDim(X, 5.5))
	assert.Equal(t, Vec2(3.5, 2), v.SubDim(Y, 17))
	assert.Equal(t, Vec2(7, 19), v.MulDim(X, 2))
	assert.Equal(t, Vec2(3.5, 57), v.MulDim(Y, 3))
	assert.Equal(t, Vec2(0.5, 19), v.DivDim(X, 7))
	assert.Equal(t, Vec2(3.5, 2.375), v.DivDim(Y, 8))

	assert.Equal(t, Vec2(5, 5), Vec2(2, 3).Add(Vec2(3, 2)))
	assert.Equal(t, Vec2(5, 5), Vec2(2, 2).AddScalar(3))
	assert.Equal(t, Vec2(-1, 1), Vec2(2, 3).Sub(Vec2(3, 2)))
	assert.Equal(t, Vec2(6, 9), Vec2(2, 3).Mul(Vec2(3, 3)))
	assert.Equal(t, Vec2(6, 6), Vec2(2, 2).MulScalar(3))
	assert.Equal(t, Vec2(1, 3), Vec2(3, 9).Div(Vec2(3, 3)))
	assert.Equal(t, Vec2(1, 3), Vec2(3, 9).DivScalar(3))
	assert.Equal(t, Vec2(2, 2), Vec2(2, 5).Min(Vec2(5, 2)))
	assert.Equal(t, Vec2(5, 5), Vec2(2, 5).Max(Vec2(5, 2)))
	assert.Equal(t, Vec2(-2, 3), Vec2(2, -3).Negate())
}

func TestVector2Round(t *testing.T) {
	v := Vec2(3.5, 19.2)
	assert.Equal(t, Vec2(4, 20), v.ToCeil())
	assert.Equal(t, Vec2(3, 19), v.ToFloor())
	assert.Equal(t, Vec2(4, 19), v.ToRound())
	assert.Equal(t, image.Pt(3, 19), v.ToPoint())
	assert.Equal(t, image.Pt(4, 20), v.ToPointCeil())
	assert.Equal(t, image.Pt(3, 19), v.ToPointFloor())
	assert.Equal(t, image.Pt(4, 19), v.ToPointRound())
}

func TestRectFromPosSizeMax(t *testing.T) {
	pos := Vec2(3.5, 19.2)
	size := Vec2(4.7, 9.3)
	assert.Equal(t, image.Rect(3, 19, 8, 29), RectFromPosSizeMax(pos, size))
}

func TestVector2Length(t *testing.T) {
	v := Vec2(3, 4)
	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, float32(25), v.LengthSquared())
	n := v.Normal()
	assert.InDelta(t, float64(1), float64(n.Length()), 1e-6)
	assert.Equal(t, Vec2(0, 0), Vec2(0, 0).Normal())
}

func TestVector2Dot(t *testing.T) {
	assert.Equal(t, float32(11), Vec2(1, 2).Dot(Vec2(3, 4)))
}

func TestVector2Flip(t *testing.T) {
	v := Vec2(1, 2)
	assert.Equal(t, Vec2(2, 1), v.Flipped())
}
