// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2i(t *testing.T) {
	assert.Equal(t, Vector2i{5, 10}, Vec2i(5, 10))
	assert.Equal(t, Vec2i(20, 20), Vector2iScalar(20))

	v := Vector2i{}
	v.Set(-1, 7)
	assert.Equal(t, Vec2i(-1, 7), v)

	v.SetScalar(8)
	assert.Equal(t, Vec2i(8, 8), v)

	v.SetFromVector2(Vec2(8.3, 9.7))
	assert.Equal(t, Vec2i(8, 9), v)

	v.SetDim(X, -4)
	assert.Equal(t, Vec2i(-4, 9), v)
	v.SetDim(Y, 14)
	assert.Equal(t, Vec2i(-4, 14), v)

	assert.Equal(t, int32(-4), v.Dim(X))
	assert.Equal(t, int32(14), v.Dim(Y))
}

func TestVector2iArith(t *testing.T) {
	v := Vec2i(-2, 4)
	assert.Equal(t, Vec2i(3, 1), v.Add(Vec2i(5, -3)))
	assert.Equal(t, Vec2i(-7, 7), v.Sub(Vec2i(5, -3)))
	assert.Equal(t, Vec2i(-10, -12), v.Mul(Vec2i(5, -3)))
	assert.Equal(t, Vec2(-2, 4), v.ToVector2())
}

func TestVector2iFlip(t *testing.T) {
	assert.Equal(t, Vec2i(4, -2), Vec2i(-2, 4).Flipped())
}
