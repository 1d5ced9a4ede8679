// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2MulMatrix2(t *testing.T) {
	b := B2(1, 2, 3, 4)
	m := Matrix2{1, 2, 3, 4, 5, 6}
	expected := B2(12, 16, 20, 28)
	assert.Equal(t, expected, b.MulMatrix2(m))
}

func TestBox2(t *testing.T) {
	b := B2(0, 0, 10, 10)
	assert.Equal(t, Vec2(10, 10), b.Size())
	assert.Equal(t, Vec2(5, 5), b.Center())
	assert.False(t, b.IsEmpty())
	assert.True(t, B2(5, 5, 5, 5).IsEmpty())
	assert.True(t, b.ContainsPoint(Vec2(1, 1)))
	assert.False(t, b.ContainsPoint(Vec2(10, 10)))

	o := B2(5, 5, 15, 15)
	assert.Equal(t, B2(0, 0, 15, 15), b.Union(o))
	assert.Equal(t, B2(5, 5, 10, 10), b.Intersect(o))

	assert.Equal(t, B2(2, 3, 12, 13), b.Translate(Vec2(2, 3)))
}
