// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDesc(t *testing.T) {
	assert.Equal(t, 4, RGBA.Components())
	assert.True(t, RGBA.HasAlpha())
	assert.True(t, RGBA.IsColor())
	assert.False(t, RGBA.IsGreyscale())

	assert.Equal(t, 1, Greyscale.Components())
	assert.False(t, Greyscale.HasAlpha())
	assert.True(t, Greyscale.IsGreyscale())

	assert.Equal(t, 1, Alpha.Components())
	assert.True(t, Alpha.HasAlpha())
	assert.False(t, Alpha.IsColor())
}

func TestComponentsToFormat(t *testing.T) {
	assert.Equal(t, Greyscale, ComponentsToFormat(1))
	assert.Equal(t, GreyscaleAlpha, ComponentsToFormat(2))
	assert.Equal(t, RGB, ComponentsToFormat(3))
	assert.Equal(t, RGBA, ComponentsToFormat(4))
	assert.Equal(t, UnknownFormat, ComponentsToFormat(7))
}

func TestTypeSize(t *testing.T) {
	assert.Equal(t, 1, U8.Size())
	assert.Equal(t, 1, U8Gamma.Size())
	assert.Equal(t, 2, U16.Size())
	assert.Equal(t, 4, F32.Size())
	assert.Equal(t, U8, U8Gamma.NoGamma())
}

func TestSize(t *testing.T) {
	assert.Equal(t, 4, Size(U8, RGBA))
	assert.Equal(t, 16, Size(F32, RGBA))
}

func TestUnknownFormatDescIsZero(t *testing.T) {
	assert.Equal(t, Desc{}, UnknownFormat.Desc())
	assert.Equal(t, Desc{}, Raw.Desc())
}
