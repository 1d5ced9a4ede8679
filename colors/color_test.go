// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/glimmerui/glimmer/colors/space"
	"github.com/stretchr/testify/assert"
)

func TestNewGrey(t *testing.T) {
	c := Grey[uint8](128)
	assert.Equal(t, uint8(128), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(128), c.B)
	assert.Equal(t, uint8(255), c.A)
}

func TestColorSpaceResolution(t *testing.T) {
	c := New[float32](1, 0, 0, 1)
	assert.Equal(t, space.SRGBGamma, c.ColorSpace(false))
	assert.Equal(t, space.SRGBLinear, c.ColorSpace(true))

	srgbOnly := Color[float32]{R: 1, Gamma: SRGB}
	assert.Equal(t, space.SRGBGamma, srgbOnly.ColorSpace(true))
}

func TestMixStraight(t *testing.T) {
	a := New[float32](0, 0, 0, 1)
	b := New[float32](1, 1, 1, 1)
	mid := Mix(0.5, a, b, Straight)
	assert.InDelta(t, 0.5, mid.R, 1e-5)
	assert.InDelta(t, 0.5, mid.G, 1e-5)
	assert.InDelta(t, 0.5, mid.B, 1e-5)
	assert.InDelta(t, 1.0, mid.A, 1e-5)
}

func TestMixZeroAlphaReturnsA(t *testing.T) {
	a := New[float32](0.2, 0.3, 0.4, 0)
	b := New[float32](0.8, 0.8, 0.8, 0)
	mid := Mix(0.5, a, b, Straight)
	assert.Equal(t, a, mid)
}

func TestMixPremultiplied(t *testing.T) {
	a := New[float32](0, 0, 0, 0)
	b := New[float32](1, 1, 1, 1)
	mid := Mix(0.5, a, b, Premultiplied)
	assert.InDelta(t, 0.5, mid.R, 1e-5)
	assert.InDelta(t, 0.5, mid.A, 1e-5)
}

func TestConvertSpaceRoundTrip(t *testing.T) {
	c := New[uint8](200, 100, 50, 255)
	converted := ConvertSpace(c, space.OKLAB, false)
	assert.InDelta(t, int(c.R), int(converted.R), 2)
	assert.InDelta(t, int(c.G), int(converted.G), 2)
	assert.InDelta(t, int(c.B), int(converted.B), 2)
	assert.Equal(t, c.A, converted.A)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(New[uint8](0, 0, 0, 0)))
	assert.NoError(t, Validate(New[float32](0, 0, 0, 0)))
}
