// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	c, err := Parse("#ff0000")
	assert.NoError(t, err)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, uint8(0), c.B)
	assert.Equal(t, uint8(255), c.A)

	c, err = Parse("#f00")
	assert.NoError(t, err)
	assert.Equal(t, uint8(255), c.R)

	c, err = Parse("#00ff0080")
	assert.NoError(t, err)
	assert.Equal(t, uint8(128), c.A)
}

func TestParseRGB(t *testing.T) {
	c, err := Parse("rgb(10, 20, 30)")
	assert.NoError(t, err)
	assert.Equal(t, uint8(10), c.R)
	assert.Equal(t, uint8(20), c.G)
	assert.Equal(t, uint8(30), c.B)
	assert.Equal(t, uint8(255), c.A)

	c, err = Parse("rgba(10, 20, 30, 128)")
	assert.NoError(t, err)
	assert.Equal(t, uint8(128), c.A)
}

func TestParseHSL(t *testing.T) {
	c, err := Parse("hsl(0, 100%, 50%)")
	assert.NoError(t, err)
	assert.Equal(t, uint8(255), c.R)
	assert.InDelta(t, 0, c.G, 1)
	assert.InDelta(t, 0, c.B, 1)
}

func TestParseName(t *testing.T) {
	c, err := Parse("red")
	assert.NoError(t, err)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, uint8(0), c.B)

	_, err = Parse("notacolor")
	assert.Error(t, err)
}

func TestParseNoneAndTransparent(t *testing.T) {
	for _, s := range []string{"none", "off", "transparent"} {
		c, err := Parse(s)
		assert.NoError(t, err)
		assert.Equal(t, uint8(0), c.A)
	}
}

func TestParseLightenDarken(t *testing.T) {
	base := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	lighter, err := Parse("lighten-20", base)
	assert.NoError(t, err)
	darker, err := Parse("darken-20", base)
	assert.NoError(t, err)
	assert.Greater(t, int(lighter.R), int(base.R))
	assert.Less(t, int(darker.R), int(base.R))
}

func TestParseSaturateSpin(t *testing.T) {
	base := color.RGBA{R: 200, G: 100, B: 100, A: 255}
	_, err := Parse("saturate-10", base)
	assert.NoError(t, err)
	_, err = Parse("spin-30", base)
	assert.NoError(t, err)
}

func TestParseClearerOpaquer(t *testing.T) {
	base := color.RGBA{R: 10, G: 10, B: 10, A: 200}
	clearer, err := Parse("clearer-20", base)
	assert.NoError(t, err)
	assert.Less(t, int(clearer.A), int(base.A))

	opaquer, err := Parse("opaquer-20", base)
	assert.NoError(t, err)
	assert.Greater(t, int(opaquer.A), int(base.A))
}

func TestParseInverse(t *testing.T) {
	base := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	c, err := Parse("inverse", base)
	assert.NoError(t, err)
	assert.Equal(t, uint8(245), c.R)
	assert.Equal(t, uint8(235), c.G)
	assert.Equal(t, uint8(225), c.B)
}

func TestParseBlend(t *testing.T) {
	base := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	c, err := Parse("blend-50-white", base)
	assert.NoError(t, err)
	assert.InDelta(t, 127, int(c.R), 2)
}

func TestParseCurrentColor(t *testing.T) {
	base := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	c, err := Parse("currentcolor", base)
	assert.NoError(t, err)
	assert.Equal(t, uint8(1), c.R)
}
