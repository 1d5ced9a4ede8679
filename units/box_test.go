// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextResolve(t *testing.T) {
	ctx := Context{
		FontSize:         16,
		DevicePixelRatio: 2,
		Containing:       200,
		Viewport:         [2]float32{800, 600},
	}

	assert.Equal(t, float32(10), ctx.Resolve(Px(10)))
	assert.Equal(t, float32(10), ctx.Resolve(Ap(10)))
	assert.Equal(t, float32(5), ctx.Resolve(Dp(10)))
	assert.Equal(t, float32(32), ctx.Resolve(Ems(2)))
	assert.Equal(t, float32(100), ctx.Resolve(Pct(50)))
	assert.Equal(t, float32(80), ctx.Resolve(VwUnit(10)))
	assert.Equal(t, float32(60), ctx.Resolve(VhUnit(10)))
	assert.Equal(t, float32(60), ctx.Resolve(VminUnit(10)))
	assert.Equal(t, float32(80), ctx.Resolve(VmaxUnit(10)))
	assert.Equal(t, float32(0), ctx.Resolve(AutoLength))
	assert.Equal(t, float32(0), ctx.Resolve(UndefinedLength))
}

func TestContextResolveEdges(t *testing.T) {
	ctx := Context{Containing: 100}
	e := EdgesLHV(Pct(10), Px(5))
	top, right, bottom, left := ctx.ResolveEdges(e)
	assert.Equal(t, float32(5), top)
	assert.Equal(t, float32(10), right)
	assert.Equal(t, float32(5), bottom)
	assert.Equal(t, float32(10), left)
}

func TestEdgesLAll(t *testing.T) {
	e := EdgesLAll(Px(3))
	assert.Equal(t, Px(3), e.Top)
	assert.Equal(t, Px(3), e.Left)
}
