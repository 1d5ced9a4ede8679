// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"testing"

	"github.com/glimmerui/glimmer/geom"
	"github.com/glimmerui/glimmer/math32"
	"github.com/stretchr/testify/assert"
)

func TestMoveLineClose(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt[float32](0, 0))
	p.LineTo(geom.Pt[float32](10, 0))
	p.LineTo(geom.Pt[float32](10, 10))

	assert.False(t, p.Empty())
	assert.InDelta(t, float32(20), p.Length(), 0.001)

	p.Close()
	assert.InDelta(t, float32(20)+math32.Hypot(10, 10), p.Length(), 0.001)
}

func TestQuadraticToDegreeElevatesToCubic(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt[float32](0, 0))
	p.QuadraticTo(geom.Pt[float32](5, 10), geom.Pt[float32](10, 0))

	q := New()
	q.MoveTo(geom.Pt[float32](0, 0))
	q.CubicTo(geom.Pt[float32](10.0/3, 20.0/3), geom.Pt[float32](20.0/3, 20.0/3), geom.Pt[float32](10, 0))

	assert.InDelta(t, q.Length(), p.Length(), 0.01)
}

func TestAddRectWinding(t *testing.T) {
	cw := New()
	cw.AddRect(geom.Rect[float32](0, 0, 10, 10), CW)
	ccw := New()
	ccw.AddRect(geom.Rect[float32](0, 0, 10, 10), CCW)

	assert.InDelta(t, cw.Length(), ccw.Length(), 0.001)
	assert.InDelta(t, float32(40), cw.Length(), 0.001)
}

func TestAddCircleBoundingBox(t *testing.T) {
	p := New()
	p.AddCircle(5, 5, 3, CW)
	box := p.BoundingBoxApprox()

	assert.InDelta(t, float32(2), box.Min.X, 0.05)
	assert.InDelta(t, float32(2), box.Min.Y, 0.05)
	assert.InDelta(t, float32(8), box.Max.X, 0.05)
	assert.InDelta(t, float32(8), box.Max.Y, 0.05)
}

func TestAddRoundRectDirectionReversesClosedSubpath(t *testing.T) {
	cw := New()
	cw.AddRoundRect(geom.Rect[float32](0, 0, 20, 10), 3, 3, CW)
	ccw := New()
	ccw.AddRoundRect(geom.Rect[float32](0, 0, 20, 10), 3, 3, CCW)

	assert.InDelta(t, cw.Length(), ccw.Length(), 0.05)

	cwBox := cw.BoundingBoxApprox()
	ccwBox := ccw.BoundingBoxApprox()
	assert.InDelta(t, cwBox.Min.X, ccwBox.Min.X, 0.05)
	assert.InDelta(t, cwBox.Max.X, ccwBox.Max.X, 0.05)
}

func TestAddRoundRectFallsBackToAddRectWhenRadiusIsZero(t *testing.T) {
	rr := New()
	rr.AddRoundRect(geom.Rect[float32](0, 0, 10, 10), 0, 0, CW)
	rect := New()
	rect.AddRect(geom.Rect[float32](0, 0, 10, 10), CW)

	assert.InDelta(t, rect.Length(), rr.Length(), 0.001)
}

func TestTransformTranslatesPoints(t *testing.T) {
	p := New()
	p.AddRect(geom.Rect[float32](0, 0, 10, 10), CW)
	box := p.BoundingBoxApprox()

	p.Transform(math32.Translate2D(5, 5))
	moved := p.BoundingBoxApprox()

	assert.InDelta(t, box.Min.X+5, moved.Min.X, 0.001)
	assert.InDelta(t, box.Min.Y+5, moved.Min.Y, 0.001)
}

func TestCloneIsIndependent(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt[float32](0, 0))
	p.LineTo(geom.Pt[float32](10, 0))

	c := p.Clone()
	p.LineTo(geom.Pt[float32](10, 10))

	assert.InDelta(t, float32(10), c.Length(), 0.001)
	assert.InDelta(t, float32(20), p.Length(), 0.001)
}

func TestAddPathTransformedAppendsScaledCopy(t *testing.T) {
	base := New()
	base.AddRect(geom.Rect[float32](0, 0, 10, 10), CW)

	dst := New()
	dst.AddPathTransformed(base, math32.Scale2D(2, 2))

	box := dst.BoundingBoxApprox()
	assert.InDelta(t, float32(20), box.Width(), 0.001)
	assert.InDelta(t, float32(20), box.Height(), 0.001)
}

func TestDashedEmptyPatternReturnsUnchangedClone(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt[float32](0, 0))
	p.LineTo(geom.Pt[float32](10, 0))

	d := p.Dashed(nil, 0)
	assert.InDelta(t, p.Length(), d.Length(), 0.001)
}

func TestDashedProducesShorterTotalLength(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt[float32](0, 0))
	p.LineTo(geom.Pt[float32](100, 0))

	d := p.Dashed([]float32{10, 10}, 0)
	assert.Greater(t, p.Length(), d.Length())
	assert.InDelta(t, float32(50), d.Length(), 1)
}

func TestRasterizeFillProducesOpaqueInterior(t *testing.T) {
	p := New()
	p.AddRect(geom.Rect[float32](0, 0, 10, 10), CW)

	rp, err := Rasterize(p, AsFill(FillParams{Rule: Winding}), geom.Rect(-100, -100, 100, 100))
	assert.NoError(t, err)
	assert.NotNil(t, rp.Sprite)
	assert.Equal(t, geom.Sz(10, 10), rp.Bounds.Size())

	center := rp.Sprite.Bytes[5*10+5]
	assert.Equal(t, uint8(255), center)
}

func TestRasterizeClampsToClipRect(t *testing.T) {
	p := New()
	p.AddRect(geom.Rect[float32](0, 0, 10, 10), CW)

	rp, err := Rasterize(p, AsFill(FillParams{Rule: Winding}), geom.Rect(0, 0, 4, 4))
	assert.NoError(t, err)
	assert.Equal(t, geom.Sz(4, 4), rp.Bounds.Size())
}

func TestRasterizeEmptyClipReturnsNilSprite(t *testing.T) {
	p := New()
	p.AddRect(geom.Rect[float32](0, 0, 10, 10), CW)

	rp, err := Rasterize(p, AsFill(FillParams{Rule: Winding}), geom.Rect(100, 100, 200, 200))
	assert.NoError(t, err)
	assert.Nil(t, rp.Sprite)
}

func TestRasterizeStrokeProducesHollowInterior(t *testing.T) {
	p := New()
	p.AddRect(geom.Rect[float32](0, 0, 20, 20), CW)

	rp, err := Rasterize(p, AsStroke(StrokeParams{StrokeWidth: 2, JoinStyle: JoinMiter, MiterLimit: 4}), geom.Rect(-100, -100, 100, 100))
	assert.NoError(t, err)
	assert.NotNil(t, rp.Sprite)

	w := rp.Bounds.Width()
	toLocal := func(x, y int) int { return (y-rp.Bounds.Min.Y)*w + (x - rp.Bounds.Min.X) }
	center := rp.Sprite.Bytes[toLocal(10, 10)]
	edge := rp.Sprite.Bytes[toLocal(10, 0)]
	assert.Equal(t, uint8(0), center, "stroke of a rect must leave the interior uncovered")
	assert.Equal(t, uint8(255), edge, "stroke must cover pixels along the outline")
}

func TestStrokeRoundCapExtendsBeyondEndpoint(t *testing.T) {
	p := New()
	p.MoveTo(geom.Pt[float32](10, 10))
	p.LineTo(geom.Pt[float32](30, 10))

	flat := strokeToFill(p, StrokeParams{StrokeWidth: 4, CapStyle: CapFlat})
	round := strokeToFill(p, StrokeParams{StrokeWidth: 4, CapStyle: CapRound})

	assert.Greater(t, round.BoundingBoxApprox().Width(), flat.BoundingBoxApprox().Width())
}
