// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-4)

func tolAssertEqualVector(t *testing.T, vt, va Vector2, tols ...float32) {
	tol := standardTol
	if len(tols) == 1 {
		tol = tols[0]
	}
	assert.InDelta(t, vt.X, va.X, float64(tol))
	assert.InDelta(t, vt.Y, va.Y, float64(tol))
}

func tolAssertEqualMatrix2(t *testing.T, vt, va Matrix2, tols ...float32) {
	tol := standardTol
	if len(tols) == 1 {
		tol = tols[0]
	}
	assert.InDelta(t, vt.XX, va.XX, float64(tol))
	assert.InDelta(t, vt.YX, va.YX, float64(tol))
	assert.InDelta(t, vt.XY, va.XY, float64(tol))
	assert.InDelta(t, vt.YY, va.YY, float64(tol))
	assert.InDelta(t, vt.X0, va.X0, float64(tol))
	assert.InDelta(t, vt.Y0, va.Y0, float64(tol))
}

func TestMatrix2(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	rot90 := DegToRad(90)
	rot45 := DegToRad(45)

	assert.Equal(t, vx, Identity3().MulPoint(vx))
	assert.Equal(t, vy, Identity3().MulPoint(vy))
	assert.Equal(t, vxy, Identity3().MulPoint(vxy))

	assert.Equal(t, vxy, Translate2D(1, 1).MulPoint(v0))
	assert.Equal(t, vxy.MulScalar(2), Scale2D(2, 2).MulPoint(vxy))

	tolAssertEqualVector(t, vy, Rotate2D(rot90).MulPoint(vx))
	tolAssertEqualVector(t, vx, Rotate2D(-rot90).MulPoint(vy))
	tolAssertEqualVector(t, vxy.Normal(), Rotate2D(rot45).MulPoint(vx))
	tolAssertEqualVector(t, vxy.Normal(), Rotate2D(-rot45).MulPoint(vy))

	tolAssertEqualVector(t, vy, Rotate2D(-rot90).Inverse().MulPoint(vx))
	tolAssertEqualVector(t, vx, Rotate2D(rot90).Inverse().MulPoint(vy))

	tolAssertEqualVector(t, vxy, Rotate2D(-rot45).Mul(Rotate2D(rot45)).MulPoint(vxy))

	assert.InDelta(t, -rot90, Rotate2D(-rot90).ExtractRot(), float64(standardTol))
	assert.InDelta(t, rot45, Rotate2D(rot45).ExtractRot(), float64(standardTol))

	// 1,0 -> scale(2) = 2,0 -> rotate 90 = 0,2 -> trans 1,1 -> 1,3
	// multiplication order is *reverse* of "logical" order:
	tolAssertEqualVector(t, Vec2(1, 3), Translate2D(1, 1).Mul(Rotate2D(rot90)).Mul(Scale2D(2, 2)).MulPoint(vx))
}

func TestMatrix2SetString(t *testing.T) {
	tests := []struct {
		str     string
		wantErr bool
		want    Matrix2
	}{
		{str: "none", want: Identity2()},
		{str: "matrix(1, 2, 3, 4, 5, 6)", want: Matrix2{1, 2, 3, 4, 5, 6}},
		{str: "translate(1, 2)", want: Matrix2{XX: 1, YX: 0, XY: 0, YY: 1, X0: 1, Y0: 2}},
		{str: "invalid(1, 2)", wantErr: true, want: Identity2()},
	}
	for _, tt := range tests {
		a := &Matrix2{}
		err := a.SetString(tt.str)
		if tt.wantErr {
			assert.Error(t, err, tt.str)
		} else {
			assert.NoError(t, err, tt.str)
		}
		assert.Equal(t, tt.want, *a, tt.str)
	}
}

func TestMatrix2String(t *testing.T) {
	tests := []struct {
		matrix Matrix2
		want   string
	}{
		{matrix: Identity2(), want: "none"},
		{matrix: Matrix2{XX: 1, YX: 2, XY: 3, YY: 4, X0: 5, Y0: 6}, want: "matrix(1,2,3,4,5,6)"},
		{matrix: Matrix2{XX: 2, XY: 0, YX: 0, YY: 2, X0: 0, Y0: 0}, want: "scale(2,2)"},
		{matrix: Matrix2{XX: 1, XY: 0, YX: 0, YY: 1, X0: 1, Y0: 2}, want: "translate(1,2)"},
		{matrix: Matrix2{XX: 2, XY: 0, YX: 0, YY: 2, X0: 1, Y0: 2}, want: "translate(1,2) scale(2,2)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.matrix.String())
	}
}

func TestMatrix2Canvas(t *testing.T) {
	p := Vector2{3, 4}
	rot90 := DegToRad(90)
	tolAssertEqualVector(t, Vector2{5.0, 6.0}, Identity2().Translate(2.0, 2.0).MulPoint(p))
	tolAssertEqualVector(t, Vector2{6.0, 8.0}, Identity2().Scale(2.0, 2.0).MulPoint(p))
	tolAssertEqualVector(t, Vector2{3.0, -4.0}, Identity2().Scale(1.0, -1.0).MulPoint(p))
	tolAssertEqualVector(t, Vector2{7.0, 4.0}, Identity2().Shear(1.0, 0.0).MulPoint(p))
	tolAssertEqualVector(t, p.Rot90CCW(), Identity2().Rotate(rot90).MulPoint(p))
	tolAssertEqualVector(t, p.Rot90CW(), Identity2().Rotate(rot90).Transpose().MulPoint(p))
	tolAssertEqualMatrix2(t, Identity2().Scale(0.5, 0.25), Identity2().Scale(2.0, 4.0).Inverse())
	tolAssertEqualMatrix2(t, Identity2().Rotate(-rot90), Identity2().Rotate(rot90).Inverse())

	x, y := Identity2().Translate(p.X, p.Y).Pos()
	assert.Equal(t, p.X, x)
	assert.Equal(t, p.Y, y)
}

func TestMatrix2Det(t *testing.T) {
	assert.Equal(t, float32(1), Identity2().Det())
	assert.Equal(t, float32(4), Scale2D(2, 2).Det())
}
