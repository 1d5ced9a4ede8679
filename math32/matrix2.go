// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Matrix2 is a 2D affine transformation matrix, in row-major / CSS
// `matrix(a,b,c,d,e,f)` order:
//
//	| XX  XY  X0 |   | x |
//	| YX  YY  Y0 | * | y |
//	|  0   0   1 |   | 1 |
//
// This is the matrix stored in a [RenderState] command and used throughout
// the rasterizer, canvas, and atlas code for coordinate transforms.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns the identity transform.
func Identity2() Matrix2 { return Matrix2{XX: 1, YY: 1} }

// Identity3 is an alias for [Identity2], named for the 3x3 homogeneous
// form of a 2D affine transform.
func Identity3() Matrix2 { return Identity2() }

// Translate2D returns a translation matrix.
func Translate2D(x, y float32) Matrix2 { return Matrix2{XX: 1, YY: 1, X0: x, Y0: y} }

// Scale2D returns a scaling matrix.
func Scale2D(x, y float32) Matrix2 { return Matrix2{XX: x, YY: y} }

// Rotate2D returns a rotation matrix for angle radians, counter-clockwise
// when y points up (clockwise as seen on a y-down screen).
func Rotate2D(angle float32) Matrix2 {
	s, c := Sin(angle), Cos(angle)
	return Matrix2{XX: c, YX: s, XY: -s, YY: c}
}

// MulPoint transforms point p by m.
func (m Matrix2) MulPoint(p Vector2) Vector2 {
	return Vector2{
		X: m.XX*p.X + m.XY*p.Y + m.X0,
		Y: m.YX*p.X + m.YY*p.Y + m.Y0,
	}
}

// MulVector transforms a direction vector (ignoring translation) by m.
func (m Matrix2) MulVector(v Vector2) Vector2 {
	return Vector2{X: m.XX*v.X + m.XY*v.Y, Y: m.YX*v.X + m.YY*v.Y}
}

// Mul returns the composition m*o: applying the result to a point is
// equivalent to applying o first, then m.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	return Matrix2{
		XX: m.XX*o.XX + m.XY*o.YX,
		YX: m.YX*o.XX + m.YY*o.YX,
		XY: m.XX*o.XY + m.XY*o.YY,
		YY: m.YX*o.XY + m.YY*o.YY,
		X0: m.XX*o.X0 + m.XY*o.Y0 + m.X0,
		Y0: m.YX*o.X0 + m.YY*o.Y0 + m.Y0,
	}
}

// Translate returns m with an additional translation applied first (in
// the pre-transform, "local" frame): equivalent to m.Mul(Translate2D(x,y)).
func (m Matrix2) Translate(x, y float32) Matrix2 { return m.Mul(Translate2D(x, y)) }

// Scale returns m with an additional scale applied first.
func (m Matrix2) Scale(x, y float32) Matrix2 { return m.Mul(Scale2D(x, y)) }

// Rotate returns m with an additional rotation applied first.
func (m Matrix2) Rotate(angle float32) Matrix2 { return m.Mul(Rotate2D(angle)) }

// ScaleAbout returns m with a scale about the fixed point (cx,cy) applied first.
func (m Matrix2) ScaleAbout(sx, sy, cx, cy float32) Matrix2 {
	return m.Translate(cx, cy).Scale(sx, sy).Translate(-cx, -cy)
}

// RotateAbout returns m with a rotation about the fixed point (cx,cy) applied first.
func (m Matrix2) RotateAbout(angle, cx, cy float32) Matrix2 {
	return m.Translate(cx, cy).Rotate(angle).Translate(-cx, -cy)
}

// Shear returns m with a shear (sx, sy) applied first.
func (m Matrix2) Shear(sx, sy float32) Matrix2 {
	return m.Mul(Matrix2{XX: 1, YY: 1, XY: sx, YX: sy})
}

// Transpose returns the transpose of the 2x2 linear part of m (translation
// is zeroed).
func (m Matrix2) Transpose() Matrix2 {
	return Matrix2{XX: m.XX, YX: m.XY, XY: m.YX, YY: m.YY}
}

// Det returns the determinant of the 2x2 linear part of m.
func (m Matrix2) Det() float32 { return m.XX*m.YY - m.XY*m.YX }

// Inverse returns the inverse transform of m.
func (m Matrix2) Inverse() Matrix2 {
	det := m.Det()
	if det == 0 {
		return Identity2()
	}
	invDet := 1 / det
	xx := m.YY * invDet
	yx := -m.YX * invDet
	xy := -m.XY * invDet
	yy := m.XX * invDet
	x0 := -(xx*m.X0 + xy*m.Y0)
	y0 := -(yx*m.X0 + yy*m.Y0)
	return Matrix2{XX: xx, YX: yx, XY: xy, YY: yy, X0: x0, Y0: y0}
}

// ExtractRot returns the rotation angle (radians) of m's linear part,
// assuming no skew.
func (m Matrix2) ExtractRot() float32 { return Atan2(m.YX, m.XX) }

// Pos returns the translation component of m.
func (m Matrix2) Pos() (x, y float32) { return m.X0, m.Y0 }

// Decompose decomposes m into translate (tx,ty), rotation phi, scale
// (sx,sy), and shear angle theta, such that m ≈
// Translate2D(tx,ty).Rotate(phi).Mul(Matrix2{XX:sx,YY:sy}).Shear(tan(theta),0).
func (m Matrix2) Decompose() (tx, ty, phi, sx, sy, theta float32) {
	tx, ty = m.X0, m.Y0
	E := (m.XX + m.YY) / 2
	F := (m.XX - m.YY) / 2
	G := (m.YX + m.XY) / 2
	H := (m.YX - m.XY) / 2
	Q := Hypot(E, H)
	R := Hypot(F, G)
	sx = Q + R
	sy = Q - R
	a1 := Atan2(G, F)
	a2 := Atan2(H, E)
	phi = (a2 - a1) / 2
	theta = (a2 + a1) / 2
	return
}

// String renders m as a CSS-style transform function list, matching the
// teacher's SVG/CSS transform-attribute serialization.
func (m Matrix2) String() string {
	id := Identity2()
	if m == id {
		return "none"
	}
	if m.XY == 0 && m.YX == 0 {
		switch {
		case m.XX == 1 && m.YY == 1:
			return fmt.Sprintf("translate(%v,%v)", trimFloat(m.X0), trimFloat(m.Y0))
		case m.X0 == 0 && m.Y0 == 0:
			return fmt.Sprintf("scale(%v,%v)", trimFloat(m.XX), trimFloat(m.YY))
		default:
			return fmt.Sprintf("translate(%v,%v) scale(%v,%v)", trimFloat(m.X0), trimFloat(m.Y0), trimFloat(m.XX), trimFloat(m.YY))
		}
	}
	return fmt.Sprintf("matrix(%v,%v,%v,%v,%v,%v)", trimFloat(m.XX), trimFloat(m.YX), trimFloat(m.XY), trimFloat(m.YY), trimFloat(m.X0), trimFloat(m.Y0))
}

func trimFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// SetString parses a single CSS-style transform function ("none",
// "matrix(a,b,c,d,e,f)", "translate(x,y)", "scale(x,y)") into m. On
// error m is left as the identity.
func (m *Matrix2) SetString(s string) error {
	s = strings.TrimSpace(s)
	*m = Identity2()
	if s == "" || s == "none" {
		*m = Identity2()
		return nil
	}
	open := strings.IndexByte(s, '(')
	close := strings.LastIndexByte(s, ')')
	if open < 0 || close < open {
		return fmt.Errorf("math32: invalid transform %q", s)
	}
	fn := strings.TrimSpace(s[:open])
	args := strings.Split(s[open+1:close], ",")
	vals := make([]float32, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 32)
		if err != nil {
			return fmt.Errorf("math32: invalid transform argument %q: %w", a, err)
		}
		vals[i] = float32(v)
	}
	switch fn {
	case "matrix":
		if len(vals) != 6 {
			return fmt.Errorf("math32: matrix() wants 6 args, got %d", len(vals))
		}
		*m = Matrix2{vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]}
	case "translate":
		if len(vals) != 2 {
			return fmt.Errorf("math32: translate() wants 2 args, got %d", len(vals))
		}
		*m = Matrix2{XX: 1, YY: 1, X0: vals[0], Y0: vals[1]}
	case "scale":
		if len(vals) != 2 {
			return fmt.Errorf("math32: scale() wants 2 args, got %d", len(vals))
		}
		*m = Matrix2{XX: vals[0], YY: vals[1]}
	default:
		return fmt.Errorf("math32: unknown transform function %q", fn)
	}
	return nil
}

// Rot90CCW rotates v 90 degrees counter-clockwise.
func (v Vector2) Rot90CCW() Vector2 { return Vector2{X: -v.Y, Y: v.X} }

// Rot90CW rotates v 90 degrees clockwise.
func (v Vector2) Rot90CW() Vector2 { return Vector2{X: v.Y, Y: -v.X} }

// Rot rotates v by angle radians about the given center.
func (v Vector2) Rot(angle float32, center Vector2) Vector2 {
	return Rotate2D(angle).MulPoint(v.Sub(center)).Add(center)
}

// NaN returns a float32 NaN.
func NaN() float32 { return float32(math.NaN()) }

// IsNaN reports whether f is NaN.
func IsNaN(f float32) bool { return f != f }
