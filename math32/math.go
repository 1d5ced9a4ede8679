// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides float32 precision math and vector/matrix types
// for 2D geometry, built on [github.com/chewxy/math32] so callers never
// pay the float64 round-trip tax that [math] would impose.
package math32

import (
	"strconv"

	"github.com/chewxy/math32"
)

// Re-exported scalar functions, kept as thin aliases so call sites read
// math32.Sqrt(x) etc. without an extra import.
var (
	Sqrt  = math32.Sqrt
	Sin   = math32.Sin
	Cos   = math32.Cos
	Atan2 = math32.Atan2
	Abs   = math32.Abs
	Floor = math32.Floor
	Ceil  = math32.Ceil
	Round = math32.Round
	Mod   = math32.Mod
	Pow   = math32.Pow
	Hypot = math32.Hypot
)

const (
	Pi      = math32.Pi
	DegToRadFactor = Pi / 180
	RadToDegFactor = 180 / Pi
)

// Cbrt returns the cube root of x. chewxy/math32 has no native Cbrt, so
// this is Pow(x, 1/3) guarded for negative x (Pow rejects a fractional
// exponent on a negative base).
func Cbrt(x float32) float32 {
	if x < 0 {
		return -math32.Pow(-x, 1.0/3.0)
	}
	return math32.Pow(x, 1.0/3.0)
}

// DegToRad converts a number from degrees to radians.
func DegToRad(deg float32) float32 { return deg * DegToRadFactor }

// RadToDeg converts a number from radians to degrees.
func RadToDeg(rad float32) float32 { return rad * RadToDegFactor }

// Truncate rounds the given float32 to prec significant digits.
func Truncate(x float32, prec int) float32 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(float64(x), 'g', prec, 32), 32)
	return float32(v)
}

// Truncate64 rounds the given float64 to prec significant digits.
func Truncate64(x float64, prec int) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'g', prec, 64), 64)
	return v
}

func roundFloat64(x float64) float64 {
	if x < 0 {
		return -roundFloat64(-x)
	}
	i := float64(int64(x))
	if x-i >= 0.5 {
		return i + 1
	}
	return i
}

// WrapPi wraps a radian angle into the half-open range [-Pi, Pi).
func WrapPi(x float32) float32 {
	const twoPi = 2 * Pi
	m := math32.Mod(x+Pi, twoPi)
	if m < 0 {
		m += twoPi
	}
	return m - Pi
}

// Min returns the smaller of a and b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Clamp clamps x to the range [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	return Max(lo, Min(hi, x))
}

// IntMultiple rounds x to the nearest multiple of mod.
func IntMultiple(x, mod float32) float32 {
	return math32.Round(x/mod) * mod
}

// IntMultipleGE rounds x up to the nearest multiple of mod that is >= x.
func IntMultipleGE(x, mod float32) float32 {
	return math32.Ceil(x/mod) * mod
}

// WrapMax wraps x into the half-open range [0, max).
func WrapMax(x, max float32) float32 {
	m := math32.Mod(x, max)
	if m < 0 {
		m += max
	}
	return m
}

// WrapMinMax wraps x into the half-open range [min, max).
func WrapMinMax(x, min, max float32) float32 {
	return min + WrapMax(x-min, max-min)
}

// MinAngleDiff returns the signed angular difference a-b, wrapped into
// (-Pi, Pi], the shortest rotation taking b to a.
func MinAngleDiff(a, b float32) float32 {
	const twoPi = 2 * Pi
	m := math32.Mod(a-b+Pi, twoPi)
	if m <= 0 {
		m += twoPi
	}
	return m - Pi
}
