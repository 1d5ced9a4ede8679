// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides [Color], a component-type- and gamma-parameterized
// RGBA color, color-space conversion through package space, and CSS-like
// color string parsing ([Parse]).
package colors

import (
	"github.com/glimmerui/glimmer/colors/space"
	"github.com/glimmerui/glimmer/errors"
)

// Component is the set of types a [Color]'s channels can be stored as.
type Component interface {
	uint8 | uint16 | float32
}

// Gamma is a color's transfer-function tag. The teacher's C++ original
// carries this as a template non-type parameter (ColorGamma); Go has no
// non-type generic parameters, so it becomes an ordinary struct field
// instead, resolved against a caller-supplied linear-color flag rather than
// a process-wide global (see DESIGN.md's Global mutable state decision).
type Gamma uint8

const (
	// SRGB means the channels are always sRGB-gamma-encoded.
	SRGB Gamma = iota
	// DefaultGamma means the channels follow whatever the caller's
	// linear-color setting says: linear when true, sRGB-gamma when false.
	DefaultGamma
)

// AlphaMode says whether a [Color]'s RGB channels are premultiplied by its
// alpha channel.
type AlphaMode uint8

const (
	Straight AlphaMode = iota
	Premultiplied
)

// Color is an RGBA color whose channels are stored as T and whose gamma
// encoding is tagged by Gamma.
type Color[T Component] struct {
	R, G, B, A T
	Gamma      Gamma
}

// maxValue returns the maximum representable channel value for T: 1 for
// floating-point component types, the integer type's max otherwise.
func maxValue[T Component]() T {
	var probe any = T(0)
	switch probe.(type) {
	case float32:
		return T(1)
	default:
		var v T
		v--
		return v
	}
}

// New returns a Color with the given channels and [DefaultGamma].
func New[T Component](r, g, b, a T) Color[T] {
	return Color[T]{R: r, G: g, B: b, A: a, Gamma: DefaultGamma}
}

// Grey returns a grayscale color of intensity grey, fully opaque.
func Grey[T Component](grey T) Color[T] {
	return Color[T]{R: grey, G: grey, B: grey, A: maxValue[T](), Gamma: DefaultGamma}
}

// ColorSpace returns c's effective color space, resolving [DefaultGamma]
// against linearColor.
func (c Color[T]) ColorSpace(linearColor bool) space.Space {
	if c.Gamma == SRGB || !linearColor {
		return space.SRGBGamma
	}
	return space.SRGBLinear
}

// toFloat01 converts a channel value to the 0-1 range regardless of T.
func toFloat01[T Component](v T) float32 {
	var probe any = v
	switch x := probe.(type) {
	case float32:
		return x
	case uint8:
		return float32(x) / 255
	case uint16:
		return float32(x) / 65535
	default:
		return float32(v) / float32(maxValue[T]())
	}
}

func fromFloat01[T Component](v float32) T {
	var probe any = T(0)
	switch probe.(type) {
	case float32:
		return T(v)
	case uint8:
		return T(clamp01(v)*255 + 0.5)
	case uint16:
		return T(clamp01(v)*65535 + 0.5)
	default:
		return T(clamp01(v) * float32(maxValue[T]()))
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Trichromatic returns c's RGB channels as a [space.Trichromatic] in c's
// effective color space, dropping alpha.
func (c Color[T]) Trichromatic(linearColor bool) space.Trichromatic {
	sp := space.SRGBGamma
	if c.ColorSpace(linearColor) == space.SRGBLinear {
		sp = space.SRGBLinear
	}
	return space.New(sp, [3]float32{toFloat01(c.R), toFloat01(c.G), toFloat01(c.B)})
}

// ConvertSpace converts c's RGB channels to dst and back into T, preserving
// alpha and Gamma tag. dst must round-trip back through sRGB for the result
// to be stored losslessly in an 8-bit Color; out-of-gamut results are
// clamped per channel.
func ConvertSpace[T Component](c Color[T], dst space.Space, linearColor bool) Color[T] {
	tri := c.Trichromatic(linearColor)
	converted := space.Convert(tri, dst)
	back := space.Convert(converted, tri.Space)
	return Color[T]{
		R:     fromFloat01[T](back.V[0]),
		G:     fromFloat01[T](back.V[1]),
		B:     fromFloat01[T](back.V[2]),
		A:     c.A,
		Gamma: c.Gamma,
	}
}

// Mix interpolates between a and b by t∈[0,1]. When mode is [Straight], the
// interpolation happens in premultiplied space and the result is
// re-divided by its resulting alpha (returning a verbatim if the result's
// alpha is 0), matching how the teacher's wide-vector color arithmetic
// always premultiplies before blending and straightens after.
func Mix[T Component](t float32, a, b Color[T], mode AlphaMode) Color[T] {
	af := [4]float32{toFloat01(a.R), toFloat01(a.G), toFloat01(a.B), toFloat01(a.A)}
	bf := [4]float32{toFloat01(b.R), toFloat01(b.G), toFloat01(b.B), toFloat01(b.A)}

	if mode == Straight {
		af[0] *= af[3]
		af[1] *= af[3]
		af[2] *= af[3]
		bf[0] *= bf[3]
		bf[1] *= bf[3]
		bf[2] *= bf[3]
	}

	var m [4]float32
	for i := range m {
		m[i] = af[i] + (bf[i]-af[i])*t
	}

	if mode == Straight {
		if m[3] == 0 {
			return a
		}
		m[0] /= m[3]
		m[1] /= m[3]
		m[2] /= m[3]
	}

	return Color[T]{
		R:     fromFloat01[T](m[0]),
		G:     fromFloat01[T](m[1]),
		B:     fromFloat01[T](m[2]),
		A:     fromFloat01[T](m[3]),
		Gamma: a.Gamma,
	}
}

// Validate reports an [errors.Image] error if c's channel type cannot be
// stored by a pixel format the renderer backend understands (only u8, u16,
// f32 channels are supported; [Component] already restricts T to those, so
// this mainly guards custom named types with a different underlying kind).
func Validate[T Component](c Color[T]) error {
	var probe any = T(0)
	switch probe.(type) {
	case uint8, uint16, float32:
		return nil
	default:
		return errors.NewImage("colors.Validate", "unsupported color component type")
	}
}
