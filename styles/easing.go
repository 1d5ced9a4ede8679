// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "github.com/glimmerui/glimmer/math32"

// EasingFunc reshapes a transition's linear progress t (0 to 1) into the
// eased progress used to mix start and stop values.
type EasingFunc func(t float32) float32

// Linear performs no easing.
func Linear(t float32) float32 { return t }

func EaseInSine(t float32) float32  { return 1 - math32.Cos(t*math32.Pi/2) }
func EaseOutSine(t float32) float32 { return math32.Sin(t * math32.Pi / 2) }
func EaseInOutSine(t float32) float32 {
	return -(math32.Cos(math32.Pi*t) - 1) / 2
}

func EaseInQuad(t float32) float32  { return t * t }
func EaseOutQuad(t float32) float32 { return 1 - (1-t)*(1-t) }
func EaseInOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math32.Pow(-2*t+2, 2)/2
}

func EaseInCubic(t float32) float32  { return t * t * t }
func EaseOutCubic(t float32) float32 { return 1 - math32.Pow(1-t, 3) }
func EaseInOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math32.Pow(-2*t+2, 3)/2
}

// EaseInBack and EaseOutBack overshoot slightly before/after settling,
// using the standard c1/c3 constants from the reference easing formulas.
const backC1 = 1.70158
const backC3 = backC1 + 1

func EaseInBack(t float32) float32 {
	return backC3*t*t*t - backC1*t*t
}

func EaseOutBack(t float32) float32 {
	u := t - 1
	return 1 + backC3*u*u*u + backC1*u*u
}
