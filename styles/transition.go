// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "github.com/glimmerui/glimmer/colors"

// disabledStart marks a [ColorTransition] that is not currently animating.
const disabledStart = -1

// ColorTransition holds a color property's current, animating value: the
// value callers read jumps immediately to Stop's target only when duration
// is zero; otherwise Current eases from Start to Stop across duration
// seconds of wall-clock frame time.
type ColorTransition struct {
	Current, start, stop colors.Color[float32]
	startTime             float32
}

// NewColorTransition returns a transition already settled at value.
func NewColorTransition(value colors.Color[float32]) ColorTransition {
	return ColorTransition{Current: value, start: value, stop: value, startTime: disabledStart}
}

// Set begins animating toward value over duration seconds (or jumps
// immediately if duration is 0 or value already equals Current). now is the
// current frame's start time in seconds. It reports whether anything
// changed, mirroring the widget setter's "skip if unchanged" rule.
func (tr *ColorTransition) Set(value colors.Color[float32], duration, now float32) bool {
	if duration == 0 {
		if value == tr.Current {
			return false
		}
		tr.Current = value
		tr.stop = value
		tr.startTime = disabledStart
		return true
	}
	tr.startTime = now
	tr.start = tr.Current
	tr.stop = value
	return true
}

// IsActive reports whether the transition is still animating.
func (tr *ColorTransition) IsActive() bool { return tr.startTime >= 0 }

// Tick advances Current toward Stop given the current frame time now,
// easing progress through easing and completing once duration has elapsed.
func (tr *ColorTransition) Tick(duration float32, easing EasingFunc, now float32) {
	if !tr.IsActive() {
		return
	}
	elapsed := now - tr.startTime
	if elapsed >= duration {
		tr.startTime = disabledStart
		tr.Current = tr.stop
		return
	}
	t := easing(elapsed / duration)
	tr.Current = colors.Mix(t, tr.start, tr.stop, colors.Premultiplied)
}
