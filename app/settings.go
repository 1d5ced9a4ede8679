// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"encoding/json"

	"github.com/jinzhu/copier"
)

// DisplaySettings holds the serializable display/runtime options a host
// saves to disk and restores on startup. It is a plain JSON-tagged struct,
// the same shape the teacher's core/settings.go option structs use, rather
// than pulling in a config library — the surface here is small enough that
// one would be pure overhead, the same call the teacher makes for
// base/errors and base/atomiccounter.
type DisplaySettings struct {
	// DiscreteGPU prefers a discrete GPU over an integrated one when the
	// platform exposes both, at the cost of battery life.
	DiscreteGPU bool `json:"discreteGPU"`

	// SyncInterval is the number of vertical blanks to wait between
	// presents: 1 for standard vsync, 0 to present as fast as possible.
	SyncInterval int `json:"syncInterval"`

	// UIScale multiplies every logical-pixel size before it reaches the
	// layout engine, independent of the platform's own monitor scale.
	UIScale float32 `json:"uiScale"`

	// UseMonitorScale additionally folds the OS-reported per-monitor scale
	// factor into UIScale rather than rendering at a fixed logical size.
	UseMonitorScale bool `json:"useMonitorScale"`

	// BlueLightFilter shifts the rendered color temperature warmer, the
	// night-mode-style accessibility option.
	BlueLightFilter bool `json:"blueLightFilter"`

	// GlobalGamma is the gamma-correction exponent applied to final output
	// color, for displays whose native gamma curve differs from sRGB.
	GlobalGamma float32 `json:"globalGamma"`

	// SubPixelText enables sub-pixel (LCD) text positioning/antialiasing
	// instead of plain grayscale glyph rendering.
	SubPixelText bool `json:"subPixelText"`
}

// DefaultDisplaySettings returns the settings a fresh install starts with.
func DefaultDisplaySettings() DisplaySettings {
	return DisplaySettings{
		SyncInterval: 1,
		UIScale:      1,
		GlobalGamma:  1,
		SubPixelText: true,
	}
}

// Clone returns an independent copy of s, the snapshot a preferences dialog
// takes before editing so a Cancel button can restore it. Every field here
// is an exported scalar, so copier.Copy is a faithful deep copy rather than
// the no-op it would be against a struct built mostly of unexported fields.
func (s DisplaySettings) Clone() DisplaySettings {
	var out DisplaySettings
	copier.Copy(&out, &s)
	return out
}

// MarshalSettings serializes s for writing to the host's settings file.
func MarshalSettings(s DisplaySettings) ([]byte, error) {
	return json.MarshalIndent(s, "", "\t")
}

// UnmarshalSettings parses settings previously written by MarshalSettings,
// starting from DefaultDisplaySettings so a partial or older file leaves
// unmentioned fields at their default rather than zero value.
func UnmarshalSettings(data []byte) (DisplaySettings, error) {
	s := DefaultDisplaySettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return DisplaySettings{}, err
	}
	return s, nil
}
