// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nptime provides Time, a plain (non-pointer) timestamp that can be
// copied, compared, and stored in a struct or behind an atomic value without
// carrying time.Time's monotonic-reading/Location pointer baggage. It is
// used for the cheap, frequently-copied timestamps a hit-test and gesture
// dispatcher keeps (last click time, hover-start time) and for glyph-run
// cache entry ages, where a real time.Time would pin a *Location and defeat
// simple value-equality checks.
package nptime

import "time"

// Time is a wall-clock timestamp stored as seconds and nanoseconds since the
// Unix epoch, in UTC. Its zero value is the Unix epoch.
type Time struct {
	Sec  int64
	NSec int32
}

// SetTime sets t from a standard time.Time.
func (t *Time) SetTime(tm time.Time) {
	t.Sec = tm.Unix()
	t.NSec = int32(tm.Nanosecond())
}

// Time converts t back to a standard time.Time, in UTC.
func (t Time) Time() time.Time {
	return time.Unix(t.Sec, int64(t.NSec)).UTC()
}

// Since returns the duration elapsed between t and now.
func (t Time) Since(now time.Time) time.Duration {
	return now.Sub(t.Time())
}

// IsZero reports whether t is the zero Time.
func (t Time) IsZero() bool { return t.Sec == 0 && t.NSec == 0 }
