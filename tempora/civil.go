// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

import (
	"fmt"
	"time"
)

// A CivilDate is a calendar day with no time-of-day and no timezone,
// held as a count of days since 1970-01-01. The zero value is the
// epoch day itself.
type CivilDate struct {
	days int64
}

// maxCivilDays bounds the day count so that days*86400 always fits in
// an int64 second count.
const maxCivilDays = (1<<63 - 1) / 86400

// DateOf returns the civil date for the given calendar fields, or
// ErrOutOfRange if they do not name a real day.
func DateOf(year int, month time.Month, day int) (CivilDate, error) {
	if err := checkDate(year, month, day); err != nil {
		return CivilDate{}, err
	}
	// Midnight UTC is always an exact multiple of 86400 seconds.
	sec := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix()
	return CivilDate{days: sec / 86400}, nil
}

// Days returns the signed day count since the epoch.
func (d CivilDate) Days() int64 { return d.days }

// Date returns the calendar fields of d.
func (d CivilDate) Date() (year int, month time.Month, day int) {
	return time.Unix(d.days*86400, 0).UTC().Date()
}

// Weekday returns the day of the week of d.
func (d CivilDate) Weekday() time.Weekday {
	return time.Unix(d.days*86400, 0).UTC().Weekday()
}

// AddDays returns the day n days after d (before, if n is negative).
// The result is always a valid calendar day; a count beyond the
// representable range reports ErrRangeOverflow.
func (d CivilDate) AddDays(n int64) (CivilDate, error) {
	days, ok := addInt64(d.days, n)
	if !ok || days > maxCivilDays || days < -maxCivilDays {
		return CivilDate{}, fmt.Errorf("add %d days to %s: %w", n, d, ErrRangeOverflow)
	}
	return CivilDate{days: days}, nil
}

// Midnight returns the instant at 00:00:00 UTC on d, with UTC
// presentation. It is the bridge from day arithmetic to instant
// arithmetic: fractional-day offsets must be applied to an Instant,
// since the fraction encodes time-of-day a CivilDate cannot hold.
func (d CivilDate) Midnight() Instant {
	return Instant{sec: d.days * 86400}
}

// Equal reports whether d and e are the same day.
func (d CivilDate) Equal(e CivilDate) bool { return d.days == e.days }

// Before reports whether d precedes e.
func (d CivilDate) Before(e CivilDate) bool { return d.days < e.days }

// After reports whether d follows e.
func (d CivilDate) After(e CivilDate) bool { return d.days > e.days }

// String renders d in the canonical YYYY-MM-DD form.
func (d CivilDate) String() string {
	year, month, day := d.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}
