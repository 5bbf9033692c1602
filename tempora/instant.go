// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tempora provides immutable date/time values anchored to the
// Unix epoch (1970-01-01T00:00:00 UTC): Instant, a fixed-point count of
// seconds with nanosecond fraction; CivilDate, a count of calendar days
// with no time-of-day; and ZonedView, an ephemeral projection of an
// Instant through an IANA timezone.
//
// All operations are pure: parsing, arithmetic, and formatting never
// mutate their operands and perform no I/O. The only process-wide state
// is the timezone rule database, compiled in via time/tzdata and never
// written after initialization, so values may be shared freely across
// goroutines.
package tempora // import "go.tempora.net/tempora"

import (
	"fmt"
	"math"
	"time"
)

// An Instant is a point on the universal timeline, held as a count of
// whole seconds since the Unix epoch plus a nanosecond fraction in
// [0, 1e9). The zero value is the epoch itself.
//
// An Instant additionally carries a presentation timezone, used by
// String, Format, and Fields when no explicit zone is given. The
// presentation timezone is cosmetic: it does not participate in
// Equal, Before, After, or Compare, which consider only the count.
type Instant struct {
	sec  int64
	nsec int32          // [0, 1e9)
	loc  *time.Location // presentation only; nil means UTC
}

// NowFunc generates the current time for Now. Exported so that
// embedders needing deterministic behavior can override it.
var NowFunc = time.Now

// Now returns the current instant with the local presentation timezone.
func Now() Instant {
	t := NowFunc()
	return Instant{sec: t.Unix(), nsec: int32(t.Nanosecond()), loc: t.Location()}
}

// Unix returns the instant sec seconds and nsec nanoseconds after the
// epoch, with UTC presentation. nsec may be outside [0, 1e9); it is
// normalized into the seconds count.
func Unix(sec, nsec int64) Instant {
	if nsec < 0 || nsec >= 1e9 {
		n := nsec / 1e9
		sec += n
		nsec -= n * 1e9
		if nsec < 0 {
			nsec += 1e9
			sec--
		}
	}
	return Instant{sec: sec, nsec: int32(nsec)}
}

// Date returns the instant with the given civil fields in the named
// timezone. Each field is checked against its calendar or clock domain;
// a violation reports ErrOutOfRange, and an unregistered zone reports
// ErrUnknownTimezone. The result's presentation timezone is the named
// zone.
func Date(year int, month time.Month, day, hour, min, sec, nsec int, zone string) (Instant, error) {
	if err := checkClock(hour, min, sec); err != nil {
		return Instant{}, err
	}
	if nsec < 0 || nsec >= 1e9 {
		return Instant{}, fmt.Errorf("nanosecond %d: %w", nsec, ErrOutOfRange)
	}
	if err := checkDate(year, month, day); err != nil {
		return Instant{}, err
	}
	loc, err := lookupZone(zone)
	if err != nil {
		return Instant{}, err
	}
	t := time.Date(year, month, day, hour, min, sec, nsec, loc)
	return Instant{sec: t.Unix(), nsec: int32(t.Nanosecond()), loc: loc}, nil
}

// Unix returns the number of whole seconds between the epoch and i.
// For instants before the epoch with a nonzero fraction this is the
// floor, consistent with the internal representation.
func (i Instant) Unix() int64 { return i.sec }

// Nanosecond returns the sub-second fraction of i in nanoseconds.
func (i Instant) Nanosecond() int { return int(i.nsec) }

// Location returns the presentation timezone of i (UTC if none was set).
func (i Instant) Location() *time.Location {
	if i.loc == nil {
		return time.UTC
	}
	return i.loc
}

// Equal reports whether i and j denote the same point on the timeline.
// The presentation timezone is ignored.
func (i Instant) Equal(j Instant) bool { return i.sec == j.sec && i.nsec == j.nsec }

// Before reports whether i precedes j on the timeline.
func (i Instant) Before(j Instant) bool {
	return i.sec < j.sec || i.sec == j.sec && i.nsec < j.nsec
}

// After reports whether i follows j on the timeline.
func (i Instant) After(j Instant) bool { return j.Before(i) }

// Compare returns -1, 0, or +1 according to whether i is before,
// equal to, or after j.
func (i Instant) Compare(j Instant) int {
	switch {
	case i.Before(j):
		return -1
	case j.Before(i):
		return +1
	}
	return 0
}

// AddSeconds returns the instant s seconds after i; s may be negative
// or fractional. The fraction is carried at nanosecond granularity, so
// an instant at .5s moved by .6s lands exactly at 1.1s past the
// original whole second. Non-finite s reports ErrOutOfRange; a result
// beyond the representable second count reports ErrRangeOverflow.
// The presentation timezone is preserved.
func (i Instant) AddSeconds(s float64) (Instant, error) {
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return Instant{}, fmt.Errorf("add %v seconds: %w", s, ErrOutOfRange)
	}
	whole := math.Floor(s)
	if whole >= math.MaxInt64 || whole < math.MinInt64 {
		return Instant{}, fmt.Errorf("add %v seconds: %w", s, ErrRangeOverflow)
	}
	nanos := int64(math.Round((s - whole) * 1e9)) // [0, 1e9]
	dsec := int64(whole)
	if nanos == 1e9 {
		nanos = 0
		if dsec == math.MaxInt64 {
			return Instant{}, fmt.Errorf("add %v seconds: %w", s, ErrRangeOverflow)
		}
		dsec++
	}
	nsec := int64(i.nsec) + nanos
	if nsec >= 1e9 {
		nsec -= 1e9
		if dsec == math.MaxInt64 {
			return Instant{}, fmt.Errorf("add %v seconds: %w", s, ErrRangeOverflow)
		}
		dsec++
	}
	sec, ok := addInt64(i.sec, dsec)
	if !ok {
		return Instant{}, fmt.Errorf("add %v seconds to %s: %w", s, i, ErrRangeOverflow)
	}
	return Instant{sec: sec, nsec: int32(nsec), loc: i.loc}, nil
}

// time materializes i as a stdlib time.Time in its presentation zone.
func (i Instant) time() time.Time {
	return time.Unix(i.sec, int64(i.nsec)).In(i.Location())
}

// addInt64 returns a+b and whether the sum did not overflow.
func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

// checkClock validates time-of-day fields.
func checkClock(hour, min, sec int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("hour %d: %w", hour, ErrOutOfRange)
	}
	if min < 0 || min > 59 {
		return fmt.Errorf("minute %d: %w", min, ErrOutOfRange)
	}
	if sec < 0 || sec > 59 {
		return fmt.Errorf("second %d: %w", sec, ErrOutOfRange)
	}
	return nil
}

// checkDate validates calendar fields, including month length.
func checkDate(year int, month time.Month, day int) error {
	if month < time.January || month > time.December {
		return fmt.Errorf("month %d: %w", int(month), ErrOutOfRange)
	}
	if day < 1 || day > daysIn(year, month) {
		return fmt.Errorf("day %d of %s %d: %w", day, month, year, ErrOutOfRange)
	}
	return nil
}

// daysIn returns the length of the given month.
func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
