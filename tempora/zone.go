// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

import (
	"fmt"
	"time"

	// Compile the IANA rule database into the binary so zone lookup
	// never depends on host tzdata.
	_ "time/tzdata"
)

// A ZonedView is the projection of an Instant through one timezone's
// offset rules: the local calendar and clock fields, plus the UTC
// offset in force at that exact instant. Views are derived values;
// they are recomputed on demand and hold no identity of their own,
// because a zone's offset is not a constant (DST transitions).
type ZonedView struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int // retained sub-second fraction

	Weekday time.Weekday
	YearDay int // 1-366
	ISOYear int
	ISOWeek int

	Offset int    // seconds east of UTC at this instant
	Zone   string // abbreviation, e.g. "CEST"

	src Instant
}

// zoneRegistry holds every zone name this build supports, preloaded at
// startup and read-only thereafter; concurrent readers need no lock.
var zoneRegistry = func() map[string]*time.Location {
	m := make(map[string]*time.Location, len(zoneNames))
	for _, name := range zoneNames {
		loc, err := time.LoadLocation(name)
		if err != nil {
			// A name missing from the compiled database must not be
			// listed as supported.
			continue
		}
		m[name] = loc
	}
	return m
}()

// lookupZone resolves a registry name, reporting ErrUnknownTimezone
// (with a nearest-name hint when one is close) for anything else.
func lookupZone(name string) (*time.Location, error) {
	if loc, ok := zoneRegistry[name]; ok {
		return loc, nil
	}
	if hint := nearestZone(name); hint != "" {
		return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownTimezone, name, hint)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownTimezone, name)
}

// In projects i through the named timezone's rules. The underlying
// count is untouched; only the civil fields and offset are derived.
// An unregistered name reports ErrUnknownTimezone.
func (i Instant) In(zone string) (ZonedView, error) {
	loc, err := lookupZone(zone)
	if err != nil {
		return ZonedView{}, err
	}
	return viewOf(i, loc), nil
}

// Fields projects i through its own presentation timezone.
func (i Instant) Fields() ZonedView {
	return viewOf(i, i.Location())
}

func viewOf(i Instant, loc *time.Location) ZonedView {
	t := time.Unix(i.sec, int64(i.nsec)).In(loc)
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	isoYear, isoWeek := t.ISOWeek()
	abbrev, offset := t.Zone()
	return ZonedView{
		Year:       year,
		Month:      month,
		Day:        day,
		Hour:       hour,
		Minute:     min,
		Second:     sec,
		Nanosecond: t.Nanosecond(),
		Weekday:    t.Weekday(),
		YearDay:    t.YearDay(),
		ISOYear:    isoYear,
		ISOWeek:    isoWeek,
		Offset:     offset,
		Zone:       abbrev,
		src:        i,
	}
}

// Instant returns the instant this view was derived from, exactly:
// projection loses no precision, so a view taken in any zone recovers
// the original canonical count.
func (v ZonedView) Instant() Instant { return v.src }

// String renders the view's local fields with its UTC offset,
// e.g. "2014-09-24 17:23:10 +0200 CEST".
func (v ZonedView) String() string {
	sign := '+'
	off := v.Offset
	if off < 0 {
		sign = '-'
		off = -off
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d %c%02d%02d %s",
		v.Year, int(v.Month), v.Day, v.Hour, v.Minute, v.Second,
		sign, off/3600, off%3600/60, v.Zone)
}

// Timezones returns the supported timezone identifiers in lexical
// order. The slice is a copy; callers may keep or mutate it.
func Timezones() []string {
	names := make([]string, 0, len(zoneRegistry))
	for _, name := range zoneNames {
		if _, ok := zoneRegistry[name]; ok {
			names = append(names, name)
		}
	}
	return names
}
