// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.tempora.net/syntax"
)

// ParseOptions configures the flexible parser. The zero value (and a
// nil *ParseOptions) selects the documented defaults.
type ParseOptions struct {
	// Zone names the timezone in which the civil fields are
	// interpreted, and becomes the result's presentation timezone.
	// Empty means UTC. Note the deliberate asymmetry with
	// ParseStrict, which defaults to the system-local zone.
	Zone string

	// PivotYear resolves two-digit years: a value v < PivotYear is
	// read as 20v, otherwise 19v. PivotYear <= 0 selects the default
	// pivot of 69 (so "68" is 2068 and "69" is 1969).
	PivotYear int
}

const defaultPivotYear = 69

// ParseStrict parses text in the exact canonical instant form
// "YYYY-MM-DD HH:MM:SS", optionally followed by a decimal fraction of
// seconds with up to nanosecond precision. Any other shape reports
// ErrFormatMismatch; a well-shaped field outside its domain reports
// ErrOutOfRange.
//
// The civil fields are interpreted in, and the result presents in,
// the system-local timezone; use ParseStrictIn to override. This is
// the documented counterpart to ParseWithOrder, which defaults to UTC.
func ParseStrict(text string) (Instant, error) {
	return parseStrict(text, time.Local)
}

// ParseStrictIn is ParseStrict with an explicit timezone in place of
// the system-local default.
func ParseStrictIn(text, zone string) (Instant, error) {
	loc, err := lookupZone(zone)
	if err != nil {
		return Instant{}, err
	}
	return parseStrict(text, loc)
}

func parseStrict(text string, loc *time.Location) (Instant, error) {
	if len(text) < 19 {
		return Instant{}, fmt.Errorf("%w: %q is not of the form YYYY-MM-DD HH:MM:SS", ErrFormatMismatch, text)
	}
	year, ok1 := fixedDigits(text[0:4])
	month, ok2 := fixedDigits(text[5:7])
	day, ok3 := fixedDigits(text[8:10])
	hour, ok4 := fixedDigits(text[11:13])
	min, ok5 := fixedDigits(text[14:16])
	sec, ok6 := fixedDigits(text[17:19])
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) ||
		text[4] != '-' || text[7] != '-' || text[10] != ' ' || text[13] != ':' || text[16] != ':' {
		return Instant{}, fmt.Errorf("%w: %q is not of the form YYYY-MM-DD HH:MM:SS", ErrFormatMismatch, text)
	}
	nsec := 0
	if len(text) > 19 {
		n, err := parseFraction(text[19:])
		if err != nil {
			return Instant{}, fmt.Errorf("%w: %q has a malformed fraction", ErrFormatMismatch, text)
		}
		nsec = n
	}
	if err := checkDate(year, time.Month(month), day); err != nil {
		return Instant{}, err
	}
	if err := checkClock(hour, min, sec); err != nil {
		return Instant{}, err
	}
	t := time.Date(year, time.Month(month), day, hour, min, sec, nsec, loc)
	return Instant{sec: t.Unix(), nsec: int32(nsec), loc: loc}, nil
}

// ParseCivil parses text in the exact canonical date form
// "YYYY-MM-DD". A CivilDate has no timezone, so there is nothing to
// default or override.
func ParseCivil(text string) (CivilDate, error) {
	if len(text) != 10 {
		return CivilDate{}, fmt.Errorf("%w: %q is not of the form YYYY-MM-DD", ErrFormatMismatch, text)
	}
	year, ok1 := fixedDigits(text[0:4])
	month, ok2 := fixedDigits(text[5:7])
	day, ok3 := fixedDigits(text[8:10])
	if !(ok1 && ok2 && ok3) || text[4] != '-' || text[7] != '-' {
		return CivilDate{}, fmt.Errorf("%w: %q is not of the form YYYY-MM-DD", ErrFormatMismatch, text)
	}
	return DateOf(year, time.Month(month), day)
}

// ParseWithOrder parses heterogeneous date/time text by positional
// assignment. The text is scanned into digit and letter runs (every
// other byte is a separator), and each run is matched against the
// next field named in order:
//
//   - a digit run becomes that field's value;
//   - a letter run naming a month (full or three-letter English name,
//     any case) fills the month field;
//   - the letter runs "am" and "pm" consume no field and apply the
//     12-hour rule to the hour field (12 AM is 0, 12 PM stays 12,
//     otherwise PM adds 12), in which case the parsed hour must be
//     between 1 and 12.
//
// A token surplus or deficit against order, or a letter run that is
// neither a month name nor a meridiem, reports ErrAmbiguousOrder:
// the parser never guesses. Field values outside their calendar or
// clock domain report ErrOutOfRange and are never clamped. Two-digit
// years are resolved by the pivot rule (see ParseOptions.PivotYear).
//
// Fields absent from order default to year 1970, month and day 1, and
// a zero clock. The civil fields are interpreted in opts.Zone (UTC by
// default), which also becomes the result's presentation timezone.
func ParseWithOrder(text string, order syntax.Order, opts *ParseOptions) (Instant, error) {
	var o ParseOptions
	if opts != nil {
		o = *opts
	}
	zone := o.Zone
	if zone == "" {
		zone = "UTC"
	}
	loc, err := lookupZone(zone)
	if err != nil {
		return Instant{}, err
	}
	pivot := o.PivotYear
	if pivot <= 0 {
		pivot = defaultPivotYear
	}

	fields := map[syntax.Field]int{
		syntax.Year:  1970,
		syntax.Month: 1,
		syntax.Day:   1,
	}
	const (
		noMeridiem = iota
		antem
		postm
	)
	meridiem := noMeridiem

	next := 0 // index into order of the next unfilled field
	for _, tok := range syntax.Scan(text) {
		if tok.Kind == syntax.Word {
			switch strings.ToLower(tok.Text) {
			case "am":
				meridiem = antem
				continue
			case "pm":
				meridiem = postm
				continue
			}
			month, ok := monthByName(tok.Text)
			if !ok {
				return Instant{}, fmt.Errorf("%w: unrecognized word %q in %q", ErrAmbiguousOrder, tok.Text, text)
			}
			if next >= len(order) || order[next] != syntax.Month {
				return Instant{}, fmt.Errorf("%w: month name %q where order %q expects %s", ErrAmbiguousOrder, tok.Text, order.String(), fieldOrNone(order, next))
			}
			fields[syntax.Month] = int(month)
			next++
			continue
		}
		if next >= len(order) {
			return Instant{}, fmt.Errorf("%w: %q has more tokens than order %q has fields", ErrAmbiguousOrder, text, order.String())
		}
		v, err := strconv.Atoi(tok.Text)
		if err != nil {
			return Instant{}, fmt.Errorf("%s value %q: %w", order[next], tok.Text, ErrOutOfRange)
		}
		if order[next] == syntax.Year && len(tok.Text) <= 2 {
			if v < pivot {
				v += 2000
			} else {
				v += 1900
			}
		}
		fields[order[next]] = v
		next++
	}
	if next != len(order) {
		return Instant{}, fmt.Errorf("%w: %q has fewer tokens than order %q has fields", ErrAmbiguousOrder, text, order.String())
	}

	if meridiem != noMeridiem {
		if !order.Contains(syntax.Hour) {
			return Instant{}, fmt.Errorf("%w: meridiem marker in %q but order %q has no hour field", ErrAmbiguousOrder, text, order.String())
		}
		h := fields[syntax.Hour]
		if h < 1 || h > 12 {
			return Instant{}, fmt.Errorf("12-hour clock value %d: %w", h, ErrOutOfRange)
		}
		if meridiem == antem && h == 12 {
			h = 0
		} else if meridiem == postm && h < 12 {
			h += 12
		}
		fields[syntax.Hour] = h
	}

	if err := checkDate(fields[syntax.Year], time.Month(fields[syntax.Month]), fields[syntax.Day]); err != nil {
		return Instant{}, err
	}
	if err := checkClock(fields[syntax.Hour], fields[syntax.Minute], fields[syntax.Second]); err != nil {
		return Instant{}, err
	}

	t := time.Date(fields[syntax.Year], time.Month(fields[syntax.Month]), fields[syntax.Day],
		fields[syntax.Hour], fields[syntax.Minute], fields[syntax.Second], 0, loc)
	return Instant{sec: t.Unix(), loc: loc}, nil
}

// Fixed orders bound by the convenience parsers.
var (
	orderYMD    = syntax.MustParseOrder("ymd")
	orderDMY    = syntax.MustParseOrder("dmy")
	orderMDY    = syntax.MustParseOrder("mdy")
	orderYMDHMS = syntax.MustParseOrder("ymd hms")
	orderDMYHMS = syntax.MustParseOrder("dmy hms")
	orderMDYHMS = syntax.MustParseOrder("mdy hms")
)

// The convenience parsers below bind a fixed field order to
// ParseWithOrder with default options. Each is exactly equivalent to
// calling ParseWithOrder with the literal order named in its doc
// string; there is no separate parsing logic.

// ParseYMD parses a date written year, month, day.
func ParseYMD(text string) (Instant, error) { return ParseWithOrder(text, orderYMD, nil) }

// ParseDMY parses a date written day, month, year.
func ParseDMY(text string) (Instant, error) { return ParseWithOrder(text, orderDMY, nil) }

// ParseMDY parses a date written month, day, year.
func ParseMDY(text string) (Instant, error) { return ParseWithOrder(text, orderMDY, nil) }

// ParseYMDHMS parses a date-time written year, month, day, hour,
// minute, second.
func ParseYMDHMS(text string) (Instant, error) { return ParseWithOrder(text, orderYMDHMS, nil) }

// ParseDMYHMS parses a date-time written day, month, year, hour,
// minute, second.
func ParseDMYHMS(text string) (Instant, error) { return ParseWithOrder(text, orderDMYHMS, nil) }

// ParseMDYHMS parses a date-time written month, day, year, hour,
// minute, second.
func ParseMDYHMS(text string) (Instant, error) { return ParseWithOrder(text, orderMDYHMS, nil) }

// fixedDigits converts an all-digit substring to an int.
func fixedDigits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// parseFraction converts ".d…" (1-9 digits) to nanoseconds.
func parseFraction(s string) (int, error) {
	if len(s) < 2 || len(s) > 10 || s[0] != '.' {
		return 0, fmt.Errorf("malformed fraction %q", s)
	}
	n, ok := fixedDigits(s[1:])
	if !ok {
		return 0, fmt.Errorf("malformed fraction %q", s)
	}
	for digits := len(s) - 1; digits < 9; digits++ {
		n *= 10
	}
	return n, nil
}

func fieldOrNone(order syntax.Order, i int) string {
	if i >= len(order) {
		return "no further fields"
	}
	return order[i].String()
}
