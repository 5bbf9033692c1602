// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month and weekday name tables. All name-producing format verbs and
// all name matching in the parser use English; numeric verbs carry no
// locale at all.
var longMonthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var longDayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// monthByName matches a full or three-letter English month name,
// case-insensitively.
func monthByName(name string) (time.Month, bool) {
	for i, m := range longMonthNames {
		if strings.EqualFold(name, m) || strings.EqualFold(name, m[:3]) {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

// String renders i canonically ("YYYY-MM-DD HH:MM:SS") in its
// presentation timezone with no fraction digits.
func (i Instant) String() string { return i.StringPrec(0) }

// StringPrec renders i canonically with the given number of fraction
// digits (0 through 9; values outside that range are treated as the
// nearer bound). Precision is an argument, not process state: two
// callers with different needs never interfere.
func (i Instant) StringPrec(digits int) string {
	v := i.Fields()
	s := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		v.Year, int(v.Month), v.Day, v.Hour, v.Minute, v.Second)
	if digits <= 0 {
		return s
	}
	if digits > 9 {
		digits = 9
	}
	frac := fmt.Sprintf("%09d", v.Nanosecond)
	return s + "." + frac[:digits]
}

// Format renders i in its presentation timezone according to a
// strftime-style layout; see ZonedView.Format for the verbs.
func (i Instant) Format(layout string) string {
	return i.Fields().Format(layout)
}

// FormatIn is Format in an explicit timezone.
func (i Instant) FormatIn(layout, zone string) (string, error) {
	v, err := i.In(zone)
	if err != nil {
		return "", err
	}
	return v.Format(layout), nil
}

// Format renders the view according to a strftime-style layout.
// Numeric verbs are fixed-width and locale-free; name verbs (%a %A %b
// %B) use the English tables. The verbs:
//
//	%Y  year, four digits       %H  hour 00-23
//	%y  year, last two digits   %I  hour 01-12
//	%G  ISO week-based year     %M  minute 00-59
//	%m  month 01-12             %S  second 00-59
//	%d  day of month 01-31      %f  fraction, six digits
//	%j  day of year 001-366     %N  fraction, nine digits
//	%V  ISO week 01-53          %p  AM or PM
//	%a  weekday, abbreviated    %u  weekday 1-7, Monday is 1
//	%A  weekday, full           %w  weekday 0-6, Sunday is 0
//	%b  month name, abbreviated %z  offset +hhmm
//	%B  month name, full        %Z  zone abbreviation
//	%s  seconds since the epoch %%  literal percent
//
// An unrecognized verb is copied through verbatim, per strftime
// convention.
func (v ZonedView) Format(layout string) string {
	var b strings.Builder
	b.Grow(len(layout) + 16)
	for i := 0; i < len(layout); i++ {
		if layout[i] != '%' || i+1 == len(layout) {
			b.WriteByte(layout[i])
			continue
		}
		i++
		switch layout[i] {
		case 'Y':
			fmt.Fprintf(&b, "%04d", v.Year)
		case 'y':
			fmt.Fprintf(&b, "%02d", ((v.Year%100)+100)%100)
		case 'G':
			fmt.Fprintf(&b, "%04d", v.ISOYear)
		case 'm':
			fmt.Fprintf(&b, "%02d", int(v.Month))
		case 'd':
			fmt.Fprintf(&b, "%02d", v.Day)
		case 'j':
			fmt.Fprintf(&b, "%03d", v.YearDay)
		case 'V':
			fmt.Fprintf(&b, "%02d", v.ISOWeek)
		case 'H':
			fmt.Fprintf(&b, "%02d", v.Hour)
		case 'I':
			h := v.Hour % 12
			if h == 0 {
				h = 12
			}
			fmt.Fprintf(&b, "%02d", h)
		case 'M':
			fmt.Fprintf(&b, "%02d", v.Minute)
		case 'S':
			fmt.Fprintf(&b, "%02d", v.Second)
		case 'f':
			fmt.Fprintf(&b, "%06d", v.Nanosecond/1000)
		case 'N':
			fmt.Fprintf(&b, "%09d", v.Nanosecond)
		case 'p':
			if v.Hour < 12 {
				b.WriteString("AM")
			} else {
				b.WriteString("PM")
			}
		case 'a':
			b.WriteString(longDayNames[v.Weekday][:3])
		case 'A':
			b.WriteString(longDayNames[v.Weekday])
		case 'b':
			b.WriteString(longMonthNames[v.Month-1][:3])
		case 'B':
			b.WriteString(longMonthNames[v.Month-1])
		case 'u':
			u := int(v.Weekday)
			if u == 0 {
				u = 7
			}
			b.WriteString(strconv.Itoa(u))
		case 'w':
			b.WriteString(strconv.Itoa(int(v.Weekday)))
		case 'z':
			sign := '+'
			off := v.Offset
			if off < 0 {
				sign = '-'
				off = -off
			}
			fmt.Fprintf(&b, "%c%02d%02d", sign, off/3600, off%3600/60)
		case 'Z':
			b.WriteString(v.Zone)
		case 's':
			b.WriteString(strconv.FormatInt(v.src.Unix(), 10))
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(layout[i])
		}
	}
	return b.String()
}

// Format renders d according to the same layout verbs as
// ZonedView.Format; clock and zone verbs see midnight UTC.
func (d CivilDate) Format(layout string) string {
	return d.Midnight().Format(layout)
}
