// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora_test

import (
	"testing"
	"time"

	"go.tempora.net/tempora"
)

func TestFormatVerbs(t *testing.T) {
	i := mustDate(t, 2014, time.September, 24, 15, 23, 10, 123456789, "UTC")
	for _, test := range []struct {
		layout, want string
	}{
		{"%Y-%m-%d %H:%M:%S", "2014-09-24 15:23:10"},
		{"%y", "14"},
		{"%d/%m/%y", "24/09/14"},
		{"%j", "267"},
		{"%G-W%V", "2014-W39"},
		{"%a %A", "Wed Wednesday"},
		{"%b %B", "Sep September"},
		{"%I:%M %p", "03:23 PM"},
		{"%u %w", "3 3"},
		{"%f", "123456"},
		{"%N", "123456789"},
		{"%z %Z", "+0000 UTC"},
		{"%s", "1411572190"},
		{"100%% organic", "100% organic"},
		{"no verbs at all", "no verbs at all"},
		{"%Q", "%Q"}, // unknown verbs pass through
		{"trailing %", "trailing %"},
	} {
		if got := i.Format(test.layout); got != test.want {
			t.Errorf("Format(%q) = %q, want %q", test.layout, got, test.want)
		}
	}
}

func TestFormatMidnightMeridiem(t *testing.T) {
	midnight := mustDate(t, 2014, time.September, 24, 0, 5, 0, 0, "UTC")
	if got := midnight.Format("%I %p"); got != "12 AM" {
		t.Errorf("midnight %%I %%p = %q, want \"12 AM\"", got)
	}
	noon := mustDate(t, 2014, time.September, 24, 12, 5, 0, 0, "UTC")
	if got := noon.Format("%I %p"); got != "12 PM" {
		t.Errorf("noon %%I %%p = %q, want \"12 PM\"", got)
	}
}

func TestFormatIn(t *testing.T) {
	i := mustDate(t, 2014, time.September, 24, 15, 23, 10, 0, "UTC")
	got, err := i.FormatIn("%H:%M %z %Z", "Europe/Paris")
	if err != nil {
		t.Fatal(err)
	}
	if got != "17:23 +0200 CEST" {
		t.Errorf("FormatIn = %q, want \"17:23 +0200 CEST\"", got)
	}
	if _, err := i.FormatIn("%H", "Nowhere/Special"); err == nil {
		t.Errorf("FormatIn with unknown zone succeeded")
	}
}

func TestStringPrec(t *testing.T) {
	i := mustDate(t, 2014, time.September, 24, 15, 23, 10, 123456789, "UTC")
	for _, test := range []struct {
		digits int
		want   string
	}{
		{0, "2014-09-24 15:23:10"},
		{1, "2014-09-24 15:23:10.1"},
		{3, "2014-09-24 15:23:10.123"},
		{9, "2014-09-24 15:23:10.123456789"},
		{-1, "2014-09-24 15:23:10"},
		{99, "2014-09-24 15:23:10.123456789"},
	} {
		if got := i.StringPrec(test.digits); got != test.want {
			t.Errorf("StringPrec(%d) = %q, want %q", test.digits, got, test.want)
		}
	}
	// A small fraction keeps its leading zeros.
	j := mustDate(t, 2014, time.September, 24, 15, 23, 10, 1000, "UTC")
	if got := j.StringPrec(9); got != "2014-09-24 15:23:10.000001000" {
		t.Errorf("StringPrec(9) = %q", got)
	}
}

// Property: formatting a strictly parsed canonical string reproduces
// it exactly at the default precision.
func TestStrictRoundTrip(t *testing.T) {
	for _, text := range []string{
		"2014-09-24 15:23:10",
		"1970-01-01 00:00:00",
		"1969-12-31 23:59:59",
		"2016-02-29 12:00:00",
		"9999-12-31 23:59:59",
	} {
		i, err := tempora.ParseStrict(text)
		if err != nil {
			t.Errorf("ParseStrict(%q): %v", text, err)
			continue
		}
		if got := i.String(); got != text {
			t.Errorf("format(parse(%q)) = %q", text, got)
		}
	}
}

func TestCivilDateFormat(t *testing.T) {
	d, err := tempora.DateOf(2014, time.September, 24)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Format("%A, %B %d"); got != "Wednesday, September 24" {
		t.Errorf("Format = %q, want \"Wednesday, September 24\"", got)
	}
	if d.String() != "2014-09-24" {
		t.Errorf("String = %q", d.String())
	}
	if d.Weekday() != time.Wednesday {
		t.Errorf("Weekday = %v", d.Weekday())
	}
}
