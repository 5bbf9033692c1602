// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"go.tempora.net/tempora"
)

func mustDate(t *testing.T, year int, month time.Month, day, hour, min, sec, nsec int, zone string) tempora.Instant {
	t.Helper()
	i, err := tempora.Date(year, month, day, hour, min, sec, nsec, zone)
	if err != nil {
		t.Fatalf("Date(%d, %v, %d, ...): %v", year, month, day, err)
	}
	return i
}

func TestInstantOrdering(t *testing.T) {
	a := tempora.Unix(100, 0)
	b := tempora.Unix(100, 1)
	c := tempora.Unix(101, 0)

	if !a.Before(b) || !b.Before(c) || !a.Before(c) {
		t.Errorf("ordering is not consistent with the underlying count")
	}
	if !c.After(a) || a.After(b) {
		t.Errorf("After disagrees with Before")
	}
	if got := a.Compare(b); got != -1 {
		t.Errorf("Compare = %d, want -1", got)
	}
	if got := c.Compare(a); got != +1 {
		t.Errorf("Compare = %d, want +1", got)
	}
	if got := a.Compare(tempora.Unix(100, 0)); got != 0 {
		t.Errorf("Compare = %d, want 0", got)
	}
}

func TestInstantEqualityIgnoresPresentationZone(t *testing.T) {
	utc := mustDate(t, 2014, time.September, 24, 15, 23, 10, 0, "UTC")
	tokyo := mustDate(t, 2014, time.September, 25, 0, 23, 10, 0, "Asia/Tokyo")

	if !utc.Equal(tokyo) {
		t.Errorf("instants %v and %v denote the same point but are not Equal", utc, tokyo)
	}
	if utc.Location() == tokyo.Location() {
		t.Errorf("presentation zones should differ")
	}
}

func TestUnixNormalization(t *testing.T) {
	for _, test := range []struct {
		sec, nsec    int64
		wantSec      int64
		wantNanosecs int
	}{
		{0, 0, 0, 0},
		{10, 1e9 + 5, 11, 5},
		{10, -1, 9, 1e9 - 1},
		{0, -5e8, -1, 5e8},
		{10, 3e9, 13, 0},
	} {
		i := tempora.Unix(test.sec, test.nsec)
		if i.Unix() != test.wantSec || i.Nanosecond() != test.wantNanosecs {
			t.Errorf("Unix(%d, %d) = (%d, %d), want (%d, %d)",
				test.sec, test.nsec, i.Unix(), i.Nanosecond(), test.wantSec, test.wantNanosecs)
		}
	}
}

func TestAddSecondsFractionalRollover(t *testing.T) {
	// An instant at T+0.5s moved by 0.6s must land exactly at T+1.1s:
	// the fraction rolls over into the next whole second.
	base := tempora.Unix(1411572190, 0)
	half, err := base.AddSeconds(0.5)
	if err != nil {
		t.Fatal(err)
	}
	got, err := half.AddSeconds(0.6)
	if err != nil {
		t.Fatal(err)
	}
	if got.Unix() != base.Unix()+1 || got.Nanosecond() != 100000000 {
		t.Errorf("T+0.5s + 0.6s = (%d, %d), want (%d, 100000000)",
			got.Unix(), got.Nanosecond(), base.Unix()+1)
	}
}

func TestAddSecondsAssociativity(t *testing.T) {
	i := tempora.Unix(1411572190, 250000000)
	// Sums of dyadic fractions are exact in both float64 and the
	// nanosecond representation.
	for _, test := range []struct{ a, b float64 }{
		{0.25, 0.75},
		{1.5, 2.25},
		{-3.5, 1.25},
		{86400.125, -0.125},
		{-0.5, -0.625},
	} {
		viaTwo, err := i.AddSeconds(test.a)
		if err != nil {
			t.Fatal(err)
		}
		viaTwo, err = viaTwo.AddSeconds(test.b)
		if err != nil {
			t.Fatal(err)
		}
		viaOne, err := i.AddSeconds(test.a + test.b)
		if err != nil {
			t.Fatal(err)
		}
		if !viaTwo.Equal(viaOne) {
			t.Errorf("(i+%v)+%v = %v.%09d, i+(%v+%v) = %v.%09d",
				test.a, test.b, viaTwo.Unix(), viaTwo.Nanosecond(),
				test.a, test.b, viaOne.Unix(), viaOne.Nanosecond())
		}
	}
}

func TestAddSecondsNegative(t *testing.T) {
	i := tempora.Unix(100, 250000000)
	got, err := i.AddSeconds(-0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got.Unix() != 99 || got.Nanosecond() != 750000000 {
		t.Errorf("100.25 - 0.5 = (%d, %d), want (99, 750000000)", got.Unix(), got.Nanosecond())
	}
}

func TestAddSecondsErrors(t *testing.T) {
	i := tempora.Unix(0, 0)
	for _, s := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := i.AddSeconds(s); !errors.Is(err, tempora.ErrOutOfRange) {
			t.Errorf("AddSeconds(%v) error = %v, want ErrOutOfRange", s, err)
		}
	}

	big := tempora.Unix(math.MaxInt64-10, 0)
	if _, err := big.AddSeconds(100); !errors.Is(err, tempora.ErrRangeOverflow) {
		t.Errorf("AddSeconds overflow error = %v, want ErrRangeOverflow", err)
	}
	if _, err := i.AddSeconds(1e19); !errors.Is(err, tempora.ErrRangeOverflow) {
		t.Errorf("AddSeconds(1e19) error = %v, want ErrRangeOverflow", err)
	}
	small := tempora.Unix(math.MinInt64+10, 0)
	if _, err := small.AddSeconds(-100); !errors.Is(err, tempora.ErrRangeOverflow) {
		t.Errorf("AddSeconds underflow error = %v, want ErrRangeOverflow", err)
	}
}

func TestCivilDateArithmetic(t *testing.T) {
	d, err := tempora.DateOf(2014, time.January, 1)
	if err != nil {
		t.Fatal(err)
	}
	got, err := d.AddDays(10)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "2014-01-11" {
		t.Errorf("2014-01-01 + 10 days = %v, want 2014-01-11", got)
	}

	// Crossing a leap-year February.
	leap, err := tempora.DateOf(2016, time.February, 28)
	if err != nil {
		t.Fatal(err)
	}
	next, err := leap.AddDays(1)
	if err != nil {
		t.Fatal(err)
	}
	if next.String() != "2016-02-29" {
		t.Errorf("2016-02-28 + 1 day = %v, want 2016-02-29", next)
	}

	if _, err := d.AddDays(math.MaxInt64); !errors.Is(err, tempora.ErrRangeOverflow) {
		t.Errorf("AddDays(MaxInt64) error = %v, want ErrRangeOverflow", err)
	}
}

func TestDateOfDomain(t *testing.T) {
	for _, test := range []struct {
		year  int
		month time.Month
		day   int
	}{
		{2014, 13, 1},
		{2014, 0, 1},
		{2014, time.February, 30},
		{2015, time.February, 29}, // not a leap year
		{2014, time.September, 31},
		{2014, time.September, 0},
	} {
		if d, err := tempora.DateOf(test.year, test.month, test.day); !errors.Is(err, tempora.ErrOutOfRange) {
			t.Errorf("DateOf(%d, %d, %d) = %v, %v; want ErrOutOfRange",
				test.year, int(test.month), test.day, d, err)
		}
	}
}

func TestFromDayOffsets(t *testing.T) {
	origin, err := tempora.DateOf(2014, time.January, 1)
	if err != nil {
		t.Fatal(err)
	}
	got, err := tempora.FromDayOffsets(origin, []int64{10, 22, 45})
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, d := range got {
		names = append(names, d.String())
	}
	want := []string{"2014-01-11", "2014-01-23", "2014-02-15"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("FromDayOffsets: unexpected results (-want +got):\n%s", diff)
	}
}

func TestFromDayOffsetsAllOrNothing(t *testing.T) {
	origin, err := tempora.DateOf(2014, time.January, 1)
	if err != nil {
		t.Fatal(err)
	}
	got, err := tempora.FromDayOffsets(origin, []int64{1, math.MaxInt64, 2})
	if !errors.Is(err, tempora.ErrRangeOverflow) {
		t.Fatalf("error = %v, want ErrRangeOverflow", err)
	}
	if got != nil {
		t.Errorf("partial results %v returned; the batch policy is all-or-nothing", got)
	}
}

func TestFromSecondOffsets(t *testing.T) {
	origin := mustDate(t, 2014, time.September, 24, 15, 23, 10, 0, "UTC")
	got, err := tempora.FromSecondOffsets(origin, []float64{0, 0.5, -1, 3600})
	if err != nil {
		t.Fatal(err)
	}
	wantSecs := []int64{origin.Unix(), origin.Unix(), origin.Unix() - 1, origin.Unix() + 3600}
	wantNanos := []int{0, 500000000, 0, 0}
	for k, i := range got {
		if i.Unix() != wantSecs[k] || i.Nanosecond() != wantNanos[k] {
			t.Errorf("offset #%d = (%d, %d), want (%d, %d)",
				k, i.Unix(), i.Nanosecond(), wantSecs[k], wantNanos[k])
		}
	}
}

func TestFromFractionalDayOffset(t *testing.T) {
	day, err := tempora.DateOf(2014, time.September, 24)
	if err != nil {
		t.Fatal(err)
	}
	// The origin of a fractional-day import must be a full Instant;
	// Midnight is the promotion from a bare day.
	noon, err := tempora.FromFractionalDayOffset(day.Midnight(), 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got := noon.String(); got != "2014-09-24 12:00:00" {
		t.Errorf("midnight + 0.5 day = %q, want 2014-09-24 12:00:00", got)
	}

	got, err := tempora.FromFractionalDayOffsets(day.Midnight(), []float64{0.25, 1, 1.75})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2014-09-24 06:00:00", "2014-09-25 00:00:00", "2014-09-25 18:00:00"}
	for k, i := range got {
		if i.String() != want[k] {
			t.Errorf("fractional offset #%d = %q, want %q", k, i, want[k])
		}
	}
}

func TestNowUsesNowFunc(t *testing.T) {
	old := tempora.NowFunc
	defer func() { tempora.NowFunc = old }()

	fixed := time.Date(2014, time.September, 24, 15, 23, 10, 42, time.UTC)
	tempora.NowFunc = func() time.Time { return fixed }

	i := tempora.Now()
	if i.Unix() != fixed.Unix() || i.Nanosecond() != 42 {
		t.Errorf("Now() = (%d, %d), want (%d, 42)", i.Unix(), i.Nanosecond(), fixed.Unix())
	}
}
