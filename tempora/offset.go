// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

import "fmt"

// This file implements numeric imports: constructing values from an
// explicit origin plus an elapsed-units offset ("Julian" offsets in the
// loose sense of a count from a stated origin, not the astronomical
// day number).
//
// Batch variants apply one shared origin to an ordered slice of
// offsets and preserve input order in the result. The failure policy
// is all-or-nothing: the first invalid offset aborts the batch and no
// partial result is returned. The error names the offending index.

// FromDayOffset returns the day `days` days after origin.
func FromDayOffset(origin CivilDate, days int64) (CivilDate, error) {
	return origin.AddDays(days)
}

// FromDayOffsets applies FromDayOffset to each offset against one
// shared origin, preserving order. All-or-nothing on failure.
func FromDayOffsets(origin CivilDate, days []int64) ([]CivilDate, error) {
	out := make([]CivilDate, len(days))
	for idx, n := range days {
		d, err := origin.AddDays(n)
		if err != nil {
			return nil, fmt.Errorf("offset %d of %d: %w", idx, len(days), err)
		}
		out[idx] = d
	}
	return out, nil
}

// FromSecondOffset returns the instant `seconds` seconds after origin.
// The offset may be fractional; addition is exact at nanosecond
// granularity.
func FromSecondOffset(origin Instant, seconds float64) (Instant, error) {
	return origin.AddSeconds(seconds)
}

// FromSecondOffsets applies FromSecondOffset to each offset against
// one shared origin, preserving order. All-or-nothing on failure.
func FromSecondOffsets(origin Instant, seconds []float64) ([]Instant, error) {
	out := make([]Instant, len(seconds))
	for idx, s := range seconds {
		i, err := origin.AddSeconds(s)
		if err != nil {
			return nil, fmt.Errorf("offset %d of %d: %w", idx, len(seconds), err)
		}
		out[idx] = i
	}
	return out, nil
}

// FromFractionalDayOffset returns the instant `days` days after
// origin, where days may carry a fraction encoding time-of-day
// (0.5 is noon). The offset is converted to seconds and delegated to
// FromSecondOffset. The origin must be a full Instant: a bare
// CivilDate cannot absorb the sub-day part (use CivilDate.Midnight to
// promote one first).
func FromFractionalDayOffset(origin Instant, days float64) (Instant, error) {
	return origin.AddSeconds(days * 86400)
}

// FromFractionalDayOffsets applies FromFractionalDayOffset to each
// offset against one shared origin, preserving order. All-or-nothing
// on failure.
func FromFractionalDayOffsets(origin Instant, days []float64) ([]Instant, error) {
	out := make([]Instant, len(days))
	for idx, f := range days {
		i, err := origin.AddSeconds(f * 86400)
		if err != nil {
			return nil, fmt.Errorf("offset %d of %d: %w", idx, len(days), err)
		}
		out[idx] = i
	}
	return out, nil
}
