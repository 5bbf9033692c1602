// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proto bridges tempora instants and the protocol buffer
// well-known Timestamp type, for callers exchanging temporal values
// over protobuf-based APIs.
//
// The two representations use the same model (epoch seconds plus a
// nanosecond fraction), so conversion is lossless in both directions
// within the Timestamp validity window (years 0001-9999).
package proto // import "go.tempora.net/lib/proto"

import (
	"fmt"

	"google.golang.org/protobuf/types/known/timestamppb"

	"go.tempora.net/tempora"
)

// Timestamp converts an instant to a protobuf Timestamp. Instants
// outside the Timestamp validity window report
// tempora.ErrRangeOverflow; the protobuf type simply cannot carry
// them.
func Timestamp(i tempora.Instant) (*timestamppb.Timestamp, error) {
	ts := &timestamppb.Timestamp{Seconds: i.Unix(), Nanos: int32(i.Nanosecond())}
	if err := ts.CheckValid(); err != nil {
		return nil, fmt.Errorf("instant %v does not fit a protobuf timestamp: %w", i, tempora.ErrRangeOverflow)
	}
	return ts, nil
}

// Instant converts a protobuf Timestamp to an instant with UTC
// presentation. Invalid timestamps (nanos outside [0, 1e9), seconds
// outside the validity window) report tempora.ErrOutOfRange.
func Instant(ts *timestamppb.Timestamp) (tempora.Instant, error) {
	if err := ts.CheckValid(); err != nil {
		return tempora.Instant{}, fmt.Errorf("invalid protobuf timestamp: %w", tempora.ErrOutOfRange)
	}
	return tempora.Unix(ts.Seconds, int64(ts.Nanos)), nil
}
