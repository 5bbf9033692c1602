// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto_test

import (
	"errors"
	"testing"

	"google.golang.org/protobuf/types/known/timestamppb"

	"go.tempora.net/lib/proto"
	"go.tempora.net/tempora"
)

func TestTimestampRoundTrip(t *testing.T) {
	for _, i := range []tempora.Instant{
		tempora.Unix(0, 0),
		tempora.Unix(1411572190, 123456789),
		tempora.Unix(-1, 500000000), // half a second before the epoch
	} {
		ts, err := proto.Timestamp(i)
		if err != nil {
			t.Fatalf("Timestamp(%v): %v", i, err)
		}
		got, err := proto.Instant(ts)
		if err != nil {
			t.Fatalf("Instant(%v): %v", ts, err)
		}
		if !got.Equal(i) {
			t.Errorf("round trip = (%d, %d), want (%d, %d)",
				got.Unix(), got.Nanosecond(), i.Unix(), i.Nanosecond())
		}
	}
}

func TestTimestampOutsideWindow(t *testing.T) {
	// Protobuf timestamps end at 9999-12-31T23:59:59.999999999Z.
	i := tempora.Unix(253402300800, 0)
	if _, err := proto.Timestamp(i); !errors.Is(err, tempora.ErrRangeOverflow) {
		t.Errorf("Timestamp(year 10000) error = %v, want ErrRangeOverflow", err)
	}
}

func TestInvalidTimestamp(t *testing.T) {
	ts := &timestamppb.Timestamp{Seconds: 0, Nanos: -1}
	if _, err := proto.Instant(ts); !errors.Is(err, tempora.ErrOutOfRange) {
		t.Errorf("Instant(nanos -1) error = %v, want ErrOutOfRange", err)
	}
}
