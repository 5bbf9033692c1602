// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tempora

import "errors"

// Sentinel errors returned (wrapped) by parsing, arithmetic, and
// timezone operations. Callers classify failures with errors.Is;
// the wrapped message carries the offending input and field.
var (
	// ErrFormatMismatch reports text that does not have the exact
	// canonical shape required by ParseStrict or ParseCivil.
	ErrFormatMismatch = errors.New("format mismatch")

	// ErrAmbiguousOrder reports a flexible-parse input whose token
	// count or token kinds cannot be reconciled with the given order.
	// The parser never guesses.
	ErrAmbiguousOrder = errors.New("ambiguous order")

	// ErrOutOfRange reports a field value outside its calendar or
	// clock domain (month 13, day 32, hour 24, ...), or a non-finite
	// numeric argument. Values are never clamped.
	ErrOutOfRange = errors.New("out of range")

	// ErrRangeOverflow reports an arithmetic result beyond the
	// representable range of the underlying count. Arithmetic never
	// wraps.
	ErrRangeOverflow = errors.New("range overflow")

	// ErrUnknownTimezone reports a timezone identifier absent from
	// the IANA registry compiled into this package.
	ErrUnknownTimezone = errors.New("unknown timezone")
)
