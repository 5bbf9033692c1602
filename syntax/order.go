// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax provides the lexical layer of date/time parsing:
// a scanner that splits free-form input into word and number tokens,
// and a parser for field-order specifications such as "ymd hms".
package syntax // import "go.tempora.net/syntax"

import "fmt"

// A Field identifies one date or time component in an order specification.
type Field int8

const (
	Year Field = iota
	Month
	Day
	Hour
	Minute
	Second
)

var fieldNames = [...]string{
	Year:   "year",
	Month:  "month",
	Day:    "day",
	Hour:   "hour",
	Minute: "minute",
	Second: "second",
}

func (f Field) String() string {
	if 0 <= int(f) && int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("field(%d)", f)
}

// An Order is the positional assignment of input tokens to fields.
// It is produced by ParseOrder and is immutable by convention:
// parsers read it but never modify it.
type Order []Field

// ParseOrder parses a field-order specification over the vocabulary
// {y, m, d, h, min, s}. Tokens may be written as separate words
// ("y m d") or packed into runs ("ymd hms").
//
// Within a specification the letter 'm' is ambiguous: it means month
// until an hour field has been seen, and minute afterwards, so that
// "ymd hms" reads year-month-day hour-minute-second. The unambiguous
// token "min" always means minute.
func ParseOrder(spec string) (Order, error) {
	var order Order
	sawHour := false
	i := 0
	for i < len(spec) {
		c := spec[i]
		if !isAlpha(c) {
			i++
			continue
		}
		// "min" is the one multi-letter token.
		if c == 'm' && i+2 < len(spec) && spec[i+1] == 'i' && spec[i+2] == 'n' {
			order = append(order, Minute)
			i += 3
			continue
		}
		switch c {
		case 'y':
			order = append(order, Year)
		case 'm':
			if sawHour {
				order = append(order, Minute)
			} else {
				order = append(order, Month)
			}
		case 'd':
			order = append(order, Day)
		case 'h':
			order = append(order, Hour)
			sawHour = true
		case 's':
			order = append(order, Second)
		default:
			return nil, fmt.Errorf("invalid order specification %q: unknown token %q", spec, string(c))
		}
		i++
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("invalid order specification %q: no fields", spec)
	}
	seen := make(map[Field]bool, len(order))
	for _, f := range order {
		if seen[f] {
			return nil, fmt.Errorf("invalid order specification %q: duplicate %s field", spec, f)
		}
		seen[f] = true
	}
	return order, nil
}

// MustParseOrder is like ParseOrder but panics on error.
// It is intended for package-level variables holding literal specifications.
func MustParseOrder(spec string) Order {
	order, err := ParseOrder(spec)
	if err != nil {
		panic(err)
	}
	return order
}

// Contains reports whether the order includes the given field.
func (o Order) Contains(f Field) bool {
	for _, g := range o {
		if g == f {
			return true
		}
	}
	return false
}

func (o Order) String() string {
	var buf []byte
	for i, f := range o {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, f.String()...)
	}
	return string(buf)
}
