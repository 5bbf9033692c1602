// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errorcases provides utilities for testing that parse errors
// are reported for the right inputs with the right messages.
//
// A corpus file holds one test input per line. A line containing "###"
// expects a failure: the text after the marker is a Go string literal
// denoting a regular expression that must match the error. A line
// without the marker expects success. Blank lines and lines starting
// with "#" are skipped.
//
// Example:
//
//	ymd | 2014-09-24
//	ymd | 2014-13-24 ### "month 13.*out of range"
//
// A client test feeds each case's input to the code under test, then
// calls Case.Got with the outcome. Any discrepancy between actual and
// expected errors is reported through the client's reporter, which is
// typically a *testing.T.
package errorcases // import "go.tempora.net/internal/errorcases"

import (
	"os"
	"regexp"
	"strconv"
	"strings"
)

// A Case is one input line of a corpus file together with its
// expectation.
type Case struct {
	Input string // the line with any expectation marker stripped
	Line  int    // 1-based line number in the corpus file

	filename string
	report   Reporter
	want     *regexp.Regexp // nil means the input must succeed
	checked  bool
}

// Reporter is implemented by *testing.T.
type Reporter interface {
	Errorf(format string, args ...interface{})
}

// Read parses a corpus file and returns its cases.
// It reports malformed expectation lines using the reporter.
//
// Messages are prefixed by a newline so that the Go source position
// added by (*testing.T).Errorf appears on a separate line so as not
// to confuse editors.
func Read(filename string, report Reporter) (cases []*Case) {
	data, err := os.ReadFile(filename)
	if err != nil {
		report.Errorf("%s", err)
		return
	}

	for i, line := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
		linenum := i + 1
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c := &Case{Input: line, Line: linenum, filename: filename, report: report}
		if marker := strings.Index(line, "###"); marker >= 0 {
			rest := strings.TrimSpace(line[marker+len("###"):])
			pattern, err := strconv.Unquote(rest)
			if err != nil {
				report.Errorf("\n%s:%d: not a quoted regexp: %s", filename, linenum, rest)
				continue
			}
			rx, err := regexp.Compile(pattern)
			if err != nil {
				report.Errorf("\n%s:%d: %v", filename, linenum, err)
				continue
			}
			c.Input = strings.TrimSpace(line[:marker])
			c.want = rx
		}
		cases = append(cases, c)
	}
	return cases
}

// Got should be called exactly once per case with the outcome of the
// code under test (err may be nil). It reports unexpected errors,
// unexpected successes, and message mismatches to the reporter.
func (c *Case) Got(err error) {
	c.checked = true
	switch {
	case err == nil && c.want != nil:
		c.report.Errorf("\n%s:%d: %q unexpectedly succeeded, want error matching %q", c.filename, c.Line, c.Input, c.want)
	case err != nil && c.want == nil:
		c.report.Errorf("\n%s:%d: %q: unexpected error: %v", c.filename, c.Line, c.Input, err)
	case err != nil && !c.want.MatchString(err.Error()):
		c.report.Errorf("\n%s:%d: error %q does not match pattern %q", c.filename, c.Line, err, c.want)
	}
}

// Done should be called after all cases have been fed to the code
// under test; it reports cases the client never checked.
func Done(cases []*Case) {
	for _, c := range cases {
		if !c.checked {
			c.report.Errorf("\n%s:%d: case %q was never checked", c.filename, c.Line, c.Input)
		}
	}
}
