// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl provides a read/eval/print loop for exploring temporal
// values interactively.
//
// It supports readline-style command editing and interrupts through
// Control-C. Each session holds one current instant, set by the parse
// commands and read by the projection and formatting commands:
//
//	>>> parse mdy hms | 09/24/2014 15-23-10
//	2014-09-24 15:23:10
//	>>> in Europe/Paris
//	2014-09-24 17:23:10 +0200 CEST
//	>>> add 0.5
//	2014-09-24 15:23:10.500
package repl // import "go.tempora.net/repl"

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"go.tempora.net/syntax"
	"go.tempora.net/tempora"
)

// A Session holds the REPL's only state: the current instant.
// The zero Session has no current instant; commands that need one
// fail until a parse command has succeeded.
type Session struct {
	cur tempora.Instant
	set bool
}

// Current returns the session's current instant and whether one has
// been set.
func (s *Session) Current() (tempora.Instant, bool) { return s.cur, s.set }

// REPL executes a read, eval, print loop until EOF (Control-D).
//
// Control-C during editing discards the line and re-prompts, matching
// readline convention; command errors are printed and do not end the
// loop.
func REPL() {
	rl, err := readline.New(">>> ")
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()

	var s Session
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
		if err := Exec(&s, line, os.Stdout); err != nil {
			if err == errQuit {
				break
			}
			PrintError(err)
		}
	}
	fmt.Println()
}

// ExecLines feeds each line of in to Exec against one session,
// writing output to out. It is the non-interactive counterpart of
// REPL, used when stdin is a pipe. The first command error aborts and
// is returned.
func ExecLines(in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	var s Session
	for _, line := range strings.Split(string(data), "\n") {
		if err := Exec(&s, line, out); err != nil {
			if err == errQuit {
				return nil
			}
			return err
		}
	}
	return nil
}

var errQuit = fmt.Errorf("quit")

// PrintError prints the error to stderr.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, err)
}

// Exec executes a single command line against the session.
// Blank lines and lines starting with "#" are no-ops.
func Exec(s *Session, line string, out io.Writer) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	cmd, rest := line, ""
	if sp := strings.IndexByte(line, ' '); sp >= 0 {
		cmd, rest = line[:sp], strings.TrimSpace(line[sp+1:])
	}

	switch cmd {
	case "strict":
		i, err := tempora.ParseStrict(rest)
		if err != nil {
			return err
		}
		return s.setCurrent(i, out)

	case "parse":
		spec, text, ok := cut(rest, "|")
		if !ok {
			return fmt.Errorf("usage: parse <order> | <text>")
		}
		order, err := syntax.ParseOrder(spec)
		if err != nil {
			return err
		}
		i, err := tempora.ParseWithOrder(text, order, nil)
		if err != nil {
			return err
		}
		return s.setCurrent(i, out)

	case "now":
		return s.setCurrent(tempora.Now(), out)

	case "in":
		i, err := s.need()
		if err != nil {
			return err
		}
		v, err := i.In(rest)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, v)
		return nil

	case "format":
		i, err := s.need()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, i.Format(rest))
		return nil

	case "add":
		i, err := s.need()
		if err != nil {
			return err
		}
		secs, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return fmt.Errorf("add: %q is not a number", rest)
		}
		j, err := i.AddSeconds(secs)
		if err != nil {
			return err
		}
		return s.setCurrent(j, out)

	case "zones":
		for _, name := range tempora.Timezones() {
			if rest == "" || strings.HasPrefix(name, rest) {
				fmt.Fprintln(out, name)
			}
		}
		return nil

	case "help":
		fmt.Fprint(out, helpText)
		return nil

	case "exit", "quit":
		return errQuit
	}
	return fmt.Errorf("unknown command %q (try help)", cmd)
}

func (s *Session) setCurrent(i tempora.Instant, out io.Writer) error {
	s.cur, s.set = i, true
	// Show the fraction only when there is one.
	digits := 0
	if i.Nanosecond() != 0 {
		digits = 3
	}
	fmt.Fprintln(out, i.StringPrec(digits))
	return nil
}

func (s *Session) need() (tempora.Instant, error) {
	if !s.set {
		return tempora.Instant{}, fmt.Errorf("no current instant (use strict, parse, or now first)")
	}
	return s.cur, nil
}

// cut is strings.Cut with surrounding spaces trimmed from both halves.
func cut(s, sep string) (before, after string, found bool) {
	if i := strings.Index(s, sep); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(sep):]), true
	}
	return s, "", false
}

const helpText = `commands:
  strict <text>           parse canonical "YYYY-MM-DD HH:MM:SS" (local zone)
  parse <order> | <text>  parse with a field order, e.g. parse dmy hms | 24 09 2014 15 23 10
  now                     set the current instant to the present
  in <zone>               project the current instant, e.g. in Europe/Paris
  format <layout>         render the current instant, e.g. format %Y-%j %H:%M
  add <seconds>           shift the current instant, fraction allowed
  zones [prefix]          list supported timezones
  exit                    leave the repl
`
