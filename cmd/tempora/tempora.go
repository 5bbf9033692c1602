// Copyright 2023 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The tempora command explores date/time values from the terminal.
// With no arguments it starts a read-eval-print loop (REPL) when
// stdin is a terminal, or executes commands from stdin when it is
// not; see the repl package for the command set.
package main // import "go.tempora.net/cmd/tempora"

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"go.tempora.net/repl"
)

// flags
var (
	execcmd = flag.String("c", "", "execute command `cmd` and exit")
	zones   = flag.Bool("zones", false, "print the supported timezones and exit")
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("tempora: ")
	log.SetFlags(0)
	flag.Parse()

	if *zones {
		return run("zones")
	}
	if *execcmd != "" {
		return run(*execcmd)
	}
	if flag.NArg() > 0 {
		log.Printf("unexpected arguments %q", flag.Args())
		return 64 // EX_USAGE
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("Welcome to Tempora (go.tempora.net)")
		repl.REPL()
		return 0
	}
	if err := repl.ExecLines(os.Stdin, os.Stdout); err != nil {
		repl.PrintError(err)
		return 1
	}
	return 0
}

func run(cmd string) int {
	var s repl.Session
	if err := repl.Exec(&s, cmd, os.Stdout); err != nil {
		repl.PrintError(err)
		return 1
	}
	return 0
}
