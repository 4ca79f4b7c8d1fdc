// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yeetrun/asciify/pkg/tui"
)

// Runner is the only part of the package that ends the process. The zero
// value writes to os.Stderr without colour and exits through os.Exit.
type Runner struct {
	Stderr    io.Writer
	Colorizer tui.Colorizer
	Exit      func(code int)

	// ExitCode is used for help requests and for parse errors alike. It is
	// 0 unless a program opts into something else; scripts rely on it.
	ExitCode int
}

// Run dispatches args with a default Runner whose colour follows stderr.
func Run(root *Command, args []string) {
	col, _ := tui.ColorizerFor(tui.ModeAuto, os.Stderr)
	Runner{Colorizer: col}.Run(root, args)
}

// Run dispatches args against root. It returns only if the command line was
// accepted; otherwise it reports to Stderr and exits.
func (r Runner) Run(root *Command, args []string) {
	err := Dispatch(root, args)
	if err == nil {
		return
	}
	Report(r.stderr(), err, r.Colorizer)
	r.exit(r.ExitCode)
}

// Validate writes one "error:" line per violation in root and reports
// whether there were none.
func (r Runner) Validate(root *Command) bool {
	vs := Violations(root)
	for _, v := range vs {
		fmt.Fprintf(r.stderr(), "%s %s\n", r.Colorizer.Paint(tui.StyleError, "error:"), v.Error())
	}
	return len(vs) == 0
}

func (r Runner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}

func (r Runner) exit(code int) {
	if r.Exit != nil {
		r.Exit(code)
		return
	}
	os.Exit(code)
}

// Report writes the diagnostics for an error returned by Dispatch: full
// help for help requests and for commands that needed a subcommand,
// otherwise the error, the usage block of the command in scope and a hint.
func Report(w io.Writer, err error, col tui.Colorizer) {
	var he *HelpError
	if errors.As(err, &he) {
		WriteHelp(w, he.Command, col)
		return
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		fmt.Fprintf(w, "%s %v\n", col.Paint(tui.StyleError, "error:"), err)
		return
	}
	if pe.Kind == AmbiguousLeaf {
		WriteHelp(w, pe.Command, col)
		return
	}
	fmt.Fprintf(w, "%s %s\n\n", col.Paint(tui.StyleError, "error:"), indentLabels(pe, col))
	WriteUsage(w, pe.Command, col)
	fmt.Fprintf(w, "\ntry '%s --help' for more information\n", pe.Command.pathString())
}

// indentLabels styles the indented lines some messages carry, such as the
// list of missing positionals.
func indentLabels(pe *ParseError, col tui.Colorizer) string {
	lines := strings.Split(pe.Error(), "\n")
	for i, l := range lines[1:] {
		if rest, ok := strings.CutPrefix(l, "  "); ok {
			lines[i+1] = "  " + col.Paint(tui.StyleLabel, rest)
		}
	}
	return strings.Join(lines, "\n")
}
