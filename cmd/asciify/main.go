// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/yeetrun/asciify/pkg/argtree"
	"github.com/yeetrun/asciify/pkg/asciify"
	"github.com/yeetrun/asciify/pkg/tui"
	"golang.org/x/term"
)

type app struct {
	stdout io.Writer
	stderr io.Writer

	// exit ends the process after a help request or a command-line error;
	// nil means os.Exit.
	exit func(int)
	// termWidth reports the columns available for --center.
	termWidth func() int

	log   *slog.Logger
	level *slog.LevelVar
	color tui.Colorizer

	mode    mode
	input   string
	opts    asciify.Options
	watch   int
	verbose int
	format  string
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:    stdout,
		stderr:    stderr,
		termWidth: stdoutWidth,
		opts:      asciify.DefaultOptions(),
		format:    formatPlain,
	}
}

func stdoutWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp(os.Stdout, os.Stderr)
	if err := a.main(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", a.color.Paint(tui.StyleError, "error:"), err)
		stop()
		os.Exit(1)
	}
}

// main parses args and runs the selected command. Command-line errors are
// reported by the argtree Runner and never reach the caller.
func (a *app) main(ctx context.Context, args []string) error {
	flags, rest, err := parseGlobalFlags(args)
	if err != nil {
		return err
	}
	f, _ := a.stderr.(*os.File)
	if a.color, err = tui.ColorizerFor(flags.Style, f); err != nil {
		return err
	}
	a.log, a.level = newLogger(flags.LogLevel, a.stderr)

	root := a.commandTree()
	exited := false
	runner := argtree.Runner{Stderr: a.stderr, Colorizer: a.color, Exit: func(code int) {
		exited = true
		if a.exit != nil {
			a.exit(code)
			return
		}
		os.Exit(code)
	}}
	if !runner.Validate(root) {
		return fmt.Errorf("invalid command tree")
	}
	runner.Run(root, append([]string{root.Name}, rest...))
	if exited {
		return nil
	}

	if a.verbose > 0 {
		a.level.Set(slog.LevelDebug)
	}
	a.log.Debug("parsed command line", "mode", a.mode, "input", a.input)

	switch a.mode {
	case modeRender:
		return a.runRender(ctx)
	case modeInspect:
		return a.runInspect()
	case modeParrot:
		return runParrot(ctx, a.stdout)
	}
	return nil
}
