// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/yeetrun/asciify/pkg/tui"
)

// labelWidth is the column, after the two-space indent, where help text
// starts.
const labelWidth = 32

// Usage returns the plain usage block for c.
func Usage(c *Command) string {
	var b strings.Builder
	WriteUsage(&b, c, tui.Colorizer{})
	return b.String()
}

// HelpText returns the plain full help for c.
func HelpText(c *Command) string {
	var b strings.Builder
	WriteHelp(&b, c, tui.Colorizer{})
	return b.String()
}

// WriteHelp writes c's description followed by its usage block.
func WriteHelp(w io.Writer, c *Command, col tui.Colorizer) {
	if c.Desc != "" {
		fmt.Fprintf(w, "%s\n\n", c.Desc)
	}
	WriteUsage(w, c, col)
}

// WriteUsage writes the usage line and the arguments, options and commands
// blocks, each in declaration order.
func WriteUsage(w io.Writer, c *Command, col tui.Colorizer) {
	line := []string{c.pathString()}
	for _, a := range c.args {
		if !a.IsOption() {
			line = append(line, "<"+a.Name+">")
		}
	}
	if c.optionCount() > 0 {
		line = append(line, "[options]")
	}
	if len(c.cmds) > 0 {
		line = append(line, "[command]")
	}
	fmt.Fprintf(w, "%s %s\n", col.Paint(tui.StyleHeading, "usage:"), col.Paint(tui.StyleLabel, strings.Join(line, " ")))

	writeArguments(w, c, col)
	writeOptions(w, c, col)
	writeCommands(w, c, col)
}

func writeArguments(w io.Writer, c *Command, col tui.Colorizer) {
	if c.optionCount() == len(c.args) {
		return
	}
	writeHeading(w, "arguments:", col)
	for _, a := range c.args {
		if a.IsOption() {
			continue
		}
		writeRow(w, a.label(), a.Help, col)
	}
}

func writeOptions(w io.Writer, c *Command, col tui.Colorizer) {
	if c.optionCount() == 0 {
		return
	}
	writeHeading(w, "options:", col)
	for _, a := range c.args {
		if !a.IsOption() {
			continue
		}
		writeRow(w, optionLabel(a), a.Help, col)
	}
}

func writeCommands(w io.Writer, c *Command, col tui.Colorizer) {
	var visible []*Command
	for _, sub := range c.cmds {
		if !sub.Hidden {
			visible = append(visible, sub)
		}
	}
	if len(visible) == 0 {
		return
	}
	writeHeading(w, "commands:", col)
	for _, sub := range visible {
		writeRow(w, sub.Name, sub.Help, col)
	}
}

// optionLabel renders "-s, --long <usage>", keeping long names aligned
// when there is no short form.
func optionLabel(a *Arg) string {
	var b strings.Builder
	switch {
	case a.Short != 0 && a.Long != "":
		fmt.Fprintf(&b, "-%c, --%s", a.Short, a.Long)
	case a.Short != 0:
		fmt.Fprintf(&b, "-%c", a.Short)
	default:
		fmt.Fprintf(&b, "    --%s", a.Long)
	}
	if a.Usage != "" {
		b.WriteString(" ")
		b.WriteString(a.Usage)
	}
	return b.String()
}

func writeHeading(w io.Writer, title string, col tui.Colorizer) {
	fmt.Fprintf(w, "\n%s\n", col.Paint(tui.StyleHeading, title))
}

func writeRow(w io.Writer, label, help string, col tui.Colorizer) {
	fmt.Fprintf(w, "  %s", col.Paint(tui.StyleLabel, label))
	if help != "" {
		pad := labelWidth - utf8.RuneCountInString(label)
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(w, "%s %s", strings.Repeat(" ", pad), help)
	}
	fmt.Fprintln(w)
}
