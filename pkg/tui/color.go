// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Style names the role of a piece of text. Formatting code picks a Style and
// the Colorizer decides what, if anything, that looks like on screen.
type Style int

const (
	StylePlain Style = iota
	StyleHeading
	StyleLabel
	StyleError
	StyleDim
)

var styleAttrs = map[Style][]color.Attribute{
	StyleHeading: {color.FgGreen},
	StyleLabel:   {color.FgCyan},
	StyleError:   {color.FgRed},
	StyleDim:     {color.FgHiBlack},
}

// Color modes accepted by ColorizerFor.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

type Colorizer struct {
	Enabled bool
}

func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// ColorizerFor returns a Colorizer for output written to f. In auto mode
// colour is used only when f is a terminal.
func ColorizerFor(mode string, f *os.File) (Colorizer, error) {
	switch mode {
	case "", ModeAuto:
		return NewColorizer(f != nil && term.IsTerminal(int(f.Fd()))), nil
	case ModeAlways:
		return Colorizer{Enabled: true}, nil
	case ModeNever:
		return Colorizer{}, nil
	}
	return Colorizer{}, fmt.Errorf("invalid style %q (want %s, %s or %s)", mode, ModeAuto, ModeAlways, ModeNever)
}

// Paint renders text in the given style. A disabled Colorizer returns text
// unchanged so callers can assert on plain output.
func (c Colorizer) Paint(s Style, text string) string {
	attrs, ok := styleAttrs[s]
	if !c.Enabled || !ok || text == "" {
		return text
	}
	col := color.New(attrs...)
	col.EnableColor()
	return col.Sprint(text)
}
