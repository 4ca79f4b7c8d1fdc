// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/shayne/yargs"
	"github.com/yeetrun/asciify/pkg/argtree"
	"github.com/yeetrun/asciify/pkg/asciify"
)

type globalFlagsParsed struct {
	Style    string `flag:"style" help:"Colour diagnostics (auto|always|never)"`
	LogLevel string `flag:"log-level" help:"Log level (debug|info|warn|error)"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

type mode int

const (
	modeNone mode = iota
	modeRender
	modeInspect
	modeParrot
)

func (m mode) String() string {
	switch m {
	case modeRender:
		return "render"
	case modeInspect:
		return "inspect"
	case modeParrot:
		return "parrot"
	}
	return "none"
}

const description = `asciify

display an image as ASCII art in the terminal.`

// commandTree declares the asciify command line. Parsed values land in a.
func (a *app) commandTree() *argtree.Command {
	root := argtree.NewWithHelp("asciify")
	root.Desc = description

	render := root.Sub("render")
	render.Help = "render an image file as ASCII art"
	render.Desc = "Render an image file as ASCII art. Use /dev/stdin to read a pipe."
	argtree.Select(render, &a.mode, modeRender)
	render.Add(argtree.Arg{Name: "input", Help: "image file to render", Value: argtree.String(&a.input)})
	render.Add(argtree.Arg{
		Name: "watch", Short: 'w', Long: "watch", Usage: "<seconds>",
		Help:  "repeatedly render, re-reading the file",
		Value: argtree.Int(&a.watch),
	})
	render.Add(argtree.Arg{
		Name: "width", Long: "width", Usage: "<width>",
		Help:  "width of output in columns",
		Check: &a.opts.HasWidth,
		Value: argtree.Int(&a.opts.Width),
	})
	render.Add(argtree.Arg{
		Name: "height", Long: "height", Usage: "<height>",
		Help:  "height of output in rows",
		Value: argtree.Int(&a.opts.Height),
	})
	render.Add(argtree.Arg{Name: "center", Short: 'c', Long: "center", Help: "center the image in the terminal", Check: &a.opts.Center})
	render.Add(argtree.Arg{
		Name: "detail", Short: 'd', Long: "detail", Usage: "<low|mid|high>",
		Help: "size of the character ramp",
		Value: argtree.OneOf(&a.opts.Detail,
			argtree.Choice[asciify.Detail]{Name: "low", Value: asciify.DetailLow},
			argtree.Choice[asciify.Detail]{Name: "mid", Value: asciify.DetailMid},
			argtree.Choice[asciify.Detail]{Name: "high", Value: asciify.DetailHigh},
		),
	})
	render.Add(argtree.Arg{Name: "ansi", Short: 'a', Long: "ansi", Help: "colour with the 16 ANSI colours", Check: &a.opts.ANSI})
	render.Add(argtree.Arg{Name: "xterm", Short: 'x', Long: "xterm", Help: "colour with the xterm 256-colour palette", Check: &a.opts.XTerm})
	render.Add(argtree.Arg{
		Name: "quantize", Short: 'q', Long: "quantize", Usage: "<count>",
		Help:  "colour levels per channel",
		Value: argtree.Int(&a.opts.Quantize),
	})
	render.Add(argtree.Arg{Name: "verbose", Short: 'v', Long: "verbose", Help: "log more, repeat for more", Value: argtree.Count(&a.verbose)})

	inspect := root.Sub("inspect")
	inspect.Help = "print image metadata"
	argtree.Select(inspect, &a.mode, modeInspect)
	inspect.Add(argtree.Arg{Name: "input", Help: "image file to inspect", Value: argtree.String(&a.input)})
	inspect.Add(argtree.Arg{
		Name: "format", Short: 'f', Long: "format", Usage: "<plain|json|yaml|toml>",
		Help: "output format",
		Value: argtree.OneOf(&a.format,
			argtree.Choice[string]{Name: formatPlain, Value: formatPlain},
			argtree.Choice[string]{Name: formatJSON, Value: formatJSON},
			argtree.Choice[string]{Name: formatYAML, Value: formatYAML},
			argtree.Choice[string]{Name: formatTOML, Value: formatTOML},
		),
	})

	parrot := root.Sub("parrot")
	parrot.Hidden = true
	argtree.Select(parrot, &a.mode, modeParrot)

	return root
}
