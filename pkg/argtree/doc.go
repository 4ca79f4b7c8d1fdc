// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argtree parses command lines against a declared tree of commands.
//
// A program builds the tree once, binding every argument to a typed target
// it owns, and then hands the tree os.Args:
//
//	type options struct {
//	    Input    string
//	    Width    int
//	    HasWidth bool
//	    Verbose  int
//	}
//
//	var o options
//	root := argtree.NewWithHelp("asciify")
//	render := root.Sub("render")
//	render.Help = "render an image as ASCII art"
//	render.Add(argtree.Arg{Name: "input", Help: "image file", Value: argtree.String(&o.Input)})
//	render.Add(argtree.Arg{Name: "width", Long: "width", Usage: "<width>", Check: &o.HasWidth, Value: argtree.Int(&o.Width)})
//	render.Add(argtree.Arg{Name: "verbose", Short: 'v', Value: argtree.Count(&o.Verbose)})
//	argtree.Run(root, os.Args)
//
// # Tokens
//
// Each word after the program name is classified by its prefix:
//   - "--name" selects the option whose long name is exactly name
//   - "-abc" is a cluster: a, b and c are resolved one after the other and
//     each takes its values from the words that follow the cluster, so
//     "-wf out.txt" gives out.txt to whichever of w and f takes a value
//   - anything else fills the next positional in declaration order, or,
//     once every positional is filled, names a subcommand
//
// Entering a subcommand hands it the rest of the words; the parent is done.
//
// # Outcomes
//
// Dispatch returns nil, a *HelpError (errors.Is(err, ErrHelp)) or a
// *ParseError whose Kind says what went wrong. Run turns the latter two into
// diagnostics on stderr and exits with status 0; Runner makes the writer,
// colours and exit function replaceable.
//
// # Validation
//
// Duplicate names are programmer mistakes and are not checked while
// parsing. Call Validate (or Violations) from a test to catch them.
package argtree
