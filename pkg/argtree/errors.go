// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHelp is matched by the error Dispatch returns when help was requested,
// either with -h/--help or through the help subcommand.
var ErrHelp = errors.New("help requested")

// HelpError carries the command whose help was requested.
type HelpError struct {
	Command *Command
}

func (e *HelpError) Error() string {
	return fmt.Sprintf("help requested for %s", e.Command.pathString())
}

func (e *HelpError) Is(target error) bool {
	return target == ErrHelp
}

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// UnknownOption: a long or short name did not match any option of the
	// current command.
	UnknownOption ErrorKind = iota + 1
	// TooFewTokens: fewer tokens remained than the argument's arity.
	TooFewTokens
	// ConversionFailure: the argument's parser rejected its tokens.
	ConversionFailure
	// MissingPositionals: required positionals were never bound.
	MissingPositionals
	// UnknownCommand: a token matched neither a positional slot nor a child.
	UnknownCommand
	// AmbiguousLeaf: the command has children but none was selected.
	AmbiguousLeaf
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownOption:
		return "UnknownOption"
	case TooFewTokens:
		return "TooFewTokens"
	case ConversionFailure:
		return "ConversionFailure"
	case MissingPositionals:
		return "MissingPositionals"
	case UnknownCommand:
		return "UnknownCommand"
	case AmbiguousLeaf:
		return "AmbiguousLeaf"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is a fatal user-input error. Command is the node that was in
// scope; its usage is what diagnostics show.
type ParseError struct {
	Kind    ErrorKind
	Command *Command
	Token   string // the option or word as written, e.g. "--wid", "-x", "foo"
	Arg     *Arg   // TooFewTokens, ConversionFailure
	Missing []*Arg // MissingPositionals, in declaration order
	Err     error  // ConversionFailure: the parser's error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnknownOption:
		return fmt.Sprintf("no such option: `%s`", e.Token)
	case UnknownCommand:
		return fmt.Sprintf("no such command: `%s`", e.Token)
	case TooFewTokens:
		return "too few arguments, expected:\n  " + e.expected()
	case ConversionFailure:
		return e.Err.Error()
	case MissingPositionals:
		var b strings.Builder
		b.WriteString("the following arguments were not provided:")
		for _, a := range e.Missing {
			b.WriteString("\n  ")
			b.WriteString(a.label())
		}
		return b.String()
	case AmbiguousLeaf:
		return fmt.Sprintf("no command given for `%s`", e.Command.pathString())
	}
	return e.Kind.String()
}

// expected spells the argument the way the user would have had to write it.
func (e *ParseError) expected() string {
	if !e.Arg.IsOption() {
		return e.Arg.label()
	}
	if e.Arg.Usage == "" {
		return e.Token
	}
	return e.Token + " " + e.Arg.Usage
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
