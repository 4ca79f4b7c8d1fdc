// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// Dispatch classifies args against root, writing matched values into their
// targets as it goes. args[0] is the program name and is not parsed.
//
// Dispatch returns nil when the whole command line was accepted, a
// *HelpError (matching ErrHelp) when help was requested, and a *ParseError
// for anything the user got wrong. Parsing stops at the first of these;
// targets written before that point keep their values.
func Dispatch(root *Command, args []string) error {
	if len(args) == 0 {
		args = []string{root.Name}
	}
	return dispatch(root, args)
}

// DispatchString splits line with shell quoting rules and dispatches the
// words as the arguments that follow the program name.
func DispatchString(root *Command, line string) error {
	words, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("splitting %q: %w", line, err)
	}
	return Dispatch(root, append([]string{root.Name}, words...))
}

// dispatch runs c over tokens, where tokens[0] is the word that selected c.
func dispatch(c *Command, tokens []string) error {
	if c.selector != nil {
		c.selector()
	}

	// next is the index in c.args where the search for the next positional
	// starts. It only moves forward.
	next := 0

	for i := 1; i < len(tokens); i++ {
		tok := tokens[i]

		if strings.HasPrefix(tok, "--") && len(tok) > 2 {
			n, err := c.parseLong(tok, tokens[i+1:])
			if err != nil {
				return err
			}
			i += n
			continue
		}

		if strings.HasPrefix(tok, "-") {
			n, err := c.parseShort(tok, tokens[i+1:])
			if err != nil {
				return err
			}
			i += n
			continue
		}

		bound := false
		for next < len(c.args) {
			a := c.args[next]
			next++
			if a.IsOption() {
				continue
			}
			n, err := c.consume(a, "", tokens[i:])
			if err != nil {
				return err
			}
			// The loop increment moves past the last consumed token. A
			// zero-arity positional leaves tok for the next slot.
			i += n - 1
			bound = true
			break
		}
		if bound {
			continue
		}

		if sub := c.child(tok); sub != nil {
			return dispatch(sub, tokens[i:])
		}
		return &ParseError{Kind: UnknownCommand, Command: c, Token: tok}
	}

	var missing []*Arg
	for ; next < len(c.args); next++ {
		a := c.args[next]
		if a.IsOption() {
			continue
		}
		if a.Value.Arity > 0 {
			missing = append(missing, a)
			continue
		}
		if a.Value.Parse == nil {
			continue
		}
		if _, err := a.Value.Parse(nil); err != nil {
			return c.parseFailure(a, err)
		}
	}
	if len(missing) > 0 {
		return &ParseError{Kind: MissingPositionals, Command: c, Missing: missing}
	}

	if len(c.cmds) > 0 {
		return &ParseError{Kind: AmbiguousLeaf, Command: c}
	}
	return nil
}

// parseLong handles "--name" and returns how many tokens after it were
// consumed.
func (c *Command) parseLong(tok string, rest []string) (int, error) {
	name := tok[2:]
	for _, a := range c.args {
		if a.Long == name {
			return c.consume(a, tok, rest)
		}
	}
	return 0, &ParseError{Kind: UnknownOption, Command: c, Token: tok}
}

// parseShort handles a cluster such as "-wf". Each letter is resolved in
// turn and takes its values from the tokens left over by the letters before
// it.
func (c *Command) parseShort(tok string, rest []string) (int, error) {
	if len(tok) < 2 {
		return 0, &ParseError{Kind: UnknownOption, Command: c, Token: tok}
	}
	used := 0
	for _, r := range tok[1:] {
		a := c.shortArg(r)
		if a == nil {
			return 0, &ParseError{Kind: UnknownOption, Command: c, Token: "-" + string(r)}
		}
		n, err := c.consume(a, "-"+string(r), rest[used:])
		if err != nil {
			return 0, err
		}
		used += n
	}
	return used, nil
}

func (c *Command) shortArg(r rune) *Arg {
	for _, a := range c.args {
		if a.Short != 0 && a.Short == r {
			return a
		}
	}
	return nil
}

// consume runs a's parser over rest and returns the number of tokens it
// took. spelled is the option as written, empty for positionals.
func (c *Command) consume(a *Arg, spelled string, rest []string) (int, error) {
	if len(rest) < a.Value.Arity {
		return 0, &ParseError{Kind: TooFewTokens, Command: c, Token: spelled, Arg: a}
	}
	if a.Check != nil {
		*a.Check = true
	}
	if a.Value.Parse == nil {
		return a.Value.Arity, nil
	}
	n, err := a.Value.Parse(rest)
	if err != nil {
		return 0, c.parseFailure(a, err)
	}
	if n < 0 || n > len(rest) {
		panic(fmt.Sprintf("argtree: parser for %q consumed %d of %d tokens", a.Name, n, len(rest)))
	}
	return n, nil
}

// parseFailure passes help requests and parse errors raised by a parser
// through unchanged and wraps everything else as a conversion failure.
func (c *Command) parseFailure(a *Arg, err error) error {
	var he *HelpError
	if errors.As(err, &he) {
		return he
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe
	}
	return &ParseError{Kind: ConversionFailure, Command: c, Arg: a, Err: err}
}
