// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import "strings"

// Name of the built-in help option and of the help subcommand.
const helpName = "help"

// Command is a node in the command tree. It owns its arguments and its
// children; the parent link is a back-reference only.
type Command struct {
	Name   string
	Help   string // one line, shown in the parent's commands block
	Desc   string // shown above the usage block by full help
	Hidden bool   // dispatchable but not listed in help

	args     []*Arg
	cmds     []*Command
	parent   *Command
	selector func()
}

// New returns a root command. Every command starts with the built-in
// -h/--help option at index 0; arguments added later follow it.
func New(name string) *Command {
	c := &Command{Name: name}
	c.args = []*Arg{{
		Name:  helpName,
		Help:  "print help",
		Short: 'h',
		Long:  helpName,
		Value: Value{Parse: func([]string) (int, error) {
			return 0, &HelpError{Command: c}
		}},
	}}
	return c
}

// NewWithHelp is New plus AddHelpCommand.
func NewWithHelp(name string) *Command {
	c := New(name)
	c.AddHelpCommand()
	return c
}

// Add appends a copy of a to c and returns the stored argument.
func (c *Command) Add(a Arg) *Arg {
	p := &a
	c.args = append(c.args, p)
	return p
}

// Sub appends a new child command named name.
func (c *Command) Sub(name string) *Command {
	sub := New(name)
	sub.parent = c
	c.cmds = append(c.cmds, sub)
	return sub
}

// Select makes c write v into slot as soon as dispatch enters c, before any
// of c's tokens are looked at.
func Select[T any](c *Command, slot *T, v T) {
	c.selector = func() { *slot = v }
}

// Args returns c's arguments in declaration order, the built-in help option
// first.
func (c *Command) Args() []*Arg { return c.args }

// Commands returns c's children in declaration order.
func (c *Command) Commands() []*Command { return c.cmds }

// Parent returns the command c was created under, or nil for a root.
func (c *Command) Parent() *Command { return c.parent }

// Path returns the names from the root down to c.
func (c *Command) Path() []string {
	if c.parent == nil {
		return []string{c.Name}
	}
	return append(c.parent.Path(), c.Name)
}

func (c *Command) pathString() string {
	return strings.Join(c.Path(), " ")
}

// Lookup walks child names from c. An empty path returns c.
func (c *Command) Lookup(path ...string) (*Command, bool) {
	cur := c
	for _, name := range path {
		next := cur.child(name)
		if next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func (c *Command) child(name string) *Command {
	for _, sub := range c.cmds {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

func (c *Command) optionCount() int {
	n := 0
	for _, a := range c.args {
		if a.IsOption() {
			n++
		}
	}
	return n
}

// AddHelpCommand attaches a "help [command...]" child that prints help for
// c or for the descendant named by the words that follow it.
func (c *Command) AddHelpCommand() *Command {
	h := c.Sub(helpName)
	h.Help = "print help for a command"
	h.Add(Arg{
		Name:  "command",
		Help:  "path of the command to describe",
		Usage: "[command...]",
		Value: Value{Parse: func(tokens []string) (int, error) {
			target := c
			for _, tok := range tokens {
				if strings.HasPrefix(tok, "-") {
					break
				}
				next := target.child(tok)
				if next == nil {
					return 0, &ParseError{Kind: UnknownCommand, Command: target, Token: tok}
				}
				target = next
			}
			return 0, &HelpError{Command: target}
		}},
	})
	return h
}
