// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"errors"
	"fmt"
)

// ViolationKind classifies a structural problem in a command tree.
type ViolationKind int

const (
	DuplicateName ViolationKind = iota + 1
	DuplicateShort
	DuplicateLong
	DuplicateCommand
)

// Violation is a mistake in how a tree was built, as opposed to a mistake
// in what a user typed.
type Violation struct {
	Command *Command
	Kind    ViolationKind
	Name    string // the duplicated name, without dashes
}

func (v Violation) Error() string {
	prefix := fmt.Sprintf("invalid command `%s`, ", v.Command.pathString())
	switch v.Kind {
	case DuplicateName:
		return prefix + fmt.Sprintf("duplicate arguments: `%s`", v.Name)
	case DuplicateShort:
		return prefix + fmt.Sprintf("duplicate arguments: `-%s`", v.Name)
	case DuplicateLong:
		return prefix + fmt.Sprintf("duplicate arguments: `--%s`", v.Name)
	case DuplicateCommand:
		return prefix + fmt.Sprintf("duplicate subcommands: `%s`", v.Name)
	}
	return prefix + "unknown violation"
}

// Violations checks root and every descendant for duplicate argument names,
// short names, long names and sibling command names. It returns all of
// them, parents before children.
func Violations(root *Command) []Violation {
	var out []Violation
	collectViolations(root, &out)
	return out
}

func collectViolations(c *Command, out *[]Violation) {
	for i, a := range c.args {
		for _, b := range c.args[i+1:] {
			if a.Name == b.Name {
				*out = append(*out, Violation{Command: c, Kind: DuplicateName, Name: a.Name})
			}
			if a.Short != 0 && a.Short == b.Short {
				*out = append(*out, Violation{Command: c, Kind: DuplicateShort, Name: string(a.Short)})
			}
			if a.Long != "" && a.Long == b.Long {
				*out = append(*out, Violation{Command: c, Kind: DuplicateLong, Name: a.Long})
			}
		}
	}
	for i, sub := range c.cmds {
		for _, other := range c.cmds[i+1:] {
			if sub.Name == other.Name {
				*out = append(*out, Violation{Command: c, Kind: DuplicateCommand, Name: sub.Name})
			}
		}
	}
	for _, sub := range c.cmds {
		collectViolations(sub, out)
	}
}

// Validate returns nil if root is well formed, or every violation joined
// into one error.
func Validate(root *Command) error {
	vs := Violations(root)
	if len(vs) == 0 {
		return nil
	}
	errs := make([]error, len(vs))
	for i, v := range vs {
		errs[i] = v
	}
	return errors.Join(errs...)
}
