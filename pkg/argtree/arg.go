// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

// Arg is a single declared parameter of a Command.
//
// An Arg with a Short or Long name is an option and may appear anywhere
// among the command's tokens. Any other Arg is positional and is filled in
// declaration order.
type Arg struct {
	Name  string // used for positional usage text and error messages
	Help  string
	Usage string // replaces "<Name>" in help, e.g. "<low|mid|high>"
	Short rune   // 0 for none
	Long  string // "" for none

	// Check, if non-nil, is set to true as soon as the argument is matched,
	// whether or not its value converts.
	Check *bool

	Value Value
}

// IsOption reports whether a is addressed by name rather than position.
func (a *Arg) IsOption() bool {
	return a.Short != 0 || a.Long != ""
}

// label is how a positional is shown in usage and diagnostics.
func (a *Arg) label() string {
	if a.Usage != "" {
		return a.Usage
	}
	return "<" + a.Name + ">"
}
