// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidNumber is wrapped by the errors Int and Float return for
	// tokens that are not a complete base-10 number.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidChoice is wrapped by the errors OneOf returns for tokens that
	// name none of its choices.
	ErrInvalidChoice = errors.New("invalid choice")
)

// Value converts raw tokens into a typed target.
//
// Arity is the minimum number of tokens Parse needs; the dispatcher refuses
// to call Parse with fewer. Parse receives every remaining token and returns
// how many it consumed. Parsers with a fixed arity only look at
// tokens[:Arity]. A Value with a nil Parse consumes Arity tokens and writes
// nothing, which is how check-only arguments are declared.
type Value struct {
	Arity int
	Parse func(tokens []string) (int, error)
}

// ValueError is returned by the built-in parsers when a token cannot be
// converted.
type ValueError struct {
	Token string
	Want  string // "integer", "float", "one of: a, b"
	Err   error
}

func (e *ValueError) Error() string {
	if errors.Is(e.Err, ErrInvalidChoice) {
		return fmt.Sprintf("invalid choice `%s`, expected %s", e.Token, e.Want)
	}
	return fmt.Sprintf("expected %s, found: `%s`", e.Want, e.Token)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// String copies one token verbatim into dst.
func String(dst *string) Value {
	return Value{Arity: 1, Parse: func(tokens []string) (int, error) {
		*dst = tokens[0]
		return 1, nil
	}}
}

// Int parses one base-10 integer into dst.
func Int(dst *int) Value {
	return Value{Arity: 1, Parse: func(tokens []string) (int, error) {
		n, err := strconv.ParseInt(tokens[0], 10, 0)
		if err != nil {
			return 0, &ValueError{Token: tokens[0], Want: "integer", Err: ErrInvalidNumber}
		}
		*dst = int(n)
		return 1, nil
	}}
}

// Float parses one base-10 floating point number into dst.
func Float(dst *float64) Value {
	return Value{Arity: 1, Parse: func(tokens []string) (int, error) {
		f, err := parseDecimalFloat(tokens[0])
		if err != nil {
			return 0, &ValueError{Token: tokens[0], Want: "float", Err: ErrInvalidNumber}
		}
		*dst = f
		return 1, nil
	}}
}

// parseDecimalFloat rejects the hex, underscore and inf/nan spellings
// strconv accepts, leaving plain decimal and exponent notation.
func parseDecimalFloat(s string) (float64, error) {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		default:
			return 0, ErrInvalidNumber
		}
	}
	return strconv.ParseFloat(s, 64)
}

// Bool sets dst to true whenever the argument is matched.
func Bool(dst *bool) Value {
	return Value{Arity: 0, Parse: func([]string) (int, error) {
		*dst = true
		return 0, nil
	}}
}

// Count increments dst once per match, so "-vvv" counts three.
func Count(dst *int) Value {
	return Value{Arity: 0, Parse: func([]string) (int, error) {
		*dst++
		return 0, nil
	}}
}

// Strings appends tokens to dst up to the first token that looks like an
// option. At least min tokens are always taken, even if they start with "-".
func Strings(dst *[]string, min int) Value {
	return Value{Arity: min, Parse: func(tokens []string) (int, error) {
		n := 0
		for n < len(tokens) {
			if n >= min && strings.HasPrefix(tokens[n], "-") {
				break
			}
			n++
		}
		*dst = append(*dst, tokens[:n]...)
		return n, nil
	}}
}

// Choice is one accepted spelling of an enumerated argument.
type Choice[T any] struct {
	Name  string
	Value T
}

// OneOf maps one token onto the value of the matching choice.
func OneOf[T any](dst *T, choices ...Choice[T]) Value {
	names := make([]string, len(choices))
	for i, c := range choices {
		names[i] = c.Name
	}
	want := "one of: " + strings.Join(names, ", ")
	return Value{Arity: 1, Parse: func(tokens []string) (int, error) {
		for _, c := range choices {
			if c.Name == tokens[0] {
				*dst = c.Value
				return 1, nil
			}
		}
		return 0, &ValueError{Token: tokens[0], Want: want, Err: ErrInvalidChoice}
	}}
}
