// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/hugomd/ascii-live/frames"
)

func runParrot(ctx context.Context, w io.Writer) error {
	colors := []*color.Color{
		color.New(color.FgRed),
		color.New(color.FgGreen),
		color.New(color.FgYellow),
		color.New(color.FgBlue),
		color.New(color.FgMagenta),
		color.New(color.FgCyan),
		color.New(color.FgWhite),
	}
	p := frames.Parrot
	for x := 1; ; x++ {
		fmt.Fprint(w, clearScreen)
		colors[x%len(colors)].Fprintln(w, p.GetFrame(x%p.GetLength()))
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(p.GetSleep()):
		}
	}
}
