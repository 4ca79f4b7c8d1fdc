// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/yeetrun/asciify/pkg/asciify"
	"github.com/yeetrun/asciify/pkg/tui"
	"golang.org/x/term"
)

const clearScreen = "\033[H\033[2J"

func (a *app) runRender(ctx context.Context) error {
	if a.opts.Center {
		a.opts.TermWidth = a.termWidth()
	}
	if a.watch <= 0 {
		return a.renderOnce()
	}

	interval := time.Duration(a.watch) * time.Second
	var spin *tui.Spinner
	if a.interactive() {
		spin = tui.NewSpinner(a.stderr, tui.WithStyle(a.color, tui.StyleDim))
	}
	for {
		fmt.Fprint(a.stdout, clearScreen)
		if err := a.renderOnce(); err != nil {
			return err
		}
		if spin != nil {
			spin.Start(fmt.Sprintf("refreshing every %ds", a.watch))
		}
		select {
		case <-ctx.Done():
			if spin != nil {
				spin.Stop()
			}
			return nil
		case <-time.After(interval):
		}
		if spin != nil {
			spin.Stop()
		}
	}
}

func (a *app) renderOnce() error {
	img, _, err := a.load()
	if err != nil {
		return err
	}
	cols, rows := asciify.Size(img.Bounds(), a.opts)
	a.log.Debug("rendering", "input", a.input, "bounds", img.Bounds().Size(), "cols", cols, "rows", rows, "detail", a.opts.Detail)
	return asciify.Render(a.stdout, img, a.opts)
}

func (a *app) load() (image.Image, string, error) {
	f, err := os.Open(a.input)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	img, format, err := asciify.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", a.input, err)
	}
	return img, format, nil
}

func (a *app) interactive() bool {
	f, ok := a.stderr.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
