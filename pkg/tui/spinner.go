// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var DefaultFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a single status line on out until Stop is called. It is
// used while a watch loop waits for its next refresh.
type Spinner struct {
	out      io.Writer
	frames   []string
	interval time.Duration
	color    Colorizer
	style    Style

	mu      sync.Mutex
	msg     string
	idx     int
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

type SpinnerOption func(*Spinner)

func WithInterval(d time.Duration) SpinnerOption {
	return func(s *Spinner) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithStyle paints the spinner frame in style.
func WithStyle(c Colorizer, style Style) SpinnerOption {
	return func(s *Spinner) {
		s.color = c
		s.style = style
	}
}

func NewSpinner(out io.Writer, opts ...SpinnerOption) *Spinner {
	s := &Spinner{
		out:      out,
		frames:   DefaultFrames,
		interval: 120 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start shows msg next to the first frame. Starting a running spinner only
// replaces its message.
func (s *Spinner) Start(msg string) {
	s.mu.Lock()
	s.msg = msg
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.idx = 0
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.mu.Unlock()

	s.draw(0, msg)
	go s.loop()
}

// Stop halts the animation and clears the status line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	stopCh, doneCh := s.stopCh, s.doneCh
	s.running = false
	s.mu.Unlock()

	close(stopCh)
	<-doneCh
	fmt.Fprint(s.out, "\r\033[K")
}

func (s *Spinner) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			s.idx = (s.idx + 1) % len(s.frames)
			idx, msg := s.idx, s.msg
			s.mu.Unlock()
			s.draw(idx, msg)
		case <-s.stopCh:
			close(s.doneCh)
			return
		}
	}
}

func (s *Spinner) draw(idx int, msg string) {
	line := s.color.Paint(s.style, s.frames[idx%len(s.frames)])
	if msg != "" {
		line += " " + msg
	}
	fmt.Fprintf(s.out, "\r\033[K%s", line)
}
