// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerStartStop(t *testing.T) {
	var out syncBuffer
	s := NewSpinner(&out, WithInterval(time.Millisecond))
	s.Start("waiting")
	time.Sleep(10 * time.Millisecond)
	s.Stop()

	got := out.String()
	if !strings.HasPrefix(got, "\r\033[K"+DefaultFrames[0]+" waiting") {
		t.Errorf("output = %q, want the first frame and message", got)
	}
	if !strings.HasSuffix(got, "\r\033[K") {
		t.Errorf("output = %q, want the line cleared on stop", got)
	}
	s.Stop()
}

func TestSpinnerStyledFrame(t *testing.T) {
	var out syncBuffer
	s := NewSpinner(&out, WithInterval(time.Hour), WithStyle(Colorizer{Enabled: true}, StyleDim))
	s.Start("")
	s.Stop()
	if !strings.Contains(out.String(), "\x1b[90m"+DefaultFrames[0]) {
		t.Errorf("output = %q, want a dim frame", out.String())
	}
}
