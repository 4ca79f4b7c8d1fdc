// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"
	"strings"
	"testing"
)

func TestNewColorizerHonorsEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		noColor string
		term    string
		want    bool
	}{
		{name: "terminal", term: "xterm-256color", want: true},
		{name: "no color", noColor: "1", term: "xterm-256color"},
		{name: "dumb", term: "dumb"},
		{name: "unset term"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("TERM", tt.term)
			if got := NewColorizer(true).Enabled; got != tt.want {
				t.Errorf("Enabled = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorizerFor(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm")
	tests := []struct {
		mode    string
		want    bool
		wantErr bool
	}{
		{mode: ModeAuto, want: false},
		{mode: "", want: false},
		{mode: ModeAlways, want: true},
		{mode: ModeNever, want: false},
		{mode: "sometimes", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			c, err := ColorizerFor(tt.mode, f)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ColorizerFor(%q) error = %v, wantErr %v", tt.mode, err, tt.wantErr)
			}
			if c.Enabled != tt.want {
				t.Errorf("Enabled = %v, want %v", c.Enabled, tt.want)
			}
		})
	}
}

func TestPaint(t *testing.T) {
	if got := (Colorizer{}).Paint(StyleError, "error:"); got != "error:" {
		t.Errorf("disabled Paint = %q, want plain text", got)
	}
	on := Colorizer{Enabled: true}
	if got := on.Paint(StylePlain, "x"); got != "x" {
		t.Errorf("Paint(StylePlain) = %q, want plain text", got)
	}
	if got := on.Paint(StyleError, "error:"); !strings.HasPrefix(got, "\x1b[31merror:") {
		t.Errorf("Paint(StyleError) = %q, want red", got)
	}
	if got := on.Paint(StyleLabel, ""); got != "" {
		t.Errorf("Paint of empty text = %q, want empty", got)
	}
}
