// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtree

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/asciify/pkg/tui"
)

type exitRecorder struct {
	codes []int
}

func (e *exitRecorder) exit(code int) {
	e.codes = append(e.codes, code)
}

func runFixture(t *testing.T, args ...string) (string, *exitRecorder, *Command) {
	t.Helper()
	var src, dst string
	var width int
	root := New("cp")
	root.Add(Arg{Name: "src", Value: String(&src)})
	root.Add(Arg{Name: "dst", Value: String(&dst)})
	root.Add(Arg{Name: "width", Long: "width", Usage: "<width>", Value: Int(&width)})

	var buf bytes.Buffer
	rec := &exitRecorder{}
	Runner{Stderr: &buf, Exit: rec.exit}.Run(root, append([]string{"cp"}, args...))
	return buf.String(), rec, root
}

func TestRunSuccessDoesNotExit(t *testing.T) {
	out, rec, _ := runFixture(t, "a", "b")
	if len(rec.codes) != 0 || out != "" {
		t.Errorf("exit codes %v, output %q; want none", rec.codes, out)
	}
}

func TestRunErrorDiagnostics(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		detail string
	}{
		{
			name:   "unknown option",
			args:   []string{"a", "b", "--wid"},
			detail: "no such option: `--wid`",
		},
		{
			name:   "missing positionals",
			args:   nil,
			detail: "the following arguments were not provided:\n  <src>\n  <dst>",
		},
		{
			name:   "conversion",
			args:   []string{"--width", "abc", "a", "b"},
			detail: "expected integer, found: `abc`",
		},
		{
			name:   "unknown command",
			args:   []string{"a", "b", "c"},
			detail: "no such command: `c`",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, rec, root := runFixture(t, tt.args...)
			want := "error: " + tt.detail + "\n\n" + Usage(root) + "\ntry 'cp --help' for more information\n"
			if diff := cmp.Diff(want, out); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
			if !cmp.Equal(rec.codes, []int{0}) {
				t.Errorf("exit codes = %v, want [0]", rec.codes)
			}
		})
	}
}

func TestRunHelpExitsZero(t *testing.T) {
	out, rec, root := runFixture(t, "--help")
	if diff := cmp.Diff(HelpText(root), out); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if !cmp.Equal(rec.codes, []int{0}) {
		t.Errorf("exit codes = %v, want [0]", rec.codes)
	}
}

func TestRunAmbiguousLeafShowsHelp(t *testing.T) {
	root := NewWithHelp("tool")
	root.Desc = "a tool"
	root.Sub("run").Help = "run it"

	var buf bytes.Buffer
	rec := &exitRecorder{}
	Runner{Stderr: &buf, Exit: rec.exit}.Run(root, []string{"tool"})

	if diff := cmp.Diff(HelpText(root), buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(buf.String(), "error:") {
		t.Errorf("output %q has an error marker, want plain help", buf.String())
	}
	if !cmp.Equal(rec.codes, []int{0}) {
		t.Errorf("exit codes = %v, want [0]", rec.codes)
	}
}

func TestRunnerExitCodeOverride(t *testing.T) {
	root := New("p")
	rec := &exitRecorder{}
	Runner{Stderr: &bytes.Buffer{}, Exit: rec.exit, ExitCode: 2}.Run(root, []string{"p", "--nope"})
	if !cmp.Equal(rec.codes, []int{2}) {
		t.Errorf("exit codes = %v, want [2]", rec.codes)
	}
}

func TestReportStyled(t *testing.T) {
	var buf bytes.Buffer
	err := Dispatch(New("p"), []string{"p", "--nope"})
	Report(&buf, err, tui.Colorizer{Enabled: true})
	if !strings.HasPrefix(buf.String(), "\x1b[31merror:") {
		t.Errorf("output = %q, want a red error marker first", buf.String())
	}
}

func TestReportOtherError(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, errors.New("boom"), tui.Colorizer{})
	if got, want := buf.String(), "error: boom\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
