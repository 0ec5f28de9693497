// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.

// Package iostreams bundles the process's input and output streams together
// with TTY and color capability detection, so commands never touch
// os.Stdin/os.Stdout directly and tests can substitute buffers.
package iostreams

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	colorEnabled bool
	stdinIsTTY   bool
	stdoutIsTTY  bool
}

// System returns the IOStreams of the current process, with color enabled
// when stdout is a terminal that supports it and NO_COLOR is unset.
func System() *IOStreams {
	stdoutIsTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	io := &IOStreams{
		In:          os.Stdin,
		Out:         colorable.NewColorable(os.Stdout),
		ErrOut:      colorable.NewColorable(os.Stderr),
		stdinIsTTY:  isatty.IsTerminal(os.Stdin.Fd()),
		stdoutIsTTY: stdoutIsTTY,
	}

	if stdoutIsTTY && os.Getenv("NO_COLOR") == "" {
		io.colorEnabled = termenv.EnvColorProfile() != termenv.Ascii
	}

	return io
}

// Test returns IOStreams over in-memory buffers for use in tests, along
// with the output and error buffers.
func Test() (*IOStreams, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	return &IOStreams{
		In:     &bytes.Buffer{},
		Out:    out,
		ErrOut: errOut,
	}, out, errOut
}

func (s *IOStreams) ColorEnabled() bool {
	return s.colorEnabled
}

func (s *IOStreams) SetColorEnabled(enabled bool) {
	s.colorEnabled = enabled
}

func (s *IOStreams) IsStdinTTY() bool {
	return s.stdinIsTTY
}

func (s *IOStreams) IsStdoutTTY() bool {
	return s.stdoutIsTTY
}

// TerminalWidth reports the column width of the attached terminal, or a
// conventional 80 when the output is not a terminal.
func (s *IOStreams) TerminalWidth() int {
	if f, ok := s.Out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}

	if s.stdoutIsTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			return w
		}
	}

	return 80
}

type iostreamsKey struct{}

// WithIOStreams returns a new context with the provided streams attached.
func WithIOStreams(ctx context.Context, s *IOStreams) context.Context {
	return context.WithValue(ctx, iostreamsKey{}, s)
}

// G returns the IOStreams attached to the context, or the system streams.
func G(ctx context.Context) *IOStreams {
	if s := ctx.Value(iostreamsKey{}); s != nil {
		return s.(*IOStreams)
	}

	return System()
}
