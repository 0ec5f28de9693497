// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package pipeline

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConsoleChooseFrom(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewConsolePresenter(strings.NewReader("2\n"), out)

	idx, err := p.ChooseFrom("job", []string{"lint", "test", "build"})
	if err != nil {
		t.Fatal(err)
	}

	if idx != 1 {
		t.Errorf("expected index 1, got %d", idx)
	}

	for _, want := range []string{"[1] lint", "[2] test", "[3] build", "[q] Quit"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestConsoleChooseFromRepromptsOnInvalidInput(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewConsolePresenter(strings.NewReader("abc\n99\n0\n3\n"), out)

	idx, err := p.ChooseFrom("workflow file", []string{"a.yml", "b.yml", "c.yml"})
	if err != nil {
		t.Fatal(err)
	}

	if idx != 2 {
		t.Errorf("expected index 2 after re-prompts, got %d", idx)
	}

	if !strings.Contains(out.String(), "Invalid input. Please enter a number or 'q'.") {
		t.Error("missing non-numeric re-prompt message")
	}

	if strings.Count(out.String(), "Invalid number. Please choose a number from the list.") != 2 {
		t.Errorf("expected two out-of-range re-prompts:\n%s", out.String())
	}
}

func TestConsoleChooseFromQuit(t *testing.T) {
	for _, input := range []string{"q\n", "Q\n", ""} {
		p := NewConsolePresenter(strings.NewReader(input), &bytes.Buffer{})

		_, err := p.ChooseFrom("job", []string{"a", "b"})
		if !errors.Is(err, ErrCancelled) {
			t.Errorf("input %q: expected ErrCancelled, got %v", input, err)
		}
	}
}

func TestConsoleConfirm(t *testing.T) {
	for _, tc := range []struct {
		input string
		def   bool
		want  bool
	}{
		{"\n", true, true},
		{"\n", false, false},
		{"y\n", false, true},
		{"Yes\n", false, true},
		{"n\n", true, false},
		{"whatever\n", true, false},
	} {
		p := NewConsolePresenter(strings.NewReader(tc.input), &bytes.Buffer{})

		got, err := p.Confirm("Proceed?", tc.def)
		if err != nil {
			t.Fatal(err)
		}

		if got != tc.want {
			t.Errorf("input %q (default %v): expected %v, got %v", tc.input, tc.def, tc.want, got)
		}
	}
}

func TestConsoleInput(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewConsolePresenter(strings.NewReader("  abc123  \n"), out)

	got, err := p.Input("Enter a hash", "HEAD")
	if err != nil {
		t.Fatal(err)
	}

	if got != "abc123" {
		t.Errorf("expected trimmed input, got %q", got)
	}

	if !strings.Contains(out.String(), "Enter a hash (HEAD): ") {
		t.Errorf("prompt missing placeholder:\n%s", out.String())
	}
}
