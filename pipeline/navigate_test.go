// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func scriptedInputs(t *testing.T, answers ...string) Presenter {
	t.Helper()

	i := 0

	return &funcPresenter{
		input: func(string, string) (string, error) {
			if i >= len(answers) {
				t.Fatal("navigator asked for more input than scripted")
			}

			answer := answers[i]
			i++

			return answer, nil
		},
	}
}

func navigatorRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	for _, dir := range []string{
		filepath.Join("alpha", ".github", "workflows"),
		"beta",
		"node_modules",
		".hidden",
	} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	ci := filepath.Join(root, "alpha", ".github", "workflows", "ci.yml")
	if err := os.WriteFile(ci, []byte("jobs: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Chdir(root)

	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatal(err)
	}

	return resolved
}

func TestSelectRootPicksProjectByNumber(t *testing.T) {
	root := navigatorRoot(t)

	// "alpha" sorts first and is a workflow project, so its number
	// selects it outright.
	got, err := SelectRoot(testContext(t), scriptedInputs(t, "1"))
	if err != nil {
		t.Fatal(err)
	}

	if got != filepath.Join(root, "alpha") {
		t.Errorf("expected alpha to be selected, got %q", got)
	}
}

func TestSelectRootNavigatesIntoPlainDirectory(t *testing.T) {
	root := navigatorRoot(t)

	got, err := SelectRoot(testContext(t), scriptedInputs(t, "2", "."))
	if err != nil {
		t.Fatal(err)
	}

	if got != filepath.Join(root, "beta") {
		t.Errorf("expected to land in beta, got %q", got)
	}
}

func TestSelectRootSelectsCurrentDirectory(t *testing.T) {
	root := navigatorRoot(t)

	got, err := SelectRoot(testContext(t), scriptedInputs(t, "."))
	if err != nil {
		t.Fatal(err)
	}

	if got != root {
		t.Errorf("expected current directory %q, got %q", root, got)
	}
}

func TestSelectRootQuit(t *testing.T) {
	navigatorRoot(t)

	_, err := SelectRoot(testContext(t), scriptedInputs(t, "q"))
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestSelectRootRepromptsOnBadNumber(t *testing.T) {
	root := navigatorRoot(t)

	got, err := SelectRoot(testContext(t), scriptedInputs(t, "99", "nope", "1"))
	if err != nil {
		t.Fatal(err)
	}

	if got != filepath.Join(root, "alpha") {
		t.Errorf("expected alpha after re-prompts, got %q", got)
	}
}

func TestSelectRootNilPresenter(t *testing.T) {
	if _, err := SelectRoot(testContext(t), nil); err == nil {
		t.Fatal("expected an error when prompting is disabled")
	}
}
