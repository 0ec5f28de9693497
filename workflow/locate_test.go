// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package workflow

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("jobs: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, ".github", "workflows", "ci.yml"))
	writeFile(t, filepath.Join(root, "deploy.YAML"))
	writeFile(t, filepath.Join(root, "sub", "release.yaml"))
	writeFile(t, filepath.Join(root, "node_modules", "dep", "ci.yml"))
	writeFile(t, filepath.Join(root, "venv", "ci.yml"))

	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("# x"), 0o644); err != nil {
		t.Fatal(err)
	}

	files := Find(context.Background(), root)

	want := []string{
		filepath.Join(".github", "workflows", "ci.yml"),
		"deploy.YAML",
		filepath.Join("sub", "release.yaml"),
	}

	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %d: %v", len(want), len(files), files)
	}

	for i, rel := range want {
		if files[i].Rel != rel {
			t.Errorf("file %d: expected %q, got %q", i, rel, files[i].Rel)
		}

		if !filepath.IsAbs(files[i].Path) {
			t.Errorf("file %d: expected absolute path, got %q", i, files[i].Path)
		}
	}
}

func TestFindMissingRoot(t *testing.T) {
	files := Find(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if len(files) != 0 {
		t.Fatalf("expected no files for missing root, got %d", len(files))
	}
}
