// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package buildfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	content, err := Render("18", []string{"npm ci", "npm test"}, "myapp")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"FROM node:18-alpine",
		"WORKDIR /app/myapp",
		"COPY . .",
		"RUN npm ci",
		"RUN npm test",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Dockerfile missing %q:\n%s", want, content)
		}
	}
}

func TestRenderFoldsMultilineSteps(t *testing.T) {
	content, err := Render("20", []string{"npm run build\nnpm test\n"}, "app")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(content, "RUN npm run build \\\n    npm test") {
		t.Errorf("multi-line step not folded into one instruction:\n%s", content)
	}
}

func TestRenderWithoutSteps(t *testing.T) {
	content, err := Render("lts", nil, "empty")
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(content, "RUN ") {
		t.Errorf("unexpected RUN instruction:\n%s", content)
	}

	if !strings.Contains(content, "# The selected job declared no run steps.") {
		t.Errorf("missing placeholder comment:\n%s", content)
	}
}

func TestOutputName(t *testing.T) {
	for _, tc := range []struct {
		project, revision, want string
	}{
		{"myapp", "", "myapp.Dockerfile"},
		{"myapp", "abc1234", "myapp_abc1234.Dockerfile"},
		{"myapp", "abc1234def5678", "myapp_abc1234.Dockerfile"},
	} {
		if got := OutputName(tc.project, tc.revision); got != tc.want {
			t.Errorf("OutputName(%q, %q) = %q, want %q", tc.project, tc.revision, got, tc.want)
		}
	}
}

func TestImageTag(t *testing.T) {
	for _, tc := range []struct {
		name, want string
	}{
		{"MyApp_abc1234.Dockerfile", "myapp_abc1234"},
		{"/tmp/proj/App.Dockerfile", "app"},
		{"plain", "plain"},
	} {
		if got := ImageTag(tc.name); got != tc.want {
			t.Errorf("ImageTag(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestEnsureDockerignore(t *testing.T) {
	t.Run("creates missing file", func(t *testing.T) {
		root := t.TempDir()

		if err := EnsureDockerignore(root); err != nil {
			t.Fatal(err)
		}

		data, err := os.ReadFile(filepath.Join(root, ".dockerignore"))
		if err != nil {
			t.Fatal(err)
		}

		if string(data) != "node_modules/\n" {
			t.Errorf("unexpected content: %q", data)
		}
	})

	t.Run("appends to existing file", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, ".dockerignore")

		if err := os.WriteFile(path, []byte("dist"), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := EnsureDockerignore(root); err != nil {
			t.Fatal(err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}

		if string(data) != "dist\nnode_modules/\n" {
			t.Errorf("unexpected content: %q", data)
		}
	})

	t.Run("leaves covered file untouched", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, ".dockerignore")

		original := "node_modules\ndist\n"
		if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := EnsureDockerignore(root); err != nil {
			t.Fatal(err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}

		if string(data) != original {
			t.Errorf("covered file modified: %q", data)
		}
	})
}
