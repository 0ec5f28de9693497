// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package workflow

import (
	"context"
	"testing"
)

func TestExtractJobOrder(t *testing.T) {
	jobs := extract(context.Background(), "ci.yml", []byte(`
jobs:
  lint:
    steps:
      - run: npm run lint
  test:
    steps:
      - run: npm test
  build:
    steps:
      - run: npm run build
`))

	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}

	for i, want := range []string{"lint", "test", "build"} {
		if jobs[i].Name != want {
			t.Errorf("job %d: expected %q, got %q", i, want, jobs[i].Name)
		}
	}
}

func TestExtractStepsVerbatim(t *testing.T) {
	jobs := extract(context.Background(), "ci.yml", []byte(`
jobs:
  test:
    steps:
      - name: install
        run: npm ci
      - uses: actions/checkout@v4
      - run: |
          npm run build
          npm test
`))

	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}

	steps := jobs[0].Steps
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d: %q", len(steps), steps)
	}

	if steps[0] != "npm ci" {
		t.Errorf("unexpected first step: %q", steps[0])
	}

	if steps[1] != "npm run build\nnpm test\n" {
		t.Errorf("multi-line step not preserved verbatim: %q", steps[1])
	}
}

func TestExtractFirstVersionWins(t *testing.T) {
	jobs := extract(context.Background(), "ci.yml", []byte(`
jobs:
  test:
    steps:
      - uses: actions/setup-node@v4
        with:
          node-version: "18.x"
      - uses: actions/setup-node@v4
        with:
          node-version: "20"
      - run: npm test
`))

	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}

	if jobs[0].RuntimeVersion != "18" {
		t.Errorf("expected first setup step to win with version 18, got %q", jobs[0].RuntimeVersion)
	}
}

func TestExtractDropsEmptyJobs(t *testing.T) {
	jobs := extract(context.Background(), "ci.yml", []byte(`
jobs:
  noop:
    runs-on: ubuntu-latest
  test:
    steps:
      - run: npm test
`))

	if len(jobs) != 1 {
		t.Fatalf("expected only the job with steps to survive, got %d", len(jobs))
	}

	if jobs[0].Name != "test" {
		t.Errorf("unexpected job kept: %q", jobs[0].Name)
	}
}

func TestExtractDuplicateNamesLastWriteWins(t *testing.T) {
	jobs := extract(context.Background(), "ci.yml", []byte(`
jobs:
  test:
    steps:
      - run: first
  other:
    steps:
      - run: npm run other
  test:
    steps:
      - run: second
`))

	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	// The duplicate keeps the first occurrence's position but carries the
	// last occurrence's content.
	if jobs[0].Name != "test" {
		t.Fatalf("expected duplicate to keep first position, got %q", jobs[0].Name)
	}

	if len(jobs[0].Steps) != 1 || jobs[0].Steps[0] != "second" {
		t.Errorf("expected last definition to win, got %q", jobs[0].Steps)
	}
}

func TestExtractMalformedDocument(t *testing.T) {
	for name, data := range map[string]string{
		"invalid yaml":    "jobs: [unclosed",
		"scalar root":     "just a string",
		"sequence root":   "- a\n- b",
		"no jobs mapping": "name: ci\non: push",
		"scalar jobs":     "jobs: none",
	} {
		if jobs := extract(context.Background(), "ci.yml", []byte(data)); len(jobs) != 0 {
			t.Errorf("%s: expected no jobs, got %d", name, len(jobs))
		}
	}
}

func TestParseMissingFile(t *testing.T) {
	jobs := Parse(context.Background(), File{Path: "/nonexistent/ci.yml", Rel: "ci.yml"})
	if len(jobs) != 0 {
		t.Fatalf("expected no jobs for missing file, got %d", len(jobs))
	}
}
