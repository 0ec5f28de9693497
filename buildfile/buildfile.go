// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.

// Package buildfile renders Dockerfiles from extracted workflow jobs and
// derives the file names and image tags associated with them.
package buildfile

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
)

// Suffix is the file extension of every generated Dockerfile.
const Suffix = ".Dockerfile"

var dockerfileTemplate = template.Must(template.New("dockerfile").Parse(
	`FROM node:{{ .Version }}-alpine

WORKDIR /app/{{ .Project }}

COPY . .
{{ if .Steps }}{{ range .Steps }}
RUN {{ . }}
{{ end }}{{ else }}
# The selected job declared no run steps.
# Add build and test commands here.
{{ end }}`))

type templateParams struct {
	Version string
	Project string
	Steps   []string
}

// Render produces Dockerfile content reproducing a job: a node base
// image pinned to version, a working directory named after the project,
// and one RUN instruction per shell step.  Multi-line steps are folded
// with continuation backslashes so they stay a single instruction.
func Render(version string, steps []string, project string) (string, error) {
	params := templateParams{
		Version: version,
		Project: project,
	}

	for _, step := range steps {
		step = strings.TrimRight(step, "\n")
		params.Steps = append(params.Steps, strings.ReplaceAll(step, "\n", " \\\n    "))
	}

	var sb strings.Builder
	if err := dockerfileTemplate.Execute(&sb, params); err != nil {
		return "", fmt.Errorf("rendering Dockerfile: %w", err)
	}

	return sb.String(), nil
}

// OutputName derives the Dockerfile name for a project at a revision:
// "<project>_<rev7>.Dockerfile", or "<project>.Dockerfile" when no
// revision is pinned.
func OutputName(project, revision string) string {
	if revision == "" {
		return project + Suffix
	}

	if len(revision) > 7 {
		revision = revision[:7]
	}

	return project + "_" + revision + Suffix
}

// ImageTag derives a docker image tag from a Dockerfile name by
// stripping the suffix and lowercasing what remains.
func ImageTag(name string) string {
	return strings.ToLower(strings.TrimSuffix(filepath.Base(name), Suffix))
}
