// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.

// Package workflow locates CI workflow files in a project tree and
// extracts their build jobs: named, ordered lists of shell steps plus an
// optional runtime-version hint.
package workflow

// File is one discovered workflow file.  Immutable once discovered.
type File struct {
	// Path is the absolute path of the file.
	Path string

	// Rel is the path relative to the scanned project root, used for
	// display and for matching user-supplied overrides.
	Rel string
}

func (f File) String() string {
	return f.Rel
}

// Job is one build job extracted from a workflow file.
type Job struct {
	// Name is the job's key in the workflow's jobs mapping, unique within
	// one file's extraction result.
	Name string

	// Steps are the job's shell commands in document order, verbatim.
	Steps []string

	// RuntimeVersion is the normalized runtime version captured from the
	// first setup-runtime step, or empty when the job declares none.
	RuntimeVersion string

	// Source is the basename of the originating workflow file.
	Source string
}

func (j Job) String() string {
	return j.Name
}
