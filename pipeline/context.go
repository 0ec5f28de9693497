// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.

// Package pipeline drives one run of the reproduction pipeline: project
// root, optional revision, workflow discovery, file and job selection,
// Dockerfile generation and the optional image build and container run.
package pipeline

import "github.com/SV592/repro-build/workflow"

// State tracks how far a run has progressed.  Fields of Context are
// filled strictly in state order.
type State int

const (
	StateInitial State = iota
	StateRootChosen
	StateRevisionResolved
	StateFilesDiscovered
	StateFileSelected
	StateJobsExtracted
	StateJobSelected
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateRootChosen:
		return "root chosen"
	case StateRevisionResolved:
		return "revision resolved"
	case StateFilesDiscovered:
		return "files discovered"
	case StateFileSelected:
		return "file selected"
	case StateJobsExtracted:
		return "jobs extracted"
	case StateJobSelected:
		return "job selected"
	case StateComplete:
		return "complete"
	default:
		return "initial"
	}
}

// Context is the aggregate threaded through one pipeline run.  It has a
// single owner (the driver), lives for exactly one run, and is discarded
// on completion or cancellation.
type Context struct {
	State State

	// Root is the absolute path of the selected project directory.
	Root string

	// Revision is the version-control revision to reproduce, empty when
	// building the working tree as-is.
	Revision string

	// Files are the discovered workflow files beneath Root.
	Files []workflow.File

	// File is the selected workflow file.
	File *workflow.File

	// Jobs are the jobs extracted from File.
	Jobs []workflow.Job

	// Job is the selected job.
	Job *workflow.Job

	// Steps are the selected job's shell steps, copied verbatim.
	Steps []string

	// RuntimeVersion is the selected job's runtime version, or the
	// configured fallback tag when the job declared none.
	RuntimeVersion string

	// BuildfilePath is where the generated Dockerfile was written.
	BuildfilePath string

	// ImageTag is the tag of the image built from the Dockerfile.
	ImageTag string
}

func (c *Context) advance(s State) {
	if s > c.State {
		c.State = s
	}
}
