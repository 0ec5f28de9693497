// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package pipeline

import "errors"

// ErrNoCandidates signals that a selection stage had nothing to offer;
// the caller restarts from project selection.
var ErrNoCandidates = errors.New("no candidates")

// ErrInvalidOverride signals that a pre-supplied identifier matched no
// candidate.
var ErrInvalidOverride = errors.New("invalid override")

// ErrCancelled signals an explicit user cancellation at a prompt.  The
// caller decides whether that restarts the outer loop or ends the run.
var ErrCancelled = errors.New("cancelled by user")

// quitError ends the whole run voluntarily, with an exit status distinct
// from failure.  It matches ErrCancelled in errors.Is chains.
type quitError struct{}

func (quitError) Error() string { return "operation cancelled by user" }

func (quitError) ExitStatus() int { return 2 }

func (quitError) Is(target error) bool { return target == ErrCancelled }

// ErrQuit is the terminal form of a user cancellation.
var ErrQuit error = quitError{}
