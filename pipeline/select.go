// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package pipeline

import (
	"context"
	"fmt"

	"github.com/SV592/repro-build/log"
)

// Presenter is the interactive surface the pipeline disambiguates
// through.  Implementations exist for plain console streams and for TTY
// prompt widgets; tests supply scripted ones.
type Presenter interface {
	// ChooseFrom presents the options and returns the zero-based index
	// of the chosen one, or ErrCancelled.
	ChooseFrom(what string, options []string) (int, error)

	// Confirm asks a yes/no question with a default answer.
	Confirm(question string, def bool) (bool, error)

	// Input asks for one line of free-form text.
	Input(prompt, placeholder string) (string, error)
}

// Choose resolves a candidate list to exactly one element.  An empty list
// signals ErrNoCandidates.  A non-empty override must match exactly one
// candidate by key or the selection fails with ErrInvalidOverride.  A
// single candidate is selected automatically.  Anything else is
// delegated to the presenter.
func Choose[T any](ctx context.Context, what string, candidates []T, override string, key func(T) string, p Presenter) (*T, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no %ss found", ErrNoCandidates, what)
	}

	if override != "" {
		for i := range candidates {
			if key(candidates[i]) == override {
				log.G(ctx).Infof("using %s from argument: %s", what, override)
				return &candidates[i], nil
			}
		}

		return nil, fmt.Errorf("%w: %s %q not found", ErrInvalidOverride, what, override)
	}

	if len(candidates) == 1 {
		log.G(ctx).Infof("automatically selected single %s: %s", what, key(candidates[0]))
		return &candidates[0], nil
	}

	if p == nil {
		return nil, fmt.Errorf("%d %ss found but prompting is disabled", len(candidates), what)
	}

	options := make([]string, len(candidates))
	for i := range candidates {
		options[i] = key(candidates[i])
	}

	idx, err := p.ChooseFrom(what, options)
	if err != nil {
		return nil, err
	}

	if idx < 0 || idx >= len(candidates) {
		return nil, fmt.Errorf("presenter returned index %d out of range", idx)
	}

	log.G(ctx).Infof("selected %s: %s", what, options[idx])

	return &candidates[idx], nil
}
