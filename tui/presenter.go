// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.

// Package tui adapts the terminal prompt widgets to the pipeline's
// presenter surface.
package tui

import (
	"errors"
	"fmt"

	"github.com/SV592/repro-build/pipeline"
	"github.com/SV592/repro-build/tui/confirm"
	"github.com/SV592/repro-build/tui/selection"
	"github.com/SV592/repro-build/tui/textinput"
)

type choice struct {
	index int
	label string
}

func (c choice) String() string { return c.label }

// Presenter drives pipeline prompts through interactive terminal
// widgets.  Dismissing any widget maps to pipeline.ErrCancelled.
type Presenter struct{}

func NewPresenter() *Presenter { return &Presenter{} }

// ChooseFrom implements pipeline.Presenter.  A trailing quit entry and
// the widget's own abort key both cancel the selection.
func (*Presenter) ChooseFrom(what string, options []string) (int, error) {
	choices := make([]choice, 0, len(options)+1)
	for i, option := range options {
		choices = append(choices, choice{index: i, label: option})
	}
	choices = append(choices, choice{index: -1, label: "[quit]"})

	chosen, err := selection.Select(fmt.Sprintf("Multiple %ss detected. Select one:", what), choices...)
	if err != nil {
		if errors.Is(err, selection.ErrAborted) {
			return 0, pipeline.ErrCancelled
		}

		return 0, err
	}

	if chosen.index < 0 {
		return 0, pipeline.ErrCancelled
	}

	return chosen.index, nil
}

// Confirm implements pipeline.Presenter.
func (*Presenter) Confirm(question string, def bool) (bool, error) {
	ok, err := confirm.Confirm(question, def)
	if err != nil {
		if errors.Is(err, confirm.ErrAborted) {
			return false, pipeline.ErrCancelled
		}

		return false, err
	}

	return ok, nil
}

// Input implements pipeline.Presenter.
func (*Presenter) Input(prompt, placeholder string) (string, error) {
	value, err := textinput.Input(prompt, placeholder)
	if err != nil {
		if errors.Is(err, textinput.ErrAborted) {
			return "", pipeline.ErrCancelled
		}

		return "", err
	}

	return value, nil
}
