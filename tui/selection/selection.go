// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.

// Package selection provides an interactive arrow-key picker for terminal
// sessions.
package selection

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/erikgeiser/promptkit"
	"github.com/erikgeiser/promptkit/selection"
)

// ErrAborted is returned when the user dismisses the prompt.
var ErrAborted = errors.New("selection aborted")

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	choiceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Select prompts to pick one of the supplied options, returning a pointer
// into the options slice.  A single option is returned without prompting.
func Select[T fmt.Stringer](question string, options ...T) (*T, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("no options to select from")
	}

	if len(options) == 1 {
		return &options[0], nil
	}

	sel := selection.New(questionStyle.Render(question), options)
	sel.Filter = nil
	sel.PageSize = 10
	sel.SelectedChoiceStyle = func(c *selection.Choice[T]) string {
		return choiceStyle.Render(c.Value.String())
	}
	sel.UnselectedChoiceStyle = func(c *selection.Choice[T]) string {
		return c.Value.String()
	}

	chosen, err := sel.RunPrompt()
	if err != nil {
		if errors.Is(err, promptkit.ErrAborted) {
			return nil, ErrAborted
		}

		return nil, err
	}

	for i := range options {
		if options[i].String() == chosen.String() {
			return &options[i], nil
		}
	}

	return &chosen, nil
}
