// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.

// Package textinput provides a free-form terminal input prompt.
package textinput

import (
	"errors"

	"github.com/erikgeiser/promptkit"
	"github.com/erikgeiser/promptkit/textinput"
)

// ErrAborted is returned when the user dismisses the prompt.
var ErrAborted = errors.New("input aborted")

// Input prompts for one line of text.  Empty input is allowed and returned
// as the empty string.
func Input(prompt, placeholder string) (string, error) {
	input := textinput.New(prompt)
	input.Placeholder = placeholder
	input.Validate = func(string) error { return nil }

	value, err := input.RunPrompt()
	if err != nil {
		if errors.Is(err, promptkit.ErrAborted) {
			return "", ErrAborted
		}

		return "", err
	}

	return value, nil
}
