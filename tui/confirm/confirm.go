// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.

// Package confirm provides a yes/no terminal prompt.
package confirm

import (
	"errors"

	"github.com/erikgeiser/promptkit"
	"github.com/erikgeiser/promptkit/confirmation"
)

// ErrAborted is returned when the user dismisses the prompt.
var ErrAborted = errors.New("confirmation aborted")

// Confirm asks question and returns the answer, preselecting def.
func Confirm(question string, def bool) (bool, error) {
	preselect := confirmation.No
	if def {
		preselect = confirmation.Yes
	}

	prompt := confirmation.New(question, preselect)

	answer, err := prompt.RunPrompt()
	if err != nil {
		if errors.Is(err, promptkit.ErrAborted) {
			return false, ErrAborted
		}

		return false, err
	}

	return answer, nil
}
