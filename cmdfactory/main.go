// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package cmdfactory

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/SV592/repro-build/log"
)

// ExitStatuser is implemented by errors that want a specific process exit
// code instead of the generic failure code.
type ExitStatuser interface {
	error
	ExitStatus() int
}

// Main executes the command tree with the given context and maps the
// resulting error to a process exit code.
func Main(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if errors.Is(err, pflag.ErrHelp) {
		_ = cmd.Help()
		return 0
	}

	var exiter ExitStatuser
	if errors.As(err, &exiter) {
		if msg := exiter.Error(); msg != "" {
			log.G(ctx).Warn(msg)
		}

		return exiter.ExitStatus()
	}

	log.G(ctx).Errorf("%v", err)

	return 1
}
