// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package cmdfactory

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// MaxDirArgs accepts up to n positional arguments, each of which must be
// an existing directory.
func MaxDirArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return fmt.Errorf("accepts at most %d arg(s), received %d", n, len(args))
		}

		for _, arg := range args {
			fi, err := os.Stat(arg)
			if err != nil {
				return fmt.Errorf("%s is not a valid directory: %w", arg, err)
			}

			if !fi.IsDir() {
				return fmt.Errorf("%s is not a directory", arg)
			}
		}

		return nil
	}
}
