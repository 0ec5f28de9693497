// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package reprobuild

import (
	"context"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/rancher/wrangler/pkg/signals"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/SV592/repro-build/cmdfactory"
	"github.com/SV592/repro-build/config"
	"github.com/SV592/repro-build/internal/cli"
	"github.com/SV592/repro-build/internal/cli/reprobuild/build"
	"github.com/SV592/repro-build/internal/cli/reprobuild/dockerfile"
	"github.com/SV592/repro-build/internal/cli/reprobuild/doctor"
	"github.com/SV592/repro-build/internal/cli/reprobuild/workflows"
	"github.com/SV592/repro-build/internal/version"
	"github.com/SV592/repro-build/iostreams"
	"github.com/SV592/repro-build/log"
)

type ReproBuildOptions struct{}

func NewCmd() *cobra.Command {
	cmd, err := cmdfactory.New(&ReproBuildOptions{}, cobra.Command{
		Short: "Reproduce CI jobs in docker images",
		Use:   "repro-build [FLAGS] SUBCOMMAND",
		Long: heredoc.Docf(`
			Reproduce CI jobs in docker images.

			Version:          %s
			Documentation:    https://github.com/SV592/repro-build#readme
			Issues & support: https://github.com/SV592/repro-build/issues`, version.Version()),
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	})
	if err != nil {
		panic(err)
	}

	cmd.AddCommand(build.NewCmd())
	cmd.AddCommand(dockerfile.NewCmd())
	cmd.AddCommand(workflows.NewCmd())
	cmd.AddCommand(doctor.NewCmd())

	return cmd
}

func (*ReproBuildOptions) Run(_ context.Context, args []string) error {
	return pflag.ErrHelp
}

func Main(args []string) int {
	cmd := NewCmd()
	cmd.SetArgs(args)

	ctx := signals.SetupSignalContext()
	copts := &cli.CliOptions{}

	for _, o := range []cli.CliOption{
		cli.WithDefaultConfigManager(cmd),
		cli.WithDefaultIOStreams(),
		cli.WithDefaultLogger(),
	} {
		if err := o(copts); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	ctx = config.WithConfigManager(ctx, copts.ConfigManager)
	ctx = log.WithLogger(ctx, copts.Logger)

	if copts.IOStreams != nil {
		ctx = iostreams.WithIOStreams(ctx, copts.IOStreams)
	}

	log.G(ctx).
		WithField("version", version.Version()).
		Debugf("repro-build")

	return cmdfactory.Main(ctx, cmd)
}
