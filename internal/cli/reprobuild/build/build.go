// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package build

import (
	"context"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/SV592/repro-build/cmdfactory"
	"github.com/SV592/repro-build/config"
	"github.com/SV592/repro-build/engine"
	"github.com/SV592/repro-build/iostreams"
	"github.com/SV592/repro-build/pipeline"
	"github.com/SV592/repro-build/tui"
	"github.com/SV592/repro-build/vcs"
)

type BuildOptions struct {
	Revision string `long:"revision" short:"r" usage:"Check out this revision before reproducing"`
	Workflow string `long:"workflow" short:"w" usage:"Select the workflow file by relative path"`
	Job      string `long:"job" short:"j" usage:"Select the job by name"`
	Output   string `long:"output" short:"o" usage:"Write the generated Dockerfile to this path"`
	Tag      string `long:"tag" short:"t" usage:"Tag the built image with this name"`
	Name     string `long:"name" usage:"Assign this name to the container"`
	Port     string `long:"port" short:"p" usage:"Publish a container port, e.g. 8080:3000"`
	Cmd      string `long:"cmd" usage:"Override the container command"`
	NoDocker bool   `long:"no-docker" usage:"Stop after writing the Dockerfile"`
	Plain    bool   `long:"plain" usage:"Use plain line prompts instead of interactive widgets"`
}

func NewCmd() *cobra.Command {
	cmd, err := cmdfactory.New(&BuildOptions{}, cobra.Command{
		Short:   "Reproduce a CI job inside a docker image",
		Use:     "build [FLAGS] [DIR]",
		Aliases: []string{"b"},
		Args:    cmdfactory.MaxDirArgs(1),
		Long: heredoc.Doc(`
			Reproduce a CI job inside a docker image.

			The project's workflow files are discovered, one job is selected,
			and its run steps are baked into a generated Dockerfile which can
			then be built and run locally.  Without a DIR argument an
			interactive navigator picks the project, and a failed run
			restarts from project selection.`),
		Example: heredoc.Doc(`
			# Pick a project interactively and reproduce one of its CI jobs
			$ repro-build build

			# Reproduce the "test" job of ./my-app at a fixed revision
			$ repro-build build --revision 4f9c2d1 --job test ./my-app

			# Only generate the Dockerfile, skipping docker entirely
			$ repro-build build --no-docker ./my-app`),
	})
	if err != nil {
		panic(err)
	}

	return cmd
}

func (opts *BuildOptions) Run(ctx context.Context, args []string) error {
	root := ""
	if len(args) > 0 {
		root = args[0]
	}

	driver := &pipeline.Driver{
		VCS:              vcs.NewGit(),
		Presenter:        presenter(ctx, opts.Plain),
		Root:             root,
		Revision:         opts.Revision,
		WorkflowOverride: opts.Workflow,
		JobOverride:      opts.Job,
		Output:           opts.Output,
		Tag:              opts.Tag,
		ContainerName:    opts.Name,
		Port:             opts.Port,
		Command:          opts.Cmd,
	}

	if !opts.NoDocker {
		eng, err := engine.NewDocker(ctx)
		if err != nil {
			return err
		}
		defer eng.Close()

		driver.Engine = eng
	}

	_, err := driver.Run(ctx)

	return err
}

// presenter picks the prompting surface for this session: none when
// prompting is disabled, plain console prompts off a TTY or on request,
// and interactive widgets otherwise.
func presenter(ctx context.Context, plain bool) pipeline.Presenter {
	if config.G[config.ReproBuild](ctx).NoPrompt {
		return nil
	}

	ios := iostreams.G(ctx)
	if plain || !ios.IsStdinTTY() || !ios.IsStdoutTTY() {
		return pipeline.NewConsolePresenter(ios.In, ios.Out)
	}

	return tui.NewPresenter()
}
