// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package dockerfile

import (
	"context"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/SV592/repro-build/cmdfactory"
	"github.com/SV592/repro-build/config"
	"github.com/SV592/repro-build/iostreams"
	"github.com/SV592/repro-build/pipeline"
	"github.com/SV592/repro-build/tui"
)

type DockerfileOptions struct {
	Workflow string `long:"workflow" short:"w" usage:"Select the workflow file by relative path"`
	Job      string `long:"job" short:"j" usage:"Select the job by name"`
	Output   string `long:"output" short:"o" usage:"Write the generated Dockerfile to this path"`
	Plain    bool   `long:"plain" usage:"Use plain line prompts instead of interactive widgets"`
}

func NewCmd() *cobra.Command {
	cmd, err := cmdfactory.New(&DockerfileOptions{}, cobra.Command{
		Short:   "Generate a Dockerfile from a CI job without touching docker",
		Use:     "dockerfile [FLAGS] [DIR]",
		Aliases: []string{"df"},
		Args:    cmdfactory.MaxDirArgs(1),
		Long: heredoc.Doc(`
			Generate a Dockerfile reproducing one CI job of a project.

			Unlike build, this neither checks out a revision nor talks to a
			docker daemon; it only selects a job and writes the Dockerfile.`),
		Example: heredoc.Doc(`
			# Generate a Dockerfile for a job of the current project
			$ repro-build dockerfile

			# Pin the workflow file and job up front
			$ repro-build dockerfile -w .github/workflows/ci.yml -j test ./my-app`),
	})
	if err != nil {
		panic(err)
	}

	return cmd
}

func (opts *DockerfileOptions) Run(ctx context.Context, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	var presenter pipeline.Presenter
	if !config.G[config.ReproBuild](ctx).NoPrompt {
		ios := iostreams.G(ctx)
		if opts.Plain || !ios.IsStdinTTY() || !ios.IsStdoutTTY() {
			presenter = pipeline.NewConsolePresenter(ios.In, ios.Out)
		} else {
			presenter = tui.NewPresenter()
		}
	}

	driver := &pipeline.Driver{
		Presenter:        presenter,
		Root:             root,
		WorkflowOverride: opts.Workflow,
		JobOverride:      opts.Job,
		Output:           opts.Output,
	}

	_, err := driver.Run(ctx)

	return err
}
