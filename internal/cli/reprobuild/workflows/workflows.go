// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package workflows

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/SV592/repro-build/cmdfactory"
	"github.com/SV592/repro-build/iostreams"
	"github.com/SV592/repro-build/workflow"
)

type WorkflowsOptions struct{}

func NewCmd() *cobra.Command {
	cmd, err := cmdfactory.New(&WorkflowsOptions{}, cobra.Command{
		Short:   "List the workflow files and jobs of a project",
		Use:     "workflows [DIR]",
		Aliases: []string{"wf", "ls"},
		Args:    cmdfactory.MaxDirArgs(1),
		Example: heredoc.Doc(`
			# List workflows of the current directory
			$ repro-build workflows

			# List workflows of another project
			$ repro-build workflows ./my-app`),
	})
	if err != nil {
		panic(err)
	}

	return cmd
}

func (opts *WorkflowsOptions) Run(ctx context.Context, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	files := workflow.Find(ctx, root)
	if len(files) == 0 {
		return fmt.Errorf("no workflow files found in %s", root)
	}

	tree := treeprint.NewWithRoot(root)

	for _, file := range files {
		branch := tree.AddBranch(file.Rel)

		jobs := workflow.Parse(ctx, file)
		if len(jobs) == 0 {
			branch.AddNode("(no reproducible jobs)")
			continue
		}

		for _, job := range jobs {
			version := job.RuntimeVersion
			if version == "" {
				version = "unversioned"
			}

			branch.AddNode(fmt.Sprintf("%s (%d steps, node %s)", job.Name, len(job.Steps), version))
		}
	}

	fmt.Fprint(iostreams.G(ctx).Out, tree.String())

	return nil
}
