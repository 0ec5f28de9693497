// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/SV592/repro-build/buildfile"
	"github.com/SV592/repro-build/config"
	"github.com/SV592/repro-build/iostreams"
	"github.com/SV592/repro-build/log"
	"github.com/SV592/repro-build/workflow"
)

// VCS abstracts the version-control operations the pipeline needs.
type VCS interface {
	// IsRepository reports whether path is inside a repository.
	IsRepository(path string) bool

	// CurrentRevision returns the full hash of the checked-out revision.
	CurrentRevision(ctx context.Context, path string) (string, error)

	// Checkout switches the working tree to the named revision.
	Checkout(ctx context.Context, path, revision string) error
}

// Engine abstracts the container engine the pipeline builds and runs
// images with.  A nil engine stops the pipeline after rendering.
type Engine interface {
	Build(ctx context.Context, contextDir, dockerfile, tag string) error
	Run(ctx context.Context, image, name, port, command string) error
}

// Driver executes the reproduction pipeline.  Zero-value fields mean
// "ask": an empty Root starts the directory navigator, empty overrides
// defer to prompts, and a nil Presenter disables prompting entirely.
type Driver struct {
	VCS       VCS
	Engine    Engine
	Presenter Presenter

	// Root is the project directory, empty to select interactively.
	Root string

	// Revision pins the revision to reproduce without prompting.
	Revision string

	// WorkflowOverride and JobOverride preselect candidates by relative
	// path and by name respectively.
	WorkflowOverride string
	JobOverride      string

	// Output overrides the generated Dockerfile path.
	Output string

	// Tag overrides the derived image tag.
	Tag string

	// ContainerName, Port and Command shape the optional container run.
	ContainerName string
	Port          string
	Command       string
}

// Run executes the pipeline until it completes, the user quits, or a
// failure occurs with no way to restart.  Failures and mid-run
// cancellations restart from project selection as long as the root is
// chosen interactively; with a fixed root they are terminal.
func (d *Driver) Run(ctx context.Context) (*Context, error) {
	interactive := d.Root == ""

	for {
		pc := &Context{}

		root := d.Root
		if root == "" {
			chosen, err := SelectRoot(ctx, d.Presenter)
			if errors.Is(err, ErrCancelled) {
				return nil, ErrQuit
			}
			if err != nil {
				return nil, err
			}

			root = chosen
		}

		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("resolving project directory: %w", err)
		}

		pc.Root = abs
		pc.advance(StateRootChosen)

		err = d.run(ctx, pc)
		if err == nil {
			return pc, nil
		}

		if errors.Is(err, ErrQuit) {
			return pc, err
		}

		if !interactive {
			return pc, err
		}

		log.G(ctx).Warnf("%v", err)
		log.G(ctx).Warn("restarting from project selection")
	}
}

func (d *Driver) run(ctx context.Context, pc *Context) error {
	if err := d.resolveRevision(ctx, pc); err != nil {
		return err
	}

	pc.advance(StateRevisionResolved)

	pc.Files = workflow.Find(ctx, pc.Root)
	pc.advance(StateFilesDiscovered)

	file, err := Choose(ctx, "workflow file", pc.Files, d.WorkflowOverride, func(f workflow.File) string { return f.Rel }, d.Presenter)
	if err != nil {
		return err
	}

	pc.File = file
	pc.advance(StateFileSelected)

	pc.Jobs = workflow.Parse(ctx, *pc.File)
	pc.advance(StateJobsExtracted)

	job, err := Choose(ctx, "job", pc.Jobs, d.JobOverride, func(j workflow.Job) string { return j.Name }, d.Presenter)
	if err != nil {
		return err
	}

	pc.Job = job
	pc.advance(StateJobSelected)

	pc.Steps = slices.Clone(job.Steps)

	pc.RuntimeVersion = job.RuntimeVersion
	if pc.RuntimeVersion == "" {
		fallback := config.G[config.ReproBuild](ctx).RuntimeFallback
		if fallback == "" {
			fallback = "lts"
		}

		log.G(ctx).Warnf("job %q declares no runtime version, falling back to %q", job.Name, fallback)

		pc.RuntimeVersion = fallback
	}

	if err := d.render(ctx, pc); err != nil {
		return err
	}

	if err := d.build(ctx, pc); err != nil {
		return err
	}

	pc.advance(StateComplete)

	return nil
}

// resolveRevision settles which revision the run reproduces.  Outside a
// repository the working tree is built as-is; inside one the current
// commit is offered, with the option to name another or to quit.
func (d *Driver) resolveRevision(ctx context.Context, pc *Context) error {
	if d.VCS == nil {
		return nil
	}

	if !d.VCS.IsRepository(pc.Root) {
		if d.Revision != "" {
			return fmt.Errorf("revision %q requested but %s is not a repository", d.Revision, pc.Root)
		}

		log.G(ctx).Warnf("%s is not a repository, building the working tree as-is", pc.Root)

		return nil
	}

	if d.Revision != "" {
		if err := d.VCS.Checkout(ctx, pc.Root, d.Revision); err != nil {
			return fmt.Errorf("checking out %s: %w", d.Revision, err)
		}

		pc.Revision = d.Revision

		return nil
	}

	head, err := d.VCS.CurrentRevision(ctx, pc.Root)
	if err != nil {
		log.G(ctx).Warnf("could not determine current revision: %v", err)
		return nil
	}

	if d.Presenter == nil {
		log.G(ctx).Infof("using current revision %s", shortRevision(head))

		pc.Revision = head

		return nil
	}

	answer, err := d.Presenter.Input(
		fmt.Sprintf("Use current commit %s? [Y/n/q] (or enter a different hash)", shortRevision(head)), "")
	if errors.Is(err, ErrCancelled) {
		return ErrQuit
	}
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "q":
		return ErrQuit

	case "", "y", "yes":
		pc.Revision = head

		return nil

	case "n", "no":
		hash, err := d.Presenter.Input("Enter the commit hash to reproduce", shortRevision(head))
		if errors.Is(err, ErrCancelled) {
			return ErrQuit
		}
		if err != nil {
			return err
		}

		answer = strings.TrimSpace(hash)
	}

	if answer == "" {
		pc.Revision = head

		return nil
	}

	if err := d.VCS.Checkout(ctx, pc.Root, answer); err != nil {
		return fmt.Errorf("checking out %s: %w", answer, err)
	}

	pc.Revision = answer

	return nil
}

// render writes the Dockerfile, echoes it, and keeps the build context
// clean of local dependency directories.
func (d *Driver) render(ctx context.Context, pc *Context) error {
	project := filepath.Base(pc.Root)

	content, err := buildfile.Render(pc.RuntimeVersion, pc.Steps, project)
	if err != nil {
		return err
	}

	path := d.Output
	if path == "" {
		path = filepath.Join(pc.Root, buildfile.OutputName(project, pc.Revision))
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	pc.BuildfilePath = path

	log.G(ctx).Infof("wrote %s", path)
	fmt.Fprintln(iostreams.G(ctx).Out, content)

	if err := buildfile.EnsureDockerignore(pc.Root); err != nil {
		log.G(ctx).Warnf("could not update .dockerignore: %v", err)
	}

	return nil
}

// build optionally builds the image and runs a container from it, each
// behind its own confirmation when a presenter is available.
func (d *Driver) build(ctx context.Context, pc *Context) error {
	if d.Engine == nil {
		return nil
	}

	tag := d.Tag
	if tag == "" {
		tag = buildfile.ImageTag(pc.BuildfilePath)
	}

	if d.Presenter != nil {
		ok, err := d.Presenter.Confirm(fmt.Sprintf("Build docker image %q?", tag), true)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := d.Engine.Build(ctx, pc.Root, pc.BuildfilePath, tag); err != nil {
		return fmt.Errorf("building image %s: %w", tag, err)
	}

	pc.ImageTag = tag

	if d.Presenter != nil {
		ok, err := d.Presenter.Confirm(fmt.Sprintf("Run a container from %q?", tag), true)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := d.Engine.Run(ctx, tag, d.ContainerName, d.Port, d.Command); err != nil {
		return fmt.Errorf("running image %s: %w", tag, err)
	}

	return nil
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}

	return rev
}
