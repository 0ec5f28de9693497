// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.

// Package engine builds images and runs containers through the docker
// API, streaming daemon output to the session's streams.
package engine

import (
	"context"
	"fmt"
	"os"

	clibuild "github.com/docker/cli/cli/command/image/build"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/archive"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/docker/go-connections/nat"
	"github.com/dustin/go-humanize"
	"github.com/google/shlex"

	"github.com/SV592/repro-build/config"
	"github.com/SV592/repro-build/iostreams"
	"github.com/SV592/repro-build/log"
)

// Docker talks to a docker daemon.  The host comes from the environment
// unless overridden in configuration.
type Docker struct {
	client *client.Client
}

func NewDocker(ctx context.Context) (*Docker, error) {
	opts := []client.Opt{
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	}

	if host := config.G[config.ReproBuild](ctx).Docker.Host; host != "" {
		opts = append(opts, client.WithHost(host))
	}

	c, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating docker client: %w", err)
	}

	return &Docker{client: c}, nil
}

func (d *Docker) Close() error {
	return d.client.Close()
}

// Ping checks that the daemon is reachable.
func (d *Docker) Ping(ctx context.Context) error {
	if _, err := d.client.Ping(ctx); err != nil {
		return fmt.Errorf("pinging docker daemon: %w", err)
	}

	return nil
}

// Version returns the daemon's server version.
func (d *Docker) Version(ctx context.Context) (string, error) {
	v, err := d.client.ServerVersion(ctx)
	if err != nil {
		return "", fmt.Errorf("querying docker daemon: %w", err)
	}

	return v.Version, nil
}

// Build tars contextDir, injects the Dockerfile the way `docker build -f`
// does, and streams build progress to the session output.  The Dockerfile
// may live outside the context directory.
func (d *Docker) Build(ctx context.Context, contextDir, dockerfile, tag string) error {
	if err := clibuild.ValidateContextDirectory(contextDir, nil); err != nil {
		return fmt.Errorf("validating build context: %w", err)
	}

	excludes, err := clibuild.ReadDockerignore(contextDir)
	if err != nil {
		return fmt.Errorf("reading .dockerignore: %w", err)
	}

	buildCtx, err := archive.TarWithOptions(contextDir, &archive.TarOptions{
		ExcludePatterns: excludes,
	})
	if err != nil {
		return fmt.Errorf("preparing build context: %w", err)
	}

	dockerfileCtx, err := os.Open(dockerfile)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dockerfile, err)
	}
	defer dockerfileCtx.Close()

	buildCtx, relDockerfile, err := clibuild.AddDockerfileToBuildContext(dockerfileCtx, buildCtx)
	if err != nil {
		return fmt.Errorf("adding Dockerfile to build context: %w", err)
	}

	resp, err := d.client.ImageBuild(ctx, buildCtx, types.ImageBuildOptions{
		Tags:       []string{tag},
		Dockerfile: relDockerfile,
		Remove:     true,
	})
	if err != nil {
		return fmt.Errorf("starting image build: %w", err)
	}
	defer resp.Body.Close()

	ios := iostreams.G(ctx)

	var fd uintptr
	if f, ok := ios.Out.(*os.File); ok {
		fd = f.Fd()
	}

	if err := jsonmessage.DisplayJSONMessagesStream(resp.Body, ios.Out, fd, ios.IsStdoutTTY(), nil); err != nil {
		return fmt.Errorf("image build failed: %w", err)
	}

	if inspect, err := d.client.ImageInspect(ctx, tag); err == nil {
		log.G(ctx).
			WithField("tag", tag).
			WithField("size", humanize.Bytes(uint64(inspect.Size))).
			Info("image built")
	}

	return nil
}

// Run creates a self-removing container from image, starts it, and
// relays its output until it exits.  A non-zero container exit status
// is surfaced as an error.
func (d *Docker) Run(ctx context.Context, image, name, port, command string) error {
	cfg := &container.Config{
		Image: image,
	}

	if command != "" {
		args, err := shlex.Split(command)
		if err != nil {
			return fmt.Errorf("parsing command %q: %w", command, err)
		}

		cfg.Cmd = args
	}

	hostCfg := &container.HostConfig{
		AutoRemove: true,
	}

	if port != "" {
		exposed, bindings, err := nat.ParsePortSpecs([]string{port})
		if err != nil {
			return fmt.Errorf("parsing port %q: %w", port, err)
		}

		cfg.ExposedPorts = exposed
		hostCfg.PortBindings = bindings
	}

	created, err := d.client.ContainerCreate(ctx, cfg, hostCfg, nil, nil, name)
	if err != nil {
		return fmt.Errorf("creating container: %w", err)
	}

	// Register the waiter before starting so the exit is never missed.
	waitCh, errCh := d.client.ContainerWait(ctx, created.ID, container.WaitConditionNextExit)

	if err := d.client.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		return fmt.Errorf("starting container: %w", err)
	}

	log.G(ctx).WithField("container", created.ID[:12]).Info("container started")

	logs, err := d.client.ContainerLogs(ctx, created.ID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     true,
	})
	if err != nil {
		return fmt.Errorf("attaching to container logs: %w", err)
	}
	defer logs.Close()

	ios := iostreams.G(ctx)
	if _, err := stdcopy.StdCopy(ios.Out, ios.ErrOut, logs); err != nil {
		log.G(ctx).Warnf("relaying container output: %v", err)
	}

	select {
	case err := <-errCh:
		return fmt.Errorf("waiting for container: %w", err)
	case status := <-waitCh:
		if status.StatusCode != 0 {
			return fmt.Errorf("container exited with status %d", status.StatusCode)
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}
