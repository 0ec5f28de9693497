// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/cli/safeexec"
	"github.com/spf13/cobra"

	"github.com/SV592/repro-build/cmdfactory"
	"github.com/SV592/repro-build/config"
	"github.com/SV592/repro-build/engine"
	"github.com/SV592/repro-build/iostreams"
)

type DoctorOptions struct{}

type checkResult struct {
	Name   string
	Status string
	Detail string
}

func NewCmd() *cobra.Command {
	cmd, err := cmdfactory.New(&DoctorOptions{}, cobra.Command{
		Short: "Run local environment checks",
		Use:   "doctor",
		Args:  cobra.NoArgs,
		Long:  "Run local host checks for the reproduction prerequisites: git, a reachable docker daemon, and a usable configuration file.",
	})
	if err != nil {
		panic(err)
	}

	return cmd
}

func (opts *DoctorOptions) Run(ctx context.Context, _ []string) error {
	results := []checkResult{
		checkGit(),
		checkDocker(ctx),
		checkConfig(ctx),
	}

	ios := iostreams.G(ctx)
	cs := ios.ColorScheme()

	fmt.Fprintf(ios.Out, "%-10s %-6s %s\n", cs.Bold("CHECK"), cs.Bold("STATUS"), cs.Bold("DETAILS"))

	hasFailure := false
	for _, result := range results {
		status := result.Status
		switch status {
		case "PASS":
			status = cs.Green(status)
		case "WARN":
			status = cs.Yellow(status)
		case "FAIL":
			status = cs.Red(status)
			hasFailure = true
		}

		fmt.Fprintf(ios.Out, "%-10s %-6s %s\n", result.Name, status, result.Detail)
	}

	if hasFailure {
		return fmt.Errorf("doctor checks failed")
	}

	return nil
}

// checkGit looks for a git binary.  Revision handling goes through an
// embedded git implementation, so a missing binary only costs the user
// their usual git workflow, not this tool.
func checkGit() checkResult {
	path, err := safeexec.LookPath("git")
	if err != nil {
		return checkResult{Name: "git", Status: "WARN", Detail: "git executable not found in PATH (embedded git is used regardless)"}
	}

	return checkResult{Name: "git", Status: "PASS", Detail: fmt.Sprintf("found %s", path)}
}

func checkDocker(ctx context.Context) checkResult {
	eng, err := engine.NewDocker(ctx)
	if err != nil {
		return checkResult{Name: "docker", Status: "FAIL", Detail: err.Error()}
	}
	defer eng.Close()

	if err := eng.Ping(ctx); err != nil {
		return checkResult{Name: "docker", Status: "FAIL", Detail: "daemon unreachable (is docker running?)"}
	}

	version, err := eng.Version(ctx)
	if err != nil {
		return checkResult{Name: "docker", Status: "WARN", Detail: fmt.Sprintf("daemon reachable but version query failed: %v", err)}
	}

	return checkResult{Name: "docker", Status: "PASS", Detail: fmt.Sprintf("daemon v%s reachable", version)}
}

func checkConfig(ctx context.Context) checkResult {
	cfgm := config.M[config.ReproBuild](ctx)
	if cfgm == nil || cfgm.ConfigFile == "" {
		return checkResult{Name: "config", Status: "WARN", Detail: "no configuration file in use"}
	}

	if _, err := os.Stat(cfgm.ConfigFile); err != nil {
		return checkResult{Name: "config", Status: "WARN", Detail: fmt.Sprintf("configuration file missing: %s", cfgm.ConfigFile)}
	}

	return checkResult{Name: "config", Status: "PASS", Detail: cfgm.ConfigFile}
}
