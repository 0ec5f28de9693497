// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/SV592/repro-build/config"
	"github.com/SV592/repro-build/iostreams"
	"github.com/SV592/repro-build/log"
)

type dirEntry struct {
	name    string
	project bool
}

// SelectRoot navigates the filesystem from the working directory until
// the user settles on a project root.  Numbers open (or, for workflow
// projects, select) the listed subdirectory, '..' goes up, '.' or an
// empty line selects the current directory, any other input is tried as
// a path, and 'q' cancels.
func SelectRoot(ctx context.Context, p Presenter) (string, error) {
	if p == nil {
		return "", fmt.Errorf("no project directory given and prompting is disabled")
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determining working directory: %w", err)
	}

	out := iostreams.G(ctx).Out

	for {
		entries := listSubdirectories(ctx, dir)

		fmt.Fprintf(out, "\nCurrent directory: %s\n", dir)
		for i, entry := range entries {
			label := entry.name
			if entry.project {
				label += " (workflow project)"
			}
			fmt.Fprintf(out, "  [%d] %s\n", i+1, label)
		}

		answer, err := p.Input("Enter a number to open a directory, a path, '.' to select here, '..' to go up, or 'q' to quit", "")
		if err != nil {
			return "", err
		}

		answer = strings.TrimSpace(answer)

		switch {
		case strings.EqualFold(answer, "q"):
			return "", ErrCancelled

		case answer == "" || answer == ".":
			return dir, nil

		case answer == "..":
			dir = filepath.Dir(dir)

		default:
			if n, err := strconv.Atoi(answer); err == nil {
				if n < 1 || n > len(entries) {
					fmt.Fprintln(out, "Invalid number. Please choose a number from the list.")
					continue
				}

				next := filepath.Join(dir, entries[n-1].name)
				if entries[n-1].project {
					return next, nil
				}

				dir = next
				continue
			}

			candidate := answer
			if !filepath.IsAbs(candidate) {
				candidate = filepath.Join(dir, candidate)
			}

			if info, err := os.Stat(candidate); err != nil || !info.IsDir() {
				fmt.Fprintf(out, "Not a directory: %s\n", answer)
				continue
			}

			dir = candidate
		}
	}
}

// listSubdirectories returns the visible, non-excluded subdirectories of
// dir in name order, each flagged when it looks like a workflow project.
func listSubdirectories(ctx context.Context, dir string) []dirEntry {
	excluded := config.G[config.ReproBuild](ctx).ExcludeDirs
	if len(excluded) == 0 {
		excluded = config.DefaultExcludeDirs
	}

	fis, err := os.ReadDir(dir)
	if err != nil {
		log.G(ctx).Warnf("could not list %s: %v", dir, err)
		return nil
	}

	var entries []dirEntry

	for _, fi := range fis {
		if !fi.IsDir() {
			continue
		}
		if strings.HasPrefix(fi.Name(), ".") {
			continue
		}
		if slices.Contains(excluded, fi.Name()) {
			continue
		}

		entries = append(entries, dirEntry{
			name:    fi.Name(),
			project: containsWorkflow(filepath.Join(dir, fi.Name())),
		})
	}

	return entries
}

// containsWorkflow reports whether dir holds workflow YAML at its root or
// under .github/workflows.  It deliberately stays shallow so navigation
// stays responsive inside large trees.
func containsWorkflow(dir string) bool {
	for _, sub := range []string{dir, filepath.Join(dir, ".github", "workflows")} {
		fis, err := os.ReadDir(sub)
		if err != nil {
			continue
		}

		for _, fi := range fis {
			if fi.IsDir() {
				continue
			}

			name := strings.ToLower(fi.Name())
			if strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml") {
				return true
			}
		}
	}

	return false
}
