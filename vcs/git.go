// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.

// Package vcs wraps the git operations the pipeline needs: repository
// detection, HEAD resolution and revision checkout.
package vcs

import (
	"context"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Git implements the pipeline's version-control surface over go-git,
// so no git binary is required at run time.
type Git struct{}

func NewGit() *Git { return &Git{} }

func open(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
}

// IsRepository reports whether path lies inside a git working tree.
func (*Git) IsRepository(path string) bool {
	_, err := open(path)
	return err == nil
}

// CurrentRevision returns the full hash of HEAD.
func (*Git) CurrentRevision(_ context.Context, path string) (string, error) {
	repo, err := open(path)
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", path, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// Checkout switches the working tree to revision, which may be a hash,
// a branch, a tag, or anything else git rev-parse accepts.
func (*Git) Checkout(_ context.Context, path, revision string) error {
	repo, err := open(path)
	if err != nil {
		return fmt.Errorf("opening repository at %s: %w", path, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return fmt.Errorf("resolving revision %q: %w", revision, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}

	if err := wt.Checkout(&git.CheckoutOptions{Hash: *hash}); err != nil {
		return fmt.Errorf("checking out %s: %w", hash, err)
	}

	return nil
}
