// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package workflow

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/SV592/repro-build/config"
	"github.com/SV592/repro-build/log"
)

// Find walks root and returns every workflow file beneath it, sorted by
// path.  Directories named in the configured exclusion list are pruned
// before they are descended into.  Unreadable subtrees are logged and
// skipped; an unreadable root yields an empty result.
func Find(ctx context.Context, root string) []File {
	excluded := config.G[config.ReproBuild](ctx).ExcludeDirs
	if len(excluded) == 0 {
		excluded = config.DefaultExcludeDirs
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		log.G(ctx).Errorf("could not resolve %s: %v", root, err)
		return nil
	}

	var files []File

	_ = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == abs {
				log.G(ctx).Errorf("could not scan %s: %v", abs, err)
				return fs.SkipAll
			}

			log.G(ctx).Warnf("could not scan %s: %v", path, err)
			return nil
		}

		if d.IsDir() {
			if path != abs && slices.Contains(excluded, d.Name()) {
				return fs.SkipDir
			}

			return nil
		}

		if name := strings.ToLower(d.Name()); !strings.HasSuffix(name, ".yml") && !strings.HasSuffix(name, ".yaml") {
			return nil
		}

		rel, err := filepath.Rel(abs, path)
		if err != nil {
			rel = path
		}

		files = append(files, File{Path: path, Rel: rel})

		return nil
	})

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	return files
}
