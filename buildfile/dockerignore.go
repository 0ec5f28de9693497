// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package buildfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ignoreEntry keeps installed dependencies out of the build context so
// the generated Dockerfile installs them inside the image instead.
const ignoreEntry = "node_modules/"

// EnsureDockerignore guarantees root/.dockerignore excludes the local
// dependency directory, creating the file when absent and appending when
// the entry is missing.  An already-covered file is left untouched.
func EnsureDockerignore(root string) error {
	path := filepath.Join(root, ".dockerignore")

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == ignoreEntry || line == strings.TrimSuffix(ignoreEntry, "/") {
			return nil
		}
	}

	content := string(data)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += ignoreEntry + "\n"

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
