// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package workflow

import (
	"regexp"
	"strings"
)

// versionPattern matches a leading dotted numeric version, optionally
// followed by a ".x" wildcard component.
var versionPattern = regexp.MustCompile(`^(\d+(?:\.\d+)*)(\.x)?`)

// NormalizeVersion reduces a runtime-version declaration to a usable image
// tag: the leading numeric MAJOR[.MINOR[.PATCH]] with any trailing ".x"
// wildcard stripped ("16.x" -> "16", "18.16.x" -> "18.16").  Declarations
// that do not start with a numeric version ("lts/*", "latest") are
// returned unmodified rather than rejected.
func NormalizeVersion(raw string) string {
	trimmed := strings.TrimSpace(raw)

	m := versionPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return trimmed
	}

	return m[1]
}
