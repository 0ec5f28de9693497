// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package version

import "runtime/debug"

// Set via the linker at release build time:
//
//	-ldflags "-X github.com/SV592/repro-build/internal/version.version=v1.2.3"
var version = ""

// Version reports the release version, falling back to module build
// information for `go install` builds.
func Version() string {
	if version != "" {
		return version
	}

	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}

	return "(devel)"
}
