// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package main

import (
	"os"

	"github.com/SV592/repro-build/internal/cli/reprobuild"
)

func main() {
	os.Exit(reprobuild.Main(os.Args[1:]))
}
