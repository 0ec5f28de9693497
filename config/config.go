// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package config

// ReproBuild is the top-level configuration of the tool.  Fields are
// persisted as YAML under the user's config directory, may be overridden
// through the environment, and surface as global flags where a `long` tag
// is present.
type ReproBuild struct {
	NoPrompt bool   `yaml:"no_prompt" env:"REPROBUILD_NO_PROMPT" long:"no-prompt" usage:"Do not prompt for user interaction" default:"false"`
	NoColor  bool   `yaml:"no_color" env:"REPROBUILD_NO_COLOR" long:"no-color" usage:"Disable color output"`
	Editor   string `yaml:"editor,omitempty" env:"REPROBUILD_EDITOR" long:"editor" usage:"Set the text editor to open when prompted to edit a file"`

	// RuntimeFallback is the image tag used when the selected job declares
	// no runtime version.
	RuntimeFallback string `yaml:"runtime_fallback" env:"REPROBUILD_RUNTIME_FALLBACK" long:"runtime-fallback" usage:"Runtime image tag to use when a job declares no version" default:"lts"`

	// ExcludeDirs are directory names pruned while scanning for workflow
	// files and while listing project candidates.
	ExcludeDirs []string `yaml:"exclude_dirs" env:"REPROBUILD_EXCLUDE_DIRS" long:"exclude-dir" usage:"Directory names pruned during workflow discovery"`

	Docker struct {
		Host string `yaml:"host,omitempty" env:"DOCKER_HOST" long:"docker-host" usage:"Address of the Docker daemon socket"`
	} `yaml:"docker,omitempty"`

	Log struct {
		Level      string `yaml:"level" env:"REPROBUILD_LOG_LEVEL" long:"log-level" usage:"Log level verbosity. Choice of: [panic, fatal, error, warn, info, debug, trace]" default:"info"`
		Timestamps bool   `yaml:"timestamps" env:"REPROBUILD_LOG_TIMESTAMPS" long:"log-timestamps" usage:"Enable log timestamps"`
	} `yaml:"log"`

	Paths struct {
		Config string `yaml:"-" env:"REPROBUILD_PATHS_CONFIG" long:"config-dir" usage:"Path to repro-build config directory"`
	} `yaml:"paths,omitempty"`
}

// DefaultExcludeDirs is the built-in prune list for workflow discovery:
// dependency caches, version-control metadata, virtual environments and
// interpreter caches.
var DefaultExcludeDirs = []string{
	"node_modules",
	".git",
	"venv",
	".venv",
	"__pycache__",
}

// NewDefaultReproBuildConfig returns a configuration populated with the
// built-in defaults.
func NewDefaultReproBuildConfig() (*ReproBuild, error) {
	cfg := &ReproBuild{}
	cfg.RuntimeFallback = "lts"
	cfg.ExcludeDirs = append([]string{}, DefaultExcludeDirs...)
	cfg.Log.Level = "info"

	return cfg, nil
}
