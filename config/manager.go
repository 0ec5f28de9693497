// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// ConfigManager owns one configuration value and the file it round-trips
// through.
type ConfigManager[C any] struct {
	Config     *C
	ConfigFile string
}

type ConfigManagerOption[C any] func(*ConfigManager[C]) error

// WithFile sets the backing file of the manager.  When create is set, a
// missing file is written out with the current configuration so later runs
// find it.
func WithFile[C any](path string, create bool) ConfigManagerOption[C] {
	return func(cm *ConfigManager[C]) error {
		if path == "" {
			return nil
		}

		cm.ConfigFile = path

		if _, err := os.Stat(path); os.IsNotExist(err) {
			if !create {
				return nil
			}

			return cm.Write(true)
		}

		contents, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(contents, cm.Config); err != nil {
			return fmt.Errorf("parsing config file %s: %w", path, err)
		}

		return nil
	}
}

// NewConfigManager instantiates a manager around cfg and applies opts.
func NewConfigManager[C any](cfg *C, opts ...ConfigManagerOption[C]) (*ConfigManager[C], error) {
	cm := &ConfigManager[C]{
		Config: cfg,
	}

	for _, opt := range opts {
		if err := opt(cm); err != nil {
			return nil, err
		}
	}

	return cm, nil
}

// Write serializes the current configuration back to the backing file,
// creating parent directories when create is set.
func (cm *ConfigManager[C]) Write(create bool) error {
	if cm.ConfigFile == "" {
		return fmt.Errorf("no config file to write to")
	}

	if create {
		if err := os.MkdirAll(filepath.Dir(cm.ConfigFile), 0o755); err != nil {
			return err
		}
	}

	contents, err := yaml.Marshal(cm.Config)
	if err != nil {
		return err
	}

	return os.WriteFile(cm.ConfigFile, contents, 0o644)
}

// ConfigDir returns the directory holding the tool's configuration file.
func ConfigDir() string {
	if dir := os.Getenv("REPROBUILD_PATHS_CONFIG"); dir != "" {
		return dir
	}

	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "reprobuild")
	}

	home, err := homedir.Dir()
	if err != nil {
		return ".reprobuild"
	}

	return filepath.Join(home, ".config", "reprobuild")
}

// DefaultConfigFile returns the path of the tool's configuration file.
func DefaultConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

type contextKey[C any] struct{}

// WithConfigManager returns a new context with the manager attached.
func WithConfigManager[C any](ctx context.Context, cm *ConfigManager[C]) context.Context {
	return context.WithValue(ctx, contextKey[C]{}, cm)
}

// M returns the config manager attached to the context, or nil.
func M[C any](ctx context.Context) *ConfigManager[C] {
	if cm := ctx.Value(contextKey[C]{}); cm != nil {
		return cm.(*ConfigManager[C])
	}

	return nil
}

// G returns the configuration attached to the context.  When the context
// carries no manager a zero-value configuration is returned so read-only
// callers never have to nil-check.
func G[C any](ctx context.Context) *C {
	if cm := M[C](ctx); cm != nil {
		return cm.Config
	}

	return new(C)
}
