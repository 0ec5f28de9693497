// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.

// Package cli assembles the ambient services every command runs with:
// configuration, logging and I/O streams.
package cli

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SV592/repro-build/cmdfactory"
	"github.com/SV592/repro-build/config"
	"github.com/SV592/repro-build/iostreams"
	"github.com/SV592/repro-build/log"
)

// CliOptions carries the services wired into the command context at
// startup.
type CliOptions struct {
	ConfigManager *config.ConfigManager[config.ReproBuild]
	Logger        *logrus.Logger
	IOStreams     *iostreams.IOStreams
}

type CliOption func(*CliOptions) error

// WithDefaultConfigManager loads (or creates) the user's configuration
// file and registers its annotated fields as persistent flags of cmd, so
// every setting can be overridden per invocation.
func WithDefaultConfigManager(cmd *cobra.Command) CliOption {
	return func(copts *CliOptions) error {
		cfg, err := config.NewDefaultReproBuildConfig()
		if err != nil {
			return err
		}

		cfgm, err := config.NewConfigManager(cfg,
			config.WithFile[config.ReproBuild](config.DefaultConfigFile(), true),
		)
		if err != nil {
			return err
		}

		if err := cmdfactory.AttributeFlags(cmd, cfg); err != nil {
			return err
		}

		copts.ConfigManager = cfgm

		return nil
	}
}

// WithDefaultLogger builds the logger from the loaded configuration.
// It must run after WithDefaultConfigManager and WithDefaultIOStreams.
func WithDefaultLogger() CliOption {
	return func(copts *CliOptions) error {
		logger := log.L

		level := logrus.InfoLevel
		if copts.ConfigManager != nil {
			configured := strings.TrimSpace(copts.ConfigManager.Config.Log.Level)
			if configured != "" {
				parsed, err := logrus.ParseLevel(configured)
				if err != nil {
					return fmt.Errorf("unknown log level %q, expected one of %s", configured, strings.Join(log.Levels(), ", "))
				}

				level = parsed
			}
		}

		logger.SetLevel(level)

		formatter := &log.TextFormatter{
			TimestampFormat: "15:04:05",
		}

		if copts.ConfigManager != nil {
			formatter.FullTimestamp = copts.ConfigManager.Config.Log.Timestamps
		}

		if copts.IOStreams != nil {
			logger.SetOutput(copts.IOStreams.ErrOut)
			formatter.ForceColors = copts.IOStreams.ColorEnabled()
			formatter.DisableColors = !copts.IOStreams.ColorEnabled()
		}

		logger.SetFormatter(formatter)

		copts.Logger = logger

		return nil
	}
}

// WithDefaultIOStreams attaches the process streams, honoring a
// configured color opt-out.
func WithDefaultIOStreams() CliOption {
	return func(copts *CliOptions) error {
		ios := iostreams.System()

		if copts.ConfigManager != nil && copts.ConfigManager.Config.NoColor {
			ios.SetColorEnabled(false)
		}

		copts.IOStreams = ios

		return nil
	}
}
