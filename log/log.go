// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.

// Package log carries the logger through a context.Context so that every
// layer of the pipeline logs through the same configured logrus instance.
package log

import (
	"context"

	"github.com/sirupsen/logrus"
)

type loggerKey struct{}

// L is the fallback logger used when a context carries none.
var L = logrus.StandardLogger()

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *logrus.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// G returns the logger attached to the given context, or L.
func G(ctx context.Context) *logrus.Logger {
	if logger := ctx.Value(loggerKey{}); logger != nil {
		return logger.(*logrus.Logger)
	}

	return L
}

// Levels returns the accepted log level names, in increasing verbosity.
func Levels() []string {
	levels := make([]string, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		levels = append(levels, level.String())
	}

	return levels
}
