// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package iostreams

import "github.com/mgutz/ansi"

var (
	bold   = ansi.ColorFunc("default+b")
	green  = ansi.ColorFunc("green")
	yellow = ansi.ColorFunc("yellow")
	red    = ansi.ColorFunc("red")
)

// Green colors s green unconditionally.  Prefer ColorScheme for output
// that must respect the session's color setting.
func Green(s string) string { return green(s) }

func Yellow(s string) string { return yellow(s) }

func Red(s string) string { return red(s) }

// ColorScheme colorizes strings only while color is enabled on the
// streams it came from.
type ColorScheme struct {
	enabled bool
}

func (s *IOStreams) ColorScheme() *ColorScheme {
	return &ColorScheme{enabled: s.colorEnabled}
}

func (c *ColorScheme) apply(f func(string) string, s string) string {
	if !c.enabled {
		return s
	}

	return f(s)
}

func (c *ColorScheme) Bold(s string) string { return c.apply(bold, s) }

func (c *ColorScheme) Green(s string) string { return c.apply(green, s) }

func (c *ColorScheme) Yellow(s string) string { return c.apply(yellow, s) }

func (c *ColorScheme) Red(s string) string { return c.apply(red, s) }
