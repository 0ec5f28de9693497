// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.
package cmdfactory

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
)

type testOptions struct {
	Name    string   `long:"name" short:"n" usage:"a name" default:"anon"`
	Force   bool     `long:"force" usage:"force it"`
	Count   int      `long:"count" usage:"how many" default:"3"`
	Skipped string   `noattribute:"true"`
	Dirs    []string `long:"dir" usage:"dirs"`

	Nested struct {
		Level string `long:"level" usage:"a level" default:"info" env:"CMDFACTORY_TEST_LEVEL"`
	}

	ran  bool
	args []string
}

func (o *testOptions) Run(_ context.Context, args []string) error {
	o.ran = true
	o.args = args
	return nil
}

func TestNewBindsFlags(t *testing.T) {
	opts := &testOptions{}

	cmd, err := New(opts, cobra.Command{Use: "test"})
	if err != nil {
		t.Fatal(err)
	}

	cmd.SetArgs([]string{"--name", "bob", "--force", "--count", "7", "--dir", "a", "--dir", "b", "--level", "debug", "posarg"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}

	if !opts.ran {
		t.Fatal("Run was not invoked")
	}

	if opts.Name != "bob" || !opts.Force || opts.Count != 7 {
		t.Errorf("flags not bound: %+v", opts)
	}

	if len(opts.Dirs) != 2 || opts.Dirs[0] != "a" || opts.Dirs[1] != "b" {
		t.Errorf("slice flag not bound: %v", opts.Dirs)
	}

	if opts.Nested.Level != "debug" {
		t.Errorf("nested flag not bound: %q", opts.Nested.Level)
	}

	if len(opts.args) != 1 || opts.args[0] != "posarg" {
		t.Errorf("positional args not passed through: %v", opts.args)
	}
}

func TestNewDefaults(t *testing.T) {
	opts := &testOptions{}

	cmd, err := New(opts, cobra.Command{Use: "test"})
	if err != nil {
		t.Fatal(err)
	}

	cmd.SetArgs(nil)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}

	if opts.Name != "anon" || opts.Count != 3 || opts.Nested.Level != "info" {
		t.Errorf("tag defaults not applied: %+v", opts)
	}
}

func TestEnvSeedsDefault(t *testing.T) {
	t.Setenv("CMDFACTORY_TEST_LEVEL", "trace")

	opts := &testOptions{}

	cmd, err := New(opts, cobra.Command{Use: "test"})
	if err != nil {
		t.Fatal(err)
	}

	cmd.SetArgs(nil)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}

	if opts.Nested.Level != "trace" {
		t.Errorf("environment did not seed default: %q", opts.Nested.Level)
	}
}
