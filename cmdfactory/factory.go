// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2026, The repro-build Authors.

// Package cmdfactory turns an annotated options struct into a cobra
// command.  Flags are declared through struct tags (`long`, `short`,
// `usage`, `default`, `env`, `noattribute`) so a command's surface lives
// next to the fields its Run method consumes.
package cmdfactory

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Runnable is the contract of every command's options struct.
type Runnable interface {
	Run(ctx context.Context, args []string) error
}

// PreRunnable is optionally implemented by options structs that need to
// massage flags or the command context before Run.
type PreRunnable interface {
	Pre(cmd *cobra.Command, args []string) error
}

// New constructs a cobra command around the given options struct.  Struct
// fields carrying a `long` tag become flags bound directly to the fields;
// an `env` tag seeds the flag's default from the environment.
func New(obj Runnable, cmd cobra.Command) (*cobra.Command, error) {
	c := cmd

	c.SilenceErrors = true
	c.SilenceUsage = true

	if err := attributeFlags(c.Flags(), obj); err != nil {
		return nil, err
	}

	if c.RunE == nil {
		c.RunE = func(cmd *cobra.Command, args []string) error {
			if pre, ok := obj.(PreRunnable); ok {
				if err := pre.Pre(cmd, args); err != nil {
					return err
				}
			}

			return obj.Run(cmd.Context(), args)
		}
	}

	return &c, nil
}

// AttributeFlags registers the annotated fields of obj as persistent flags
// of cmd.  Used for global configuration structs whose values should be
// overridable on every subcommand.
func AttributeFlags(cmd *cobra.Command, obj any, _ ...string) error {
	return attributeFlags(cmd.PersistentFlags(), obj)
}

func attributeFlags(flags *pflag.FlagSet, obj any) error {
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return fmt.Errorf("expected options struct, got %s", v.Kind())
	}

	return attributeStructFlags(flags, v)
}

func attributeStructFlags(flags *pflag.FlagSet, v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)

		if !field.IsExported() || field.Tag.Get("noattribute") == "true" {
			continue
		}

		// Anonymous nested structs carry grouped flags (e.g. Log.Level).
		if field.Type.Kind() == reflect.Struct && field.Tag.Get("long") == "" {
			if err := attributeStructFlags(flags, value); err != nil {
				return err
			}
			continue
		}

		long := field.Tag.Get("long")
		if long == "" {
			continue
		}

		var (
			short    = field.Tag.Get("short")
			usage    = field.Tag.Get("usage")
			defValue = field.Tag.Get("default")
		)

		if env := field.Tag.Get("env"); env != "" {
			if fromEnv, ok := os.LookupEnv(env); ok {
				defValue = fromEnv
			}
		}

		switch field.Type.Kind() {
		case reflect.String:
			flags.StringVarP(value.Addr().Interface().(*string), long, short, defValue, usage)

		case reflect.Bool:
			def := false
			if defValue != "" {
				parsed, err := strconv.ParseBool(defValue)
				if err != nil {
					return fmt.Errorf("flag --%s: invalid bool default %q: %w", long, defValue, err)
				}
				def = parsed
			}
			flags.BoolVarP(value.Addr().Interface().(*bool), long, short, def, usage)

		case reflect.Int:
			def := 0
			if defValue != "" {
				parsed, err := strconv.Atoi(defValue)
				if err != nil {
					return fmt.Errorf("flag --%s: invalid int default %q: %w", long, defValue, err)
				}
				def = parsed
			}
			flags.IntVarP(value.Addr().Interface().(*int), long, short, def, usage)

		case reflect.Uint64:
			var def uint64
			if defValue != "" {
				parsed, err := strconv.ParseUint(defValue, 10, 64)
				if err != nil {
					return fmt.Errorf("flag --%s: invalid uint default %q: %w", long, defValue, err)
				}
				def = parsed
			}
			flags.Uint64VarP(value.Addr().Interface().(*uint64), long, short, def, usage)

		case reflect.Slice:
			if field.Type.Elem().Kind() != reflect.String {
				return fmt.Errorf("flag --%s: unsupported slice type %s", long, field.Type)
			}
			var def []string
			if defValue != "" {
				def = strings.Split(defValue, ",")
			}
			flags.StringSliceVarP(value.Addr().Interface().(*[]string), long, short, def, usage)

		default:
			return fmt.Errorf("flag --%s: unsupported field type %s", long, field.Type)
		}
	}

	return nil
}
