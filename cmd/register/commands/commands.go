// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete register command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/bureau-foundation/register/cmd/register/cli"
	itemcmd "github.com/bureau-foundation/register/cmd/register/item"
	schemacmd "github.com/bureau-foundation/register/cmd/register/schema"
	valuecmd "github.com/bureau-foundation/register/cmd/register/value"
	"github.com/bureau-foundation/register/lib/config"
	"github.com/bureau-foundation/register/lib/version"
)

// globalParams are the flags accepted before any subcommand.
type globalParams struct {
	Config   string `json:"config"    flag:"config"    desc:"config file (default: $REGISTER_CONFIG, else built-in defaults)"`
	LogLevel string `json:"log_level" flag:"log-level" desc:"log level: debug, info, warn, error (overrides log.level)"`
}

// Root builds and returns the complete register command tree. The
// config is loaded by the root's Prepare hook, before any subcommand
// runs, into the value every subcommand holds a pointer to.
func Root() *cli.Command {
	var params globalParams
	cfg := config.Default()

	return &cli.Command{
		Name: "register",
		Description: `register: canonical items, typed values, and content addressing.

Canonicalise and hash register items, check raw values against the
register datatypes, and validate register schemas.`,
		Usage:  "register [--config <path>] [--log-level <level>] <command> [flags]",
		Params: func() any { return &params },
		Prepare: func(*slog.Logger) (*slog.Logger, error) {
			loaded, err := config.Resolve(params.Config)
			if err != nil {
				return nil, err
			}
			*cfg = *loaded
			return newLogger(cfg, params.LogLevel)
		},
		Subcommands: []*cli.Command{
			itemcmd.Command(cfg),
			valuecmd.Command(),
			schemacmd.Command(),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Canonicalise an item",
				Command:     `register item canon '{"foo": "abc", "bar": "xyz"}'`,
			},
			{
				Description: "Hash an item, canonicalising it first",
				Command:     `register item hash --force '{"foo": "abc", "bar": "xyz"}'`,
			},
			{
				Description: "Check a value against a datatype",
				Command:     `register value check "POINT (0 0)" --type point`,
			},
			{
				Description: "Validate a schema",
				Command:     "register schema check country.toml",
			},
		},
	}
}

// newLogger builds the command logger from the config, with the
// --log-level flag taking precedence over log.level.
func newLogger(cfg *config.Config, levelFlag string) (*slog.Logger, error) {
	levelName := cfg.Log.Level
	if levelFlag != "" {
		levelName = levelFlag
	}
	level, err := config.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	return cli.NewCommandLogger(os.Stderr, level, cfg.Log.Format), nil
}

type versionParams struct {
	cli.JSONOutput
}

func versionCommand() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Params:  func() any { return &params },
		Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
			build := version.Current()
			if done, err := params.EmitJSON(build); done {
				return err
			}
			fmt.Printf("register %s\n", build.Full())
			return nil
		},
	}
}
