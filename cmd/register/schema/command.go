// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema implements the "register schema" command group.
package schema

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/bureau-foundation/register/cmd/register/cli"
	libschema "github.com/bureau-foundation/register/lib/schema"
)

// Command returns the "schema" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "schema",
		Summary: "Validate and inspect register schemas",
		Description: `Schemas describe the primary key and attributes of a register. They
are read from TOML (.toml), YAML (.yaml, .yml), or JSON with comments
(.json, .jsonc); the format is chosen by the file extension.`,
		Subcommands: []*cli.Command{
			checkCommand(),
			showCommand(),
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:    "check",
		Summary: "Validate schema files",
		Description: `Load each schema file and report whether it is valid. Unknown fields,
missing required fields, repeated keys, invalid field names and
unknown datatypes are all errors. The exit status is 1 if any file
is invalid.`,
		Usage: "register schema check <path>...",
		Examples: []cli.Example{
			{
				Command: "register schema check schemas/*.toml",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) == 0 {
				return fmt.Errorf("check requires at least one schema file")
			}
			logger.Debug("checking schemas", "files", len(args))
			return check(args, os.Stdout, os.Stderr)
		},
	}
}

func check(paths []string, stdout, stderr io.Writer) error {
	failed := 0
	for _, path := range paths {
		loaded, err := libschema.Load(path)
		if err != nil {
			failed++
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(stdout, "%s: ok (%s, %d attributes)\n", path, loaded.ID, len(loaded.Attributes))
	}
	if failed > 0 {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

type showParams struct {
	cli.JSONOutput
}

// showResult is the --json output of schema show.
type showResult struct {
	*libschema.Schema
	Digest string `json:"digest"`
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Describe a schema",
		Description: `Load a schema and print its key, attributes and datatypes. The digest
is the SHA-256 of the schema's deterministic CBOR snapshot: the same
schema written as TOML, YAML or JSON has the same digest.`,
		Usage:  "register schema show <path> [--json]",
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if err := cli.ExactArgs("show", args, 1); err != nil {
				return err
			}
			loaded, err := libschema.Load(args[0])
			if err != nil {
				return err
			}
			digest, err := loaded.Digest()
			if err != nil {
				return err
			}
			if done, err := params.EmitJSON(showResult{Schema: loaded, Digest: digest.ID()}); done {
				return err
			}
			return show(loaded, digest.ID(), os.Stdout)
		},
	}
}

func show(loaded *libschema.Schema, digest string, w io.Writer) error {
	fmt.Fprintf(w, "ID:          %s\n", loaded.ID)
	if loaded.Label != "" {
		fmt.Fprintf(w, "Label:       %s\n", loaded.Label)
	}
	if loaded.Custodian != "" {
		fmt.Fprintf(w, "Custodian:   %s\n", loaded.Custodian)
	}
	if loaded.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", loaded.Description)
	}
	fmt.Fprintf(w, "Digest:      %s\n", digest)
	fmt.Fprintf(w, "Primary key: %s\n\n", loaded.PrimaryKey.ID)

	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "ATTRIBUTE\tDATATYPE\tLABEL\n")
	fmt.Fprintf(tw, "%s\t%s\t%s\n", loaded.PrimaryKey.ID, loaded.PrimaryKey.Datatype, loaded.PrimaryKey.Label)
	for _, attribute := range loaded.Attributes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", attribute.ID, attribute.Datatype, attribute.Label)
	}
	return tw.Flush()
}
