// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package item

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/register/cmd/register/cli"
	"github.com/bureau-foundation/register/lib/config"
	libitem "github.com/bureau-foundation/register/lib/item"
	"github.com/bureau-foundation/register/lib/schema"
)

type conformParams struct {
	Schema string `json:"schema" flag:"schema,s" desc:"schema file (.toml, .yaml, .json); defaults to schema.path from the config"`
}

func conformCommand(cfg *config.Config) *cli.Command {
	var params conformParams

	return &cli.Command{
		Name:    "conform",
		Summary: "Check an item against a schema",
		Description: `Parse an item, check every field against the schema's attribute
datatypes, and print the canonical JSON of the typed item.

Each field must be declared by the schema and its value must parse as
the declared datatype; attributes with cardinality "n" take lists. The
primary key must be present. null and the inapplicable marker are
accepted for every attribute. Every failing field is reported, one
per line, and the exit status is 1.`,
		Usage:  "register item conform <json> --schema <path>",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Command: `register item conform --schema country.toml '{"country":"GB","name":"United Kingdom"}'`,
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs("conform", args, 1); err != nil {
				return err
			}
			path := params.Schema
			if path == "" {
				path = cfg.Schema.Path
			}
			if path == "" {
				return fmt.Errorf("no schema: use --schema or set schema.path in the config")
			}
			loaded, err := schema.Load(path)
			if err != nil {
				return err
			}
			raw, err := cli.ReadArgument(args[0], os.Stdin)
			if err != nil {
				return err
			}
			logger.Debug("conforming item", "schema", loaded.ID, "path", path)
			return conform(raw, loaded, os.Stdout, os.Stderr)
		},
	}
}

func conform(raw []byte, loaded *schema.Schema, stdout, stderr io.Writer) error {
	it, err := libitem.FromJSON(raw)
	if err != nil {
		return cli.Fail(stderr, errorMessage(err))
	}
	typed, err := loaded.Conform(it)
	if err != nil {
		// Conform joins one error per failing field.
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, problem := range joined.Unwrap() {
				fmt.Fprintln(stderr, problem)
			}
		} else {
			fmt.Fprintln(stderr, err)
		}
		return &cli.ExitError{Code: 1}
	}
	_, err = fmt.Fprintln(stdout, libitem.ToJSON(typed))
	return err
}
