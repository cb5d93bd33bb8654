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
)

type hashParams struct {
	Force bool `json:"force" flag:"force" desc:"hash the canonical form even when the input is not canonical"`
}

func hashCommand(cfg *config.Config) *cli.Command {
	var params hashParams

	return &cli.Command{
		Name:    "hash",
		Summary: "Compute the content hash of items",
		Description: `Parse each item and print the lower-case hex SHA-256 of its canonical
JSON, one line per input in input order.

Without --force the raw input must already be canonical: hashing a
non-canonical input fails with "The given item is not canonical" so
that a stored item and its hash cannot silently drift apart. With
--force the canonical hash is printed unconditionally.

Several inputs are hashed concurrently (see hash.workers in the
config file). The exit status is 1 if any input failed.`,
		Usage:  "register item hash <json>... [--force]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Command: `register item hash '{"bar":"xyz","foo":"abc"}'`,
			},
			{
				Description: "Hash a non-canonical item",
				Command:     `register item hash --force '{ "foo": "abc", "bar": "xyz" }'`,
			},
			{
				Description: "Hash every item in a directory",
				Command:     "register item hash --force $(printf '@%s ' items/*.json)",
			},
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) == 0 {
				return fmt.Errorf("hash requires at least one item")
			}
			inputs, err := cli.ReadArguments(args, os.Stdin)
			if err != nil {
				return err
			}
			options := libitem.HashOptions{Force: params.Force, Workers: cfg.Hash.Workers}
			logger.Debug("hashing items", "inputs", len(inputs), "force", options.Force, "workers", options.Workers)
			return hash(ctx, inputs, options, os.Stdout, os.Stderr)
		},
	}
}

// hash prints one hash per successful input. With a single input the
// error line is printed bare; with several it names the input.
func hash(ctx context.Context, inputs [][]byte, options libitem.HashOptions, stdout, stderr io.Writer) error {
	results := libitem.HashAll(ctx, inputs, options)
	failed := 0
	for index, result := range results {
		if result.Err != nil {
			failed++
			if len(results) == 1 {
				fmt.Fprintln(stderr, errorMessage(result.Err))
			} else {
				fmt.Fprintf(stderr, "input %d: %s\n", index+1, errorMessage(result.Err))
			}
			continue
		}
		if _, err := fmt.Fprintln(stdout, result.Hash); err != nil {
			return err
		}
	}
	if failed > 0 {
		return &cli.ExitError{Code: 1}
	}
	return nil
}
