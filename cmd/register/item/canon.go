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
	libitem "github.com/bureau-foundation/register/lib/item"
)

func canonCommand() *cli.Command {
	return &cli.Command{
		Name:    "canon",
		Aliases: []string{"fix"},
		Summary: "Print the canonical JSON of an item",
		Description: `Parse an item and print its canonical JSON on stdout.

Fails with exit status 1 when the input is not a JSON object, has a
key that is not a field name, repeats a key, or holds a value that
has no item representation (floats, nested objects).`,
		Usage: "register item canon <json>",
		Examples: []cli.Example{
			{
				Command: `register item canon '{"foo": "abc", "bar": "xyz"}'`,
			},
			{
				Description: "Canonicalise a file in place",
				Command:     "register item fix @item.json > item.canon.json",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if err := cli.ExactArgs("canon", args, 1); err != nil {
				return err
			}
			raw, err := cli.ReadArgument(args[0], os.Stdin)
			if err != nil {
				return err
			}
			logger.Debug("canonicalising item", "bytes", len(raw))
			return canon(raw, os.Stdout, os.Stderr)
		},
	}
}

func canon(raw []byte, stdout, stderr io.Writer) error {
	it, err := libitem.FromJSON(raw)
	if err != nil {
		return cli.Fail(stderr, errorMessage(err))
	}
	_, err = fmt.Fprintln(stdout, libitem.ToJSON(it))
	return err
}
