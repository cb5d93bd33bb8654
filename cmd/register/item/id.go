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

func idCommand() *cli.Command {
	var params hashParams

	return &cli.Command{
		Name:    "id",
		Summary: "Print the content identifier of an item",
		Description: `Print "sha-256:" followed by the item hash. The same canonical check
as "register item hash" applies; --force skips it.`,
		Usage:  "register item id <json> [--force]",
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if err := cli.ExactArgs("id", args, 1); err != nil {
				return err
			}
			raw, err := cli.ReadArgument(args[0], os.Stdin)
			if err != nil {
				return err
			}
			return id(raw, params.Force, os.Stdout, os.Stderr)
		},
	}
}

func id(raw []byte, force bool, stdout, stderr io.Writer) error {
	var (
		it  *libitem.Item
		err error
	)
	if force {
		it, err = libitem.FromJSON(raw)
	} else {
		it, _, err = libitem.CheckCanonical(raw)
	}
	if err != nil {
		return cli.Fail(stderr, errorMessage(err))
	}
	_, err = fmt.Fprintln(stdout, it.ID())
	return err
}
