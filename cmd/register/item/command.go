// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package item

import (
	"errors"

	"github.com/bureau-foundation/register/cmd/register/cli"
	"github.com/bureau-foundation/register/lib/config"
	libitem "github.com/bureau-foundation/register/lib/item"
)

// Command returns the "item" command group. cfg is read when a
// subcommand runs, after the root command has loaded it.
func Command(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "item",
		Summary: "Canonicalise, hash, and convert items",
		Description: `Work with items: flat JSON objects whose keys are field names
([a-z-]+) and whose values are strings, integers, booleans, null,
lists, or the {"type":"inapplicable"} marker.

The canonical form of an item has its fields in byte order, no
insignificant whitespace, and a fixed string escaping. The hash of an
item is the SHA-256 of its canonical form, so two items with the same
content always share a hash.`,
		Subcommands: []*cli.Command{
			canonCommand(),
			hashCommand(cfg),
			idCommand(),
			cborCommand(),
			decodeCommand(),
			conformCommand(cfg),
		},
		Examples: []cli.Example{
			{
				Description: "Canonicalise an item",
				Command:     `register item canon '{"foo": "abc", "bar": "xyz"}'`,
			},
			{
				Description: "Hash an item that is already canonical",
				Command:     `register item hash '{"bar":"xyz","foo":"abc"}'`,
			},
		},
	}
}

// errorMessage returns the line printed for a failed item operation.
func errorMessage(err error) string {
	if errors.Is(err, libitem.ErrNotCanonical) {
		return "The given item is not canonical"
	}
	return err.Error()
}
