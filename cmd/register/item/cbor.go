// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package item

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/register/cmd/register/cli"
	"github.com/bureau-foundation/register/lib/codec"
	libitem "github.com/bureau-foundation/register/lib/item"
)

type cborParams struct {
	Raw  bool `json:"raw"  flag:"raw"  desc:"write the CBOR bytes instead of hex"`
	Diag bool `json:"diag" flag:"diag" desc:"write RFC 8949 diagnostic notation instead of hex"`
}

func cborCommand() *cli.Command {
	var params cborParams

	return &cli.Command{
		Name:    "cbor",
		Summary: "Export an item as deterministic CBOR",
		Description: `Parse an item and encode it as a CBOR map using Core Deterministic
Encoding (RFC 8949 §4.2). Values keep their canonical JSON shapes:
text strings, integers, booleans, null, arrays, and the inapplicable
marker map. Equal items always produce identical bytes.

Output is lower-case hex by default. --raw writes the binary encoding
and --diag writes diagnostic notation for inspection.`,
		Usage:  "register item cbor <json> [--raw | --diag]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Command: `register item cbor '{"foo":"abc"}'`,
			},
			{
				Description: "Round-trip through CBOR",
				Command:     `register item cbor --raw @item.json | register item decode`,
			},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if err := cli.ExactArgs("cbor", args, 1); err != nil {
				return err
			}
			if params.Raw && params.Diag {
				return fmt.Errorf("--raw and --diag are mutually exclusive")
			}
			raw, err := cli.ReadArgument(args[0], os.Stdin)
			if err != nil {
				return err
			}
			return exportCBOR(raw, params, os.Stdout, os.Stderr)
		},
	}
}

func exportCBOR(raw []byte, params cborParams, stdout, stderr io.Writer) error {
	it, err := libitem.FromJSON(raw)
	if err != nil {
		return cli.Fail(stderr, errorMessage(err))
	}
	data, err := it.MarshalCBOR()
	if err != nil {
		return fmt.Errorf("encode CBOR: %w", err)
	}

	switch {
	case params.Raw:
		_, err = stdout.Write(data)
	case params.Diag:
		var notation string
		notation, err = codec.Diagnose(data)
		if err == nil {
			_, err = fmt.Fprintln(stdout, notation)
		}
	default:
		_, err = fmt.Fprintln(stdout, hex.EncodeToString(data))
	}
	return err
}
