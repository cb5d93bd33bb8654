// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package item

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode"

	"github.com/bureau-foundation/register/cmd/register/cli"
	"github.com/bureau-foundation/register/lib/codec"
	libitem "github.com/bureau-foundation/register/lib/item"
)

type decodeParams struct {
	Hex bool `json:"hex" flag:"hex,x" desc:"treat input as hex-encoded CBOR"`
}

func decodeCommand() *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Convert CBOR items back to canonical JSON",
		Description: `Read a CBOR sequence (RFC 8742) of items, as written by
"register item cbor --raw", and print the canonical JSON of each on its
own line.

Input is read from the named file, or from stdin when the argument is
"-" or absent. With --hex the input is hex text; whitespace between
digits is ignored.`,
		Usage:  "register item decode [file] [--hex]",
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 1 {
				return fmt.Errorf("decode takes at most one file, got %d arguments", len(args))
			}
			data, err := readCBORInput(args, os.Stdin, params.Hex)
			if err != nil {
				return err
			}
			logger.Debug("decoding CBOR sequence", "bytes", len(data))
			return decodeSequence(data, os.Stdout)
		},
	}
}

// readCBORInput reads binary input from the file named by args[0], or
// from stdin. Unlike positional JSON arguments, nothing is trimmed.
func readCBORInput(args []string, stdin io.Reader, hexMode bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", args[0], err)
		}
	}

	if hexMode {
		return decodeHexInput(data)
	}
	return data, nil
}

// decodeHexInput strips whitespace from hex-encoded input and decodes
// it to binary.
func decodeHexInput(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded[:count], nil
}

// decodeSequence decodes every item in data and writes its canonical
// JSON to w, one per line.
func decodeSequence(data []byte, w io.Writer) error {
	if len(data) == 0 {
		return fmt.Errorf("empty input: expected CBOR items")
	}

	decoder := codec.NewDecoder(bytes.NewReader(data))
	for index := 0; ; index++ {
		var it libitem.Item
		if err := decoder.Decode(&it); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("item %d at byte %d: %w", index, decoder.NumBytesRead(), err)
		}
		if _, err := fmt.Fprintln(w, libitem.ToJSON(&it)); err != nil {
			return err
		}
	}
}
