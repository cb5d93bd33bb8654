// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package value implements the "register value" command group, which
// checks raw strings against the value datatypes.
package value

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bureau-foundation/register/cmd/register/cli"
	libvalue "github.com/bureau-foundation/register/lib/value"
)

// Command returns the "value" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "value",
		Summary: "Check raw values against datatypes",
		Subcommands: []*cli.Command{
			checkCommand(),
			kindsCommand(),
		},
	}
}

type checkParams struct {
	cli.JSONOutput
	Type  libvalue.Kind `json:"type" flag:"type,t" desc:"datatype to check against (see 'register value kinds')"`
	Stdin bool          `json:"stdin" flag:"stdin" desc:"read the input from stdin, one list element per line"`
}

// checkResult is the --json output of value check.
type checkResult struct {
	Input string `json:"input"`
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

func checkCommand() *cli.Command {
	var params checkParams

	return &cli.Command{
		Name:    "check",
		Summary: "Validate a raw value against a datatype",
		Description: `Parse <input> as the datatype given by --type and print its canonical
rendering and kind. On failure the reason is printed to stderr and
the exit status is 1.

Arguments are checked literally, so "-" and "@alice" are values like
any other. Use --stdin to read the input from stdin instead. A
value starting with "-" must follow "--".

A list type such as "[point]" takes one argument per element.`,
		Usage:  "register value check [--stdin] --type <kind> [--json] [--] <input>...",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Command: `register value check "POINT (0 0)" --type point`,
			},
			{
				Description: "Check a content hash",
				Command:     `register value check sha-256:129332749e67eb9ab7390d7da2e88173367d001ac3e9e39f06e41690cd05e3ae --type hash`,
			},
			{
				Description: "Check a negative integer",
				Command:     `register value check --type integer -- -5`,
			},
			{
				Description: "Check text read from a file",
				Command:     `register value check --type text --stdin < notes.md`,
			},
			{
				Description: "Check a list of CURIEs",
				Command:     `register value check "gb:x" "fr:y" --type "[curie]"`,
			},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if params.Type.IsZero() {
				return fmt.Errorf("--type is required")
			}
			raws, err := checkInputs(args, params, os.Stdin)
			if err != nil {
				return err
			}
			return check(raws, params, os.Stdout, os.Stderr)
		},
	}
}

// checkInputs returns the raw values to check: the arguments as given,
// or with --stdin the content of stdin.
func checkInputs(args []string, params checkParams, stdin io.Reader) ([]string, error) {
	if params.Stdin {
		if len(args) > 0 {
			return nil, fmt.Errorf("--stdin takes no arguments, got %q", args[0])
		}
		data, err := cli.ReadArgument("-", stdin)
		if err != nil {
			return nil, err
		}
		if params.Type.IsList() {
			return strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"), nil
		}
		return []string{string(data)}, nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("check requires an input")
	}
	if !params.Type.IsList() {
		if err := cli.ExactArgs("check", args, 1); err != nil {
			return nil, err
		}
	}
	return args, nil
}

func check(raws []string, params checkParams, stdout, stderr io.Writer) error {
	var (
		parsed libvalue.Value
		err    error
	)
	if params.Type.IsList() {
		parsed, err = libvalue.ParseList(raws, params.Type)
	} else {
		parsed, err = libvalue.Parse(raws[0], params.Type)
	}

	result := checkResult{
		Input: strings.Join(raws, " "),
		Kind:  params.Type.String(),
	}
	if err != nil {
		result.Error = cause(err).Error()
	} else {
		result.Value = parsed.String()
		result.Kind = parsed.Kind().String()
	}

	if params.OutputJSON {
		if writeErr := cli.WriteJSON(stdout, result); writeErr != nil {
			return writeErr
		}
		if err != nil {
			return &cli.ExitError{Code: 1}
		}
		return nil
	}

	if err != nil {
		return cli.Fail(stderr, result.Error)
	}
	_, err = fmt.Fprintf(stdout, "%s\t%s\n", result.Value, result.Kind)
	return err
}

// cause returns the sub-parser cause of a value error, so users read
// "invalid algorithm" rather than the generic "invalid hash".
func cause(err error) error {
	var valueErr *libvalue.Error
	if errors.As(err, &valueErr) {
		return valueErr.Cause()
	}
	return err
}

type kindsParams struct {
	cli.JSONOutput
}

func kindsCommand() *cli.Command {
	var params kindsParams

	return &cli.Command{
		Name:    "kinds",
		Summary: "List the supported datatypes",
		Description: `List every scalar datatype accepted by --type. Any of them may be
wrapped in square brackets to name a list, such as "[point]".`,
		Usage:  "register value kinds [--json]",
		Params: func() any { return &params },
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("kinds takes no arguments, got %q", args[0])
			}
			var names []string
			for _, kind := range libvalue.Kinds() {
				names = append(names, kind.String())
			}
			if done, err := params.EmitJSON(names); done {
				return err
			}
			_, err := fmt.Fprintln(os.Stdout, strings.Join(names, "\n"))
			return err
		},
	}
}
