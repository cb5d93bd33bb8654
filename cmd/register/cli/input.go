// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadArgument resolves a positional argument to its content. "-"
// reads all of stdin, "@path" reads the named file, and anything else
// is the content itself. A single trailing newline is removed from
// stdin and file content, since editors and shells add one.
func ReadArgument(arg string, stdin io.Reader) ([]byte, error) {
	var data []byte
	switch {
	case arg == "-":
		read, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		data = read
	case strings.HasPrefix(arg, "@") && len(arg) > 1:
		read, err := os.ReadFile(arg[1:])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", arg[1:], err)
		}
		data = read
	default:
		return []byte(arg), nil
	}

	if n := len(data); n > 0 && data[n-1] == '\n' {
		data = data[:n-1]
		if n := len(data); n > 0 && data[n-1] == '\r' {
			data = data[:n-1]
		}
	}
	return data, nil
}

// ReadArguments resolves every argument with ReadArgument. At most one
// argument may read stdin.
func ReadArguments(args []string, stdin io.Reader) ([][]byte, error) {
	inputs := make([][]byte, 0, len(args))
	stdinUsed := false
	for _, arg := range args {
		if arg == "-" {
			if stdinUsed {
				return nil, fmt.Errorf("stdin (-) given more than once")
			}
			stdinUsed = true
		}
		data, err := ReadArgument(arg, stdin)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, data)
	}
	return inputs, nil
}

// ExactArgs returns an error unless args has exactly n elements.
func ExactArgs(command string, args []string, n int) error {
	if len(args) != n {
		noun := "arguments"
		if n == 1 {
			noun = "argument"
		}
		return fmt.Errorf("%s takes exactly %d %s, got %d", command, n, noun, len(args))
	}
	return nil
}
