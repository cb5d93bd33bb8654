// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// register canonicalises and hashes register items, checks raw values
// against the register datatypes, and validates register schemas.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bureau-foundation/register/cmd/register/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own failure (item hash, value
		// check) return an ExitError; don't add an "error:" line.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return commands.Root().Execute(ctx, os.Args[1:], nil)
}
