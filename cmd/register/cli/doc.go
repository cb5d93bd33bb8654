// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for the register binary.
//
// A [Command] tree is dispatched by the first positional argument.
// Flags are declared either with a Params struct whose fields carry
// flag/desc/default tags (see [BindFlags]) or with a hand-built
// [pflag.FlagSet]. A parent command with flags parses them before
// dispatch, which is how the root command carries --config and
// --log-level for every subcommand.
//
// Commands return errors; they never exit. A command whose non-zero
// exit is an expected outcome writes its own message and returns an
// [ExitError], which main turns into the exit status without printing
// anything further.
package cli
