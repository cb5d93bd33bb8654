// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command represents a CLI command or subcommand.
type Command struct {
	// Name is the command name as typed by the user (e.g., "item", "hash").
	Name string

	// Aliases are alternative names accepted in place of Name.
	Aliases []string

	// Summary is a one-line description shown in the parent's help listing.
	Summary string

	// Description is shown in the command's own help output.
	Description string

	// Usage is the usage string. If empty, it is synthesized from the
	// command path and subcommands.
	Usage string

	// Examples are shown in the help output after the description.
	Examples []Example

	// Params returns a pointer to a struct whose tagged fields become
	// flags. Fields are populated before Prepare and Run are called.
	Params func() any

	// Flags returns a hand-built flag set. Used when Params is nil.
	Flags func() *pflag.FlagSet

	// Subcommands are nested commands dispatched by the first positional arg.
	Subcommands []*Command

	// Prepare runs after this command's flags are parsed and before
	// dispatch. It returns the logger handed to everything below it.
	Prepare func(logger *slog.Logger) (*slog.Logger, error)

	// Run executes the command with the remaining positional args.
	Run func(ctx context.Context, args []string, logger *slog.Logger) error

	// parent is set during dispatch to build the full command path for help.
	parent *Command
}

// Example is a usage example shown in help output.
type Example struct {
	// Description explains what the example does.
	Description string
	// Command is the literal command line.
	Command string
}

// Execute parses args and dispatches to the matching subcommand or to
// Run. logger may be nil, in which case log output is discarded until
// a Prepare hook installs a real logger.
func (c *Command) Execute(ctx context.Context, args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(os.Stderr)
		return nil
	}

	if flagSet := c.flagSet(); flagSet != nil {
		// A parent stops at the first positional argument so that
		// flags after the subcommand name belong to the subcommand.
		flagSet.SetInterspersed(len(c.Subcommands) == 0)
		flagSet.SetOutput(io.Discard)

		if err := flagSet.Parse(args); err != nil {
			if errors.Is(err, pflag.ErrHelp) {
				c.PrintHelp(os.Stderr)
				return nil
			}
			return c.flagError(err, args)
		}
		args = flagSet.Args()
	}

	if c.Prepare != nil {
		prepared, err := c.Prepare(logger)
		if err != nil {
			return err
		}
		logger = prepared
	}

	if len(c.Subcommands) > 0 && len(args) > 0 {
		name := args[0]
		if sub := c.subcommand(name); sub != nil {
			sub.parent = c
			return sub.Execute(ctx, args[1:], logger)
		}
		if c.Run == nil {
			if suggestion := suggestCommand(name, c.Subcommands); suggestion != "" {
				return fmt.Errorf("unknown command %q (did you mean %q?)\n\nRun '%s --help' for usage.",
					name, suggestion, c.fullName())
			}
			return fmt.Errorf("unknown command %q\n\nRun '%s --help' for usage.",
				name, c.fullName())
		}
	}

	if c.Run == nil {
		c.PrintHelp(os.Stderr)
		if len(c.Subcommands) > 0 {
			return fmt.Errorf("subcommand required")
		}
		return fmt.Errorf("no action defined for %q", c.fullName())
	}

	return c.Run(ctx, args, logger)
}

// flagSet builds the command's flag set, or returns nil when the
// command takes no flags.
func (c *Command) flagSet() *pflag.FlagSet {
	switch {
	case c.Params != nil:
		return FlagsFromParams(c.Name, c.Params())
	case c.Flags != nil:
		return c.Flags()
	}
	return nil
}

// flagError formats a flag parse failure with a suggestion for unknown
// flags and a pointer to --help.
func (c *Command) flagError(err error, args []string) error {
	message := err.Error()
	if strings.Contains(message, "unknown flag") || strings.Contains(message, "unknown shorthand flag") {
		// A fresh flag set: the failed parse may have consumed state.
		if suggestion := suggestFlag(args, c.flagSet()); suggestion != "" {
			return fmt.Errorf("%s (did you mean %s?)\n\nRun '%s --help' for usage.",
				message, suggestion, c.fullName())
		}
	}
	return fmt.Errorf("%s\n\nRun '%s --help' for usage.", message, c.fullName())
}

func (c *Command) subcommand(name string) *Command {
	for _, sub := range c.Subcommands {
		if sub.Name == name || slices.Contains(sub.Aliases, name) {
			return sub
		}
	}
	return nil
}

// PrintHelp writes structured help output to w.
func (c *Command) PrintHelp(w io.Writer) {
	name := c.fullName()

	if c.Description != "" {
		fmt.Fprintf(w, "%s\n\n", c.Description)
	} else if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	switch {
	case c.Usage != "":
		fmt.Fprintf(w, "Usage:\n  %s\n", c.Usage)
	case len(c.Subcommands) > 0:
		fmt.Fprintf(w, "Usage:\n  %s <command> [flags]\n", name)
	default:
		fmt.Fprintf(w, "Usage:\n  %s [flags]\n", name)
	}

	if len(c.Aliases) > 0 {
		fmt.Fprintf(w, "\nAliases:\n  %s\n", strings.Join(c.Aliases, ", "))
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
	}

	if flagSet := c.flagSet(); flagSet != nil {
		if usages := flagSet.FlagUsages(); usages != "" {
			fmt.Fprintf(w, "\nFlags:\n%s", usages)
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
			if example.Description != "" {
				fmt.Fprintln(w)
			}
		}
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
	}
}

// fullName returns the complete command path (e.g., "register item hash").
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

// isHelpFlag returns true for common help flag variants.
func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
