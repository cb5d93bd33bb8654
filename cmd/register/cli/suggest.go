// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// maxSuggestDistance is the largest edit distance still offered as a
// "did you mean" suggestion.
const maxSuggestDistance = 3

// suggestCommand returns the name of the closest matching subcommand to
// the unknown input, or "" if nothing is close enough. Aliases are
// matched too, but the suggestion is always the primary name.
func suggestCommand(unknown string, commands []*Command) string {
	bestName := ""
	bestDistance := maxSuggestDistance + 1

	for _, command := range commands {
		for _, candidate := range append([]string{command.Name}, command.Aliases...) {
			if distance := levenshtein(unknown, candidate); distance < bestDistance {
				bestDistance = distance
				bestName = command.Name
			}
		}
	}

	return bestName
}

// suggestFlag finds the first unrecognized flag in args and returns the
// closest defined flag, formatted with its prefix, or "".
func suggestFlag(args []string, flagSet *pflag.FlagSet) string {
	if flagSet == nil {
		return ""
	}

	for _, arg := range args {
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			continue
		}

		name := strings.TrimLeft(arg, "-")
		name, _, _ = strings.Cut(name, "=")
		if name == "" {
			continue
		}

		long := strings.HasPrefix(arg, "--")
		if (long && flagSet.Lookup(name) != nil) || (!long && flagSet.ShorthandLookup(name[:1]) != nil) {
			continue
		}

		bestName := ""
		bestDistance := maxSuggestDistance + 1
		flagSet.VisitAll(func(candidate *pflag.Flag) {
			if distance := levenshtein(name, candidate.Name); distance < bestDistance {
				bestDistance = distance
				bestName = candidate.Name
			}
		})
		if bestName != "" {
			return "--" + bestName
		}

		// Only the first unrecognized flag is considered.
		break
	}

	return ""
}

// levenshtein computes the Levenshtein edit distance between two strings,
// counted in bytes.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	current := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for j := 1; j <= len(b); j++ {
		current[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			current[i] = min(previous[i]+1, current[i-1]+1, previous[i-1]+cost)
		}
		previous, current = current, previous
	}

	return previous[len(a)]
}
