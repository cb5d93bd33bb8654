// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package field

import "fmt"

// ErrorCode classifies a field name error.
type ErrorCode int

const (
	// InvalidFieldname means the name does not satisfy the [a-z-]
	// grammar.
	InvalidFieldname ErrorCode = iota + 1

	// UnknownField means the name is well formed but not declared
	// where it is used (for example, a schema lookup).
	UnknownField
)

// Error is returned for invalid or unknown field names.
type Error struct {
	Code   ErrorCode
	Name   string
	Reason string
}

func (e *Error) Error() string {
	switch e.Code {
	case UnknownField:
		return fmt.Sprintf("unknown field %q", e.Name)
	default:
		if e.Reason == "" {
			return fmt.Sprintf("invalid field name %q", e.Name)
		}
		return fmt.Sprintf("invalid field name %q: %s", e.Name, e.Reason)
	}
}
