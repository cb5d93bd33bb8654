// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package field

import (
	"fmt"
	"strings"
)

// Name is a validated field name.
type Name struct {
	name string
}

// allowedChars is the field name alphabet.
var allowedChars [256]bool

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		allowedChars[c] = true
	}
	allowedChars['-'] = true
}

// Parse validates raw as a field name.
func Parse(raw string) (Name, error) {
	if raw == "" {
		return Name{}, &Error{Code: InvalidFieldname, Name: raw, Reason: "empty field name"}
	}
	for i := 0; i < len(raw); i++ {
		if !allowedChars[raw[i]] {
			return Name{}, &Error{
				Code:   InvalidFieldname,
				Name:   raw,
				Reason: fmt.Sprintf("invalid character %q at position %d (allowed: a-z, -)", raw[i], i),
			}
		}
	}
	return Name{name: raw}, nil
}

// MustParse is like Parse but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustParse(raw string) Name {
	n, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("field.MustParse(%q): %v", raw, err))
	}
	return n
}

// String returns the field name.
func (n Name) String() string { return n.name }

// IsZero reports whether n is the zero value.
func (n Name) IsZero() bool { return n.name == "" }

// Compare returns -1, 0 or +1 by byte-lexicographic order.
func (n Name) Compare(other Name) int {
	return strings.Compare(n.name, other.name)
}

// Less reports whether n sorts before other.
func (n Name) Less(other Name) bool {
	return n.name < other.name
}

// MarshalText implements encoding.TextMarshaler.
func (n Name) MarshalText() ([]byte, error) {
	if n.name == "" {
		return nil, fmt.Errorf("cannot marshal zero field name")
	}
	return []byte(n.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Name) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
