// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"strings"
)

// Curie is a compact URI, "prefix:reference".
//
// The prefix must match [a-z][a-z0-9-]+. The reference is deliberately
// permissive: it may contain '/', '=', further ':' and so on, and is
// only rejected when it ends in ':'.
type Curie struct {
	Prefix    string
	Reference string
}

func (Curie) Kind() Kind       { return KindCurie }
func (Curie) isValue()         {}
func (c Curie) String() string { return c.Prefix + ":" + c.Reference }

// ParseCurie splits raw on its first ':' and validates both parts.
func ParseCurie(raw string) (Curie, error) {
	prefix, reference, found := strings.Cut(raw, ":")
	if !found {
		return Curie{}, newError(InvalidCurie, raw, ErrCurieSeparator)
	}
	if !patterns.curiePrefix.MatchString(prefix) {
		return Curie{}, newError(InvalidCurie, raw, fmt.Errorf("%w %q", ErrCuriePrefix, prefix))
	}
	if strings.HasSuffix(reference, ":") {
		return Curie{}, newError(InvalidCurie, raw, fmt.Errorf("%w %q: must not end with ':'", ErrCurieReference, reference))
	}
	return Curie{Prefix: prefix, Reference: reference}, nil
}
