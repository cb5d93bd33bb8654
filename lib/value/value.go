// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"strconv"
	"strings"
)

// Value is one typed item value. The set of implementations is closed.
type Value interface {
	// Kind returns the datatype of the value.
	Kind() Kind

	// String returns the canonical textual rendering.
	String() string

	isValue()
}

// Untyped is a raw string used when no schema is known. Generic JSON
// decoding produces Untyped for every string.
type Untyped string

func (Untyped) Kind() Kind       { return KindUntyped }
func (v Untyped) String() string { return string(v) }
func (Untyped) isValue()         {}

// Unknown is an applicable but missing value. It encodes as JSON null.
type Unknown struct{}

func (Unknown) Kind() Kind     { return KindUnknown }
func (Unknown) String() string { return "null" }
func (Unknown) isValue()       {}

// Inapplicable marks a field that does not apply to the item. It
// encodes as {"type":"inapplicable"}.
type Inapplicable struct{}

func (Inapplicable) Kind() Kind     { return KindInapplicable }
func (Inapplicable) String() string { return "N/A" }
func (Inapplicable) isValue()       {}

// Bool is a boolean.
type Bool bool

func (Bool) Kind() Kind       { return KindBool }
func (v Bool) String() string { return strconv.FormatBool(bool(v)) }
func (Bool) isValue()         {}

// String is an unvalidated UTF-8 string.
type String string

func (String) Kind() Kind       { return KindString }
func (v String) String() string { return string(v) }
func (String) isValue()         {}

// Integer is a signed 64-bit decimal integer.
type Integer int64

func (Integer) Kind() Kind       { return KindInteger }
func (v Integer) String() string { return strconv.FormatInt(int64(v), 10) }
func (Integer) isValue()         {}

// List is an ordered sequence of values. Lists are expected to be
// homogeneous; ParseList guarantees it, generic decoding does not.
type List []Value

// Kind returns the list kind of the first element, or [untyped] for an
// empty list.
func (v List) Kind() Kind {
	if len(v) == 0 {
		return ListOf(KindUntyped)
	}
	return ListOf(v[0].Kind())
}

func (v List) String() string {
	parts := make([]string, len(v))
	for i, element := range v {
		parts[i] = element.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (List) isValue() {}

// Equal reports whether a and b are the same variant with the same
// contents.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case List:
		b, ok := b.(List)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case Polygon:
		b, ok := b.(Polygon)
		return ok && a.Equal(b)
	case nil:
		return b == nil
	default:
		return a == b
	}
}
