// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/register/lib/value"
)

// Cardinality is how many values an attribute holds.
type Cardinality string

const (
	// One is a single value.
	One Cardinality = "1"
	// Many is a list of values.
	Many Cardinality = "n"
)

// ParseCardinality accepts "1" or "n".
func ParseCardinality(raw string) (Cardinality, error) {
	switch Cardinality(raw) {
	case One, Many:
		return Cardinality(raw), nil
	}
	return "", fmt.Errorf("invalid cardinality %q (expected \"1\" or \"n\")", raw)
}

// Datatype is a primitive kind with a cardinality.
type Datatype struct {
	Primitive   value.Kind
	Cardinality Cardinality
}

// Kind returns the value kind of the datatype: the primitive, or a
// list of it for cardinality n.
func (d Datatype) Kind() value.Kind {
	if d.Cardinality == Many {
		return value.ListOf(d.Primitive)
	}
	return d.Primitive
}

// String renders "point" for one value and "[point]" for many.
func (d Datatype) String() string {
	return d.Kind().String()
}

// ParseDatatype parses the rendering produced by String.
func ParseDatatype(raw string) (Datatype, error) {
	kind, err := value.ParseKind(raw)
	if err != nil {
		return Datatype{}, err
	}
	if kind.IsList() {
		return Datatype{Primitive: kind.Elem(), Cardinality: Many}, nil
	}
	return Datatype{Primitive: kind, Cardinality: One}, nil
}

// newDatatype combines the separate type and cardinality of a schema
// document. The type must be a scalar kind name.
func newDatatype(primitive, cardinality string) (Datatype, error) {
	if strings.HasPrefix(primitive, "[") {
		return Datatype{}, fmt.Errorf("type %q: use cardinality \"n\" for lists", primitive)
	}
	kind, err := value.ParseKind(primitive)
	if err != nil {
		return Datatype{}, fmt.Errorf("type: %w", err)
	}
	parsed, err := ParseCardinality(cardinality)
	if err != nil {
		return Datatype{}, err
	}
	return Datatype{Primitive: kind, Cardinality: parsed}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Datatype) MarshalText() ([]byte, error) {
	if d.Primitive.IsZero() {
		return nil, fmt.Errorf("cannot marshal zero datatype")
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Datatype) UnmarshalText(data []byte) error {
	parsed, err := ParseDatatype(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
