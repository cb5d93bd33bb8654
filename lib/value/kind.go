// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"strings"
)

type primitive uint8

const (
	primitiveNone primitive = iota
	primitiveBool
	primitiveCurie
	primitiveDatetime
	primitiveHash
	primitiveInapplicable
	primitiveInteger
	primitivePeriod
	primitivePoint
	primitivePolygon
	primitiveString
	primitiveText
	primitiveTimestamp
	primitiveUnknown
	primitiveUntyped
	primitiveURL
)

var primitiveNames = [...]string{
	primitiveNone:         "",
	primitiveBool:         "bool",
	primitiveCurie:        "curie",
	primitiveDatetime:     "datetime",
	primitiveHash:         "hash",
	primitiveInapplicable: "inapplicable",
	primitiveInteger:      "integer",
	primitivePeriod:       "period",
	primitivePoint:        "point",
	primitivePolygon:      "polygon",
	primitiveString:       "string",
	primitiveText:         "text",
	primitiveTimestamp:    "timestamp",
	primitiveUnknown:      "unknown",
	primitiveUntyped:      "untyped",
	primitiveURL:          "url",
}

// Kind names a datatype. The zero Kind is invalid. List kinds carry
// the kind of their elements; lists of lists are not representable.
type Kind struct {
	primitive primitive
	list      bool
}

var (
	KindBool         = Kind{primitive: primitiveBool}
	KindCurie        = Kind{primitive: primitiveCurie}
	KindDatetime     = Kind{primitive: primitiveDatetime}
	KindHash         = Kind{primitive: primitiveHash}
	KindInapplicable = Kind{primitive: primitiveInapplicable}
	KindInteger      = Kind{primitive: primitiveInteger}
	KindPeriod       = Kind{primitive: primitivePeriod}
	KindPoint        = Kind{primitive: primitivePoint}
	KindPolygon      = Kind{primitive: primitivePolygon}
	KindString       = Kind{primitive: primitiveString}
	KindText         = Kind{primitive: primitiveText}
	KindTimestamp    = Kind{primitive: primitiveTimestamp}
	KindUnknown      = Kind{primitive: primitiveUnknown}
	KindUntyped      = Kind{primitive: primitiveUntyped}
	KindURL          = Kind{primitive: primitiveURL}
)

// Kinds returns every scalar kind in name order.
func Kinds() []Kind {
	return []Kind{
		KindBool, KindCurie, KindDatetime, KindHash, KindInapplicable,
		KindInteger, KindPeriod, KindPoint, KindPolygon, KindString,
		KindText, KindTimestamp, KindUnknown, KindUntyped, KindURL,
	}
}

// ListOf returns the kind of a list whose elements have kind elem.
// Nesting is flattened: ListOf(ListOf(k)) == ListOf(k).
func ListOf(elem Kind) Kind {
	return Kind{primitive: elem.primitive, list: true}
}

// IsList reports whether k is a list kind.
func (k Kind) IsList() bool { return k.list }

// Elem returns the element kind of a list kind, or k itself for a
// scalar kind.
func (k Kind) Elem() Kind { return Kind{primitive: k.primitive} }

// IsZero reports whether k is the zero (invalid) kind.
func (k Kind) IsZero() bool { return k.primitive == primitiveNone && !k.list }

// String returns the kind name ("point"), or "[point]" for lists.
func (k Kind) String() string {
	name := primitiveNames[k.primitive]
	if k.primitive == primitiveNone {
		name = "untyped"
		if !k.list {
			return "invalid"
		}
	}
	if k.list {
		return "[" + name + "]"
	}
	return name
}

// ParseKind parses a kind name as produced by Kind.String. A name in
// square brackets is a list kind.
func ParseKind(name string) (Kind, error) {
	if strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]") && len(name) >= 2 {
		elem, err := ParseKind(name[1 : len(name)-1])
		if err != nil {
			return Kind{}, err
		}
		if elem.list {
			return Kind{}, &Error{Code: UnknownType, Input: name, Err: ErrNestedList}
		}
		return ListOf(elem), nil
	}
	for p := primitiveBool; p <= primitiveURL; p++ {
		if primitiveNames[p] == name {
			return Kind{primitive: p}, nil
		}
	}
	return Kind{}, &Error{Code: UnknownType, Input: name}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k.IsZero() {
		return nil, fmt.Errorf("cannot marshal zero kind")
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(data []byte) error {
	parsed, err := ParseKind(string(data))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
