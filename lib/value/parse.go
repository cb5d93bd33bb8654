// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"strconv"
	"strings"
)

// Parse validates raw against kind and returns the typed value. Every
// failure is an *Error whose Code names the datatype that rejected the
// input.
//
// List kinds are not parsed from a single string: use ParseList with
// the individual elements.
func Parse(raw string, kind Kind) (Value, error) {
	if kind.IsList() {
		return nil, newError(InvalidList, raw, ErrListUnsupported)
	}
	switch kind {
	case KindUntyped:
		return Untyped(raw), nil
	case KindString:
		return String(raw), nil
	case KindBool:
		switch raw {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}
		return nil, newError(InvalidBool, raw, nil)
	case KindInteger:
		number, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, newError(InvalidInteger, raw, err)
		}
		return Integer(number), nil
	case KindUnknown:
		if strings.EqualFold(raw, "null") {
			return Unknown{}, nil
		}
		return nil, newError(InvalidUnknown, raw, nil)
	case KindInapplicable:
		if strings.EqualFold(raw, "na") || strings.EqualFold(raw, "n/a") {
			return Inapplicable{}, nil
		}
		return nil, newError(InvalidInapplicable, raw, nil)
	case KindText:
		return asValue(ParseText(raw))
	case KindHash:
		return asValue(ParseHash(raw))
	case KindCurie:
		return asValue(ParseCurie(raw))
	case KindTimestamp:
		return asValue(ParseTimestamp(raw))
	case KindDatetime:
		return asValue(ParseDatetime(raw))
	case KindPeriod:
		return asValue(ParsePeriod(raw))
	case KindPoint:
		return asValue(ParsePoint(raw))
	case KindPolygon:
		return asValue(ParsePolygon(raw))
	case KindURL:
		return asValue(ParseURL(raw))
	}
	return nil, newError(UnknownType, kind.String(), nil)
}

// ParseNamed is Parse with the kind given by name, as written on the
// command line or in a schema file.
func ParseNamed(raw, kindName string) (Value, error) {
	kind, err := ParseKind(kindName)
	if err != nil {
		return nil, err
	}
	return Parse(raw, kind)
}

// ParseList validates each element of raws against the element kind
// of kind and returns the resulting List. kind may be either the list
// kind or its element kind. The first failing element is reported with
// its index.
func ParseList(raws []string, kind Kind) (List, error) {
	elem := kind.Elem()
	list := make(List, 0, len(raws))
	for i, raw := range raws {
		element, err := Parse(raw, elem)
		if err != nil {
			return nil, &Error{
				Code:  InvalidList,
				Input: raw,
				Err:   &ElementError{Index: i, Err: err},
			}
		}
		list = append(list, element)
	}
	return list, nil
}

// ElementError locates a failing list element.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return "element " + strconv.Itoa(e.Index) + ": " + e.Err.Error()
}

func (e *ElementError) Unwrap() error { return e.Err }

func asValue[T Value](parsed T, err error) (Value, error) {
	if err != nil {
		return nil, err
	}
	return parsed, nil
}
