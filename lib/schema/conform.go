// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/register/lib/field"
	"github.com/bureau-foundation/register/lib/item"
	"github.com/bureau-foundation/register/lib/value"
)

// ErrMissingKey is reported when an item has no value for the primary
// key.
var ErrMissingKey = errors.New("missing primary key value")

// FieldError is a conformance failure for one field of an item.
type FieldError struct {
	Field field.Name
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Datatype returns the declared datatype of name, which may be the
// primary key or an attribute.
func (s *Schema) Datatype(name field.Name) (Datatype, bool) {
	if name == s.PrimaryKey.ID {
		return s.PrimaryKey.Datatype, true
	}
	attribute, ok := s.Attribute(name)
	return attribute.Datatype, ok
}

// Conform checks it against the schema and returns a new item whose
// values are parsed into their declared datatypes. Untyped and String
// values are parsed as text; Bool and Integer values must match the
// declared kind exactly. Unknown and Inapplicable are accepted for
// every attribute and every list element. Fields with cardinality n
// must hold lists.
//
// Every problem is reported: the error joins one error per failing
// field.
func (s *Schema) Conform(it *item.Item) (*item.Item, error) {
	var problems []error
	if _, ok := it.Get(s.PrimaryKey.ID); !ok {
		problems = append(problems, &FieldError{Field: s.PrimaryKey.ID, Err: ErrMissingKey})
	}

	typed := item.New()
	for name, v := range it.All() {
		datatype, declared := s.Datatype(name)
		if !declared {
			problems = append(problems, &field.Error{Code: field.UnknownField, Name: name.String()})
			continue
		}
		conformed, err := conformValue(v, datatype)
		if err != nil {
			problems = append(problems, &FieldError{Field: name, Err: err})
			continue
		}
		typed.Insert(name, conformed)
	}

	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return typed, nil
}

func conformValue(v value.Value, datatype Datatype) (value.Value, error) {
	switch v.(type) {
	case value.Unknown, value.Inapplicable:
		return v, nil
	}
	if datatype.Cardinality != Many {
		return conformScalar(v, datatype.Primitive)
	}

	list, ok := v.(value.List)
	if !ok {
		return nil, fmt.Errorf("expected %s, found %s", datatype, v.Kind())
	}
	conformed := make(value.List, len(list))
	for i, element := range list {
		c, err := conformScalar(element, datatype.Primitive)
		if err != nil {
			return nil, &value.ElementError{Index: i, Err: err}
		}
		conformed[i] = c
	}
	return conformed, nil
}

func conformScalar(v value.Value, kind value.Kind) (value.Value, error) {
	if v.Kind() == kind {
		return v, nil
	}
	switch v := v.(type) {
	case value.Unknown, value.Inapplicable:
		return v, nil
	case value.Untyped:
		return value.Parse(string(v), kind)
	case value.String:
		return value.Parse(string(v), kind)
	}
	return nil, fmt.Errorf("expected %s, found %s", kind, v.Kind())
}
