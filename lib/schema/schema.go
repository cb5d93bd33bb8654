// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/register/lib/field"
	"github.com/bureau-foundation/register/lib/value"
)

// Validation failures.
var (
	ErrMissingID          = errors.New("schema needs an id")
	ErrMissingPrimaryKey  = errors.New("missing primary key")
	ErrMissingAttributes  = errors.New("a schema needs at least one attribute")
	ErrDuplicateAttribute = errors.New("duplicate attribute")
)

// Attribute declares one field of the register's items.
type Attribute struct {
	ID          field.Name `json:"id"`
	Datatype    Datatype   `json:"datatype"`
	Label       string     `json:"label,omitempty"`
	Description string     `json:"description,omitempty"`
}

// NewAttribute returns an attribute with the given id and datatype.
func NewAttribute(id field.Name, datatype Datatype, label, description string) Attribute {
	return Attribute{ID: id, Datatype: datatype, Label: label, Description: description}
}

// Key is the primary key of a register. Its values are always single
// strings.
type Key struct {
	ID          field.Name `json:"id"`
	Datatype    Datatype   `json:"datatype"`
	Label       string     `json:"label,omitempty"`
	Description string     `json:"description,omitempty"`
}

// NewKey returns a primary key named id.
func NewKey(id field.Name, label, description string) Key {
	return Key{
		ID:          id,
		Datatype:    Datatype{Primitive: value.KindString, Cardinality: One},
		Label:       label,
		Description: description,
	}
}

// Schema is a validated register schema. Build one with a Plan or
// Load; a Schema is immutable afterwards.
type Schema struct {
	ID          string      `json:"id"`
	PrimaryKey  Key         `json:"primary-key"`
	Label       string      `json:"label,omitempty"`
	Description string      `json:"description,omitempty"`
	Custodian   string      `json:"custodian,omitempty"`
	Attributes  []Attribute `json:"attributes"`
}

// Attribute returns the attribute named name.
func (s *Schema) Attribute(name field.Name) (Attribute, bool) {
	for _, attribute := range s.Attributes {
		if attribute.ID == name {
			return attribute, true
		}
	}
	return Attribute{}, false
}

// Plan accumulates the parts of a schema. Validate turns it into a
// Schema.
//
//	planned, err := schema.NewPlan("country").
//		WithPrimaryKey(schema.NewKey(field.MustParse("country"), "Country", "")).
//		WithLabel("Country").
//		WithAttribute(startDate).
//		Validate()
type Plan struct {
	id          string
	primaryKey  *Key
	label       string
	description string
	custodian   string
	attributes  []Attribute
}

// NewPlan starts a plan for the schema with the given id.
func NewPlan(id string) *Plan {
	return &Plan{id: id}
}

func (p *Plan) WithLabel(label string) *Plan {
	p.label = label
	return p
}

func (p *Plan) WithDescription(description string) *Plan {
	p.description = description
	return p
}

func (p *Plan) WithCustodian(custodian string) *Plan {
	p.custodian = custodian
	return p
}

// WithPrimaryKey sets the primary key, replacing any earlier one.
func (p *Plan) WithPrimaryKey(key Key) *Plan {
	p.primaryKey = &key
	return p
}

// WithAttribute appends an attribute.
func (p *Plan) WithAttribute(attribute Attribute) *Plan {
	p.attributes = append(p.attributes, attribute)
	return p
}

// WithAttributes replaces the attribute list.
func (p *Plan) WithAttributes(attributes []Attribute) *Plan {
	p.attributes = append([]Attribute(nil), attributes...)
	return p
}

// Validate checks the plan and returns the schema. A schema needs an
// id, a primary key and at least one attribute; attribute ids must be
// unique and distinct from the primary key.
func (p *Plan) Validate() (*Schema, error) {
	if p.id == "" {
		return nil, ErrMissingID
	}
	if p.primaryKey == nil {
		return nil, ErrMissingPrimaryKey
	}
	if p.primaryKey.ID.IsZero() {
		return nil, fmt.Errorf("primary key: %w", &field.Error{Code: field.InvalidFieldname, Reason: "empty field name"})
	}
	if len(p.attributes) == 0 {
		return nil, ErrMissingAttributes
	}

	seen := map[field.Name]bool{p.primaryKey.ID: true}
	for i, attribute := range p.attributes {
		if attribute.ID.IsZero() {
			return nil, fmt.Errorf("attribute %d: %w", i, &field.Error{Code: field.InvalidFieldname, Reason: "empty field name"})
		}
		if attribute.Datatype.Primitive.IsZero() {
			return nil, fmt.Errorf("attribute %s: missing datatype", attribute.ID)
		}
		if seen[attribute.ID] {
			return nil, fmt.Errorf("%w %q", ErrDuplicateAttribute, attribute.ID)
		}
		seen[attribute.ID] = true
	}

	return &Schema{
		ID:          p.id,
		PrimaryKey:  *p.primaryKey,
		Label:       p.label,
		Description: p.description,
		Custodian:   p.custodian,
		Attributes:  append([]Attribute(nil), p.attributes...),
	}, nil
}
