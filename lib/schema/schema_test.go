// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bureau-foundation/register/lib/field"
	"github.com/bureau-foundation/register/lib/item"
	"github.com/bureau-foundation/register/lib/value"
)

func startDate() Attribute {
	return NewAttribute(field.MustParse("start-date"), Datatype{Primitive: value.KindDatetime, Cardinality: One}, "", "")
}

func TestPlanValidate(t *testing.T) {
	planned, err := NewPlan("country").
		WithPrimaryKey(NewKey(field.MustParse("id"), "ID", "")).
		WithLabel("Country").
		WithDescription("Lorem ipsum").
		WithCustodian("Bob <b@b.b>").
		WithAttribute(startDate()).
		Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if planned.ID != "country" || planned.Label != "Country" || planned.Custodian != "Bob <b@b.b>" {
		t.Errorf("schema = %+v", planned)
	}
	if planned.PrimaryKey.Datatype.Primitive != value.KindString {
		t.Errorf("primary key datatype = %s, want string", planned.PrimaryKey.Datatype)
	}
	if _, ok := planned.Attribute(field.MustParse("start-date")); !ok {
		t.Error("start-date attribute missing")
	}
}

func TestPlanErrors(t *testing.T) {
	key := NewKey(field.MustParse("id"), "", "")
	tests := []struct {
		name string
		plan *Plan
		want error
	}{
		{"no id", NewPlan("").WithPrimaryKey(key).WithAttribute(startDate()), ErrMissingID},
		{"no primary key", NewPlan("x").WithAttribute(startDate()), ErrMissingPrimaryKey},
		{"no attributes", NewPlan("x").WithPrimaryKey(key), ErrMissingAttributes},
		{"duplicate attribute", NewPlan("x").WithPrimaryKey(key).WithAttribute(startDate()).WithAttribute(startDate()), ErrDuplicateAttribute},
		{
			"attribute shadows key",
			NewPlan("x").WithPrimaryKey(key).WithAttribute(NewAttribute(field.MustParse("id"), Datatype{Primitive: value.KindInteger, Cardinality: One}, "", "")),
			ErrDuplicateAttribute,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.plan.Validate()
			if !errors.Is(err, test.want) {
				t.Errorf("Validate = %v, want %v", err, test.want)
			}
		})
	}
}

func TestPlanValidateCopiesAttributes(t *testing.T) {
	plan := NewPlan("x").WithPrimaryKey(NewKey(field.MustParse("id"), "", "")).WithAttribute(startDate())
	first, err := plan.Validate()
	if err != nil {
		t.Fatal(err)
	}
	plan.WithAttribute(NewAttribute(field.MustParse("end-date"), Datatype{Primitive: value.KindDatetime, Cardinality: One}, "", ""))
	if len(first.Attributes) != 1 {
		t.Errorf("validated schema changed after plan was extended: %d attributes", len(first.Attributes))
	}
}

func TestParseDatatype(t *testing.T) {
	tests := []struct {
		raw  string
		want Datatype
	}{
		{"string", Datatype{Primitive: value.KindString, Cardinality: One}},
		{"[point]", Datatype{Primitive: value.KindPoint, Cardinality: Many}},
	}
	for _, test := range tests {
		got, err := ParseDatatype(test.raw)
		if err != nil {
			t.Errorf("ParseDatatype(%q): %v", test.raw, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseDatatype(%q) = %+v, want %+v", test.raw, got, test.want)
		}
		if got.String() != test.raw {
			t.Errorf("String() = %q, want %q", got.String(), test.raw)
		}
	}
	for _, raw := range []string{"", "[[point]]", "float"} {
		if _, err := ParseDatatype(raw); err == nil {
			t.Errorf("ParseDatatype(%q) succeeded", raw)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	original := expectedCountry()
	data, err := original.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	decoded, err := FromSnapshot(data)
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}
	again, err := decoded.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("snapshot changed after round trip")
	}

	first, err := original.Digest()
	if err != nil {
		t.Fatal(err)
	}
	second, err := decoded.Digest()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("digest changed: %s vs %s", first, second)
	}
}

func TestFromSnapshotRevalidates(t *testing.T) {
	if _, err := FromSnapshot([]byte{0xa0}); !errors.Is(err, ErrMissingID) {
		t.Errorf("FromSnapshot(empty map) = %v, want ErrMissingID", err)
	}
}

func conformItem(t *testing.T, raw string) (*item.Item, error) {
	t.Helper()
	it, err := item.FromJSON([]byte(raw))
	if err != nil {
		t.Fatalf("FromJSON(%s): %v", raw, err)
	}
	return expectedCountry().Conform(it)
}

func TestConform(t *testing.T) {
	typed, err := conformItem(t, `{"id":"GB","name":"United Kingdom","borders":["POLYGON ((0 0, 1 0, 1 1, 0 0))",null]}`)
	if err != nil {
		t.Fatalf("Conform: %v", err)
	}
	name, _ := typed.Get(field.MustParse("name"))
	if name != value.String("United Kingdom") {
		t.Errorf("name = %#v, want String", name)
	}
	borders, _ := typed.Get(field.MustParse("borders"))
	list, ok := borders.(value.List)
	if !ok || len(list) != 2 {
		t.Fatalf("borders = %#v", borders)
	}
	if _, ok := list[0].(value.Polygon); !ok {
		t.Errorf("borders[0] = %T, want Polygon", list[0])
	}
	if _, ok := list[1].(value.Unknown); !ok {
		t.Errorf("borders[1] = %T, want Unknown", list[1])
	}
}

func TestConformAcceptsUnknownAndInapplicable(t *testing.T) {
	if _, err := conformItem(t, `{"id":"GB","name":null,"borders":{"type":"inapplicable"}}`); err != nil {
		t.Errorf("Conform: %v", err)
	}
}

func TestConformReportsEveryField(t *testing.T) {
	_, err := conformItem(t, `{"name":true,"borders":"POLYGON ((0 0, 1 0, 0 0))","colour":"red"}`)
	if err == nil {
		t.Fatal("Conform succeeded")
	}
	if !errors.Is(err, ErrMissingKey) {
		t.Errorf("error does not report the missing key: %v", err)
	}
	var fieldErr *field.Error
	if !errors.As(err, &fieldErr) || fieldErr.Code != field.UnknownField || fieldErr.Name != "colour" {
		t.Errorf("error does not report the unknown field: %v", err)
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("error %T does not join problems", err)
	}
	if count := len(joined.Unwrap()); count != 4 {
		t.Errorf("reported %d problems, want 4: %v", count, err)
	}
}

func TestConformListElementError(t *testing.T) {
	_, err := conformItem(t, `{"id":"GB","borders":["POLYGON ((0 0, 1 0, 0 0))","not a polygon"]}`)
	var elementErr *value.ElementError
	if !errors.As(err, &elementErr) || elementErr.Index != 1 {
		t.Fatalf("Conform = %v, want element 1 error", err)
	}
	var valueErr *value.Error
	if !errors.As(err, &valueErr) || valueErr.Code != value.InvalidPolygon {
		t.Errorf("Conform = %v, want InvalidPolygon", err)
	}
}
