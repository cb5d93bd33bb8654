// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"errors"
	"testing"
)

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		kind  Kind
		want  Value
		wantS string
	}{
		{"bool true", "true", KindBool, Bool(true), "true"},
		{"bool false", "false", KindBool, Bool(false), "false"},
		{"integer", "-42", KindInteger, Integer(-42), "-42"},
		{"integer plus sign", "+7", KindInteger, Integer(7), "7"},
		{"unknown", "null", KindUnknown, Unknown{}, "null"},
		{"unknown upper", "NULL", KindUnknown, Unknown{}, "null"},
		{"inapplicable na", "na", KindInapplicable, Inapplicable{}, "N/A"},
		{"inapplicable N/A", "N/A", KindInapplicable, Inapplicable{}, "N/A"},
		{"string verbatim", "  spaced  ", KindString, String("  spaced  "), "  spaced  "},
		{"untyped verbatim", "anything: at all", KindUntyped, Untyped("anything: at all"), "anything: at all"},
		{"text", "foo *bar*", KindText, Text("foo *bar*"), "foo *bar*"},
		{"curie", "foaf:name", KindCurie, Curie{Prefix: "foaf", Reference: "name"}, "foaf:name"},
		{"point", "POINT (0 0)", KindPoint, Point{Dimension: XY}, "POINT (0 0)"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(test.raw, test.kind)
			if err != nil {
				t.Fatalf("Parse(%q, %s): %v", test.raw, test.kind, err)
			}
			if !Equal(got, test.want) {
				t.Errorf("Parse(%q, %s) = %#v, want %#v", test.raw, test.kind, got, test.want)
			}
			if got.String() != test.wantS {
				t.Errorf("String() = %q, want %q", got.String(), test.wantS)
			}
			if got.Kind() != test.kind {
				t.Errorf("Kind() = %s, want %s", got.Kind(), test.kind)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind Kind
		code ErrorCode
	}{
		{"bool capitalized", "True", KindBool, InvalidBool},
		{"bool number", "1", KindBool, InvalidBool},
		{"integer fraction", "1.5", KindInteger, InvalidInteger},
		{"integer overflow", "99999999999999999999", KindInteger, InvalidInteger},
		{"integer empty", "", KindInteger, InvalidInteger},
		{"unknown", "nil", KindUnknown, InvalidUnknown},
		{"inapplicable", "n.a", KindInapplicable, InvalidInapplicable},
		{"text html", "<i>oo</i>", KindText, InvalidText},
		{"hash upper-case", "sha-256:129332749E67EB9AB7390D7DA2E88173367D001AC3E9E39F06E41690CD05E3AE", KindHash, InvalidHash},
		{"curie", "nocolon", KindCurie, InvalidCurie},
		{"timestamp", "2018-10-11", KindTimestamp, InvalidTimestamp},
		{"datetime", "2018-10-11T12:13", KindDatetime, InvalidDatetime},
		{"period", "P", KindPeriod, InvalidPeriod},
		{"point no space", "POINT(0 0)", KindPoint, InvalidPoint},
		{"polygon", "POLYGON (())", KindPolygon, InvalidPolygon},
		{"url", "/relative", KindURL, InvalidURL},
		{"list", "[1, 2]", ListOf(KindInteger), InvalidList},
		{"zero kind", "x", Kind{}, UnknownType},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(test.raw, test.kind)
			if err == nil {
				t.Fatalf("Parse(%q, %s) = %v, want error", test.raw, test.kind, got)
			}
			var valueErr *Error
			if !errors.As(err, &valueErr) {
				t.Fatalf("error %T is not *Error: %v", err, err)
			}
			if valueErr.Code != test.code {
				t.Errorf("Code = %v, want %v", valueErr.Code, test.code)
			}
		})
	}
}

func TestParseListRejectsWholeString(t *testing.T) {
	_, err := Parse("1", ListOf(KindInteger))
	if !errors.Is(err, ErrListUnsupported) {
		t.Errorf("Parse of list kind: got %v, want ErrListUnsupported", err)
	}
}

func TestParseNamed(t *testing.T) {
	got, err := ParseNamed("42", "integer")
	if err != nil {
		t.Fatalf("ParseNamed: %v", err)
	}
	if got != Integer(42) {
		t.Errorf("ParseNamed = %#v, want Integer(42)", got)
	}

	_, err = ParseNamed("42", "number")
	var valueErr *Error
	if !errors.As(err, &valueErr) || valueErr.Code != UnknownType {
		t.Fatalf("ParseNamed with unknown kind: got %v, want UnknownType", err)
	}
	if valueErr.Error() != "unknown type number" {
		t.Errorf("Error() = %q, want %q", valueErr.Error(), "unknown type number")
	}
}

func TestParseList(t *testing.T) {
	list, err := ParseList([]string{"1", "2", "3"}, ListOf(KindInteger))
	if err != nil {
		t.Fatalf("ParseList: %v", err)
	}
	want := List{Integer(1), Integer(2), Integer(3)}
	if !Equal(list, want) {
		t.Errorf("ParseList = %v, want %v", list, want)
	}
	if list.Kind() != ListOf(KindInteger) {
		t.Errorf("Kind() = %s, want [integer]", list.Kind())
	}
	if list.String() != "[1, 2, 3]" {
		t.Errorf("String() = %q, want %q", list.String(), "[1, 2, 3]")
	}

	// The element kind is accepted in place of the list kind.
	if _, err := ParseList([]string{"true"}, KindBool); err != nil {
		t.Errorf("ParseList with element kind: %v", err)
	}
}

func TestParseListReportsElement(t *testing.T) {
	_, err := ParseList([]string{"1", "two", "3"}, ListOf(KindInteger))
	var valueErr *Error
	if !errors.As(err, &valueErr) || valueErr.Code != InvalidList {
		t.Fatalf("got %v, want InvalidList", err)
	}
	var elementErr *ElementError
	if !errors.As(err, &elementErr) {
		t.Fatalf("error does not carry an ElementError: %v", err)
	}
	if elementErr.Index != 1 {
		t.Errorf("Index = %d, want 1", elementErr.Index)
	}
	var inner *Error
	if !errors.As(elementErr.Err, &inner) || inner.Code != InvalidInteger {
		t.Errorf("element error = %v, want InvalidInteger", elementErr.Err)
	}
}

func TestEmptyListKind(t *testing.T) {
	if got := (List{}).Kind(); got != ListOf(KindUntyped) {
		t.Errorf("empty List Kind() = %s, want [untyped]", got)
	}
}

func TestEqual(t *testing.T) {
	square := Polygon{Dimension: XY, Outer: Ring{{X: 0}, {X: 1}, {X: 1, Y: 1}, {X: 0}}}
	sameSquare := Polygon{Dimension: XY, Outer: Ring{{X: 0}, {X: 1}, {X: 1, Y: 1}, {X: 0}}}

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same bool", Bool(true), Bool(true), true},
		{"different variants", Bool(true), String("true"), false},
		{"string vs untyped", String("x"), Untyped("x"), false},
		{"polygons", square, sameSquare, true},
		{"lists", List{Integer(1), String("a")}, List{Integer(1), String("a")}, true},
		{"list lengths", List{Integer(1)}, List{Integer(1), Integer(2)}, false},
		{"list vs scalar", List{Integer(1)}, Integer(1), false},
		{"unknowns", Unknown{}, Unknown{}, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Equal(test.a, test.b); got != test.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestErrorCodeString(t *testing.T) {
	for code := UnknownType; code <= InvalidList; code++ {
		if _, ok := errorCodeMessages[code]; !ok {
			t.Errorf("error code %d has no message", int(code))
		}
	}
	if got := ErrorCode(0).String(); got != "ErrorCode(0)" {
		t.Errorf("zero code = %q, want ErrorCode(0)", got)
	}
	if got := len(errorCodeMessages); got != int(InvalidList) {
		t.Errorf("%d messages for %d codes", got, int(InvalidList))
	}
}
