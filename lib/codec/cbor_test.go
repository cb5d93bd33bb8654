// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
)

// sampleAttribute is a representative CBOR-only record.
type sampleAttribute struct {
	ID          string `cbor:"id"`
	Cardinality string `cbor:"cardinality"`
	Label       string `cbor:"label,omitempty"`
}

// sampleDual uses json tags, relying on fxamacker's fallback.
type sampleDual struct {
	Version int    `json:"version"`
	Name    string `json:"name"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleAttribute{ID: "start-date", Cardinality: "1", Label: "Start date"}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded sampleAttribute
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestMarshalMapKeyOrder(t *testing.T) {
	// Core Deterministic Encoding sorts keys by encoded bytes, so map
	// iteration order never reaches the output.
	first, err := Marshal(map[string]any{"foo": "abc", "bar": "xyz", "baz": int64(1)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for range 10 {
		again, err := Marshal(map[string]any{"baz": int64(1), "bar": "xyz", "foo": "abc"})
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("deterministic encoding violated: %x != %x", first, again)
		}
	}
}

func TestUnmarshalAnyUsesStringKeys(t *testing.T) {
	data, err := Marshal(map[string]any{"name": "x", "nested": map[string]any{"a": true}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	top, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded %T, want map[string]any", decoded)
	}
	if _, ok := top["nested"].(map[string]any); !ok {
		t.Errorf("nested map decoded as %T", top["nested"])
	}
}

func TestUnmarshalRejectsDuplicateKeys(t *testing.T) {
	// {"a": 1, "a": 2}
	data := []byte{0xa2, 0x61, 'a', 0x01, 0x61, 'a', 0x02}
	var decoded map[string]any
	if err := Unmarshal(data, &decoded); err == nil {
		t.Errorf("Unmarshal accepted duplicate keys: %v", decoded)
	}
}

func TestEncoderDecoderSequence(t *testing.T) {
	records := []sampleAttribute{
		{ID: "name", Cardinality: "1"},
		{ID: "addresses", Cardinality: "n"},
		{ID: "end-date", Cardinality: "1", Label: "End"},
	}

	var buffer bytes.Buffer
	encoder := NewEncoder(&buffer)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}

	decoder := NewDecoder(&buffer)
	for i, want := range records {
		var got sampleAttribute
		if err := decoder.Decode(&got); err != nil {
			t.Fatalf("Decode record %d: %v", i, err)
		}
		if got != want {
			t.Errorf("record %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestJSONTagFallback(t *testing.T) {
	original := sampleDual{Version: 3, Name: "country"}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded sampleDual
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded != original {
		t.Errorf("json-tag roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var record sampleAttribute
	if err := Unmarshal([]byte{0xFF, 0xFE, 0xFD}, &record); err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Marshal(map[string]any{"foo": "abc"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	notation, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if notation != `{"foo": "abc"}` {
		t.Errorf("Diagnose = %q", notation)
	}
}

func TestDiagnoseFirst(t *testing.T) {
	first, err := Marshal("hello")
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	second, err := Marshal(int64(42))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	sequence := append(append([]byte{}, first...), second...)

	notation, remaining, err := DiagnoseFirst(sequence)
	if err != nil {
		t.Fatalf("DiagnoseFirst: %v", err)
	}
	if !strings.Contains(notation, `"hello"`) {
		t.Errorf("first notation %q does not contain \"hello\"", notation)
	}

	notation, remaining, err = DiagnoseFirst(remaining)
	if err != nil {
		t.Fatalf("DiagnoseFirst second: %v", err)
	}
	if notation != "42" {
		t.Errorf("second notation = %q, want 42", notation)
	}
	if len(remaining) != 0 {
		t.Errorf("expected no remaining bytes, got %d", len(remaining))
	}
}

func BenchmarkMarshal(b *testing.B) {
	record := sampleAttribute{ID: "start-date", Cardinality: "1", Label: "Start date"}
	b.ReportAllocs()
	for b.Loop() {
		Marshal(record)
	}
}
