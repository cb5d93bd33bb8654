// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"

	"github.com/bureau-foundation/register/lib/codec"
	"github.com/bureau-foundation/register/lib/digest"
)

// Snapshot returns the deterministic CBOR encoding of s. Equal schemas
// produce identical bytes whatever file format they were loaded from.
func (s *Schema) Snapshot() ([]byte, error) {
	data, err := codec.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding schema snapshot: %w", err)
	}
	return data, nil
}

// Digest returns the SHA-256 of the schema snapshot.
func (s *Schema) Digest() (digest.Digest, error) {
	data, err := s.Snapshot()
	if err != nil {
		return digest.Digest{}, err
	}
	return digest.Sum(data), nil
}

// FromSnapshot decodes and revalidates a snapshot produced by
// Snapshot.
func FromSnapshot(data []byte) (*Schema, error) {
	var decoded Schema
	if err := codec.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("decoding schema snapshot: %w", err)
	}
	return NewPlan(decoded.ID).
		WithPrimaryKey(decoded.PrimaryKey).
		WithLabel(decoded.Label).
		WithDescription(decoded.Description).
		WithCustodian(decoded.Custodian).
		WithAttributes(decoded.Attributes).
		Validate()
}
