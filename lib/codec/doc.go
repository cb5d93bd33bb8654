// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the register's standard CBOR encoding
// configuration.
//
// The register has two serialization formats with a clear boundary:
//
//   - Canonical JSON is the identity format. An item's hash is the
//     SHA-256 of its canonical JSON and nothing else; see lib/item.
//   - CBOR is the export format: item exports, CBOR sequences on the
//     command line, and schema snapshots.
//
// This package provides the shared CBOR encoding and decoding modes so
// that every package encodes identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For CBOR sequences (RFC 8742), one item after another on a stream:
//
//	encoder := codec.NewEncoder(os.Stdout)
//	decoder := codec.NewDecoder(os.Stdin)
//
// # Struct Tag Rules
//
// Types that are only ever CBOR carry `cbor` tags. Types that are also
// printed as JSON by the CLI carry `json` tags only: fxamacker/cbor v2
// reads `json` tags when `cbor` tags are absent. Never use both on the
// same field.
package codec
