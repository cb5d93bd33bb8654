// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest provides the SHA-256 digest used for content
// addressing.
//
// An item's hash is the SHA-256 of its canonical JSON encoding,
// rendered as 64 lower-case hex characters. The identifier form
// prefixes the hex with the algorithm tag ("sha-256:").
//
// The API surface:
//
//   - [Sum] and [SumString] -- digest a byte slice or string
//   - [Digest.Hex] -- lower-case hex encoding
//   - [Parse] -- parse a hex digest back into a [Digest], validating
//     length and case
//   - [Digest.ID] -- "sha-256:<hex>" identifier form
//
// This package has no dependencies on other register packages.
package digest
