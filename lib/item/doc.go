// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package item holds register items and their canonical encoding.
//
// An [Item] maps field names to values. Its entries are kept in field
// name order at all times, so serialization never sorts. [ToJSON]
// renders the one canonical JSON text for an item: members in field
// name order, no insignificant whitespace, only control characters
// escaped, upper-case hex in \u escapes. [FromJSON] reads any JSON
// object with legal field names back into an Item.
//
// An item's identity is the SHA-256 of its canonical JSON:
//
//	it, err := item.FromJSON(raw)
//	fmt.Println(it.ID()) // sha-256:5dd4fe3b...
//
// [CheckCanonical] additionally certifies that raw input was already
// byte-identical to its canonical form, and [HashAll] hashes many
// inputs concurrently.
package item
