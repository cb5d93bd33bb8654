// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package item

import (
	"errors"

	"github.com/bureau-foundation/register/lib/digest"
)

// ErrNotCanonical is returned by CheckCanonical when the raw input
// parses but is not byte-identical to its canonical JSON.
var ErrNotCanonical = errors.New("the given item is not canonical")

// Digest returns the SHA-256 of the canonical JSON of it.
func (it *Item) Digest() digest.Digest {
	return digest.SumString(ToJSON(it))
}

// Hash returns the lower-case hex SHA-256 of the canonical JSON of it.
func (it *Item) Hash() string {
	return it.Digest().Hex()
}

// ID returns the content identifier of it, "sha-256:<hash>".
func (it *Item) ID() string {
	return it.Digest().ID()
}

// CheckCanonical parses raw and reports whether raw was already the
// canonical JSON of the parsed item, by comparing the digest of raw
// with the item's hash. Parse errors are returned before any
// comparison. On ErrNotCanonical the parsed item and its canonical
// hash are still returned.
func CheckCanonical(raw []byte) (*Item, string, error) {
	it, err := FromJSON(raw)
	if err != nil {
		return nil, "", err
	}
	canonical := it.Digest()
	if digest.Sum(raw) != canonical {
		return it, canonical.Hex(), ErrNotCanonical
	}
	return it, canonical.Hex(), nil
}
