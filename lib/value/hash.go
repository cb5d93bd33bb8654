// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/register/lib/digest"
)

// Hash is an algorithm-tagged hex digest, "sha-256:<hex>". The digest
// must be lower-case: upper-case hex is a different spelling, and
// values are compared by their canonical text.
type Hash struct {
	Algorithm string
	Digest    string
}

func (Hash) Kind() Kind       { return KindHash }
func (Hash) isValue()         {}
func (h Hash) String() string { return h.Algorithm + ":" + h.Digest }

// knownAlgorithms lists the accepted algorithm tags.
var knownAlgorithms = map[string]bool{
	digest.Algorithm: true,
}

// HashOf returns the Hash value for a computed digest.
func HashOf(d digest.Digest) Hash {
	return Hash{Algorithm: digest.Algorithm, Digest: d.Hex()}
}

// ParseHash splits raw on its first ':' into algorithm and digest.
func ParseHash(raw string) (Hash, error) {
	algorithm, hexDigest, found := strings.Cut(raw, ":")
	if !found {
		return Hash{}, newError(InvalidHash, raw, ErrHashSeparator)
	}
	if !knownAlgorithms[algorithm] {
		return Hash{}, newError(InvalidHash, raw, ErrUnknownAlgorithm)
	}
	if hexDigest == "" {
		return Hash{}, newError(InvalidHash, raw, ErrInvalidDigest)
	}
	for i := 0; i < len(hexDigest); i++ {
		if !digest.IsLowerHex(hexDigest[i]) {
			return Hash{}, newError(InvalidHash, raw, fmt.Errorf("%w: character %q at position %d", ErrInvalidDigest, hexDigest[i], i))
		}
	}
	return Hash{Algorithm: algorithm, Digest: hexDigest}, nil
}
