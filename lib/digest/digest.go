// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Algorithm is the tag used in identifiers and hash values.
const Algorithm = "sha-256"

// Size is the length of a digest in bytes.
const Size = sha256.Size

// Digest is a SHA-256 digest.
type Digest [Size]byte

// Sum returns the SHA-256 digest of data.
func Sum(data []byte) Digest {
	return Digest(sha256.Sum256(data))
}

// SumString returns the SHA-256 digest of the UTF-8 bytes of s.
func SumString(s string) Digest {
	return Sum([]byte(s))
}

// Hex returns the lower-case hex encoding of the digest.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// String returns the lower-case hex encoding of the digest.
func (d Digest) String() string { return d.Hex() }

// ID returns the identifier form "sha-256:<hex>".
func (d Digest) ID() string {
	return Algorithm + ":" + d.Hex()
}

// Parse parses a lower-case hex-encoded SHA-256 digest. Upper-case hex
// is rejected: the textual form of a digest is canonical, so two
// spellings of the same bytes are not interchangeable.
func Parse(hexString string) (Digest, error) {
	var d Digest
	if len(hexString) != 2*Size {
		return d, fmt.Errorf("hash digest is %d characters, want %d", len(hexString), 2*Size)
	}
	for i := 0; i < len(hexString); i++ {
		if !IsLowerHex(hexString[i]) {
			return d, fmt.Errorf("hash digest: invalid character %q at position %d", hexString[i], i)
		}
	}
	if _, err := hex.Decode(d[:], []byte(hexString)); err != nil {
		return d, fmt.Errorf("parsing hash digest: %w", err)
	}
	return d, nil
}

// IsLowerHex reports whether c is one of 0-9 or a-f.
func IsLowerHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f')
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
