// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package field provides [Name], the validated key type of an item.
//
// A field name is restricted to lower-case ASCII letters and hyphens
// ([a-z-]). The restriction keeps canonical JSON keys free of escapes,
// so the byte-lexicographic order of names is also the order of their
// encoded keys.
//
// Name is an immutable value type. Construct one with [Parse] (or
// [MustParse] for known-valid literals); the zero value is not a valid
// name and reports IsZero. JSON and other text encodings use the bare
// name via encoding.TextMarshaler.
package field
