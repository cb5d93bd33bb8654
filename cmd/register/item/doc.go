// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package item implements the "register item" command group:
// canonicalisation, content hashing, identifiers, CBOR export and
// import, and conformance against a schema.
//
// Every command takes its JSON input as a positional argument, as "-"
// for stdin, or as "@path" for a file.
package item
