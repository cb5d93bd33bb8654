// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema describes the shape of the items in a register: a
// primary key and a list of attributes, each with a datatype and a
// cardinality.
//
// Schemas are built in code with a [Plan] or loaded from a file with
// [Load]. Files may be TOML, YAML, or JSON (with comments); all three
// are decoded into a generic document first and then read field by
// field, so every format rejects the same unknown, duplicate, and
// missing fields:
//
//	id = "country"
//	label = "Country"
//	primary-key = { id = "country", label = "Country code" }
//
//	[[attributes]]
//	id = "name"
//	type = "string"
//	cardinality = "1"
//
// [Schema.Conform] checks an item against a schema and returns the
// item with every value parsed into its declared datatype.
package schema
