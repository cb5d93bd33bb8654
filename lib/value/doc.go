// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package value provides the typed value model of an item and the
// textual parser for each datatype.
//
// [Value] is a sealed interface: the only implementations are the
// types in this package (Untyped, Unknown, Inapplicable, Bool, String,
// Text, Integer, Datetime, Timestamp, Period, Point, Polygon, Curie,
// Hash, URL and List). Every variant's String method returns its
// canonical textual rendering, and for every parsed value v,
// Parse(v.String(), v.Kind()) returns a value equal to v.
//
// [Parse] validates one string against one declared [Kind]:
//
//	v, err := value.Parse("POINT (0 0)", value.KindPoint)
//	v, err := value.Parse("sha-256:1293...e3ae", value.KindHash)
//
// Parsers are strict about syntax and permissive about semantics:
// dates are not checked against the calendar, polygons are not checked
// for winding or self-intersection, and CURIE references are only
// rejected when they end in ':'.
//
// Errors are *[Error] values carrying an [ErrorCode] and, where one
// exists, the sub-parser cause (available through errors.Is/As on the
// sentinel causes such as [ErrUnknownAlgorithm] or through *[TextError]).
//
// All regular expressions are compiled once into a package-level table
// and never mutated, so every function here is safe for concurrent use.
package value
