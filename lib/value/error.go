// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"errors"
	"fmt"
)

// ErrorCode identifies which datatype rejected an input.
type ErrorCode int

const (
	UnknownType ErrorCode = iota + 1
	InvalidURL
	InvalidBool
	InvalidInteger
	InvalidUnknown
	InvalidInapplicable
	InvalidText
	InvalidHash
	InvalidCurie
	InvalidTimestamp
	InvalidDatetime
	InvalidPeriod
	InvalidPoint
	InvalidPolygon
	InvalidList
)

var errorCodeMessages = map[ErrorCode]string{
	UnknownType:         "unknown type",
	InvalidURL:          "invalid url",
	InvalidBool:         "invalid boolean",
	InvalidInteger:      "invalid integer",
	InvalidUnknown:      "invalid unknown",
	InvalidInapplicable: "invalid inapplicable",
	InvalidText:         "invalid text",
	InvalidHash:         "invalid hash",
	InvalidCurie:        "invalid curie",
	InvalidTimestamp:    "invalid timestamp",
	InvalidDatetime:     "invalid datetime",
	InvalidPeriod:       "invalid period",
	InvalidPoint:        "invalid point",
	InvalidPolygon:      "invalid polygon",
	InvalidList:         "invalid list",
}

func (c ErrorCode) String() string {
	if message, ok := errorCodeMessages[c]; ok {
		return message
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Error is returned by every parser in this package. Err is the
// sub-parser cause and may be nil.
type Error struct {
	Code  ErrorCode
	Input string
	Err   error
}

func (e *Error) Error() string {
	message := e.Code.String()
	if e.Code == UnknownType {
		message += " " + e.Input
	}
	if e.Err != nil {
		return message + ": " + e.Err.Error()
	}
	return message
}

func (e *Error) Unwrap() error { return e.Err }

// Cause returns the sub-parser cause when there is one, or e itself.
// The CLI prints this so users see "invalid algorithm" rather than
// the generic "invalid hash".
func (e *Error) Cause() error {
	if e.Err != nil {
		return e.Err
	}
	return e
}

func newError(code ErrorCode, input string, cause error) *Error {
	return &Error{Code: code, Input: input, Err: cause}
}

// Sub-parser causes.
var (
	ErrCurieSeparator = errors.New("missing ':' between prefix and reference")
	ErrCuriePrefix    = errors.New("invalid prefix")
	ErrCurieReference = errors.New("invalid reference")

	ErrDatetimeSyntax  = errors.New("invalid datetime syntax")
	ErrTimestampSyntax = errors.New("invalid RFC3339 timestamp, expected YYYY-MM-DDThh:mm:ssZ")

	ErrDurationSyntax = errors.New("invalid duration")
	ErrPeriodSyntax   = errors.New("invalid period syntax")
	ErrPeriodSlashes  = errors.New("a period has at most one '/'")

	ErrPointSyntax   = errors.New("invalid WKT point")
	ErrPolygonSyntax = errors.New("invalid WKT polygon")
	ErrPolygonRing   = errors.New("invalid polygon ring")

	ErrHashSeparator    = errors.New("missing ':' between algorithm and digest")
	ErrUnknownAlgorithm = errors.New("invalid algorithm")
	ErrInvalidDigest    = errors.New("invalid digest, expected lower-case hex")

	ErrInvalidPort        = errors.New("invalid port")
	ErrInvalidIPv4Address = errors.New("invalid IPv4 address")
	ErrInvalidIPv6Address = errors.New("invalid IPv6 address")
	ErrInvalidDomain      = errors.New("invalid domain")
	ErrRelativeURL        = errors.New("relative URL without a base")
	ErrURLOverflow        = errors.New("number too large")
	ErrURLParse           = errors.New("URL parse error")

	ErrListUnsupported = errors.New("list values are validated element by element")
	ErrNestedList      = errors.New("lists of lists are not supported")
)
