// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"time"
)

// Timestamp is an RFC 3339 instant in UTC with second precision,
// written with a literal "Z". "T" and "Z" must be upper case. Only the
// syntax is checked.
type Timestamp struct {
	Year   uint16
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
	Second uint8
}

func (Timestamp) Kind() Kind { return KindTimestamp }
func (Timestamp) isValue()   {}

func (t Timestamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ", t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}

// Time converts t to a time.Time. Out-of-range components are
// normalized the way time.Date normalizes them.
func (t Timestamp) Time() time.Time {
	return time.Date(int(t.Year), time.Month(t.Month), int(t.Day), int(t.Hour), int(t.Minute), int(t.Second), 0, time.UTC)
}

// ParseTimestamp parses a YYYY-MM-DDThh:mm:ssZ timestamp.
func ParseTimestamp(raw string) (Timestamp, error) {
	groups := patterns.timestamp.FindStringSubmatch(raw)
	if groups == nil {
		return Timestamp{}, newError(InvalidTimestamp, raw, ErrTimestampSyntax)
	}
	c, err := parseComponents(groups[1:])
	if err != nil {
		return Timestamp{}, newError(InvalidTimestamp, raw, err)
	}
	return Timestamp{
		Year:   uint16(c[0]),
		Month:  uint8(c[1]),
		Day:    uint8(c[2]),
		Hour:   uint8(c[3]),
		Minute: uint8(c[4]),
		Second: uint8(c[5]),
	}, nil
}
