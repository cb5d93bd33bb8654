// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"strconv"
)

// Precision is the granularity of a Datetime.
type Precision uint8

const (
	// Year is "2018".
	Year Precision = iota
	// YearMonth is "2018-10".
	YearMonth
	// Date is "2018-10-11".
	Date
	// DateHour is "2018-10-11T12Z".
	DateHour
	// DateHourMinute is "2018-10-11T12:13Z".
	DateHourMinute
	// Full is "2018-10-11T12:13:14Z".
	Full

	precisionCount
)

var precisionNames = [precisionCount]string{
	Year:           "year",
	YearMonth:      "year-month",
	Date:           "date",
	DateHour:       "date-hour",
	DateHourMinute: "date-hour-minute",
	Full:           "full",
}

func (p Precision) String() string {
	if p < precisionCount {
		return precisionNames[p]
	}
	return fmt.Sprintf("Precision(%d)", p)
}

// Datetime is an ISO 8601 date or UTC date-time at one of six
// precisions. Components finer than the precision are zero. Only the
// syntax is checked: month 13 is accepted.
type Datetime struct {
	Precision Precision
	Year      uint16
	Month     uint8
	Day       uint8
	Hour      uint8
	Minute    uint8
	Second    uint8
}

func (Datetime) Kind() Kind { return KindDatetime }
func (Datetime) isValue()   {}

func (d Datetime) String() string {
	switch d.Precision {
	case Year:
		return fmt.Sprintf("%04d", d.Year)
	case YearMonth:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	case Date:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	case DateHour:
		return fmt.Sprintf("%04d-%02d-%02dT%02dZ", d.Year, d.Month, d.Day, d.Hour)
	case DateHourMinute:
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02dZ", d.Year, d.Month, d.Day, d.Hour, d.Minute)
	default:
		return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
	}
}

// ParseDatetime parses raw against the six datetime patterns in order
// of increasing precision.
func ParseDatetime(raw string) (Datetime, error) {
	d, err := parseDatetime(raw)
	if err != nil {
		return Datetime{}, newError(InvalidDatetime, raw, err)
	}
	return d, nil
}

func parseDatetime(raw string) (Datetime, error) {
	for precision := Year; precision < precisionCount; precision++ {
		groups := patterns.datetime[precision].FindStringSubmatch(raw)
		if groups == nil {
			continue
		}
		components, err := parseComponents(groups[1:])
		if err != nil {
			return Datetime{}, err
		}
		// Components beyond the precision stay zero.
		var c [6]uint64
		copy(c[:], components)
		d := Datetime{
			Precision: precision,
			Year:      uint16(c[0]),
			Month:     uint8(c[1]),
			Day:       uint8(c[2]),
			Hour:      uint8(c[3]),
			Minute:    uint8(c[4]),
			Second:    uint8(c[5]),
		}
		return d, nil
	}
	return Datetime{}, ErrDatetimeSyntax
}

// parseComponents converts fixed-width digit groups to integers. The
// patterns bound every group to four or two digits, so the values fit
// their destination fields.
func parseComponents(groups []string) ([]uint64, error) {
	components := make([]uint64, len(groups))
	for i, group := range groups {
		n, err := strconv.ParseUint(group, 10, 16)
		if err != nil {
			return nil, err
		}
		components[i] = n
	}
	return components, nil
}
