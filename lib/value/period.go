// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"strconv"
	"strings"
)

// Duration is an ISO 8601 duration such as "P1Y2M", "PT36H" or
// "P1DT12H". Components that were not written are absent, not zero:
// "P0D" and "PT0S" are distinct durations.
type Duration struct {
	Years, Months, Weeks, Days uint64
	Hours, Minutes, Seconds    uint64

	present durationUnit
}

type durationUnit uint8

const (
	unitYears durationUnit = 1 << iota
	unitMonths
	unitWeeks
	unitDays
	unitHours
	unitMinutes
	unitSeconds

	timeUnits = unitHours | unitMinutes | unitSeconds
)

var durationUnits = []struct {
	unit   durationUnit
	suffix byte
	field  func(*Duration) *uint64
}{
	{unitYears, 'Y', func(d *Duration) *uint64 { return &d.Years }},
	{unitMonths, 'M', func(d *Duration) *uint64 { return &d.Months }},
	{unitWeeks, 'W', func(d *Duration) *uint64 { return &d.Weeks }},
	{unitDays, 'D', func(d *Duration) *uint64 { return &d.Days }},
	{unitHours, 'H', func(d *Duration) *uint64 { return &d.Hours }},
	{unitMinutes, 'M', func(d *Duration) *uint64 { return &d.Minutes }},
	{unitSeconds, 'S', func(d *Duration) *uint64 { return &d.Seconds }},
}

func (d Duration) String() string {
	var builder strings.Builder
	builder.WriteByte('P')
	for _, u := range durationUnits {
		if u.unit == unitHours && d.present&timeUnits != 0 {
			builder.WriteByte('T')
		}
		if d.present&u.unit == 0 {
			continue
		}
		builder.WriteString(strconv.FormatUint(*u.field(&d), 10))
		builder.WriteByte(u.suffix)
	}
	return builder.String()
}

// ParseDuration parses an ISO 8601 duration. Bare "P", "PT" and forms
// ending in "T" are rejected.
func ParseDuration(raw string) (Duration, error) {
	d, err := parseDuration(raw)
	if err != nil {
		return Duration{}, newError(InvalidPeriod, raw, err)
	}
	return d, nil
}

func parseDuration(raw string) (Duration, error) {
	groups := patterns.duration.FindStringSubmatch(raw)
	if groups == nil {
		return Duration{}, ErrDurationSyntax
	}
	// groups: 1..4 date units, 5 the whole time part, 6..8 time units.
	captures := []string{groups[1], groups[2], groups[3], groups[4], groups[6], groups[7], groups[8]}

	var d Duration
	for i, capture := range captures {
		if capture == "" {
			continue
		}
		n, err := strconv.ParseUint(capture, 10, 64)
		if err != nil {
			return Duration{}, ErrDurationSyntax
		}
		*durationUnits[i].field(&d) = n
		d.present |= durationUnits[i].unit
	}

	if d.present == 0 {
		return Duration{}, ErrDurationSyntax
	}
	if groups[5] != "" && d.present&timeUnits == 0 {
		return Duration{}, ErrDurationSyntax
	}
	return d, nil
}

// PeriodForm says which of the four shapes a Period has.
type PeriodForm uint8

const (
	// PeriodDuration is a bare duration: "P1Y".
	PeriodDuration PeriodForm = iota
	// PeriodRange is a start and end: "2018-01-01/2019-01-01".
	PeriodRange
	// PeriodStartDuration is a start and a duration: "2018/P1Y".
	PeriodStartDuration
	// PeriodDurationEnd is a duration and an end: "P1Y/2019".
	PeriodDurationEnd
)

// Period is an ISO 8601 time interval. Only the fields relevant to
// Form are set.
type Period struct {
	Form     PeriodForm
	Start    Datetime
	End      Datetime
	Duration Duration
}

func (Period) Kind() Kind { return KindPeriod }
func (Period) isValue()   {}

func (p Period) String() string {
	switch p.Form {
	case PeriodRange:
		return p.Start.String() + "/" + p.End.String()
	case PeriodStartDuration:
		return p.Start.String() + "/" + p.Duration.String()
	case PeriodDurationEnd:
		return p.Duration.String() + "/" + p.End.String()
	default:
		return p.Duration.String()
	}
}

// ParsePeriod parses a duration, a datetime range, or a datetime and
// duration joined by '/'.
func ParsePeriod(raw string) (Period, error) {
	p, err := parsePeriod(raw)
	if err != nil {
		return Period{}, newError(InvalidPeriod, raw, err)
	}
	return p, nil
}

func parsePeriod(raw string) (Period, error) {
	left, right, found := strings.Cut(raw, "/")
	if !found {
		d, err := parseDuration(raw)
		if err != nil {
			return Period{}, err
		}
		return Period{Form: PeriodDuration, Duration: d}, nil
	}
	if strings.Contains(right, "/") {
		return Period{}, ErrPeriodSlashes
	}

	leftIsDuration := strings.HasPrefix(left, "P")
	rightIsDuration := strings.HasPrefix(right, "P")

	switch {
	case leftIsDuration && rightIsDuration:
		return Period{}, ErrPeriodSyntax
	case leftIsDuration:
		d, err := parseDuration(left)
		if err != nil {
			return Period{}, err
		}
		end, err := parseDatetime(right)
		if err != nil {
			return Period{}, err
		}
		return Period{Form: PeriodDurationEnd, Duration: d, End: end}, nil
	case rightIsDuration:
		start, err := parseDatetime(left)
		if err != nil {
			return Period{}, err
		}
		d, err := parseDuration(right)
		if err != nil {
			return Period{}, err
		}
		return Period{Form: PeriodStartDuration, Start: start, Duration: d}, nil
	default:
		start, err := parseDatetime(left)
		if err != nil {
			return Period{}, err
		}
		end, err := parseDatetime(right)
		if err != nil {
			return Period{}, err
		}
		return Period{Form: PeriodRange, Start: start, End: end}, nil
	}
}
