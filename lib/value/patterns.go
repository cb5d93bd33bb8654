// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import "regexp"

// number matches a signed decimal coordinate.
const number = `[-+]?\d+(?:\.\d+)?`

// patterns is built once at package initialization and only read
// afterwards.
var patterns = struct {
	curiePrefix *regexp.Regexp

	// datetime is indexed by Precision; order matters, the first
	// match wins.
	datetime  [precisionCount]*regexp.Regexp
	timestamp *regexp.Regexp

	duration *regexp.Regexp

	number  *regexp.Regexp
	point   *regexp.Regexp
	pointZ  *regexp.Regexp
	polygon *regexp.Regexp
	rings   *regexp.Regexp
	ring    *regexp.Regexp
}{
	curiePrefix: regexp.MustCompile(`^[a-z][a-z0-9-]+$`),

	datetime: [precisionCount]*regexp.Regexp{
		Year:           regexp.MustCompile(`^(\d{4})$`),
		YearMonth:      regexp.MustCompile(`^(\d{4})-(\d{2})$`),
		Date:           regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`),
		DateHour:       regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2})Z$`),
		DateHourMinute: regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2})Z$`),
		Full:           regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})Z$`),
	},
	timestamp: regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})Z$`),

	// Date part, then an optional time part. Degenerate forms (bare P,
	// PT, trailing T) match this expression and are rejected by
	// parseDuration.
	duration: regexp.MustCompile(`^P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)W)?(?:(\d+)D)?(T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`),

	number:  regexp.MustCompile(`^` + number + `$`),
	point:   regexp.MustCompile(`^POINT \((` + number + `) (` + number + `)\)$`),
	pointZ:  regexp.MustCompile(`^POINTZ \((` + number + `) (` + number + `) (` + number + `)\)$`),
	polygon: regexp.MustCompile(`^(POLYGONZ?) \((.*)\)$`),
	rings:   regexp.MustCompile(`^\([^()]*\)(?:, ?\([^()]*\))*$`),
	ring:    regexp.MustCompile(`\(([^()]*)\)`),
}
