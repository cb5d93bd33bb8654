// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"strconv"
	"strings"
)

// Dimension is the number of coordinates in a position.
type Dimension uint8

const (
	XY  Dimension = 2
	XYZ Dimension = 3
)

// keyword returns the WKT suffix for the dimension ("" or "Z").
func (d Dimension) keyword() string {
	if d == XYZ {
		return "Z"
	}
	return ""
}

// Position is one coordinate tuple. Z is zero for XY positions.
type Position struct {
	X, Y, Z float64
}

func (p Position) format(dimension Dimension) string {
	parts := []string{formatCoordinate(p.X), formatCoordinate(p.Y)}
	if dimension == XYZ {
		parts = append(parts, formatCoordinate(p.Z))
	}
	return strings.Join(parts, " ")
}

func formatCoordinate(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parseCoordinates parses space-separated numbers into a position of
// the given dimension.
func parseCoordinates(fields []string, dimension Dimension) (Position, bool) {
	if len(fields) != int(dimension) {
		return Position{}, false
	}
	var values [3]float64
	for i, field := range fields {
		if !patterns.number.MatchString(field) {
			return Position{}, false
		}
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Position{}, false
		}
		values[i] = f
	}
	return Position{X: values[0], Y: values[1], Z: values[2]}, true
}

// Point is a WKT point: "POINT (x y)" or "POINTZ (x y z)".
type Point struct {
	Dimension Dimension
	Position
}

func (Point) Kind() Kind { return KindPoint }
func (Point) isValue()   {}

func (p Point) String() string {
	return "POINT" + p.Dimension.keyword() + " (" + p.Position.format(p.Dimension) + ")"
}

// ParsePoint parses a 2-D or 3-D WKT point. Exactly one space separates
// the keyword from the parenthesis and the coordinates from each other.
func ParsePoint(raw string) (Point, error) {
	dimension := XY
	groups := patterns.point.FindStringSubmatch(raw)
	if groups == nil {
		dimension = XYZ
		groups = patterns.pointZ.FindStringSubmatch(raw)
	}
	if groups == nil {
		return Point{}, newError(InvalidPoint, raw, ErrPointSyntax)
	}
	position, ok := parseCoordinates(groups[1:], dimension)
	if !ok {
		return Point{}, newError(InvalidPoint, raw, ErrPointSyntax)
	}
	return Point{Dimension: dimension, Position: position}, nil
}
