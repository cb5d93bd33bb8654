// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package value

import (
	"fmt"
	"strings"
)

// Ring is a sequence of positions. Closure and winding are not
// checked.
type Ring []Position

// Polygon is a WKT polygon: one outer ring followed by zero or more
// inner rings, all of the same dimension.
//
//	POLYGON ((0 0, 10 0, 10 10, 0 0), (1 1, 2 1, 2 2, 1 1))
//	POLYGONZ ((0 0 1, 10 0 1, 10 10 1, 0 0 1))
type Polygon struct {
	Dimension Dimension
	Outer     Ring
	Inner     []Ring
}

func (Polygon) Kind() Kind { return KindPolygon }
func (Polygon) isValue()   {}

func (p Polygon) String() string {
	rings := make([]string, 0, 1+len(p.Inner))
	for _, ring := range append([]Ring{p.Outer}, p.Inner...) {
		positions := make([]string, len(ring))
		for i, position := range ring {
			positions[i] = position.format(p.Dimension)
		}
		rings = append(rings, "("+strings.Join(positions, ", ")+")")
	}
	return "POLYGON" + p.Dimension.keyword() + " (" + strings.Join(rings, ", ") + ")"
}

// Equal reports whether p and other have the same dimension and rings.
func (p Polygon) Equal(other Polygon) bool {
	if p.Dimension != other.Dimension || len(p.Inner) != len(other.Inner) {
		return false
	}
	if !ringsEqual(p.Outer, other.Outer) {
		return false
	}
	for i := range p.Inner {
		if !ringsEqual(p.Inner[i], other.Inner[i]) {
			return false
		}
	}
	return true
}

func ringsEqual(a, b Ring) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ParsePolygon parses a 2-D or 3-D WKT polygon.
func ParsePolygon(raw string) (Polygon, error) {
	p, err := parsePolygon(raw)
	if err != nil {
		return Polygon{}, newError(InvalidPolygon, raw, err)
	}
	return p, nil
}

func parsePolygon(raw string) (Polygon, error) {
	groups := patterns.polygon.FindStringSubmatch(raw)
	if groups == nil {
		return Polygon{}, ErrPolygonSyntax
	}
	dimension := XY
	if groups[1] == "POLYGONZ" {
		dimension = XYZ
	}
	body := groups[2]
	if !patterns.rings.MatchString(body) {
		return Polygon{}, ErrPolygonSyntax
	}

	var rings []Ring
	for index, match := range patterns.ring.FindAllStringSubmatch(body, -1) {
		ring, err := parseRing(match[1], dimension)
		if err != nil {
			return Polygon{}, fmt.Errorf("%w %d: %v", ErrPolygonRing, index, err)
		}
		rings = append(rings, ring)
	}
	if len(rings) == 0 {
		return Polygon{}, ErrPolygonSyntax
	}
	return Polygon{Dimension: dimension, Outer: rings[0], Inner: rings[1:]}, nil
}

func parseRing(body string, dimension Dimension) (Ring, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("empty ring")
	}
	parts := strings.Split(body, ",")
	ring := make(Ring, 0, len(parts))
	for _, part := range parts {
		position, ok := parseCoordinates(strings.Fields(part), dimension)
		if !ok {
			return nil, fmt.Errorf("invalid position %q", strings.TrimSpace(part))
		}
		ring = append(ring, position)
	}
	return ring, nil
}
