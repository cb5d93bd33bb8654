// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bureau-foundation/register/lib/field"
)

// DecodeError locates a problem in a schema document.
type DecodeError struct {
	// Path is the dotted location of the offending member, for
	// example "attributes[2].cardinality".
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return e.Path + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// members reads one table of a generic document field by field.
// Whatever is not taken by the time finish is called is an unknown
// field.
type members struct {
	path   string
	source map[string]any
	taken  map[string]bool
}

func newMembers(path string, source map[string]any) *members {
	return &members{path: path, source: source, taken: make(map[string]bool, len(source))}
}

func (m *members) location(name string) string {
	if m.path == "" {
		return name
	}
	return m.path + "." + name
}

func (m *members) fail(name string, format string, args ...any) error {
	return &DecodeError{Path: m.location(name), Err: fmt.Errorf(format, args...)}
}

func (m *members) take(name string, required bool) (any, bool, error) {
	m.taken[name] = true
	raw, ok := m.source[name]
	if !ok {
		if required {
			return nil, false, m.fail(name, "missing field")
		}
		return nil, false, nil
	}
	return raw, true, nil
}

func (m *members) string(name string, required bool) (string, error) {
	raw, ok, err := m.take(name, required)
	if err != nil || !ok {
		return "", err
	}
	s, isString := raw.(string)
	if !isString {
		return "", m.fail(name, "expected a string, found %s", describe(raw))
	}
	return s, nil
}

// scalar reads a string, accepting an integer in its decimal form.
// YAML and TOML both read an unquoted 1 as a number.
func (m *members) scalar(name string, required bool) (string, error) {
	raw, ok, err := m.take(name, required)
	if err != nil || !ok {
		return "", err
	}
	switch raw := raw.(type) {
	case string:
		return raw, nil
	case int:
		return strconv.Itoa(raw), nil
	case int64:
		return strconv.FormatInt(raw, 10), nil
	case uint64:
		return strconv.FormatUint(raw, 10), nil
	case json.Number:
		return raw.String(), nil
	}
	return "", m.fail(name, "expected a string, found %s", describe(raw))
}

func (m *members) fieldName(name string) (field.Name, error) {
	raw, err := m.string(name, true)
	if err != nil {
		return field.Name{}, err
	}
	parsed, err := field.Parse(raw)
	if err != nil {
		return field.Name{}, &DecodeError{Path: m.location(name), Err: err}
	}
	return parsed, nil
}

func (m *members) table(name string, required bool) (*members, bool, error) {
	raw, ok, err := m.take(name, required)
	if err != nil || !ok {
		return nil, false, err
	}
	table, isTable := raw.(map[string]any)
	if !isTable {
		return nil, false, m.fail(name, "expected a table, found %s", describe(raw))
	}
	return newMembers(m.location(name), table), true, nil
}

// tables reads an array of tables. TOML decodes [[name]] as
// []map[string]any; YAML and JSON produce []any.
func (m *members) tables(name string, required bool) ([]*members, error) {
	raw, ok, err := m.take(name, required)
	if err != nil || !ok {
		return nil, err
	}
	var entries []map[string]any
	switch raw := raw.(type) {
	case []map[string]any:
		entries = raw
	case []any:
		for i, element := range raw {
			table, isTable := element.(map[string]any)
			if !isTable {
				return nil, m.fail(fmt.Sprintf("%s[%d]", name, i), "expected a table, found %s", describe(element))
			}
			entries = append(entries, table)
		}
	default:
		return nil, m.fail(name, "expected an array of tables, found %s", describe(raw))
	}

	result := make([]*members, len(entries))
	for i, entry := range entries {
		result[i] = newMembers(fmt.Sprintf("%s[%d]", m.location(name), i), entry)
	}
	return result, nil
}

// finish reports members that were never taken.
func (m *members) finish() error {
	var unknown []string
	for name := range m.source {
		if !m.taken[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &DecodeError{
		Path: m.path,
		Err:  fmt.Errorf("unknown field(s) %s", strings.Join(quoteAll(unknown), ", ")),
	}
}

func quoteAll(names []string) []string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return quoted
}

func describe(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case map[string]any:
		return "a table"
	case []any, []map[string]any:
		return "an array"
	default:
		return fmt.Sprintf("%T", raw)
	}
}

// decodeDocument reads a generic schema document.
func decodeDocument(document map[string]any) (*Schema, error) {
	top := newMembers("", document)

	id, err := top.string("id", true)
	if err != nil {
		return nil, err
	}
	plan := NewPlan(id)

	label, err := top.string("label", false)
	if err != nil {
		return nil, err
	}
	description, err := top.string("description", false)
	if err != nil {
		return nil, err
	}
	custodian, err := top.string("custodian", false)
	if err != nil {
		return nil, err
	}
	plan.WithLabel(label).WithDescription(description).WithCustodian(custodian)

	keyTable, present, err := top.table("primary-key", false)
	if err != nil {
		return nil, err
	}
	if present {
		key, err := decodeKey(keyTable)
		if err != nil {
			return nil, err
		}
		plan.WithPrimaryKey(key)
	}

	attributeTables, err := top.tables("attributes", false)
	if err != nil {
		return nil, err
	}
	for _, table := range attributeTables {
		attribute, err := decodeAttribute(table)
		if err != nil {
			return nil, err
		}
		plan.WithAttribute(attribute)
	}

	if err := top.finish(); err != nil {
		return nil, err
	}
	return plan.Validate()
}

func decodeKey(table *members) (Key, error) {
	id, err := table.fieldName("id")
	if err != nil {
		return Key{}, err
	}
	label, err := table.string("label", false)
	if err != nil {
		return Key{}, err
	}
	description, err := table.string("description", false)
	if err != nil {
		return Key{}, err
	}
	if err := table.finish(); err != nil {
		return Key{}, err
	}
	return NewKey(id, label, description), nil
}

func decodeAttribute(table *members) (Attribute, error) {
	id, err := table.fieldName("id")
	if err != nil {
		return Attribute{}, err
	}
	primitive, err := table.string("type", true)
	if err != nil {
		return Attribute{}, err
	}
	cardinality, err := table.scalar("cardinality", true)
	if err != nil {
		return Attribute{}, err
	}
	datatype, err := newDatatype(primitive, cardinality)
	if err != nil {
		return Attribute{}, &DecodeError{Path: table.path, Err: err}
	}
	label, err := table.string("label", false)
	if err != nil {
		return Attribute{}, err
	}
	description, err := table.string("description", false)
	if err != nil {
		return Attribute{}, err
	}
	if err := table.finish(); err != nil {
		return Attribute{}, err
	}
	return NewAttribute(id, datatype, label, description), nil
}
