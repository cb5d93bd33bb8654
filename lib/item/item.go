// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package item

import (
	"iter"
	"slices"

	"github.com/bureau-foundation/register/lib/field"
	"github.com/bureau-foundation/register/lib/value"
)

// Entry is one field of an item.
type Entry struct {
	Name  field.Name
	Value value.Value
}

// Item is an ordered mapping from field name to value. Names are
// unique and entries are always in field name order. The zero Item is
// empty and ready to use.
//
// Items are built by Insert and then treated as immutable: an Item
// shared between goroutines must not be modified.
type Item struct {
	entries []Entry
}

// New returns an empty item.
func New() *Item {
	return &Item{}
}

// Insert sets the value of name, replacing any previous value. It
// reports the replaced value when there was one.
func (it *Item) Insert(name field.Name, v value.Value) (previous value.Value, replaced bool) {
	if name.IsZero() {
		panic("item: Insert with zero field name")
	}
	if v == nil {
		panic("item: Insert of nil value for field " + name.String())
	}
	index, found := it.search(name)
	if found {
		previous = it.entries[index].Value
		it.entries[index].Value = v
		return previous, true
	}
	it.entries = slices.Insert(it.entries, index, Entry{Name: name, Value: v})
	return nil, false
}

// Get returns the value of name.
func (it *Item) Get(name field.Name) (value.Value, bool) {
	index, found := it.search(name)
	if !found {
		return nil, false
	}
	return it.entries[index].Value, true
}

// Len returns the number of fields.
func (it *Item) Len() int {
	return len(it.entries)
}

// Names returns the field names in order.
func (it *Item) Names() []field.Name {
	names := make([]field.Name, len(it.entries))
	for i, entry := range it.entries {
		names[i] = entry.Name
	}
	return names
}

// All iterates over the fields in field name order.
func (it *Item) All() iter.Seq2[field.Name, value.Value] {
	return func(yield func(field.Name, value.Value) bool) {
		for _, entry := range it.entries {
			if !yield(entry.Name, entry.Value) {
				return
			}
		}
	}
}

// Entries returns a copy of the fields in field name order.
func (it *Item) Entries() []Entry {
	return slices.Clone(it.entries)
}

// Equal reports whether it and other have the same field names and
// each pair of values has the same canonical encoding. String and
// Untyped values with the same text are therefore equal, as are a
// Datetime and the Untyped spelling of it: generic decoding cannot
// tell them apart, and identity is defined by the canonical form.
func (it *Item) Equal(other *Item) bool {
	if it.Len() != other.Len() {
		return false
	}
	for i, entry := range it.entries {
		theirs := other.entries[i]
		if entry.Name != theirs.Name {
			return false
		}
		if encodeValueString(entry.Value) != encodeValueString(theirs.Value) {
			return false
		}
	}
	return true
}

func (it *Item) search(name field.Name) (int, bool) {
	return slices.BinarySearchFunc(it.entries, name, func(entry Entry, target field.Name) int {
		return entry.Name.Compare(target)
	})
}
