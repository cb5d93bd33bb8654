// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package item

import (
	"fmt"
	"math"

	"github.com/bureau-foundation/register/lib/codec"
	"github.com/bureau-foundation/register/lib/field"
	"github.com/bureau-foundation/register/lib/value"
)

// MarshalCBOR encodes it as a deterministic CBOR map with the same
// value shapes as the canonical JSON: null, booleans, integers, text
// strings, arrays, and the {"type":"inapplicable"} marker map.
func (it *Item) MarshalCBOR() ([]byte, error) {
	generic := make(map[string]any, len(it.entries))
	for _, entry := range it.entries {
		generic[entry.Name.String()] = genericValue(entry.Value)
	}
	return codec.Marshal(generic)
}

// UnmarshalCBOR decodes a CBOR map produced by MarshalCBOR. The same
// rules as FromJSON apply: keys must be field names and values are
// decoded generically.
func (it *Item) UnmarshalCBOR(data []byte) error {
	var generic map[string]any
	if err := codec.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("decoding item CBOR: %w", err)
	}
	if generic == nil {
		return ErrNotObject
	}
	decoded := New()
	for key, raw := range generic {
		name, err := field.Parse(key)
		if err != nil {
			return err
		}
		v, err := fromGeneric(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		decoded.Insert(name, v)
	}
	*it = *decoded
	return nil
}

func genericValue(v value.Value) any {
	switch v := v.(type) {
	case value.Unknown:
		return nil
	case value.Inapplicable:
		return map[string]any{"type": inapplicableType}
	case value.Bool:
		return bool(v)
	case value.Integer:
		return int64(v)
	case value.List:
		elements := make([]any, len(v))
		for i, element := range v {
			elements[i] = genericValue(element)
		}
		return elements
	default:
		return v.String()
	}
}

func fromGeneric(raw any) (value.Value, error) {
	switch raw := raw.(type) {
	case nil:
		return value.Unknown{}, nil
	case string:
		return value.Untyped(raw), nil
	case bool:
		return value.Bool(raw), nil
	case int64:
		return value.Integer(raw), nil
	case uint64:
		if raw > math.MaxInt64 {
			return nil, fmt.Errorf("%w: integer %d overflows int64", ErrUnsupportedValue, raw)
		}
		return value.Integer(int64(raw)), nil
	case []any:
		list := make(value.List, 0, len(raw))
		for i, element := range raw {
			v, err := fromGeneric(element)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			list = append(list, v)
		}
		return list, nil
	case map[string]any:
		members := make(map[string]value.Value, len(raw))
		for key, member := range raw {
			v, err := fromGeneric(member)
			if err != nil {
				return nil, err
			}
			members[key] = v
		}
		return objectValue(members)
	}
	return nil, fmt.Errorf("%w: CBOR %T", ErrUnsupportedValue, raw)
}
