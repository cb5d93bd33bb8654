// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package item

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bureau-foundation/register/lib/field"
	"github.com/bureau-foundation/register/lib/value"
)

// Decoding failures. Syntax errors from encoding/json are wrapped with
// the input offset instead.
var (
	ErrNotObject        = errors.New("item must be a JSON object")
	ErrDuplicateField   = errors.New("duplicate field")
	ErrTrailingData     = errors.New("trailing data after item")
	ErrUnsupportedValue = errors.New("unsupported value")
)

// inapplicableType is the "type" member of the encoded Inapplicable
// value, {"type":"inapplicable"}.
const inapplicableType = "inapplicable"

// ToJSON returns the canonical JSON text of it.
func ToJSON(it *Item) string {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for i, entry := range it.entries {
		if i > 0 {
			buffer.WriteByte(',')
		}
		writeString(&buffer, entry.Name.String())
		buffer.WriteByte(':')
		writeValue(&buffer, entry.Value)
	}
	buffer.WriteByte('}')
	return buffer.String()
}

func encodeValueString(v value.Value) string {
	var buffer bytes.Buffer
	writeValue(&buffer, v)
	return buffer.String()
}

func writeValue(buffer *bytes.Buffer, v value.Value) {
	switch v := v.(type) {
	case value.Unknown:
		buffer.WriteString("null")
	case value.Inapplicable:
		buffer.WriteString(`{"type":"` + inapplicableType + `"}`)
	case value.Bool:
		buffer.WriteString(strconv.FormatBool(bool(v)))
	case value.Integer:
		buffer.WriteString(strconv.FormatInt(int64(v), 10))
	case value.List:
		buffer.WriteByte('[')
		for i, element := range v {
			if i > 0 {
				buffer.WriteByte(',')
			}
			writeValue(buffer, element)
		}
		buffer.WriteByte(']')
	default:
		// Strings and every rich variant encode as their canonical
		// text.
		writeString(buffer, v.String())
	}
}

const hexDigits = "0123456789ABCDEF"

// writeString writes s as a JSON string. Only '"', '\\' and
// U+0000-U+001F are escaped; '/', '<', '&', U+2028 and the rest of
// Unicode are written literally. \u escapes use upper-case hex.
// Invalid UTF-8 is replaced with U+FFFD.
func writeString(buffer *bytes.Buffer, s string) {
	buffer.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch c {
			case '"':
				buffer.WriteString(`\"`)
			case '\\':
				buffer.WriteString(`\\`)
			case '\b':
				buffer.WriteString(`\b`)
			case '\f':
				buffer.WriteString(`\f`)
			case '\n':
				buffer.WriteString(`\n`)
			case '\r':
				buffer.WriteString(`\r`)
			case '\t':
				buffer.WriteString(`\t`)
			default:
				if c < 0x20 {
					buffer.WriteString(`\u00`)
					buffer.WriteByte(hexDigits[c>>4])
					buffer.WriteByte(hexDigits[c&0xF])
				} else {
					buffer.WriteByte(c)
				}
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			buffer.WriteRune(utf8.RuneError)
		} else {
			buffer.WriteString(s[i : i+size])
		}
		i += size
	}
	buffer.WriteByte('"')
}

// FromJSON parses a JSON object into an Item. Keys must be legal field
// names and may not repeat. Values are decoded generically: strings
// become Untyped, numbers must be integers, and the only object
// accepted as a value is {"type":"inapplicable"}.
func FromJSON(data []byte) (*Item, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	token, err := decoder.Token()
	if err != nil {
		return nil, syntaxError(decoder, err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w, found %s", ErrNotObject, describeToken(token))
	}

	it := New()
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, syntaxError(decoder, err)
		}
		key := token.(string)
		name, err := field.Parse(key)
		if err != nil {
			return nil, err
		}
		if _, exists := it.Get(name); exists {
			return nil, fmt.Errorf("%w %q", ErrDuplicateField, key)
		}
		v, err := decodeValue(decoder)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		it.Insert(name, v)
	}
	if _, err := decoder.Token(); err != nil {
		return nil, syntaxError(decoder, err)
	}

	if token, err := decoder.Token(); err != io.EOF {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTrailingData, syntaxError(decoder, err))
		}
		return nil, fmt.Errorf("%w: %s at offset %d", ErrTrailingData, describeToken(token), decoder.InputOffset())
	}
	return it, nil
}

func decodeValue(decoder *json.Decoder) (value.Value, error) {
	token, err := decoder.Token()
	if err != nil {
		return nil, syntaxError(decoder, err)
	}
	switch token := token.(type) {
	case string:
		return value.Untyped(token), nil
	case bool:
		return value.Bool(token), nil
	case nil:
		return value.Unknown{}, nil
	case json.Number:
		number, err := strconv.ParseInt(token.String(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: number %s is not a 64-bit integer", ErrUnsupportedValue, token)
		}
		return value.Integer(number), nil
	case json.Delim:
		switch token {
		case '[':
			list := value.List{}
			for decoder.More() {
				element, err := decodeValue(decoder)
				if err != nil {
					return nil, fmt.Errorf("element %d: %w", len(list), err)
				}
				list = append(list, element)
			}
			if _, err := decoder.Token(); err != nil {
				return nil, syntaxError(decoder, err)
			}
			return list, nil
		case '{':
			members := map[string]value.Value{}
			for decoder.More() {
				keyToken, err := decoder.Token()
				if err != nil {
					return nil, syntaxError(decoder, err)
				}
				key := keyToken.(string)
				if _, exists := members[key]; exists {
					return nil, fmt.Errorf("%w %q", ErrDuplicateField, key)
				}
				member, err := decodeValue(decoder)
				if err != nil {
					return nil, err
				}
				members[key] = member
			}
			if _, err := decoder.Token(); err != nil {
				return nil, syntaxError(decoder, err)
			}
			return objectValue(members)
		}
	}
	return nil, fmt.Errorf("%w: unexpected %s", ErrUnsupportedValue, describeToken(token))
}

// objectValue maps a decoded JSON or CBOR object onto a value. Only
// the Inapplicable marker is representable.
func objectValue(members map[string]value.Value) (value.Value, error) {
	if len(members) == 1 {
		if marker, ok := members["type"].(value.Untyped); ok && marker == inapplicableType {
			return value.Inapplicable{}, nil
		}
	}
	return nil, fmt.Errorf(`%w: the only object value is {"type":"inapplicable"}`, ErrUnsupportedValue)
}

func syntaxError(decoder *json.Decoder, err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("invalid JSON at offset %d: %w", decoder.InputOffset(), err)
}

func describeToken(token json.Token) string {
	switch token := token.(type) {
	case json.Delim:
		return "'" + token.String() + "'"
	case string:
		return "string " + strconv.Quote(token)
	case nil:
		return "null"
	case json.Number:
		return "number " + token.String()
	case bool:
		return "boolean " + strconv.FormatBool(token)
	}
	return strings.TrimSpace(fmt.Sprintf("%v", token))
}
