// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format is a schema file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the format from a file extension: .toml, .yaml
// or .yml, .json or .jsonc.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("cannot tell the schema format of %q (expected .toml, .yaml, .yml, .json or .jsonc)", path)
}

// Load reads and validates the schema file at path.
func Load(path string) (*Schema, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	parsed, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", path, err)
	}
	return parsed, nil
}

// Parse decodes and validates a schema document in the given format.
func Parse(data []byte, format Format) (*Schema, error) {
	var (
		document map[string]any
		err      error
	)
	switch format {
	case FormatTOML:
		document, err = decodeTOML(data)
	case FormatYAML:
		document, err = decodeYAML(data)
	case FormatJSON:
		document, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("unsupported schema format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return decodeDocument(document)
}

func decodeTOML(data []byte) (map[string]any, error) {
	var document map[string]any
	if _, err := toml.Decode(string(data), &document); err != nil {
		var parseErr toml.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("invalid TOML: %s", parseErr.ErrorWithPosition())
		}
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return document, nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	var document map[string]any
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if document == nil {
		return nil, errors.New("invalid YAML: empty document")
	}
	return document, nil
}

// decodeJSON strips comments and trailing commas, then walks the
// tokens so that duplicate keys are an error rather than last-wins.
func decodeJSON(data []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	decoder.UseNumber()

	document, err := decodeJSONValue(decoder)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, errors.New("invalid JSON: trailing data after document")
	}
	table, ok := document.(map[string]any)
	if !ok {
		return nil, errors.New("invalid JSON: schema must be an object")
	}
	return table, nil
}

func decodeJSONValue(decoder *json.Decoder) (any, error) {
	token, err := decoder.Token()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("offset %d: %w", decoder.InputOffset(), err)
	}
	delim, isDelim := token.(json.Delim)
	if !isDelim {
		return token, nil
	}
	switch delim {
	case '[':
		elements := []any{}
		for decoder.More() {
			element, err := decodeJSONValue(decoder)
			if err != nil {
				return nil, err
			}
			elements = append(elements, element)
		}
		if _, err := decoder.Token(); err != nil {
			return nil, err
		}
		return elements, nil
	default:
		table := map[string]any{}
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				return nil, err
			}
			key := keyToken.(string)
			if _, exists := table[key]; exists {
				return nil, fmt.Errorf("offset %d: duplicate key %q", decoder.InputOffset(), key)
			}
			member, err := decodeJSONValue(decoder)
			if err != nil {
				return nil, err
			}
			table[key] = member
		}
		if _, err := decoder.Token(); err != nil {
			return nil, err
		}
		return table, nil
	}
}
