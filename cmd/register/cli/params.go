// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// FlagsFromParams creates a [pflag.FlagSet] with flags bound to the
// tagged fields of params. params must be a pointer to a struct.
// Panics on invalid input (programming error, not runtime data).
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := BindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// BindFlags registers pflag entries for each tagged field in params.
// params must be a pointer to a struct.
//
// # Struct tags
//
//   - flag:"name" or flag:"name,n" - the long flag name and optional
//     single-character shorthand. Fields without a flag tag are skipped.
//   - desc:"help text" - the flag's help description.
//   - default:"value" - the default, parsed according to the field's
//     type. If omitted, the type's zero value is used.
//
// # Supported field types
//
// string, bool, int, []string, and any type whose pointer implements
// both [encoding.TextUnmarshaler] and [encoding.TextMarshaler] (such
// as value.Kind). Embedded structs are bound recursively.
func BindFlags(params any, flagSet *pflag.FlagSet) error {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	return bindStructFields(value.Elem(), flagSet)
}

func bindStructFields(structValue reflect.Value, flagSet *pflag.FlagSet) error {
	structType := structValue.Type()

	for i := range structType.NumField() {
		field := structType.Field(i)
		fieldValue := structValue.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := bindStructFields(fieldValue, flagSet); err != nil {
				return fmt.Errorf("embedded %s: %w", field.Name, err)
			}
			continue
		}

		flagTag := field.Tag.Get("flag")
		if flagTag == "" {
			continue
		}
		if !fieldValue.CanAddr() || !field.IsExported() {
			return fmt.Errorf("field %s: not addressable", field.Name)
		}

		name, shorthand, _ := strings.Cut(flagTag, ",")
		err := bindField(fieldValue.Addr().Interface(), flagSet, name, shorthand,
			field.Tag.Get("desc"), field.Tag.Get("default"))
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}

	return nil
}

// bindField creates a pflag binding for the field pointed to by pointer.
func bindField(pointer any, flagSet *pflag.FlagSet, name, shorthand, description, defaultString string) error {
	switch target := pointer.(type) {
	case *string:
		flagSet.StringVarP(target, name, shorthand, defaultString, description)

	case *bool:
		defaultValue := false
		if defaultString != "" {
			parsed, err := strconv.ParseBool(defaultString)
			if err != nil {
				return fmt.Errorf("default for --%s: %w", name, err)
			}
			defaultValue = parsed
		}
		flagSet.BoolVarP(target, name, shorthand, defaultValue, description)

	case *int:
		defaultValue := 0
		if defaultString != "" {
			parsed, err := strconv.Atoi(defaultString)
			if err != nil {
				return fmt.Errorf("default for --%s: %w", name, err)
			}
			defaultValue = parsed
		}
		flagSet.IntVarP(target, name, shorthand, defaultValue, description)

	case *[]string:
		var defaultValue []string
		if defaultString != "" {
			defaultValue = strings.Split(defaultString, ",")
		}
		flagSet.StringSliceVarP(target, name, shorthand, defaultValue, description)

	case textField:
		if defaultString != "" {
			if err := target.UnmarshalText([]byte(defaultString)); err != nil {
				return fmt.Errorf("default for --%s: %w", name, err)
			}
		}
		flagSet.VarP(&textValue{target: target, typeName: typeName(pointer)}, name, shorthand, description)

	default:
		return fmt.Errorf("unsupported type %T for flag --%s", pointer, name)
	}

	return nil
}

type textField interface {
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

// textValue adapts a text-marshaling field to [pflag.Value].
type textValue struct {
	target   textField
	typeName string
}

func (v *textValue) Set(raw string) error {
	return v.target.UnmarshalText([]byte(raw))
}

func (v *textValue) String() string {
	text, err := v.target.MarshalText()
	if err != nil {
		return ""
	}
	return string(text)
}

func (v *textValue) Type() string { return v.typeName }

// typeName returns the lower-case name of the pointed-to type, which
// pflag shows as the flag's value placeholder.
func typeName(pointer any) string {
	return strings.ToLower(reflect.TypeOf(pointer).Elem().Name())
}
