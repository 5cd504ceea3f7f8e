// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// FlagsFromParams returns a flag set bound to the tagged fields of
// params, a pointer to a struct. A params type that cannot be bound is a
// programming error and panics.
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := BindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// BindFlags registers a flag on flagSet for every tagged field of params,
// which must be a pointer to a struct.
//
//   - flag:"name" or flag:"name,n" gives the long name and an optional
//     one-letter shorthand. Untagged fields are ignored.
//   - desc:"text" is the help text.
//   - default:"value" is parsed as the field's type. Without it the
//     field's zero value is the default.
//
// Fields may be string, bool, int, int64, [time.Duration], or []string.
// A []string flag collects one value per occurrence and never splits on
// commas, so "--var LIST=a,b" keeps its comma; its default tag is
// comma-separated.
//
// Embedded structs contribute their own tagged fields, which is how
// [JSONOutput] and [Verbosity] add --json and --verbose.
func BindFlags(params any, flagSet *pflag.FlagSet) error {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	return bindStruct(value.Elem(), flagSet)
}

func bindStruct(structValue reflect.Value, flagSet *pflag.FlagSet) error {
	structType := structValue.Type()
	for i := range structType.NumField() {
		field := structType.Field(i)
		fieldValue := structValue.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := bindStruct(fieldValue, flagSet); err != nil {
				return fmt.Errorf("embedded %s: %w", field.Name, err)
			}
			continue
		}

		tag, ok := field.Tag.Lookup("flag")
		if !ok || tag == "" {
			continue
		}
		spec := flagSpec{
			description:   field.Tag.Get("desc"),
			defaultString: field.Tag.Get("default"),
		}
		spec.name, spec.shorthand, _ = strings.Cut(tag, ",")

		if err := spec.bind(fieldValue.Addr().Interface(), flagSet); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}

// flagSpec is one field's parsed tags.
type flagSpec struct {
	name          string
	shorthand     string
	description   string
	defaultString string
}

func (s flagSpec) bind(pointer any, flagSet *pflag.FlagSet) error {
	switch target := pointer.(type) {
	case *string:
		flagSet.StringVarP(target, s.name, s.shorthand, s.defaultString, s.description)
		return nil
	case *bool:
		return bindParsed(s, flagSet.BoolVarP, target, strconv.ParseBool)
	case *int:
		return bindParsed(s, flagSet.IntVarP, target, strconv.Atoi)
	case *int64:
		return bindParsed(s, flagSet.Int64VarP, target, func(value string) (int64, error) {
			return strconv.ParseInt(value, 10, 64)
		})
	case *time.Duration:
		return bindParsed(s, flagSet.DurationVarP, target, time.ParseDuration)
	case *[]string:
		var defaults []string
		if s.defaultString != "" {
			defaults = strings.Split(s.defaultString, ",")
		}
		flagSet.StringArrayVarP(target, s.name, s.shorthand, defaults, s.description)
		return nil
	default:
		return fmt.Errorf("unsupported type %T for flag --%s", pointer, s.name)
	}
}

// bindParsed registers a flag whose default tag must be parsed first.
func bindParsed[T any](
	s flagSpec,
	register func(target *T, name, shorthand string, value T, usage string),
	target *T,
	parse func(string) (T, error),
) error {
	var defaultValue T
	if s.defaultString != "" {
		parsed, err := parse(s.defaultString)
		if err != nil {
			return fmt.Errorf("default for --%s: %w", s.name, err)
		}
		defaultValue = parsed
	}
	register(target, s.name, s.shorthand, defaultValue, s.description)
	return nil
}
