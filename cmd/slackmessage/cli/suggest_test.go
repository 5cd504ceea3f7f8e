// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1}, // substitution
		{"abc", "ab", 1},  // deletion
		{"ab", "abc", 1},  // insertion
		{"abc", "bac", 1}, // transposition
		{"kitten", "sitting", 3},
		{"schedule", "shcedule", 1},
		{"ca", "abc", 3},
		{"lookup", "lokup", 1},
	}

	for _, test := range tests {
		t.Run(test.a+"/"+test.b, func(t *testing.T) {
			got := editDistance(test.a, test.b)
			if got != test.want {
				t.Errorf("editDistance(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "post"},
		{Name: "schedule"},
		{Name: "version"},
		{Name: "lookup"},
		{Name: "profiles"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"pots", "post"},
		{"schedul", "schedule"},
		{"vrsion", "version"},
		{"lokup", "lookup"},
		{"profile", "profiles"},
		{"zzzzzzzzz", ""},
		{"x", ""},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if got := suggestCommand(test.input, commands); got != test.want {
				t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
			}
		})
	}
}

func TestSuggestFlag(t *testing.T) {
	newFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("post", pflag.ContinueOnError)
		flagSet.String("profile", "", "")
		flagSet.String("save-handle", "", "")
		flagSet.BoolP("verbose", "v", false, "")
		return flagSet
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"typo", []string{"--profle", "x"}, "--profile"},
		{"with value", []string{"--save-handel=out.cbor"}, "--save-handle"},
		{"known flags skipped", []string{"-v", "--profile", "x", "--verbos"}, "--verbose"},
		{"distant", []string{"--zzzzzzzz"}, ""},
		{"no flags", []string{"script.jsonc"}, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := suggestFlag(test.args, newFlagSet()); got != test.want {
				t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
			}
		})
	}
}
