// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
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
		{"abc", "bac", 2}, // transposition (counted as 2 edits)
		{"kitten", "sitting", 3},
		{"config", "confg", 1},
		{"version", "verison", 2},
	}

	for _, test := range tests {
		t.Run(test.a+"->"+test.b, func(t *testing.T) {
			got := levenshtein(test.a, test.b)
			if got != test.want {
				t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
			}
			if reverse := levenshtein(test.b, test.a); reverse != got {
				t.Errorf("levenshtein(%q, %q) = %d, but reverse = %d", test.a, test.b, got, reverse)
			}
		})
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"python", "yaml", "markdown"}

	tests := []struct {
		input string
		want  string
	}{
		{"pyhton", "python"},
		{"yml", "yaml"},
		{"rust", ""},
		{"", ""},
	}
	for _, test := range tests {
		if got := Closest(test.input, candidates); got != test.want {
			t.Errorf("Closest(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	newFlagSet := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("config", pflag.ContinueOnError)
		flagSet.String("profile", "", "")
		flagSet.Bool("no-color", false, "")
		flagSet.BoolP("verbose", "v", false, "")
		return flagSet
	}

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--profil", "python"}, "--profile"},
		{[]string{"--profile=python", "--no-colour"}, "--no-color"},
		{[]string{"-v", "--verbos"}, "--verbose"},
		{[]string{"--completely-different"}, ""},
		{[]string{"--", "--profil"}, ""},
	}
	for _, test := range tests {
		if got := suggestFlag(test.args, newFlagSet()); got != test.want {
			t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}
