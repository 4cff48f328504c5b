// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package variable

import (
	"fmt"
	"regexp"
)

// Source records where the final value of a [Variable] came from.
type Source uint8

const (
	// SourceConfig marks a value declared in the config file's
	// variables section (literal or phase-1 expanded).
	SourceConfig Source = iota + 1

	// SourceEnv marks a value supplied by an environment variable with
	// an approved prefix.
	SourceEnv
)

// String returns "config" or "env". The zero value and any other
// out-of-range value return "unknown".
func (s Source) String() string {
	switch s {
	case SourceConfig:
		return "config"
	case SourceEnv:
		return "env"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so that JSON output
// carries "config" / "env" rather than the numeric value.
func (s Source) MarshalText() ([]byte, error) {
	switch s {
	case SourceConfig, SourceEnv:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("invalid variable source %d", uint8(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Source) UnmarshalText(text []byte) error {
	switch string(text) {
	case "config":
		*s = SourceConfig
	case "env":
		*s = SourceEnv
	default:
		return fmt.Errorf("invalid variable source %q", text)
	}
	return nil
}

// Variable is one resolved variable.
type Variable struct {
	// Name is the case-sensitive identifier.
	Name string `json:"name"`

	// Value is the final resolved string.
	Value string `json:"value"`

	// Raw is the template the value was expanded from at config load.
	// Empty for literal values and for runtime overrides.
	Raw string `json:"raw,omitempty"`

	// Source is the provenance of Value.
	Source Source `json:"source"`
}

// Templated reports whether the value was produced by phase-1
// substitution.
func (v Variable) Templated() bool {
	return v.Raw != ""
}

// Declaration is one entry of a config file's variables section, before
// resolution.
type Declaration struct {
	Name  string
	Value string
}

// Declarations is the variables section in declaration order.
type Declarations []Declaration

// Lookup returns the value declared for name.
func (d Declarations) Lookup(name string) (string, bool) {
	for _, declaration := range d {
		if declaration.Name == name {
			return declaration.Value, true
		}
	}
	return "", false
}

// namePattern is the identifier rule for variable names.
var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidName reports whether name is a valid variable identifier.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// ValidateName returns a *MalformedNameError if name is not a valid
// identifier.
func ValidateName(name string) error {
	if !ValidName(name) {
		return &MalformedNameError{Name: name}
	}
	return nil
}
