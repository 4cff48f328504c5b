// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package variable

import (
	"fmt"
	"strings"
)

// MissingEnvReferenceError reports a ${NAME} in the config variables
// section that names an unset environment variable. An environment
// variable set to the empty string is not missing.
type MissingEnvReferenceError struct {
	// Variable is the config variable whose value was being resolved.
	Variable string

	// Reference is the unset environment variable.
	Reference string
}

func (e *MissingEnvReferenceError) Error() string {
	return fmt.Sprintf("variable %q references environment variable %q, which is not set", e.Variable, e.Reference)
}

// MalformedNameError reports a declared variable name that is not an
// identifier (letters, digits, underscore, not starting with a digit).
type MalformedNameError struct {
	Name string
}

func (e *MalformedNameError) Error() string {
	return fmt.Sprintf("malformed variable name %q: names must match [A-Za-z_][A-Za-z0-9_]*", e.Name)
}

// DuplicateNameError reports a name declared twice in the same
// variables section.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("variable %q declared more than once", e.Name)
}

// UnresolvedVariableError reports phase-2 references to names that are
// not in the table.
type UnresolvedVariableError struct {
	// Name is the first unresolved name.
	Name string

	// Names lists every unresolved name in order of first appearance.
	Names []string
}

func (e *UnresolvedVariableError) Error() string {
	if len(e.Names) > 1 {
		return fmt.Sprintf("unresolved variables: %s", strings.Join(e.Names, ", "))
	}
	return fmt.Sprintf("unresolved variable %q", e.Name)
}

// ExpansionError attaches the location of a failed expansion, such as
// `profile "python" tool "ruff" args[1]`, to the underlying error.
type ExpansionError struct {
	Context string
	Err     error
}

func (e *ExpansionError) Error() string {
	return e.Context + ": " + e.Err.Error()
}

func (e *ExpansionError) Unwrap() error { return e.Err }
