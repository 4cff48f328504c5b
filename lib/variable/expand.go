// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package variable

import "fmt"

// Expand is the phase-2 expansion: it substitutes every ${NAME} in
// template with the value of NAME in table. ${NAME:default} falls back
// to default when NAME is absent.
//
// Expansion is atomic. If any reference without a default is absent
// from the table, Expand returns "" and an *UnresolvedVariableError
// listing every such name. Substituted values are inserted verbatim,
// so a value that itself contains ${...} is not expanded again.
func Expand(template string, table *Table) (string, error) {
	result, _, unresolved := substitute(template, table.lookup)
	if len(unresolved) > 0 {
		return "", &UnresolvedVariableError{Name: unresolved[0], Names: unresolved}
	}
	return result, nil
}

// ExpandAll expands each template with [Expand]. On failure the error
// is an *ExpansionError whose Context is context followed by the
// failing index, e.g. "args[2]".
func ExpandAll(templates []string, table *Table, context string) ([]string, error) {
	if templates == nil {
		return nil, nil
	}
	expanded := make([]string, len(templates))
	for i, template := range templates {
		value, err := Expand(template, table)
		if err != nil {
			return nil, &ExpansionError{Context: fmt.Sprintf("%s[%d]", context, i), Err: err}
		}
		expanded[i] = value
	}
	return expanded, nil
}

// ExpandIn is [Expand] with failures wrapped in an *ExpansionError
// carrying context.
func ExpandIn(template string, table *Table, context string) (string, error) {
	value, err := Expand(template, table)
	if err != nil {
		return "", &ExpansionError{Context: context, Err: err}
	}
	return value, nil
}
