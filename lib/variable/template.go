// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package variable

import (
	"regexp"
	"strings"
)

// referencePattern matches ${NAME} and ${NAME:default}. Only the braced
// form is recognized; bare $NAME is left for shell interpretation. The
// default runs to the first closing brace and may itself contain colons.
var referencePattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([^}]*))?\}`)

// Reference is one ${...} occurrence in a template.
type Reference struct {
	Name       string
	Default    string
	HasDefault bool
}

// References returns the references in template in order of
// appearance, including repeats.
func References(template string) []Reference {
	matches := referencePattern.FindAllStringSubmatchIndex(template, -1)
	references := make([]Reference, 0, len(matches))
	for _, match := range matches {
		references = append(references, referenceAt(template, match))
	}
	return references
}

// referenceAt builds a Reference from a submatch index slice. Group 2
// is absent (-1) when the reference has no ":default" part, which keeps
// ${NAME} distinct from ${NAME:}.
func referenceAt(template string, match []int) Reference {
	reference := Reference{Name: template[match[2]:match[3]]}
	if match[4] >= 0 {
		reference.HasDefault = true
		reference.Default = template[match[4]:match[5]]
	}
	return reference
}

// substitute replaces every reference in template using lookup. Names
// that lookup cannot resolve and that carry no default are collected in
// unresolved (deduplicated, in order of first appearance) and their
// text is left in place. templated reports whether any reference was
// found at all.
func substitute(template string, lookup func(name string) (string, bool)) (result string, templated bool, unresolved []string) {
	matches := referencePattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template, false, nil
	}

	var builder strings.Builder
	builder.Grow(len(template))
	last := 0
	for _, match := range matches {
		builder.WriteString(template[last:match[0]])
		last = match[1]

		reference := referenceAt(template, match)
		if value, ok := lookup(reference.Name); ok {
			builder.WriteString(value)
			continue
		}
		if reference.HasDefault {
			builder.WriteString(reference.Default)
			continue
		}
		if !containsString(unresolved, reference.Name) {
			unresolved = append(unresolved, reference.Name)
		}
		builder.WriteString(template[match[0]:match[1]])
	}
	builder.WriteString(template[last:])

	return builder.String(), true, unresolved
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
