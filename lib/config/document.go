// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/toolbelt/toolbelt/lib/variable"
)

// document is the on-disk shape of one configuration file.
type document struct {
	Include               includeList         `yaml:"include"                 json:"include"`
	Profiles              map[string]*Profile `yaml:"profiles"                json:"profiles"`
	GlobalExcludePatterns []string            `yaml:"global_exclude_patterns" json:"global_exclude_patterns"`
	Variables             variableSection     `yaml:"variables"               json:"variables"`
}

// includeList accepts either a single reference or a list.
type includeList []string

func (l *includeList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = includeList{node.Value}
		return nil
	case yaml.SequenceNode:
		var references []string
		if err := node.Decode(&references); err != nil {
			return fmt.Errorf("include: %w", err)
		}
		*l = references
		return nil
	default:
		return fmt.Errorf("line %d: include must be a string or a list of strings", node.Line)
	}
}

func (l *includeList) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*l = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = includeList{single}
		return nil
	}
	var references []string
	if err := json.Unmarshal(data, &references); err != nil {
		return errors.New("include must be a string or a list of strings")
	}
	*l = references
	return nil
}

// variableSection decodes the variables mapping without losing
// declaration order. Scalar values are taken exactly as written, so
// `version: 1.10` stays "1.10" rather than becoming a float.
type variableSection variable.Declarations

func (s *variableSection) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*s = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: variables must be a mapping of name to string", node.Line)
	}

	declarations := make(variable.Declarations, 0, len(node.Content)/2)
	seen := make(map[string]struct{}, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: variable names must be strings", key.Line)
		}
		name := key.Value
		if err := variable.ValidateName(name); err != nil {
			return fmt.Errorf("line %d: %w", key.Line, err)
		}
		if _, duplicate := seen[name]; duplicate {
			return fmt.Errorf("line %d: %w", key.Line, &variable.DuplicateNameError{Name: name})
		}
		seen[name] = struct{}{}

		if value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
			return fmt.Errorf("line %d: variable %q: value must be a string", value.Line, name)
		}
		declarations = append(declarations, variable.Declaration{Name: name, Value: value.Value})
	}

	*s = variableSection(declarations)
	return nil
}

// UnmarshalJSON walks the object token by token, since decoding into a
// map would lose declaration order. Numbers keep their literal text.
func (s *variableSection) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		*s = nil
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return errors.New("variables must be a mapping of name to string")
	}

	var declarations variable.Declarations
	seen := make(map[string]struct{})
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		name, ok := token.(string)
		if !ok {
			return errors.New("variable names must be strings")
		}
		if err := variable.ValidateName(name); err != nil {
			return err
		}
		if _, duplicate := seen[name]; duplicate {
			return &variable.DuplicateNameError{Name: name}
		}
		seen[name] = struct{}{}

		var value any
		if err := decoder.Decode(&value); err != nil {
			return fmt.Errorf("variable %q: %w", name, err)
		}
		text, ok := jsonScalarText(value)
		if !ok {
			return fmt.Errorf("variable %q: value must be a string", name)
		}
		declarations = append(declarations, variable.Declaration{Name: name, Value: text})
	}
	if _, err := decoder.Token(); err != nil {
		return err
	}

	*s = variableSection(declarations)
	return nil
}

// jsonScalarText renders a decoded JSON scalar the way it was written.
// Objects, arrays and null are rejected.
func jsonScalarText(value any) (string, bool) {
	switch value := value.(type) {
	case string:
		return value, true
	case json.Number:
		return value.String(), true
	case bool:
		return strconv.FormatBool(value), true
	default:
		return "", false
	}
}

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// format is the syntax of a configuration file.
type format int

const (
	formatYAML format = iota
	formatJSON
)

// formatOf picks the syntax from the file extension.
func formatOf(location string) (format, error) {
	switch strings.ToLower(path.Ext(strings.ReplaceAll(location, "\\", "/"))) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".json", ".jsonc":
		return formatJSON, nil
	default:
		return 0, fmt.Errorf("unsupported configuration file type %q (want .yaml, .yml, .json or .jsonc)", path.Ext(location))
	}
}

// parseDocument decodes data. Unknown keys are rejected in both
// syntaxes so that typos surface instead of being silently ignored.
func parseDocument(data []byte, syntax format) (*document, error) {
	if syntax == formatJSON {
		return parseJSONDocument(data)
	}

	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file.
			return &doc, nil
		}
		return nil, err
	}
	return &doc, nil
}

// parseJSONDocument strips comments and trailing commas, then decodes
// the result as strict JSON.
func parseJSONDocument(data []byte) (*document, error) {
	var doc document
	stripped := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(stripped)) == 0 {
		return &doc, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(stripped))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after the top-level object")
	}
	return &doc, nil
}

// overlay merges override on top of base the way an including file
// overrides what it includes: profiles replace same-named profiles
// whole, global excludes concatenate, variables take the override value
// while keeping their first position.
func overlay(base, override *document) *document {
	merged := &document{
		Profiles:              make(map[string]*Profile, len(base.Profiles)+len(override.Profiles)),
		GlobalExcludePatterns: append(append([]string(nil), base.GlobalExcludePatterns...), override.GlobalExcludePatterns...),
		Variables:             variableSection(mergeDeclarations(variable.Declarations(base.Variables), variable.Declarations(override.Variables))),
	}
	for name, profile := range base.Profiles {
		merged.Profiles[name] = profile
	}
	for name, profile := range override.Profiles {
		merged.Profiles[name] = profile
	}
	return merged
}

// mergeDeclarations returns base with override applied: existing names
// take the override value in place, new names are appended.
func mergeDeclarations(base, override variable.Declarations) variable.Declarations {
	merged := make(variable.Declarations, 0, len(base)+len(override))
	position := make(map[string]int, len(base)+len(override))
	for _, declaration := range base {
		if i, exists := position[declaration.Name]; exists {
			merged[i] = declaration
			continue
		}
		position[declaration.Name] = len(merged)
		merged = append(merged, declaration)
	}
	for _, declaration := range override {
		if i, exists := position[declaration.Name]; exists {
			merged[i] = declaration
			continue
		}
		position[declaration.Name] = len(merged)
		merged = append(merged, declaration)
	}
	return merged
}
