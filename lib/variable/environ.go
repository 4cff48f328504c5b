// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package variable

import (
	"maps"
	"os"
	"strings"
)

// Environ is a snapshot of the complete, unfiltered process
// environment. Functions that accept an Environ can read secrets; keep
// their number small. Phase-2 code receives a *Table instead.
type Environ map[string]string

// Lookup returns the value of name and whether it is set. A variable
// set to the empty string is reported as set.
func (e Environ) Lookup(name string) (string, bool) {
	value, ok := e[name]
	return value, ok
}

// Environment provides the process environment. It is read once per
// invocation through [Snapshot].
type Environment interface {
	All() map[string]string
}

// ProcessEnvironment reads the real process environment.
type ProcessEnvironment struct{}

// All parses os.Environ. Entries without a name (such as the
// drive-letter entries Windows exposes as "=C:=C:\") are skipped.
func (ProcessEnvironment) All() map[string]string {
	entries := os.Environ()
	values := make(map[string]string, len(entries))
	for _, entry := range entries {
		name, value, _ := strings.Cut(entry, "=")
		if name == "" {
			continue
		}
		values[name] = value
	}
	return values
}

// MapEnvironment is a fixed environment, used by tests and by callers
// that already hold an environment map.
type MapEnvironment map[string]string

// All returns a copy of the map.
func (m MapEnvironment) All() map[string]string {
	return maps.Clone(map[string]string(m))
}

// Snapshot reads source once and returns an independent copy.
func Snapshot(source Environment) Environ {
	values := source.All()
	if values == nil {
		return Environ{}
	}
	return Environ(maps.Clone(values))
}
