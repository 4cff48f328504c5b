// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package variable

// Table is the merged, ordered view of every variable a template may
// reference during one invocation. It is immutable after [Merge].
type Table struct {
	entries []Variable
	index   map[string]int
}

// Merge layers runtime overrides over config variables:
//
//   - a name present in overrides takes the override, unconditionally,
//     at the position of the config entry;
//   - otherwise the config entry is kept;
//   - override names with no config entry are appended after all config
//     entries, in the order they appear in overrides.
//
// Neither input slice is modified.
func Merge(configured, overrides []Variable) *Table {
	overrideIndex := make(map[string]int, len(overrides))
	for i, override := range overrides {
		overrideIndex[override.Name] = i
	}

	table := &Table{
		entries: make([]Variable, 0, len(configured)+len(overrides)),
		index:   make(map[string]int, len(configured)+len(overrides)),
	}

	for _, entry := range configured {
		if i, ok := overrideIndex[entry.Name]; ok {
			entry = overrides[i]
		}
		table.put(entry)
	}
	for _, override := range overrides {
		if _, exists := table.index[override.Name]; exists {
			continue
		}
		table.put(override)
	}

	return table
}

// put appends entry, or replaces the existing entry of the same name in
// place.
func (t *Table) put(entry Variable) {
	if i, exists := t.index[entry.Name]; exists {
		t.entries[i] = entry
		return
	}
	t.index[entry.Name] = len(t.entries)
	t.entries = append(t.entries, entry)
}

// Get returns the variable called name.
func (t *Table) Get(name string) (Variable, bool) {
	if t == nil {
		return Variable{}, false
	}
	i, ok := t.index[name]
	if !ok {
		return Variable{}, false
	}
	return t.entries[i], true
}

// All returns the variables in display order: config declaration order
// first, then env-only entries. The returned slice is a copy.
func (t *Table) All() []Variable {
	if t == nil {
		return nil
	}
	entries := make([]Variable, len(t.entries))
	copy(entries, t.entries)
	return entries
}

// Len returns the number of variables.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Names returns the variable names in display order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.entries))
	for i, entry := range t.entries {
		names[i] = entry.Name
	}
	return names
}

// CountBySource returns how many variables carry each source.
func (t *Table) CountBySource() map[Source]int {
	counts := make(map[Source]int, 2)
	if t == nil {
		return counts
	}
	for _, entry := range t.entries {
		counts[entry.Source]++
	}
	return counts
}

// lookup adapts the table to substitute.
func (t *Table) lookup(name string) (string, bool) {
	entry, ok := t.Get(name)
	return entry.Value, ok
}
