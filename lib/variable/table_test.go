// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package variable

import (
	"encoding/json"
	"testing"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	configured := []Variable{
		{Name: "TB_SRC", Value: "/h/src", Raw: "${HOME}/src", Source: SourceConfig},
		{Name: "MODE", Value: "strict", Source: SourceConfig},
		{Name: "TB_V", Value: "static", Source: SourceConfig},
	}
	overrides := []Variable{
		{Name: "CI_JOB", Value: "42", Source: SourceEnv},
		{Name: "TB_V", Value: "override", Source: SourceEnv},
		{Name: "BUILD_ID", Value: "7", Source: SourceEnv},
	}
	configuredBefore := append([]Variable(nil), configured...)
	overridesBefore := append([]Variable(nil), overrides...)

	table := Merge(configured, overrides)

	want := []Variable{
		{Name: "TB_SRC", Value: "/h/src", Raw: "${HOME}/src", Source: SourceConfig},
		{Name: "MODE", Value: "strict", Source: SourceConfig},
		{Name: "TB_V", Value: "override", Source: SourceEnv},
		{Name: "CI_JOB", Value: "42", Source: SourceEnv},
		{Name: "BUILD_ID", Value: "7", Source: SourceEnv},
	}
	got := table.All()
	if len(got) != len(want) {
		t.Fatalf("All() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	for i := range configured {
		if configured[i] != configuredBefore[i] {
			t.Errorf("configured[%d] modified: %+v", i, configured[i])
		}
	}
	for i := range overrides {
		if overrides[i] != overridesBefore[i] {
			t.Errorf("overrides[%d] modified: %+v", i, overrides[i])
		}
	}

	if table.Len() != 5 {
		t.Errorf("Len() = %d, want 5", table.Len())
	}
	counts := table.CountBySource()
	if counts[SourceConfig] != 2 || counts[SourceEnv] != 3 {
		t.Errorf("CountBySource() = %v, want config=2 env=3", counts)
	}
}

func TestTable_AllReturnsCopy(t *testing.T) {
	t.Parallel()

	table := Merge([]Variable{{Name: "A", Value: "1", Source: SourceConfig}}, nil)
	entries := table.All()
	entries[0].Value = "tampered"

	got, _ := table.Get("A")
	if got.Value != "1" {
		t.Errorf("table modified through All(): A = %q", got.Value)
	}
}

func TestTable_Get(t *testing.T) {
	t.Parallel()

	table := Merge([]Variable{{Name: "A", Value: "1", Source: SourceConfig}}, nil)
	if _, ok := table.Get("a"); ok {
		t.Error("Get is case-insensitive, want case-sensitive")
	}
	if _, ok := table.Get("MISSING"); ok {
		t.Error("Get(MISSING) reported found")
	}

	var empty *Table
	if _, ok := empty.Get("A"); ok {
		t.Error("nil table Get reported found")
	}
	if empty.Len() != 0 || empty.All() != nil || empty.Names() != nil {
		t.Error("nil table is not empty")
	}
}

func TestTable_Names(t *testing.T) {
	t.Parallel()

	table := Merge(
		[]Variable{{Name: "B", Source: SourceConfig}, {Name: "A", Source: SourceConfig}},
		[]Variable{{Name: "TB_C", Source: SourceEnv}},
	)
	names := table.Names()
	want := []string{"B", "A", "TB_C"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestTable_Fingerprint(t *testing.T) {
	t.Parallel()

	base := Merge([]Variable{{Name: "A", Value: "1", Source: SourceConfig}}, nil)
	same := Merge([]Variable{{Name: "A", Value: "1", Source: SourceConfig}}, nil)
	if base.Fingerprint() != same.Fingerprint() {
		t.Error("identical tables have different fingerprints")
	}

	variants := map[string]*Table{
		"value":  Merge([]Variable{{Name: "A", Value: "2", Source: SourceConfig}}, nil),
		"source": Merge(nil, []Variable{{Name: "A", Value: "1", Source: SourceEnv}}),
		"raw":    Merge([]Variable{{Name: "A", Value: "1", Raw: "${X}", Source: SourceConfig}}, nil),
		"shift":  Merge([]Variable{{Name: "A1", Value: "", Source: SourceConfig}}, nil),
	}
	for name, table := range variants {
		if table.Fingerprint() == base.Fingerprint() {
			t.Errorf("%s variant has the same fingerprint as base", name)
		}
	}

	if got := len(base.Fingerprint().String()); got != 64 {
		t.Errorf("fingerprint hex length = %d, want 64", got)
	}
	if got := len(base.Fingerprint().Short()); got != 12 {
		t.Errorf("short fingerprint length = %d, want 12", got)
	}
}

func TestSource_Text(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Variable{Name: "TB_V", Value: "x", Source: SourceEnv})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := `{"name":"TB_V","value":"x","source":"env"}`; string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded Variable
	if err := json.Unmarshal([]byte(`{"name":"X","value":"v","raw":"${Y}","source":"config"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Source != SourceConfig || decoded.Raw != "${Y}" {
		t.Errorf("decoded = %+v", decoded)
	}

	if _, err := json.Marshal(Variable{Name: "X"}); err == nil {
		t.Error("Marshal with zero Source succeeded, want error")
	}
	if err := json.Unmarshal([]byte(`{"source":"file"}`), &decoded); err == nil {
		t.Error("Unmarshal with unknown source succeeded, want error")
	}
	if Source(0).String() != "unknown" {
		t.Errorf("Source(0).String() = %q, want unknown", Source(0).String())
	}
}
