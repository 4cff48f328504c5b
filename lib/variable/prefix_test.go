// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package variable

import "testing"

func TestIsAccessible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want bool
	}{
		{"TOOLBELT_RUFF_VERSION", true},
		{"TB_PROJECT_SOURCE", true},
		{"TBELT_MODE", true},
		{"CI_COMMIT_SHA", true},
		{"BUILD_NUMBER", true},
		{"TB_", true},
		{"", false},
		{"GITHUB_TOKEN", false},
		{"HOME", false},
		{"tb_lowercase", false},
		{"Tb_Mixed", false},
		{"XTB_EMBEDDED", false},
		{"TB", false},
		{"CI", false},
		{"TOOLBELT", false},
	}

	for _, test := range tests {
		if got := IsAccessible(test.name); got != test.want {
			t.Errorf("IsAccessible(%q) = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestApprovedPrefixes(t *testing.T) {
	t.Parallel()

	prefixes := ApprovedPrefixes()
	want := []string{"TOOLBELT_", "TB_", "TBELT_", "CI_", "BUILD_"}
	if len(prefixes) != len(want) {
		t.Fatalf("ApprovedPrefixes() = %v, want %v", prefixes, want)
	}
	for i := range want {
		if prefixes[i] != want[i] {
			t.Errorf("ApprovedPrefixes()[%d] = %q, want %q", i, prefixes[i], want[i])
		}
	}

	// Mutating the returned slice must not change the policy.
	prefixes[0] = "GITHUB_"
	if IsAccessible("GITHUB_TOKEN") {
		t.Error("mutating ApprovedPrefixes() result widened the policy")
	}
	if !IsAccessible("TOOLBELT_X") {
		t.Error("mutating ApprovedPrefixes() result narrowed the policy")
	}
}

func TestValidName(t *testing.T) {
	t.Parallel()

	valid := []string{"X", "_", "_private", "TB_V", "var1", "A_1_B"}
	for _, name := range valid {
		if !ValidName(name) {
			t.Errorf("ValidName(%q) = false, want true", name)
		}
	}

	invalid := []string{"", "1ABC", "TB-V", "TB V", "TB.V", "${X}", "ÄB"}
	for _, name := range invalid {
		if ValidName(name) {
			t.Errorf("ValidName(%q) = true, want false", name)
		}
	}
}
