// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// WriteFile writes content to directory/name, creating parent
// directories, and returns the full path.
func WriteFile(t testing.TB, directory, name, content string) string {
	t.Helper()
	path := filepath.Join(directory, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// WriteTree creates a temporary directory holding files (slash-separated
// relative path to content) and returns its path. The directory is
// removed when the test completes.
//
//	dir := testutil.WriteTree(t, map[string]string{
//		"toolbelt.yaml":       "include: shared/base.yaml\n",
//		"shared/base.yaml":    "variables:\n  A: a\n",
//	})
func WriteTree(t testing.TB, files map[string]string) string {
	t.Helper()
	directory := t.TempDir()
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		WriteFile(t, directory, name, files[name])
	}
	return directory
}
