// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/toolbelt/toolbelt/cmd/tb/cli"
	libconfig "github.com/toolbelt/toolbelt/lib/config"
	"github.com/toolbelt/toolbelt/lib/testutil"
	"github.com/toolbelt/toolbelt/lib/variable"
)

const projectConfig = `
variables:
  TB_SRC: src
  PROJECT_HOME: '${HOME}/project'
  TB_CACHE: '${TOOLBELT_CACHE_DIR:/tmp/tb-cache}'
profiles:
  python:
    extensions: [py]
    check_tools:
      - name: ruff
        command: ruff
        args: [check, '--cache-dir=${TB_CACHE}']
        file_handling_mode: batch
        default_target: '${TB_SRC}'
      - name: mypy
        command: mypy
        args: ['--config-file', '${PROJECT_HOME}/mypy.ini']
    format_tools:
      - name: broken
        command: fmt
        args: ['${TB_NOT_DECLARED}']
  shell:
    extensions: [sh]
`

// run executes "tb config" against a fixed working directory and
// environment and returns stdout.
func run(t *testing.T, directory string, environ map[string]string, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	command := newCommand(environment{
		stdout:     &stdout,
		workingDir: func() (string, error) { return directory, nil },
		variables:  variable.MapEnvironment(environ),
		presets:    libconfig.Presets(),
		width:      func() int { return 0 },
	})
	err := command.Execute(context.Background(), args)
	return stdout.String(), err
}

func TestConfig_ShowVariablesJSON(t *testing.T) {
	t.Parallel()

	directory := testutil.WriteTree(t, map[string]string{"toolbelt.yaml": projectConfig})
	environ := map[string]string{
		"HOME":         "/home/dev",
		"GITHUB_TOKEN": "secret",
		"TB_SRC":       "lib",
		"CI_JOB_ID":    "42",
	}

	stdout, err := run(t, directory, environ, "--show-variables", "--json")
	if err != nil {
		t.Fatalf("tb config: %v", err)
	}

	var result report
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, stdout)
	}

	want := []variable.Variable{
		{Name: "TB_SRC", Value: "lib", Source: variable.SourceEnv},
		{Name: "PROJECT_HOME", Value: "/home/dev/project", Raw: "${HOME}/project", Source: variable.SourceConfig},
		{Name: "TB_CACHE", Value: "/tmp/tb-cache", Raw: "${TOOLBELT_CACHE_DIR:/tmp/tb-cache}", Source: variable.SourceConfig},
		{Name: "CI_JOB_ID", Value: "42", Source: variable.SourceEnv},
	}
	if len(result.Variables) != len(want) {
		t.Fatalf("variables = %+v, want %+v", result.Variables, want)
	}
	for i := range want {
		if result.Variables[i] != want[i] {
			t.Errorf("variable %d = %+v, want %+v", i, result.Variables[i], want[i])
		}
	}
	if strings.Contains(stdout, "secret") || strings.Contains(stdout, "GITHUB_TOKEN") {
		t.Errorf("unapproved environment variable leaked into output:\n%s", stdout)
	}
	if len(result.Fingerprint) != 64 {
		t.Errorf("fingerprint = %q, want 64 hex characters", result.Fingerprint)
	}
	if result.Counts[variable.SourceConfig] != 2 || result.Counts[variable.SourceEnv] != 2 {
		t.Errorf("counts = %v, want 2 config and 2 env", result.Counts)
	}
	if !strings.Contains(stdout, `"env": 2`) {
		t.Errorf("counts not keyed by source name:\n%s", stdout)
	}
	if len(result.Sources) != 1 || len(result.Profiles) != 2 {
		t.Errorf("sources = %v, profiles = %v", result.Sources, result.Profiles)
	}
}

func TestConfig_ShowVariablesText(t *testing.T) {
	t.Parallel()

	directory := testutil.WriteTree(t, map[string]string{"toolbelt.yaml": projectConfig})
	stdout, err := run(t, directory, map[string]string{"HOME": "/home/dev"}, "--show-variables", "--no-color")
	if err != nil {
		t.Fatalf("tb config: %v", err)
	}

	for _, want := range []string{
		"Configuration sources",
		"toolbelt.yaml",
		"Variables (3: 3 config)",
		"Raw Value",
		"${HOME}/project",
		"/home/dev/project",
		"fingerprint: ",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "\x1b[") {
		t.Errorf("--no-color output contains escape sequences:\n%q", stdout)
	}
}

func TestConfig_FingerprintTracksEnvironment(t *testing.T) {
	t.Parallel()

	directory := testutil.WriteTree(t, map[string]string{"toolbelt.yaml": "variables:\n  TB_A: a\n"})
	fingerprint := func(environ map[string]string) string {
		stdout, err := run(t, directory, environ, "--show-variables", "--json")
		if err != nil {
			t.Fatalf("tb config: %v", err)
		}
		var result report
		if err := json.Unmarshal([]byte(stdout), &result); err != nil {
			t.Fatalf("decoding output: %v", err)
		}
		return result.Fingerprint
	}

	base := fingerprint(nil)
	if again := fingerprint(map[string]string{"UNRELATED": "x"}); again != base {
		t.Error("an unapproved environment variable changed the fingerprint")
	}
	if overridden := fingerprint(map[string]string{"TB_A": "b"}); overridden == base {
		t.Error("an approved override did not change the fingerprint")
	}
}

func TestConfig_MissingEnvironmentReference(t *testing.T) {
	t.Parallel()

	directory := testutil.WriteTree(t, map[string]string{"toolbelt.yaml": projectConfig})
	_, err := run(t, directory, nil, "--show-variables")
	if err == nil {
		t.Fatal("expected error when HOME is unset")
	}

	var missing *variable.MissingEnvReferenceError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want a MissingEnvReferenceError", err)
	}
	if missing.Variable != "PROJECT_HOME" || missing.Reference != "HOME" {
		t.Errorf("missing = %+v, want PROJECT_HOME referencing HOME", missing)
	}
	if cli.CategoryOf(err) != cli.CategoryValidation {
		t.Errorf("category = %q, want %q", cli.CategoryOf(err), cli.CategoryValidation)
	}
	if !strings.Contains(err.Error(), "${HOME:value}") {
		t.Errorf("error = %q, want a hint about defaults", err)
	}
}

func TestConfig_Profile(t *testing.T) {
	t.Parallel()

	directory := testutil.WriteTree(t, map[string]string{
		"toolbelt.yaml": `
variables:
  TB_SRC: src
profiles:
  python:
    extensions: [py]
    check_tools:
      - name: ruff
        command: ruff
        args: [check, '--select=E,F']
        file_handling_mode: batch
        default_target: '${TB_SRC}'
      - name: pyright
        command: pyright
        args: ['--project', 'my project']
        file_handling_mode: no_target
        working_dir: '${TB_SRC}'
`,
	})

	stdout, err := run(t, directory, map[string]string{"TB_SRC": "lib"}, "--profile", "python", "--no-color")
	if err != nil {
		t.Fatalf("tb config: %v", err)
	}
	for _, want := range []string{
		"Profile python (.py)",
		"check ruff [batch]",
		"raw:      ruff check --select=E,F ${TB_SRC}",
		"expanded: ruff check --select=E,F lib",
		`expanded: pyright --project "my project"`,
		"in:       lib",
		"uses:     TB_SRC",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestConfig_ProfileUnresolvedVariable(t *testing.T) {
	t.Parallel()

	directory := testutil.WriteTree(t, map[string]string{"toolbelt.yaml": projectConfig})
	_, err := run(t, directory, map[string]string{"HOME": "/home/dev"}, "--profile", "python")
	if err == nil {
		t.Fatal("expected error for undeclared variable")
	}

	var unresolved *variable.UnresolvedVariableError
	if !errors.As(err, &unresolved) || unresolved.Name != "TB_NOT_DECLARED" {
		t.Fatalf("error = %v, want UnresolvedVariableError for TB_NOT_DECLARED", err)
	}
	if !strings.Contains(err.Error(), `profile "python" tool "broken" args[0]`) {
		t.Errorf("error = %q, want it to name the profile, tool and argument", err)
	}
}

func TestConfig_UnknownProfile(t *testing.T) {
	t.Parallel()

	directory := testutil.WriteTree(t, map[string]string{"toolbelt.yaml": projectConfig})
	_, err := run(t, directory, map[string]string{"HOME": "/home/dev"}, "--profile", "pyhton")
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
	if cli.CategoryOf(err) != cli.CategoryNotFound {
		t.Errorf("category = %q, want %q", cli.CategoryOf(err), cli.CategoryNotFound)
	}
	if !strings.Contains(err.Error(), `Did you mean "python"?`) {
		t.Errorf("error = %q, want a suggestion", err)
	}
}

func TestConfig_ExplicitConfigMissing(t *testing.T) {
	t.Parallel()

	directory := t.TempDir()
	_, err := run(t, directory, nil, "--config", "nope.yaml")
	if err == nil {
		t.Fatal("expected error for missing --config file")
	}
	if cli.CategoryOf(err) != cli.CategoryNotFound {
		t.Errorf("category = %q, want %q", cli.CategoryOf(err), cli.CategoryNotFound)
	}
}

func TestConfig_InvalidConfiguration(t *testing.T) {
	t.Parallel()

	directory := testutil.WriteTree(t, map[string]string{"toolbelt.yaml": "variables:\n  bad-name: x\n"})
	_, err := run(t, directory, nil)
	if err == nil {
		t.Fatal("expected error for malformed variable name")
	}
	var malformed *variable.MalformedNameError
	if !errors.As(err, &malformed) {
		t.Errorf("error = %v, want a MalformedNameError", err)
	}
	if cli.CategoryOf(err) != cli.CategoryValidation {
		t.Errorf("category = %q, want %q", cli.CategoryOf(err), cli.CategoryValidation)
	}
}

func TestConfig_DefaultPreset(t *testing.T) {
	t.Parallel()

	stdout, err := run(t, t.TempDir(), nil, "--json")
	if err != nil {
		t.Fatalf("tb config: %v", err)
	}
	var result report
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if len(result.Sources) == 0 || result.Sources[len(result.Sources)-1] != libconfig.DefaultPreset {
		t.Errorf("sources = %v, want the default preset last", result.Sources)
	}
	if result.Variables != nil {
		t.Errorf("variables = %v, want none without --show-variables", result.Variables)
	}
}

func TestConfig_RejectsArguments(t *testing.T) {
	t.Parallel()

	_, err := run(t, t.TempDir(), nil, "python")
	if err == nil || cli.CategoryOf(err) != cli.CategoryValidation {
		t.Errorf("error = %v, want a validation error", err)
	}
}

func TestDisplayCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		argv []string
		want string
	}{
		{[]string{"ruff", "check", "."}, "ruff check ."},
		{[]string{"echo", "two words"}, `echo "two words"`},
		{[]string{"x", ""}, `x ""`},
		{[]string{"uvx", "ruff@${TB_RUFF:latest}"}, "uvx ruff@${TB_RUFF:latest}"},
	}
	for _, test := range tests {
		if got := displayCommand(test.argv); got != test.want {
			t.Errorf("displayCommand(%q) = %q, want %q", test.argv, got, test.want)
		}
	}
}
