// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/toolbelt/toolbelt/cmd/tb/cli"
	libconfig "github.com/toolbelt/toolbelt/lib/config"
	"github.com/toolbelt/toolbelt/lib/variable"
)

// report is everything "tb config" prints, in both output modes.
type report struct {
	Sources     []string                `json:"sources"`
	Profiles    []profileSummary        `json:"profiles"`
	Profile     *profileDetail          `json:"profile,omitempty"`
	Variables   []variable.Variable     `json:"variables,omitempty"`
	Counts      map[variable.Source]int `json:"counts,omitempty"`
	Fingerprint string                  `json:"fingerprint,omitempty"`
}

type profileSummary struct {
	Name        string   `json:"name"`
	Extensions  []string `json:"extensions"`
	CheckTools  []string `json:"check_tools"`
	FormatTools []string `json:"format_tools"`
}

type profileDetail struct {
	Name            string        `json:"name"`
	Extensions      []string      `json:"extensions"`
	ExcludePatterns []string      `json:"exclude_patterns,omitempty"`
	Tools           []toolCommand `json:"tools"`
}

// toolCommand is one tool with its command line as written and as it
// would run with no explicit targets.
type toolCommand struct {
	Kind             string                     `json:"kind"`
	Name             string                     `json:"name"`
	Description      string                     `json:"description,omitempty"`
	FileHandlingMode libconfig.FileHandlingMode `json:"file_handling_mode"`
	Raw              []string                   `json:"raw"`
	Expanded         []string                   `json:"expanded"`
	WorkingDir       string                     `json:"working_dir,omitempty"`
	Variables        []string                   `json:"variables,omitempty"`
}

func summarizeProfiles(cfg *libconfig.Config) []profileSummary {
	names := cfg.ProfileNames()
	summaries := make([]profileSummary, 0, len(names))
	for _, name := range names {
		profile := cfg.Profile(name)
		summaries = append(summaries, profileSummary{
			Name:        name,
			Extensions:  profile.Extensions,
			CheckTools:  toolNames(profile.CheckTools),
			FormatTools: toolNames(profile.FormatTools),
		})
	}
	return summaries
}

func toolNames(tools []libconfig.Tool) []string {
	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name
	}
	return names
}

// describeProfile expands every tool of the named profile against
// table. Any expansion failure fails the whole command.
func describeProfile(cfg *libconfig.Config, name string, table *variable.Table) (*profileDetail, error) {
	profile := cfg.Profile(name)
	if profile == nil {
		notFound := cli.NotFound("unknown profile %q", name)
		if suggestion := cli.Closest(name, cfg.ProfileNames()); suggestion != "" {
			return nil, notFound.WithHint(fmt.Sprintf("Did you mean %q?", suggestion))
		}
		return nil, notFound.WithHint("Available profiles: " + strings.Join(cfg.ProfileNames(), ", "))
	}

	detail := &profileDetail{
		Name:            profile.Name,
		Extensions:      profile.Extensions,
		ExcludePatterns: profile.ExcludePatterns,
	}
	groups := []struct {
		kind  string
		tools []libconfig.Tool
	}{
		{"check", profile.CheckTools},
		{"format", profile.FormatTools},
	}
	for _, group := range groups {
		for _, tool := range group.tools {
			command, err := libconfig.BuildCommand(tool, nil, nil, table)
			if err != nil {
				return nil, cli.Validation("profile %q %w", name, err).
					WithHint("Declare the variable in the configuration's variables section, set it with an approved prefix, or use ${NAME:default}.")
			}
			raw := command.RawBase
			if tool.FileHandlingMode == libconfig.Batch && tool.DefaultTarget != "" {
				raw = append(append([]string(nil), raw...), tool.DefaultTarget)
			}
			detail.Tools = append(detail.Tools, toolCommand{
				Kind:             group.kind,
				Name:             tool.Name,
				Description:      tool.Description,
				FileHandlingMode: tool.FileHandlingMode,
				Raw:              raw,
				Expanded:         command.Full,
				WorkingDir:       command.WorkingDir,
				Variables:        command.Variables,
			})
		}
	}
	return detail, nil
}

// displayCommand joins argv for display, quoting arguments that a
// shell would split or interpret.
func displayCommand(argv []string) string {
	quoted := make([]string, len(argv))
	for i, argument := range argv {
		if argument == "" || strings.ContainsAny(argument, " \t\n\"'\\|&;<>()*?`") {
			argument = strconv.Quote(argument)
		}
		quoted[i] = argument
	}
	return strings.Join(quoted, " ")
}

// sortedKeys returns the keys of counts in source order.
func sortedKeys(counts map[variable.Source]int) []variable.Source {
	sources := make([]variable.Source, 0, len(counts))
	for source := range counts {
		sources = append(sources, source)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })
	return sources
}
