// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/toolbelt/toolbelt/cmd/tb/cli"
	libconfig "github.com/toolbelt/toolbelt/lib/config"
	"github.com/toolbelt/toolbelt/lib/variable"
)

type configParams struct {
	cli.JSONOutput
	Config        string `json:"config"         flag:"config,c"       desc:"configuration file (default: discovered from the working directory)"`
	Profile       string `json:"profile"        flag:"profile,p"      desc:"show one profile with its raw and expanded tool commands"`
	ShowVariables bool   `json:"show_variables" flag:"show-variables" desc:"show the resolved variable table"`
	NoColor       bool   `json:"-"              flag:"no-color"       desc:"disable colored output"`
	Verbose       bool   `json:"-"              flag:"verbose,v"      desc:"log debug detail to stderr"`
}

// environment supplies everything the command reads from the process,
// so tests can run it against a fixed world.
type environment struct {
	stdout     io.Writer
	workingDir func() (string, error)
	variables  variable.Environment
	presets    fs.FS
	width      func() int
}

func processEnvironment() environment {
	return environment{
		stdout:     os.Stdout,
		workingDir: os.Getwd,
		variables:  variable.ProcessEnvironment{},
		presets:    libconfig.Presets(),
		width:      func() int { return cli.TerminalWidth(os.Stdout, 0) },
	}
}

// Command returns the "config" command.
func Command() *cli.Command {
	return newCommand(processEnvironment())
}

func newCommand(env environment) *cli.Command {
	var params configParams

	return &cli.Command{
		Name:    "config",
		Summary: "Show the resolved configuration and variables",
		Description: `Load the configuration exactly as other tb commands do and print it.

Sources are discovered from the working directory: the [tool.toolbelt]
include list in pyproject.toml, else toolbelt.yaml, toolbelt.yml or
toolbelt.json, else the built-in default preset. --config names a file
explicitly.

--show-variables prints every variable available to tool templates.
Declared variables come from the configuration's variables section,
where ${NAME} may read any environment variable. Environment variables
whose names start with an approved prefix (TOOLBELT_, TB_, TBELT_, CI_,
BUILD_) are added on top and override declared values. No other
environment variable is ever visible to templates.`,
		Usage: "tb config [flags]",
		Examples: []cli.Example{
			{
				Description: "Show sources and profiles",
				Command:     "tb config",
			},
			{
				Description: "Audit the variables available to tool templates",
				Command:     "tb config --show-variables",
			},
			{
				Description: "Show the python profile's commands, raw and expanded",
				Command:     "tb config --profile python",
			},
			{
				Description: "Machine-readable variable table",
				Command:     "tb config --show-variables --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("config", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument %q", args[0]).
					WithHint("Run 'tb config --help' for usage.")
			}
			if params.Writer == nil {
				params.Writer = env.stdout
			}

			result, err := buildReport(env, &params, logger)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(result); done {
				return err
			}
			return printReport(env.stdout, result, &params, env.width())
		},
	}
}

// buildReport loads the configuration and assembles what the command
// prints.
func buildReport(env environment, params *configParams, logger *slog.Logger) (*report, error) {
	workingDir, err := env.workingDir()
	if err != nil {
		return nil, cli.Internal("determining working directory: %w", err)
	}

	loader := libconfig.NewLoaderWithPresets(logger, env.presets)
	sources, err := loader.FindSources(params.Config, workingDir)
	if err != nil {
		return nil, cli.NotFound("%w", err).
			WithHint("Pass an existing file to --config, or omit it to discover configuration from the working directory.")
	}
	logger.Debug("configuration sources", "count", len(sources))

	cfg, err := loader.Load(sources)
	if err != nil {
		return nil, classifyLoadError(err)
	}

	table, err := cfg.ResolveVariables(variable.Snapshot(env.variables))
	if err != nil {
		return nil, classifyVariableError(err)
	}
	counts := table.CountBySource()
	logger.Debug("resolved variables",
		"declared", counts[variable.SourceConfig],
		"environment", counts[variable.SourceEnv],
	)

	result := &report{
		Sources:  cfg.Sources,
		Profiles: summarizeProfiles(cfg),
	}

	if params.Profile != "" {
		detail, err := describeProfile(cfg, params.Profile, table)
		if err != nil {
			return nil, err
		}
		result.Profile = detail
	}

	if params.ShowVariables {
		result.Variables = table.All()
		result.Counts = counts
		fingerprint := table.Fingerprint()
		result.Fingerprint = fingerprint.String()
	}

	return result, nil
}

// classifyLoadError maps configuration loading failures to categories:
// invalid content is the user's to fix, a vanished file is not found,
// anything else is internal.
func classifyLoadError(err error) error {
	var invalid *libconfig.InvalidError
	switch {
	case errors.As(err, &invalid):
		return cli.Validation("%w", err)
	case errors.Is(err, fs.ErrNotExist):
		return cli.NotFound("%w", err)
	default:
		return cli.Internal("%w", err)
	}
}

// classifyVariableError adds remediation hints to phase-1 resolution
// failures.
func classifyVariableError(err error) error {
	var missing *variable.MissingEnvReferenceError
	if errors.As(err, &missing) {
		return cli.Validation("%w", err).WithHint(fmt.Sprintf(
			"Set %s in the environment, or give the reference a default: ${%s:value}.",
			missing.Reference, missing.Reference))
	}
	return cli.Validation("%w", err)
}
