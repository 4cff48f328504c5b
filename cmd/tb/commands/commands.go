// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the tb command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/toolbelt/toolbelt/cmd/tb/cli"
	configcmd "github.com/toolbelt/toolbelt/cmd/tb/config"
	"github.com/toolbelt/toolbelt/lib/version"
)

// Root builds and returns the complete tb command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "tb",
		Description: `tb: run a project's linters and formatters from one configuration.

Profiles group tools by file type. Tool commands are templates: ${NAME}
expands from the configuration's variables section and from environment
variables with an approved prefix (TOOLBELT_, TB_, TBELT_, CI_, BUILD_).`,
		Subcommands: []*cli.Command{
			configcmd.Command(),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Show where configuration was loaded from",
				Command:     "tb config",
			},
			{
				Description: "Audit the variables tool commands can see",
				Command:     "tb config --show-variables",
			},
		},
	}
}

type versionParams struct {
	cli.JSONOutput
}

func versionCommand() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if done, err := params.EmitJSON(version.Current()); done {
				return err
			}
			fmt.Printf("tb %s\n", version.Full())
			return nil
		},
	}
}
