// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/toolbelt/toolbelt/cmd/tb/cli"
	"github.com/toolbelt/toolbelt/cmd/tb/commands"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return commands.Root().Execute(ctx, os.Args[1:])
}

// exitCode maps the error's category to the process exit status.
func exitCode(err error) int {
	switch cli.CategoryOf(err) {
	case cli.CategoryValidation:
		return 2
	case cli.CategoryNotFound:
		return 3
	default:
		return 1
	}
}
