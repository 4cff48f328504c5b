// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/toolbelt/toolbelt/cmd/tb/cli"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", cli.Validation("bad flag"), 2},
		{"not found", cli.NotFound("no such profile"), 3},
		{"wrapped not found", fmt.Errorf("config: %w", cli.NotFound("missing")), 3},
		{"internal", cli.Internal("disk on fire"), 1},
		{"plain error", errors.New("boom"), 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCode(test.err); got != test.want {
				t.Errorf("exitCode = %d, want %d", got, test.want)
			}
		})
	}
}
