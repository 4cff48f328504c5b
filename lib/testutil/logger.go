// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// LogBuffer collects log output. It is safe for concurrent use.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns everything logged so far.
func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// Contains reports whether the log output contains substring.
func (b *LogBuffer) Contains(substring string) bool {
	return strings.Contains(b.String(), substring)
}

// CaptureLogger returns a debug-level text logger writing to a
// LogBuffer. On failure the captured output is added to the test log.
func CaptureLogger(t testing.TB) (*slog.Logger, *LogBuffer) {
	t.Helper()
	buffer := &LogBuffer{}
	t.Cleanup(func() {
		if t.Failed() && buffer.String() != "" {
			t.Logf("captured log output:\n%s", buffer.String())
		}
	})
	handler := slog.NewTextHandler(buffer, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), buffer
}
