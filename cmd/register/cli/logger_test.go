// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewCommandLogger(t *testing.T) {
	var buffer bytes.Buffer

	// A buffer is never a terminal, so auto selects JSON.
	logger := NewCommandLogger(&buffer, slog.LevelInfo, "auto")
	logger.Debug("hidden")
	logger.Info("hashed", "inputs", 2)

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record above the level, got %q", buffer.String())
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("auto format on a buffer should be JSON: %v", err)
	}
	if record["msg"] != "hashed" || record["inputs"] != float64(2) {
		t.Errorf("unexpected record %v", record)
	}

	buffer.Reset()
	NewCommandLogger(&buffer, slog.LevelDebug, "text").Debug("shown", "kind", "point")
	if !strings.Contains(buffer.String(), "msg=shown kind=point") {
		t.Errorf("text format output = %q", buffer.String())
	}
}

func TestFail(t *testing.T) {
	var buffer bytes.Buffer
	err := Fail(&buffer, "The given item is not canonical")
	if buffer.String() != "The given item is not canonical\n" {
		t.Errorf("Fail wrote %q", buffer.String())
	}
	coder, ok := err.(interface{ ExitCode() int })
	if !ok || coder.ExitCode() != 1 {
		t.Errorf("Fail returned %v, want exit code 1", err)
	}
}
