package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/memsim/mem/engine"
	"github.com/joshuapare/memsim/mem/snapshot"
)

// writeStateFile saves states to a temp state file and returns its path.
func writeStateFile(t *testing.T, states []engine.RegionState) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.mem")
	if err := snapshot.Save(path, states); err != nil {
		t.Fatalf("failed to write state file: %v", err)
	}
	return path
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}
