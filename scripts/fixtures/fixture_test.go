package main

import (
	"path/filepath"
	"testing"

	"mcpregistry/internal/record"
	"mcpregistry/internal/validator"
)

// TestServerYAMLValidity verifies generated files pass or fail as requested.
func TestServerYAMLValidity(t *testing.T) {
	v := validator.New()
	for _, invalid := range []bool{false, true} {
		rec, err := record.Parse([]byte(serverYAML(7, invalid)))
		if err != nil {
			t.Fatalf("parse fixture: %v", err)
		}
		issues := v.Validate(rec)
		if invalid && len(issues) != 2 {
			t.Fatalf("expected 2 issues for invalid fixture, got %v", validator.Messages(issues))
		}
		if !invalid && len(issues) != 0 {
			t.Fatalf("expected valid fixture, got %v", validator.Messages(issues))
		}
	}
}

// TestWriteServers verifies every Nth file is invalid.
func TestWriteServers(t *testing.T) {
	dir := t.TempDir()
	if err := writeServers(dir, fixtureConfig{Count: 4, InvalidEvery: 2}); err != nil {
		t.Fatalf("write servers: %v", err)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil || len(matches) != 4 {
		t.Fatalf("expected 4 files, got %v (%v)", matches, err)
	}
	failed := 0
	for _, path := range matches {
		if len(validator.ValidateFile(path)) > 0 {
			failed++
		}
	}
	if failed != 2 {
		t.Fatalf("expected 2 invalid files, got %d", failed)
	}
}
