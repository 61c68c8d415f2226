package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mcpregistry/internal/record"
)

// validDescription is 75 characters long.
var validDescription = strings.Repeat("a", 70) + " tool"

// validRecordYAML returns a minimal record that passes every check.
func validRecordYAML() string {
	return `id: example-server
name: Example Server
category: security
description: "` + validDescription + `"
maintainer: Example Team
repository:
  url: https://example.com
authentication:
  type: api-key
endpoints:
  production: https://example.com/api
capabilities:
  - scan
tags:
  - security
active: true
`
}

// writeRecord writes a record file into dir and returns its path.
func writeRecord(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write record: %v", err)
	}
	return path
}

// parseRecord parses YAML or fails the test.
func parseRecord(t *testing.T, body string) *record.Record {
	t.Helper()
	rec, err := record.Parse([]byte(body))
	if err != nil {
		t.Fatalf("parse record: %v", err)
	}
	return rec
}

// withField replaces or appends a top-level line in the valid record.
func withField(key, line string) string {
	lines := strings.Split(strings.TrimRight(validRecordYAML(), "\n"), "\n")
	out := make([]string, 0, len(lines)+1)
	replaced := false
	skipping := false
	for _, current := range lines {
		if skipping {
			if strings.HasPrefix(current, " ") {
				continue
			}
			skipping = false
		}
		if strings.HasPrefix(current, key+":") {
			if !replaced {
				out = append(out, line)
			}
			replaced = true
			skipping = true
			continue
		}
		out = append(out, current)
	}
	if !replaced {
		out = append(out, line)
	}
	return strings.Join(out, "\n") + "\n"
}

// countPrefix counts messages starting with prefix.
func countPrefix(issues []Issue, prefix string) int {
	count := 0
	for _, issue := range issues {
		if strings.HasPrefix(issue.Message, prefix) {
			count++
		}
	}
	return count
}
