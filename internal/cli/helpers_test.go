package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mcpregistry/internal/runner"
	"mcpregistry/internal/testutil"
)

const validServer = `id: example-server
name: Example Server
category: security
description: "A scanner that reports vulnerabilities found in connected code repositories."
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

const invalidServer = `id: Bad_ID
name: Broken
category: gaming
description: short
maintainer: Nobody
repository:
  url: ftp://example.com
authentication:
  type: basic
endpoints:
  production: tcp://example.com
capabilities: []
tags: []
active: false
`

// isolate runs the test from an empty directory with fixed run ids and clock.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("NO_COLOR", "")

	clock := testutil.NewFakeClock(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC), time.Second)
	originalDeps := runDependencies
	originalServers := defaultServersDir
	runs := 0
	runDependencies = runner.RunDependencies{
		RunID: func() (string, error) {
			runs++
			return "run-" + string(rune('0'+runs)), nil
		},
		Now: clock.Now,
	}
	defaultServersDir = func() (string, error) {
		return filepath.Join(dir, "servers"), nil
	}
	t.Cleanup(func() {
		runDependencies = originalDeps
		defaultServersDir = originalServers
	})
	return dir
}

// writeFile writes body to dir/name, creating parents.
func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

// runCLI runs the command line and captures its output.
func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// lines splits output into trimmed lines.
func lines(out string) []string {
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}
