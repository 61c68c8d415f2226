// Package report writes run results as JSON documents and HTML pages.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"mcpregistry/internal/runner"
)

// WriteJSON writes results as indented JSON, creating parent directories.
func WriteJSON(path string, results runner.Results) error {
	payload, err := MarshalResults(results)
	if err != nil {
		return err
	}
	return writeFile(path, payload)
}

// MarshalResults encodes results as indented JSON with a trailing newline.
func MarshalResults(results runner.Results) ([]byte, error) {
	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return append(payload, '\n'), nil
}

// LoadResults reads a JSON results document.
func LoadResults(path string) (runner.Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return runner.Results{}, fmt.Errorf("read results: %w", err)
	}
	var results runner.Results
	if err := json.Unmarshal(data, &results); err != nil {
		return runner.Results{}, fmt.Errorf("parse results: %w", err)
	}
	return results, nil
}

// WriteHTML renders results as a standalone HTML page.
func WriteHTML(ctx context.Context, path string, results runner.Results) error {
	var buf bytes.Buffer
	if err := Page(results).Render(ctx, &buf); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, payload []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
