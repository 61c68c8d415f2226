package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultSettings = `version: 1
servers_dir: servers
# schema: schemas/server.schema.json
output:
  format: text
  summary: false
  no_color: false
report:
  json: ""
  html: ""
history:
  path: ""
`

const defaultSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "capabilities": { "type": "array", "items": { "type": "string" }, "minItems": 1 },
    "tags": { "type": "array", "items": { "type": "string" }, "minItems": 1 },
    "active": { "type": "boolean" }
  }
}
`

// Scaffold writes a starter settings file and an example schema next to it.
// Existing files are never overwritten.
func Scaffold(settingsPath string) error {
	if settingsPath == "" {
		return fmt.Errorf("settings path is required")
	}
	schemaPath := filepath.Join(filepath.Dir(settingsPath), "schemas", "server.schema.json")
	for _, path := range []string{settingsPath, schemaPath} {
		if info, err := os.Stat(path); err == nil {
			if info.IsDir() {
				return fmt.Errorf("path %q is a directory", path)
			}
			return fmt.Errorf("file already exists at %q", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", filepath.Base(path), err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(schemaPath), 0o755); err != nil {
		return fmt.Errorf("create schemas dir: %w", err)
	}
	if err := os.WriteFile(settingsPath, []byte(defaultSettings), 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := os.WriteFile(schemaPath, []byte(defaultSchema), 0o644); err != nil {
		return fmt.Errorf("write schema file: %w", err)
	}
	return nil
}
