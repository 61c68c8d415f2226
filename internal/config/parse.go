package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseSettings decodes a settings document, rejecting unknown keys.
func ParseSettings(data []byte) (Settings, error) {
	var settings Settings
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&settings); err != nil {
		if errors.Is(err, io.EOF) {
			return Settings{}, fmt.Errorf("parse settings: file is empty")
		}
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return Settings{}, fmt.Errorf("parse settings: multiple YAML documents are not supported")
		}
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	return settings, nil
}
