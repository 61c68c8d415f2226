package config

import (
	"fmt"
	"os"
)

// Load reads, parses, normalizes, and validates a settings file. Relative
// paths in the result are resolved against the file's project root.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	settings, err := ParseSettings(data)
	if err != nil {
		return Settings{}, err
	}
	root := ProjectRootFromPath(path)
	Normalize(&settings, root)
	if err := Validate(&settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Default returns the settings used when no settings file exists.
func Default() Settings {
	settings := Settings{Version: CurrentVersion}
	Normalize(&settings, "")
	return settings
}
