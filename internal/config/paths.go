package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the settings file searched for from the working directory.
const FileName = ".mcpvalidate.yml"

// ProjectRootFromPath derives the project root from a settings file path.
func ProjectRootFromPath(settingsPath string) string {
	return filepath.Dir(settingsPath)
}

// FindPath searches upward from a directory for a settings file. It returns
// an empty path without error when none exists.
func FindPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	dir = abs

	for {
		path := filepath.Join(dir, FileName)
		info, err := os.Stat(path)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("settings path %q is a directory", path)
			}
			return path, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat settings path %q: %w", path, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
