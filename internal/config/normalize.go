package config

import (
	"path/filepath"
	"strings"
)

// Normalize fills defaults and resolves relative paths against root.
func Normalize(settings *Settings, root string) {
	settings.Output.Format = strings.ToLower(strings.TrimSpace(settings.Output.Format))
	if settings.Output.Format == "" {
		settings.Output.Format = FormatText
	}
	settings.ServersDir = resolvePath(root, settings.ServersDir)
	settings.Schema = resolvePath(root, settings.Schema)
	settings.Report.JSON = resolvePath(root, settings.Report.JSON)
	settings.Report.HTML = resolvePath(root, settings.Report.HTML)
	settings.History.Path = resolvePath(root, settings.History.Path)
}

// resolvePath joins relative paths onto root. Empty values stay empty.
func resolvePath(root, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
