package cli

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"mcpregistry/internal/config"
)

// loadSettings loads the named settings file, or the one found upward from
// the working directory, or defaults when neither exists.
func loadSettings(configPath string) (config.Settings, string, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		found, err := config.FindPath("")
		if err != nil {
			return config.Settings{}, "", err
		}
		if found == "" {
			return config.Default(), "", nil
		}
		path = found
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return config.Settings{}, "", fmt.Errorf("resolve settings path: %w", err)
	}
	settings, err := config.Load(abs)
	if err != nil {
		return config.Settings{}, abs, err
	}
	return settings, abs, nil
}

// applyFlags overrides settings with explicitly set flags.
func applyFlags(settings *config.Settings, opts options) error {
	if opts.set["servers-dir"] {
		settings.ServersDir = opts.serversDir
	}
	if opts.set["schema"] {
		settings.Schema = opts.schema
	}
	if opts.set["format"] {
		settings.Output.Format = strings.ToLower(strings.TrimSpace(opts.format))
	}
	if opts.set["report-json"] {
		settings.Report.JSON = opts.reportJSON
	}
	if opts.set["report-html"] {
		settings.Report.HTML = opts.reportHTML
	}
	if opts.set["history"] {
		settings.History.Path = opts.history
	}
	if opts.set["summary"] {
		settings.Output.Summary = opts.summary
	}
	if opts.set["no-color"] {
		settings.Output.NoColor = opts.noColor
	}
	if !slices.Contains(config.SupportedFormats(), settings.Output.Format) {
		return fmt.Errorf("unsupported format %q (expected text|json)", settings.Output.Format)
	}
	return nil
}
