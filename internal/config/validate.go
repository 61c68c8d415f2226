package config

import (
	"fmt"
	"os"
	"slices"
)

// CurrentVersion is the only supported settings version.
const CurrentVersion = 1

// Validate checks settings for correctness and referenced files.
func Validate(settings *Settings) error {
	collector := &issueCollector{}

	if settings.Version == 0 {
		collector.add("version", "is required")
	} else if settings.Version != CurrentVersion {
		collector.add("version", fmt.Sprintf("unsupported version %d", settings.Version))
	}

	if !slices.Contains(SupportedFormats(), settings.Output.Format) {
		collector.add("output.format", fmt.Sprintf("unsupported format %q (expected text|json)", settings.Output.Format))
	}

	validateFilePath("schema", settings.Schema, true, collector.add)
	validateFilePath("report.json", settings.Report.JSON, false, collector.add)
	validateFilePath("report.html", settings.Report.HTML, false, collector.add)
	validateFilePath("history.path", settings.History.Path, false, collector.add)

	return collector.result()
}

// validateFilePath flags paths that point at directories, and missing
// files when mustExist is set. Empty paths are skipped.
func validateFilePath(field, path string, mustExist bool, add issueAdder) {
	if path == "" {
		return
	}
	info, err := os.Stat(path)
	if err != nil {
		if mustExist {
			add(field, fmt.Sprintf("file not found at %q", path))
		}
		return
	}
	if info.IsDir() {
		add(field, fmt.Sprintf("path %q is a directory", path))
	}
}
