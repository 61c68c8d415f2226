package config

// Settings is the optional project settings file.
type Settings struct {
	Version    int             `yaml:"version"`
	ServersDir string          `yaml:"servers_dir"`
	Schema     string          `yaml:"schema"`
	Output     OutputSettings  `yaml:"output"`
	Report     ReportSettings  `yaml:"report"`
	History    HistorySettings `yaml:"history"`
}

type OutputSettings struct {
	Format  string `yaml:"format"`
	Summary bool   `yaml:"summary"`
	NoColor bool   `yaml:"no_color"`
}

type ReportSettings struct {
	JSON string `yaml:"json"`
	HTML string `yaml:"html"`
}

type HistorySettings struct {
	Path string `yaml:"path"`
}

// Output formats accepted for stdout.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// SupportedFormats lists the accepted output formats.
func SupportedFormats() []string {
	return []string{FormatText, FormatJSON}
}
