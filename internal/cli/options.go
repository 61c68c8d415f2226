package cli

import (
	"errors"
	"flag"
	"io"
)

var errTooManyArgs = errors.New("at most one path may be given")

// options holds parsed command line flags.
type options struct {
	path       string
	serversDir string
	configPath string
	schema     string
	format     string
	reportJSON string
	reportHTML string
	history    string
	summary    bool
	noColor    bool
	verbose    bool
	init       bool
	set        map[string]bool
}

func newFlagSet(stderr io.Writer) (*flag.FlagSet, *options) {
	opts := &options{}
	flags := flag.NewFlagSet(programName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {}
	flags.StringVar(&opts.serversDir, "servers-dir", "", "Directory of server files for batch mode")
	flags.StringVar(&opts.configPath, "config", "", "Path to settings file (default: search upward for .mcpvalidate.yml)")
	flags.StringVar(&opts.schema, "schema", "", "JSON Schema file applied after the built-in checks")
	flags.StringVar(&opts.format, "format", "", "Output format: text|json (default text)")
	flags.StringVar(&opts.reportJSON, "report-json", "", "Write run results as JSON to this path")
	flags.StringVar(&opts.reportHTML, "report-html", "", "Write an HTML report to this path")
	flags.StringVar(&opts.history, "history", "", "Append the run to a DuckDB history database")
	flags.BoolVar(&opts.summary, "summary", false, "Print a summary table after the results")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&opts.verbose, "verbose", false, "Print debug diagnostics to stderr")
	flags.BoolVar(&opts.init, "init", false, "Write a starter settings file and schema, then exit")
	return flags, opts
}

// parseOptions parses flags. Flags may appear before or after the path.
func parseOptions(args []string, stderr io.Writer) (options, error) {
	flags, opts := newFlagSet(stderr)
	var positional []string
	for {
		if err := flags.Parse(args); err != nil {
			return options{}, err
		}
		if terminated(args, flags.Args()) {
			positional = append(positional, flags.Args()...)
			break
		}
		if flags.NArg() == 0 {
			break
		}
		positional = append(positional, flags.Arg(0))
		args = flags.Args()[1:]
	}
	if len(positional) > 1 {
		return options{}, errTooManyArgs
	}
	if len(positional) == 1 {
		opts.path = positional[0]
	}
	opts.set = make(map[string]bool)
	flags.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	return *opts, nil
}

// terminated reports whether parsing stopped at a "--" terminator, after
// which every remaining argument is positional.
func terminated(args, rest []string) bool {
	consumed := len(args) - len(rest)
	return consumed > 0 && args[consumed-1] == "--"
}
