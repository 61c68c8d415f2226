// Package cli implements the mcpvalidate command line.
package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

const programName = "mcpvalidate"

var usageLines = []string{
	programName + " [options] [path]",
	programName + " --init [--config <path>]",
}

// Run executes the command line and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if wantsHelp(args) {
		printUsage(stdout)
		return ExitOK
	}
	return runValidate(args, stdout, stderr)
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		case "--":
			return false
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range usageLines {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Validates one MCP server file, or every *.yaml file in the servers directory")
	fmt.Fprintln(w, "when no path is given.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flags, _ := newFlagSet(io.Discard)
	flags.SetOutput(w)
	flags.PrintDefaults()
}
