package cli

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// useColor decides whether stdout output is styled.
func useColor(noColor bool, stdout io.Writer) bool {
	if noColor {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	return isTerminal(stdout)
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
