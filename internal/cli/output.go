package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"mcpregistry/internal/runner"
)

const (
	passMarker = "✅"
	failMarker = "❌"
)

var (
	passColor = lipgloss.Color("42")
	failColor = lipgloss.Color("196")
)

// textPrinter writes per-file results as they arrive.
type textPrinter struct {
	w       io.Writer
	mode    runner.Mode
	noColor bool
}

// OnOutcome prints one file's result.
func (p *textPrinter) OnOutcome(outcome runner.Outcome) {
	switch {
	case p.mode == runner.ModeSingle && outcome.Valid():
		p.pass(outcome.Path + " is valid!")
	case p.mode == runner.ModeSingle:
		p.fail("Validation failed for " + outcome.Path + ":")
	case outcome.Valid():
		p.pass(outcome.Name)
	default:
		p.fail(outcome.Name + ":")
	}
	for _, issue := range outcome.Issues {
		fmt.Fprintf(p.w, "  - %s\n", issue.Message)
	}
}

// finish prints the closing line of a fully passing batch run.
func (p *textPrinter) finish(results runner.Results) {
	if results.Mode == runner.ModeBatch && results.OK() {
		fmt.Fprintln(p.w)
		p.pass("All server files are valid!")
	}
}

func (p *textPrinter) pass(text string) {
	fmt.Fprintln(p.w, stylize(passMarker+" "+text, p.noColor, passColor))
}

func (p *textPrinter) fail(text string) {
	fmt.Fprintln(p.w, stylize(failMarker+" "+text, p.noColor, failColor))
}

// printResolutionError reports a missing target on stdout.
func printResolutionError(w io.Writer, message string, noColor bool) {
	fmt.Fprintln(w, stylize(failMarker+" "+message, noColor, failColor))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
