// Package summary renders the end-of-run summary table.
package summary

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"mcpregistry/internal/runner"
)

// headerLines covers the header row and its border; WithHeight counts both.
const headerLines = 3

// Options configures summary rendering.
type Options struct {
	NoColor bool
	History *History
}

// History carries what the history store knows about earlier runs.
type History struct {
	PreviousRunID string
	PreviousAt    time.Time
	Previous      runner.RunSummary
	Statuses      map[string]string
	FailureCounts map[string]int
}

// Render returns the summary block for a finished run.
func Render(results runner.Results, opts Options) string {
	rows := rowsFor(results.Outcomes, opts)
	t := table.New(
		table.WithColumns(columnsFor(rows, opts.History != nil)),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+headerLines),
	)
	t.SetStyles(tableStyles(opts.NoColor))

	lines := []string{
		renderHeader(results, opts.NoColor),
		renderCounts(results.Summary, opts.NoColor),
	}
	if line := renderPrevious(opts.History, opts.NoColor); line != "" {
		lines = append(lines, line)
	}
	lines = append(lines, strings.TrimRight(t.View(), "\n "))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderHeader renders the run header line.
func renderHeader(results runner.Results, noColor bool) string {
	line := "Run " + results.RunID + " | Mode: " + string(results.Mode) + " | Target: " + results.Target
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderCounts renders the pass/fail counts line.
func renderCounts(summary runner.RunSummary, noColor bool) string {
	line := "Total: " + fmtInt(summary.Total) +
		" Passed: " + fmtInt(summary.Passed) +
		" Failed: " + fmtInt(summary.Failed)
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderPrevious renders the previous run line when one exists.
func renderPrevious(history *History, noColor bool) string {
	if history == nil || history.PreviousRunID == "" {
		return ""
	}
	line := "Previous run " + history.PreviousRunID +
		" at " + history.PreviousAt.UTC().Format(time.RFC3339) +
		" | Passed: " + fmtInt(history.Previous.Passed) +
		" Failed: " + fmtInt(history.Previous.Failed)
	return stylize(line, noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
