package summary

import (
	"strconv"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"mcpregistry/internal/runner"
)

// tableStyles returns table styles for the summary. The cursor row is not
// highlighted since the table is never interactive.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	if noColor {
		styles.Header = styles.Header.UnsetForeground()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// columnsFor sizes each column to its widest cell so nothing is truncated.
func columnsFor(rows []table.Row, withHistory bool) []table.Column {
	titles := []string{"File", "Status", "Issues"}
	if withHistory {
		titles = append(titles, "Previous", "Failed runs")
	}
	columns := make([]table.Column, len(titles))
	for i, title := range titles {
		width := utf8.RuneCountInString(title)
		for _, row := range rows {
			if i < len(row) {
				width = max(width, utf8.RuneCountInString(row[i]))
			}
		}
		columns[i] = table.Column{Title: title, Width: width}
	}
	return columns
}

// rowsFor converts outcomes into table rows.
func rowsFor(outcomes []runner.Outcome, opts Options) []table.Row {
	rows := make([]table.Row, 0, len(outcomes))
	for _, outcome := range outcomes {
		row := table.Row{
			outcome.Name,
			outcome.Status(),
			strconv.Itoa(len(outcome.Issues)),
		}
		if opts.History != nil {
			row = append(row,
				formatPrevious(opts.History.Statuses, outcome.Name),
				strconv.Itoa(opts.History.FailureCounts[outcome.Name]))
		}
		rows = append(rows, row)
	}
	return rows
}
