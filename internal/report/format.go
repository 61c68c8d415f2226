package report

import (
	"fmt"
	"time"

	"mcpregistry/internal/runner"
)

// formatPassRate returns a percentage string for report output.
func formatPassRate(summary runner.RunSummary) string {
	if summary.Total == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(summary.Passed)/float64(summary.Total)*100)
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.UTC().Format(time.RFC3339)
}

func formatDuration(results runner.Results) string {
	if results.StartedAt.IsZero() || results.FinishedAt.IsZero() {
		return "-"
	}
	return results.FinishedAt.Sub(results.StartedAt).Round(time.Millisecond).String()
}
