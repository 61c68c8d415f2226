package runner

// summarize aggregates outcomes into a summary.
func summarize(outcomes []Outcome) RunSummary {
	summary := RunSummary{Total: len(outcomes)}
	for _, outcome := range outcomes {
		if outcome.Valid() {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}
	return summary
}
