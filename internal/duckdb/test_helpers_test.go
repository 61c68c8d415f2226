package duckdb_test

import (
	"time"

	"mcpregistry/internal/runner"
	"mcpregistry/internal/validator"
)

const (
	testTimeout = 5 * time.Second
)

// sampleResults builds a batch run with one passing and one failing file.
func sampleResults(runID string, started time.Time) runner.Results {
	return runner.Results{
		RunID:      runID,
		Mode:       runner.ModeBatch,
		Target:     "servers",
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
		Outcomes: []runner.Outcome{
			{Path: "servers/a.yaml", Name: "a.yaml", Issues: []validator.Issue{}},
			{Path: "servers/b.yaml", Name: "b.yaml", Issues: []validator.Issue{
				{Field: "id", Message: "Missing required field: id"},
			}},
		},
		Summary: runner.RunSummary{Total: 2, Passed: 1, Failed: 1},
	}
}
