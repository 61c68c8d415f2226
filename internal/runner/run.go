package runner

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"mcpregistry/internal/validator"
)

// FileValidator validates one record file.
type FileValidator interface {
	ValidateFile(path string) []validator.Issue
}

type RunDependencies struct {
	RunID func() (string, error)
	Now   func() time.Time
}

type RunParams struct {
	Schema   string
	Observer RunObserver
	Logger   *slog.Logger
	Deps     RunDependencies
}

// Run validates every file in the plan in order. A failing record never
// stops the run; only cancellation does.
func Run(ctx context.Context, plan Plan, v FileValidator, params RunParams) (Results, error) {
	runID, err := ensureRunID(params.Deps.RunID)
	if err != nil {
		return Results{}, err
	}
	now := params.Deps.Now
	if now == nil {
		now = time.Now
	}
	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	results := Results{
		RunID:     runID,
		Mode:      plan.Mode,
		Target:    plan.Target,
		Schema:    params.Schema,
		StartedAt: now().UTC(),
		Outcomes:  make([]Outcome, 0, len(plan.Files)),
	}
	logger.Debug("run started", "run_id", runID, "mode", plan.Mode, "target", plan.Target, "files", len(plan.Files))

	for _, path := range plan.Files {
		select {
		case <-ctx.Done():
			return Results{}, ctx.Err()
		default:
		}
		issues := v.ValidateFile(path)
		if issues == nil {
			issues = []validator.Issue{}
		}
		outcome := Outcome{Path: path, Name: filepath.Base(path), Issues: issues}
		results.Outcomes = append(results.Outcomes, outcome)
		notify(params.Observer, outcome)
	}

	results.FinishedAt = now().UTC()
	results.Summary = summarize(results.Outcomes)
	logger.Debug("run completed",
		"run_id", runID,
		"passed", results.Summary.Passed,
		"failed", results.Summary.Failed,
		"duration", results.FinishedAt.Sub(results.StartedAt))
	return results, nil
}
