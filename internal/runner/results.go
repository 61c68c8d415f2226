package runner

import (
	"time"

	"mcpregistry/internal/validator"
)

// Mode identifies how targets were selected.
type Mode string

const (
	// ModeSingle validates one explicitly named file.
	ModeSingle Mode = "single"
	// ModeBatch validates every record in a servers directory.
	ModeBatch Mode = "batch"
)

type Results struct {
	RunID      string     `json:"run_id"`
	Mode       Mode       `json:"mode"`
	Target     string     `json:"target"`
	Schema     string     `json:"schema,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt time.Time  `json:"finished_at"`
	Outcomes   []Outcome  `json:"outcomes"`
	Summary    RunSummary `json:"summary"`
}

// Outcome is the validation result for one record file.
type Outcome struct {
	Path   string            `json:"path"`
	Name   string            `json:"name"`
	Issues []validator.Issue `json:"issues"`
}

// Valid reports whether the record passed every check.
func (o Outcome) Valid() bool {
	return len(o.Issues) == 0
}

// Status returns "pass" or "fail".
func (o Outcome) Status() string {
	if o.Valid() {
		return "pass"
	}
	return "fail"
}

type RunSummary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// OK reports whether every outcome passed.
func (r Results) OK() bool {
	return r.Summary.Failed == 0
}
