// Package validator checks server records against the registry schema.
//
// Every check runs independently and appends to one ordered issue list; only
// a file that cannot be read or parsed short-circuits, with a single issue.
package validator

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"mcpregistry/internal/record"
)

// Field names used for issues that are not tied to a record key.
const (
	fieldFile   = "file"
	fieldSchema = "schema"
)

// Validator runs the ordered record checks.
type Validator struct {
	schema *Schema
	logger *slog.Logger
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithSchema adds a JSON Schema check after the built-in checks.
func WithSchema(schema *Schema) Option {
	return func(v *Validator) {
		v.schema = schema
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// New creates a Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateFile reads and validates the record at path. An empty result means
// the record is valid.
func (v *Validator) ValidateFile(path string) []Issue {
	rec, err := record.Load(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			v.logger.Debug("record unreadable", "path", path, "error", err)
			return []Issue{{Field: fieldFile, Message: fmt.Sprintf("Error reading file: %v", pathErr)}}
		}
		v.logger.Debug("record unparsable", "path", path, "error", err)
		return []Issue{{Field: fieldFile, Message: fmt.Sprintf("Invalid YAML: %v", err)}}
	}
	issues := v.Validate(rec)
	v.logger.Debug("record validated", "path", path, "issues", len(issues))
	return issues
}

// Validate runs every check against a decoded record.
func (v *Validator) Validate(rec *record.Record) []Issue {
	collector := &issueCollector{}
	checkRequired(rec, collector.add)
	checkID(rec.ID, collector.add)
	checkCategory(rec.Category, collector.add)
	checkDescription(rec.Description, collector.add)
	checkAuthentication(rec.Authentication, collector.add)
	checkVerification(rec.Verification, collector.add)
	checkLastUpdated(rec.Metrics, collector.add)
	checkRepositoryURL(rec.Repository, collector.add)
	checkProductionEndpoint(rec.Endpoints, collector.add)
	if v.schema != nil {
		v.schema.check(rec, collector.add)
	}
	return collector.issues
}

// ValidateFile validates a record with the default Validator.
func ValidateFile(path string) []Issue {
	return New().ValidateFile(path)
}
