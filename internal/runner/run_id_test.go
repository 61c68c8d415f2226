package runner

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

// TestNewRunID verifies run IDs are random UUIDs.
func TestNewRunID(t *testing.T) {
	first, err := NewRunID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewRunID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct run ids, got %q twice", first)
	}
	parsed, err := uuid.Parse(first)
	if err != nil {
		t.Fatalf("expected uuid run id, got %q: %v", first, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("expected version 4 uuid, got %d", parsed.Version())
	}
}

// TestEnsureRunIDUsesGenerator verifies the generator seam.
func TestEnsureRunIDUsesGenerator(t *testing.T) {
	got, err := ensureRunID(func() (string, error) { return "fixed", nil })
	if err != nil || got != "fixed" {
		t.Fatalf("expected fixed run id, got %q (%v)", got, err)
	}
	wantErr := errors.New("boom")
	if _, err := ensureRunID(func() (string, error) { return "", wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("expected generator error, got %v", err)
	}
}
