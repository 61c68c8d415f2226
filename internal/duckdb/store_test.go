package duckdb_test

import (
	"path/filepath"
	"testing"
	"time"

	"mcpregistry/internal/duckdb"
	"mcpregistry/internal/duckdb/testing"
	"mcpregistry/internal/testutil"
)

// TestRecordRunPersistsOutcomes verifies one run row and one row per outcome.
func TestRecordRunPersistsOutcomes(t *testing.T) {
	store := duckdbtesting.Open(t, duckdb.MemoryDSN)
	ctx := testutil.Context(t, testTimeout)
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if err := store.RecordRun(ctx, sampleResults("run-1", started)); err != nil {
		t.Fatalf("record run: %v", err)
	}

	last, ok, err := store.LastRun(ctx, "servers")
	if err != nil || !ok {
		t.Fatalf("expected last run, got ok=%v err=%v", ok, err)
	}
	if last.RunID != "run-1" || last.Mode != "batch" || last.Summary.Failed != 1 {
		t.Fatalf("unexpected run record %+v", last)
	}
	if !last.StartedAt.Equal(started) {
		t.Fatalf("expected started %v, got %v", started, last.StartedAt)
	}

	outcomes, err := store.Outcomes(ctx, "run-1")
	if err != nil {
		t.Fatalf("outcomes: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Name != "a.yaml" || outcomes[0].Status != "pass" || len(outcomes[0].Issues) != 0 {
		t.Fatalf("unexpected first outcome %+v", outcomes[0])
	}
	if outcomes[1].Status != "fail" || outcomes[1].Issues[0].Message != "Missing required field: id" {
		t.Fatalf("unexpected second outcome %+v", outcomes[1])
	}
	if outcomes[0].Fingerprint == outcomes[1].Fingerprint {
		t.Fatalf("expected distinct fingerprints for distinct issue lists")
	}
}

// TestLastRunPicksLatest verifies ordering by start time and target filtering.
func TestLastRunPicksLatest(t *testing.T) {
	store := duckdbtesting.Open(t, duckdb.MemoryDSN)
	ctx := testutil.Context(t, testTimeout)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"older", "newer"} {
		if err := store.RecordRun(ctx, sampleResults(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("record %s: %v", id, err)
		}
	}
	last, ok, err := store.LastRun(ctx, "servers")
	if err != nil || !ok {
		t.Fatalf("expected last run, got ok=%v err=%v", ok, err)
	}
	if last.RunID != "newer" {
		t.Fatalf("expected newer run, got %q", last.RunID)
	}

	if _, ok, err := store.LastRun(ctx, "elsewhere"); err != nil || ok {
		t.Fatalf("expected no run for other target, got ok=%v err=%v", ok, err)
	}

	counts, err := store.FailureCounts(ctx)
	if err != nil {
		t.Fatalf("failure counts: %v", err)
	}
	if counts["b.yaml"] != 2 || counts["a.yaml"] != 0 {
		t.Fatalf("unexpected failure counts %v", counts)
	}
}

// TestRecordRunRejectsDuplicateID verifies a failed insert leaves no partial run.
func TestRecordRunRejectsDuplicateID(t *testing.T) {
	store := duckdbtesting.Open(t, duckdb.MemoryDSN)
	ctx := testutil.Context(t, testTimeout)
	results := sampleResults("dup", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	if err := store.RecordRun(ctx, results); err != nil {
		t.Fatalf("record run: %v", err)
	}
	if err := store.RecordRun(ctx, results); err == nil {
		t.Fatalf("expected duplicate run error")
	}
	outcomes, err := store.Outcomes(ctx, "dup")
	if err != nil {
		t.Fatalf("outcomes: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("expected original 2 outcomes, got %d", len(outcomes))
	}
}

// TestOpenFileDatabasePersists verifies runs survive reopening a file database.
func TestOpenFileDatabasePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.duckdb")
	ctx := testutil.Context(t, testTimeout)

	store, err := duckdb.Open(ctx, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.RecordRun(ctx, sampleResults("persisted", time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))); err != nil {
		t.Fatalf("record run: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened := duckdbtesting.Open(t, path)
	last, ok, err := reopened.LastRun(ctx, "servers")
	if err != nil || !ok || last.RunID != "persisted" {
		t.Fatalf("expected persisted run, got %+v ok=%v err=%v", last, ok, err)
	}
}

// TestFingerprintJSONStable verifies key order does not change fingerprints.
func TestFingerprintJSONStable(t *testing.T) {
	first, err := duckdb.FingerprintJSON(map[string]any{"a": 1, "b": []string{"x"}})
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	second, err := duckdb.FingerprintJSON(map[string]any{"b": []string{"x"}, "a": 1})
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	if first != second {
		t.Fatalf("expected stable fingerprint, got %s and %s", first, second)
	}
}
