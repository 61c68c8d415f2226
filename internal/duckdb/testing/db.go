package duckdbtesting

import (
	"testing"
	"time"

	"mcpregistry/internal/duckdb"
	"mcpregistry/internal/testutil"
)

const (
	defaultTimeout = 5 * time.Second
)

// Open opens a history store and closes it when the test ends.
func Open(t testing.TB, dsn string) *duckdb.Store {
	t.Helper()
	ctx := testutil.Context(t, defaultTimeout)
	store, err := duckdb.Open(ctx, dsn)
	if err != nil {
		t.Fatalf("open history store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
