package testutil

import (
	"testing"
	"time"
)

// TestFakeClockSteps verifies Now advances by the configured step.
func TestFakeClockSteps(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewFakeClock(start, time.Second)
	if got := clock.Now(); !got.Equal(start) {
		t.Fatalf("expected %v, got %v", start, got)
	}
	clock.Advance(time.Minute)
	if got := clock.Now(); !got.Equal(start.Add(time.Minute + time.Second)) {
		t.Fatalf("expected stepped and advanced time, got %v", got)
	}
}
