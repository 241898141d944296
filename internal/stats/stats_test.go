package stats

import (
	"errors"
	"testing"
	"time"
)

func TestLatencySnapshotPercentiles(t *testing.T) {
	stats := NewLatency(time.Hour)
	stats.Record(100*time.Millisecond, nil)
	stats.Record(200*time.Millisecond, nil)
	stats.Record(300*time.Millisecond, nil)
	stats.Record(400*time.Millisecond, nil)
	stats.Record(500*time.Millisecond, nil)

	snap := stats.Snapshot()
	if snap.Count != 5 {
		t.Fatalf("expected count=5, got %d", snap.Count)
	}
	if snap.MinMs != 100 {
		t.Fatalf("expected min=100, got %d", snap.MinMs)
	}
	if snap.MaxMs != 500 {
		t.Fatalf("expected max=500, got %d", snap.MaxMs)
	}
	if snap.AvgMs != 300 {
		t.Fatalf("expected avg=300, got %f", snap.AvgMs)
	}
	if snap.P50Ms != 300 {
		t.Fatalf("expected p50=300, got %f", snap.P50Ms)
	}
	if snap.P95Ms != 480 {
		t.Fatalf("expected p95=480, got %f", snap.P95Ms)
	}
	if snap.P99Ms != 496 {
		t.Fatalf("expected p99=496, got %f", snap.P99Ms)
	}
}

func TestLatencyPrunesExpiredSamples(t *testing.T) {
	stats := NewLatency(10 * time.Millisecond)
	stats.Record(100*time.Millisecond, nil)
	time.Sleep(25 * time.Millisecond)

	snap := stats.Snapshot()
	if snap.Count != 0 {
		t.Fatalf("expected count=0 after prune, got %d", snap.Count)
	}
	if snap.Parsed != 1 {
		t.Fatalf("expected lifetime parsed=1 to survive pruning, got %d", snap.Parsed)
	}

	stats.Record(200*time.Millisecond, nil)
	snap = stats.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected count=1 for fresh sample, got %d", snap.Count)
	}
	if snap.MinMs != 200 || snap.MaxMs != 200 {
		t.Fatalf("expected min=max=200, got min=%d max=%d", snap.MinMs, snap.MaxMs)
	}
}

func TestLatencyRecordClampsNegativeDuration(t *testing.T) {
	stats := NewLatency(time.Hour)
	stats.Record(-10*time.Millisecond, nil)
	snap := stats.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected count=1, got %d", snap.Count)
	}
	if snap.MinMs != 0 || snap.MaxMs != 0 {
		t.Fatalf("expected clamped duration=0, got min=%d max=%d", snap.MinMs, snap.MaxMs)
	}
}

func TestLatencyFailuresNotSampled(t *testing.T) {
	stats := NewLatency(time.Hour)
	stats.Record(50*time.Millisecond, errors.New("document unreadable"))
	stats.Record(70*time.Millisecond, nil)

	snap := stats.Snapshot()
	if snap.Failed != 1 || snap.Parsed != 1 {
		t.Fatalf("expected parsed=1 failed=1, got parsed=%d failed=%d", snap.Parsed, snap.Failed)
	}
	if snap.Count != 1 || snap.MinMs != 70 {
		t.Fatalf("expected only the successful sample, got count=%d min=%d", snap.Count, snap.MinMs)
	}
}
