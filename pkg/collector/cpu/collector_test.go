package cpu

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSnapshotAveragesCores(t *testing.T) {
	t.Cleanup(func() { percentPerCore = defaultPercentPerCore })
	var window time.Duration
	percentPerCore = func(ctx context.Context, w time.Duration) ([]float64, error) {
		window = w
		return []float64{10, 20, 60}, nil
	}

	report, err := NewCollector(0).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if window != DefaultSettle {
		t.Fatalf("expected default settle %v, got %v", DefaultSettle, window)
	}
	if len(report.Cores) != 3 || report.Cores[2].Index != 2 || report.Cores[2].Usage != 60 {
		t.Fatalf("unexpected cores: %+v", report.Cores)
	}
	if report.Average != 30 {
		t.Fatalf("expected average 30, got %.2f", report.Average)
	}
}

func TestSnapshotNoCores(t *testing.T) {
	t.Cleanup(func() { percentPerCore = defaultPercentPerCore })
	percentPerCore = func(context.Context, time.Duration) ([]float64, error) { return nil, nil }

	report, err := NewCollector(time.Millisecond).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Average != 0 || len(report.Cores) != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
}

func TestSnapshotWrapsErrors(t *testing.T) {
	t.Cleanup(func() { percentPerCore = defaultPercentPerCore })
	boom := errors.New("boom")
	percentPerCore = func(context.Context, time.Duration) ([]float64, error) { return nil, boom }

	if _, err := NewCollector(time.Millisecond).Snapshot(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}

var defaultPercentPerCore = percentPerCore
