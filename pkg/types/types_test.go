package types

import (
	"errors"
	"testing"
)

func TestPercentHelpersGuardZeroTotals(t *testing.T) {
	if got := (MemStat{}).UsedPercent(); got != 0 {
		t.Fatalf("expected 0 for unknown total, got %v", got)
	}
	if got := (MemStat{SwapUsed: 5}).SwapUsedPercent(); got != 0 {
		t.Fatalf("expected 0 without swap, got %v", got)
	}
	if got := (DiskStat{Total: 200, Available: 50}).AvailablePercent(); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
}

func TestSnapshotFail(t *testing.T) {
	var snap Snapshot
	snap.Fail(SectionCPU, nil)
	if snap.Errors != nil {
		t.Fatalf("nil error should not allocate: %v", snap.Errors)
	}
	snap.Fail(SectionCPU, errors.New("boom"))
	if snap.Errors[SectionCPU] != "boom" {
		t.Fatalf("expected recorded failure, got %v", snap.Errors)
	}
}
