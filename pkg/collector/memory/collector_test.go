package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v3/mem"
)

func stubMemory(t *testing.T, vm *mem.VirtualMemoryStat, vmErr error, swap *mem.SwapMemoryStat, swapErr error) {
	t.Helper()
	t.Cleanup(func() {
		virtualMemory = mem.VirtualMemoryWithContext
		swapMemory = mem.SwapMemoryWithContext
	})
	virtualMemory = func(context.Context) (*mem.VirtualMemoryStat, error) { return vm, vmErr }
	swapMemory = func(context.Context) (*mem.SwapMemoryStat, error) { return swap, swapErr }
}

func TestSnapshotReadsMemoryAndSwap(t *testing.T) {
	stubMemory(t,
		&mem.VirtualMemoryStat{Total: 8 << 30, Used: 3 << 30}, nil,
		&mem.SwapMemoryStat{Total: 2 << 30, Used: 1 << 30}, nil)

	stat, err := NewCollector().Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stat.Total != 8<<30 || stat.Used != 3<<30 || stat.SwapTotal != 2<<30 || stat.SwapUsed != 1<<30 {
		t.Fatalf("unexpected stat: %+v", stat)
	}
	if stat.SwapUsedPercent() != 50 {
		t.Fatalf("expected 50%% swap, got %.1f", stat.SwapUsedPercent())
	}
}

func TestSnapshotToleratesMissingSwap(t *testing.T) {
	stubMemory(t, &mem.VirtualMemoryStat{Total: 100, Used: 25}, nil, nil, errors.New("no swap"))

	stat, err := NewCollector().Snapshot(context.Background())
	if err != nil {
		t.Fatalf("swap failure should not be fatal: %v", err)
	}
	if stat.SwapTotal != 0 || stat.SwapUsedPercent() != 0 {
		t.Fatalf("expected zero swap, got %+v", stat)
	}
	if stat.UsedPercent() != 25 {
		t.Fatalf("expected 25%% used, got %.1f", stat.UsedPercent())
	}
}

func TestSnapshotFailsWithoutVirtualMemory(t *testing.T) {
	boom := errors.New("boom")
	stubMemory(t, nil, boom, nil, nil)

	if _, err := NewCollector().Snapshot(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
}
