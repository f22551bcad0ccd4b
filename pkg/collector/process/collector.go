package process

import (
	"context"
	"fmt"
	"time"

	gopsprocess "github.com/shirou/gopsutil/v3/process"

	"github.com/jailop/syssnapshot/pkg/types"
)

// DefaultSettle is how long the collector waits between the two CPU reads.
const DefaultSettle = 200 * time.Millisecond

// handle is the part of a gopsutil process the collector reads.
type handle interface {
	PercentWithContext(ctx context.Context, interval time.Duration) (float64, error)
	NameWithContext(ctx context.Context) (string, error)
	MemoryInfoWithContext(ctx context.Context) (*gopsprocess.MemoryInfoStat, error)
}

type entry struct {
	pid  int32
	proc handle
}

// listProcesses and sleep allow tests to replace the live process table and the settle wait.
var (
	listProcesses = func(ctx context.Context) ([]entry, error) {
		procs, err := gopsprocess.ProcessesWithContext(ctx)
		if err != nil {
			return nil, err
		}
		entries := make([]entry, len(procs))
		for i, p := range procs {
			entries[i] = entry{pid: p.Pid, proc: p}
		}
		return entries, nil
	}
	sleep = func(ctx context.Context, d time.Duration) error {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}
)

// Collector captures the process table as immutable samples.
type Collector struct {
	settle time.Duration
}

// NewCollector returns a collector that waits settle between CPU reads.
// Non-positive values fall back to DefaultSettle.
func NewCollector(settle time.Duration) *Collector {
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Collector{settle: settle}
}

// Snapshot primes every process's CPU counter, waits for the settle window and
// reads usage, resident memory and name. Processes that exit mid-window are skipped.
func (c *Collector) Snapshot(ctx context.Context) ([]types.ProcessSample, error) {
	entries, err := listProcesses(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing processes: %w", err)
	}

	live := entries[:0]
	for _, e := range entries {
		if _, err := e.proc.PercentWithContext(ctx, 0); err != nil {
			continue
		}
		live = append(live, e)
	}

	if err := sleep(ctx, c.settle); err != nil {
		return nil, fmt.Errorf("waiting for cpu counters: %w", err)
	}

	names := make(map[int32]string)
	samples := make([]types.ProcessSample, 0, len(live))
	for _, e := range live {
		usage, err := e.proc.PercentWithContext(ctx, 0)
		if err != nil {
			continue
		}
		var rss uint64
		if info, err := e.proc.MemoryInfoWithContext(ctx); err == nil && info != nil {
			rss = info.RSS
		}
		name, err := e.proc.NameWithContext(ctx)
		if err != nil || name == "" {
			name = commForPID(e.pid, names)
		}
		samples = append(samples, types.ProcessSample{
			PID:         e.pid,
			Name:        name,
			CPUUsage:    usage,
			MemoryUsage: rss,
		})
	}
	return samples, nil
}
