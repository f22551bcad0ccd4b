package cpu

import (
	"context"
	"fmt"
	"time"

	gopscpu "github.com/shirou/gopsutil/v3/cpu"

	"github.com/jailop/syssnapshot/pkg/types"
)

// DefaultSettle is the shortest window over which per-core usage is meaningful.
// An instantaneous read reports 0% on most platforms.
const DefaultSettle = 200 * time.Millisecond

// percentPerCore allows tests to stub the gopsutil sampler.
var percentPerCore = func(ctx context.Context, window time.Duration) ([]float64, error) {
	return gopscpu.PercentWithContext(ctx, window, true)
}

// Collector samples per-core CPU utilisation over a settle window.
type Collector struct {
	settle time.Duration
}

// NewCollector returns a collector that blocks for settle on every snapshot.
// Non-positive values fall back to DefaultSettle.
func NewCollector(settle time.Duration) *Collector {
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Collector{settle: settle}
}

// Snapshot measures every logical CPU and their average.
func (c *Collector) Snapshot(ctx context.Context) (types.CPUReport, error) {
	percents, err := percentPerCore(ctx, c.settle)
	if err != nil {
		return types.CPUReport{}, fmt.Errorf("sampling cpu usage: %w", err)
	}

	report := types.CPUReport{Cores: make([]types.CPUStat, len(percents))}
	var sum float64
	for i, usage := range percents {
		report.Cores[i] = types.CPUStat{Index: i, Usage: usage}
		sum += usage
	}
	if len(percents) > 0 {
		report.Average = sum / float64(len(percents))
	}
	return report, nil
}
