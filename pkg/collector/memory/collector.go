package memory

import (
	"context"
	"fmt"
	"log"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/jailop/syssnapshot/pkg/types"
)

// virtualMemory and swapMemory allow tests to stub gopsutil.
var (
	virtualMemory = mem.VirtualMemoryWithContext
	swapMemory    = mem.SwapMemoryWithContext
)

// Collector reads physical memory and swap counters.
type Collector struct{}

// NewCollector returns a memory collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Snapshot returns total and used memory and swap. A swap read failure is logged
// and reported as no swap.
func (c *Collector) Snapshot(ctx context.Context) (types.MemStat, error) {
	vm, err := virtualMemory(ctx)
	if err != nil {
		return types.MemStat{}, fmt.Errorf("reading virtual memory: %w", err)
	}
	stat := types.MemStat{Total: vm.Total, Used: vm.Used}

	swap, err := swapMemory(ctx)
	if err != nil {
		log.Printf("swap counters unavailable: %v", err)
		return stat, nil
	}
	stat.SwapTotal = swap.Total
	stat.SwapUsed = swap.Used
	return stat, nil
}
