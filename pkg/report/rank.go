package report

import (
	"sort"
	"strings"

	"github.com/jailop/syssnapshot/pkg/types"
)

// FilterConfig controls which processes are eligible for the top-process table.
type FilterConfig struct {
	HideKernel bool
}

// RankTop picks the n busiest processes by CPU and returns them heaviest memory first.
// The input slice is not modified. NaN CPU readings compare equal to everything, so
// they keep their input position relative to their neighbours instead of panicking.
func RankTop(samples []types.ProcessSample, n int) []types.ProcessSample {
	byCPU := make([]types.ProcessSample, len(samples))
	copy(byCPU, samples)
	sort.SliceStable(byCPU, func(i, j int) bool { return byCPU[i].CPUUsage > byCPU[j].CPUUsage })

	if n < 0 {
		n = 0
	}
	if n > len(byCPU) {
		n = len(byCPU)
	}

	top := make([]types.ProcessSample, n)
	copy(top, byCPU[:n])
	sort.SliceStable(top, func(i, j int) bool { return top[i].MemoryUsage > top[j].MemoryUsage })
	return top
}

// FilterSamples drops processes hidden by cfg before ranking.
func FilterSamples(samples []types.ProcessSample, cfg FilterConfig) []types.ProcessSample {
	filtered := make([]types.ProcessSample, 0, len(samples))
	for _, sample := range samples {
		if cfg.HideKernel && isKernelThread(sample) {
			continue
		}
		filtered = append(filtered, sample)
	}
	return filtered
}

func isKernelThread(sample types.ProcessSample) bool {
	if sample.PID == 0 {
		return true
	}
	name := strings.ToLower(sample.Name)
	switch {
	case strings.HasPrefix(name, "kworker"), strings.HasPrefix(name, "ksoftirqd"), strings.HasPrefix(name, "kthreadd"),
		strings.HasPrefix(name, "migration"), strings.HasPrefix(name, "watchdog"), strings.HasPrefix(name, "rcu"),
		strings.HasPrefix(name, "irq/"):
		return true
	}
	return false
}
