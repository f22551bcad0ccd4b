package disk

import (
	"context"
	"fmt"

	gopsdisk "github.com/shirou/gopsutil/v3/disk"

	"github.com/jailop/syssnapshot/pkg/types"
)

// partitions and usage allow tests to stub gopsutil.
var (
	partitions = gopsdisk.PartitionsWithContext
	usage      = gopsdisk.UsageWithContext
)

// Collector lists mounted physical filesystems with their size and free space.
type Collector struct{}

// NewCollector returns a disk collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Snapshot returns one row per mounted partition. Mounts whose usage cannot be
// read (stale network mounts, permission errors) are left out.
func (c *Collector) Snapshot(ctx context.Context) ([]types.DiskStat, error) {
	parts, err := partitions(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listing partitions: %w", err)
	}

	stats := make([]types.DiskStat, 0, len(parts))
	for _, part := range parts {
		u, err := usage(ctx, part.Mountpoint)
		if err != nil {
			continue
		}
		stats = append(stats, types.DiskStat{
			Name:       part.Device,
			MountPoint: part.Mountpoint,
			FileSystem: part.Fstype,
			Total:      u.Total,
			Available:  u.Free,
		})
	}
	return stats, nil
}
