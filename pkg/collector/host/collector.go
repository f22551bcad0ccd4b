package host

import (
	"context"
	"fmt"
	"os"

	gopshost "github.com/shirou/gopsutil/v3/host"

	"github.com/jailop/syssnapshot/pkg/types"
)

// hostInfo, uname and hostname allow tests to stub OS lookups.
var (
	hostInfo = gopshost.InfoWithContext
	uname    = unameInfo
	hostname = os.Hostname
)

// Collector reads the host's identity.
type Collector struct{}

// NewCollector returns a host identity collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Snapshot returns the OS name, kernel release and hostname. Fields the process
// library leaves empty are filled from uname(2), then os.Hostname. It only fails
// when every source came back empty.
func (c *Collector) Snapshot(ctx context.Context) (types.SystemInfo, error) {
	var sys types.SystemInfo
	info, infoErr := hostInfo(ctx)
	if infoErr == nil && info != nil {
		sys.Name = info.Platform
		if sys.Name == "" {
			sys.Name = info.OS
		}
		sys.KernelVersion = info.KernelVersion
		sys.Hostname = info.Hostname
	}

	if sys.Name == "" || sys.KernelVersion == "" || sys.Hostname == "" {
		if fallback, err := uname(); err == nil {
			fill(&sys.Name, fallback.Name)
			fill(&sys.KernelVersion, fallback.KernelVersion)
			fill(&sys.Hostname, fallback.Hostname)
		}
	}
	if sys.Hostname == "" {
		if name, err := hostname(); err == nil {
			sys.Hostname = name
		}
	}

	if sys == (types.SystemInfo{}) {
		if infoErr == nil {
			infoErr = errEmpty
		}
		return sys, fmt.Errorf("reading host info: %w", infoErr)
	}
	return sys, nil
}

func fill(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
