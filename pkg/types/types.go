package types

// DefaultTopK controls how many processes the top-process table shows.
const DefaultTopK = 10

// ProcessSample is one row of the process table captured during a sampling pass.
type ProcessSample struct {
	PID         int32   `yaml:"pid"`
	Name        string  `yaml:"name"`
	CPUUsage    float64 `yaml:"cpu_usage"`    // percent, up to 100 * cores
	MemoryUsage uint64  `yaml:"memory_usage"` // resident bytes
}

// ThroughputResult holds the timings of one sequential write/read pass over a scratch file.
type ThroughputResult struct {
	BytesWritten int64   `yaml:"bytes_written"`
	BytesRead    int64   `yaml:"bytes_read"`
	Writes       int     `yaml:"writes"`
	WriteSeconds float64 `yaml:"write_seconds"`
	ReadSeconds  float64 `yaml:"read_seconds"`
	WriteMBps    float64 `yaml:"write_mbps"`
	ReadMBps     float64 `yaml:"read_mbps"`
}

// SystemInfo identifies the host.
type SystemInfo struct {
	Name          string `yaml:"name"`
	KernelVersion string `yaml:"kernel_version"`
	Hostname      string `yaml:"hostname"`
}

// CPUStat is the utilisation of a single logical CPU over the settle window.
type CPUStat struct {
	Index int     `yaml:"index"`
	Usage float64 `yaml:"usage"`
}

// CPUReport holds per-core utilisation and their mean.
type CPUReport struct {
	Cores   []CPUStat `yaml:"cores"`
	Average float64   `yaml:"average"`
}

// MemStat describes physical memory and swap in bytes.
type MemStat struct {
	Total     uint64 `yaml:"total"`
	Used      uint64 `yaml:"used"`
	SwapTotal uint64 `yaml:"swap_total"`
	SwapUsed  uint64 `yaml:"swap_used"`
}

// UsedPercent returns used memory as a percentage of total, or 0 when total is unknown.
func (m MemStat) UsedPercent() float64 {
	return percent(m.Used, m.Total)
}

// SwapUsedPercent returns used swap as a percentage of total swap, or 0 without swap.
func (m MemStat) SwapUsedPercent() float64 {
	return percent(m.SwapUsed, m.SwapTotal)
}

// DiskStat describes one mounted filesystem.
type DiskStat struct {
	Name       string `yaml:"name"`
	MountPoint string `yaml:"mount_point"`
	FileSystem string `yaml:"file_system"`
	Total      uint64 `yaml:"total"`
	Available  uint64 `yaml:"available"`
}

// AvailablePercent returns available space as a percentage of the filesystem size.
func (d DiskStat) AvailablePercent() float64 {
	return percent(d.Available, d.Total)
}

// NetInterface lists the addresses bound to a network interface.
type NetInterface struct {
	Name      string   `yaml:"name"`
	Addresses []string `yaml:"addresses"`
}

// Snapshot is everything one invocation gathers, in report order.
type Snapshot struct {
	System         SystemInfo        `yaml:"system"`
	CPU            CPUReport         `yaml:"cpu"`
	Memory         MemStat           `yaml:"memory"`
	Processes      []ProcessSample   `yaml:"top_processes"`
	Disks          []DiskStat        `yaml:"disks"`
	Throughput     *ThroughputResult `yaml:"disk_throughput,omitempty"`
	BenchmarkError string            `yaml:"disk_throughput_error,omitempty"`
	Interfaces     []NetInterface    `yaml:"network_interfaces"`

	// Errors maps a section key to the reason its collector failed.
	Errors map[string]string `yaml:"errors,omitempty"`
}

// Section keys used in Snapshot.Errors.
const (
	SectionSystem     = "system"
	SectionCPU        = "cpu"
	SectionMemory     = "memory"
	SectionProcesses  = "processes"
	SectionDisks      = "disks"
	SectionInterfaces = "interfaces"
)

// Fail records a collector failure for section.
func (s *Snapshot) Fail(section string, err error) {
	if err == nil {
		return
	}
	if s.Errors == nil {
		s.Errors = make(map[string]string)
	}
	s.Errors[section] = err.Error()
}

func percent(part, whole uint64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
