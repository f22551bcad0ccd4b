package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jailop/syssnapshot/pkg/types"
)

// Section titles in report order.
const (
	TitleCPU        = "CPU USAGE:"
	TitleMemory     = "MEMORY USAGE:"
	TitleProcesses  = "TOP PROCESSES:"
	TitleDisks      = "DISK USAGE:"
	TitleInterfaces = "NETWORK INTERFACES:"
)

// WriteSystem prints the host identity block.
func WriteSystem(w io.Writer, info types.SystemInfo) {
	fmt.Fprintf(w, "System name   : %s\n", info.Name)
	fmt.Fprintf(w, "Kernel version: %s\n", info.KernelVersion)
	fmt.Fprintf(w, "Hostname      : %q\n", info.Hostname)
}

// WriteCPU prints one line per logical CPU followed by the average.
func WriteCPU(w io.Writer, cpu types.CPUReport) {
	for _, core := range cpu.Cores {
		fmt.Fprintf(w, "CPU%2d  : %5.1f%%\n", core.Index, core.Usage)
	}
	fmt.Fprintf(w, "Average: %5.1f%%\n", cpu.Average)
}

// WriteMemory prints physical memory and swap usage.
func WriteMemory(w io.Writer, mem types.MemStat) {
	fmt.Fprintf(w, "Total memory   : %s\n", FormatBytes(mem.Total))
	fmt.Fprintf(w, "Used memory    : %s\n", FormatBytes(mem.Used))
	fmt.Fprintf(w, "Used memory (%%): %.1f%%\n", mem.UsedPercent())
	fmt.Fprintf(w, "Total swap     : %s\n", FormatBytes(mem.SwapTotal))
	fmt.Fprintf(w, "Used swap      : %s\n", FormatBytes(mem.SwapUsed))
	fmt.Fprintf(w, "Used swap (%%)  : %.1f%%\n", mem.SwapUsedPercent())
}

// WriteProcesses prints an already ranked process list.
func WriteProcesses(w io.Writer, procs []types.ProcessSample) {
	fmt.Fprintf(w, "%8s %-40s %10s %-10s\n", "PID", "Name", "CPU (%)", "Memory")
	for _, p := range procs {
		fmt.Fprintf(w, "%8d %-40s %9.1f%% %10s\n", p.PID, p.Name, p.CPUUsage, FormatBytes(p.MemoryUsage))
	}
}

// WriteDisks prints the mounted filesystem table.
func WriteDisks(w io.Writer, disks []types.DiskStat) {
	fmt.Fprintf(w, "%-20s %-20s %-6s %-10s %-12s %-8s\n", "Name", "Mount", "Format", "Total", "Available", "Avail (%)")
	for _, d := range disks {
		fmt.Fprintf(w, "%-20s %-20s %-6s %-10s %12s %.1f%%\n",
			d.Name, d.MountPoint, d.FileSystem, FormatBytes(d.Total), FormatBytes(d.Available), d.AvailablePercent())
	}
}

// WriteThroughput prints the disk benchmark rates.
func WriteThroughput(w io.Writer, res types.ThroughputResult) {
	fmt.Fprintf(w, "Write speed: %.1f MB/s\n", res.WriteMBps)
	fmt.Fprintf(w, "Read speed : %.1f MB/s\n", res.ReadMBps)
}

// WriteInterfaces prints each interface with its comma separated addresses.
func WriteInterfaces(w io.Writer, ifaces []types.NetInterface) {
	fmt.Fprintf(w, "%-12s %s\n", "Name", "Addresses")
	for _, iface := range ifaces {
		fmt.Fprintf(w, "%-12s %s\n", iface.Name, strings.Join(iface.Addresses, ", "))
	}
}

// Unavailable prints the placeholder used when a section's collector failed.
func Unavailable(w io.Writer, reason string) {
	fmt.Fprintf(w, "unavailable: %s\n", reason)
}

// Render writes the whole snapshot as text. style decorates section titles and may be nil.
// A failed benchmark prints nothing; a failed collector prints a placeholder in its section.
func Render(w io.Writer, snap types.Snapshot, style func(string) string) {
	if style == nil {
		style = func(title string) string { return title }
	}
	header := func(title string) {
		fmt.Fprintf(w, "\n%s\n\n", style(title))
	}
	section := func(key string, write func()) {
		if reason, failed := snap.Errors[key]; failed {
			Unavailable(w, reason)
			return
		}
		write()
	}

	section(types.SectionSystem, func() { WriteSystem(w, snap.System) })
	header(TitleCPU)
	section(types.SectionCPU, func() { WriteCPU(w, snap.CPU) })
	header(TitleMemory)
	section(types.SectionMemory, func() { WriteMemory(w, snap.Memory) })
	header(TitleProcesses)
	section(types.SectionProcesses, func() { WriteProcesses(w, snap.Processes) })
	header(TitleDisks)
	section(types.SectionDisks, func() { WriteDisks(w, snap.Disks) })
	fmt.Fprintln(w)
	if snap.Throughput != nil {
		WriteThroughput(w, *snap.Throughput)
	}
	header(TitleInterfaces)
	section(types.SectionInterfaces, func() { WriteInterfaces(w, snap.Interfaces) })
}
