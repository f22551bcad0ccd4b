package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jailop/syssnapshot/pkg/bench"
	"github.com/jailop/syssnapshot/pkg/collector/cpu"
	"github.com/jailop/syssnapshot/pkg/collector/disk"
	"github.com/jailop/syssnapshot/pkg/collector/host"
	"github.com/jailop/syssnapshot/pkg/collector/memory"
	"github.com/jailop/syssnapshot/pkg/collector/network"
	"github.com/jailop/syssnapshot/pkg/collector/process"
	"github.com/jailop/syssnapshot/pkg/report"
	"github.com/jailop/syssnapshot/pkg/types"
	"github.com/jailop/syssnapshot/pkg/ui"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type runConfig struct {
	topK       int
	settle     time.Duration
	hideKernel bool
	scratch    string
	benchSize  int64
	writeChunk int64
	readChunk  int64
	direct     bool
	skipBench  bool
	format     string
	noColor    bool
	banner     bool
}

func parseConfig(args []string, output io.Writer) (runConfig, error) {
	var cfg runConfig
	flagSet := pflag.NewFlagSet("syssnapshot", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.IntVar(&cfg.topK, "top", types.DefaultTopK, "number of processes in the top-process table")
	flagSet.DurationVar(&cfg.settle, "settle", process.DefaultSettle, "wait between the two CPU reads (e.g. 200ms, 1s)")
	flagSet.BoolVar(&cfg.hideKernel, "hide-kernel", false, "leave kernel threads such as kworker and ksoftirqd out of the ranking")
	flagSet.StringVar(&cfg.scratch, "scratch", bench.DefaultScratchName, "scratch file used by the disk benchmark")
	flagSet.Int64Var(&cfg.benchSize, "bench-size", bench.DefaultTotalBytes, "bytes to write during the disk benchmark")
	flagSet.Int64Var(&cfg.writeChunk, "write-chunk", bench.DefaultWriteChunk, "disk benchmark write size in bytes")
	flagSet.Int64Var(&cfg.readChunk, "read-chunk", bench.DefaultReadChunk, "disk benchmark read size in bytes")
	flagSet.BoolVar(&cfg.direct, "direct", false, "bypass the page cache during the disk benchmark (Linux, 4096-byte multiples)")
	flagSet.BoolVar(&cfg.skipBench, "skip-bench", false, "do not run the disk benchmark")
	flagSet.StringVar(&cfg.format, "format", formatText, "output format: text or yaml")
	flagSet.BoolVar(&cfg.noColor, "no-color", false, "never colour section headers")
	flagSet.BoolVar(&cfg.banner, "banner", false, "print the program banner before the report")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		return cfg, err
	}
	if help, _ := flagSet.GetBool("help"); help {
		flagSet.PrintDefaults()
		return cfg, pflag.ErrHelp
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return cfg, fmt.Errorf("unexpected argument: %s", rest[0])
	}

	switch {
	case cfg.topK < 0:
		return cfg, fmt.Errorf("--top must not be negative, got %d", cfg.topK)
	case cfg.settle <= 0:
		return cfg, fmt.Errorf("--settle must be positive, got %v", cfg.settle)
	case cfg.benchSize <= 0 || cfg.writeChunk <= 0 || cfg.readChunk <= 0:
		return cfg, fmt.Errorf("benchmark sizes must be positive")
	case cfg.format != formatText && cfg.format != formatYAML:
		return cfg, fmt.Errorf("unknown --format %q (want text or yaml)", cfg.format)
	}
	return cfg, nil
}

// sources are the collaborators one snapshot is gathered from.
type sources struct {
	host       func(context.Context) (types.SystemInfo, error)
	cpu        func(context.Context) (types.CPUReport, error)
	memory     func(context.Context) (types.MemStat, error)
	processes  func(context.Context) ([]types.ProcessSample, error)
	disks      func(context.Context) ([]types.DiskStat, error)
	interfaces func(context.Context) ([]types.NetInterface, error)
	benchmark  func() (types.ThroughputResult, error)
}

func liveSources(cfg runConfig) sources {
	var opts []bench.Option
	if cfg.direct {
		opts = append(opts, bench.WithDirectIO())
	}
	return sources{
		host:       host.NewCollector().Snapshot,
		cpu:        cpu.NewCollector(cfg.settle).Snapshot,
		memory:     memory.NewCollector().Snapshot,
		processes:  process.NewCollector(cfg.settle).Snapshot,
		disks:      disk.NewCollector().Snapshot,
		interfaces: network.NewCollector().Snapshot,
		benchmark: func() (types.ThroughputResult, error) {
			return bench.MeasureDiskThroughput(cfg.scratch, cfg.benchSize, cfg.writeChunk, cfg.readChunk, opts...)
		},
	}
}

// collect runs every section in report order. Failures are logged and recorded
// on the snapshot; none of them stop the remaining sections.
func collect(ctx context.Context, cfg runConfig, src sources) types.Snapshot {
	var snap types.Snapshot
	var err error

	if snap.System, err = src.host(ctx); err != nil {
		log.Printf("host info failed: %v", err)
		snap.Fail(types.SectionSystem, err)
	}
	if snap.CPU, err = src.cpu(ctx); err != nil {
		log.Printf("cpu sampling failed: %v", err)
		snap.Fail(types.SectionCPU, err)
	}
	if snap.Memory, err = src.memory(ctx); err != nil {
		log.Printf("memory sampling failed: %v", err)
		snap.Fail(types.SectionMemory, err)
	}

	procs, err := src.processes(ctx)
	if err != nil {
		log.Printf("process snapshot failed: %v", err)
		snap.Fail(types.SectionProcesses, err)
	} else {
		procs = report.FilterSamples(procs, report.FilterConfig{HideKernel: cfg.hideKernel})
		snap.Processes = report.RankTop(procs, cfg.topK)
	}

	if snap.Disks, err = src.disks(ctx); err != nil {
		log.Printf("disk listing failed: %v", err)
		snap.Fail(types.SectionDisks, err)
	}

	if !cfg.skipBench {
		res, err := src.benchmark()
		if err != nil {
			log.Printf("disk benchmark skipped: %v", err)
			snap.BenchmarkError = err.Error()
		} else {
			snap.Throughput = &res
		}
	}

	if snap.Interfaces, err = src.interfaces(ctx); err != nil {
		log.Printf("interface listing failed: %v", err)
		snap.Fail(types.SectionInterfaces, err)
	}
	return snap
}

func render(w io.Writer, snap types.Snapshot, cfg runConfig, color bool) error {
	var buf bytes.Buffer
	if cfg.format == formatYAML {
		if err := report.RenderYAML(&buf, snap); err != nil {
			return err
		}
	} else {
		styler := ui.NewStyler(&buf, color)
		if cfg.banner {
			buf.WriteString(styler.Banner())
			buf.WriteString("\n")
		}
		report.Render(&buf, snap, styler.Header)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func colorEnabled(cfg runConfig) bool {
	if cfg.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func run() int {
	log.SetFlags(0)
	log.SetPrefix("syssnapshot: ")

	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snap := collect(ctx, cfg, liveSources(cfg))
	if err := render(os.Stdout, snap, cfg, colorEnabled(cfg)); err != nil {
		log.Printf("writing report failed: %v", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
