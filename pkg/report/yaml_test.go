package report

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/jailop/syssnapshot/pkg/types"
)

func TestRenderYAMLRoundTripsKeyFields(t *testing.T) {
	snap := types.Snapshot{
		System:    types.SystemInfo{Name: "Ubuntu", KernelVersion: "6.8.0", Hostname: "box"},
		Processes: []types.ProcessSample{{PID: 42, Name: "postgres", CPUUsage: 12.5, MemoryUsage: 2048}},
	}

	var buf bytes.Buffer
	if err := RenderYAML(&buf, snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid yaml: %v\n%s", err, buf.String())
	}
	if _, ok := decoded["disk_throughput"]; ok {
		t.Fatalf("nil throughput should be omitted:\n%s", buf.String())
	}
	if _, ok := decoded["errors"]; ok {
		t.Fatalf("empty error map should be omitted:\n%s", buf.String())
	}
	procs, ok := decoded["top_processes"].([]any)
	if !ok || len(procs) != 1 {
		t.Fatalf("expected one process row, got %#v", decoded["top_processes"])
	}
	row := procs[0].(map[string]any)
	if row["name"] != "postgres" || row["pid"] != 42 {
		t.Fatalf("unexpected process row: %#v", row)
	}
}

func TestRenderYAMLIncludesFailures(t *testing.T) {
	var snap types.Snapshot
	snap.BenchmarkError = "create temp_file.bin: permission denied"
	snap.Errors = map[string]string{types.SectionDisks: "no mounts"}

	var buf bytes.Buffer
	if err := RenderYAML(&buf, snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"disk_throughput_error:", "permission denied", "no mounts"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Fatalf("yaml missing %q:\n%s", want, buf.String())
		}
	}
}
