package report

import (
	"math"
	"strings"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	cases := []struct {
		value    uint64
		expected string
	}{
		{0, "0.00 bytes"},
		{1023, "1023.00 bytes"},
		{1024, "1.00 KB"},
		{10000, "9.77 KB"},
		{100006688, "95.37 MB"},
		{1 << 30, "1.00 GB"},
		{1 << 40, "1.00 TB"},
		{1 << 50, "1.00 PB"},
	}
	for _, tc := range cases {
		if got := FormatBytes(tc.value); got != tc.expected {
			t.Fatalf("FormatBytes(%d) = %q, want %q", tc.value, got, tc.expected)
		}
	}
}

func TestFormatBytesStopsAtPetabytes(t *testing.T) {
	got := FormatBytes(math.MaxUint64)
	if !strings.HasSuffix(got, " PB") {
		t.Fatalf("expected PB suffix, got %q", got)
	}
	if !strings.HasPrefix(got, "16384.00") {
		t.Fatalf("expected 16384.00 PB, got %q", got)
	}
}
