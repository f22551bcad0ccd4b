//go:build linux

package host

import "testing"

func TestCStr(t *testing.T) {
	cases := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"noNull", []byte{'a', 'b'}, "ab"},
		{"withNull", []byte{'a', 'b', 0, 'c'}, "ab"},
		{"empty", []byte{0, 0}, ""},
	}
	for _, tc := range cases {
		if got := cStr(tc.input); got != tc.expected {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.expected, got)
		}
	}
}

func TestUnameInfoReportsLinux(t *testing.T) {
	sys, err := unameInfo()
	if err != nil {
		t.Fatalf("uname failed: %v", err)
	}
	if sys.Name != "Linux" {
		t.Fatalf("expected Linux sysname, got %q", sys.Name)
	}
	if sys.KernelVersion == "" {
		t.Fatalf("expected kernel release")
	}
}
