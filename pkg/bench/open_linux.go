//go:build linux
// +build linux

package bench

import (
	"os"

	"golang.org/x/sys/unix"
)

func openScratchFile(path string, direct bool) (scratchFile, error) {
	flags := os.O_RDWR | os.O_CREATE | os.O_TRUNC
	if direct {
		flags |= unix.O_DIRECT
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, err
	}
	return f, nil
}
