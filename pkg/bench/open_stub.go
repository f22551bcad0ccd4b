//go:build !linux
// +build !linux

package bench

import "os"

func openScratchFile(path string, direct bool) (scratchFile, error) {
	if direct {
		return nil, ErrDirectUnsupported
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	return f, nil
}
