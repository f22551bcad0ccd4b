//go:build linux
// +build linux

package host

import (
	"bytes"
	"errors"

	"golang.org/x/sys/unix"

	"github.com/jailop/syssnapshot/pkg/types"
)

var errEmpty = errors.New("no host identity available")

// unameInfo reads the identity straight from uname(2).
func unameInfo() (types.SystemInfo, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return types.SystemInfo{}, err
	}
	return types.SystemInfo{
		Name:          cStr(uts.Sysname[:]),
		KernelVersion: cStr(uts.Release[:]),
		Hostname:      cStr(uts.Nodename[:]),
	}, nil
}

func cStr(b []byte) string {
	n := bytes.IndexByte(b, 0)
	if n == -1 {
		return string(b)
	}
	return string(b[:n])
}
