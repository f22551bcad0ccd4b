//go:build !linux
// +build !linux

package host

import (
	"errors"

	"github.com/jailop/syssnapshot/pkg/types"
)

var (
	errEmpty       = errors.New("no host identity available")
	errUnsupported = errors.New("uname fallback requires linux")
)

// unameInfo is unavailable on non-Linux platforms.
func unameInfo() (types.SystemInfo, error) {
	return types.SystemInfo{}, errUnsupported
}
