package process

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// procReadFile allows tests to stub reading /proc/PID/comm.
var procReadFile = os.ReadFile

// commForPID is the name fallback when the process library cannot resolve one.
func commForPID(pid int32, cache map[int32]string) string {
	if pid == 0 {
		return "idle"
	}
	if name, ok := cache[pid]; ok {
		return name
	}
	path := filepath.Join("/proc", strconv.FormatInt(int64(pid), 10), "comm")
	data, err := procReadFile(path)
	if err != nil {
		name := fmt.Sprintf("pid-%d", pid)
		cache[pid] = name
		return name
	}
	comm := strings.TrimSpace(string(data))
	if comm == "" {
		comm = fmt.Sprintf("pid-%d", pid)
	}
	cache[pid] = comm
	return comm
}
