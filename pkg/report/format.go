package report

import "fmt"

var byteUnits = []string{"bytes", "KB", "MB", "GB", "TB", "PB"}

// FormatBytes renders a byte count with two decimals in the largest unit (base 1024)
// that keeps the value below 1024. Values beyond the PB range stay in PB.
func FormatBytes(value uint64) string {
	size := float64(value)
	unit := 0
	for size >= 1024 && unit < len(byteUnits)-1 {
		size /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", size, byteUnits[unit])
}
