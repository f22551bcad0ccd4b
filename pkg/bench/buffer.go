package bench

import "unsafe"

// newBuffer returns a zeroed buffer of size bytes. Direct I/O buffers start on a
// directAlignment boundary.
func newBuffer(size int64, aligned bool) []byte {
	if !aligned {
		return make([]byte, size)
	}
	raw := make([]byte, size+directAlignment)
	off := int(uintptr(unsafe.Pointer(&raw[0])) & (directAlignment - 1))
	if off != 0 {
		off = directAlignment - off
	}
	return raw[off : off+int(size)]
}
