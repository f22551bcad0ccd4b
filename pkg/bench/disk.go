package bench

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jailop/syssnapshot/pkg/types"
)

// MiB is the megabyte used for throughput rates, matching report.FormatBytes.
const MiB = 1024 * 1024

// Defaults used by the report when no flags override them.
const (
	DefaultTotalBytes  = 100 * MiB
	DefaultWriteChunk  = 1024
	DefaultReadChunk   = 255
	DefaultScratchName = "temp_file.bin"
)

// directAlignment is the block size O_DIRECT transfers must be multiples of.
const directAlignment = 4096

var (
	// ErrInvalidSize is returned when the total or a chunk size is not positive.
	ErrInvalidSize = errors.New("benchmark sizes must be positive")
	// ErrDirectAlignment is returned when direct I/O is requested with unaligned chunk sizes.
	ErrDirectAlignment = fmt.Errorf("direct I/O needs chunk sizes that are multiples of %d", directAlignment)
	// ErrDirectUnsupported is returned when direct I/O is requested on a platform without O_DIRECT.
	ErrDirectUnsupported = errors.New("direct I/O is not supported on this platform")
)

// Phase names the step of the benchmark that failed.
type Phase string

const (
	PhaseCreate Phase = "create"
	PhaseWrite  Phase = "write"
	PhaseSync   Phase = "sync"
	PhaseSeek   Phase = "seek"
	PhaseRead   Phase = "read"
	PhaseClose  Phase = "close"
	PhaseRemove Phase = "remove"
)

// PhaseError reports an I/O failure on the scratch file.
type PhaseError struct {
	Phase Phase
	Path  string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("disk benchmark %s %s: %v", e.Phase, e.Path, e.Err)
}

func (e *PhaseError) Unwrap() error { return e.Err }

// scratchFile is the subset of *os.File the benchmark drives.
type scratchFile interface {
	io.ReadWriteSeeker
	Sync() error
	Close() error
}

// openScratch and removeFile allow tests to inject filesystem failures.
var (
	openScratch = openScratchFile
	removeFile  = os.Remove
)

type options struct {
	direct bool
	now    func() time.Time
}

// Option tunes a benchmark run.
type Option func(*options)

// WithDirectIO opens the scratch file bypassing the page cache where the platform allows it.
func WithDirectIO() Option {
	return func(o *options) { o.direct = true }
}

// WithClock replaces the wall clock used to time both phases.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// MeasureDiskThroughput writes ceil(totalBytes/writeChunk) zeroed chunks to path, fsyncs,
// reads the file back in readChunk pieces until EOF and deletes it. The written byte count
// is rounded up to whole chunks. The scratch file is removed on every path out.
func MeasureDiskThroughput(path string, totalBytes, writeChunk, readChunk int64, opts ...Option) (types.ThroughputResult, error) {
	if totalBytes <= 0 || writeChunk <= 0 || readChunk <= 0 {
		return types.ThroughputResult{}, ErrInvalidSize
	}
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.direct && (writeChunk%directAlignment != 0 || readChunk%directAlignment != 0) {
		return types.ThroughputResult{}, ErrDirectAlignment
	}

	f, err := openScratch(path, o.direct)
	if err != nil {
		return types.ThroughputResult{}, &PhaseError{Phase: PhaseCreate, Path: path, Err: err}
	}

	res, err := measure(f, path, totalBytes, writeChunk, readChunk, o)
	if err != nil {
		return types.ThroughputResult{}, errors.Join(err, discard(f, path))
	}

	if err := f.Close(); err != nil {
		_ = removeFile(path)
		return types.ThroughputResult{}, &PhaseError{Phase: PhaseClose, Path: path, Err: err}
	}
	if err := removeFile(path); err != nil {
		return types.ThroughputResult{}, &PhaseError{Phase: PhaseRemove, Path: path, Err: err}
	}
	return res, nil
}

func measure(f scratchFile, path string, totalBytes, writeChunk, readChunk int64, o options) (types.ThroughputResult, error) {
	var res types.ThroughputResult
	chunks := (totalBytes + writeChunk - 1) / writeChunk

	buf := newBuffer(writeChunk, o.direct)
	start := o.now()
	for i := int64(0); i < chunks; i++ {
		n, err := f.Write(buf)
		res.BytesWritten += int64(n)
		if err != nil {
			return res, &PhaseError{Phase: PhaseWrite, Path: path, Err: err}
		}
		res.Writes++
	}
	if err := f.Sync(); err != nil {
		return res, &PhaseError{Phase: PhaseSync, Path: path, Err: err}
	}
	writeElapsed := elapsed(start, o.now())

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return res, &PhaseError{Phase: PhaseSeek, Path: path, Err: err}
	}

	buf = newBuffer(readChunk, o.direct)
	start = o.now()
	for {
		n, err := f.Read(buf)
		res.BytesRead += int64(n)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, &PhaseError{Phase: PhaseRead, Path: path, Err: err}
		}
		if n == 0 {
			break
		}
	}
	readElapsed := elapsed(start, o.now())

	res.WriteSeconds = writeElapsed.Seconds()
	res.ReadSeconds = readElapsed.Seconds()
	res.WriteMBps = float64(res.BytesWritten) / MiB / res.WriteSeconds
	res.ReadMBps = float64(res.BytesRead) / MiB / res.ReadSeconds
	return res, nil
}

// elapsed never reports less than a nanosecond so rates stay finite.
func elapsed(start, end time.Time) time.Duration {
	d := end.Sub(start)
	if d < time.Nanosecond {
		return time.Nanosecond
	}
	return d
}

// discard closes and removes the scratch file after a failed run.
func discard(f scratchFile, path string) error {
	var err error
	if cerr := f.Close(); cerr != nil {
		err = &PhaseError{Phase: PhaseClose, Path: path, Err: cerr}
	}
	if rerr := removeFile(path); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
		err = errors.Join(err, &PhaseError{Phase: PhaseRemove, Path: path, Err: rerr})
	}
	return err
}
