package mapline

import (
	"time"

	"github.com/graphkit/mapline/internal/mmap"
)

// AccessPattern describes the expected access pattern for a mapped
// file. On unix it is forwarded to madvise; elsewhere it is a no-op.
type AccessPattern int

const (
	// AccessDefault leaves kernel paging heuristics untouched.
	AccessDefault AccessPattern = iota
	// AccessSequential hints that the file is read front to back.
	AccessSequential
	// AccessRandom hints at random access, disabling readahead.
	AccessRandom
	// AccessWillNeed hints that the pages will be needed soon.
	AccessWillNeed
	// AccessDontNeed hints that the pages will not be needed soon.
	AccessDontNeed
)

// File is a read-only memory-mapped view of a text file.
//
// The file is mapped in one or more segments whose boundaries fall on
// line breaks, so a single line never straddles two segments and line
// access stays zero-copy. All accessors are safe for concurrent use;
// Close must not race with them.
type File struct {
	inner   *mmap.File
	logger  *Logger
	metrics MetricsCollector
}

// Open maps the regular file at path read-only.
//
// The underlying file descriptor is closed before Open returns; the
// mapping stays valid for the lifetime of the File. Callers must call
// Close to release the mapping.
func Open(path string, optFns ...Option) (*File, error) {
	o := applyOptions(optFns...)
	start := time.Now()

	inner, err := mmap.Open(path, mmap.Options{
		MaxSegmentSize: o.maxSegmentSize,
		Pattern:        mmap.AccessPattern(o.pattern),
		FS:             o.fs,
	})
	if err != nil {
		err = translateError(err)
		o.metricsCollector.RecordOpen(0, 0, time.Since(start), err)
		o.logger.LogOpen(path, 0, 0, err)
		return nil, err
	}

	o.metricsCollector.RecordOpen(inner.Size(), inner.NumSegments(), time.Since(start), nil)
	o.logger.LogOpen(path, inner.Size(), inner.NumSegments(), nil)

	return &File{
		inner:   inner,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}, nil
}

// Close unmaps the file. It is safe to call multiple times and on a
// nil receiver.
func (f *File) Close() error {
	if f == nil {
		return nil
	}
	return translateError(f.inner.Close())
}

// Path returns the path the file was opened with.
func (f *File) Path() string {
	return f.inner.Path()
}

// Size returns the file size in bytes at the time of Open.
func (f *File) Size() int64 {
	return f.inner.Size()
}

// NumSegments returns the number of mapping segments. It is 0 for an
// empty file and 1 unless a segment size cap forced a split.
func (f *File) NumSegments() int {
	return f.inner.NumSegments()
}

// Bytes returns the mapped bytes for span s.
//
// Spans produced by LineReader and IngestLines always lie within a
// single segment and are returned without copying. For caller-built
// spans that cross a segment boundary the bytes are copied into a
// fresh buffer. The returned slice must be treated as read-only and
// not used after Close.
func (f *File) Bytes(s Span) ([]byte, error) {
	b, _, err := f.inner.Range(s.Offset, int64(s.Len))
	return b, translateError(err)
}

// Range returns n bytes starting at off. copied reports whether the
// bytes were copied out of the mapping; when false the slice aliases
// the mapping directly and must be treated as read-only.
func (f *File) Range(off, n int64) (b []byte, copied bool, err error) {
	b, copied, err = f.inner.Range(off, n)
	return b, copied, translateError(err)
}

// ByteAt returns the byte at offset off.
func (f *File) ByteAt(off int64) (byte, error) {
	b, err := f.inner.ByteAt(off)
	return b, translateError(err)
}

// Advise hints the kernel about the expected access pattern. On
// platforms without madvise it is a no-op. The hint is best-effort.
func (f *File) Advise(pattern AccessPattern) error {
	return translateError(f.inner.Advise(mmap.AccessPattern(pattern)))
}
