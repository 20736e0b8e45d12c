package mmap

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/bits"
	"sort"
	"sync/atomic"

	"github.com/graphkit/mapline/internal/fs"
)

// Options configures Open.
type Options struct {
	// MaxSegmentSize caps the bytes covered by a single mapping. Zero
	// means no cap on 64-bit platforms and 1 GiB on 32-bit ones, where
	// the address space cannot hold arbitrary files. A single line
	// longer than the cap extends its segment past the cap.
	MaxSegmentSize int64

	// Pattern is the access hint applied to every segment right after
	// mapping. AccessDefault applies none.
	Pattern AccessPattern

	// FS opens and probes the file. Nil means fs.Default.
	FS fs.FileSystem
}

// DefaultMaxSegmentSize returns the segment cap used when
// Options.MaxSegmentSize is zero.
func DefaultMaxSegmentSize() int64 {
	if bits.UintSize == 64 {
		return math.MaxInt64
	}
	return 1 << 30
}

// File is a read-only, memory-mapped view of a regular file. Files
// larger than the segment cap are split into line-aligned segments:
// every segment except the last ends immediately after a '\n', so no
// line ever straddles two mappings.
type File struct {
	path     string
	size     int64
	segments []*segment
	closed   atomic.Bool
}

// Segment is a read-only view of one mapping segment. Base is the file
// offset of Data[0]. The slice is valid until the owning File is closed.
type Segment struct {
	Base int64
	Data []byte
}

// End returns the file offset just past the segment.
func (s Segment) End() int64 {
	return s.Base + int64(len(s.Data))
}

// Open maps the regular file at path read-only.
//
// The file descriptor is closed before Open returns; the mappings stay
// valid without it on every supported platform. On any mid-open failure
// all prior segments are unmapped.
func Open(path string, opts Options) (*File, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = fs.Default
	}
	maxSeg := opts.MaxSegmentSize
	if maxSeg <= 0 {
		maxSeg = DefaultMaxSegmentSize()
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}

	size := fi.Size()
	mf := &File{path: path, size: size}
	if size == 0 {
		return mf, nil
	}

	cuts, err := planCuts(f, path, size, maxSeg)
	if err != nil {
		return nil, err
	}

	for i, start := range cuts {
		end := size
		if i+1 < len(cuts) {
			end = cuts[i+1]
		}
		seg, err := mapSegment(f.Fd(), path, start, end-start)
		if err != nil {
			mf.unmapAll()
			return nil, err
		}
		mf.segments = append(mf.segments, seg)
	}

	if opts.Pattern != AccessDefault {
		// Hints are best-effort.
		_ = mf.Advise(opts.Pattern)
	}
	return mf, nil
}

// Close unmaps all segments. It is idempotent.
func (f *File) Close() error {
	if f == nil {
		return nil
	}
	if f.closed.Swap(true) {
		return nil
	}
	var firstErr error
	for _, s := range f.segments {
		if err := s.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f *File) unmapAll() {
	for _, s := range f.segments {
		_ = s.close()
	}
	f.segments = nil
}

// Path returns the path the file was opened with.
func (f *File) Path() string {
	return f.path
}

// Closed reports whether Close has been called.
func (f *File) Closed() bool {
	return f.closed.Load()
}

// Size returns the file size in bytes at the time of Open.
func (f *File) Size() int64 {
	return f.size
}

// NumSegments returns how many mappings back the file.
func (f *File) NumSegments() int {
	return len(f.segments)
}

// Segment returns a view of segment i.
func (f *File) Segment(i int) (Segment, error) {
	if f.closed.Load() {
		return Segment{}, ErrClosed
	}
	if i < 0 || i >= len(f.segments) {
		return Segment{}, ErrOutOfRange
	}
	s := f.segments[i]
	return Segment{Base: s.base, Data: s.data}, nil
}

// SegmentAt returns a view of the segment containing off.
func (f *File) SegmentAt(off int64) (Segment, error) {
	if f.closed.Load() {
		return Segment{}, ErrClosed
	}
	if off < 0 || off >= f.size {
		return Segment{}, ErrOutOfRange
	}
	s := f.segments[f.segmentAt(off)]
	return Segment{Base: s.base, Data: s.data}, nil
}

// segmentAt returns the index of the segment containing off.
// off must be in [0, size).
func (f *File) segmentAt(off int64) int {
	return sort.Search(len(f.segments), func(i int) bool {
		return f.segments[i].end() > off
	})
}

// Range returns the bytes in [off, off+n). The slice aliases the mapping
// when the range lies within one segment (copied == false); a range that
// crosses segments is assembled into a fresh buffer (copied == true).
func (f *File) Range(off, n int64) ([]byte, bool, error) {
	if f.closed.Load() {
		return nil, false, ErrClosed
	}
	if off < 0 || n < 0 || off > f.size || n > f.size-off {
		return nil, false, ErrOutOfRange
	}
	if n == 0 {
		return nil, false, nil
	}

	i := f.segmentAt(off)
	s := f.segments[i]
	rel := off - s.base
	if off+n <= s.end() {
		return s.data[rel : rel+n], false, nil
	}

	buf := make([]byte, n)
	m := copy(buf, s.data[rel:])
	for m < len(buf) {
		i++
		m += copy(buf[m:], f.segments[i].data)
	}
	return buf, true, nil
}

// ByteAt returns the byte at off.
func (f *File) ByteAt(off int64) (byte, error) {
	if f.closed.Load() {
		return 0, ErrClosed
	}
	if off < 0 || off >= f.size {
		return 0, ErrOutOfRange
	}
	s := f.segments[f.segmentAt(off)]
	return s.data[off-s.base], nil
}

// IndexByte returns the offset of the first occurrence of c at or after
// from, or Size() when none remains. from past the end is not an error.
func (f *File) IndexByte(from int64, c byte) (int64, error) {
	if f.closed.Load() {
		return 0, ErrClosed
	}
	if from < 0 {
		return 0, ErrOutOfRange
	}
	if from >= f.size {
		return f.size, nil
	}
	for i := f.segmentAt(from); i < len(f.segments); i++ {
		s := f.segments[i]
		rel := int64(0)
		if from > s.base {
			rel = from - s.base
		}
		if j := bytes.IndexByte(s.data[rel:], c); j >= 0 {
			return s.base + rel + int64(j), nil
		}
	}
	return f.size, nil
}

// Advise provides hints to the kernel about how the mapped bytes will be
// accessed. Hints cover whole segments, alignment pad included.
func (f *File) Advise(pattern AccessPattern) error {
	if f.closed.Load() {
		return ErrClosed
	}
	for _, s := range f.segments {
		if err := osAdvise(s.raw, pattern); err != nil {
			return err
		}
	}
	return nil
}

// ReadAt implements io.ReaderAt across segment boundaries.
func (f *File) ReadAt(p []byte, off int64) (n int, err error) {
	if f.closed.Load() {
		return 0, ErrClosed
	}
	if off < 0 {
		return 0, ErrOutOfRange
	}
	for n < len(p) {
		if off >= f.size {
			return n, io.EOF
		}
		s := f.segments[f.segmentAt(off)]
		c := copy(p[n:], s.data[off-s.base:])
		n += c
		off += int64(c)
	}
	return n, nil
}
