package mapline

import (
	"bytes"
	"iter"
)

// LineReader is a single-pass iterator over the lines of a byte range.
//
// Line spans exclude the terminator; a '\r' immediately before a '\n'
// (and a trailing '\r' at the end of the range) belongs to the
// terminator, matching bufio.ScanLines. A final line without a
// terminator is still produced. Readers are not restartable; construct
// a new one to iterate again. A LineReader must not be shared between
// goroutines.
type LineReader struct {
	f    *File
	end  int64
	pos  int64
	win  []byte
	span Span
	line []byte
	err  error
}

// Reader returns a LineReader over the byte range [start, end).
//
// The range is typically a chunk from Chunks, but any byte range
// within the file is accepted; a range that cuts into a line simply
// starts or ends mid-line.
func (f *File) Reader(start, end int64) (*LineReader, error) {
	if f.inner.Closed() {
		return nil, ErrClosed
	}
	if start < 0 || end < start || end > f.inner.Size() {
		return nil, ErrOutOfRange
	}
	return &LineReader{f: f, end: end, pos: start}, nil
}

// Next advances to the next line. It returns false when the range is
// exhausted or an error occurred; check Err afterwards.
func (r *LineReader) Next() bool {
	if r.err != nil || r.pos >= r.end {
		return false
	}
	if len(r.win) == 0 && !r.refill() {
		return false
	}

	// Every segment but the last ends just past a terminator, so a
	// window without one always reaches the end of the range.
	adv := len(r.win)
	line := r.win
	if j := bytes.IndexByte(r.win, '\n'); j >= 0 {
		adv = j + 1
		line = r.win[:j]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}

	r.span = Span{Offset: r.pos, Len: len(line)}
	r.line = line
	r.pos += int64(adv)
	r.win = r.win[adv:]
	return true
}

// refill points the window at the mapped bytes from pos to the end of
// the containing segment, clipped to the range end.
func (r *LineReader) refill() bool {
	seg, err := r.f.inner.SegmentAt(r.pos)
	if err != nil {
		r.err = translateError(err)
		return false
	}
	win := seg.Data[r.pos-seg.Base:]
	if rem := r.end - r.pos; int64(len(win)) > rem {
		win = win[:rem]
	}
	r.win = win
	return true
}

// Span returns the byte range of the current line within the file,
// terminator excluded.
func (r *LineReader) Span() Span {
	return r.span
}

// Bytes returns the current line without copying. The slice aliases
// the mapping; treat it as read-only and do not retain it past Close.
func (r *LineReader) Bytes() []byte {
	return r.line
}

// Text returns the current line as a freshly allocated string.
func (r *LineReader) Text() string {
	return string(r.line)
}

// Err returns the first error encountered by the reader. It is nil
// after a normally exhausted iteration.
func (r *LineReader) Err() error {
	return r.err
}

// All returns an iterator over the remaining lines as (span, bytes)
// pairs. Check Err after the loop.
func (r *LineReader) All() iter.Seq2[Span, []byte] {
	return func(yield func(Span, []byte) bool) {
		for r.Next() {
			if !yield(r.span, r.line) {
				return
			}
		}
	}
}
