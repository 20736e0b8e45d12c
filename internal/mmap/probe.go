package mmap

import (
	"bytes"
	"errors"
	"io"

	"github.com/graphkit/mapline/internal/fs"
)

// probeWindow is the number of bytes examined per read while searching
// for a terminator near a segment cut.
const probeWindow = 64 * 1024

// planCuts returns the segment start offsets for a file of the given
// size, such that every segment except the last ends immediately after a
// '\n' and no segment exceeds maxSeg unless a single line does. The
// result always starts at 0. Cut points are discovered with bounded
// ReadAt probes so nothing is mapped before the layout is known.
func planCuts(f fs.File, path string, size, maxSeg int64) ([]int64, error) {
	cuts := []int64{0}
	start := int64(0)
	for size-start > maxSeg {
		cut, err := cutAfter(f, path, start, start+maxSeg, size)
		if err != nil {
			return nil, err
		}
		if cut >= size {
			break
		}
		cuts = append(cuts, cut)
		start = cut
	}
	return cuts, nil
}

// cutAfter picks the cut point for a segment starting at start: the
// largest offset in (start, limit] that sits just past a '\n'. When the
// window holds no terminator at all, the single line owning it extends
// the segment, and the cut moves forward to just past the next '\n' (or
// to size when none remains).
func cutAfter(f fs.File, path string, start, limit, size int64) (int64, error) {
	buf := make([]byte, probeWindow)

	for hi := limit; hi > start; {
		lo := hi - probeWindow
		if lo < start {
			lo = start
		}
		n, err := readProbe(f, path, buf[:hi-lo], lo)
		if err != nil {
			return 0, err
		}
		if i := bytes.LastIndexByte(buf[:n], '\n'); i >= 0 {
			return lo + int64(i) + 1, nil
		}
		hi = lo
	}

	// No terminator within the cap: extend forward.
	for lo := limit; lo < size; {
		hi := lo + probeWindow
		if hi > size {
			hi = size
		}
		n, err := readProbe(f, path, buf[:hi-lo], lo)
		if err != nil {
			return 0, err
		}
		if i := bytes.IndexByte(buf[:n], '\n'); i >= 0 {
			return lo + int64(i) + 1, nil
		}
		lo = hi
	}
	return size, nil
}

// readProbe fills p from the file at off. Offsets come from planCuts and
// stay inside the file, so a short read without EOF is an error too.
func readProbe(f fs.File, path string, p []byte, off int64) (int, error) {
	n, err := f.ReadAt(p, off)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, &IOError{Path: path, Offset: off, Err: err}
	}
	if n < len(p) && err == nil {
		return n, &IOError{Path: path, Offset: off, Err: io.ErrUnexpectedEOF}
	}
	return n, nil
}
