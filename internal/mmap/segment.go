package mmap

import (
	"sync/atomic"

	"github.com/graphkit/mapline/internal/conv"
)

// activeMappings counts live platform mappings across all Files.
var activeMappings atomic.Int64

// ActiveMappings returns the number of currently mapped segments
// process-wide. It exists for leak accounting in tests and diagnostics.
func ActiveMappings() int64 {
	return activeMappings.Load()
}

// segment is one platform mapping covering a line-aligned byte range of
// the file. data is the logical view; raw is the full mapping including
// the alignment pad in front of data. raw, not data, must be passed to
// unmap.
type segment struct {
	base  int64 // file offset of data[0]
	data  []byte
	raw   []byte
	unmap func([]byte) error
}

func (s *segment) end() int64 {
	return s.base + int64(len(s.data))
}

// mapSegment maps [start, start+length) of fd read-only. start need not
// be aligned; the mapping begins at the granularity floor and data
// sub-slices past the pad.
func mapSegment(fd uintptr, path string, start, length int64) (*segment, error) {
	aligned := start - start%osGranularity()
	pad := start - aligned

	mapLen, err := conv.Int64ToInt(pad + length)
	if err != nil {
		return nil, &MapError{Path: path, Offset: start, Length: length, Err: err}
	}

	raw, unmap, err := osMap(fd, aligned, mapLen)
	if err != nil {
		return nil, &MapError{Path: path, Offset: start, Length: length, Err: err}
	}
	activeMappings.Add(1)

	return &segment{
		base:  start,
		data:  raw[pad : pad+length],
		raw:   raw,
		unmap: unmap,
	}, nil
}

// close releases the mapping. The segment must not be used afterwards.
func (s *segment) close() error {
	if s.unmap == nil || s.raw == nil {
		return nil
	}
	err := s.unmap(s.raw)
	s.raw, s.data, s.unmap = nil, nil, nil
	activeMappings.Add(-1)
	return err
}
