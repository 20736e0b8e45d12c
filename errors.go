package mapline

import (
	"errors"
	"fmt"

	"github.com/graphkit/mapline/internal/mmap"
)

var (
	// ErrClosed is returned when a file is used after Close.
	ErrClosed = errors.New("mapline: file is closed")

	// ErrOutOfRange is returned when a byte range lies outside the file.
	ErrOutOfRange = errors.New("mapline: range out of bounds")

	// ErrNotRegular is returned when a path does not name a regular file.
	ErrNotRegular = errors.New("mapline: not a regular file")
)

// MapError indicates the platform refused a memory mapping.
//
// The original underlying error can be accessed via errors.Unwrap.
type MapError struct {
	Path   string
	Offset int64
	Length int64
	cause  error
}

func (e *MapError) Error() string {
	return fmt.Sprintf("mapline: map %s [%d,%d): %v", e.Path, e.Offset, e.Offset+e.Length, e.cause)
}

func (e *MapError) Unwrap() error { return e.cause }

// IOError indicates a failed read from the backing file while planning
// the segment layout.
//
// The original underlying error can be accessed via errors.Unwrap.
type IOError struct {
	Path   string
	Offset int64
	cause  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("mapline: read %s at %d: %v", e.Path, e.Offset, e.cause)
}

func (e *IOError) Unwrap() error { return e.cause }

// ChunkError reports a failed ingestion task together with the byte
// range it owned, so callers can reprocess just that chunk.
//
// The original underlying error can be accessed via errors.Unwrap.
type ChunkError struct {
	Chunk int
	Start int64
	End   int64
	cause error
}

func (e *ChunkError) Error() string {
	return fmt.Sprintf("mapline: chunk %d [%d,%d): %v", e.Chunk, e.Start, e.End, e.cause)
}

func (e *ChunkError) Unwrap() error { return e.cause }

// translateError maps internal errors onto the public taxonomy.
// Operating system errors pass through untouched, so errors.Is with
// fs.ErrNotExist and fs.ErrPermission keeps working on Open failures.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Sentinel normalization.
	if errors.Is(err, mmap.ErrClosed) {
		return ErrClosed
	}
	if errors.Is(err, mmap.ErrOutOfRange) {
		return ErrOutOfRange
	}
	if errors.Is(err, mmap.ErrNotRegular) {
		return fmt.Errorf("%w: %w", ErrNotRegular, err)
	}

	// Mapping and probe-read failures. The internal wrapper carries the
	// same fields, so only its underlying error is kept.
	var me *mmap.MapError
	if errors.As(err, &me) {
		return &MapError{Path: me.Path, Offset: me.Offset, Length: me.Length, cause: me.Err}
	}
	var ie *mmap.IOError
	if errors.As(err, &ie) {
		return &IOError{Path: ie.Path, Offset: ie.Offset, cause: ie.Err}
	}

	return err
}
