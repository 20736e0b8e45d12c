package mmap

import (
	"errors"
	"fmt"
)

// AccessPattern provides hints to the kernel about how the data will be accessed.
type AccessPattern int

const (
	// AccessDefault is the default access pattern (no specific advice).
	AccessDefault AccessPattern = iota
	// AccessSequential expects data to be accessed sequentially.
	AccessSequential
	// AccessRandom expects data to be accessed randomly.
	AccessRandom
	// AccessWillNeed expects data to be accessed in the near future.
	AccessWillNeed
	// AccessDontNeed expects data to not be accessed in the near future.
	AccessDontNeed
)

var (
	// ErrClosed is returned when attempting to access a closed file.
	ErrClosed = errors.New("mmap: file is closed")
	// ErrOutOfRange is returned when a byte range lies outside the file.
	ErrOutOfRange = errors.New("mmap: range out of bounds")
	// ErrNotRegular is returned when the path does not name a regular file.
	ErrNotRegular = errors.New("mmap: not a regular file")
)

// MapError indicates the platform refused a mapping.
//
// The original underlying error can be accessed via errors.Unwrap.
type MapError struct {
	Path   string
	Offset int64
	Length int64
	Err    error
}

func (e *MapError) Error() string {
	return fmt.Sprintf("mmap: map %s [%d,%d): %v", e.Path, e.Offset, e.Offset+e.Length, e.Err)
}

func (e *MapError) Unwrap() error { return e.Err }

// IOError indicates a failed read while planning segment cuts.
//
// The original underlying error can be accessed via errors.Unwrap.
type IOError struct {
	Path   string
	Offset int64
	Err    error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("mmap: read %s at %d: %v", e.Path, e.Offset, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
