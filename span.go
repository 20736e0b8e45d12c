package mapline

import "fmt"

// Span references the bytes of one line inside the mapping, terminator
// excluded. It does not own memory: it stays valid only while the File
// that produced it is open.
type Span struct {
	// Offset is the absolute file offset of the line's first byte.
	Offset int64
	// Len is the number of bytes in the line.
	Len int
}

// End returns the file offset just past the last byte.
func (s Span) End() int64 {
	return s.Offset + int64(s.Len)
}

// String implements fmt.Stringer.
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Offset, s.End())
}
