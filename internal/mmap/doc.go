// Package mmap provides segmented, read-only memory-mapped file access.
//
// # Overview
//
// Memory mapping allows direct access to file contents without copying data
// through kernel buffers. Text graph files routinely run into the tens of
// gigabytes, so a single mapping is not always possible: the package splits
// files larger than the segment cap into several mappings.
//
// # Segmentation
//
// Segment cuts are line-aligned. Before anything is mapped, bounded ReadAt
// probes locate the last '\n' under each cap-sized window, so every segment
// except the last ends immediately after a terminator. A single line longer
// than the cap extends its segment instead of being split; the platform
// mapping call then succeeds or fails honestly. The invariant this buys:
// no line ever straddles two mappings, so the bytes of any one line are
// always contiguous.
//
// Mapping offsets must be multiples of the platform granularity (page size
// on Unix, 64 KiB allocation granularity on Windows). A segment whose
// logical start is not aligned maps from the granularity floor and exposes
// a sub-slice past the pad.
//
// # Usage
//
//	f, err := mmap.Open("graph.edgelist", mmap.Options{})
//	if err != nil { ... }
//	defer f.Close()
//
//	// Zero-copy access within a segment
//	b, copied, _ := f.Range(off, n)
//
//	// Provide kernel hints for access patterns
//	f.Advise(mmap.AccessSequential)
//
// # Platform Support
//
// The package provides a unified API across platforms:
//
//   - Unix (Linux, macOS, BSD): Uses mmap(2) with madvise(2) for access hints
//   - Windows: Uses CreateFileMapping/MapViewOfFile (madvise is a no-op)
//
// # Thread Safety
//
// File is safe for concurrent read access. Close is idempotent and
// protected by atomic operations. Callers must ensure no goroutine touches
// returned slices after Close returns; the pages are gone and access is a
// fault, not an error.
package mmap
