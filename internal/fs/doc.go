// Package fs provides read-side filesystem abstractions for testability and
// fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: Represents an open read-only file with ReadAt/Seek/Stat access
//   - [FileSystem]: Abstracts the operations the mapping layer needs (open, stat)
//
// # Implementations
//
//   - [LocalFS]: Production implementation using standard os package
//   - [FaultyFS]: Test utility for fault injection (simulate I/O errors)
//
// # Usage
//
// Production code should use fs.Default (which is [LocalFS]):
//
//	file, err := fs.Default.Open(path)
//
// Tests can inject [FaultyFS] to simulate failures:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("graph", fs.Fault{FailAfterBytes: 1024})
//	// inject ffs into component under test
//
// # Design Notes
//
// This package intentionally does NOT include context.Context parameters.
// Filesystem operations are typically fast (microseconds for local NVMe) and
// non-interruptible at the syscall level. Adding context would add overhead
// without meaningful cancellation capability.
package fs
