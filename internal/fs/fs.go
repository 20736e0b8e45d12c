package fs

import (
	"io"
	"os"
)

// File represents an open read-only file.
type File interface {
	io.ReadCloser
	io.ReaderAt
	io.Seeker
	Stat() (os.FileInfo, error)
	Fd() uintptr
}

// FileSystem abstracts read-side file system operations for testability.
type FileSystem interface {
	Open(name string) (File, error)
	Stat(name string) (os.FileInfo, error)
}

// LocalFS implements FileSystem using the local os package.
type LocalFS struct{}

func (LocalFS) Open(name string) (File, error)        { return os.Open(name) }
func (LocalFS) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

// Default is the default local file system.
var Default FileSystem = LocalFS{}
