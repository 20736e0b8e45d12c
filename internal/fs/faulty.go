package fs

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Fault defines specific failure behavior.
type Fault struct {
	FailOnOpen     bool
	FailOnStat     bool
	FailAfterBytes int64 // Fail reads after this many bytes served FROM THIS FILE. -1 to disable.
	FailOnClose    bool
	Err            error
}

// FaultyFS is a FileSystem wrapper that can inject read-side errors.
type FaultyFS struct {
	FS      FileSystem
	mu      sync.Mutex
	rules   map[string]Fault // Filename pattern -> Fault
	Default Fault            // Fallback

	Err  error
	read int64
}

// NewFaultyFS creates a new FaultyFS wrapping the provided FS (or Default if nil).
func NewFaultyFS(fsys FileSystem) *FaultyFS {
	if fsys == nil {
		fsys = Default
	}
	return &FaultyFS{
		FS:    fsys,
		rules: make(map[string]Fault),
		Default: Fault{
			FailAfterBytes: -1, // No limit
		},
		Err: fmt.Errorf("injected fault error"),
	}
}

// GetRead returns the total bytes served across all files so far.
func (f *FaultyFS) GetRead() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read
}

// AddRule adds a fault injection rule for a specific file pattern.
func (f *FaultyFS) AddRule(pattern string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules[pattern] = fault
}

func (f *FaultyFS) faultFor(name string) Fault {
	f.mu.Lock()
	defer f.mu.Unlock()

	fault := f.Default
	// Match pattern (last winning match)
	for pattern, rule := range f.rules {
		if strings.Contains(name, pattern) {
			fault = rule
		}
	}
	// Propagate compatibility Err if not set in rule
	if fault.Err == nil {
		fault.Err = f.Err
	}
	return fault
}

func (f *FaultyFS) Open(name string) (File, error) {
	fault := f.faultFor(name)
	if fault.FailOnOpen {
		return nil, &os.PathError{Op: "open", Path: name, Err: fault.Err}
	}

	file, err := f.FS.Open(name)
	if err != nil {
		return nil, err
	}
	return &faultyFile{File: file, fs: f, name: name, fault: fault}, nil
}

func (f *FaultyFS) Stat(name string) (os.FileInfo, error) {
	fault := f.faultFor(name)
	if fault.FailOnStat {
		return nil, &os.PathError{Op: "stat", Path: name, Err: fault.Err}
	}
	return f.FS.Stat(name)
}

type faultyFile struct {
	File
	fs    *FaultyFS
	name  string
	fault Fault
	mu    sync.Mutex
	read  int64
}

func (ff *faultyFile) Stat() (os.FileInfo, error) {
	if ff.fault.FailOnStat {
		return nil, &os.PathError{Op: "stat", Path: ff.name, Err: ff.fault.Err}
	}
	return ff.File.Stat()
}

func (ff *faultyFile) account(n int) error {
	ff.mu.Lock()
	defer ff.mu.Unlock()

	if ff.fault.FailAfterBytes >= 0 && ff.read+int64(n) > ff.fault.FailAfterBytes {
		err := ff.fault.Err
		if err == nil {
			err = fmt.Errorf("injected fault error")
		}
		return err
	}
	ff.read += int64(n)

	ff.fs.mu.Lock()
	ff.fs.read += int64(n)
	ff.fs.mu.Unlock()
	return nil
}

func (ff *faultyFile) Read(p []byte) (int, error) {
	if err := ff.account(len(p)); err != nil {
		return 0, err
	}
	return ff.File.Read(p)
}

func (ff *faultyFile) ReadAt(p []byte, off int64) (int, error) {
	if err := ff.account(len(p)); err != nil {
		return 0, err
	}
	return ff.File.ReadAt(p, off)
}

func (ff *faultyFile) Close() error {
	if ff.fault.FailOnClose {
		err := ff.fault.Err
		if err == nil {
			err = fmt.Errorf("injected close error")
		}
		ff.File.Close()
		return err
	}
	return ff.File.Close()
}
