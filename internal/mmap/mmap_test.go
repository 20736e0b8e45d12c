package mmap

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkit/mapline/internal/fs"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mmap_test.txt")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestOpenReadClose(t *testing.T) {
	content := []byte("Hello, Mmap!")
	path := writeTemp(t, content)

	f, err := Open(path, Options{})
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, int64(len(content)), f.Size())
	assert.Equal(t, path, f.Path())
	assert.Equal(t, 1, f.NumSegments())

	seg, err := f.Segment(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), seg.Base)
	assert.Equal(t, content, seg.Data)

	// ReadAt
	buf := make([]byte, 5)
	n, err := f.ReadAt(buf, 7) // "Mmap!"
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "Mmap!", string(buf))

	// ReadAt out of bounds
	buf2 := make([]byte, 10)
	n, err = f.ReadAt(buf2, 100)
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)

	// ReadAt partial
	buf3 := make([]byte, 10)
	n, err = f.ReadAt(buf3, 7)
	assert.Equal(t, 5, n)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "Mmap!", string(buf3[:n]))

	// ReadAt negative offset
	_, err = f.ReadAt(buf, -1)
	assert.Equal(t, ErrOutOfRange, err)

	require.NoError(t, f.Close())
}

func TestOpen_EmptyFile(t *testing.T) {
	path := writeTemp(t, nil)

	f, err := Open(path, Options{})
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, int64(0), f.Size())
	assert.Equal(t, 0, f.NumSegments())

	_, _, err = f.Range(0, 1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	b, copied, err := f.Range(0, 0)
	require.NoError(t, err)
	assert.False(t, copied)
	assert.Empty(t, b)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpen_NotRegular(t *testing.T) {
	_, err := Open(t.TempDir(), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotRegular)
}

func TestClose_Idempotent(t *testing.T) {
	path := writeTemp(t, []byte("data\n"))

	f, err := Open(path, Options{})
	require.NoError(t, err)

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())

	_, _, err = f.Range(0, 1)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = f.ByteAt(0)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = f.Segment(0)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = f.SegmentAt(0)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = f.IndexByte(0, '\n')
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, f.Advise(AccessSequential), ErrClosed)
	_, err = f.ReadAt(make([]byte, 1), 0)
	assert.ErrorIs(t, err, ErrClosed)

	var nilFile *File
	assert.NoError(t, nilFile.Close())
}

func TestActiveMappings(t *testing.T) {
	path := writeTemp(t, []byte("one\ntwo\nthree\nfour\n"))
	base := ActiveMappings()

	for range 5 {
		f, err := Open(path, Options{MaxSegmentSize: 8})
		require.NoError(t, err)
		assert.Greater(t, ActiveMappings(), base)
		require.NoError(t, f.Close())
	}
	assert.Equal(t, base, ActiveMappings())

	// Failed opens must not leak either.
	for range 3 {
		_, err := Open(filepath.Join(t.TempDir(), "missing"), Options{})
		require.Error(t, err)
	}
	assert.Equal(t, base, ActiveMappings())
}

func TestRange(t *testing.T) {
	content := []byte("alpha\nbeta\ngamma\n")
	path := writeTemp(t, content)

	f, err := Open(path, Options{})
	require.NoError(t, err)
	defer f.Close()

	b, copied, err := f.Range(6, 4)
	require.NoError(t, err)
	assert.False(t, copied)
	assert.Equal(t, "beta", string(b))

	// Whole file
	b, copied, err = f.Range(0, f.Size())
	require.NoError(t, err)
	assert.False(t, copied)
	assert.Equal(t, content, b)

	// Out of bounds
	_, _, err = f.Range(-1, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, _, err = f.Range(0, f.Size()+1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, _, err = f.Range(f.Size(), 1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestByteAt(t *testing.T) {
	path := writeTemp(t, []byte("xyz"))

	f, err := Open(path, Options{})
	require.NoError(t, err)
	defer f.Close()

	b, err := f.ByteAt(1)
	require.NoError(t, err)
	assert.Equal(t, byte('y'), b)

	_, err = f.ByteAt(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = f.ByteAt(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestIndexByte(t *testing.T) {
	path := writeTemp(t, []byte("ab\ncd\nef"))

	f, err := Open(path, Options{})
	require.NoError(t, err)
	defer f.Close()

	for _, tc := range []struct {
		from int64
		want int64
	}{
		{0, 2},
		{2, 2},
		{3, 5},
		{6, 8}, // none remains: Size()
		{8, 8}, // at end
		{99, 8},
	} {
		got, err := f.IndexByte(tc.from, '\n')
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "from=%d", tc.from)
	}

	_, err = f.IndexByte(-1, '\n')
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestAdvise(t *testing.T) {
	path := writeTemp(t, []byte("advise me\n"))

	f, err := Open(path, Options{Pattern: AccessWillNeed})
	require.NoError(t, err)
	defer f.Close()

	for _, p := range []AccessPattern{
		AccessDefault, AccessSequential, AccessRandom, AccessWillNeed, AccessDontNeed,
	} {
		assert.NoError(t, f.Advise(p))
	}
}

func TestOpen_ProbeFault(t *testing.T) {
	path := writeTemp(t, []byte("one\ntwo\nthree\nfour\nfive\n"))

	injected := errors.New("probe gone")
	ffs := fs.NewFaultyFS(nil)
	ffs.AddRule("mmap_test", fs.Fault{FailAfterBytes: 0, Err: injected})

	base := ActiveMappings()
	_, err := Open(path, Options{MaxSegmentSize: 8, FS: ffs})
	require.Error(t, err)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, path, ioErr.Path)
	assert.ErrorIs(t, err, injected)
	assert.Equal(t, base, ActiveMappings())
}

func TestOpen_StatFault(t *testing.T) {
	path := writeTemp(t, []byte("data\n"))

	ffs := fs.NewFaultyFS(nil)
	ffs.AddRule("mmap_test", fs.Fault{FailOnStat: true, Err: os.ErrPermission})

	_, err := Open(path, Options{FS: ffs})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrPermission))
}
