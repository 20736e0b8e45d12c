package mapline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphkit/mapline/testutil"
)

func openTemp(t testing.TB, data []byte, optFns ...Option) *File {
	t.Helper()
	f, err := Open(writeTemp(t, data), optFns...)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestBoundaries(t *testing.T) {
	tests := []struct {
		name string
		data string
		n    int
		want []int64
	}{
		{name: "three lines three chunks", data: "a,b\nc,d\ne,f", n: 3, want: []int64{0, 4, 8, 11}},
		{name: "more chunks than lines", data: "a,b\nc,d\ne,f", n: 100, want: []int64{0, 4, 8, 11}},
		{name: "single chunk", data: "a,b\nc,d\ne,f", n: 1, want: []int64{0, 11}},
		{name: "zero chunks", data: "a,b\nc,d\ne,f", n: 0, want: []int64{0, 11}},
		{name: "negative chunks", data: "a,b\nc,d\ne,f", n: -1, want: []int64{0, 11}},
		{name: "single unterminated line", data: "abcdef", n: 3, want: []int64{0, 6}},
		{name: "one terminated line", data: "abc\n", n: 2, want: []int64{0, 4}},
		{name: "empty lines", data: "\n\n\n", n: 3, want: []int64{0, 2, 3}},
		{name: "chunk count beyond size", data: "\n\n\n", n: 100, want: []int64{0, 2, 3}},
		{name: "empty file", data: "", n: 4, want: []int64{0, 0}},
		{name: "unterminated tail shares last chunk", data: "ab\ncd\nef", n: 2, want: []int64{0, 6, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := openTemp(t, []byte(tt.data))

			bounds, err := f.Boundaries(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, bounds)
		})
	}
}

func TestBoundaries_Invariants(t *testing.T) {
	rng := testutil.NewRNG(42)

	fixtures := map[string][]byte{
		"empty":              nil,
		"single byte":        []byte("x"),
		"single line":        []byte("x\n"),
		"uniform terminated": rng.TextFile(1000, 0, 30, true),
		"unterminated tail":  rng.TextFile(1000, 0, 30, false),
		"few long lines":     rng.TextFile(3, 200, 400, true),
		"all empty lines":    rng.TextFile(500, 0, 0, true),
	}

	for name, data := range fixtures {
		t.Run(name, func(t *testing.T) {
			f := openTemp(t, data)

			for _, n := range []int{1, 2, 3, 4, 7, 8, 16, 64, 1000, 5000} {
				bounds, err := f.Boundaries(n)
				require.NoError(t, err)

				require.GreaterOrEqual(t, len(bounds), 2, "n=%d", n)
				require.LessOrEqual(t, len(bounds), n+1, "n=%d", n)
				assert.Equal(t, int64(0), bounds[0], "n=%d", n)
				assert.Equal(t, f.Size(), bounds[len(bounds)-1], "n=%d", n)

				for i := 1; i < len(bounds); i++ {
					if f.Size() > 0 {
						assert.Greater(t, bounds[i], bounds[i-1], "n=%d i=%d", n, i)
					}
					// Interior bounds sit just past a terminator.
					if bounds[i] < f.Size() {
						b, err := f.ByteAt(bounds[i] - 1)
						require.NoError(t, err)
						assert.Equal(t, byte('\n'), b, "n=%d i=%d", n, i)
					}
				}
			}
		})
	}
}

func TestBoundaries_Deterministic(t *testing.T) {
	rng := testutil.NewRNG(7)
	data := rng.TextFile(2000, 0, 40, true)

	path := writeTemp(t, data)

	// Identical results across opens and across segment layouts.
	var want []int64
	for _, segSize := range []int64{0, 64, 4096} {
		f, err := Open(path, WithMaxSegmentSize(segSize))
		require.NoError(t, err)

		for range 3 {
			bounds, err := f.Boundaries(16)
			require.NoError(t, err)
			if want == nil {
				want = bounds
			} else {
				assert.Equal(t, want, bounds, "segSize=%d", segSize)
			}
		}
		require.NoError(t, f.Close())
	}
}

func TestChunks(t *testing.T) {
	f := openTemp(t, []byte("a,b\nc,d\ne,f"))

	chunks, err := f.Chunks(3)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	assert.Equal(t, Chunk{Index: 0, Start: 0, End: 4}, chunks[0])
	assert.Equal(t, Chunk{Index: 1, Start: 4, End: 8}, chunks[1])
	assert.Equal(t, Chunk{Index: 2, Start: 8, End: 11}, chunks[2])
	assert.Equal(t, int64(4), chunks[0].Len())

	// Chunks tile the file exactly.
	for i := 1; i < len(chunks); i++ {
		assert.Equal(t, chunks[i-1].End, chunks[i].Start)
	}
}

func TestChunks_EmptyFile(t *testing.T) {
	f := openTemp(t, nil)

	chunks, err := f.Chunks(8)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, Chunk{Index: 0, Start: 0, End: 0}, chunks[0])
}
