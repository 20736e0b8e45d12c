package testutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFile(t *testing.T) {
	rng := NewRNG(4711)

	data := rng.TextFile(10, 0, 40, true)
	assert.Equal(t, 10, bytes.Count(data, []byte{'\n'}))
	assert.Equal(t, byte('\n'), data[len(data)-1])
	assert.Len(t, SplitLines(data), 10)

	data = rng.TextFile(10, 1, 40, false)
	assert.Equal(t, 9, bytes.Count(data, []byte{'\n'}))
	assert.NotEqual(t, byte('\n'), data[len(data)-1])
	assert.Len(t, SplitLines(data), 10)
}

func TestLine_NoTerminators(t *testing.T) {
	rng := NewRNG(4711)

	for range 100 {
		line := rng.Line(0, 64)
		assert.NotContains(t, string(line), "\n")
		assert.NotContains(t, string(line), "\r")
		assert.LessOrEqual(t, len(line), 64)
	}
}

func TestEdgeLines(t *testing.T) {
	rng := NewRNG(42)

	data := rng.EdgeLines(50, 9, false)
	lines := SplitLines(data)
	require.Len(t, lines, 50)
	for _, line := range lines {
		assert.Len(t, bytes.Fields(line), 2)
	}

	data = rng.EdgeLines(50, 9, true)
	for _, line := range SplitLines(data) {
		assert.Len(t, bytes.Fields(line), 3)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	d1 := rng.TextFile(20, 0, 80, true)

	rng.Reset()
	d2 := rng.TextFile(20, 0, 80, true)

	assert.Equal(t, d1, d2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{"empty", "", nil},
		{"single terminated", "abc\n", []string{"abc"}},
		{"single unterminated", "abc", []string{"abc"}},
		{"trailing terminator drops nothing", "a\nb\n", []string{"a", "b"}},
		{"final partial line kept", "a\nb", []string{"a", "b"}},
		{"empty lines", "\n\na\n", []string{"", "", "a"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr kept", "a\rb\n", []string{"a\rb"}},
		{"cr at eof dropped", "a\nb\r", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines([]byte(tt.data))
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assert.Equal(t, w, string(got[i]))
			}
		})
	}
}
