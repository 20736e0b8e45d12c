package testutil

import (
	"bytes"
	"fmt"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Uint64n returns a pseudo-random uint64 in [0,n). Modulo bias is fine
// for fixtures.
func (r *RNG) Uint64n(n uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n == 0 {
		return 0
	}
	return r.rand.Uint64() % n
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// lineAlphabet is the character set for generated line content. It
// contains spaces and common separators but no terminator bytes.
const lineAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 ,;.-_"

// Line returns one random line with length in [minLen, maxLen], drawn
// from lineAlphabet. The result never contains '\n' or '\r'.
func (r *RNG) Line(minLen, maxLen int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := minLen
	if maxLen > minLen {
		n += r.rand.Intn(maxLen - minLen + 1)
	}
	line := make([]byte, n)
	for i := range line {
		line[i] = lineAlphabet[r.rand.Intn(len(lineAlphabet))]
	}
	return line
}

// TextFile builds a newline-delimited file with numLines lines of
// length in [minLen, maxLen]. When terminated is false the final line
// carries no trailing '\n'.
func (r *RNG) TextFile(numLines, minLen, maxLen int, terminated bool) []byte {
	var buf bytes.Buffer
	for i := range numLines {
		buf.Write(r.Line(minLen, maxLen))
		if i < numLines-1 || terminated {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

// EdgeLines builds a whitespace-separated edge list with numEdges
// records over node ids in [0, maxNode]. With weighted set, each record
// carries a third weight column.
func (r *RNG) EdgeLines(numEdges int, maxNode uint64, weighted bool) []byte {
	var buf bytes.Buffer
	for range numEdges {
		u := r.Uint64n(maxNode + 1)
		v := r.Uint64n(maxNode + 1)
		if weighted {
			fmt.Fprintf(&buf, "%d %d %.4f\n", u, v, r.Float64()*10)
		} else {
			fmt.Fprintf(&buf, "%d %d\n", u, v)
		}
	}
	return buf.Bytes()
}

// SplitLines splits data into lines the way a text scanner does: each
// '\n' ends a line, a '\r' immediately before it is dropped, and a
// final unterminated line is still returned. A trailing terminator does
// not produce an empty final line. It is the reference oracle for
// round-trip tests and works on data of any size.
func SplitLines(data []byte) [][]byte {
	var lines [][]byte
	for len(data) > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			lines = append(lines, dropCR(data))
			break
		}
		lines = append(lines, dropCR(data[:i]))
		data = data[i+1:]
	}
	return lines
}

func dropCR(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\r' {
		return b[:n-1]
	}
	return b
}
