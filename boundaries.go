package mapline

import "math/bits"

// Chunk is a half-open byte range [Start, End) of the file whose
// bounds fall on line breaks.
type Chunk struct {
	Index int
	Start int64
	End   int64
}

// Len returns the chunk length in bytes.
func (c Chunk) Len() int64 {
	return c.End - c.Start
}

// Boundaries splits the file into at most n chunks of roughly equal
// size and returns the chunk bounds as offsets.
//
// Every interior bound lands immediately after a line terminator, so
// each chunk is a whole number of lines. Bounds are strictly
// increasing, start at 0 and end at Size(); the result has at most
// n+1 entries but may have fewer when lines are long relative to the
// file. n <= 1 and empty files yield {0, Size()}.
//
// The result is deterministic for a given file content and n. A final
// unterminated line always lands in the last chunk.
func (f *File) Boundaries(n int) ([]int64, error) {
	if f.inner.Closed() {
		return nil, ErrClosed
	}
	size := f.inner.Size()
	if n <= 1 || size == 0 {
		return []int64{0, size}, nil
	}

	k := int64(n)
	if k > size {
		k = size
	}

	bounds := []int64{0}
	for i := int64(1); i < k; i++ {
		cand := mulDiv(size, i, k)
		if prev := bounds[len(bounds)-1]; cand < prev {
			cand = prev
		}
		nl, err := f.inner.IndexByte(cand, '\n')
		if err != nil {
			return nil, translateError(err)
		}
		if nl == size {
			// No terminator remains; the tail is one chunk.
			break
		}
		b := nl + 1
		if b >= size {
			break
		}
		if b > bounds[len(bounds)-1] {
			bounds = append(bounds, b)
		}
	}
	return append(bounds, size), nil
}

// Chunks pairs the offsets from Boundaries(n) into Chunk values.
func (f *File) Chunks(n int) ([]Chunk, error) {
	bounds, err := f.Boundaries(n)
	if err != nil {
		return nil, err
	}
	chunks := make([]Chunk, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		chunks = append(chunks, Chunk{Index: i, Start: bounds[i], End: bounds[i+1]})
	}
	return chunks, nil
}

// mulDiv computes a*i/k without intermediate overflow. Callers
// guarantee 0 <= i < k, which keeps the quotient below a.
func mulDiv(a, i, k int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(i))
	q, _ := bits.Div64(hi, lo, uint64(k))
	return int64(q)
}
