package edgelist

import (
	"context"

	"github.com/graphkit/mapline"
)

// Edge is one parsed edge record. Node ids are shifted down by
// Options.FirstNode, so the smallest valid id is always 0.
type Edge struct {
	U      uint64
	V      uint64
	Weight float64
}

// Options contains configuration for reading an edge list.
type Options struct {
	// Comment is the prefix marking comment lines. Lines starting with
	// it (after leading whitespace) are skipped. Empty disables comment
	// handling.
	Comment string

	// Separator is the byte between columns. Zero means any run of
	// spaces and tabs separates columns.
	Separator byte

	// FirstNode is the smallest node id the file uses, typically 0 or
	// 1. Parsed ids are shifted down by it; an id below it is a parse
	// error.
	FirstNode uint64

	// ReadWeights parses a third column as the edge weight.
	ReadWeights bool

	// DefaultWeight is assigned when ReadWeights is off or the weight
	// column is absent.
	DefaultWeight float64

	// Workers caps the goroutines scanning chunks. Zero or negative
	// means runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultOptions returns default edge list options.
var DefaultOptions = Options{
	Comment:       "#",
	DefaultWeight: 1,
}

// Reader parses edge lists of the form "u v [w]" from memory-mapped
// files. A Reader is stateless and safe for concurrent use.
type Reader struct {
	opts Options
}

// NewReader creates a new edge list Reader.
func NewReader(optFns ...func(o *Options)) *Reader {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Reader{opts: opts}
}

// EdgeFunc is called for every parsed edge. chunk identifies the file
// chunk the edge came from; edges of one chunk arrive in file order
// from a single goroutine, so fn must be safe for concurrent use
// across chunks.
type EdgeFunc func(chunk int, e Edge) error

// Read streams every edge of f to fn, scanning chunks in parallel.
// Comment and blank lines are skipped. A malformed record fails its
// chunk with a *ParseError carrying the absolute file offset, wrapped
// in the *mapline.ChunkError for that chunk.
func (r *Reader) Read(ctx context.Context, f *mapline.File, fn EdgeFunc) error {
	p := newParser(r.opts)
	return f.IngestLines(ctx, func(chunk int, s mapline.Span, line []byte) error {
		e, kind, err := p.parse(line)
		if err != nil {
			return &ParseError{Offset: s.Offset, Line: string(line), Err: err}
		}
		if kind != lineEdge {
			return nil
		}
		return fn(chunk, e)
	}, mapline.WithWorkers(r.opts.Workers))
}
