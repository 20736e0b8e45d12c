package edgelist

import (
	"context"
	"math"
	"runtime"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/graphkit/mapline"
)

// Summary aggregates an edge list in one parallel pass.
type Summary struct {
	// Lines is the total number of lines, records and comments alike.
	Lines int64
	// Edges is the number of parsed edge records.
	Edges int64
	// SelfLoops is the number of records with U == V.
	SelfLoops int64
	// Comments is the number of comment lines.
	Comments int64
	// Nodes is the number of distinct node ids across both columns.
	Nodes uint64
	// MinNode and MaxNode bound the observed node ids. Both are 0 when
	// the file holds no edges.
	MinNode uint64
	MaxNode uint64
	// TotalWeight is the sum of edge weights.
	TotalWeight float64
}

// accumulator is the per-chunk state. Each chunk goroutine owns
// exactly one, so no locking is needed until the merge.
type accumulator struct {
	lines     int64
	edges     int64
	selfLoops int64
	comments  int64
	minNode   uint64
	maxNode   uint64
	weight    float64
	nodes     *roaring64.Bitmap
}

func newAccumulator() *accumulator {
	return &accumulator{
		minNode: math.MaxUint64,
		nodes:   roaring64.New(),
	}
}

func (a *accumulator) add(e Edge) {
	a.edges++
	a.weight += e.Weight
	if e.U == e.V {
		a.selfLoops++
	}
	if lo := min(e.U, e.V); lo < a.minNode {
		a.minNode = lo
	}
	if hi := max(e.U, e.V); hi > a.maxNode {
		a.maxNode = hi
	}
	a.nodes.Add(e.U)
	a.nodes.Add(e.V)
}

// Summarize scans the whole edge list and aggregates it chunk by
// chunk. Chunk accumulators are merged only after all workers finish.
func (r *Reader) Summarize(ctx context.Context, f *mapline.File) (*Summary, error) {
	workers := r.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Ingestion with the same worker count splits the file into these
	// exact chunks, so accumulator slots line up with chunk indexes.
	chunks, err := f.Chunks(workers)
	if err != nil {
		return nil, err
	}
	accs := make([]*accumulator, len(chunks))

	p := newParser(r.opts)
	err = f.IngestLines(ctx, func(chunk int, s mapline.Span, line []byte) error {
		acc := accs[chunk]
		if acc == nil {
			acc = newAccumulator()
			accs[chunk] = acc
		}
		acc.lines++

		e, kind, err := p.parse(line)
		if err != nil {
			return &ParseError{Offset: s.Offset, Line: string(line), Err: err}
		}
		switch kind {
		case lineComment:
			acc.comments++
		case lineEdge:
			acc.add(e)
		}
		return nil
	}, mapline.WithWorkers(workers))
	if err != nil {
		return nil, err
	}

	return mergeAccumulators(accs), nil
}

func mergeAccumulators(accs []*accumulator) *Summary {
	s := &Summary{MinNode: math.MaxUint64}
	nodes := roaring64.New()
	for _, a := range accs {
		if a == nil {
			continue
		}
		s.Lines += a.lines
		s.Edges += a.edges
		s.SelfLoops += a.selfLoops
		s.Comments += a.comments
		s.TotalWeight += a.weight
		if a.minNode < s.MinNode {
			s.MinNode = a.minNode
		}
		if a.maxNode > s.MaxNode {
			s.MaxNode = a.maxNode
		}
		nodes.Or(a.nodes)
	}
	s.Nodes = nodes.GetCardinality()
	if s.Edges == 0 {
		s.MinNode = 0
	}
	return s
}
