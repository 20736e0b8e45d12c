package mapline

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/graphkit/mapline/resource"
)

// LineFunc is called for every line during IngestLines. chunk is the
// index of the chunk the line belongs to, s is the line's byte range
// within the file and line is its content without the terminator,
// aliasing the mapping.
//
// Calls for the same chunk arrive in file order from a single
// goroutine; calls for different chunks run concurrently, so fn must
// be safe for concurrent use across chunks. A non-nil error fails the
// chunk.
type LineFunc func(chunk int, s Span, line []byte) error

// IngestLines feeds every line of the file to fn, processing chunks in
// parallel.
//
// The file is split into line-aligned chunks (one per worker unless
// WithChunkCount overrides it) and each chunk is scanned by its own
// goroutine. By default the first failing chunk cancels the rest;
// WithContinueOnError keeps the remaining chunks running and reports
// the first failure after all of them finish. Chunk failures are
// returned as *ChunkError carrying the byte range, so callers can
// reprocess exactly the failed part.
func (f *File) IngestLines(ctx context.Context, fn LineFunc, optFns ...func(*IngestOptions)) error {
	o := DefaultIngestOptions()
	for _, fnOpt := range optFns {
		fnOpt(&o)
	}

	start := time.Now()
	lines, bytes, chunks, err := f.ingest(ctx, fn, o)
	duration := time.Since(start)

	f.metrics.RecordIngest(lines, bytes, chunks, duration, err)
	f.logger.LogIngest(ctx, f.Path(), lines, chunks, duration, err)
	return err
}

func (f *File) ingest(ctx context.Context, fn LineFunc, o IngestOptions) (lines, bytes int64, nchunks int, err error) {
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if o.Controller != nil {
		if err := o.Controller.AcquireIngest(ctx); err != nil {
			return 0, 0, 0, err
		}
		defer o.Controller.ReleaseIngest()
	}

	chunkCount := o.ChunkCount
	if chunkCount <= 0 {
		chunkCount = workers
	}
	chunks, err := f.Chunks(chunkCount)
	if err != nil {
		return 0, 0, 0, err
	}

	// Chunks are scanned front to back.
	_ = f.Advise(AccessSequential)

	var (
		lineCount atomic.Int64
		byteCount atomic.Int64
	)
	chunkErrs := make([]error, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, c := range chunks {
		g.Go(func() error {
			err := f.scanChunk(gctx, c, fn, o.Controller, &lineCount, &byteCount)
			if err == nil {
				return nil
			}
			cerr := &ChunkError{Chunk: c.Index, Start: c.Start, End: c.End, cause: err}
			chunkErrs[c.Index] = cerr
			if o.ContinueOnError {
				// Swallowed here so siblings keep running; reported
				// after the join.
				return nil
			}
			return cerr
		})
	}

	err = g.Wait()
	if err == nil {
		err = firstChunkError(chunkErrs)
	}
	return lineCount.Load(), byteCount.Load(), len(chunks), err
}

// scanChunk owns a private reader over one chunk and delivers its
// lines in file order.
func (f *File) scanChunk(ctx context.Context, c Chunk, fn LineFunc, ctrl *resource.Controller, lines, bytes *atomic.Int64) error {
	r, err := f.Reader(c.Start, c.End)
	if err != nil {
		return err
	}
	for r.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := r.Span()
		if err := ctrl.AcquireIO(ctx, s.Len); err != nil {
			return err
		}
		if err := fn(c.Index, s, r.Bytes()); err != nil {
			return err
		}
		lines.Add(1)
		bytes.Add(int64(s.Len))
	}
	return r.Err()
}

// firstChunkError returns the failure of the lowest-indexed failed
// chunk, or nil.
func firstChunkError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
