// Package mapline provides memory-mapped, zero-copy access to huge
// line-oriented text files, with deterministic chunking for parallel
// ingestion.
//
// Files are mapped read-only in one or more segments whose boundaries
// always fall on line breaks, so a line never straddles two segments
// and line access needs no copying or reassembly. On top of the
// mapping sit line-aligned chunk computation and a parallel line
// feeder for multi-core scans of graph edge lists, logs, CSV and
// similar formats.
//
// # Quick Start
//
//	f, err := mapline.Open("graph.edges")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	r, _ := f.Reader(0, f.Size())
//	for r.Next() {
//	    process(r.Bytes()) // zero-copy view into the mapping
//	}
//	if err := r.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Parallel Ingestion
//
// IngestLines splits the file into line-aligned chunks and feeds every
// line to a callback, one goroutine per chunk:
//
//	var lines atomic.Int64
//	err := f.IngestLines(ctx, func(chunk int, s mapline.Span, line []byte) error {
//	    lines.Add(1)
//	    return nil
//	}, mapline.WithWorkers(8))
//
// Within a chunk, lines arrive in file order from a single goroutine;
// across chunks the callback runs concurrently. A failing chunk is
// reported as *ChunkError with its byte range, so the caller can
// reprocess exactly the failed part:
//
//	var ce *mapline.ChunkError
//	if errors.As(err, &ce) {
//	    retry(f, ce.Start, ce.End)
//	}
//
// # Chunking
//
// Boundaries and Chunks expose the chunk computation directly for
// callers that schedule their own workers:
//
//	chunks, _ := f.Chunks(16)
//	for _, c := range chunks {
//	    go scan(f, c.Start, c.End)
//	}
//
// Chunk bounds are deterministic for a given file content and count,
// land immediately after line terminators, and cover the file exactly.
//
// # Errors
//
// Sentinel errors (ErrClosed, ErrOutOfRange, ErrNotRegular) and typed
// errors (*MapError, *IOError, *ChunkError) support errors.Is and
// errors.As. Failures from the operating system keep their cause
// chain, so errors.Is(err, fs.ErrNotExist) works after a failed Open.
//
// # Concurrency
//
// A File is safe for concurrent reads: Boundaries, Reader, IngestLines
// and the byte accessors may all run in parallel. LineReader values
// are single-goroutine. Close must not race with in-flight reads;
// slices returned by Bytes alias the mapping and must not be used
// after Close.
package mapline
