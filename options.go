package mapline

import (
	"log/slog"

	"github.com/graphkit/mapline/internal/fs"
	"github.com/graphkit/mapline/resource"
)

type options struct {
	maxSegmentSize   int64
	pattern          AccessPattern
	fs               fs.FileSystem
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Open behavior.
//
// Today options primarily exist to avoid exploding the API surface
// (e.g. platform-specific constructor variants).
type Option func(*options)

// WithMaxSegmentSize caps the size of a single mapping segment in bytes.
// Files larger than the cap are mapped as multiple segments whose
// boundaries fall on line breaks, so line access stays zero-copy. A
// single line longer than the cap extends its segment past it.
//
// Zero or negative means the platform default, which maps the whole
// file as one segment on 64-bit systems.
func WithMaxSegmentSize(n int64) Option {
	return func(o *options) {
		o.maxSegmentSize = n
	}
}

// WithAccessPattern advises the kernel about the expected access pattern
// for the mapped region (madvise on unix). The advice is best-effort and
// never fails Open.
func WithAccessPattern(p AccessPattern) Option {
	return func(o *options) {
		o.pattern = p
	}
}

// WithMetricsCollector configures metrics collection.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
//
// If nil is passed, a no-op logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithLogLevel is a convenience option that creates a text logger
// at the given level.
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// withFileSystem overrides the filesystem used to open and probe the
// file. Used by tests for fault injection.
func withFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

func applyOptions(optFns ...Option) *options {
	o := &options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		fn(o)
	}
	return o
}

// IngestOptions configures a parallel ingestion run.
type IngestOptions struct {
	// Workers caps the number of goroutines processing chunks
	// concurrently. Zero or negative means runtime.GOMAXPROCS(0).
	Workers int

	// ChunkCount overrides the number of chunks the file is split into.
	// Zero means one chunk per worker.
	ChunkCount int

	// ContinueOnError keeps processing remaining chunks after a chunk
	// fails. All chunk errors are reported after the run; without this
	// flag the first failure cancels the remaining chunks.
	ContinueOnError bool

	// Controller throttles ingestion against shared process-wide
	// resource limits. Nil means no throttling.
	Controller *resource.Controller
}

// DefaultIngestOptions returns the default ingestion options.
func DefaultIngestOptions() IngestOptions {
	return IngestOptions{}
}

// WithWorkers sets the worker goroutine cap for an ingestion run.
func WithWorkers(n int) func(*IngestOptions) {
	return func(o *IngestOptions) {
		o.Workers = n
	}
}

// WithChunkCount overrides the number of chunks for an ingestion run.
func WithChunkCount(n int) func(*IngestOptions) {
	return func(o *IngestOptions) {
		o.ChunkCount = n
	}
}

// WithContinueOnError keeps an ingestion run going after chunk failures.
func WithContinueOnError() func(*IngestOptions) {
	return func(o *IngestOptions) {
		o.ContinueOnError = true
	}
}

// WithController throttles an ingestion run with a shared resource
// controller.
func WithController(c *resource.Controller) func(*IngestOptions) {
	return func(o *IngestOptions) {
		o.Controller = c
	}
}
