package resource

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits for ingestion.
type Config struct {
	// MaxConcurrentIngests is the maximum number of ingest runs allowed
	// to proceed at once. If 0, defaults to 1.
	MaxConcurrentIngests int64

	// IOLimitBytesPerSec is the maximum scan throughput across all runs
	// sharing this controller. If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller throttles ingestion runs that share a process. Embedders
// use it to keep bulk graph loads from starving everything else: slots
// bound how many files are scanned concurrently, the IO limit bounds
// how fast.
//
// All methods are safe on a nil receiver and act as no-ops, so callers
// can thread an optional controller through without guarding every call.
type Controller struct {
	cfg Config

	// Concurrency
	ingestSem *semaphore.Weighted
	active    atomic.Int64

	// IO
	ioLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentIngests <= 0 {
		cfg.MaxConcurrentIngests = 1
	}

	c := &Controller{
		cfg:       cfg,
		ingestSem: semaphore.NewWeighted(cfg.MaxConcurrentIngests),
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}

	return c
}

// AcquireIngest reserves an ingest slot.
// Blocks until a slot is free or ctx is canceled.
func (c *Controller) AcquireIngest(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if err := c.ingestSem.Acquire(ctx, 1); err != nil {
		return err
	}
	c.active.Add(1)
	return nil
}

// TryAcquireIngest reserves an ingest slot without blocking.
// Returns true if acquired.
func (c *Controller) TryAcquireIngest() bool {
	if c == nil {
		return true
	}
	if !c.ingestSem.TryAcquire(1) {
		return false
	}
	c.active.Add(1)
	return true
}

// ReleaseIngest releases an ingest slot.
func (c *Controller) ReleaseIngest() {
	if c == nil {
		return
	}
	c.ingestSem.Release(1)
	c.active.Add(-1)
}

// ActiveIngests returns the number of runs currently holding a slot.
func (c *Controller) ActiveIngests() int64 {
	if c == nil {
		return 0
	}
	return c.active.Load()
}

// AcquireIO waits until the IO limit allows the specified number of
// bytes. A single request larger than one second's allowance fails
// rather than wait forever.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.ioLimiter == nil {
		return nil
	}
	return c.ioLimiter.WaitN(ctx, bytes)
}
