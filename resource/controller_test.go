package resource

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_IngestSlots(t *testing.T) {
	c := NewController(Config{MaxConcurrentIngests: 2})

	// Acquire both slots
	require.NoError(t, c.AcquireIngest(context.Background()))
	require.NoError(t, c.AcquireIngest(context.Background()))
	assert.Equal(t, int64(2), c.ActiveIngests())

	// Third slot is unavailable
	assert.False(t, c.TryAcquireIngest())

	// A blocking acquire times out
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireIngest(ctx), context.DeadlineExceeded)

	// Release one, slot becomes available again
	c.ReleaseIngest()
	assert.Equal(t, int64(1), c.ActiveIngests())
	assert.True(t, c.TryAcquireIngest())
}

func TestController_DefaultSlots(t *testing.T) {
	c := NewController(Config{})

	require.NoError(t, c.AcquireIngest(context.Background()))
	assert.False(t, c.TryAcquireIngest())

	c.ReleaseIngest()
	assert.Equal(t, int64(0), c.ActiveIngests())
}

func TestController_NilSafe(t *testing.T) {
	var c *Controller

	require.NoError(t, c.AcquireIngest(context.Background()))
	assert.True(t, c.TryAcquireIngest())
	c.ReleaseIngest()
	assert.Equal(t, int64(0), c.ActiveIngests())
	assert.NoError(t, c.AcquireIO(context.Background(), 1024))
}

func TestController_UnlimitedIO(t *testing.T) {
	c := NewController(Config{})

	assert.NoError(t, c.AcquireIO(context.Background(), 1<<20))
}

func TestController_IOLimit(t *testing.T) {
	// The limiter starts with a full one-second burst: the first 1000
	// bytes pass immediately, the next request has to wait.
	c := NewController(Config{IOLimitBytesPerSec: 1000})

	start := time.Now()
	require.NoError(t, c.AcquireIO(context.Background(), 1000))
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, c.AcquireIO(ctx, 500))
}

func TestRateLimitedReader(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})

	src := bytes.NewReader([]byte("throttled bytes"))
	r := NewRateLimitedReader(src, c, context.Background())

	buf := make([]byte, 9)
	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "throttled", string(buf[:n]))
}
