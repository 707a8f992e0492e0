package codegap

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReference struct {
	calls atomic.Int32
	codes CodeSet
	err   error
	delay time.Duration
}

func (c *countingReference) Reference(ctx context.Context) (CodeSet, error) {
	c.calls.Add(1)
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	if c.err != nil {
		return nil, c.err
	}
	return c.codes, nil
}

// gatedReference blocks its first load until release is closed. Each load
// returns the next entry of sets.
type gatedReference struct {
	calls   atomic.Int32
	sets    []CodeSet
	started chan struct{}
	release chan struct{}
}

func newGatedReference(sets ...CodeSet) *gatedReference {
	return &gatedReference{sets: sets, started: make(chan struct{}), release: make(chan struct{})}
}

func (g *gatedReference) Reference(ctx context.Context) (CodeSet, error) {
	n := g.calls.Add(1)
	if n == 1 {
		close(g.started)
		<-g.release
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return g.sets[int(n)-1], nil
}

func TestCachedReference(t *testing.T) {
	t.Run("ReusesWithinTTL", func(t *testing.T) {
		src := &countingReference{codes: NewCodeSet("US")}
		cache := NewCachedReference(src, time.Minute)

		for i := 0; i < 3; i++ {
			got, err := cache.Reference(context.Background())
			require.NoError(t, err)
			assert.Equal(t, NewCodeSet("US"), got)
		}
		assert.Equal(t, int32(1), src.calls.Load())
	})

	t.Run("ReloadsAfterTTL", func(t *testing.T) {
		src := &countingReference{codes: NewCodeSet("US")}
		cache := NewCachedReference(src, time.Minute)
		now := time.Now()
		cache.now = func() time.Time { return now }

		_, err := cache.Reference(context.Background())
		require.NoError(t, err)

		now = now.Add(2 * time.Minute)
		_, err = cache.Reference(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), src.calls.Load())
	})

	t.Run("ZeroTTLDisablesCaching", func(t *testing.T) {
		src := &countingReference{codes: NewCodeSet("US")}
		cache := NewCachedReference(src, 0)

		_, _ = cache.Reference(context.Background())
		_, _ = cache.Reference(context.Background())
		assert.Equal(t, int32(2), src.calls.Load())
	})

	t.Run("Invalidate", func(t *testing.T) {
		src := &countingReference{codes: NewCodeSet("US")}
		cache := NewCachedReference(src, time.Minute)

		_, _ = cache.Reference(context.Background())
		cache.Invalidate()
		_, _ = cache.Reference(context.Background())
		assert.Equal(t, int32(2), src.calls.Load())
	})

	t.Run("ErrorsAreNotCached", func(t *testing.T) {
		src := &countingReference{err: assert.AnError}
		cache := NewCachedReference(src, time.Minute)

		_, err := cache.Reference(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
		_, err = cache.Reference(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, int32(2), src.calls.Load())
	})

	t.Run("ConcurrentMissesShareLoad", func(t *testing.T) {
		src := &countingReference{codes: NewCodeSet("US"), delay: 50 * time.Millisecond}
		cache := NewCachedReference(src, time.Minute)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := cache.Reference(context.Background())
				assert.NoError(t, err)
				assert.True(t, got.Has("US"))
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), src.calls.Load())
	})

	t.Run("InvalidateDuringLoad", func(t *testing.T) {
		src := newGatedReference(NewCodeSet("OLD"), NewCodeSet("NEW"))
		cache := NewCachedReference(src, time.Minute)

		done := make(chan CodeSet)
		go func() {
			got, err := cache.Reference(context.Background())
			assert.NoError(t, err)
			done <- got
		}()

		<-src.started
		cache.Invalidate()
		close(src.release)
		assert.Equal(t, NewCodeSet("OLD"), <-done)

		got, err := cache.Reference(context.Background())
		require.NoError(t, err)
		assert.Equal(t, NewCodeSet("NEW"), got)
		assert.Equal(t, int32(2), src.calls.Load())

		got, err = cache.Reference(context.Background())
		require.NoError(t, err)
		assert.Equal(t, NewCodeSet("NEW"), got)
		assert.Equal(t, int32(2), src.calls.Load())
	})

	t.Run("CancelledCallerDoesNotFailLoad", func(t *testing.T) {
		src := newGatedReference(NewCodeSet("US"))
		cache := NewCachedReference(src, time.Minute)

		ctx, cancel := context.WithCancel(context.Background())
		errs := make(chan error)
		go func() {
			_, err := cache.Reference(ctx)
			errs <- err
		}()

		<-src.started
		cancel()
		close(src.release)
		assert.NoError(t, <-errs)

		got, err := cache.Reference(context.Background())
		require.NoError(t, err)
		assert.True(t, got.Has("US"))
		assert.Equal(t, int32(1), src.calls.Load())
	})
}
