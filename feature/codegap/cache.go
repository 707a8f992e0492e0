package codegap

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// CachedReference wraps a ReferenceSource and reuses its result for ttl.
// Concurrent misses share a single load.
type CachedReference struct {
	source ReferenceSource
	ttl    time.Duration
	now    func() time.Time

	mu    sync.RWMutex
	codes CodeSet
	built time.Time
	// gen is bumped by Invalidate; a load started under an older gen does
	// not store its result.
	gen uint64
	sf  singleflight.Group
}

const referenceKey = "reference"


// NewCachedReference creates the cache. A zero ttl disables caching.
func NewCachedReference(source ReferenceSource, ttl time.Duration) *CachedReference {
	return &CachedReference{source: source, ttl: ttl, now: time.Now}
}

func (c *CachedReference) fresh() (CodeSet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.codes == nil || c.ttl <= 0 || c.now().Sub(c.built) > c.ttl {
		return nil, false
	}
	return c.codes, true
}

// Reference returns the cached set, loading it when absent or expired.
// The returned set is shared and must not be modified.
func (c *CachedReference) Reference(ctx context.Context) (CodeSet, error) {
	if codes, ok := c.fresh(); ok {
		return codes, nil
	}

	// The load is shared, so one caller going away must not fail the rest.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := c.sf.Do(referenceKey, func() (any, error) {
		if codes, ok := c.fresh(); ok {
			return codes, nil
		}
		c.mu.RLock()
		gen := c.gen
		c.mu.RUnlock()

		codes, err := c.source.Reference(loadCtx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		if c.gen == gen {
			c.codes = codes
			c.built = c.now()
		}
		c.mu.Unlock()
		return codes, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(CodeSet), nil
}

// Invalidate drops the cached set so the next call reloads it. A load already
// in flight still answers its callers but is not cached.
func (c *CachedReference) Invalidate() {
	c.mu.Lock()
	c.codes = nil
	c.gen++
	c.mu.Unlock()
	c.sf.Forget(referenceKey)
}
