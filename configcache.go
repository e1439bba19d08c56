// Package configcache provides a bounded, TTL-expiring, LRU-evicting cache
// for release configurations, with single-flight construction.
package configcache

import (
	"context"
	"sync"
	"time"

	"github.com/releng-tools/configcache/eviction"
	"github.com/releng-tools/configcache/expiration"
	"github.com/releng-tools/configcache/metrics"
	"github.com/releng-tools/configcache/types"
	"golang.org/x/sync/singleflight"
)

/*
ConfigCache is the orchestrator that connects:
- the bounded entry map
- LRU eviction
- TTL expiration
- single-flight construction through the Factory
- counters and the optional observer

Concurrency model: one mutex guards the map, the eviction policy state and
the decision points of every operation. Factory construction runs OUTSIDE
the mutex, inside a per-release singleflight flight. Distinct releases
therefore construct in parallel, while concurrent requests for the same
missing release share one Factory call and one result. The alternative of
holding the lock across construction would be equally correct but would
serialize every release behind any one slow build.
*/
type ConfigCache struct {
	mu      sync.Mutex
	entries map[string]*types.CacheEntry

	// policy tracks recency for every key in entries, nothing more.
	policy eviction.Policy

	// exp decides when an entry is too old to serve.
	exp expiration.Strategy

	capacity int

	// factory is how the cache talks to the outside world when it does NOT
	// have a usable configuration in memory.
	factory types.Factory

	counters *metrics.Counters
	observer types.Observer

	// flights deduplicates concurrent construction of the same release.
	flights singleflight.Group

	cleanupInterval time.Duration
	stopJanitor     chan struct{}
	closeOnce       sync.Once
}

/*
New creates a ConfigCache.

maxSize is the maximum number of cached releases, ttl how long each cached
configuration stays valid after construction. Both must be positive and the
factory must be non-nil, otherwise a configuration error is returned.
*/
func New(maxSize int, ttl time.Duration, factory types.Factory, opts ...Option) (*ConfigCache, error) {
	if maxSize <= 0 {
		return nil, newConfigurationError("max size must be positive, got %d", maxSize)
	}
	if ttl <= 0 {
		return nil, newConfigurationError("ttl must be positive, got %s", ttl)
	}
	if factory == nil {
		return nil, newConfigurationError("factory must not be nil")
	}

	c := &ConfigCache{
		entries:     make(map[string]*types.CacheEntry),
		policy:      eviction.NewLRU(),
		exp:         &expiration.ExpireAfterWrite{TTL: ttl},
		capacity:    maxSize,
		factory:     factory,
		counters:    metrics.NewCounters(),
		observer:    types.NoopObserver{},
		stopJanitor: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.startJanitor()

	return c, nil
}

/*
Get returns the configuration for a release, constructing it via the
Factory if it is absent or expired.

Every completed call counts exactly one hit or one miss. A hit refreshes
the release's recency. N concurrent calls for the same missing release
produce one Factory call, one miss and N-1 hits, and every caller sees the
same value instance.
*/
func (c *ConfigCache) Get(ctx context.Context, release string) (any, error) {
	c.mu.Lock()
	if ent, ok := c.entries[release]; ok {
		if c.exp.IsExpired(ent, time.Now()) {
			// Too old to serve. Expiry is neither an eviction nor an
			// invalidation, so only the observer hears about it.
			c.removeLocked(release)
			c.observer.Expire()
		} else {
			c.counters.Hit()
			c.observer.Hit()
			c.policy.OnGet(release)
			v := ent.Value
			c.mu.Unlock()
			return v, nil
		}
	}
	c.mu.Unlock()

	return c.construct(ctx, release)
}

// construct runs the miss path. The singleflight group guarantees at most
// one Factory call per release at a time; the closure runs only for the
// flight leader, so the captured flag tells each caller whether it was the
// one that actually built.
func (c *ConfigCache) construct(ctx context.Context, release string) (any, error) {
	constructed := false

	v, err, _ := c.flights.Do(release, func() (any, error) {
		// A flight that landed between our lookup and now may already have
		// inserted the entry.
		c.mu.Lock()
		if ent, ok := c.entries[release]; ok && !c.exp.IsExpired(ent, time.Now()) {
			c.policy.OnGet(release)
			v := ent.Value
			c.mu.Unlock()
			return v, nil
		}
		c.mu.Unlock()

		val, err := c.factory.Build(ctx, release)
		if err != nil {
			return nil, newConstructionError(err, release)
		}
		constructed = true

		c.mu.Lock()
		c.insertLocked(release, val)
		c.mu.Unlock()

		return val, nil
	})

	if err != nil {
		// A failed construction is still a completed (and missed) Get,
		// for the leader and for everyone who joined its flight.
		c.counters.Miss()
		c.observer.Miss()
		return nil, err
	}

	if constructed {
		c.counters.Miss()
		c.observer.Miss()
	} else {
		// Joined someone else's flight, or the re-check found a fresh
		// entry: the result came from memory as far as this caller is
		// concerned.
		c.counters.Hit()
		c.observer.Hit()
	}

	return v, nil
}

// insertLocked places a freshly built value into the map, evicting the
// least-recently-used release first if the cache is full. Caller holds mu.
func (c *ConfigCache) insertLocked(release string, val any) {
	if len(c.entries) >= c.capacity {
		if victim := c.policy.Evict(); victim != "" {
			delete(c.entries, victim)
			c.counters.Eviction()
			c.observer.Eviction()
		}
	}

	c.entries[release] = &types.CacheEntry{
		Key:       release,
		Value:     val,
		CreatedAt: time.Now(),
	}
	c.policy.OnPut(release)
}

// removeLocked drops an entry without touching any counter. Caller holds mu.
func (c *ConfigCache) removeLocked(release string) {
	delete(c.entries, release)
	c.policy.Remove(release)
}

/*
Invalidate removes one release from the cache.

Removing a present release counts one manual invalidation. Removing an
absent release is a no-op: no error, no counter movement.
*/
func (c *ConfigCache) Invalidate(release string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[release]; !ok {
		return
	}
	c.removeLocked(release)
	c.counters.Invalidation()
	c.observer.Invalidation()
}

// InvalidateAll empties the cache, counting one manual invalidation per
// entry that existed. An empty cache is a no-op.
func (c *ConfigCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for release := range c.entries {
		c.removeLocked(release)
		c.counters.Invalidation()
		c.observer.Invalidation()
	}
}

/*
Warm pre-populates the cache for the given releases, in order, before
traffic arrives. Each release behaves exactly like a Get: already-cached
valid releases are hits and stay untouched, absent ones are constructed.

The batch is not atomic. The first construction failure stops the walk and
is returned; releases warmed before the failure remain cached.
*/
func (c *ConfigCache) Warm(ctx context.Context, releases []string) error {
	for _, release := range releases {
		if _, err := c.Get(ctx, release); err != nil {
			return err
		}
	}
	return nil
}

// Close stops the background janitor, if one is running. Safe to call more
// than once.
func (c *ConfigCache) Close() {
	c.closeOnce.Do(func() {
		close(c.stopJanitor)
	})
}
