package configcache

import "time"

/*
The cache expires lazily: Get never serves an entry past its TTL. That is
enough for correctness, but a release nobody asks about again would sit in
memory until capacity pressure pushes it out. The janitor covers that case.

If a cleanup interval is configured, a background goroutine sweeps the map
on a ticker and drops every expired entry. A sweep removal moves no counter:
expiry is neither an eviction nor an invalidation. Only the observer is
told, via Expire.
*/

func (c *ConfigCache) startJanitor() {
	if c.cleanupInterval <= 0 {
		return
	}

	ticker := time.NewTicker(c.cleanupInterval)

	go func() {
		for {
			select {
			case <-ticker.C:
				c.removeExpired()
			case <-c.stopJanitor:
				ticker.Stop()
				return
			}
		}
	}()
}

func (c *ConfigCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for release, ent := range c.entries {
		if c.exp.IsExpired(ent, now) {
			c.removeLocked(release)
			c.observer.Expire()
		}
	}
}
