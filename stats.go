package configcache

import (
	"time"

	"github.com/releng-tools/configcache/metrics"
)

// Stats is a point-in-time view of the cache for observability. Size,
// metrics and the entry listing are captured together under the lock, so
// the view is never torn (the listing always has exactly CacheSize rows).
type Stats struct {
	CacheSize int              `json:"cache_size"`
	MaxSize   int              `json:"max_size"`
	Metrics   metrics.Snapshot `json:"metrics"`
	Entries   []EntryStats     `json:"entries"`
}

// EntryStats describes one cached release: how old its configuration is and
// how much validity it has left.
type EntryStats struct {
	Key          string        `json:"key"`
	Age          time.Duration `json:"age"`
	RemainingTTL time.Duration `json:"remaining_ttl"`
}

// Stats returns a consistent snapshot. Entries are listed most recently
// used first. Entries past their TTL that have not been lazily removed yet
// show RemainingTTL of zero.
func (c *ConfigCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	s := Stats{
		CacheSize: len(c.entries),
		MaxSize:   c.capacity,
		Metrics:   c.counters.Snapshot(),
		Entries:   make([]EntryStats, 0, len(c.entries)),
	}

	for _, key := range c.policy.Keys() {
		ent, ok := c.entries[key]
		if !ok {
			continue
		}
		s.Entries = append(s.Entries, EntryStats{
			Key:          key,
			Age:          ent.Age(now),
			RemainingTTL: c.exp.Remaining(ent, now),
		})
	}

	return s
}
