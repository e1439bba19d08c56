package types

import "time"

// CacheEntry holds one cached release configuration.
// Recency ordering lives in the eviction policy, not here.
type CacheEntry struct {
	Key       string
	Value     any
	CreatedAt time.Time
}

// Age returns how long the entry has existed.
func (e *CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.CreatedAt)
}
