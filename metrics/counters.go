package metrics

import (
	"math"
	"sync/atomic"
)

/*
Counters tracks what the cache has done since construction.

- Hits                → entry found in memory and still valid
- Misses             → entry absent or expired, Factory had to run
- Evictions          → entries removed for capacity, never for age
- ManualInvalidations → entries removed by an explicit invalidate call

Counters are monotonically non-decreasing for the lifetime of the cache;
there is no reset. Hits+Misses always equals the number of completed Get
calls, which is what makes the hit rate meaningful.

The fields are atomics rather than plain ints guarded by the cache lock so
that Snapshot() and a Prometheus scrape never have to wait behind a slow
in-flight construction.
*/
type Counters struct {
	hits                atomic.Uint64
	misses              atomic.Uint64
	evictions           atomic.Uint64
	manualInvalidations atomic.Uint64
}

func NewCounters() *Counters {
	return &Counters{}
}

func (c *Counters) Hit()          { c.hits.Add(1) }
func (c *Counters) Miss()         { c.misses.Add(1) }
func (c *Counters) Eviction()     { c.evictions.Add(1) }
func (c *Counters) Invalidation() { c.manualInvalidations.Add(1) }

func (c *Counters) Hits() uint64                { return c.hits.Load() }
func (c *Counters) Misses() uint64              { return c.misses.Load() }
func (c *Counters) Evictions() uint64           { return c.evictions.Load() }
func (c *Counters) ManualInvalidations() uint64 { return c.manualInvalidations.Load() }

// HitRate returns the percentage of Get calls served from memory, rounded to
// two decimal places. With no requests yet the rate is 0.0, not NaN.
func (c *Counters) HitRate() float64 {
	hits := c.hits.Load()
	total := hits + c.misses.Load()
	if total == 0 {
		return 0.0
	}
	rate := float64(hits) / float64(total) * 100
	return math.Round(rate*100) / 100
}

// Snapshot is the wire-friendly projection of Counters.
type Snapshot struct {
	Hits                uint64  `json:"hits"`
	Misses              uint64  `json:"misses"`
	Evictions           uint64  `json:"evictions"`
	ManualInvalidations uint64  `json:"manual_invalidations"`
	HitRate             float64 `json:"hit_rate"`
	TotalRequests       uint64  `json:"total_requests"`
}

// Snapshot reads every counter once and derives the rest. Individual loads
// are atomic; the snapshot as a whole is taken under the cache lock when
// consistency with the entry listing matters.
func (c *Counters) Snapshot() Snapshot {
	s := Snapshot{
		Hits:                c.hits.Load(),
		Misses:              c.misses.Load(),
		Evictions:           c.evictions.Load(),
		ManualInvalidations: c.manualInvalidations.Load(),
	}
	s.TotalRequests = s.Hits + s.Misses
	if s.TotalRequests > 0 {
		s.HitRate = math.Round(float64(s.Hits)/float64(s.TotalRequests)*100*100) / 100
	}
	return s
}
