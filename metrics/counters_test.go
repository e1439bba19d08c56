package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitRateWithNoRequestsIsZero(t *testing.T) {
	c := NewCounters()

	assert.Equal(t, 0.0, c.HitRate())
	assert.Equal(t, uint64(0), c.Snapshot().TotalRequests)
}

func TestHitRatePercentage(t *testing.T) {
	c := NewCounters()

	for i := 0; i < 7; i++ {
		c.Hit()
	}
	for i := 0; i < 3; i++ {
		c.Miss()
	}

	assert.Equal(t, 70.0, c.HitRate())
}

func TestHitRateRoundsToTwoDecimals(t *testing.T) {
	c := NewCounters()

	// 1 hit, 2 misses: 33.333...% rounds to 33.33.
	c.Hit()
	c.Miss()
	c.Miss()
	assert.Equal(t, 33.33, c.HitRate())

	// 2 hits, 1 miss: 66.666...% rounds to 66.67.
	c2 := NewCounters()
	c2.Hit()
	c2.Hit()
	c2.Miss()
	assert.Equal(t, 66.67, c2.HitRate())
}

func TestSnapshotProjection(t *testing.T) {
	c := NewCounters()

	c.Hit()
	c.Hit()
	c.Miss()
	c.Eviction()
	c.Invalidation()
	c.Invalidation()

	s := c.Snapshot()
	assert.Equal(t, uint64(2), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.Equal(t, uint64(1), s.Evictions)
	assert.Equal(t, uint64(2), s.ManualInvalidations)
	assert.Equal(t, uint64(3), s.TotalRequests)
	assert.Equal(t, 66.67, s.HitRate)
}

func TestCountersAreRaceSafe(t *testing.T) {
	c := NewCounters()

	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Hit()
				c.Miss()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(8000), c.Hits())
	assert.Equal(t, uint64(8000), c.Misses())
	assert.Equal(t, 50.0, c.HitRate())
}
