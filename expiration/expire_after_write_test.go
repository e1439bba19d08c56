package expiration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/releng-tools/configcache/types"
)

func TestExpireAfterWrite(t *testing.T) {
	created := time.Now()
	ent := &types.CacheEntry{Key: "4.19.1", CreatedAt: created}
	strat := &ExpireAfterWrite{TTL: 10 * time.Second}

	assert.False(t, strat.IsExpired(ent, created))
	assert.False(t, strat.IsExpired(ent, created.Add(9*time.Second)))

	// The boundary counts as expired.
	assert.True(t, strat.IsExpired(ent, created.Add(10*time.Second)))
	assert.True(t, strat.IsExpired(ent, created.Add(time.Hour)))
}

func TestRemaining(t *testing.T) {
	created := time.Now()
	ent := &types.CacheEntry{Key: "4.19.1", CreatedAt: created}
	strat := &ExpireAfterWrite{TTL: 10 * time.Second}

	assert.Equal(t, 10*time.Second, strat.Remaining(ent, created))
	assert.Equal(t, 4*time.Second, strat.Remaining(ent, created.Add(6*time.Second)))

	// Floored at zero once past the TTL.
	assert.Equal(t, time.Duration(0), strat.Remaining(ent, created.Add(15*time.Second)))
}
