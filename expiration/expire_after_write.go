package expiration

import (
	"time"

	"github.com/releng-tools/configcache/types"
)

/*
ExpireAfterWrite implements the classic fixed-TTL behavior. The clock starts
when the entry is created and never restarts; reads do not extend the
lifetime. Once age reaches TTL the entry is treated as absent, no matter how
recently or frequently it was read.

This is the right rule for release configurations: the point of the TTL is to
bound staleness against the upstream sources the Factory reads from, and a
popular release is exactly the one that must not be served stale forever.
*/
type ExpireAfterWrite struct {

	// TTL defines how long an entry remains valid after it is created.
	TTL time.Duration
}

// IsExpired reports whether the entry's age has reached the TTL.
// The boundary counts: an entry exactly TTL old is already gone.
func (e *ExpireAfterWrite) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	return ent.Age(now) >= e.TTL
}

// Remaining reports the validity the entry has left, floored at zero.
func (e *ExpireAfterWrite) Remaining(ent *types.CacheEntry, now time.Time) time.Duration {
	d := e.TTL - ent.Age(now)
	if d < 0 {
		return 0
	}
	return d
}
