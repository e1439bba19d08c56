// This file defines how cache entries expire over time.

package expiration

import (
	"time"

	"github.com/releng-tools/configcache/types"
)

/*
Strategy is the interface the expiration rule must follow. Instead of
hard-coding the age check into the cache, we define a strategy so the
behavior can be swapped (and faked in tests) easily.
*/
type Strategy interface {

	// IsExpired checks if the entry should be treated as absent at this moment.
	IsExpired(*types.CacheEntry, time.Time) bool

	// Remaining reports how much validity the entry has left.
	// Never negative; an expired entry has 0 remaining.
	Remaining(*types.CacheEntry, time.Time) time.Duration
}
