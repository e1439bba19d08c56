package eviction

/*
This file defines how the cache decides what to remove when it runs out of space.
*/

/*
Policy is the interface the eviction strategy must follow.

The cache does NOT care how eviction tracking works internally.
It only calls these methods, always under the cache's own lock:
the policy carries no locking of its own.
*/
type Policy interface {

	// OnGet is called whenever a key is served from the cache.
	// A hit makes the key "recently used" again.
	OnGet(string)

	// OnPut is called whenever a key is inserted into the cache.
	// A fresh insert starts out as the most recently used key.
	OnPut(string)

	// Remove is called when a key leaves the cache for any reason other
	// than eviction (expiry, explicit invalidation), so the policy can
	// drop its bookkeeping for that key.
	Remove(string)

	// Evict is called when the cache is FULL and needs space.
	// It returns the key that should go; the cache then actually removes
	// it from storage. Returns "" when there is nothing to evict.
	Evict() string

	// Keys returns every tracked key ordered most-recently-used first.
	// Used for stats snapshots.
	Keys() []string
}
