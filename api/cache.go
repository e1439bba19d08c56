package api

import (
	"context"

	"github.com/releng-tools/configcache"
)

/*
Cache defines the PUBLIC API of the release-configuration cache.
This is a contract that guarantees certain behaviors, without exposing internals.
All of the details like (eviction order, expiration, concurrency, single-flight
construction) are hidden behind this interface.
*/
type Cache interface {

	/*
		Get retrieves the configuration for the given release.

		BEHAVIOR:
		-------------------
		1. If the release is cached and NOT expired:
		   - Return the value immediately (cache hit)

		2. If the release is NOT cached, or its entry is expired:
		   - Construct the value through the Factory (may be slow, may fail)
		   - Store it in cache
		   - Return the value (cache miss)

		Concurrent calls for the same missing release share ONE construction
		and all observe the same value.
	*/
	Get(ctx context.Context, release string) (any, error)

	/*
		Invalidate removes one release from the cache.

		BEHAVIOR:
		---------
		- Present release: removed, counted as a manual invalidation
		- Absent release: no-op, nothing counted

		This operation is idempotent and never fails.

		USE CASES:
		----------
		- The upstream release payload changed and the cached copy is wrong
		- Administrative cleanup
	*/
	Invalidate(release string)

	/*
		InvalidateAll empties the cache.

		Each removed release counts as one manual invalidation, so emptying a
		cache with 5 entries moves the counter by 5 (and by 0 if it was
		already empty).
	*/
	InvalidateAll()

	/*
		Warm pre-populates the cache for a list of releases, in order, before
		traffic arrives.

		Each release behaves exactly like a Get call. The batch stops at the
		first construction failure; releases warmed before the failure stay
		cached.
	*/
	Warm(ctx context.Context, releases []string) error

	/*
		Stats returns a consistent snapshot of the cache:
		- current size and configured maximum
		- hit/miss/eviction/invalidation counters and the derived hit rate
		- one row per cached release with its age and remaining TTL

		WHY THIS IS IMPORTANT:
		----------------------
		- Debugging
		- Monitoring cache behavior
		- Sizing capacity and TTL in production
	*/
	Stats() configcache.Stats

	/*
		Close shuts the cache down, stopping the background janitor if one
		was configured. Safe to call more than once.
	*/
	Close()
}
