package types

// This file defines how the cache reports what it is doing.

/*
Observer is an interface that defines what the cache wants to announce.
Each method represents an event in the cache lifecycle. The cache will call
these methods whenever something happens, in addition to its own internal
counters. A Prometheus exporter is one implementation; tests are another.
*/
type Observer interface {

	// Hit is called when the cache successfully returns a value already in memory.
	Hit()

	// Miss is called when the cache does NOT find a usable entry and has to
	// construct one through the Factory.
	Miss()

	// Eviction is called when an entry is removed because the cache is full
	// and needs space.
	Eviction()

	// Invalidation is called when an entry is removed by an explicit
	// invalidate call. Bulk invalidation reports once per removed entry.
	Invalidation()

	// Expire is called when an entry is removed because it has passed its TTL.
	Expire()
}

/*
NoopObserver is a "do nothing" implementation of Observer.

Why do we need this?
--------------------
We don't want to force every user of the cache to care about metrics export.

If someone does not care, we still want the cache to work without:
- nil pointer checks everywhere
- if observer != nil conditions

So we provide a default implementation that simply ignores all events.
*/
type NoopObserver struct{}

// All methods below intentionally do nothing.
// This satisfies the Observer interface without side effects.

func (NoopObserver) Hit()          {}
func (NoopObserver) Miss()         {}
func (NoopObserver) Eviction()     {}
func (NoopObserver) Invalidation() {}
func (NoopObserver) Expire()       {}
