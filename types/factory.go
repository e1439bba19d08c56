package types

import "context"

// Factory is the contract between the cache and whatever builds release configurations.
type Factory interface {

	/*
		Build is called when the cache misses. The release was not found in memory
		(or its entry expired), so the cache asks the Factory to construct it.

		1. Cache checks memory → entry not found or too old
		2. Cache calls Build(release)
		3. Factory assembles the configuration (network calls, file reads, ...)
		4. Cache stores the result in memory
		5. Cache returns the result

		Build may be slow and may fail. The cache never retries it; retry policy,
		if any, belongs to the Factory or the caller. It should be safe to call
		Build again for the same release after a failure.
	*/
	Build(ctx context.Context, release string) (any, error)
}

/*
FactoryFunc adapts a plain function into a Factory.

This is what makes testing (and small programs) pleasant:

	f := types.FactoryFunc(func(ctx context.Context, release string) (any, error) {
	    return loadConfigFor(release)
	})

No struct, no method set, just the behavior.
*/
type FactoryFunc func(ctx context.Context, release string) (any, error)

func (f FactoryFunc) Build(ctx context.Context, release string) (any, error) {
	return f(ctx, release)
}
