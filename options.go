package configcache

import (
	"time"

	"github.com/releng-tools/configcache/types"
)

/*
Option is a functional configuration modifier for ConfigCache.

New() accepts a variadic list of options:

	c, err := configcache.New(50, 6*time.Hour, factory,
	    configcache.WithObserver(metrics.NewExporter("releng")),
	    configcache.WithCleanupInterval(time.Minute),
	)

Each Option mutates the cache before it becomes active, so adding knobs
later never breaks the constructor signature.
*/
type Option func(*ConfigCache)

// WithObserver attaches a sink that is notified of every cache event in
// addition to the internal counters. A Prometheus exporter is the usual
// choice. Passing nil keeps the default no-op sink.
func WithObserver(o types.Observer) Option {
	return func(c *ConfigCache) {
		if o != nil {
			c.observer = o
		}
	}
}

/*
WithCleanupInterval enables active expiration.

If d > 0, a background janitor removes expired entries every d, so releases
nobody asks for again still leave memory once their TTL passes.

If d <= 0 (the default), the cache relies solely on lazy expiration during
Get, which is all the correctness contract needs: an expired entry is never
returned either way.
*/
func WithCleanupInterval(d time.Duration) Option {
	return func(c *ConfigCache) {
		c.cleanupInterval = d
	}
}
