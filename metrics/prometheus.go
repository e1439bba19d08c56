// Package metrics provides the cache's counters and their Prometheus export.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Exporter mirrors cache events into Prometheus counters. It implements
// types.Observer, so it plugs straight into configcache.WithObserver.
type Exporter struct {
	HitsTotal          prometheus.Counter
	MissesTotal        prometheus.Counter
	EvictionsTotal     prometheus.Counter
	InvalidationsTotal prometheus.Counter
	ExpirationsTotal   prometheus.Counter
}

// NewExporter creates an Exporter registered on the default registry under
// the given namespace.
func NewExporter(namespace string) *Exporter {
	return &Exporter{
		HitsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Total number of cache hits",
		}),
		MissesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Total number of cache misses",
		}),
		EvictionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_evictions_total",
			Help:      "Total number of entries evicted for capacity",
		}),
		InvalidationsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_invalidations_total",
			Help:      "Total number of entries removed by explicit invalidation",
		}),
		ExpirationsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_expirations_total",
			Help:      "Total number of entries removed after exceeding their TTL",
		}),
	}
}

func (e *Exporter) Hit()          { e.HitsTotal.Inc() }
func (e *Exporter) Miss()         { e.MissesTotal.Inc() }
func (e *Exporter) Eviction()     { e.EvictionsTotal.Inc() }
func (e *Exporter) Invalidation() { e.InvalidationsTotal.Inc() }
func (e *Exporter) Expire()       { e.ExpirationsTotal.Inc() }

// Server runs an HTTP server exposing /metrics and /healthz.
type Server struct {
	server *http.Server
}

// NewServer creates a metrics server on the given address.
func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return &Server{
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
	}
}

// Start starts the server (blocking).
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// StartAsync starts the server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		_ = s.server.ListenAndServe()
	}()
}

// Stop shuts the server down.
func (s *Server) Stop() error {
	return s.server.Close()
}
