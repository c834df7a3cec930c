// Package ops serves the operator endpoints: liveness, readiness and metrics
package ops

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// readyTimeout bounds one readiness probe
const readyTimeout = 2 * time.Second

// Pinger is anything whose reachability decides readiness, the store in
// practice
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterOptions holds what the router serves
type RouterOptions struct {
	Store    Pinger              // Required
	Gatherer prometheus.Gatherer // Optional, defaults to the global registry

	// RequestsPerMinute limits probes per client IP; zero disables the limit
	RequestsPerMinute int
}

// Router builds the HTTP router with health, readiness and metrics routes
func Router(opts RouterOptions) http.Handler {
	if opts.Store == nil {
		panic("store is required")
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if opts.RequestsPerMinute > 0 {
		r.Use(httprate.LimitByIP(opts.RequestsPerMinute, time.Minute))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), readyTimeout)
		defer cancel()

		if err := opts.Store.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("readiness check failed")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("store unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}
