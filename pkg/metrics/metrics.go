// Package metrics exposes Prometheus collectors for the HTTP API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path.
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hackarena_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hackarena_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RegistrationsTotal counts completed event registrations by role.
	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hackarena_event_registrations_total",
			Help: "Total number of completed event registrations",
		},
		[]string{"role"},
	)

	// TeamsCreatedTotal counts created teams.
	TeamsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hackarena_teams_created_total",
			Help: "Total number of teams created",
		},
	)

	// CacheHits counts catalog cache hits.
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hackarena_cache_hits_total",
			Help: "Total number of catalog cache hits",
		},
	)

	// CacheMisses counts catalog cache misses.
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hackarena_cache_misses_total",
			Help: "Total number of catalog cache misses",
		},
	)
)
