// Package observability holds Prometheus metrics and OpenTelemetry tracer setup.
package observability

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ListingRequests counts content view requests by kind and outcome.
	ListingRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_listing_requests_total",
		Help: "Total content view requests by kind and outcome",
	}, []string{"kind", "outcome"})

	// CacheRequests counts cache lookups by cache name and result (hit/miss).
	CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_cache_requests_total",
		Help: "Total cache lookups by cache name and result",
	}, []string{"cache", "result"})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}
