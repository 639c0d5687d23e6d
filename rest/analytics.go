package rest

import "github.com/prometheus/client_golang/prometheus"

var (
	restRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swyft_rest_requests_total",
			Help: "REST requests by method and response status",
		},
		[]string{"method", "status"},
	)

	restRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swyft_rest_request_duration_seconds",
			Help:    "REST request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// Collectors returns the metrics of the REST client so they can be registered.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{restRequests, restRequestDuration}
}
