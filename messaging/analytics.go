package messaging

import "github.com/prometheus/client_golang/prometheus"

var (
	forwardedEventCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swyft_forwarder_events_total",
			Help: "Dispatch events published to the message broker",
		},
		[]string{"client", "type"},
	)

	discardedEventCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swyft_forwarder_events_discarded_total",
			Help: "Dispatch events dropped because the queue was full or publishing failed",
		},
		[]string{"client", "reason"},
	)
)

// Collectors returns the metrics of the forwarder so they can be registered.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{forwardedEventCount, discardedEventCount}
}
