package gateway

import "github.com/prometheus/client_golang/prometheus"

var (
	gatewayEventCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swyft_gateway_events_total",
			Help: "Gateway frames received by opcode",
		},
		[]string{"op"},
	)

	gatewayDispatchEventCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swyft_gateway_dispatch_events_by_type_total",
			Help: "Gateway dispatch events by type",
		},
		[]string{"type"},
	)

	gatewayLatency = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "swyft_gateway_heartbeat_latency_seconds",
			Help: "Time between the last heartbeat and its acknowledgement",
		},
	)
)

// Collectors returns the metrics of the gateway so they can be registered.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{gatewayEventCount, gatewayDispatchEventCount, gatewayLatency}
}
