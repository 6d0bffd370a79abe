package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "museo_http_requests_total",
			Help: "HTTP requests served, by route pattern and status",
		},
		[]string{"method", "route", "status"},
	)

	GatewayOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "museo_gateway_outcomes_total",
			Help: "Upstream gateway results by upstream, operation and outcome",
		},
		[]string{"upstream", "operation", "outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "museo_upstream_request_duration_seconds",
			Help:    "Duration of upstream HTTP calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"upstream", "operation"},
	)
)

func RecordRequest(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func RecordGateway(upstream, operation, outcome string) {
	GatewayOutcomes.WithLabelValues(upstream, operation, outcome).Inc()
}
