package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors. The default registry
// also exposes process and Go runtime collectors on /metrics.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ChatTurnsTotal   *prometheus.CounterVec
	ChatTurnDuration *prometheus.HistogramVec
}

// New registers all collectors on the default registry.
func New() *Metrics { return NewWith(prometheus.DefaultRegisterer) }

// NewWith registers on a caller-supplied registry, used by tests to avoid
// duplicate registration.
func NewWith(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_chat_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "resume_chat_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		ChatTurnsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_chat_turns_total",
				Help: "Total number of chat turns by path and outcome",
			},
			[]string{"path", "status"},
		),
		ChatTurnDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "resume_chat_turn_duration_seconds",
				Help:    "Duration of full chat turns in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),
	}
}
