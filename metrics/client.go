package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for a dispatched request
const (
	OutcomeOK      = "ok"
	OutcomeFailure = "failure"
	OutcomeFault   = "fault"
)

// ClientCollector records meeting API requests. A nil *ClientCollector is a no-op.
type ClientCollector struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewClientCollector registers the client collectors on reg
func NewClientCollector(reg prometheus.Registerer) *ClientCollector {
	c := &ClientCollector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "meetclient",
			Name:      "requests_total",
			Help:      "Meeting API requests by method, route and outcome.",
		}, []string{"method", "route", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "meetclient",
			Name:      "request_duration_seconds",
			Help:      "Meeting API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(c.requests, c.duration)
	return c
}

// Observe records one request. route is the path template, not the concrete
// path, so that meeting identifiers do not explode label cardinality.
func (c *ClientCollector) Observe(method, route, outcome string, d time.Duration) {
	if c == nil {
		return
	}
	c.requests.WithLabelValues(method, route, outcome).Inc()
	c.duration.WithLabelValues(method, route).Observe(d.Seconds())
}
