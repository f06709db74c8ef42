package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "merchant_onboarding"

// Upstream operation labels.
const (
	OperationToken       = "token"
	OperationApplication = "application"
	OperationGateway     = "gateway"
)

// Event outcome labels.
const (
	EventOutcomeDispatched = "dispatched"
	EventOutcomeDuplicate  = "duplicate"
	EventOutcomeFailed     = "failed"
	EventOutcomeRejected   = "rejected"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	upstreamCalls    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	events           *prometheus.CounterVec
}

// New registers the collectors with registerer. A nil registerer means
// prometheus.DefaultRegisterer.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests handled, by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Calls to the payment platform, by operation and status. Status 0 means a transport failure.",
		}, []string{"operation", "status"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of calls to the payment platform.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"operation"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_received_total",
			Help:      "Inbound provider events, by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}

	registerer.MustRegister(m.httpRequests, m.httpDuration, m.upstreamCalls, m.upstreamDuration, m.events)
	return m
}

// ObserveHTTP records one handled request. route is the matched route
// template, not the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveUpstream records one call to the payment platform.
func (m *Metrics) ObserveUpstream(operation string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.upstreamCalls.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	m.upstreamDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// IncEvent counts an inbound event.
func (m *Metrics) IncEvent(kind, outcome string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(kind, outcome).Inc()
}
