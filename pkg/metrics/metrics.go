package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for transition counters
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
)

// Registry owns the collectors exposed on /metrics
type Registry struct {
	reg          *prometheus.Registry
	transitions  *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
}

// NewRegistry creates a registry with the process and Go collectors attached
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		reg: reg,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "talentpact",
			Name:      "status_transitions_total",
			Help:      "Status transition attempts by entity, source, target and outcome.",
		}, []string{"entity", "from", "to", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "talentpact",
			Name:      "http_requests_total",
			Help:      "Served HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "talentpact",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.transitions,
		r.httpRequests,
		r.httpLatency,
	)
	return r
}

// Transition counts one transition attempt. A nil registry records nothing.
func (r *Registry) Transition(entity, from, to, outcome string) {
	if r == nil {
		return
	}
	r.transitions.WithLabelValues(entity, from, to, outcome).Inc()
}

// ObserveRequest counts a served request and its latency in seconds
func (r *Registry) ObserveRequest(method, route string, status int, seconds float64) {
	if r == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(method, route).Observe(seconds)
}

// Handler serves the registry in the Prometheus text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry (used for testing)
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
