package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlightGauge   prometheus.Gauge

	GatewayRequestsTotal   *prometheus.CounterVec
	GatewayRequestDuration *prometheus.HistogramVec

	StaleResultsTotal *prometheus.CounterVec
	AuditEntriesTotal *prometheus.CounterVec
}

// NewCollector builds a collector on its own registry so that several
// collectors can coexist in one process.
func NewCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "route", "status"}),

		InFlightGauge: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),

		GatewayRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Total gateway calls by operation and outcome.",
		}, []string{"operation", "outcome"}),

		GatewayRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Gateway call latency distribution.",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		}, []string{"operation", "outcome"}),

		StaleResultsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "page_state",
			Name:      "stale_results_total",
			Help:      "Results discarded because a newer request superseded them.",
		}, []string{"page", "slot"}),

		AuditEntriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "entries_total",
			Help:      "Total audit log entries written.",
		}, []string{"action"}),
	}
}

func (c *Collector) ObserveGateway(operation, outcome string, seconds float64) {
	if c == nil {
		return
	}
	c.GatewayRequestsTotal.WithLabelValues(operation, outcome).Inc()
	c.GatewayRequestDuration.WithLabelValues(operation, outcome).Observe(seconds)
}

func (c *Collector) ObserveRequest(method, route, status string, seconds float64) {
	if c == nil {
		return
	}
	c.RequestsTotal.WithLabelValues(method, route, status).Inc()
	c.RequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

func (c *Collector) IncStaleResult(page, slot string) {
	if c == nil {
		return
	}
	c.StaleResultsTotal.WithLabelValues(page, slot).Inc()
}

func (c *Collector) IncAuditEntry(action string) {
	if c == nil {
		return
	}
	c.AuditEntriesTotal.WithLabelValues(action).Inc()
}

func (c *Collector) TrackInFlight(delta float64) {
	if c == nil {
		return
	}
	c.InFlightGauge.Add(delta)
}

// Handler serves the collector's registry.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
