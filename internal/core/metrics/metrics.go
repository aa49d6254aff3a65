package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the tracker's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	// ShipmentLookups counts tracking fetches by outcome (success, error).
	ShipmentLookups *prometheus.CounterVec
	// ShipmentLookupDuration observes fetch latency.
	ShipmentLookupDuration prometheus.Histogram
	// UnknownStates counts current states that match no severity set.
	UnknownStates *prometheus.CounterVec
	// NoMilestone counts records whose events contain no milestone state.
	NoMilestone prometheus.Counter
	// PageViews counts rendered pages by language.
	PageViews *prometheus.CounterVec
}

// New creates a Metrics instance with its own registry.
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.ShipmentLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "shipment_lookups_total",
			Help:      "Shipment lookups against the tracking service",
		},
		[]string{"outcome"},
	)

	m.ShipmentLookupDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "shipment_lookup_duration_seconds",
			Help:      "Shipment lookup latency",
			Buckets:   prometheus.DefBuckets,
		},
	)

	m.UnknownStates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_states_total",
			Help:      "Current states outside every severity class",
		},
		[]string{"state"},
	)

	m.NoMilestone = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "no_milestone_total",
			Help:      "Shipments whose transit events contain no stepper milestone",
		},
	)

	m.PageViews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Rendered tracking pages",
		},
		[]string{"lang"},
	)

	registry.MustRegister(
		m.ShipmentLookups,
		m.ShipmentLookupDuration,
		m.UnknownStates,
		m.NoMilestone,
		m.PageViews,
	)

	return m
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordLookup records the outcome and duration of one shipment fetch.
func (m *Metrics) RecordLookup(success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	m.ShipmentLookups.WithLabelValues(outcome).Inc()
	m.ShipmentLookupDuration.Observe(duration.Seconds())
}

// RecordUnknownState records a data-quality signal for an unclassified state.
func (m *Metrics) RecordUnknownState(state string) {
	m.UnknownStates.WithLabelValues(state).Inc()
}

// RecordNoMilestone records a shipment drawn as "not yet started".
func (m *Metrics) RecordNoMilestone() {
	m.NoMilestone.Inc()
}

// RecordPageView records a rendered page.
func (m *Metrics) RecordPageView(lang string) {
	m.PageViews.WithLabelValues(lang).Inc()
}
