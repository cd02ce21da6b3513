package infrastructure

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects the extraction pipeline's Prometheus instruments on a
// dedicated registry so tests can create isolated instances.
type Metrics struct {
	ExtractionRequests *prometheus.CounterVec
	RecordsExtracted   *prometheus.CounterVec
	ExtractionDuration prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics registers the extraction instruments on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		ExtractionRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mpreview_extraction_requests_total",
			Help: "Workbook extraction requests, by batch and outcome.",
		}, []string{"batch", "status"}),
		RecordsExtracted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mpreview_records_extracted_total",
			Help: "Records produced by extraction, by batch and record kind.",
		}, []string{"batch", "kind"}),
		ExtractionDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "mpreview_extraction_duration_seconds",
			Help:    "End-to-end duration of download, decode and extraction.",
			Buckets: prometheus.DefBuckets,
		}),
		registry: registry,
	}
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
