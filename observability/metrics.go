package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of the analyzer.
type Metrics struct {
	// Registry owns these metrics; the /metrics endpoint serves it.
	Registry *prometheus.Registry

	reportsTotal     *prometheus.CounterVec
	extractionPath   *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	advisorErrors    prometheus.Counter
}

// NewMetrics creates a dedicated registry and registers all metrics in
// it. A private registry avoids duplicate-collector panics when tests
// construct it more than once.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		reportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cibil_reports_total",
				Help: "Reports processed, by outcome.",
			},
			[]string{"status"},
		),
		extractionPath: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cibil_extraction_path_total",
				Help: "Which text-acquisition path produced the document text.",
			},
			[]string{"path"},
		),
		analysisDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cibil_analysis_duration_seconds",
				Help:    "Duration of full report analyses.",
				Buckets: prometheus.DefBuckets,
			},
		),
		advisorErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "cibil_advisor_errors_total",
				Help: "Failed advisory chat calls.",
			},
		),
	}
}

// IncrReport counts one processed report with an outcome label.
func (m *Metrics) IncrReport(status string) {
	m.reportsTotal.WithLabelValues(status).Inc()
}

// IncrExtractionPath counts which acquisition path won for a document.
func (m *Metrics) IncrExtractionPath(path string) {
	m.extractionPath.WithLabelValues(path).Inc()
}

// ObserveAnalysis records the duration of a full analysis.
func (m *Metrics) ObserveAnalysis(d time.Duration) {
	m.analysisDuration.Observe(d.Seconds())
}

// IncrAdvisorError counts a failed advisory chat call.
func (m *Metrics) IncrAdvisorError() {
	m.advisorErrors.Inc()
}
