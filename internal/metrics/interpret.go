package metrics

import "github.com/prometheus/client_golang/prometheus"

// Interpretation Prometheus metrics.
var (
	InterpretRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchd",
			Name:      "interpret_requests_total",
			Help:      "Total number of query interpretations by producing parser",
		},
		[]string{"source"}, // "model" / "fallback"
	)

	ModelParseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchd",
			Name:      "model_parse_duration_seconds",
			Help:      "Model-based parse request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"model"},
	)

	ModelParseErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchd",
			Name:      "model_parse_errors_total",
			Help:      "Total model-based parse failures",
		},
		[]string{"model", "reason"}, // "no_credentials", "api_error", "no_json", "bad_json"
	)

	CatalogFetchErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "searchd",
			Name:      "catalog_fetch_errors_total",
			Help:      "Total category catalog fetch failures",
		},
	)

	BackendSearchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchd",
			Name:      "backend_search_total",
			Help:      "Total explore searches issued to the backend",
		},
		[]string{"status"}, // "success" / "error"
	)
)

var interpretMetricsRegistered bool

// RegisterInterpretMetrics registers interpretation metrics. Must be called once from main.
func RegisterInterpretMetrics() {
	if interpretMetricsRegistered {
		return
	}
	prometheus.MustRegister(InterpretRequestsTotal)
	prometheus.MustRegister(ModelParseDuration)
	prometheus.MustRegister(ModelParseErrorsTotal)
	prometheus.MustRegister(CatalogFetchErrorsTotal)
	prometheus.MustRegister(BackendSearchTotal)
	interpretMetricsRegistered = true
}
