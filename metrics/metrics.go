package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for monitoring service health and performance
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openseer_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "openseer_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method"},
	)

	PipelineRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "openseer_pipeline_runs_total",
			Help: "Total number of sales pipeline runs by outcome",
		},
		[]string{"status"},
	)

	UpstreamRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "openseer_upstream_request_duration_seconds",
			Help:    "Duration of requests to the events API",
			Buckets: prometheus.DefBuckets,
		},
	)

	SalesEventsParsed = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "openseer_sales_events_parsed",
			Help:    "Number of sale events parsed per successful run",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 300},
		},
	)
)

// Pipeline run outcomes recorded on PipelineRunsTotal.
const (
	StatusOK         = "ok"
	StatusFetchError = "fetch_error"
	StatusParseError = "parse_error"
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(PipelineRunsTotal)
	prometheus.MustRegister(UpstreamRequestDuration)
	prometheus.MustRegister(SalesEventsParsed)
}
