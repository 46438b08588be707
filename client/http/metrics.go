package http

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector defines an interface for collecting metrics
type MetricsCollector interface {
	RecordRequestDuration(method, path string, statusCode int, duration time.Duration)
	RecordRequestCount(method, path string, statusCode int)
	RecordRequestError(method, path string)
}

// NoopMetricsCollector is a metrics collector that does nothing
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
}
func (n *NoopMetricsCollector) RecordRequestCount(method, path string, statusCode int) {}
func (n *NoopMetricsCollector) RecordRequestError(method, path string)                 {}

// PrometheusMetricsCollector exports request metrics to Prometheus.
type PrometheusMetricsCollector struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
}

// NewPrometheusMetricsCollector registers the collector's metrics with reg.
func NewPrometheusMetricsCollector(reg prometheus.Registerer, namespace string) (*PrometheusMetricsCollector, error) {
	c := &PrometheusMetricsCollector{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_client_request_duration_seconds",
				Help:      "Duration of outbound API requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_client_requests_total",
				Help:      "Total outbound API requests by status",
			},
			[]string{"method", "path", "status"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_client_request_errors_total",
				Help:      "Outbound API requests that failed or returned a non-2xx status",
			},
			[]string{"method", "path"},
		),
	}

	for _, collector := range []prometheus.Collector{c.duration, c.requests, c.errors} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *PrometheusMetricsCollector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	c.duration.WithLabelValues(method, path, strconv.Itoa(statusCode)).Observe(duration.Seconds())
}

func (c *PrometheusMetricsCollector) RecordRequestCount(method, path string, statusCode int) {
	c.requests.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
}

func (c *PrometheusMetricsCollector) RecordRequestError(method, path string) {
	c.errors.WithLabelValues(method, path).Inc()
}
