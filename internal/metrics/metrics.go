// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers HTTP and analysis-outcome metrics.
type Collector struct {
	registry       *prometheus.Registry
	httpStatus     *prometheus.CounterVec
	requestLatency prometheus.Histogram
	analysisOK     prometheus.Counter
	analysisFB     prometheus.Counter
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vastu_http_status_total",
			Help: "Responses by HTTP status code",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vastu_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		analysisOK: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vastu_analysis_success_total",
			Help: "Analyses served by the external scoring service",
		}),
		analysisFB: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vastu_analysis_fallback_total",
			Help: "Analyses degraded to the placeholder report",
		}),
	}

	registry.MustRegister(c.httpStatus, c.requestLatency, c.analysisOK, c.analysisFB)
	return c
}

// RecordHTTPStatus counts one response with the given status code.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestLatency observes one request duration.
func (c *Collector) RecordRequestLatency(d time.Duration) {
	c.requestLatency.Observe(d.Seconds())
}

// RecordAnalysisSuccess counts a genuine analysis.
func (c *Collector) RecordAnalysisSuccess() {
	c.analysisOK.Inc()
}

// RecordAnalysisFallback counts a degraded analysis.
func (c *Collector) RecordAnalysisFallback() {
	c.analysisFB.Inc()
}

// Handler exposes the registry for scraping.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware records status and latency for every request.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		c.RecordHTTPStatus(rw.statusCode)
		c.RecordRequestLatency(time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
