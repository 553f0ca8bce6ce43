// Package metrics instruments outbound API traffic with Prometheus
// collectors. All methods are nil-safe so instrumentation stays optional.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder encapsulates Prometheus instrumentation for the console client.
type Recorder struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	batchOutcomes   *prometheus.CounterVec
}

// NewRecorder registers the client-side collectors.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "client_request_duration_seconds",
		Help:    "Duration of outbound API requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "resource", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "client_requests_total",
		Help: "Total number of outbound API requests",
	}, []string{"method", "resource", "status"})

	batchOutcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "client_batch_items_total",
		Help: "Outcomes of individual items within bulk operations",
	}, []string{"resource", "outcome"})

	registry.MustRegister(requestDuration, requestTotal, batchOutcomes)

	return &Recorder{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		batchOutcomes:   batchOutcomes,
	}
}

// ObserveRequest records one completed outbound request.
func (r *Recorder) ObserveRequest(method, resource string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	labels := []string{method, resource, strconv.Itoa(status)}
	r.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	r.requestTotal.WithLabelValues(labels...).Inc()
}

// ObserveBatchItem records the outcome of a single item within a bulk call.
func (r *Recorder) ObserveBatchItem(resource string, succeeded bool) {
	if r == nil {
		return
	}
	outcome := "success"
	if !succeeded {
		outcome = "failure"
	}
	r.batchOutcomes.WithLabelValues(resource, outcome).Inc()
}

// Handler exposes the registry for scraping by a host application.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return r.handler
}
