// Package metrics exposes Prometheus collectors for the HTTP layer and the use cases.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"carvalue/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "carvalue"

// Recorder implements service.MetricsRecorder and records HTTP traffic.
type Recorder struct {
	authOps      *prometheus.CounterVec
	reportEvents *prometheus.CounterVec
	httpRequests *prometheus.HistogramVec
}

var _ service.MetricsRecorder = (*Recorder)(nil)

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// NewRecorder registers the application collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		authOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_operations_total",
			Help:      "Auth operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		reportEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_events_total",
			Help:      "Report lifecycle events.",
		}, []string{"event"}),
		httpRequests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(r.authOps, r.reportEvents, r.httpRequests)

	return r
}

func (r *Recorder) ObserveAuth(operation, outcome string) {
	r.authOps.WithLabelValues(operation, outcome).Inc()
}

func (r *Recorder) ObserveReport(event string) {
	r.reportEvents.WithLabelValues(event).Inc()
}

// ObserveHTTP records one served request. route is the matched pattern, not the raw path.
func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// NewHandler serves the registry in the Prometheus exposition format.
func NewHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		NewRecorder,
		func(r *Recorder) service.MetricsRecorder { return r },
	),
)
