package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API and
// the content stores.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	storeOps        *prometheus.CounterVec
	storeSignals    *prometheus.CounterVec
}

// NewMetricsService registers the core collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	storeOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cms_store_operations_total",
		Help: "Content store operations by store and outcome",
	}, []string{"store", "operation", "outcome"})

	storeSignals := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cms_change_signals_total",
		Help: "Change notifications published per topic",
	}, []string{"topic"})

	registry.MustRegister(requestDuration, requestTotal, storeOps, storeSignals)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		storeOps:        storeOps,
		storeSignals:    storeSignals,
	}
}

// Handler returns the Prometheus scrape endpoint.
func (m *MetricsService) Handler() http.Handler {
	return m.handler
}

// ObserveHTTPRequest records a completed HTTP request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, code).Inc()
}

// ObserveStoreOperation records a content store operation outcome.
func (m *MetricsService) ObserveStoreOperation(store, operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.storeOps.WithLabelValues(store, operation, outcome).Inc()
}

// ObserveChangeSignal records a published change notification.
func (m *MetricsService) ObserveChangeSignal(topic string) {
	m.storeSignals.WithLabelValues(topic).Inc()
}
