// Package metrics collects gateway request counters and process resource
// usage into a dedicated Prometheus registry exposed at /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Method is the logical HTTP method label on the request counter.
type Method string

const (
	MethodGet    Method = "Get"
	MethodPost   Method = "Post"
	MethodPut    Method = "Put"
	MethodDelete Method = "Delete"
)

// Metrics holds all gateway metrics. Counters and gauges are safe for
// concurrent use from any handler goroutine.
type Metrics struct {
	registry *prometheus.Registry

	// Request metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Process metrics, sampled by the Collector
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge
	AvailableMemory  prometheus.Counter
	ThreadTotal      prometheus.Gauge
	TotalCPUUsage    prometheus.Counter
	ProcessStartTime prometheus.Gauge
}

// New creates a metrics set backed by its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry: registry,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "record_requests_total",
				Help: "Total number of record service requests",
			},
			[]string{"method"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),

		MemoryAllocBytes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "process_memory_alloc_bytes",
				Help: "Current memory allocation in bytes",
			},
		),
		MemorySysBytes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "process_memory_sys_bytes",
				Help: "Total memory obtained from the system in bytes",
			},
		),
		AvailableMemory: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "process_memory_frees_total",
				Help: "Available system memory sampled in kilobytes",
			},
		),
		ThreadTotal: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "process_thread_total",
				Help: "OS thread count of the process",
			},
		),
		TotalCPUUsage: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "total_cpu_usage",
				Help: "Aggregate CPU utilization sampled in percent",
			},
		),
		ProcessStartTime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "process_start_time_seconds",
				Help: "Start time of the process since unix epoch in seconds",
			},
		),
	}

	m.ProcessStartTime.Set(float64(time.Now().Unix()))
	return m
}

// IncRequests increments the counter for the logical HTTP method.
func (m *Metrics) IncRequests(method Method) {
	m.RequestsTotal.WithLabelValues(string(method)).Inc()
}

// Handler returns the exposition endpoint for the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
