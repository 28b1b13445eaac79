// Package metrics exposes Prometheus collectors for sheet fetches and HTTP traffic.
//
// All collectors live on a private registry so tests and multiple servers in one process never collide.
// Every method is safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bandsite"

// Fetch results used as the "result" label.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics holds the service's collectors.
type Metrics struct {
	registry      *prometheus.Registry
	fetchTotal    *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	shows         prometheus.Gauge
	lastSuccess   prometheus.Gauge
	requests      *prometheus.CounterVec
}

// New creates and registers all collectors, including the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sheet",
			Name:      "fetch_total",
			Help:      "Attempts to read the published sheet, by result",
		}, []string{"result"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sheet",
			Name:      "fetch_duration_seconds",
			Help:      "Time spent fetching and parsing the published sheet",
			Buckets:   prometheus.DefBuckets,
		}),
		shows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sheet",
			Name:      "shows",
			Help:      "Number of shows returned by the last successful fetch",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sheet",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful fetch",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests served, by path and status code",
		}, []string{"path", "status"}),
	}

	m.registry.MustRegister(
		m.fetchTotal,
		m.fetchDuration,
		m.shows,
		m.lastSuccess,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveFetch records one sheet fetch. shows is ignored for failed fetches.
func (m *Metrics) ObserveFetch(err error, d time.Duration, shows int) {
	if m == nil {
		return
	}

	m.fetchDuration.Observe(d.Seconds())
	if err != nil {
		m.fetchTotal.WithLabelValues(ResultFailure).Inc()
		return
	}

	m.fetchTotal.WithLabelValues(ResultSuccess).Inc()
	m.shows.Set(float64(shows))
	m.lastSuccess.SetToCurrentTime()
}

// ObserveRequest counts one served HTTP request.
func (m *Metrics) ObserveRequest(path string, status int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(path, strconv.Itoa(status)).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
