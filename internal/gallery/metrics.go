package gallery

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/renderprop/internal/errors"
)

// MetricsConfig configures the gallery's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "renderprop").
	Namespace string

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry receives the collectors. Default: a fresh registry, so
	// several servers can live in one process.
	Registry *prometheus.Registry
}

// Metrics holds the gallery's collectors.
type Metrics struct {
	registry       *prometheus.Registry
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
	reloads        *prometheus.CounterVec
	reloadClients  prometheus.Gauge
}

// NewMetrics registers the gallery collectors.
func NewMetrics(config MetricsConfig) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "renderprop"
	}
	if len(config.Buckets) == 0 {
		config.Buckets = prometheus.DefBuckets
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		registry: config.Registry,

		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "renders_total",
			Help:      "Total number of fixture renders",
		}, []string{"variant", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "render_duration_seconds",
			Help:      "Fixture resolve and render duration in seconds",
			Buckets:   config.Buckets,
		}, []string{"variant"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "render_errors_total",
			Help:      "Total fixture render errors by error code",
		}, []string{"code"}),

		reloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "reload_messages_total",
			Help:      "Reload messages broadcast to gallery pages",
		}, []string{"type"}),

		reloadClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Name:      "reload_clients",
			Help:      "Gallery pages connected to the reload socket",
		}),
	}
}

// observeRender records one render of a fixture variant.
func (m *Metrics) observeRender(variant string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.renderDuration.WithLabelValues(variant).Observe(time.Since(start).Seconds())

	status := "success"
	if err != nil {
		status = "error"
		code := "unknown"
		if e := errors.FromError(err, ""); e != nil && e.Code != "" {
			code = e.Code
		}
		m.renderErrors.WithLabelValues(code).Inc()
	}
	m.rendersTotal.WithLabelValues(variant, status).Inc()
}

// Handler serves the collected metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
