package ioweb

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// metrics keeps Prometheus collectors of one server. Every server has
// its own registry, so several servers can live in one process.
type metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
	queriesTotal    *prometheus.CounterVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gnlineage_http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gnlineage_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "path"},
		),
		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "gnlineage_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
		queriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gnlineage_queries_total",
				Help: "Total lineage queries by outcome (found, not_found, error).",
			},
			[]string{"outcome"},
		),
		cacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "gnlineage_cache_hits_total",
				Help: "Total number of lineage cache hits.",
			},
		),
		cacheMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "gnlineage_cache_misses_total",
				Help: "Total number of lineage cache misses.",
			},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestsTotal,
		m.requestDuration,
		m.inFlight,
		m.queriesTotal,
		m.cacheHits,
		m.cacheMisses,
	)
	return m
}

// middleware records request count, latency and in-flight gauge.
func (m *metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		c.Next()

		// unmatched routes would create a label per random URL
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		m.requestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.requestDuration.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}

func (m *metrics) countQueries(outcomes map[string]int) {
	for k, v := range outcomes {
		m.queriesTotal.WithLabelValues(k).Add(float64(v))
	}
}
