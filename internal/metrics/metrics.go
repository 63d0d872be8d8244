package metrics

import (
	"net/http"
	"realestate/server/internal/database"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "realestate"

// CatalogCounter reports the current size of each store collection
type CatalogCounter interface {
	Counts() database.Counts
}

// Metrics owns a private registry so tests can build as many as they like
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func New(catalog CatalogCounter) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.requests,
		m.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if catalog != nil {
		gauge := func(name, help string, value func(database.Counts) int) prometheus.GaugeFunc {
			return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "catalog",
				Name:      name,
				Help:      help,
			}, func() float64 {
				return float64(value(catalog.Counts()))
			})
		}
		reg.MustRegister(
			gauge("properties", "Live property listings.", func(c database.Counts) int { return c.Properties }),
			gauge("users", "Registered users.", func(c database.Counts) int { return c.Users }),
			gauge("cities", "Known cities.", func(c database.Counts) int { return c.Cities }),
			gauge("agents", "Agent profiles.", func(c database.Counts) int { return c.Agents }),
			gauge("favorites", "Saved favorites.", func(c database.Counts) int { return c.Favorites }),
			gauge("inquiries", "Inquiries received.", func(c database.Counts) int { return c.Inquiries }),
		)
	}

	return m
}

// Middleware records one sample per request. Unmatched routes are
// grouped under a single label to keep cardinality bounded.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method

		m.requests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.latency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
