package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the storefront's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "polyforge",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "polyforge",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"method", "route"},
	)

	checkouts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "polyforge",
			Subsystem: "checkout",
			Name:      "outcomes_total",
			Help:      "Finished checkout submissions by method and outcome.",
		},
		[]string{"method", "outcome"},
	)

	modelCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "polyforge",
			Subsystem: "shopkeeper",
			Name:      "calls_total",
			Help:      "Shopkeeper model calls by call type and source of the result.",
		},
		[]string{"call", "source"},
	)

	modelDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "polyforge",
			Subsystem: "shopkeeper",
			Name:      "call_duration_seconds",
			Help:      "Duration of shopkeeper model calls.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"call"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		checkouts,
		modelCalls,
		modelDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registered collectors.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request counts and latencies per route template.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func RecordCheckout(method, outcome string) {
	checkouts.WithLabelValues(method, outcome).Inc()
}

func RecordModelCall(call, source string, took time.Duration) {
	modelCalls.WithLabelValues(call, source).Inc()
	modelDuration.WithLabelValues(call).Observe(took.Seconds())
}
