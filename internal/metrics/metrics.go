package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ramadan",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ramadan",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ramadan",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	upstreamCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ramadan",
			Subsystem: "upstream",
			Name:      "calls_total",
			Help:      "Calls to external services by outcome.",
		},
		[]string{"service", "outcome"},
	)

	dailyLogUpserts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ramadan",
			Subsystem: "logs",
			Name:      "upserts_total",
			Help:      "Daily log upserts by outcome.",
		},
		[]string{"outcome"},
	)

	sehriAlerts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ramadan",
			Subsystem: "reminder",
			Name:      "sehri_alerts_total",
			Help:      "Sehri reminders published.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		upstreamCalls,
		dailyLogUpserts,
		sehriAlerts,
		collectors.NewGoCollector(),
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latencies keyed by route pattern.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		httpInFlight.Inc()
		start := time.Now()
		c.Next()
		httpInFlight.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// RecordUpstream counts one call to an external service.
func RecordUpstream(service string, err error) {
	upstreamCalls.WithLabelValues(service, outcome(err)).Inc()
}

// RecordUpstreamCacheHit counts a call answered from cache.
func RecordUpstreamCacheHit(service string) {
	upstreamCalls.WithLabelValues(service, "cache").Inc()
}

func RecordDailyLogUpsert(err error) {
	dailyLogUpserts.WithLabelValues(outcome(err)).Inc()
}

func RecordSehriAlert() {
	sehriAlerts.Inc()
}
