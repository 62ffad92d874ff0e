package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learnx_http_requests_total",
			Help: "Total number of HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "learnx_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	dbQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "learnx_db_query_duration_seconds",
			Help:    "Database query latency by operation and table.",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation", "table"},
	)

	generationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "learnx_generation_requests_total",
			Help: "Content generation calls by provider, kind and outcome.",
		},
		[]string{"provider", "kind", "outcome"},
	)

	generationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "learnx_generation_duration_seconds",
			Help:    "Content generation latency by provider and kind.",
			Buckets: []float64{.01, .1, .5, 1, 5, 15, 30, 60},
		},
		[]string{"provider", "kind"},
	)
)

// Middleware records request counts and latency for every route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// RecordDBQuery records a database query observation. Called from the
// gorm logger for every traced statement.
func RecordDBQuery(operation, table string, elapsed time.Duration) {
	dbQueryDuration.WithLabelValues(operation, table).Observe(elapsed.Seconds())
}

// RecordGeneration records the outcome of a content generation call.
func RecordGeneration(provider, kind, outcome string, elapsed time.Duration) {
	generationTotal.WithLabelValues(provider, kind, outcome).Inc()
	generationDuration.WithLabelValues(provider, kind).Observe(elapsed.Seconds())
}
