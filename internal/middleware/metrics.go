package middleware

import (
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ecoconnect_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// DatabaseQueryLatency records database query latency in seconds.
	DatabaseQueryLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ecoconnect_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// PostViews counts view increments recorded through the API.
	PostViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecoconnect_post_views_total",
		Help: "Total number of post view increments",
	})

	// PostLikes counts like increments recorded through the API.
	PostLikes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecoconnect_post_likes_total",
		Help: "Total number of post like increments",
	})
)

var (
	promOnce     sync.Once
	promInstance *fiberprometheus.FiberPrometheus
)

// InitMetrics returns the HTTP metrics middleware for the given service name.
// The underlying collectors register against the default Prometheus registry,
// so initialization happens at most once per process.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promInstance = fiberprometheus.New(serviceName)
	})
	return promInstance
}

// MetricsMiddleware adapts the fiberprometheus instance into a Fiber handler.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}

// ObserveQueryLatency records the latency of a database query started at the
// given time. Intended for use with defer.
func ObserveQueryLatency(start time.Time) {
	DatabaseQueryLatency.Observe(time.Since(start).Seconds())
}
