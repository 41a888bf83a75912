// Package metrics holds the prometheus collectors for the dealership API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dealership_http_requests_total",
		Help: "HTTP requests by path, method and status.",
	}, []string{"path", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dealership_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"path", "method"})

	LocationCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dealership_location_cache_hits_total",
		Help: "Location lookups answered from cache.",
	})

	LocationCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dealership_location_cache_misses_total",
		Help: "Location lookups that had to hit the upstream provider.",
	})

	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dealership_upstream_requests_total",
		Help: "Requests issued to upstream providers by provider and outcome.",
	}, []string{"provider", "outcome"})

	BookingsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dealership_bookings_created_total",
		Help: "Test-drive bookings accepted.",
	})
)

// Middleware records request counts and latency per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
