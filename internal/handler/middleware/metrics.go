package middleware

import (
	"strconv"
	"time"

	"webhooknest/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request counts and latencies on the
// dedicated registry. The route template (not the raw path) is used as
// the label so slugs do not explode cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	metrics.RegisterDefault()

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequests.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
