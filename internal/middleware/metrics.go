package middleware

import (
	"strconv"
	"time"

	"campusbuild/internal/metrics"

	"github.com/gin-gonic/gin"
)

// RequestMetrics records a duration sample per request, labeled by route
// template rather than raw path to keep cardinality bounded.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
