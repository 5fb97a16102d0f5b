package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/irohit373/AlignTODO/internal/metrics"
)

// Metrics records request count and latency per method/route/status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())
		elapsed := time.Since(start).Seconds()

		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(elapsed)
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
	}
}
