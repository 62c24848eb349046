package middleware

import (
	"strconv"
	"time"

	"cfp_agreements/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency by route template, so draft tokens and
// agreement ids never become label values.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
