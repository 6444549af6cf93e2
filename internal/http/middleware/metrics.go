package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Forhemit/StarterClub-sub002/common/metrics"
)

// Metrics records request count, latency and error class per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
