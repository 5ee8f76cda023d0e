package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"talentpact.backend/pkg/logger"
	"talentpact.backend/pkg/metrics"
)

// LoggerMiddleware logs one structured line per request and, when reg is
// not nil, feeds the request counters
func LoggerMiddleware(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		logger.LogRequest(c.Request.Context(), c.Request.Method, route, c.Writer.Status(), latency, c.ClientIP())
		// Metrics take the route template only. Raw paths of unmatched
		// requests would give the label unbounded cardinality.
		reg.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), latency.Seconds())
	}
}
