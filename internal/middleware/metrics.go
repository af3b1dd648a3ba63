package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/workroster/workroster-api/internal/service"
)

// Metrics records one observation per request. The route template is used
// as the path label so /schedules/:userId stays a single series instead of
// one per user.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			// Unmatched routes share one label to keep cardinality bounded.
			route = "unmatched"
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
