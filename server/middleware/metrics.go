package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/scopekit/observability"
)

// Metrics records request count, duration and in-flight requests. Routes
// are labelled by their registered pattern, not the raw path.
func Metrics(m *observability.RequestMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		start := time.Now()
		m.RecordRequestStart(ctx)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordRequestEnd(ctx, route, c.Writer.Status(), time.Since(start))
	}
}
