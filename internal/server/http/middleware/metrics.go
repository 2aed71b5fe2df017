package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/projectkrs/krs/internal/metrics"
)

// Metrics records request counts and latency labelled by the matched route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		done := metrics.RequestStarted()
		c.Next()
		done(c.Request.Method, c.FullPath(), c.Writer.Status())
	}
}
