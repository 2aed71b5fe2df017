package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// OrderIDKey lets handlers attach the id of a stored order to the request log line.
const OrderIDKey = "order_id"

// RequestLogger logs information about incoming requests using slog.
// Requests that ended in a server error or carry handler errors are logged at error level.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.String("client_ip", c.ClientIP()),
			slog.String("request_id", c.GetString(RequestIDKey)),
		}

		if id, ok := c.Get(OrderIDKey); ok {
			if v, ok := id.(int64); ok {
				attrs = append(attrs, slog.Int64("order_id", v))
			}
		}

		level := slog.LevelInfo
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("error", c.Errors.String()))
		}
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.LogAttrs(c.Request.Context(), level, "http request", attrs...)
	}
}
