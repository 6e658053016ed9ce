package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger logs every request with method, path, status and duration.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start)

		var msg string
		switch {
		case status >= 500:
			msg = "server error"
		case status >= 400:
			msg = "client error"
		default:
			msg = "request completed"
		}

		entry := log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("duration_ms", duration/time.Millisecond).
			Int("bytes", c.Writer.Size()).
			Str("ip", c.ClientIP())

		if duration > 100*time.Millisecond {
			entry = entry.Str("slow", "true")
		}

		entry.Msg(msg)
	}
}
