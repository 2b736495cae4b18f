package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yukikurage/pharmacy-tasks/internal/constants"
)

const headerRequestID = "X-Request-ID"

// RequestLogger writes one access log line per request. Requests that ended
// with a recorded error or a 5xx status are logged at error level.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		if id := c.GetHeader(headerRequestID); id != "" {
			c.Set(constants.ContextKeyRequestID, id)
			c.Header(headerRequestID, id)
		}

		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case len(c.Errors) > 0 || status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}

		if len(c.Errors) > 0 {
			event = event.Str("error", c.Errors.String())
		}
		if id := c.GetString(constants.ContextKeyRequestID); id != "" {
			event = event.Str("request_id", id)
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}
