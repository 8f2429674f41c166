package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/bag-pricing-service/internal/logger"
)

// RequestLogger returns a middleware that logs one structured line per
// request: request ID, method, path, status code, latency, IP, user agent
// and, when authenticated, the subject.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		statusCode := c.Writer.Status()
		log := logger.Logger()
		event := log.WithLevel(getLogLevel(statusCode)).
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent())
		if subject := GetSubject(c); subject != "" {
			event = event.Str("subject", subject)
		}
		event.Msg("HTTP request")
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) zerolog.Level {
	switch {
	case statusCode >= 500:
		return zerolog.ErrorLevel
	case statusCode >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
