package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bag-pricing-service/internal/domain/dto"
	"github.com/guttosm/bag-pricing-service/internal/i18n"
	"github.com/guttosm/bag-pricing-service/internal/logger"
)

// ErrorHandler logs the last error attached to the gin context. Client
// errors are logged at warn level. When the handler wrote nothing a
// translated 500 body is sent.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)
		status := c.Writer.Status()

		log := logger.Logger()
		event := log.Error()
		if c.Writer.Written() && status < http.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status_code", status).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}
