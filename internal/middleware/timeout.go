package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bag-pricing-service/internal/domain/dto"
	"github.com/guttosm/bag-pricing-service/internal/i18n"
)

// DefaultRequestTimeout is used when no timeout is configured.
const DefaultRequestTimeout = 30 * time.Second

// Timeout returns a middleware that puts a deadline on the request context.
// Handlers observe it through c.Request.Context(); when the deadline passes
// before anything is written the client gets 504.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusGatewayTimeout,
				dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(GetRequestID(c)))
		}
	}
}
