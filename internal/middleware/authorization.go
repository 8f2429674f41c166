// Package middleware provides role based authorization middleware.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bag-pricing-service/internal/domain/dto"
	"github.com/guttosm/bag-pricing-service/internal/i18n"
)

// RequireRole returns a middleware that allows the request when the token
// carries at least one of roles. It must run after JWTAuth. With no roles
// any authenticated caller passes.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyUnauthorized)
			return
		}

		if len(roles) > 0 && !hasAnyRole(claims, roles) {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyForbidden, i18n.GetLocale(c))
			errorResp := dto.NewError(dto.ErrCodeForbidden, message).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusForbidden, errorResp)
			return
		}

		c.Next()
	}
}

func hasAnyRole(claims *dto.Claims, roles []string) bool {
	for _, role := range roles {
		if claims.HasRole(role) {
			return true
		}
	}
	return false
}
