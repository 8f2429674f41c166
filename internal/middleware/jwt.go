// Package middleware provides JWT authentication middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bag-pricing-service/internal/domain/dto"
	"github.com/guttosm/bag-pricing-service/internal/i18n"
	"github.com/guttosm/bag-pricing-service/internal/service"
)

// Context keys set by JWTAuth.
const (
	ContextKeySubject = "user_subject"
	ContextKeyRoles   = "user_roles"
	ContextKeyClaims  = "user_claims"
)

// JWTAuth returns a middleware that validates bearer tokens.
func JWTAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(ContextKeySubject, claims.Subject)
		c.Set(ContextKeyRoles, claims.Roles)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// GetSubject returns the authenticated subject, or "" for anonymous requests.
func GetSubject(c *gin.Context) string {
	return c.GetString(ContextKeySubject)
}

// GetClaims returns the validated token claims, if any.
func GetClaims(c *gin.Context) (*dto.Claims, bool) {
	v, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*dto.Claims)
	return claims, ok
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
