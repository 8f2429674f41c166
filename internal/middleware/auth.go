package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bag-pricing-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
	// APIKeySubject is recorded as the subject of API key requests.
	APIKeySubject = "api_key"
)

// APIKeyAuth returns a middleware that accepts requests carrying one of
// validKeys in the X-API-Key header or the api_key query parameter. With no
// keys configured the middleware lets everything through.
func APIKeyAuth(validKeys []string) gin.HandlerFunc {
	keys := make([][]byte, 0, len(validKeys))
	for _, k := range validKeys {
		if k != "" {
			keys = append(keys, []byte(k))
		}
	}

	return func(c *gin.Context) {
		if len(keys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}
		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}

		if !matchesAny([]byte(key), keys) {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Set(ContextKeySubject, APIKeySubject)
		c.Next()
	}
}

// matchesAny compares key against every candidate in constant time.
func matchesAny(key []byte, candidates [][]byte) bool {
	found := 0
	for _, k := range candidates {
		found |= subtle.ConstantTimeCompare(key, k)
	}
	return found == 1
}
