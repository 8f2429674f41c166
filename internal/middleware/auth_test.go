package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validKeys := []string{"valid-key-123", "another-valid-key"}

	tests := []struct {
		name           string
		validKeys      []string
		setupRequest   func(*http.Request)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "allows request with valid API key in header",
			validKeys:      validKeys,
			setupRequest:   func(req *http.Request) { req.Header.Set(APIKeyHeader, "valid-key-123") },
			expectedStatus: http.StatusOK,
			expectedBody:   APIKeySubject,
		},
		{
			name:           "allows request with second key in query",
			validKeys:      validKeys,
			setupRequest:   func(req *http.Request) { req.URL.RawQuery = "api_key=another-valid-key" },
			expectedStatus: http.StatusOK,
			expectedBody:   APIKeySubject,
		},
		{
			name:           "rejects request without API key",
			validKeys:      validKeys,
			setupRequest:   func(*http.Request) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "API key is required",
		},
		{
			name:           "rejects request with invalid API key",
			validKeys:      validKeys,
			setupRequest:   func(req *http.Request) { req.Header.Set(APIKeyHeader, "valid-key-12") },
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Invalid API key",
		},
		{
			name:           "translates rejection",
			validKeys:      validKeys,
			setupRequest:   func(req *http.Request) { req.Header.Set("Accept-Language", "ru") },
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Требуется API-ключ",
		},
		{
			name:           "allows all requests when no keys configured",
			validKeys:      nil,
			setupRequest:   func(*http.Request) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "blank keys are ignored",
			validKeys:      []string{""},
			setupRequest:   func(*http.Request) {},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(APIKeyAuth(tt.validKeys))
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, GetSubject(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.setupRequest(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}
