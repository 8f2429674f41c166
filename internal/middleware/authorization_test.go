package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/bag-pricing-service/internal/domain/dto"
)

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		claims         *dto.Claims
		required       []string
		expectedStatus int
	}{
		{"economist allowed", &dto.Claims{Subject: "anna", Roles: []string{"economist"}}, []string{"economist"}, http.StatusOK},
		{"any of several roles", &dto.Claims{Subject: "anna", Roles: []string{"admin"}}, []string{"economist", "admin"}, http.StatusOK},
		{"manager forbidden", &dto.Claims{Subject: "ivan", Roles: []string{"manager"}}, []string{"economist"}, http.StatusForbidden},
		{"no roles forbidden", &dto.Claims{Subject: "ivan"}, []string{"economist"}, http.StatusForbidden},
		{"no requirement passes", &dto.Claims{Subject: "ivan"}, nil, http.StatusOK},
		{"unauthenticated rejected", nil, []string{"economist"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(func(c *gin.Context) {
				if tt.claims != nil {
					c.Set(ContextKeyClaims, tt.claims)
				}
				c.Next()
			})
			router.PUT("/api/config", RequireRole(tt.required...), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPut, "/api/config", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			switch tt.expectedStatus {
			case http.StatusForbidden:
				assert.Contains(t, w.Body.String(), dto.ErrCodeForbidden)
			case http.StatusUnauthorized:
				assert.Contains(t, w.Body.String(), dto.ErrCodeUnauthorized)
			}
		})
	}
}
