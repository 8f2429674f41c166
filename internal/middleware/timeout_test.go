package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		timeout    time.Duration
		handler    gin.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name:    "fast request completes",
			timeout: time.Second,
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			},
			wantStatus: http.StatusOK,
			wantBody:   "ok",
		},
		{
			name:    "handler honouring the deadline gets 504",
			timeout: 10 * time.Millisecond,
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
			},
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   timeoutErrorCode,
		},
		{
			name:    "late write is kept",
			timeout: 10 * time.Millisecond,
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
				c.String(http.StatusOK, "late")
			},
			wantStatus: http.StatusOK,
			wantBody:   "late",
		},
		{
			name:    "zero timeout uses default",
			timeout: 0,
			handler: func(c *gin.Context) {
				deadline, ok := c.Request.Context().Deadline()
				if ok && time.Until(deadline) > DefaultRequestTimeout-time.Second {
					c.String(http.StatusOK, "default")
					return
				}
				c.String(http.StatusTeapot, "no default")
			},
			wantStatus: http.StatusOK,
			wantBody:   "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), Timeout(tt.timeout))
			router.GET("/test", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

const timeoutErrorCode = `"error":"timeout"`
