package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a replayed response.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the TTL for cached idempotency responses.
	IdempotencyKeyTTL = 5 * time.Minute
)

type cachedResponse struct {
	StatusCode  int
	ContentType string
	Headers     map[string]string
	Body        []byte
	Timestamp   time.Time
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   *idempotencyCache
	Enabled bool
}

// DefaultIdempotencyConfig returns default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   newIdempotencyCache(IdempotencyKeyTTL),
		Enabled: true,
	}
}

// Idempotency replays the stored 2xx response of a POST or PUT carrying the
// same Idempotency-Key, method, path and body from the same subject. It must
// run after authentication. A retried configuration
// update therefore does not create a second version.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		fingerprint, err := requestFingerprint(GetSubject(c), key, c.Request)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		if cached, ok := cfg.Cache.Get(fingerprint); ok {
			for k, v := range cached.Headers {
				c.Header(k, v)
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status >= 200 && status < 300 {
			headers := make(map[string]string)
			if cd := writer.Header().Get("Content-Disposition"); cd != "" {
				headers["Content-Disposition"] = cd
			}
			cfg.Cache.Set(fingerprint, &cachedResponse{
				StatusCode:  status,
				ContentType: writer.Header().Get("Content-Type"),
				Headers:     headers,
				Body:        writer.body.Bytes(),
			})
		}
	}
}

// requestFingerprint hashes the caller subject and the idempotency key
// together with the method, path and body. The body is restored for the
// handler.
func requestFingerprint(subject, idempotencyKey string, req *http.Request) (uint64, error) {
	d := xxhash.New()
	_, _ = d.WriteString(subject + "\x00" + idempotencyKey)
	_, _ = d.WriteString("\x00" + req.Method + "\x00" + req.URL.Path + "\x00")

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return 0, err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
		_, _ = d.Write(body)
	}
	return d.Sum64(), nil
}

// responseWriter tees the body into a buffer.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
