package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/guttosm/bag-pricing-service/internal/domain/dto"
	"github.com/guttosm/bag-pricing-service/internal/i18n"
	"github.com/guttosm/bag-pricing-service/internal/middleware"
)

// ErrEmptyBody is returned when a request that needs a JSON body has none.
var ErrEmptyBody = errors.New("request body is empty")

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	resp.Details = nil
	errorResponsePool.Put(resp)
}

// RequestBuilder decodes request bodies.
type RequestBuilder struct {
	c *gin.Context
}

// NewRequestBuilder creates a new request builder for the given context.
func NewRequestBuilder(c *gin.Context) *RequestBuilder {
	return &RequestBuilder{c: c}
}

// Bind decodes the JSON body into v and runs its binding rules. Unknown
// fields are ignored.
func (b *RequestBuilder) Bind(v interface{}) error {
	if b.c.Request.Body == nil || b.c.Request.ContentLength == 0 {
		return ErrEmptyBody
	}
	return b.c.ShouldBindJSON(v)
}

// BindStrict decodes the JSON body into v, rejecting unknown fields, and then
// runs its binding rules.
func (b *RequestBuilder) BindStrict(v interface{}) error {
	if b.c.Request.Body == nil {
		return ErrEmptyBody
	}
	dec := json.NewDecoder(b.c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	if dec.More() {
		return errors.New("request body must hold a single JSON object")
	}
	return binding.Validator.ValidateStruct(v)
}

// BuildRequest decodes the body of c into a new T using Bind.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := NewRequestBuilder(c).Bind(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BuildStrictRequest decodes the body of c into a new T using BindStrict.
func BuildStrictRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := NewRequestBuilder(c).BindStrict(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ResponseBuilder writes the response envelopes.
// Uses sync.Pool for DTO reuse to reduce allocations.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a successful response with the given data.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// gin serializes synchronously, so the pooled value can be returned right after.
	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// Error sends an error response with the given status code and message key.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithDetails(statusCode, messageKey, err, nil)
}

// ErrorWithDetails sends an error response carrying field-level details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, messageKey string, err error, details map[string]string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.write(statusCode, message, err, details)
}

// ErrorWithMessage sends an error response with an untranslated message.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.write(statusCode, message, err, nil)
}

func (b *ResponseBuilder) write(statusCode int, message string, err error, details map[string]string) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// The error handler middleware logs errors attached to the context.
	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}
