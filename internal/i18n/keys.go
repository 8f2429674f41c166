// Package i18n provides internationalization support for the bag pricing service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates a body that is not valid JSON or
	// carries unknown fields.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInvalidOrder indicates an order that fails validation.
	ErrKeyInvalidOrder = "error.validation.order"
	// ErrKeyInvalidConfig indicates a pricing configuration that fails validation.
	ErrKeyInvalidConfig = "error.validation.config"
	// ErrKeyMissingFeatureRate indicates an active feature whose rate is not configured.
	ErrKeyMissingFeatureRate = "error.missing_feature_rate"
	// ErrKeyCalculationFailed indicates a pipeline failure unrelated to the input.
	ErrKeyCalculationFailed = "error.calculation_failed"
	// ErrKeyExportFailed indicates the workbook could not be produced.
	ErrKeyExportFailed = "error.export_failed"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)
