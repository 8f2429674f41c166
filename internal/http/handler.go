package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/guttosm/bag-pricing-service/internal/domain/dto"
	"github.com/guttosm/bag-pricing-service/internal/domain/model"
	"github.com/guttosm/bag-pricing-service/internal/export"
	"github.com/guttosm/bag-pricing-service/internal/i18n"
	"github.com/guttosm/bag-pricing-service/internal/middleware"
	"github.com/guttosm/bag-pricing-service/internal/pricing"
	"github.com/guttosm/bag-pricing-service/internal/service"
)

const (
	// ExportFilename is the attachment name of the exported workbook.
	ExportFilename = "calculation_export.xlsx"
	// DefaultHistoryLimit is used when /api/config/history has no limit.
	DefaultHistoryLimit = 10
	// anonymousSubject is recorded as the author of unauthenticated updates.
	anonymousSubject = "anonymous"
)

var jsonFieldNames sync.Once

// useJSONFieldNames makes binding errors report JSON field names.
func useJSONFieldNames() {
	jsonFieldNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// PricingHandler provides HTTP handlers for pricing and configuration routes.
type PricingHandler struct {
	pricing service.PricingService
	audit   service.AuditWriter
}

// NewPricingHandler creates a new PricingHandler. A nil audit writer disables
// audit records.
func NewPricingHandler(pricing service.PricingService, audit service.AuditWriter) *PricingHandler {
	useJSONFieldNames()
	return &PricingHandler{pricing: pricing, audit: audit}
}

// GetConfig handles GET /api/config requests.
//
// @Summary      Get active pricing configuration
// @Description  Returns the active pricing configuration together with its version.
// @Tags         Config
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.ConfigVersion} "Active configuration"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Security     BearerAuth
// @Router       /api/config [get]
func (h *PricingHandler) GetConfig(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.pricing.GetConfig(c.Request.Context()))
}

// UpdateConfig handles POST and PUT /api/config requests.
//
// @Summary      Replace pricing configuration
// @Description  Validates and activates a new pricing configuration. Omitted coefficients take their standard values. Cached results of older versions are dropped. Supports idempotency via Idempotency-Key header.
// @Tags         Config
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.UpdatePricingConfigRequest true "New configuration"
// @Success      200 {object} dto.SuccessResponse{data=model.ConfigVersion} "Activated configuration"
// @Failure      400 {object} dto.ErrorResponse "Invalid configuration"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      403 {object} dto.ErrorResponse "Economist role required"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/config [put]
// @Router       /api/config [post]
func (h *PricingHandler) UpdateConfig(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpdatePricingConfigRequest](c)
	if err != nil {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidConfig, err, validationDetails(err))
		return
	}

	subject := middleware.GetSubject(c)
	if subject == "" {
		subject = anonymousSubject
	}

	saved, err := h.pricing.UpdateConfig(c.Request.Context(), req.ToModel(), subject)
	if err != nil {
		middleware.AuditLogError(h.audit, c, middleware.ActionUpdateConfig, "Pricing configuration rejected", err, nil)
		if model.IsValidationError(err) {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidConfig, err, validationDetails(err))
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionUpdateConfig, "Pricing configuration replaced", map[string]interface{}{
		"version": saved.Version,
	})
	builder.SuccessOK(saved)
}

// ConfigHistory handles GET /api/config/history requests.
//
// @Summary      List configuration versions
// @Description  Returns the retained configuration versions, newest first.
// @Tags         Config
// @Produce      json
// @Param        limit query int false "Maximum number of versions" default(10) minimum(1)
// @Success      200 {object} dto.SuccessResponse{data=[]model.ConfigVersion} "Configuration history"
// @Failure      400 {object} dto.ErrorResponse "Invalid limit"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Security     BearerAuth
// @Router       /api/config/history [get]
func (h *PricingHandler) ConfigHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err,
				map[string]string{"limit": "must be a positive integer"})
			return
		}
		limit = n
	}

	builder.SuccessOK(h.pricing.ConfigHistory(c.Request.Context(), limit))
}

// Calculate handles POST /api/calculate requests.
//
// @Summary      Price a bag order
// @Description  Runs the pricing pipeline against the active configuration and returns the unit price with its cost breakdown.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        request body dto.OrderRequest true "Order"
// @Success      200 {object} dto.SuccessResponse{data=model.CalculationResult} "Calculated price"
// @Failure      400 {object} dto.ErrorResponse "Invalid order"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      422 {object} dto.ErrorResponse "Feature rate not configured"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/calculate [post]
func (h *PricingHandler) Calculate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, ok := bindOrder(c, builder)
	if !ok {
		return
	}

	result, err := h.pricing.Calculate(c.Request.Context(), order)
	if err != nil {
		writePricingError(builder, err, i18n.ErrKeyCalculationFailed)
		return
	}
	builder.SuccessOK(result)
}

// PreviewTable handles POST /api/preview_table requests.
//
// @Summary      Preview cost-sheet row
// @Description  Prices the order and returns the row the spreadsheet export would contain.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        request body dto.OrderRequest true "Order"
// @Success      200 {object} dto.SuccessResponse{data=export.Row} "Cost-sheet row"
// @Failure      400 {object} dto.ErrorResponse "Invalid order"
// @Failure      422 {object} dto.ErrorResponse "Feature rate not configured"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/preview_table [post]
func (h *PricingHandler) PreviewTable(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, ok := bindOrder(c, builder)
	if !ok {
		return
	}

	row, err := h.pricing.Preview(c.Request.Context(), order)
	if err != nil {
		writePricingError(builder, err, i18n.ErrKeyCalculationFailed)
		return
	}
	builder.SuccessOK(row)
}

// ExportExcel handles POST /api/export_excel requests.
//
// @Summary      Export cost sheet
// @Description  Prices the order and returns the cost sheet as an xlsx attachment.
// @Tags         Pricing
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        request body dto.OrderRequest true "Order"
// @Success      200 {file} file "calculation_export.xlsx"
// @Failure      400 {object} dto.ErrorResponse "Invalid order"
// @Failure      422 {object} dto.ErrorResponse "Feature rate not configured"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/export_excel [post]
func (h *PricingHandler) ExportExcel(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, ok := bindOrder(c, builder)
	if !ok {
		return
	}

	fields := map[string]interface{}{
		"product_type": string(order.ProductType),
		"quantity":     order.Quantity,
	}

	data, err := h.pricing.Export(c.Request.Context(), order)
	if err != nil {
		middleware.AuditLogError(h.audit, c, middleware.ActionExport, "Cost sheet export failed", err, fields)
		writePricingError(builder, err, i18n.ErrKeyExportFailed)
		return
	}

	middleware.AuditLog(h.audit, c, middleware.ActionExport, "Cost sheet exported", fields)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, ExportFilename))
	c.Data(http.StatusOK, export.ContentType, data)
}

// bindOrder decodes and validates an order body, writing a 400 response on failure.
func bindOrder(c *gin.Context, builder *ResponseBuilder) (model.OrderInput, bool) {
	req, err := BuildStrictRequest[dto.OrderRequest](c)
	if err != nil {
		key := i18n.ErrKeyInvalidOrder
		if isDecodeError(err) {
			key = i18n.ErrKeyInvalidRequestBody
		}
		builder.ErrorWithDetails(http.StatusBadRequest, key, err, validationDetails(err))
		return model.OrderInput{}, false
	}

	order, err := req.ToModel()
	if err != nil {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidOrder, err, validationDetails(err))
		return model.OrderInput{}, false
	}
	return order, true
}

// writePricingError maps a pipeline failure onto a status code.
func writePricingError(builder *ResponseBuilder, err error, failureKey string) {
	var rateErr *pricing.MissingFeatureRateError
	switch {
	case model.IsValidationError(err):
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidOrder, err, validationDetails(err))
	case errors.As(err, &rateErr):
		builder.ErrorWithDetails(http.StatusUnprocessableEntity, i18n.ErrKeyMissingFeatureRate, err,
			map[string]string{"feature_rates." + rateErr.Key: "not configured"})
	default:
		builder.Error(http.StatusInternalServerError, failureKey, err)
	}
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.Is(err, ErrEmptyBody) ||
		errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		strings.HasPrefix(err.Error(), "json: unknown field")
}

// validationDetails extracts field-level reasons from err, or nil when it
// names no field.
func validationDetails(err error) map[string]string {
	var (
		modelErr *model.ValidationError
		fieldErr validator.ValidationErrors
		typeErr  *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &modelErr):
		return map[string]string{modelErr.Field: modelErr.Message}
	case errors.As(err, &fieldErr):
		details := make(map[string]string, len(fieldErr))
		for _, fe := range fieldErr {
			reason := fe.Tag()
			if fe.Param() != "" {
				reason += "=" + fe.Param()
			}
			details[fe.Field()] = reason
		}
		return details
	case errors.As(err, &typeErr):
		return map[string]string{typeErr.Field: "must be " + typeErr.Type.String()}
	}

	if name, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		return map[string]string{strings.Trim(name, `"`): "unknown field"}
	}
	return nil
}
