package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/bag-pricing-service/internal/domain/dto"
)

func testContext(body string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c
}

func TestRequestBuilder_BindStrict(t *testing.T) {
	useJSONFieldNames()

	tests := []struct {
		name        string
		body        string
		expectedErr error
		wantErr     bool
	}{
		{name: "valid order", body: plainOrder},
		{name: "empty body", body: "", expectedErr: ErrEmptyBody},
		{name: "unknown field", body: `{"product_type": "BOPP", "extra": 1}`, wantErr: true},
		{name: "binding rule", body: `{"product_type": "BOPP", "width": 20, "length": 30, "thickness": 30}`, wantErr: true},
		{name: "trailing object", body: plainOrder + plainOrder, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.OrderRequest
			err := NewRequestBuilder(testContext(tt.body)).BindStrict(&req)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.wantErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, 40000, req.Quantity)
			}
		})
	}
}

func TestRequestBuilder_BindIgnoresUnknownFields(t *testing.T) {
	body := `{"material_price_bopp": 200, "material_price_cpp": 220, "box_cost": 50, "comment": "march prices"}`

	req, err := BuildRequest[dto.UpdatePricingConfigRequest](testContext(body))

	require.NoError(t, err)
	require.NotNil(t, req.MaterialPriceBOPP)
	assert.Equal(t, 200.0, *req.MaterialPriceBOPP)
}

func TestBuildRequest_EmptyBody(t *testing.T) {
	req, err := BuildRequest[dto.UpdatePricingConfigRequest](testContext(""))

	assert.ErrorIs(t, err, ErrEmptyBody)
	assert.Nil(t, req)
}

func TestBuildStrictRequest(t *testing.T) {
	req, err := BuildStrictRequest[dto.OrderRequest](testContext(plainOrder))
	require.NoError(t, err)
	assert.Equal(t, "BOPP", req.ProductType)

	req, err = BuildStrictRequest[dto.OrderRequest](testContext(`{"product_type": `))
	assert.Error(t, err)
	assert.Nil(t, req)
}

func TestValidationDetails(t *testing.T) {
	useJSONFieldNames()

	decodeErr := func(body string) error {
		var req dto.OrderRequest
		return NewRequestBuilder(testContext(body)).BindStrict(&req)
	}

	tests := []struct {
		name     string
		err      error
		expected map[string]string
	}{
		{
			name:     "unknown field",
			err:      decodeErr(`{"colour": "red"}`),
			expected: map[string]string{"colour": "unknown field"},
		},
		{
			name:     "wrong type",
			err:      decodeErr(`{"quantity": "many"}`),
			expected: map[string]string{"quantity": "must be int"},
		},
		{
			name: "binding rules",
			err:  decodeErr(`{"product_type": "PET", "width": 20, "length": 30, "thickness": 30, "quantity": 1}`),
			expected: map[string]string{"product_type": "oneof=BOPP CPP"},
		},
		{
			name:     "syntax error",
			err:      decodeErr(`{`),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Equal(t, tt.expected, validationDetails(tt.err))
		})
	}
}
