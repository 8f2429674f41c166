package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/guttosm/bag-pricing-service/internal/domain/dto"
	"github.com/guttosm/bag-pricing-service/internal/domain/model"
)

// LoadPricingConfig returns the startup pricing configuration. An empty path
// yields model.DefaultPricingConfig. The file uses the same JSON document as
// PUT /api/config; omitted coefficients take their standard values.
func LoadPricingConfig(path string) (model.PricingConfig, error) {
	if path == "" {
		return model.DefaultPricingConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.PricingConfig{}, fmt.Errorf("read pricing config: %w", err)
	}

	var req dto.UpdatePricingConfigRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return model.PricingConfig{}, fmt.Errorf("decode pricing config %s: %w", path, err)
	}

	cfg := req.ToModel()
	if err := cfg.Validate(); err != nil {
		return model.PricingConfig{}, fmt.Errorf("invalid pricing config %s: %w", path, err)
	}
	return cfg, nil
}
