// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
)

type MockScrapRateProvider struct {
	mock.Mock
}

func (m *MockScrapRateProvider) ScrapRate(quantity int, bagType model.BagType) (float64, error) {
	args := m.Called(quantity, bagType)
	return args.Get(0).(float64), args.Error(1)
}
