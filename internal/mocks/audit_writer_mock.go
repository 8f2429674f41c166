package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
)

// MockAuditWriter is a mock implementation of service.AuditWriter.
type MockAuditWriter struct {
	mock.Mock
}

func (m *MockAuditWriter) Write(ctx context.Context, entry *model.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
