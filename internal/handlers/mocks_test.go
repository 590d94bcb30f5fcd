package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/trentd187/kyp-backend/internal/models"
)

// MockProductStore is a mock implementation of store.ProductStore
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) ListByGenderTarget(ctx context.Context, target models.GenderTarget) ([]models.Product, error) {
	args := m.Called(ctx, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}
