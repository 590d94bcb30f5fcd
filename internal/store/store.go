// Package store reads products from the backend service.
//
// Handlers depend on the ProductStore interface rather than on a concrete client,
// which lets main pick the transport (Supabase REST or direct Postgres) and lets
// tests swap in a mock.
package store

import (
	"context"

	"github.com/trentd187/kyp-backend/internal/models"
)

// ProductStore runs the one filtered read this service needs.
//
// ListByGenderTarget returns every product whose gender_target column equals target,
// in whatever order the backend produced them. An empty result is an empty, non-nil
// slice so it serialises as [] rather than null.
type ProductStore interface {
	ListByGenderTarget(ctx context.Context, target models.GenderTarget) ([]models.Product, error)
}
