package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/trentd187/kyp-backend/internal/models"
)

// GormStore reads products straight from the backend's Postgres over a GORM handle.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open *gorm.DB (see database.Connect).
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// listByGenderTargetSQL has Postgres encode each row, so json/jsonb columns stay nested
// objects and keys keep table column order, same as PostgREST's output.
const listByGenderTargetSQL = "SELECT row_to_json(p)::text FROM " + models.ProductsTable +
	" p WHERE p." + models.GenderTargetColumn + " = ?"

// ListByGenderTarget returns each matching row as the JSON object Postgres built for it.
func (s *GormStore) ListByGenderTarget(ctx context.Context, target models.GenderTarget) ([]models.Product, error) {
	rows, err := s.db.WithContext(ctx).Raw(listByGenderTargetSQL, string(target)).Rows()
	if err != nil {
		return nil, fmt.Errorf("select %s where %s=%s: %w", models.ProductsTable, models.GenderTargetColumn, target, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", models.ProductsTable, err)
		}
		products = append(products, models.Product(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s rows: %w", models.ProductsTable, err)
	}
	return products, nil
}
