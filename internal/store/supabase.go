package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/supabase-go"

	"github.com/trentd187/kyp-backend/internal/models"
)

// SupabaseStore reads products through Supabase's PostgREST API.
// It holds one long-lived client, built at startup and shared by all requests.
type SupabaseStore struct {
	client *supabase.Client
}

// NewSupabaseStore builds the Supabase client for the given project URL and service key.
// No network call happens here; a bad URL or key only shows up on the first query.
func NewSupabaseStore(url, key string) (*SupabaseStore, error) {
	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{Schema: "public"})
	if err != nil {
		return nil, fmt.Errorf("create supabase client: %w", err)
	}
	return &SupabaseStore{client: client}, nil
}

// ListByGenderTarget runs GET /rest/v1/products?select=*&gender_target=eq.<target>.
//
// The postgrest client has no context support, so ctx is not propagated; the call is
// bounded only by the client's own HTTP defaults.
func (s *SupabaseStore) ListByGenderTarget(_ context.Context, target models.GenderTarget) ([]models.Product, error) {
	data, _, err := s.client.
		From(models.ProductsTable).
		Select("*", "", false).
		Eq(models.GenderTargetColumn, string(target)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("select %s where %s=%s: %w", models.ProductsTable, models.GenderTargetColumn, target, err)
	}

	products := make([]models.Product, 0)
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", models.ProductsTable, err)
	}
	if products == nil {
		// A literal JSON null decodes to a nil slice.
		products = make([]models.Product, 0)
	}
	return products, nil
}
