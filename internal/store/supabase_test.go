package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentd187/kyp-backend/internal/models"
)

// fakePostgREST stands in for a Supabase project's REST endpoint.
// It records the last request and replies with the given status and body.
type fakePostgREST struct {
	status int
	body   string

	mu      sync.Mutex
	calls   int
	lastReq *http.Request
}

func (f *fakePostgREST) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls++
	f.lastReq = r.Clone(context.Background())
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = w.Write([]byte(f.body))
}

func newTestSupabaseStore(t *testing.T, fake *fakePostgREST) *SupabaseStore {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	s, err := NewSupabaseStore(srv.URL, "service-key")
	require.NoError(t, err)
	return s
}

func TestSupabaseStore_ListByGenderTarget(t *testing.T) {
	fake := &fakePostgREST{status: http.StatusOK, body: `[{"id":1,"name":"Mug"},{"id":3,"name":"Scarf"}]`}
	s := newTestSupabaseStore(t, fake)

	products, err := s.ListByGenderTarget(context.Background(), models.GenderTargetWife)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.JSONEq(t, `{"id":1,"name":"Mug"}`, string(products[0]))
	assert.JSONEq(t, `{"id":3,"name":"Scarf"}`, string(products[1]))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Equal(t, 1, fake.calls)
	req := fake.lastReq
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/rest/v1/products", req.URL.Path)
	assert.Equal(t, "eq.wife", req.URL.Query().Get("gender_target"))
	assert.Equal(t, "*", req.URL.Query().Get("select"))
	assert.Equal(t, "service-key", req.Header.Get("apikey"))
}

func TestSupabaseStore_ListByGenderTarget_Empty(t *testing.T) {
	fake := &fakePostgREST{status: http.StatusOK, body: `[]`}
	s := newTestSupabaseStore(t, fake)

	products, err := s.ListByGenderTarget(context.Background(), models.GenderTargetHusband)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, "eq.husband", fake.lastReq.URL.Query().Get("gender_target"))
}

func TestSupabaseStore_ListByGenderTarget_BackendError(t *testing.T) {
	fake := &fakePostgREST{
		status: http.StatusInternalServerError,
		body:   `{"code":"XX000","message":"relation \"products\" does not exist","details":null,"hint":null}`,
	}
	s := newTestSupabaseStore(t, fake)

	products, err := s.ListByGenderTarget(context.Background(), models.GenderTargetWife)
	require.Error(t, err)
	assert.Nil(t, products)
}

func TestSupabaseStore_ListByGenderTarget_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	s, err := NewSupabaseStore(url, "service-key")
	require.NoError(t, err)

	_, err = s.ListByGenderTarget(context.Background(), models.GenderTargetWife)
	require.Error(t, err)
}
