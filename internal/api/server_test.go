package api

import (
	"context"
	"encoding/json/v2"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	"github.com/bookshelfapp/bookshelf-server/internal/metadata/googlebooks"
	"github.com/bookshelfapp/bookshelf-server/internal/service"
	"github.com/bookshelfapp/bookshelf-server/internal/store"
)

// testEnvelope mirrors the response envelope for decoding in tests.
type testEnvelope[T any] struct {
	Data    T      `json:"data"`
	Error   string `json:"error"`
	Code    string `json:"code"`
	Success bool   `json:"success"`
}

// fakeRecommender lets tests script the recommendation backend.
type fakeRecommender struct {
	recs   []domain.RecommendedBook
	err    error
	called bool
}

func (f *fakeRecommender) Recommend(_ context.Context, _ []domain.Book) ([]domain.RecommendedBook, error) {
	f.called = true
	return f.recs, f.err
}

// fakeLookup is a swappable handler standing in for the Google Books API.
type fakeLookup struct {
	handler http.HandlerFunc
}

func (f *fakeLookup) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if f.handler != nil {
		f.handler(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"totalItems":0,"items":[]}`))
}

// testServer wraps the API server with scriptable collaborators.
type testServer struct {
	*Server
	api    humatest.TestAPI
	rec    *fakeRecommender
	lookup *fakeLookup
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "bookshelf-api-test-*")
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)

	st, err := store.New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)

	lookup := &fakeLookup{}
	lookupSrv := httptest.NewServer(lookup)

	rec := &fakeRecommender{}

	subs := service.NewSubscriptionService(st, logger, []string{"owner@example.com"}, 50)
	library := service.NewLibraryService(st, subs, logger)

	services := &Services{
		Library:      library,
		Stats:        service.NewStatsService(st, logger),
		Subscription: subs,
		Recommend:    service.NewRecommendService(st, rec, subs, logger),
		Lookup:       googlebooks.NewClient(lookupSrv.URL, 5*time.Second, logger),
	}

	s := NewServer(st, services, logger)

	t.Cleanup(func() {
		lookupSrv.Close()
		_ = st.Close()
		_ = os.RemoveAll(tmpDir)
	})

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, s.api),
		rec:    rec,
		lookup: lookup,
	}
}

// decodeEnvelope unmarshals a recorded response body into the envelope.
func decodeEnvelope[T any](t *testing.T, resp *httptest.ResponseRecorder) testEnvelope[T] {
	t.Helper()
	var envelope testEnvelope[T]
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	return envelope
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/health")
	assert.Equal(t, http.StatusOK, resp.Code)

	envelope := decodeEnvelope[HealthResponse](t, resp)
	assert.True(t, envelope.Success)
	assert.Equal(t, "healthy", envelope.Data.Status)
	assert.Equal(t, "healthy", envelope.Data.Components["database"].Status)
}

func TestErrorEnvelope_NotFound(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/books/missing", "X-User-ID: user-1")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	envelope := decodeEnvelope[any](t, resp)
	assert.False(t, envelope.Success)
	assert.Equal(t, "NOT_FOUND", envelope.Code)
	assert.NotEmpty(t, envelope.Error)
}
