package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

func (ts *testServer) addBook(t *testing.T, userHeader string, body map[string]any) domain.Book {
	t.Helper()

	resp := ts.api.Post("/api/v1/books", body, userHeader)
	require.Equal(t, http.StatusOK, resp.Code, "add book failed: %s", resp.Body.String())

	return decodeEnvelope[domain.Book](t, resp).Data
}

func TestAddBook_FillsDefaults(t *testing.T) {
	ts := setupTestServer(t)

	book := ts.addBook(t, "X-User-ID: user-1", map[string]any{"title": "Dune"})

	assert.NotEmpty(t, book.ID)
	assert.Equal(t, domain.SourceOther, book.Source)
	assert.Equal(t, domain.StatusWantToRead, book.Status)
	assert.False(t, book.DateAdded.IsZero())
}

func TestAddBook_MissingTitle(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/books", map[string]any{"authors": []string{"Nobody"}}, "X-User-ID: user-1")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	envelope := decodeEnvelope[any](t, resp)
	assert.False(t, envelope.Success)
	assert.Equal(t, "VALIDATION", envelope.Code)
}

func TestAddBook_InvalidStatus(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Post("/api/v1/books",
		map[string]any{"title": "Dune", "status": "devoured"},
		"X-User-ID: user-1")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListBooks_FilterAndSort(t *testing.T) {
	ts := setupTestServer(t)

	ts.addBook(t, "X-User-ID: user-1", map[string]any{"title": "Aardvark Tales", "source": "kindle"})
	ts.addBook(t, "X-User-ID: user-1", map[string]any{"title": "Zebra Stories", "source": "physical"})

	// Default order is newest first.
	resp := ts.api.Get("/api/v1/books", "X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)
	books := decodeEnvelope[BooksResponse](t, resp).Data
	require.Equal(t, 2, books.Total)
	assert.Equal(t, "Zebra Stories", books.Books[0].Title)

	// Title sort flips it.
	resp = ts.api.Get("/api/v1/books?sort=title", "X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)
	books = decodeEnvelope[BooksResponse](t, resp).Data
	assert.Equal(t, "Aardvark Tales", books.Books[0].Title)

	// Source filter.
	resp = ts.api.Get("/api/v1/books?source=kindle", "X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)
	books = decodeEnvelope[BooksResponse](t, resp).Data
	require.Equal(t, 1, books.Total)
	assert.Equal(t, "Aardvark Tales", books.Books[0].Title)

	// Search.
	resp = ts.api.Get("/api/v1/books?search=zebra", "X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)
	books = decodeEnvelope[BooksResponse](t, resp).Data
	require.Equal(t, 1, books.Total)
	assert.Equal(t, "Zebra Stories", books.Books[0].Title)
}

func TestListBooks_InvalidStatusFilter(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/books?status=devoured", "X-User-ID: user-1")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListBooks_PartitionIsolation(t *testing.T) {
	ts := setupTestServer(t)

	ts.addBook(t, "X-User-ID: user-alice", map[string]any{"title": "Alice's Book"})

	// No header means the guest partition, which is empty.
	resp := ts.api.Get("/api/v1/books")
	require.Equal(t, http.StatusOK, resp.Code)
	books := decodeEnvelope[BooksResponse](t, resp).Data
	assert.Zero(t, books.Total)

	resp = ts.api.Get("/api/v1/books", "X-User-ID: user-bob")
	require.Equal(t, http.StatusOK, resp.Code)
	books = decodeEnvelope[BooksResponse](t, resp).Data
	assert.Zero(t, books.Total)
}

func TestGetBook(t *testing.T) {
	ts := setupTestServer(t)

	added := ts.addBook(t, "X-User-ID: user-1", map[string]any{"title": "Found Me"})

	resp := ts.api.Get("/api/v1/books/"+added.ID, "X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)
	book := decodeEnvelope[domain.Book](t, resp).Data
	assert.Equal(t, "Found Me", book.Title)
}

func TestUpdateBook_PartialPatch(t *testing.T) {
	ts := setupTestServer(t)

	added := ts.addBook(t, "X-User-ID: user-1", map[string]any{
		"title":      "Before",
		"page_count": 300,
	})

	resp := ts.api.Patch("/api/v1/books/"+added.ID,
		map[string]any{"rating": 4, "notes": "slow start, great ending"},
		"X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)

	book := decodeEnvelope[domain.Book](t, resp).Data
	assert.Equal(t, "Before", book.Title)
	assert.Equal(t, 4, book.Rating)
	assert.Equal(t, "slow start, great ending", book.Notes)
	assert.Equal(t, 300, book.PageCount)
}

func TestUpdateBook_PageCountReclampsProgress(t *testing.T) {
	ts := setupTestServer(t)

	added := ts.addBook(t, "X-User-ID: user-1", map[string]any{
		"title":      "Shrinking",
		"page_count": 400,
	})

	resp := ts.api.Post("/api/v1/books/"+added.ID+"/progress",
		map[string]any{"current_page": 350},
		"X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)

	// Lowering the page count pulls the bookmark back with it.
	resp = ts.api.Patch("/api/v1/books/"+added.ID,
		map[string]any{"page_count": 200},
		"X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)

	book := decodeEnvelope[domain.Book](t, resp).Data
	assert.Equal(t, 200, book.CurrentPage)
}

func TestRemoveBook(t *testing.T) {
	ts := setupTestServer(t)

	added := ts.addBook(t, "X-User-ID: user-1", map[string]any{"title": "Doomed"})

	resp := ts.api.Delete("/api/v1/books/"+added.ID, "X-User-ID: user-1")
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/books/"+added.ID, "X-User-ID: user-1")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSetProgress_Clamped(t *testing.T) {
	ts := setupTestServer(t)

	added := ts.addBook(t, "X-User-ID: user-1", map[string]any{"title": "Paged", "page_count": 200})

	resp := ts.api.Post("/api/v1/books/"+added.ID+"/progress",
		map[string]any{"current_page": 999},
		"X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)

	book := decodeEnvelope[domain.Book](t, resp).Data
	assert.Equal(t, 200, book.CurrentPage)
}

func TestSetStatus_Lifecycle(t *testing.T) {
	ts := setupTestServer(t)

	added := ts.addBook(t, "X-User-ID: user-1", map[string]any{"title": "Lifecycle", "page_count": 100})

	resp := ts.api.Post("/api/v1/books/"+added.ID+"/status",
		map[string]any{"status": "reading"},
		"X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)
	book := decodeEnvelope[domain.Book](t, resp).Data
	require.NotNil(t, book.DateStarted)

	resp = ts.api.Post("/api/v1/books/"+added.ID+"/status",
		map[string]any{"status": "completed"},
		"X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)
	book = decodeEnvelope[domain.Book](t, resp).Data
	require.NotNil(t, book.DateCompleted)
	assert.Equal(t, 100, book.CurrentPage)
}

func TestSetStatus_Invalid(t *testing.T) {
	ts := setupTestServer(t)

	added := ts.addBook(t, "X-User-ID: user-1", map[string]any{"title": "Stuck"})

	resp := ts.api.Post("/api/v1/books/"+added.ID+"/status",
		map[string]any{"status": "devoured"},
		"X-User-ID: user-1")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
