package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/search/books",
		Summary:     "Search books",
		Description: "Free-text search against the Google Books volumes API",
		Tags:        []string{"Search"},
	}, s.handleSearchBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "lookupISBN",
		Method:      http.MethodGet,
		Path:        "/api/v1/search/isbn/{isbn}",
		Summary:     "Look up ISBN",
		Description: "Finds a single book by ISBN, typically from a barcode scan",
		Tags:        []string{"Search"},
	}, s.handleLookupISBN)
}

// === DTOs ===

// SearchBooksInput contains the search query.
type SearchBooksInput struct {
	Query string `query:"q" doc:"Free-text search query"`
}

// SearchBooksResponse contains search results ready to add to a library.
type SearchBooksResponse struct {
	Results []domain.Book `json:"results" doc:"Matching books"`
}

// SearchBooksOutput wraps the search results for Huma.
type SearchBooksOutput struct {
	Body SearchBooksResponse
}

// LookupISBNInput contains the ISBN to look up.
type LookupISBNInput struct {
	ISBN string `path:"isbn" doc:"ISBN-10 or ISBN-13, hyphens allowed"`
}

// === Handlers ===

func (s *Server) handleSearchBooks(ctx context.Context, input *SearchBooksInput) (*SearchBooksOutput, error) {
	books, err := s.services.Lookup.Search(ctx, input.Query)
	if err != nil {
		return nil, err
	}
	return &SearchBooksOutput{Body: SearchBooksResponse{Results: books}}, nil
}

func (s *Server) handleLookupISBN(ctx context.Context, input *LookupISBNInput) (*BookOutput, error) {
	book, err := s.services.Lookup.LookupISBN(ctx, input.ISBN)
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: *book}, nil
}
