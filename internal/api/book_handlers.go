package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	"github.com/bookshelfapp/bookshelf-server/internal/errors"
)

func (s *Server) registerBookRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/books",
		Summary:     "List books",
		Description: "Returns the caller's library, filtered and sorted",
		Tags:        []string{"Books"},
	}, s.handleListBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "addBook",
		Method:      http.MethodPost,
		Path:        "/api/v1/books",
		Summary:     "Add book",
		Description: "Adds a book to the caller's library, subject to the plan's book limit",
		Tags:        []string{"Books"},
	}, s.handleAddBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBook",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}",
		Summary:     "Get book",
		Description: "Returns a book by ID",
		Tags:        []string{"Books"},
	}, s.handleGetBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateBook",
		Method:      http.MethodPatch,
		Path:        "/api/v1/books/{id}",
		Summary:     "Update book",
		Description: "Updates fields of a book",
		Tags:        []string{"Books"},
	}, s.handleUpdateBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "removeBook",
		Method:      http.MethodDelete,
		Path:        "/api/v1/books/{id}",
		Summary:     "Remove book",
		Description: "Removes a book from the library",
		Tags:        []string{"Books"},
	}, s.handleRemoveBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "setBookProgress",
		Method:      http.MethodPost,
		Path:        "/api/v1/books/{id}/progress",
		Summary:     "Set reading progress",
		Description: "Updates the current page, clamped to the book's page count",
		Tags:        []string{"Books"},
	}, s.handleSetProgress)

	huma.Register(s.api, huma.Operation{
		OperationID: "setBookStatus",
		Method:      http.MethodPost,
		Path:        "/api/v1/books/{id}/status",
		Summary:     "Set reading status",
		Description: "Moves a book through the reading lifecycle, stamping dates",
		Tags:        []string{"Books"},
	}, s.handleSetStatus)
}

// === DTOs ===

// ListBooksInput contains filter and sort parameters for the library.
type ListBooksInput struct {
	UserID string `header:"X-User-ID" doc:"Resolved caller identity; empty selects the guest partition"`
	Search string `query:"search" doc:"Case-insensitive substring match on title or author"`
	Status string `query:"status" doc:"Filter by reading status"`
	Source string `query:"source" doc:"Filter by book source"`
	Sort   string `query:"sort" doc:"Sort key: dateAdded, title, author, progress"`
}

// BooksResponse contains a list of books.
type BooksResponse struct {
	Books []domain.Book `json:"books" doc:"Books in display order"`
	Total int           `json:"total" doc:"Number of books returned"`
}

// ListBooksOutput wraps the book list for Huma.
type ListBooksOutput struct {
	Body BooksResponse
}

// BookRequest is the request body for adding a book.
type BookRequest struct {
	Title          string   `json:"title" validate:"required,max=500" doc:"Book title"`
	Authors        []string `json:"authors,omitempty" doc:"Author names"`
	CoverURL       string   `json:"cover_url,omitempty" validate:"omitempty,url" doc:"Cover image URL"`
	ISBN           string   `json:"isbn,omitempty" validate:"omitempty,max=17" doc:"ISBN-10 or ISBN-13"`
	PageCount      int      `json:"page_count,omitempty" validate:"gte=0" doc:"Total pages, 0 when unknown"`
	Genres         []string `json:"genres,omitempty" doc:"Genre labels"`
	Description    string   `json:"description,omitempty" doc:"Synopsis"`
	Publisher      string   `json:"publisher,omitempty" doc:"Publisher name"`
	PublishedDate  string   `json:"published_date,omitempty" doc:"Publication date as given by the source"`
	Source         string   `json:"source,omitempty" doc:"Where the book came from"`
	Status         string   `json:"status,omitempty" doc:"Initial reading status"`
	Rating         int      `json:"rating,omitempty" validate:"gte=0,lte=5" doc:"Star rating, 0 = unrated"`
	SeriesName     string   `json:"series_name,omitempty" doc:"Series the book belongs to"`
	SeriesPosition float64  `json:"series_position,omitempty" doc:"Position within the series"`
	Tags           []string `json:"tags,omitempty" doc:"Free-form tags"`
	Notes          string   `json:"notes,omitempty" doc:"Private notes"`
}

// AddBookInput wraps the add book request for Huma.
type AddBookInput struct {
	UserID string `header:"X-User-ID"`
	Body   BookRequest
}

// BookOutput wraps a single book for Huma.
type BookOutput struct {
	Body domain.Book
}

// GetBookInput contains parameters for fetching one book.
type GetBookInput struct {
	UserID string `header:"X-User-ID"`
	ID     string `path:"id" doc:"Book ID"`
}

// UpdateBookRequest is the request body for updating a book.
// Absent fields keep their stored value.
type UpdateBookRequest struct {
	Title          *string    `json:"title,omitempty" validate:"omitempty,min=1,max=500" doc:"Book title"`
	Authors        []string   `json:"authors,omitempty" doc:"Author names"`
	CoverURL       *string    `json:"cover_url,omitempty" doc:"Cover image URL"`
	ISBN           *string    `json:"isbn,omitempty" doc:"ISBN-10 or ISBN-13"`
	PageCount      *int       `json:"page_count,omitempty" validate:"omitempty,gte=0" doc:"Total pages"`
	Genres         []string   `json:"genres,omitempty" doc:"Genre labels"`
	Description    *string    `json:"description,omitempty" doc:"Synopsis"`
	Rating         *int       `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5" doc:"Star rating"`
	Source         *string    `json:"source,omitempty" doc:"Where the book came from"`
	DueDate        *time.Time `json:"due_date,omitempty" doc:"Library due date"`
	DueDateEnabled *bool      `json:"due_date_reminder_enabled,omitempty" doc:"Remind before the due date"`
	SeriesName     *string    `json:"series_name,omitempty" doc:"Series the book belongs to"`
	SeriesPosition *float64   `json:"series_position,omitempty" doc:"Position within the series"`
	Tags           []string   `json:"tags,omitempty" doc:"Free-form tags"`
	Notes          *string    `json:"notes,omitempty" doc:"Private notes"`
}

// UpdateBookInput wraps the update request for Huma.
type UpdateBookInput struct {
	UserID string `header:"X-User-ID"`
	ID     string `path:"id" doc:"Book ID"`
	Body   UpdateBookRequest
}

// ProgressRequest is the request body for a progress update.
type ProgressRequest struct {
	CurrentPage int `json:"current_page" validate:"gte=0" doc:"Page the reader is on"`
}

// ProgressInput wraps the progress request for Huma.
type ProgressInput struct {
	UserID string `header:"X-User-ID"`
	ID     string `path:"id" doc:"Book ID"`
	Body   ProgressRequest
}

// StatusRequest is the request body for a status change.
type StatusRequest struct {
	Status string `json:"status" validate:"required" doc:"New reading status"`
}

// StatusInput wraps the status request for Huma.
type StatusInput struct {
	UserID string `header:"X-User-ID"`
	ID     string `path:"id" doc:"Book ID"`
	Body   StatusRequest
}

// === Handlers ===

func (s *Server) handleListBooks(ctx context.Context, input *ListBooksInput) (*ListBooksOutput, error) {
	p := partitionFor(input.UserID)

	query := domain.BookQuery{Search: input.Search, Sort: domain.SortKey(input.Sort)}
	if input.Status != "" {
		status := domain.ReadingStatus(input.Status)
		if !status.Valid() {
			return nil, errors.Validationf("invalid reading status %q", input.Status)
		}
		query.Status = &status
	}
	if input.Source != "" {
		source := domain.BookSource(input.Source)
		if !source.Valid() {
			return nil, errors.Validationf("invalid book source %q", input.Source)
		}
		query.Source = &source
	}

	books, err := s.services.Library.Query(ctx, p, query)
	if err != nil {
		return nil, err
	}

	return &ListBooksOutput{Body: BooksResponse{Books: books, Total: len(books)}}, nil
}

func (s *Server) handleAddBook(ctx context.Context, input *AddBookInput) (*BookOutput, error) {
	if err := s.validate.Validate(input.Body); err != nil {
		return nil, err
	}

	p := partitionFor(input.UserID)
	user, err := s.currentUser(ctx, p)
	if err != nil {
		return nil, err
	}

	book := domain.Book{
		Title:          input.Body.Title,
		Authors:        input.Body.Authors,
		CoverURL:       input.Body.CoverURL,
		ISBN:           input.Body.ISBN,
		PageCount:      input.Body.PageCount,
		Genres:         input.Body.Genres,
		Description:    input.Body.Description,
		Publisher:      input.Body.Publisher,
		PublishedDate:  input.Body.PublishedDate,
		Source:         domain.BookSource(input.Body.Source),
		Status:         domain.ReadingStatus(input.Body.Status),
		Rating:         input.Body.Rating,
		SeriesName:     input.Body.SeriesName,
		SeriesPosition: input.Body.SeriesPosition,
		Tags:           input.Body.Tags,
		Notes:          input.Body.Notes,
	}

	added, err := s.services.Library.Add(ctx, p, user, book)
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: *added}, nil
}

func (s *Server) handleGetBook(ctx context.Context, input *GetBookInput) (*BookOutput, error) {
	book, err := s.services.Library.Get(ctx, partitionFor(input.UserID), input.ID)
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: *book}, nil
}

func (s *Server) handleUpdateBook(ctx context.Context, input *UpdateBookInput) (*BookOutput, error) {
	if err := s.validate.Validate(input.Body); err != nil {
		return nil, err
	}

	p := partitionFor(input.UserID)
	book, err := s.services.Library.Get(ctx, p, input.ID)
	if err != nil {
		return nil, err
	}

	applyBookUpdate(book, &input.Body)

	if err := s.services.Library.Update(ctx, p, *book); err != nil {
		return nil, err
	}
	return &BookOutput{Body: *book}, nil
}

func (s *Server) handleRemoveBook(ctx context.Context, input *GetBookInput) (*MessageOutput, error) {
	if err := s.services.Library.Remove(ctx, partitionFor(input.UserID), input.ID); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Book removed"}}, nil
}

func (s *Server) handleSetProgress(ctx context.Context, input *ProgressInput) (*BookOutput, error) {
	if err := s.validate.Validate(input.Body); err != nil {
		return nil, err
	}

	book, err := s.services.Library.SetProgress(ctx, partitionFor(input.UserID), input.ID, input.Body.CurrentPage)
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: *book}, nil
}

func (s *Server) handleSetStatus(ctx context.Context, input *StatusInput) (*BookOutput, error) {
	book, err := s.services.Library.SetStatus(ctx, partitionFor(input.UserID), input.ID, domain.ReadingStatus(input.Body.Status))
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: *book}, nil
}

// applyBookUpdate copies the set fields of a patch request onto the book.
func applyBookUpdate(book *domain.Book, req *UpdateBookRequest) {
	if req.Title != nil {
		book.Title = *req.Title
	}
	if req.Authors != nil {
		book.Authors = req.Authors
	}
	if req.CoverURL != nil {
		book.CoverURL = *req.CoverURL
	}
	if req.ISBN != nil {
		book.ISBN = *req.ISBN
	}
	if req.PageCount != nil {
		book.PageCount = *req.PageCount
		book.SetProgress(book.CurrentPage) // re-clamp against the new count
	}
	if req.Genres != nil {
		book.Genres = req.Genres
	}
	if req.Description != nil {
		book.Description = *req.Description
	}
	if req.Rating != nil {
		book.Rating = *req.Rating
	}
	if req.Source != nil {
		book.Source = domain.BookSource(*req.Source)
	}
	if req.DueDate != nil {
		book.DueDate = req.DueDate
	}
	if req.DueDateEnabled != nil {
		book.DueDateReminderEnabled = *req.DueDateEnabled
	}
	if req.SeriesName != nil {
		book.SeriesName = *req.SeriesName
	}
	if req.SeriesPosition != nil {
		book.SeriesPosition = *req.SeriesPosition
	}
	if req.Tags != nil {
		book.Tags = req.Tags
	}
	if req.Notes != nil {
		book.Notes = *req.Notes
	}
}
