package service

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	"github.com/bookshelfapp/bookshelf-server/internal/errors"
	"github.com/bookshelfapp/bookshelf-server/internal/id"
	"github.com/bookshelfapp/bookshelf-server/internal/store"
)

// LibraryService manages a user's book collection. It keeps an
// in-memory snapshot of the most recently served partition so repeated
// list and filter calls skip the database.
//
// Snapshot loads are generation-stamped: a load that started before
// the active partition changed is discarded instead of installed, so a
// fast account switch never leaves one user looking at another user's
// books.
type LibraryService struct {
	store  *store.Store
	subs   *SubscriptionService
	logger *slog.Logger

	mu     sync.Mutex
	cached store.Partition
	gen    uint64
	books  []domain.Book
	loaded bool
}

// NewLibraryService creates a library service.
func NewLibraryService(s *store.Store, subs *SubscriptionService, logger *slog.Logger) *LibraryService {
	return &LibraryService{
		store:  s,
		subs:   subs,
		logger: logger,
	}
}

// Books returns the partition's books, newest first, from the cache
// when it is current.
func (s *LibraryService) Books(ctx context.Context, p store.Partition) ([]domain.Book, error) {
	s.mu.Lock()
	if s.loaded && s.cached == p {
		books := slices.Clone(s.books)
		s.mu.Unlock()
		return books, nil
	}
	s.cached = p
	s.loaded = false
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	books, err := s.store.ListBooks(ctx, p)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	// Only install the snapshot if no newer load or mutation started
	// while we were reading.
	if s.gen == gen && s.cached == p {
		s.books = books
		s.loaded = true
	}
	s.mu.Unlock()

	return slices.Clone(books), nil
}

// Query returns the partition's books filtered and sorted.
func (s *LibraryService) Query(ctx context.Context, p store.Partition, q domain.BookQuery) ([]domain.Book, error) {
	books, err := s.Books(ctx, p)
	if err != nil {
		return nil, err
	}
	return domain.FilterBooks(books, q), nil
}

// Get returns a single book by ID.
func (s *LibraryService) Get(ctx context.Context, p store.Partition, bookID string) (*domain.Book, error) {
	books, err := s.Books(ctx, p)
	if err != nil {
		return nil, err
	}
	for i := range books {
		if books[i].ID == bookID {
			return &books[i], nil
		}
	}
	return nil, errors.NotFoundf("book %s not found", bookID)
}

// Add stores a new book after checking the user's plan limit. A
// missing ID or added date is filled in before the write.
func (s *LibraryService) Add(ctx context.Context, p store.Partition, user *domain.User, book domain.Book) (*domain.Book, error) {
	if book.Title == "" {
		return nil, errors.Validation("book title is required")
	}
	if err := s.subs.CanAddBook(ctx, user, p); err != nil {
		return nil, err
	}

	if book.ID == "" {
		book.ID = id.MustGenerate("book")
	}
	if book.DateAdded.IsZero() {
		book.DateAdded = time.Now().UTC()
	}
	if book.Source == "" {
		book.Source = domain.SourceOther
	}
	if !book.Source.Valid() {
		return nil, errors.Validationf("invalid book source %q", book.Source)
	}
	if book.Status == "" {
		book.Status = domain.StatusWantToRead
	}
	if !book.Status.Valid() {
		return nil, errors.Validationf("invalid reading status %q", book.Status)
	}

	// Duplicates are allowed; the UI warns before submitting, so a
	// second copy arriving here is deliberate. Worth a log line.
	if dup, err := s.store.HasBook(ctx, p, book.Title, book.ISBN); err == nil && dup {
		s.logger.Info("adding duplicate book", "title", book.Title, "user", p.UserID())
	}

	if err := s.store.AddBook(ctx, p, book); err != nil {
		return nil, err
	}
	s.invalidate(p)

	s.logger.Info("book added", "book_id", book.ID, "title", book.Title, "user", p.UserID())
	return &book, nil
}

// Update replaces a stored book. Updating a book that was removed
// concurrently is a silent no-op, matching the store's contract.
func (s *LibraryService) Update(ctx context.Context, p store.Partition, book domain.Book) error {
	if book.ID == "" {
		return errors.Validation("book ID is required")
	}
	if err := s.store.UpdateBook(ctx, p, book); err != nil {
		return err
	}
	s.invalidate(p)
	return nil
}

// Remove deletes a book by ID.
func (s *LibraryService) Remove(ctx context.Context, p store.Partition, bookID string) error {
	if err := s.store.RemoveBook(ctx, p, bookID); err != nil {
		return err
	}
	s.invalidate(p)
	s.logger.Info("book removed", "book_id", bookID, "user", p.UserID())
	return nil
}

// SetProgress updates a book's current page, clamped to its page count.
func (s *LibraryService) SetProgress(ctx context.Context, p store.Partition, bookID string, page int) (*domain.Book, error) {
	book, err := s.Get(ctx, p, bookID)
	if err != nil {
		return nil, err
	}

	book.SetProgress(page)
	if err := s.Update(ctx, p, *book); err != nil {
		return nil, err
	}
	return book, nil
}

// SetStatus moves a book through the reading lifecycle, stamping
// started and completed dates as it goes.
func (s *LibraryService) SetStatus(ctx context.Context, p store.Partition, bookID string, status domain.ReadingStatus) (*domain.Book, error) {
	if !status.Valid() {
		return nil, errors.Validationf("invalid reading status %q", status)
	}

	book, err := s.Get(ctx, p, bookID)
	if err != nil {
		return nil, err
	}

	book.SetStatus(status, time.Now().UTC())
	if err := s.Update(ctx, p, *book); err != nil {
		return nil, err
	}
	return book, nil
}

// Export captures the partition's complete data for backup.
func (s *LibraryService) Export(ctx context.Context, p store.Partition) (*store.Snapshot, error) {
	return s.store.Export(ctx, p)
}

// Import replaces the partition's data with a previously exported
// snapshot and returns the number of books restored.
func (s *LibraryService) Import(ctx context.Context, p store.Partition, snap *store.Snapshot) (int, error) {
	if err := s.store.Import(ctx, p, snap); err != nil {
		return 0, err
	}
	s.invalidate(p)
	s.logger.Info("library imported", "books", len(snap.Books), "user", p.UserID())
	return len(snap.Books), nil
}

// Clear wipes every collection in the partition.
func (s *LibraryService) Clear(ctx context.Context, p store.Partition) error {
	if err := s.store.ClearAll(ctx, p); err != nil {
		return err
	}
	s.invalidate(p)
	s.logger.Info("library cleared", "user", p.UserID())
	return nil
}

// invalidate drops the cached snapshot for a partition after a write.
// Bumping the generation also cancels installs from in-flight loads.
func (s *LibraryService) invalidate(p store.Partition) {
	s.mu.Lock()
	if s.cached == p {
		s.loaded = false
		s.books = nil
	}
	s.gen++
	s.mu.Unlock()
}
