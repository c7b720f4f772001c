package store

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

// ListBooks returns all books in the partition, newest first.
// A partition with no stored books yields an empty slice.
func (s *Store) ListBooks(ctx context.Context, p Partition) ([]domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var books []domain.Book
	if _, err := s.readDocument(p.key(baseBooks), &books); err != nil {
		return nil, err
	}
	if books == nil {
		books = []domain.Book{}
	}
	return books, nil
}

// GetBook returns a single book by ID, or ErrBookNotFound.
func (s *Store) GetBook(ctx context.Context, p Partition, bookID string) (*domain.Book, error) {
	books, err := s.ListBooks(ctx, p)
	if err != nil {
		return nil, err
	}
	for i := range books {
		if books[i].ID == bookID {
			return &books[i], nil
		}
	}
	return nil, ErrBookNotFound
}

// AddBook prepends a book to the partition's library so the most
// recently added book lists first.
func (s *Store) AddBook(ctx context.Context, p Partition, book domain.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if book.ID == "" {
		return ErrInvalidInput.WithMessage("book ID is required")
	}

	return s.updateBooks(p, func(books []domain.Book) ([]domain.Book, error) {
		return append([]domain.Book{book}, books...), nil
	})
}

// UpdateBook replaces the stored book with the same ID, preserving its
// position in the list. Updating a book that no longer exists is a
// silent no-op: the record was removed concurrently and there is
// nothing left to change.
func (s *Store) UpdateBook(ctx context.Context, p Partition, book domain.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.updateBooks(p, func(books []domain.Book) ([]domain.Book, error) {
		for i := range books {
			if books[i].ID == book.ID {
				books[i] = book
				break
			}
		}
		return books, nil
	})
}

// RemoveBook deletes a book by ID. Removing an absent book is a no-op.
func (s *Store) RemoveBook(ctx context.Context, p Partition, bookID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.updateBooks(p, func(books []domain.Book) ([]domain.Book, error) {
		out := books[:0]
		for _, b := range books {
			if b.ID != bookID {
				out = append(out, b)
			}
		}
		return out, nil
	})
}

// ReplaceBooks overwrites the partition's entire library. Used by import.
func (s *Store) ReplaceBooks(ctx context.Context, p Partition, books []domain.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if books == nil {
		books = []domain.Book{}
	}
	return s.writeDocument(p.key(baseBooks), books)
}

// HasBook reports whether the partition already holds a book with the
// same title (case-insensitive) or the same non-empty ISBN. Advisory
// only; AddBook never enforces uniqueness.
func (s *Store) HasBook(ctx context.Context, p Partition, title, isbn string) (bool, error) {
	books, err := s.ListBooks(ctx, p)
	if err != nil {
		return false, err
	}
	for i := range books {
		if books[i].MatchesTitleOrISBN(title, isbn) {
			return true, nil
		}
	}
	return false, nil
}

// CountBooks returns the number of books in the partition.
func (s *Store) CountBooks(ctx context.Context, p Partition) (int, error) {
	books, err := s.ListBooks(ctx, p)
	if err != nil {
		return 0, err
	}
	return len(books), nil
}

// updateBooks applies fn to the partition's book list inside a single
// transaction. The whole read-modify-write either commits or rolls back.
func (s *Store) updateBooks(p Partition, fn func([]domain.Book) ([]domain.Book, error)) error {
	key := p.key(baseBooks)
	return s.db.Update(func(txn *badger.Txn) error {
		var books []domain.Book
		if _, err := s.readDocumentTxn(txn, key, &books); err != nil {
			return err
		}

		updated, err := fn(books)
		if err != nil {
			return err
		}
		if updated == nil {
			updated = []domain.Book{}
		}
		return s.writeDocumentTxn(txn, key, updated)
	})
}
