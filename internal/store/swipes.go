package store

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

// ListSwipes returns the partition's swipe history, oldest first.
func (s *Store) ListSwipes(ctx context.Context, p Partition) ([]domain.SwipedBook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var swipes []domain.SwipedBook
	if _, err := s.readDocument(p.key(baseSwipes), &swipes); err != nil {
		return nil, err
	}
	if swipes == nil {
		swipes = []domain.SwipedBook{}
	}
	return swipes, nil
}

// RecordSwipe appends a swipe to the history. Swiping a book that was
// already swiped replaces the earlier record in place, so the history
// holds at most one verdict per book.
func (s *Store) RecordSwipe(ctx context.Context, p Partition, swipe domain.SwipedBook) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if swipe.ID == "" {
		return ErrInvalidInput.WithMessage("swipe book ID is required")
	}

	key := p.key(baseSwipes)
	return s.db.Update(func(txn *badger.Txn) error {
		var swipes []domain.SwipedBook
		if _, err := s.readDocumentTxn(txn, key, &swipes); err != nil {
			return err
		}

		replaced := false
		for i := range swipes {
			if swipes[i].ID == swipe.ID {
				swipes[i] = swipe
				replaced = true
				break
			}
		}
		if !replaced {
			swipes = append(swipes, swipe)
		}
		return s.writeDocumentTxn(txn, key, swipes)
	})
}

// LikedSwipes returns only the swipes the user liked.
func (s *Store) LikedSwipes(ctx context.Context, p Partition) ([]domain.SwipedBook, error) {
	swipes, err := s.ListSwipes(ctx, p)
	if err != nil {
		return nil, err
	}

	liked := make([]domain.SwipedBook, 0, len(swipes))
	for _, sw := range swipes {
		if sw.Liked {
			liked = append(liked, sw)
		}
	}
	return liked, nil
}

// SeenBookIDs returns the set of book IDs that appear in the swipe
// history, liked or not. Used to filter already-seen recommendations.
func (s *Store) SeenBookIDs(ctx context.Context, p Partition) (map[string]bool, error) {
	swipes, err := s.ListSwipes(ctx, p)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(swipes))
	for _, sw := range swipes {
		seen[sw.ID] = true
	}
	return seen, nil
}

// ClearSwipes deletes the partition's entire swipe history.
func (s *Store) ClearSwipes(ctx context.Context, p Partition) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.delete([]byte(p.key(baseSwipes)))
}
