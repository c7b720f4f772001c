package store

import (
	"context"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

// GetUser returns the account profile stored in the partition, or
// ErrUserNotFound when the caller never pushed one. Guests typically
// have no profile; callers treat that as the free tier.
func (s *Store) GetUser(ctx context.Context, p Partition) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var user domain.User
	found, err := s.readDocument(p.key(baseProfile), &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// SaveUser stores the account profile for the partition. The auth and
// billing glue outside this server pushes updates here after checkout
// or a subscription change.
func (s *Store) SaveUser(ctx context.Context, p Partition, user domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if user.UID == "" {
		return ErrInvalidInput.WithMessage("user UID is required")
	}
	return s.writeDocument(p.key(baseProfile), user)
}
