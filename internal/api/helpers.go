package api

import (
	"context"
	"errors"
	"strings"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	"github.com/bookshelfapp/bookshelf-server/internal/store"
)

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message" doc:"Confirmation message"`
}

// MessageOutput wraps a message response for Huma.
type MessageOutput struct {
	Body MessageResponse
}

// partitionFor resolves the caller's data partition from the X-User-ID
// header. The auth glue in front of this server verifies identity; a
// missing or blank header selects the shared guest partition.
func partitionFor(userID string) store.Partition {
	return store.PartitionFor(strings.TrimSpace(userID))
}

// currentUser loads the partition's stored profile with the owner
// override applied. Partitions without a profile (guests, first
// request of a new account) resolve to nil, which services treat as
// the free tier.
func (s *Server) currentUser(ctx context.Context, p store.Partition) (*domain.User, error) {
	user, err := s.store.GetUser(ctx, p)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s.services.Subscription.ResolveUser(user), nil
}
