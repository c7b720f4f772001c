package service_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	"github.com/bookshelfapp/bookshelf-server/internal/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "bookshelf-service-test-*")
	require.NoError(t, err)

	s, err := store.New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	})

	return s
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testBook(id, title string) domain.Book {
	return domain.Book{
		ID:        id,
		Title:     title,
		Authors:   []string{"Test Author"},
		PageCount: 300,
		Source:    domain.SourcePhysical,
		Status:    domain.StatusWantToRead,
		DateAdded: time.Now().UTC(),
	}
}

func subscribedUser(tier domain.SubscriptionTier) *domain.User {
	return &domain.User{
		UID:   "user-1",
		Email: "reader@example.com",
		Subscription: domain.UserSubscription{
			Tier:   tier,
			Status: domain.SubscriptionActive,
		},
	}
}
