package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	"github.com/bookshelfapp/bookshelf-server/internal/errors"
	"github.com/bookshelfapp/bookshelf-server/internal/store"
)

// Recommender fetches suggestions for a library. Implemented by the
// recommend package's HTTP client.
type Recommender interface {
	Recommend(ctx context.Context, books []domain.Book) ([]domain.RecommendedBook, error)
}

// RecommendService produces personalized book suggestions and records
// the user's swipe verdicts on them.
type RecommendService struct {
	store  *store.Store
	client Recommender
	subs   *SubscriptionService
	logger *slog.Logger
}

// NewRecommendService creates a recommendation service.
func NewRecommendService(s *store.Store, client Recommender, subs *SubscriptionService, logger *slog.Logger) *RecommendService {
	return &RecommendService{
		store:  s,
		client: client,
		subs:   subs,
		logger: logger,
	}
}

// Recommendations fetches suggestions for the partition's library,
// dropping any book the user has already swiped on. AI-backed
// recommendations are a top-tier feature.
func (s *RecommendService) Recommendations(ctx context.Context, p store.Partition, user *domain.User) ([]domain.RecommendedBook, error) {
	if !s.subs.HasFeature(user, domain.FeatureAI) {
		return nil, errors.Forbidden("AI recommendations require the Bookworm plan")
	}

	books, err := s.store.ListBooks(ctx, p)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, errors.Validation("add some books to your library to get recommendations")
	}

	recs, err := s.client.Recommend(ctx, books)
	if err != nil {
		return nil, err
	}

	seen, err := s.store.SeenBookIDs(ctx, p)
	if err != nil {
		return nil, err
	}

	fresh := make([]domain.RecommendedBook, 0, len(recs))
	for _, rec := range recs {
		if !seen[rec.ID] {
			fresh = append(fresh, rec)
		}
	}

	s.logger.Debug("recommendations ready",
		"user", p.UserID(),
		"fetched", len(recs),
		"after_seen_filter", len(fresh),
	)
	return fresh, nil
}

// RecordSwipe stores the user's verdict on a recommended book. A
// missing swipe time is stamped with now.
func (s *RecommendService) RecordSwipe(ctx context.Context, p store.Partition, swipe domain.SwipedBook) error {
	if swipe.ID == "" {
		return errors.Validation("swiped book ID is required")
	}
	if swipe.SwipedAt.IsZero() {
		swipe.SwipedAt = time.Now().UTC()
	}
	return s.store.RecordSwipe(ctx, p, swipe)
}

// Swipes returns the partition's swipe history.
func (s *RecommendService) Swipes(ctx context.Context, p store.Partition) ([]domain.SwipedBook, error) {
	return s.store.ListSwipes(ctx, p)
}

// ClearSwipes wipes the partition's swipe history so previously seen
// books can be recommended again.
func (s *RecommendService) ClearSwipes(ctx context.Context, p store.Partition) error {
	return s.store.ClearSwipes(ctx, p)
}
