package service

import (
	"context"
	"log/slog"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	"github.com/bookshelfapp/bookshelf-server/internal/errors"
	"github.com/bookshelfapp/bookshelf-server/internal/store"
)

// StatsService computes reading statistics over a partition's library.
type StatsService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewStatsService creates a stats service.
func NewStatsService(s *store.Store, logger *slog.Logger) *StatsService {
	return &StatsService{store: s, logger: logger}
}

// YearInsights bundles the statistics for one year with progress
// against that year's reading goal, if one was set.
type YearInsights struct {
	Stats domain.YearStats    `json:"stats"`
	Goal  domain.GoalProgress `json:"goal"`
}

// InsightsForYear computes the full insights view for a year.
// A missing goal yields zero-valued goal progress, not an error.
func (s *StatsService) InsightsForYear(ctx context.Context, p store.Partition, year int) (*YearInsights, error) {
	books, err := s.store.ListBooks(ctx, p)
	if err != nil {
		return nil, err
	}

	goal, err := s.store.GoalForYear(ctx, p, year)
	if err != nil && !errors.Is(err, store.ErrGoalNotFound) {
		return nil, err
	}

	stats := domain.BuildYearStats(books, year)
	return &YearInsights{
		Stats: stats,
		Goal:  domain.BuildGoalProgress(stats, goal),
	}, nil
}
