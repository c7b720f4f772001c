package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookshelfapp/bookshelf-server/internal/errors"
	"github.com/bookshelfapp/bookshelf-server/internal/service"
)

func (s *Server) registerStatsRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getYearStats",
		Method:      http.MethodGet,
		Path:        "/api/v1/stats/{year}",
		Summary:     "Get year statistics",
		Description: "Returns reading statistics and goal progress for a year",
		Tags:        []string{"Stats"},
	}, s.handleYearStats)
}

// StatsInput contains parameters for the year statistics view.
type StatsInput struct {
	UserID string `header:"X-User-ID"`
	Year   int    `path:"year" doc:"Calendar year"`
}

// StatsOutput wraps the year insights for Huma.
type StatsOutput struct {
	Body service.YearInsights
}

func (s *Server) handleYearStats(ctx context.Context, input *StatsInput) (*StatsOutput, error) {
	if input.Year < 1900 || input.Year > 2200 {
		return nil, errors.Validationf("year %d is out of range", input.Year)
	}

	insights, err := s.services.Stats.InsightsForYear(ctx, partitionFor(input.UserID), input.Year)
	if err != nil {
		return nil, err
	}
	return &StatsOutput{Body: *insights}, nil
}
