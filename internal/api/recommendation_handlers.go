package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

func (s *Server) registerRecommendationRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getRecommendations",
		Method:      http.MethodPost,
		Path:        "/api/v1/recommendations",
		Summary:     "Get recommendations",
		Description: "Fetches AI suggestions for the caller's library, minus already-swiped books. Requires the Bookworm plan.",
		Tags:        []string{"Recommendations"},
	}, s.handleRecommendations)
}

// RecommendationsResponse contains fresh suggestions.
type RecommendationsResponse struct {
	Recommendations []domain.RecommendedBook `json:"recommendations" doc:"Suggestions the caller has not swiped on"`
}

// RecommendationsOutput wraps the suggestions for Huma.
type RecommendationsOutput struct {
	Body RecommendationsResponse
}

func (s *Server) handleRecommendations(ctx context.Context, input *PartitionInput) (*RecommendationsOutput, error) {
	p := partitionFor(input.UserID)
	user, err := s.currentUser(ctx, p)
	if err != nil {
		return nil, err
	}

	recs, err := s.services.Recommend.Recommendations(ctx, p, user)
	if err != nil {
		return nil, err
	}
	return &RecommendationsOutput{Body: RecommendationsResponse{Recommendations: recs}}, nil
}
