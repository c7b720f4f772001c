package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

func (s *Server) registerSwipeRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listSwipes",
		Method:      http.MethodGet,
		Path:        "/api/v1/swipes",
		Summary:     "List swipe history",
		Description: "Returns every recommendation verdict, oldest first",
		Tags:        []string{"Swipes"},
	}, s.handleListSwipes)

	huma.Register(s.api, huma.Operation{
		OperationID: "recordSwipe",
		Method:      http.MethodPost,
		Path:        "/api/v1/swipes",
		Summary:     "Record swipe",
		Description: "Stores a verdict on a recommended book; re-swiping replaces the earlier verdict",
		Tags:        []string{"Swipes"},
	}, s.handleRecordSwipe)

	huma.Register(s.api, huma.Operation{
		OperationID: "listLikedSwipes",
		Method:      http.MethodGet,
		Path:        "/api/v1/swipes/liked",
		Summary:     "List liked books",
		Description: "Returns only the recommendations the caller liked",
		Tags:        []string{"Swipes"},
	}, s.handleLikedSwipes)

	huma.Register(s.api, huma.Operation{
		OperationID: "clearSwipes",
		Method:      http.MethodDelete,
		Path:        "/api/v1/swipes",
		Summary:     "Clear swipe history",
		Description: "Wipes the history so previously seen books can be recommended again",
		Tags:        []string{"Swipes"},
	}, s.handleClearSwipes)
}

// === DTOs ===

// SwipesResponse contains swipe history entries.
type SwipesResponse struct {
	Swipes []domain.SwipedBook `json:"swipes" doc:"Verdicts, oldest first"`
}

// ListSwipesOutput wraps the swipe list for Huma.
type ListSwipesOutput struct {
	Body SwipesResponse
}

// SwipeRequest is the request body for recording a verdict.
type SwipeRequest struct {
	ID       string    `json:"id" validate:"required" doc:"Recommended book ID"`
	Title    string    `json:"title,omitempty" doc:"Book title, kept for display"`
	Liked    bool      `json:"liked" doc:"True for a right swipe"`
	SwipedAt time.Time `json:"swiped_at,omitempty" doc:"Verdict time; defaults to now"`
}

// RecordSwipeInput wraps the swipe request for Huma.
type RecordSwipeInput struct {
	UserID string `header:"X-User-ID"`
	Body   SwipeRequest
}

// === Handlers ===

func (s *Server) handleListSwipes(ctx context.Context, input *PartitionInput) (*ListSwipesOutput, error) {
	swipes, err := s.services.Recommend.Swipes(ctx, partitionFor(input.UserID))
	if err != nil {
		return nil, err
	}
	return &ListSwipesOutput{Body: SwipesResponse{Swipes: swipes}}, nil
}

func (s *Server) handleRecordSwipe(ctx context.Context, input *RecordSwipeInput) (*MessageOutput, error) {
	if err := s.validate.Validate(input.Body); err != nil {
		return nil, err
	}

	swipe := domain.SwipedBook{
		ID:       input.Body.ID,
		Title:    input.Body.Title,
		Liked:    input.Body.Liked,
		SwipedAt: input.Body.SwipedAt,
	}
	if err := s.services.Recommend.RecordSwipe(ctx, partitionFor(input.UserID), swipe); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Swipe recorded"}}, nil
}

func (s *Server) handleLikedSwipes(ctx context.Context, input *PartitionInput) (*ListSwipesOutput, error) {
	swipes, err := s.store.LikedSwipes(ctx, partitionFor(input.UserID))
	if err != nil {
		return nil, err
	}
	return &ListSwipesOutput{Body: SwipesResponse{Swipes: swipes}}, nil
}

func (s *Server) handleClearSwipes(ctx context.Context, input *PartitionInput) (*MessageOutput, error) {
	if err := s.services.Recommend.ClearSwipes(ctx, partitionFor(input.UserID)); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Swipe history cleared"}}, nil
}
