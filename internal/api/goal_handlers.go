package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	"github.com/bookshelfapp/bookshelf-server/internal/errors"
	"github.com/bookshelfapp/bookshelf-server/internal/id"
	"github.com/bookshelfapp/bookshelf-server/internal/store"
)

func (s *Server) registerGoalRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listGoals",
		Method:      http.MethodGet,
		Path:        "/api/v1/goals",
		Summary:     "List reading goals",
		Description: "Returns all of the caller's yearly reading goals",
		Tags:        []string{"Goals"},
	}, s.handleListGoals)

	huma.Register(s.api, huma.Operation{
		OperationID: "saveGoal",
		Method:      http.MethodPut,
		Path:        "/api/v1/goals",
		Summary:     "Save reading goal",
		Description: "Creates or replaces the goal for a year",
		Tags:        []string{"Goals"},
	}, s.handleSaveGoal)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCurrentGoal",
		Method:      http.MethodGet,
		Path:        "/api/v1/goals/current",
		Summary:     "Get current goal",
		Description: "Returns the goal for the current calendar year",
		Tags:        []string{"Goals"},
	}, s.handleCurrentGoal)
}

// === DTOs ===

// PartitionInput is the minimal input for operations that only need
// the caller's identity.
type PartitionInput struct {
	UserID string `header:"X-User-ID" doc:"Resolved caller identity; empty selects the guest partition"`
}

// GoalsResponse contains a list of reading goals.
type GoalsResponse struct {
	Goals []domain.ReadingGoal `json:"goals" doc:"Goals, one per year at most"`
}

// ListGoalsOutput wraps the goal list for Huma.
type ListGoalsOutput struct {
	Body GoalsResponse
}

// GoalRequest is the request body for saving a goal.
type GoalRequest struct {
	Year        int `json:"year" validate:"required,gte=1900,lte=2200" doc:"Calendar year the goal applies to"`
	TargetBooks int `json:"target_books" validate:"required,gt=0" doc:"Number of books to finish"`
}

// SaveGoalInput wraps the goal request for Huma.
type SaveGoalInput struct {
	UserID string `header:"X-User-ID"`
	Body   GoalRequest
}

// GoalOutput wraps a single goal for Huma.
type GoalOutput struct {
	Body domain.ReadingGoal
}

// === Handlers ===

func (s *Server) handleListGoals(ctx context.Context, input *PartitionInput) (*ListGoalsOutput, error) {
	goals, err := s.store.ListGoals(ctx, partitionFor(input.UserID))
	if err != nil {
		return nil, err
	}
	return &ListGoalsOutput{Body: GoalsResponse{Goals: goals}}, nil
}

func (s *Server) handleSaveGoal(ctx context.Context, input *SaveGoalInput) (*GoalOutput, error) {
	if err := s.validate.Validate(input.Body); err != nil {
		return nil, err
	}

	p := partitionFor(input.UserID)
	goal := domain.ReadingGoal{
		Year:        input.Body.Year,
		TargetBooks: input.Body.TargetBooks,
	}

	// Saving for a year that already has a goal keeps its identity.
	if existing, err := s.store.GoalForYear(ctx, p, goal.Year); err == nil {
		goal.ID = existing.ID
		goal.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, store.ErrGoalNotFound) {
		return nil, err
	} else {
		goal.ID = id.MustGenerate("goal")
		goal.CreatedAt = time.Now().UTC()
	}

	if err := s.store.SaveGoal(ctx, p, goal); err != nil {
		return nil, err
	}
	return &GoalOutput{Body: goal}, nil
}

func (s *Server) handleCurrentGoal(ctx context.Context, input *PartitionInput) (*GoalOutput, error) {
	goal, err := s.store.CurrentGoal(ctx, partitionFor(input.UserID))
	if err != nil {
		return nil, err
	}
	return &GoalOutput{Body: *goal}, nil
}
