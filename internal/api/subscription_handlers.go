package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	"github.com/bookshelfapp/bookshelf-server/internal/errors"
)

func (s *Server) registerSubscriptionRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listPlans",
		Method:      http.MethodGet,
		Path:        "/api/v1/plans",
		Summary:     "List plans",
		Description: "Returns the static subscription plan table",
		Tags:        []string{"Subscription"},
	}, s.handleListPlans)

	huma.Register(s.api, huma.Operation{
		OperationID: "getSubscription",
		Method:      http.MethodGet,
		Path:        "/api/v1/me/subscription",
		Summary:     "Get subscription",
		Description: "Returns the caller's effective tier, plan and feature access",
		Tags:        []string{"Subscription"},
	}, s.handleGetSubscription)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateSubscription",
		Method:      http.MethodPut,
		Path:        "/api/v1/me/subscription",
		Summary:     "Update subscription",
		Description: "Stores the caller's profile and subscription state as pushed by the billing glue",
		Tags:        []string{"Subscription"},
	}, s.handleUpdateSubscription)
}

// === DTOs ===

// PlansResponse contains the plan table in tier order.
type PlansResponse struct {
	Plans []domain.SubscriptionPlan `json:"plans" doc:"Free, Reader, Bookworm"`
}

// ListPlansOutput wraps the plan table for Huma.
type ListPlansOutput struct {
	Body PlansResponse
}

// SubscriptionView is the caller's effective entitlement state.
type SubscriptionView struct {
	Tier     domain.SubscriptionTier `json:"tier" doc:"Effective tier after status and owner checks"`
	Plan     domain.SubscriptionPlan `json:"plan" doc:"Plan for the effective tier"`
	IsOwner  bool                    `json:"is_owner" doc:"Caller is on the owner allow-list"`
	Features map[string]bool         `json:"features" doc:"Feature name to access flag"`
}

// SubscriptionOutput wraps the subscription view for Huma.
type SubscriptionOutput struct {
	Body SubscriptionView
}

// SubscriptionState mirrors the billing provider's subscription record.
type SubscriptionState struct {
	Tier              string    `json:"tier" validate:"required,oneof=free reader bookworm" doc:"Purchased tier"`
	Status            string    `json:"status" validate:"required,oneof=active cancelled past_due trialing" doc:"Billing status"`
	CurrentPeriodEnd  time.Time `json:"current_period_end,omitempty" doc:"End of the paid period"`
	CancelAtPeriodEnd bool      `json:"cancel_at_period_end" doc:"Subscription lapses at period end"`
	CustomerID        string    `json:"customer_id,omitempty" doc:"Billing customer reference"`
	SubscriptionID    string    `json:"subscription_id,omitempty" doc:"Billing subscription reference"`
}

// UpdateSubscriptionRequest is the request body for a profile push.
type UpdateSubscriptionRequest struct {
	Email        string            `json:"email" validate:"required,email" doc:"Account email"`
	DisplayName  string            `json:"display_name,omitempty" validate:"max=100" doc:"Display name"`
	PhotoURL     string            `json:"photo_url,omitempty" validate:"omitempty,url" doc:"Avatar URL"`
	Subscription SubscriptionState `json:"subscription" doc:"Current subscription state"`
}

// UpdateSubscriptionInput wraps the profile push for Huma.
type UpdateSubscriptionInput struct {
	UserID string `header:"X-User-ID"`
	Body   UpdateSubscriptionRequest
}

// === Handlers ===

func (s *Server) handleListPlans(_ context.Context, _ *struct{}) (*ListPlansOutput, error) {
	plans := domain.Plans()
	ordered := []domain.SubscriptionPlan{
		plans[domain.TierFree],
		plans[domain.TierReader],
		plans[domain.TierBookworm],
	}
	return &ListPlansOutput{Body: PlansResponse{Plans: ordered}}, nil
}

func (s *Server) handleGetSubscription(ctx context.Context, input *PartitionInput) (*SubscriptionOutput, error) {
	p := partitionFor(input.UserID)
	user, err := s.currentUser(ctx, p)
	if err != nil {
		return nil, err
	}
	return &SubscriptionOutput{Body: s.subscriptionView(user)}, nil
}

func (s *Server) handleUpdateSubscription(ctx context.Context, input *UpdateSubscriptionInput) (*SubscriptionOutput, error) {
	if err := s.validate.Validate(input.Body); err != nil {
		return nil, err
	}

	p := partitionFor(input.UserID)
	if p.IsGuest() {
		return nil, errors.Forbidden("sign in to manage a subscription")
	}

	user := domain.User{
		UID:         p.UserID(),
		Email:       input.Body.Email,
		DisplayName: input.Body.DisplayName,
		PhotoURL:    input.Body.PhotoURL,
		Subscription: domain.UserSubscription{
			Tier:              domain.SubscriptionTier(input.Body.Subscription.Tier),
			Status:            domain.SubscriptionStatus(input.Body.Subscription.Status),
			CurrentPeriodEnd:  input.Body.Subscription.CurrentPeriodEnd,
			CancelAtPeriodEnd: input.Body.Subscription.CancelAtPeriodEnd,
			CustomerID:        input.Body.Subscription.CustomerID,
			SubscriptionID:    input.Body.Subscription.SubscriptionID,
		},
	}

	// Keep the original creation time across pushes.
	if existing, err := s.store.GetUser(ctx, p); err == nil {
		user.CreatedAt = existing.CreatedAt
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	if err := s.store.SaveUser(ctx, p, user); err != nil {
		return nil, err
	}

	s.logger.Info("subscription updated",
		"user", p.UserID(),
		"tier", user.Subscription.Tier,
		"status", user.Subscription.Status,
	)

	resolved := s.services.Subscription.ResolveUser(&user)
	return &SubscriptionOutput{Body: s.subscriptionView(resolved)}, nil
}

// subscriptionView assembles the entitlement summary for a resolved user.
func (s *Server) subscriptionView(user *domain.User) SubscriptionView {
	subs := s.services.Subscription
	features := make(map[string]bool, 4)
	for _, f := range []domain.Feature{
		domain.FeatureUnlimitedBooks,
		domain.FeatureAI,
		domain.FeatureCloudSync,
		domain.FeatureFamilySharing,
	} {
		features[f.String()] = subs.HasFeature(user, f)
	}

	return SubscriptionView{
		Tier:     subs.Tier(user),
		Plan:     subs.Plan(user),
		IsOwner:  user != nil && user.IsOwner,
		Features: features,
	}
}
