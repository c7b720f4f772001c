package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
	"github.com/bookshelfapp/bookshelf-server/internal/errors"
	"github.com/bookshelfapp/bookshelf-server/internal/store"
)

// SubscriptionService answers entitlement questions: which features a
// user may use and how many books their plan allows. A nil user means
// an unauthenticated guest, who gets the free tier.
type SubscriptionService struct {
	store          *store.Store
	logger         *slog.Logger
	ownerEmails    map[string]bool
	guestBookLimit int
}

// NewSubscriptionService creates a subscription service.
// ownerEmails is the allow-list of accounts granted the top tier
// without payment; matching is case-insensitive.
func NewSubscriptionService(s *store.Store, logger *slog.Logger, ownerEmails []string, guestBookLimit int) *SubscriptionService {
	owners := make(map[string]bool, len(ownerEmails))
	for _, email := range ownerEmails {
		owners[strings.ToLower(strings.TrimSpace(email))] = true
	}
	return &SubscriptionService{
		store:          s,
		logger:         logger,
		ownerEmails:    owners,
		guestBookLimit: guestBookLimit,
	}
}

// ResolveUser returns the user with the owner override applied: an
// allow-listed email gets the top tier active regardless of the
// subscription on record. Returns nil unchanged for guests.
func (s *SubscriptionService) ResolveUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}

	resolved := *user
	if s.ownerEmails[strings.ToLower(user.Email)] {
		resolved.IsOwner = true
		resolved.Subscription = domain.UserSubscription{
			Tier:   domain.TierBookworm,
			Status: domain.SubscriptionActive,
		}
		s.logger.Debug("owner override applied", "uid", user.UID)
	}
	return &resolved
}

// Tier returns the user's effective subscription tier. Guests fall
// back to free. The billing status on record is not consulted: access
// follows the stored tier, and the billing glue downgrades the tier
// itself once a lapsed subscription actually expires.
func (s *SubscriptionService) Tier(user *domain.User) domain.SubscriptionTier {
	user = s.ResolveUser(user)
	if user == nil {
		return domain.TierFree
	}
	return user.Subscription.Tier
}

// Plan returns the plan for the user's effective tier.
// An unknown tier on record falls back to the free plan.
func (s *SubscriptionService) Plan(user *domain.User) domain.SubscriptionPlan {
	plans := domain.Plans()
	if plan, ok := plans[s.Tier(user)]; ok {
		return plan
	}
	return plans[domain.TierFree]
}

// HasFeature reports whether the user's plan includes the feature.
// The switch is exhaustive over the feature enum so adding a feature
// without deciding its gating fails loudly at review time.
func (s *SubscriptionService) HasFeature(user *domain.User, feature domain.Feature) bool {
	plan := s.Plan(user)

	switch feature {
	case domain.FeatureUnlimitedBooks:
		return plan.Unlimited()
	case domain.FeatureAI:
		return plan.AIFeatures
	case domain.FeatureCloudSync:
		return plan.CloudSync
	case domain.FeatureFamilySharing:
		return plan.FamilySharing > 0
	default:
		return false
	}
}

// CanAddBook checks the user's book limit against the partition's
// current count. Returns a limit exceeded error when adding one more
// book would pass the plan's cap.
func (s *SubscriptionService) CanAddBook(ctx context.Context, user *domain.User, p store.Partition) error {
	limit := s.bookLimit(user)
	if limit == nil {
		return nil
	}

	count, err := s.store.CountBooks(ctx, p)
	if err != nil {
		return err
	}
	if count >= *limit {
		return errors.LimitExceededf("book limit of %d reached; upgrade to add more books", *limit)
	}
	return nil
}

// bookLimit returns the user's effective book cap, nil for unlimited.
func (s *SubscriptionService) bookLimit(user *domain.User) *int {
	if user == nil {
		limit := s.guestBookLimit
		return &limit
	}
	return s.Plan(user).BookLimit
}
