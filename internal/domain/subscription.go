package domain

import "time"

// SubscriptionTier is one of the three subscription levels.
type SubscriptionTier string

// Subscription tiers.
const (
	TierFree     SubscriptionTier = "free"
	TierReader   SubscriptionTier = "reader"
	TierBookworm SubscriptionTier = "bookworm"
)

// Valid reports whether the tier is one of the known values.
func (t SubscriptionTier) Valid() bool {
	switch t {
	case TierFree, TierReader, TierBookworm:
		return true
	}
	return false
}

// SubscriptionStatus is the billing state of a subscription.
type SubscriptionStatus string

// Subscription statuses.
const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionPastDue   SubscriptionStatus = "past_due"
	SubscriptionTrialing  SubscriptionStatus = "trialing"
)

// Feature is a gateable capability granted by a subscription plan.
// It is a closed enum so gating code can switch exhaustively instead of
// falling through a default-deny string branch.
type Feature int

// Features.
const (
	FeatureUnlimitedBooks Feature = iota
	FeatureAI
	FeatureCloudSync
	FeatureFamilySharing
)

// String returns the wire name of the feature.
func (f Feature) String() string {
	switch f {
	case FeatureUnlimitedBooks:
		return "unlimited_books"
	case FeatureAI:
		return "ai"
	case FeatureCloudSync:
		return "cloud_sync"
	case FeatureFamilySharing:
		return "family"
	}
	return "unknown"
}

// ParseFeature converts a wire name to a Feature.
func ParseFeature(s string) (Feature, bool) {
	switch s {
	case "unlimited_books":
		return FeatureUnlimitedBooks, true
	case "ai":
		return FeatureAI, true
	case "cloud_sync":
		return FeatureCloudSync, true
	case "family":
		return FeatureFamilySharing, true
	}
	return 0, false
}

// SubscriptionPlan is the fixed feature/limit bundle for a tier.
type SubscriptionPlan struct {
	ID            SubscriptionTier `json:"id"`
	Name          string           `json:"name"`
	Price         float64          `json:"price"`
	PriceID       string           `json:"price_id,omitempty"` // external billing price id
	Features      []string         `json:"features"`
	BookLimit     *int             `json:"book_limit"` // nil = unlimited
	AIFeatures    bool             `json:"ai_features"`
	CloudSync     bool             `json:"cloud_sync"`
	FamilySharing int              `json:"family_sharing"` // seat count, 0 = none
}

// Unlimited reports whether the plan has no book limit.
func (p SubscriptionPlan) Unlimited() bool {
	return p.BookLimit == nil
}

// freeBookLimit is the book cap on the free tier, shared with the
// unauthenticated guest cap default.
const freeBookLimit = 50

// Plans returns the static three-tier plan table.
func Plans() map[SubscriptionTier]SubscriptionPlan {
	limit := freeBookLimit
	return map[SubscriptionTier]SubscriptionPlan{
		TierFree: {
			ID:    TierFree,
			Name:  "Free",
			Price: 0,
			Features: []string{
				"Track up to 50 books",
				"Manual book entry",
				"Basic reading stats",
				"Barcode scanner",
			},
			BookLimit: &limit,
		},
		TierReader: {
			ID:      TierReader,
			Name:    "Reader",
			Price:   4.99,
			PriceID: "price_reader_monthly",
			Features: []string{
				"Unlimited books",
				"All import options",
				"Full reading analytics",
				"Cloud sync",
				"Priority support",
			},
			CloudSync: true,
		},
		TierBookworm: {
			ID:      TierBookworm,
			Name:    "Bookworm",
			Price:   7.99,
			PriceID: "price_bookworm_monthly",
			Features: []string{
				"Everything in Reader",
				"AI book recommendations",
				"Smart reading insights",
				"Family sharing (up to 5)",
				"Early access to features",
			},
			AIFeatures:    true,
			CloudSync:     true,
			FamilySharing: 5,
		},
	}
}

// UserSubscription is a user's current subscription state.
type UserSubscription struct {
	Tier              SubscriptionTier   `json:"tier"`
	Status            SubscriptionStatus `json:"status"`
	CurrentPeriodEnd  time.Time          `json:"current_period_end"`
	CancelAtPeriodEnd bool               `json:"cancel_at_period_end"`
	CustomerID        string             `json:"customer_id,omitempty"`
	SubscriptionID    string             `json:"subscription_id,omitempty"`
}

// DefaultSubscription returns the free-tier subscription every new user
// starts with.
func DefaultSubscription() UserSubscription {
	return UserSubscription{
		Tier:   TierFree,
		Status: SubscriptionActive,
	}
}

// User is an authenticated account as resolved by the auth layer.
type User struct {
	UID          string           `json:"uid"`
	Email        string           `json:"email"`
	DisplayName  string           `json:"display_name,omitempty"`
	PhotoURL     string           `json:"photo_url,omitempty"`
	Subscription UserSubscription `json:"subscription"`
	IsOwner      bool             `json:"is_owner"`
	CreatedAt    time.Time        `json:"created_at"`
}
