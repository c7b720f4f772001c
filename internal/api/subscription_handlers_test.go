package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookshelfapp/bookshelf-server/internal/domain"
)

func TestListPlans(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/plans")
	require.Equal(t, http.StatusOK, resp.Code)

	plans := decodeEnvelope[PlansResponse](t, resp).Data
	require.Len(t, plans.Plans, 3)

	free, reader, bookworm := plans.Plans[0], plans.Plans[1], plans.Plans[2]

	assert.Equal(t, domain.TierFree, free.ID)
	require.NotNil(t, free.BookLimit)
	assert.Equal(t, 50, *free.BookLimit)

	assert.Equal(t, domain.TierReader, reader.ID)
	assert.Nil(t, reader.BookLimit)
	assert.True(t, reader.CloudSync)
	assert.False(t, reader.AIFeatures)

	assert.Equal(t, domain.TierBookworm, bookworm.ID)
	assert.True(t, bookworm.AIFeatures)
	assert.Equal(t, 5, bookworm.FamilySharing)
}

func TestGetSubscription_Guest(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/api/v1/me/subscription")
	require.Equal(t, http.StatusOK, resp.Code)

	view := decodeEnvelope[SubscriptionView](t, resp).Data
	assert.Equal(t, domain.TierFree, view.Tier)
	assert.False(t, view.IsOwner)
	assert.False(t, view.Features["ai"])
	assert.False(t, view.Features["unlimited_books"])
}

func TestGetSubscription_NoProfileStored(t *testing.T) {
	ts := setupTestServer(t)

	// A signed-in user without a pushed profile is treated as free tier.
	resp := ts.api.Get("/api/v1/me/subscription", "X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)

	view := decodeEnvelope[SubscriptionView](t, resp).Data
	assert.Equal(t, domain.TierFree, view.Tier)
}

func TestUpdateSubscription_GuestForbidden(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Put("/api/v1/me/subscription", map[string]any{
		"email": "guest@example.com",
		"subscription": map[string]any{
			"tier":                 "reader",
			"status":               "active",
			"cancel_at_period_end": false,
		},
	})
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestUpdateSubscription_Roundtrip(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Put("/api/v1/me/subscription", map[string]any{
		"email":        "reader@example.com",
		"display_name": "A Reader",
		"subscription": map[string]any{
			"tier":                 "reader",
			"status":               "active",
			"cancel_at_period_end": false,
		},
	}, "X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)

	view := decodeEnvelope[SubscriptionView](t, resp).Data
	assert.Equal(t, domain.TierReader, view.Tier)
	assert.True(t, view.Features["unlimited_books"])
	assert.True(t, view.Features["cloud_sync"])
	assert.False(t, view.Features["ai"])

	// The stored profile backs later reads.
	resp = ts.api.Get("/api/v1/me/subscription", "X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)
	view = decodeEnvelope[SubscriptionView](t, resp).Data
	assert.Equal(t, domain.TierReader, view.Tier)
}

func TestUpdateSubscription_CancelledKeepsTier(t *testing.T) {
	ts := setupTestServer(t)

	// Cancelling does not strip access: the billing glue keeps the paid
	// tier on record until the period actually ends, and entitlements
	// follow the tier, not the billing status.
	resp := ts.api.Put("/api/v1/me/subscription", map[string]any{
		"email": "lapsed@example.com",
		"subscription": map[string]any{
			"tier":                 "bookworm",
			"status":               "cancelled",
			"cancel_at_period_end": true,
		},
	}, "X-User-ID: user-1")
	require.Equal(t, http.StatusOK, resp.Code)

	view := decodeEnvelope[SubscriptionView](t, resp).Data
	assert.Equal(t, domain.TierBookworm, view.Tier)
	assert.True(t, view.Features["ai"])
}

func TestUpdateSubscription_OwnerOverride(t *testing.T) {
	ts := setupTestServer(t)

	// The allow-listed email gets the top tier regardless of what the
	// billing glue pushed.
	resp := ts.api.Put("/api/v1/me/subscription", map[string]any{
		"email": "owner@example.com",
		"subscription": map[string]any{
			"tier":                 "free",
			"status":               "active",
			"cancel_at_period_end": false,
		},
	}, "X-User-ID: owner-1")
	require.Equal(t, http.StatusOK, resp.Code)

	view := decodeEnvelope[SubscriptionView](t, resp).Data
	assert.True(t, view.IsOwner)
	assert.Equal(t, domain.TierBookworm, view.Tier)
	assert.True(t, view.Features["ai"])
	assert.True(t, view.Features["family"])
}

func TestUpdateSubscription_InvalidTier(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Put("/api/v1/me/subscription", map[string]any{
		"email": "reader@example.com",
		"subscription": map[string]any{
			"tier":                 "platinum",
			"status":               "active",
			"cancel_at_period_end": false,
		},
	}, "X-User-ID: user-1")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
