package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/rumianagent-hub/parkshare-mvp/internal/models"
	"github.com/rumianagent-hub/parkshare-mvp/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// seedSubscription — создаёт подписку на указанный листинг.
func seedSubscription(t *testing.T, st *Storage, listingID uuid.UUID, key string, periodEnd time.Time) *models.Subscription {
	t.Helper()
	now := time.Now().UTC()
	sub := &models.Subscription{
		ID:               uuid.New(),
		ListingID:        listingID,
		DriverID:         uuid.New(),
		DriverName:       "Alex Morgan",
		VehiclePlate:     "CAPK 318",
		Status:           models.SubscriptionActive,
		PricingModel:     models.PricingMonthly,
		StartAt:          now,
		CurrentPeriodEnd: periodEnd,
		PassToken:        "payload.signature",
		IdempotencyKey:   key,
		TotalCents:       12656,
		Currency:         "CAD",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	require.NoError(t, st.SaveSubscription(context.Background(), sub))
	return sub
}

func TestIntegration_SaveSubscription_And_ByID_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	l := seedListing(t, st, models.PricingMonthly, 250)
	periodEnd := time.Now().UTC().Add(30 * 24 * time.Hour)
	sub := seedSubscription(t, st, l.ID, "key-1", periodEnd)

	got, err := st.SubscriptionByID(context.Background(), sub.ID)
	require.NoError(t, err)
	require.Equal(t, sub.ID, got.ID)
	require.Equal(t, models.SubscriptionActive, got.Status)
	require.Equal(t, models.PricingMonthly, got.PricingModel)
	require.Equal(t, "payload.signature", got.PassToken)
	require.Equal(t, int64(12656), got.TotalCents)
	require.WithinDuration(t, periodEnd, got.CurrentPeriodEnd, time.Second)
}

func TestIntegration_SaveSubscription_DuplicateIdempotencyKey(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	l := seedListing(t, st, models.PricingMonthly, 250)
	seedSubscription(t, st, l.ID, "same-key", time.Now().UTC().Add(time.Hour))

	dup := seedListingSubscription(l.ID)
	err := st.SaveSubscription(context.Background(), dup)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

// seedListingSubscription — подписка с уже занятым ключом идемпотентности.
func seedListingSubscription(listingID uuid.UUID) *models.Subscription {
	now := time.Now().UTC()
	return &models.Subscription{
		ID:               uuid.New(),
		ListingID:        listingID,
		DriverID:         uuid.New(),
		DriverName:       "Sam Lee",
		VehiclePlate:     "BKRD 204",
		Status:           models.SubscriptionActive,
		PricingModel:     models.PricingMonthly,
		StartAt:          now,
		CurrentPeriodEnd: now.Add(time.Hour),
		PassToken:        "p.s",
		IdempotencyKey:   "same-key",
		TotalCents:       100,
		Currency:         "CAD",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestIntegration_SubscriptionByIdempotencyKey(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	l := seedListing(t, st, models.PricingMonthly, 250)
	sub := seedSubscription(t, st, l.ID, "checkout-42", time.Now().UTC().Add(time.Hour))

	got, err := st.SubscriptionByIdempotencyKey(context.Background(), "checkout-42")
	require.NoError(t, err)
	require.Equal(t, sub.ID, got.ID)

	_, err = st.SubscriptionByIdempotencyKey(context.Background(), "unknown-key")
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_UpdateSubscriptionStatus(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	l := seedListing(t, st, models.PricingMonthly, 250)
	sub := seedSubscription(t, st, l.ID, "key-status", time.Now().UTC().Add(time.Hour))

	require.NoError(t, st.UpdateSubscriptionStatus(context.Background(), sub.ID, models.SubscriptionCancelled))

	got, err := st.SubscriptionByID(context.Background(), sub.ID)
	require.NoError(t, err)
	require.Equal(t, models.SubscriptionCancelled, got.Status)

	err = st.UpdateSubscriptionStatus(context.Background(), uuid.New(), models.SubscriptionCancelled)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_ExpireSubscriptions(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	l := seedListing(t, st, models.PricingMonthly, 250)
	now := time.Now().UTC()

	past := seedSubscription(t, st, l.ID, "key-past", now.Add(-time.Minute))
	future := seedSubscription(t, st, l.ID, "key-future", now.Add(time.Hour))

	n, err := st.ExpireSubscriptions(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	gotPast, err := st.SubscriptionByID(context.Background(), past.ID)
	require.NoError(t, err)
	require.Equal(t, models.SubscriptionExpired, gotPast.Status)

	gotFuture, err := st.SubscriptionByID(context.Background(), future.ID)
	require.NoError(t, err)
	require.Equal(t, models.SubscriptionActive, gotFuture.Status)
}
