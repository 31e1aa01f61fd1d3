package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rumianagent-hub/parkshare-mvp/internal/config"
	"github.com/rumianagent-hub/parkshare-mvp/internal/models"
	"github.com/rumianagent-hub/parkshare-mvp/internal/passtoken"
	"github.com/rumianagent-hub/parkshare-mvp/internal/pricing"
	"github.com/rumianagent-hub/parkshare-mvp/internal/service"
	"github.com/rumianagent-hub/parkshare-mvp/internal/storage"
	"github.com/rumianagent-hub/parkshare-mvp/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestServer собирает роутер поверх реального сервисного слоя с мок-хранилищем.
func newTestServer(t *testing.T) (*chi.Mux, *mocks.MockStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSt := mocks.NewMockStorage(ctrl)

	signer, err := passtoken.New("transport-test-secret")
	require.NoError(t, err)

	svc := service.New(
		mockSt,
		signer,
		pricing.New(0.12, 0.13, "CAD"),
		&service.MockGateway{},
		config.PassConfig{Secret: "transport-test-secret", CacheTTL: time.Minute},
	)

	router := chi.NewRouter()
	NewServer(svc).Routes(router)

	return router, mockSt
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func testListing() *models.Listing {
	now := time.Now().UTC()
	return &models.Listing{
		ID:           uuid.New(),
		HostID:       uuid.New(),
		Title:        "Underground spot #12",
		Address:      "290 Bremner Blvd, Toronto",
		PricingModel: models.PricingMonthly,
		BaseRate:     100,
		Currency:     "CAD",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestHandleQuote_OK(t *testing.T) {
	router, mockSt := newTestServer(t)

	listing := testListing()
	mockSt.EXPECT().ListingByID(gomock.Any(), listing.ID).Return(listing, nil)

	start := time.Now().UTC()
	rec := doJSON(t, router, http.MethodPost, "/v1/quotes", map[string]any{
		"listing_id":    listing.ID.String(),
		"pricing_model": "monthly",
		"start_at":      start,
		"end_at":        start.Add(time.Hour),
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.PriceBreakdown
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, int64(10000), got.SubtotalCents)
	require.Equal(t, int64(12656), got.TotalCents)
	require.Equal(t, "CAD", got.Currency)
}

func TestHandleQuote_BadRequests(t *testing.T) {
	router, mockSt := newTestServer(t)

	listing := testListing()

	tests := []struct {
		name string
		body map[string]any
		prep func()
	}{
		{
			name: "malformed listing id",
			body: map[string]any{"listing_id": "not-a-uuid", "pricing_model": "monthly"},
		},
		{
			name: "unknown pricing model",
			body: map[string]any{"listing_id": listing.ID.String(), "pricing_model": "weekly"},
		},
		{
			name: "invalid interval",
			body: map[string]any{
				"listing_id":    listing.ID.String(),
				"pricing_model": "hourly",
				"start_at":      time.Now().UTC(),
				"end_at":        time.Now().UTC().Add(-time.Hour),
			},
			prep: func() {
				mockSt.EXPECT().ListingByID(gomock.Any(), listing.ID).Return(listing, nil)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.prep != nil {
				tc.prep()
			}

			rec := doJSON(t, router, http.MethodPost, "/v1/quotes", tc.body, nil)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleQuote_ListingNotFound(t *testing.T) {
	router, mockSt := newTestServer(t)

	id := uuid.New()
	mockSt.EXPECT().ListingByID(gomock.Any(), id).Return(nil, fmt.Errorf("wrapped: %w", storage.ErrNotFound))

	rec := doJSON(t, router, http.MethodPost, "/v1/quotes", map[string]any{
		"listing_id":    id.String(),
		"pricing_model": "monthly",
		"start_at":      time.Now().UTC(),
		"end_at":        time.Now().UTC().Add(time.Hour),
	}, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleCheckout_OK(t *testing.T) {
	router, mockSt := newTestServer(t)

	listing := testListing()
	start := time.Now().UTC().Truncate(time.Second)

	gomock.InOrder(
		mockSt.EXPECT().
			SubscriptionByIdempotencyKey(gomock.Any(), "idem-1").
			Return(nil, fmt.Errorf("wrapped: %w", storage.ErrNotFound)),
		mockSt.EXPECT().ListingByID(gomock.Any(), listing.ID).Return(listing, nil),
		mockSt.EXPECT().SaveSubscription(gomock.Any(), gomock.Any()).Return(nil),
	)

	rec := doJSON(t, router, http.MethodPost, "/v1/checkout", map[string]any{
		"listing_id":    listing.ID.String(),
		"driver_id":     uuid.NewString(),
		"driver_name":   "Alex Morgan",
		"vehicle_plate": "CAPK 318",
		"pricing_model": "monthly",
		"start_at":      start,
		"end_at":        start.Add(24 * time.Hour),
	}, map[string]string{"Idempotency-Key": "idem-1"})

	require.Equal(t, http.StatusCreated, rec.Code)

	var got checkoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "active", got.Subscription.Status)
	require.Equal(t, int64(12656), got.Price.TotalCents)
	require.NotEmpty(t, got.Subscription.PassToken)

	// Выпущенный пропуск сразу пригоден для verify-пайплайна.
	claims := verifyIssuedToken(t, got.Subscription.PassToken)
	require.Equal(t, got.Subscription.ID, claims.SubscriptionID)
}

func TestHandleCheckout_MissingIdempotencyKey(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/checkout", map[string]any{
		"listing_id":    uuid.NewString(),
		"driver_id":     uuid.NewString(),
		"driver_name":   "Alex Morgan",
		"vehicle_plate": "CAPK 318",
		"pricing_model": "monthly",
		"start_at":      time.Now().UTC(),
		"end_at":        time.Now().UTC().Add(time.Hour),
	}, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Contains(t, got.Error, "idempotency")
}

func TestHandleVerifyPass_InvalidToken_Is200(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/passes/verify", map[string]any{
		"token": "garbage",
	}, nil)

	// Бизнес-отказ — не HTTP-ошибка.
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.PassDecision
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.False(t, got.Valid)
	require.Equal(t, models.ReasonInvalidToken, got.Reason)
}

func TestHandleVerifyPass_Valid(t *testing.T) {
	router, mockSt := newTestServer(t)

	now := time.Now().UTC()
	listing := testListing()
	sub := &models.Subscription{
		ID:               uuid.New(),
		ListingID:        listing.ID,
		DriverID:         uuid.New(),
		DriverName:       "Alex Morgan",
		VehiclePlate:     "CAPK 318",
		Status:           models.SubscriptionActive,
		PricingModel:     models.PricingMonthly,
		StartAt:          now.Add(-time.Hour),
		CurrentPeriodEnd: now.Add(29 * 24 * time.Hour),
	}

	token := issueToken(t, sub)

	mockSt.EXPECT().SubscriptionByID(gomock.Any(), sub.ID).Return(sub, nil)
	mockSt.EXPECT().ListingByID(gomock.Any(), sub.ListingID).Return(listing, nil)

	rec := doJSON(t, router, http.MethodPost, "/v1/passes/verify", map[string]any{
		"token": token,
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.PassDecision
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Valid)
	require.Equal(t, "Alex Morgan", got.DriverName)
	require.Equal(t, listing.Title, got.ListingTitle)
}

func TestHandleSubscriptionByID(t *testing.T) {
	router, mockSt := newTestServer(t)

	now := time.Now().UTC()
	sub := &models.Subscription{
		ID:               uuid.New(),
		ListingID:        uuid.New(),
		DriverID:         uuid.New(),
		DriverName:       "Alex Morgan",
		VehiclePlate:     "CAPK 318",
		Status:           models.SubscriptionActive,
		PricingModel:     models.PricingMonthly,
		StartAt:          now,
		CurrentPeriodEnd: now.AddDate(0, 1, 0),
		IdempotencyKey:   "idem-hidden",
		TotalCents:       12656,
		Currency:         "CAD",
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	mockSt.EXPECT().SubscriptionByID(gomock.Any(), sub.ID).Return(sub, nil)

	rec := doJSON(t, router, http.MethodGet, "/v1/subscriptions/"+sub.ID.String(), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got subscriptionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, sub.ID.String(), got.ID)
	require.Equal(t, int64(12656), got.TotalCents)

	// Ключ идемпотентности наружу не утекает.
	require.NotContains(t, rec.Body.String(), "idem-hidden")
}

func TestHandleSubscriptionByID_NotFound(t *testing.T) {
	router, mockSt := newTestServer(t)

	id := uuid.New()
	mockSt.EXPECT().SubscriptionByID(gomock.Any(), id).Return(nil, fmt.Errorf("wrapped: %w", storage.ErrNotFound))

	rec := doJSON(t, router, http.MethodGet, "/v1/subscriptions/"+id.String(), nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleSubscriptionByID_BadID(t *testing.T) {
	router, _ := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/subscriptions/not-a-uuid", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCancelSubscription(t *testing.T) {
	router, mockSt := newTestServer(t)

	id := uuid.New()
	mockSt.EXPECT().
		UpdateSubscriptionStatus(gomock.Any(), id, models.SubscriptionCancelled).
		Return(nil)

	rec := doJSON(t, router, http.MethodPost, "/v1/subscriptions/"+id.String()+"/cancel", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"ok":true`)
}

func TestHandleCancelSubscription_NotFound(t *testing.T) {
	router, mockSt := newTestServer(t)

	id := uuid.New()
	mockSt.EXPECT().
		UpdateSubscriptionStatus(gomock.Any(), id, models.SubscriptionCancelled).
		Return(fmt.Errorf("wrapped: %w", storage.ErrNotFound))

	rec := doJSON(t, router, http.MethodPost, "/v1/subscriptions/"+id.String()+"/cancel", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

// issueToken выпускает пропуск тем же секретом, что использует тестовый сервер.
func issueToken(t *testing.T, sub *models.Subscription) string {
	t.Helper()

	signer, err := passtoken.New("transport-test-secret")
	require.NoError(t, err)

	token, err := signer.Issue(sub.ID.String(), sub.DriverID.String())
	require.NoError(t, err)

	return token
}

// verifyIssuedToken разбирает пропуск тем же секретом, что и сервер.
func verifyIssuedToken(t *testing.T, token string) models.PassClaims {
	t.Helper()

	signer, err := passtoken.New("transport-test-secret")
	require.NoError(t, err)

	claims, err := signer.Verify(token)
	require.NoError(t, err)

	return claims
}
