// transport/http содержит реализацию HTTP-эндпоинтов pass-сервиса.
// Здесь выполняется только маппинг данных и ошибок доменного слоя (service) в HTTP.
// Вся валидация и бизнес-логика находятся в пакете service.
//
// Принципы:
//   - Контекст запроса прокидывается в сервис без потерь;
//   - Ошибки сервиса явно транслируются в HTTP-статусы:
//   - ErrUnknownPricingModel/ErrMissingIdempotencyKey/ErrInvalidCheckout,
//     pricing.ErrInvalidInterval -> 400 Bad Request;
//   - ErrListingNotFound/ErrSubscriptionNotFound -> 404 Not Found;
//   - ErrPaymentDeclined -> 402 Payment Required;
//   - иные ошибки -> 500 c единым безопасным сообщением;
//   - VerifyPass при невалидном/просроченном пропуске НЕ возвращает
//     HTTP-ошибку, а отдаёт 200 с {valid:false, reason} (контракт эндпоинта).
//
// Безопасность:
//   - Для 500 наружу не утекают детали внутренних ошибок; подробности должны
//     попадать в логи через middleware на уровне сервера.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rumianagent-hub/parkshare-mvp/internal/models"
	"github.com/rumianagent-hub/parkshare-mvp/internal/pricing"
	"github.com/rumianagent-hub/parkshare-mvp/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Server — HTTP-сервер pass-сервиса поверх сервисного слоя.
type Server struct {
	service *service.Service
}

// NewServer создаёт HTTP-сервер поверх сервисного слоя.
func NewServer(service *service.Service) *Server {
	return &Server{service: service}
}

// Routes регистрирует эндпоинты API v1 на роутере.
func (s *Server) Routes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/quotes", s.handleQuote)
		r.Post("/checkout", s.handleCheckout)
		r.Post("/passes/verify", s.handleVerifyPass)
		r.Get("/subscriptions/{id}", s.handleSubscriptionByID)
		r.Post("/subscriptions/{id}/cancel", s.handleCancelSubscription)
	})
}

type quoteRequest struct {
	ListingID    string    `json:"listing_id"`
	PricingModel string    `json:"pricing_model"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
}

type checkoutRequest struct {
	ListingID    string    `json:"listing_id"`
	DriverID     string    `json:"driver_id"`
	DriverName   string    `json:"driver_name"`
	VehiclePlate string    `json:"vehicle_plate"`
	PricingModel string    `json:"pricing_model"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

// subscriptionResponse — представление подписки наружу.
// IdempotencyKey наружу не отдаётся.
type subscriptionResponse struct {
	ID               string    `json:"id"`
	ListingID        string    `json:"listing_id"`
	DriverID         string    `json:"driver_id"`
	DriverName       string    `json:"driver_name"`
	VehiclePlate     string    `json:"vehicle_plate"`
	Status           string    `json:"status"`
	PricingModel     string    `json:"pricing_model"`
	StartAt          time.Time `json:"start_at"`
	CurrentPeriodEnd time.Time `json:"current_period_end"`
	PassToken        string    `json:"pass_token"`
	TotalCents       int64     `json:"total_cents"`
	Currency         string    `json:"currency"`
	CreatedAt        time.Time `json:"created_at"`
}

type checkoutResponse struct {
	Subscription subscriptionResponse  `json:"subscription"`
	Price        models.PriceBreakdown `json:"price"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleQuote считает детализацию стоимости без создания подписки.
// Маппинг ошибок:
//   - ErrUnknownPricingModel/ErrInvalidInterval -> 400;
//   - ErrListingNotFound -> 404;
//   - прочее -> 500 (без раскрытия деталей).
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid listing_id")
		return
	}

	breakdown, err := s.service.Quote(r.Context(), listingID, models.PricingModel(req.PricingModel), req.StartAt, req.EndAt)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, breakdown)
}

// handleCheckout проводит чекаут и возвращает подписку с выпущенным пропуском.
// Ключ идемпотентности передаётся заголовком Idempotency-Key; повтор с тем же
// ключом возвращает уже созданную подписку без второго списания.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	listingID, err := uuid.Parse(req.ListingID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid listing_id")
		return
	}

	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid driver_id")
		return
	}

	params := service.CheckoutParams{
		ListingID:      listingID,
		DriverID:       driverID,
		DriverName:     req.DriverName,
		VehiclePlate:   req.VehiclePlate,
		PricingModel:   models.PricingModel(req.PricingModel),
		StartAt:        req.StartAt,
		EndAt:          req.EndAt,
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
	}

	sub, breakdown, err := s.service.Checkout(r.Context(), params)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	// Повтор с тем же Idempotency-Key отдаёт ту же подписку и тот же 201:
	// для клиента результат неотличим от первого успешного чекаута.
	respondJSON(w, http.StatusCreated, checkoutResponse{
		Subscription: toSubscriptionResponse(sub),
		Price:        *breakdown,
	})
}

// handleVerifyPass проверяет пропуск.
// Контракт: бизнес-отказы (невалидный токен, неактивная или просроченная
// подписка) — это 200 с {valid:false, reason}; 5xx остаётся за
// инфраструктурными сбоями.
func (s *Server) handleVerifyPass(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	decision, err := s.service.VerifyPass(r.Context(), req.Token)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, decision)
}

// handleSubscriptionByID возвращает подписку по идентификатору.
func (s *Server) handleSubscriptionByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid subscription id")
		return
	}

	sub, err := s.service.SubscriptionByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toSubscriptionResponse(sub))
}

// handleCancelSubscription отменяет подписку; выпущенный пропуск после
// этого перестаёт проходить проверку.
func (s *Server) handleCancelSubscription(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid subscription id")
		return
	}

	if err := s.service.CancelSubscription(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func toSubscriptionResponse(sub *models.Subscription) subscriptionResponse {
	return subscriptionResponse{
		ID:               sub.ID.String(),
		ListingID:        sub.ListingID.String(),
		DriverID:         sub.DriverID.String(),
		DriverName:       sub.DriverName,
		VehiclePlate:     sub.VehiclePlate,
		Status:           string(sub.Status),
		PricingModel:     string(sub.PricingModel),
		StartAt:          sub.StartAt,
		CurrentPeriodEnd: sub.CurrentPeriodEnd,
		PassToken:        sub.PassToken,
		TotalCents:       sub.TotalCents,
		Currency:         sub.Currency,
		CreatedAt:        sub.CreatedAt,
	}
}

// respondServiceError — единая трансляция ошибок сервисного слоя в HTTP.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownPricingModel),
		errors.Is(err, service.ErrMissingIdempotencyKey),
		errors.Is(err, service.ErrInvalidCheckout),
		errors.Is(err, pricing.ErrInvalidInterval):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrListingNotFound),
		errors.Is(err, service.ErrSubscriptionNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPaymentDeclined):
		respondError(w, http.StatusPaymentRequired, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}
