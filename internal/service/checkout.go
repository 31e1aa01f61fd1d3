package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rumianagent-hub/parkshare-mvp/internal/models"
	"github.com/rumianagent-hub/parkshare-mvp/internal/pkg/log"
	"github.com/rumianagent-hub/parkshare-mvp/internal/storage"

	"github.com/google/uuid"
)

// CheckoutParams — входные данные чекаута.
type CheckoutParams struct {
	ListingID      uuid.UUID
	DriverID       uuid.UUID
	DriverName     string
	VehiclePlate   string
	PricingModel   models.PricingModel
	StartAt        time.Time
	EndAt          time.Time
	IdempotencyKey string
}

// Quote считает детализацию стоимости для экрана подтверждения чекаута.
// Ставка берётся из листинга, модель и интервал — из запроса.
func (s *Service) Quote(ctx context.Context, listingID uuid.UUID, model models.PricingModel, startAt, endAt time.Time) (models.PriceBreakdown, error) {
	const op = "service.checkout.Quote"

	if err := validateModel(model); err != nil {
		return models.PriceBreakdown{}, fmt.Errorf("%s: %w", op, err)
	}

	listing, err := s.storage.ListingByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.PriceBreakdown{}, fmt.Errorf("%s: %w", op, ErrListingNotFound)
		}

		return models.PriceBreakdown{}, fmt.Errorf("%s: %w", op, err)
	}

	breakdown, err := s.pricer.Calculate(listing.BaseRate, model, startAt, endAt)
	if err != nil {
		return models.PriceBreakdown{}, fmt.Errorf("%s: %w", op, err)
	}

	return breakdown, nil
}

// Checkout проводит чекаут: расчёт цены, (мок-)списание, создание подписки
// и выпуск пропуска. Операция идемпотентна по IdempotencyKey: повтор с тем
// же ключом возвращает уже созданную подписку, не списывая деньги и не
// выпуская второй пропуск.
func (s *Service) Checkout(ctx context.Context, params CheckoutParams) (*models.Subscription, *models.PriceBreakdown, error) {
	const op = "service.checkout.Checkout"

	lg := log.From(ctx)

	if err := validateCheckout(params); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	// Повтор чекаута с тем же ключом — возвращаем существующую подписку.
	existing, err := s.storage.SubscriptionByIdempotencyKey(ctx, params.IdempotencyKey)
	if err == nil {
		lg.Info("checkout_replayed",
			slog.String("op", op),
			slog.String("subscription_id", existing.ID.String()),
		)

		breakdown := breakdownOf(existing)
		return existing, &breakdown, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	listing, err := s.storage.ListingByID(ctx, params.ListingID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrListingNotFound)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	breakdown, err := s.pricer.Calculate(listing.BaseRate, params.PricingModel, params.StartAt, params.EndAt)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.gateway.Charge(ctx, params.DriverID, breakdown.TotalCents, breakdown.Currency, params.IdempotencyKey); err != nil {
		lg.Warn("checkout_payment_declined",
			slog.String("op", op),
			slog.String("listing_id", params.ListingID.String()),
		)

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	sub := &models.Subscription{
		ID:               uuid.New(),
		ListingID:        listing.ID,
		DriverID:         params.DriverID,
		DriverName:       strings.TrimSpace(params.DriverName),
		VehiclePlate:     strings.TrimSpace(params.VehiclePlate),
		Status:           models.SubscriptionActive,
		PricingModel:     params.PricingModel,
		StartAt:          params.StartAt,
		CurrentPeriodEnd: periodEnd(params),
		IdempotencyKey:   params.IdempotencyKey,
		TotalCents:       breakdown.TotalCents,
		Currency:         breakdown.Currency,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	// Пропуск выпускается ровно один раз на подписку; идемпотентность
	// ключа выше гарантирует отсутствие второго выпуска при повторах.
	token, err := s.signer.Issue(sub.ID.String(), sub.DriverID.String())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	sub.PassToken = token

	if err := s.storage.SaveSubscription(ctx, sub); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			// Конкурентный повтор успел первым — отдаём его результат.
			winner, rerr := s.storage.SubscriptionByIdempotencyKey(ctx, params.IdempotencyKey)
			if rerr != nil {
				return nil, nil, fmt.Errorf("%s: %w", op, rerr)
			}

			b := breakdownOf(winner)
			return winner, &b, nil
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("checkout_completed",
		slog.String("op", op),
		slog.String("subscription_id", sub.ID.String()),
		slog.String("listing_id", listing.ID.String()),
		slog.Int64("total_cents", breakdown.TotalCents),
	)

	return sub, &breakdown, nil
}

// SubscriptionByID возвращает подписку (экран «мои подписки»).
func (s *Service) SubscriptionByID(ctx context.Context, id uuid.UUID) (*models.Subscription, error) {
	const op = "service.checkout.SubscriptionByID"

	sub, err := s.storage.SubscriptionByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrSubscriptionNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}

// CancelSubscription отменяет подписку. Ранее выпущенный пропуск при этом
// перестаёт проходить проверку (reason subscription_inactive) — отдельного
// отзыва токена не существует.
func (s *Service) CancelSubscription(ctx context.Context, id uuid.UUID) error {
	const op = "service.checkout.CancelSubscription"

	lg := log.From(ctx)

	if err := s.storage.UpdateSubscriptionStatus(ctx, id, models.SubscriptionCancelled); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrSubscriptionNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if s.scache != nil {
		if err := s.scache.Invalidate(ctx, id); err != nil {
			lg.Warn("subscription_cache_invalidate_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	lg.Info("subscription_cancelled",
		slog.String("op", op),
		slog.String("subscription_id", id.String()),
	)

	return nil
}

// validateCheckout проверяет полноту данных чекаута.
func validateCheckout(params CheckoutParams) error {
	if strings.TrimSpace(params.IdempotencyKey) == "" {
		return ErrMissingIdempotencyKey
	}

	if params.ListingID == uuid.Nil || params.DriverID == uuid.Nil {
		return ErrInvalidCheckout
	}

	if strings.TrimSpace(params.DriverName) == "" || strings.TrimSpace(params.VehiclePlate) == "" {
		return ErrInvalidCheckout
	}

	return validateModel(params.PricingModel)
}

// validateModel отсекает модели вне enum'а до вызова pricing
// (там неизвестная модель — паника, ошибка программиста).
func validateModel(model models.PricingModel) error {
	switch model {
	case models.PricingHourly, models.PricingDaily, models.PricingMonthly:
		return nil
	default:
		return ErrUnknownPricingModel
	}
}

// periodEnd — конец оплаченного периода.
// Месячный тариф — всегда ровно один биллинговый период от старта,
// независимо от запрошенного интервала.
func periodEnd(params CheckoutParams) time.Time {
	if params.PricingModel == models.PricingMonthly {
		return params.StartAt.AddDate(0, 1, 0)
	}

	return params.EndAt
}

// breakdownOf восстанавливает детализацию для ответа на повторный чекаут.
// Промежуточные ступени не хранятся — повтор отдаёт только итог.
func breakdownOf(sub *models.Subscription) models.PriceBreakdown {
	return models.PriceBreakdown{
		TotalCents: sub.TotalCents,
		Currency:   sub.Currency,
	}
}
