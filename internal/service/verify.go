package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rumianagent-hub/parkshare-mvp/internal/models"
	"github.com/rumianagent-hub/parkshare-mvp/internal/pkg/log"
	"github.com/rumianagent-hub/parkshare-mvp/internal/pkg/redact"
	"github.com/rumianagent-hub/parkshare-mvp/internal/storage"

	"github.com/google/uuid"
)

// VerifyPass проверяет отсканированный пропуск и возвращает терминальное
// решение. Порядок проверок фиксирован и является контрактом:
//
//  1. формат/подпись токена — любой сбой даёт reason invalid_token
//     (дешёвый отказ до какого-либо похода в БД; конкретный вид ошибки
//     не раскрывается, чтобы не служить оракулом для атакующего);
//  2. подписка не найдена         -> not_found;
//  3. статус != active            -> subscription_inactive;
//  4. период истёк                -> expired;
//  5. иначе                       -> valid с данными для экрана проверки.
//
// Ошибка возвращается только при инфраструктурных сбоях (БД недоступна);
// все бизнес-исходы выражены решением.
func (s *Service) VerifyPass(ctx context.Context, token string) (models.PassDecision, error) {
	const op = "service.verify.VerifyPass"

	lg := log.From(ctx)

	claims, err := s.signer.Verify(token)
	if err != nil {
		// Вид ошибки (формат/подпись/payload) — только в логи.
		lg.Warn("pass_token_rejected",
			slog.String("op", op),
			slog.String("token", redact.Token()),
			slog.String("err", err.Error()),
		)

		return models.PassDecision{Valid: false, Reason: models.ReasonInvalidToken}, nil
	}

	subID, err := uuid.Parse(claims.SubscriptionID)
	if err != nil {
		// Подпись верна, но такой идентификатор мы выпустить не могли.
		lg.Warn("pass_claims_unparsable",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return models.PassDecision{Valid: false, Reason: models.ReasonNotFound}, nil
	}

	sub, err := s.subscriptionSnapshot(ctx, subID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.PassDecision{Valid: false, Reason: models.ReasonNotFound}, nil
		}

		return models.PassDecision{}, fmt.Errorf("%s: %w", op, err)
	}

	decision := decidePass(claims, sub, time.Now().UTC())
	if !decision.Valid {
		return decision, nil
	}

	// Детали листинга нужны только для валидного пропуска.
	listing, err := s.storage.ListingByID(ctx, sub.ListingID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return models.PassDecision{}, fmt.Errorf("%s: %w", op, err)
	}
	if listing != nil {
		decision.ListingTitle = listing.Title
		decision.ListingAddress = listing.Address
	}

	lg.Info("pass_verified",
		slog.String("op", op),
		slog.String("subscription_id", sub.ID.String()),
		slog.String("vehicle_plate", redact.Plate(sub.VehiclePlate)),
	)

	return decision, nil
}

// decidePass — чистая таблица решений поверх claims и снапшота подписки.
// Вынесена отдельно, чтобы тестироваться без БД; порядок проверок
// детерминирует коды причин (см. VerifyPass).
func decidePass(claims models.PassClaims, sub *models.Subscription, now time.Time) models.PassDecision {
	if sub.Status != models.SubscriptionActive {
		return models.PassDecision{Valid: false, Reason: models.ReasonSubscriptionInactive}
	}

	if !sub.CurrentPeriodEnd.After(now) {
		return models.PassDecision{Valid: false, Reason: models.ReasonExpired}
	}

	return models.PassDecision{
		Valid:        true,
		DriverName:   sub.DriverName,
		VehiclePlate: sub.VehiclePlate,
		PeriodEnd:    sub.CurrentPeriodEnd,
	}
}

// subscriptionSnapshot читает подписку через кэш (read-through).
// Ошибки кэша не фатальны: логируются и приводят к чтению из БД.
func (s *Service) subscriptionSnapshot(ctx context.Context, id uuid.UUID) (*models.Subscription, error) {
	const op = "service.verify.subscriptionSnapshot"

	lg := log.From(ctx)

	if s.scache != nil {
		sub, ok, err := s.scache.Get(ctx, id)
		if err != nil {
			lg.Warn("subscription_cache_get_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		} else if ok {
			return sub, nil
		}
	}

	sub, err := s.storage.SubscriptionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.scache != nil {
		if err := s.scache.Set(ctx, sub, s.cfg.CacheTTL); err != nil {
			lg.Warn("subscription_cache_set_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	return sub, nil
}
