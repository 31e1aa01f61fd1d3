package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rumianagent-hub/parkshare-mvp/internal/models"
	"github.com/rumianagent-hub/parkshare-mvp/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const subscriptionColumns = `
        id, listing_id, driver_id, driver_name, vehicle_plate, status,
        pricing_model, start_at, current_period_end, pass_token,
        idempotency_key, total_cents, currency, created_at, updated_at
`

// SaveSubscription создаёт новую подписку вместе с выпущенным пропуском.
// Уникальность idempotency_key гарантирует «не более одной подписки
// (и одного пропуска) на один чекаут» даже при конкурентных повторах.
func (s *Storage) SaveSubscription(ctx context.Context, sub *models.Subscription) error {
	const op = "storage.postgres.SaveSubscription"

	query := `
        INSERT INTO subscriptions(` + subscriptionColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `

	_, err := s.db.Exec(ctx, query,
		sub.ID,
		sub.ListingID,
		sub.DriverID,
		sub.DriverName,
		sub.VehiclePlate,
		string(sub.Status),
		string(sub.PricingModel),
		sub.StartAt,
		sub.CurrentPeriodEnd,
		sub.PassToken,
		sub.IdempotencyKey,
		sub.TotalCents,
		sub.Currency,
		sub.CreatedAt,
		sub.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SubscriptionByID находит подписку по ID.
func (s *Storage) SubscriptionByID(ctx context.Context, id uuid.UUID) (*models.Subscription, error) {
	const op = "storage.postgres.SubscriptionByID"

	query := `
        SELECT ` + subscriptionColumns + `
        FROM subscriptions
        WHERE id = $1
    `

	sub, err := s.scanSubscription(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}

// SubscriptionByIdempotencyKey находит подписку по ключу идемпотентности.
func (s *Storage) SubscriptionByIdempotencyKey(ctx context.Context, key string) (*models.Subscription, error) {
	const op = "storage.postgres.SubscriptionByIdempotencyKey"

	query := `
        SELECT ` + subscriptionColumns + `
        FROM subscriptions
        WHERE idempotency_key = $1
    `

	sub, err := s.scanSubscription(s.db.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sub, nil
}

// UpdateSubscriptionStatus меняет бизнес-статус подписки.
func (s *Storage) UpdateSubscriptionStatus(ctx context.Context, id uuid.UUID, status models.SubscriptionStatus) error {
	const op = "storage.postgres.UpdateSubscriptionStatus"

	query := `
        UPDATE subscriptions
        SET status = $2, updated_at = $3
        WHERE id = $1
    `

	cmdTag, err := s.db.Exec(ctx, query, id, string(status), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ExpireSubscriptions переводит активные подписки с истёкшим периодом
// в статус expired. Пропуска таких подписок перестают проходить проверку
// и без этого перехода (см. service.decidePass), поэтому джоб — чистая
// гигиена данных, а не механизм безопасности.
func (s *Storage) ExpireSubscriptions(ctx context.Context, now time.Time) (int64, error) {
	const op = "storage.postgres.ExpireSubscriptions"

	query := `
        UPDATE subscriptions
        SET status = 'expired', updated_at = $1
        WHERE status = 'active' AND current_period_end <= $1
    `

	cmdTag, err := s.db.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return cmdTag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Storage) scanSubscription(row rowScanner) (*models.Subscription, error) {
	var (
		sub    models.Subscription
		status string
		model  string
	)

	err := row.Scan(
		&sub.ID,
		&sub.ListingID,
		&sub.DriverID,
		&sub.DriverName,
		&sub.VehiclePlate,
		&status,
		&model,
		&sub.StartAt,
		&sub.CurrentPeriodEnd,
		&sub.PassToken,
		&sub.IdempotencyKey,
		&sub.TotalCents,
		&sub.Currency,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	sub.Status = models.SubscriptionStatus(status)
	sub.PricingModel = models.PricingModel(model)

	return &sub, nil
}
