package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/rumianagent-hub/parkshare-mvp/internal/models"
	"github.com/rumianagent-hub/parkshare-mvp/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SaveListing создаёт новый листинг в БД.
func (s *Storage) SaveListing(ctx context.Context, listing *models.Listing) error {
	const op = "storage.postgres.SaveListing"

	query := `
        INSERT INTO listings(id, host_id, title, address, pricing_model, base_rate, currency, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `

	_, err := s.db.Exec(ctx, query,
		listing.ID,
		listing.HostID,
		listing.Title,
		listing.Address,
		string(listing.PricingModel),
		listing.BaseRate,
		listing.Currency,
		listing.CreatedAt,
		listing.UpdatedAt,
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

// ListingByID находит листинг по ID.
func (s *Storage) ListingByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	const op = "storage.postgres.ListingByID"

	query := `
        SELECT id, host_id, title, address, pricing_model, base_rate, currency, created_at, updated_at
        FROM listings
        WHERE id = $1
    `

	var (
		listing models.Listing
		model   string
	)
	err := s.db.QueryRow(ctx, query, id).Scan(
		&listing.ID,
		&listing.HostID,
		&listing.Title,
		&listing.Address,
		&model,
		&listing.BaseRate,
		&listing.Currency,
		&listing.CreatedAt,
		&listing.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	listing.PricingModel = models.PricingModel(model)

	return &listing, nil
}
