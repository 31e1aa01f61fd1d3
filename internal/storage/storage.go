package storage

import (
	"context"
	"errors"
	"time"

	"github.com/rumianagent-hub/parkshare-mvp/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotFound — запись не найдена (листинг/подписка).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (ключ идемпотентности).
	ErrAlreadyExists = errors.New("already exists")
)

// ListingStorage выполняет операции над листингами парковочных мест.
type ListingStorage interface {
	// SaveListing создаёт новый листинг.
	SaveListing(ctx context.Context, listing *models.Listing) error
	// ListingByID находит листинг по ID.
	ListingByID(ctx context.Context, id uuid.UUID) (*models.Listing, error)
}

// SubscriptionStorage выполняет операции над подписками.
type SubscriptionStorage interface {
	// SaveSubscription создаёт новую подписку вместе с её пропуском.
	SaveSubscription(ctx context.Context, sub *models.Subscription) error
	// SubscriptionByID находит подписку по ID.
	SubscriptionByID(ctx context.Context, id uuid.UUID) (*models.Subscription, error)
	// SubscriptionByIdempotencyKey находит подписку по ключу идемпотентности чекаута.
	SubscriptionByIdempotencyKey(ctx context.Context, key string) (*models.Subscription, error)
	// UpdateSubscriptionStatus меняет бизнес-статус подписки.
	UpdateSubscriptionStatus(ctx context.Context, id uuid.UUID, status models.SubscriptionStatus) error
	// ExpireSubscriptions переводит активные подписки с истёкшим периодом
	// в статус expired; возвращает число затронутых записей.
	ExpireSubscriptions(ctx context.Context, now time.Time) (int64, error)
}

// Storage задаёт контракт работы с БД.
type Storage interface {
	ListingStorage
	SubscriptionStorage
	Close()
}
