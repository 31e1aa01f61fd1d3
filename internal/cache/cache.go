package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rumianagent-hub/parkshare-mvp/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SubscriptionCache — минимальный контракт кэша снапшотов подписок.
//
// Кэш read-through: проверка пропуска читает снапшот отсюда и при
// промахе/ошибке падает обратно в хранилище. Смена статуса обязана
// инвалидировать ключ, иначе отозванная подписка будет проходить
// проверку до истечения TTL.
type SubscriptionCache interface {
	// Get возвращает снапшот и признак его наличия в кэше.
	Get(ctx context.Context, id uuid.UUID) (*models.Subscription, bool, error)
	// Set сохраняет снапшот с TTL.
	Set(ctx context.Context, sub *models.Subscription, ttl time.Duration) error
	// Invalidate удаляет снапшот (после смены статуса).
	Invalidate(ctx context.Context, id uuid.UUID) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "pass:sub:".
func NewRedisCache(ctx context.Context, redisURL, prefix string) (SubscriptionCache, error) {
	if prefix == "" {
		prefix = "pass:sub:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(id uuid.UUID) string { return c.prefix + id.String() }

func (c *redisCache) Get(ctx context.Context, id uuid.UUID) (*models.Subscription, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}

		return nil, false, err
	}

	var sub models.Subscription
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, false, err
	}

	return &sub, true, nil
}

func (c *redisCache) Set(ctx context.Context, sub *models.Subscription, ttl time.Duration) error {
	raw, err := json.Marshal(sub)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, c.key(sub.ID), raw, ttl).Err()
}

func (c *redisCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return c.rdb.Del(ctx, c.key(id)).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
