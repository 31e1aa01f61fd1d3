// service содержит бизнес-логику pass-сервиса: расчёт стоимости и чекаут
// подписки на парковочное место, выпуск пропуска и проверку пропуска
// по таблице решений поверх записи подписки.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Криптографические/структурные ошибки токена никогда не покидают пакет:
//     VerifyPass сводит их к решению с причиной reason_invalid_token,
//     конкретный вид ошибки остаётся только в логах.
//   - Ошибки возвращаются и далее маппятся транспортом на HTTP-статусы
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/rumianagent-hub/parkshare-mvp/internal/cache"
	"github.com/rumianagent-hub/parkshare-mvp/internal/config"
	"github.com/rumianagent-hub/parkshare-mvp/internal/passtoken"
	"github.com/rumianagent-hub/parkshare-mvp/internal/pricing"
	"github.com/rumianagent-hub/parkshare-mvp/internal/storage"
)

var (
	// ErrListingNotFound — листинг не существует.
	// Транспорт: HTTP 404.
	ErrListingNotFound = errors.New("listing not found")

	// ErrSubscriptionNotFound — подписка не существует.
	// Транспорт: HTTP 404.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrUnknownPricingModel — клиент запросил модель тарификации вне
	// enum'а hourly/daily/monthly. Бизнес-ошибка входа (в отличие от
	// паники в pricing, которая ловит ошибку программиста).
	// Транспорт: HTTP 400.
	ErrUnknownPricingModel = errors.New("unknown pricing model")

	// ErrMissingIdempotencyKey — чекаут без ключа идемпотентности.
	// Ключ обязателен: именно он обеспечивает «не более одного пропуска
	// на подписку». Транспорт: HTTP 400.
	ErrMissingIdempotencyKey = errors.New("missing idempotency key")

	// ErrInvalidCheckout — неполные данные чекаута (пустой водитель,
	// номерной знак и т.п.). Транспорт: HTTP 400.
	ErrInvalidCheckout = errors.New("invalid checkout request")

	// ErrPaymentDeclined — платёжный шлюз отклонил списание.
	// Транспорт: HTTP 402.
	ErrPaymentDeclined = errors.New("payment declined")
)

// Service описывает бизнес-логику pass-сервиса.
type Service struct {
	storage storage.Storage
	signer  *passtoken.Signer
	pricer  *pricing.Engine
	gateway PaymentGateway
	cfg     config.PassConfig
	scache  cache.SubscriptionCache // может быть nil, если кэш не сконфигурирован
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, signer *passtoken.Signer, pricer *pricing.Engine, gateway PaymentGateway, cfg config.PassConfig) *Service {
	return &Service{
		storage: storage,
		signer:  signer,
		pricer:  pricer,
		gateway: gateway,
		cfg:     cfg,
	}
}

// SetSubscriptionCache устанавливает кэш снапшотов подписок (опционально).
func (s *Service) SetSubscriptionCache(c cache.SubscriptionCache) {
	s.scache = c
}
