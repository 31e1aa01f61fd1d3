package models

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus — бизнес-статус подписки на парковочное место.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionPaused    SubscriptionStatus = "paused"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

// PricingModel — единица тарификации листинга.
type PricingModel string

const (
	PricingHourly  PricingModel = "hourly"
	PricingDaily   PricingModel = "daily"
	PricingMonthly PricingModel = "monthly"
)

// Subscription — подписка водителя на парковочное место.
//
// Описание:
//   - PassToken — подписанный пропуск, выпущенный один раз при чекауте
//     (инвариант «один токен на подписку» обеспечивается ключом
//     идемпотентности, а не самой моделью);
//   - CurrentPeriodEnd — конец оплаченного периода (UTC); после него
//     пропуск считается просроченным независимо от статуса;
//   - DriverName — денормализованное отображаемое имя для экрана проверки.
type Subscription struct {
	ID               uuid.UUID
	ListingID        uuid.UUID
	DriverID         uuid.UUID
	DriverName       string
	VehiclePlate     string
	Status           SubscriptionStatus
	PricingModel     PricingModel
	StartAt          time.Time
	CurrentPeriodEnd time.Time
	PassToken        string
	IdempotencyKey   string
	TotalCents       int64
	Currency         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
