package models

import (
	"time"

	"github.com/google/uuid"
)

// Listing — объявление хоста о сдаче парковочного места.
type Listing struct {
	ID           uuid.UUID
	HostID       uuid.UUID
	Title        string
	Address      string
	PricingModel PricingModel
	// BaseRate — ставка в единицах валюты за единицу тарификации
	// (час/день/месяц в зависимости от PricingModel).
	BaseRate  float64
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
