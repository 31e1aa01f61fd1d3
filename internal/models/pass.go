package models

import "time"

// PassClaims — полезная нагрузка пропуска, закодированная в токене.
//
// Порядок и имена полей фиксированы: подпись считается по каноничному
// JSON-представлению, поэтому менять теги нельзя без ломки всех ранее
// выпущенных пропусков.
type PassClaims struct {
	// SubscriptionID — идентификатор подписки, которую авторизует пропуск.
	SubscriptionID string `json:"sid"`
	// SubjectID — идентификатор водителя-предъявителя.
	SubjectID string `json:"sub"`
	// IssuedAtMS — момент выпуска, миллисекунды Unix-эпохи.
	IssuedAtMS int64 `json:"iat"`
}

// IssuedAt возвращает момент выпуска как time.Time (UTC).
func (c PassClaims) IssuedAt() time.Time {
	return time.UnixMilli(c.IssuedAtMS).UTC()
}

// PassReason — код причины отказа при проверке пропуска.
//
// invalid_token скрывает конкретный вид криптографической/структурной
// ошибки; остальные причины — бизнес-статусы, их раскрывать безопасно.
type PassReason string

const (
	ReasonInvalidToken         PassReason = "invalid_token"
	ReasonNotFound             PassReason = "not_found"
	ReasonSubscriptionInactive PassReason = "subscription_inactive"
	ReasonExpired              PassReason = "expired"
)

// PassDecision — результат проверки пропуска (терминальное решение).
type PassDecision struct {
	Valid  bool       `json:"valid"`
	Reason PassReason `json:"reason,omitempty"`

	// Поля ниже заполняются только при Valid == true.
	DriverName     string    `json:"driver_name,omitempty"`
	ListingTitle   string    `json:"listing_title,omitempty"`
	ListingAddress string    `json:"listing_address,omitempty"`
	VehiclePlate   string    `json:"vehicle_plate,omitempty"`
	PeriodEnd      time.Time `json:"period_end"`
}
