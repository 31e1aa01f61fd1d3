// pricing вычисляет детерминированную детализацию стоимости бронирования
// (subtotal, комиссия сервиса, налог, итог) в целых центах.
//
// Все ставки и политика округления — преднамеренные бизнес-правила:
//   - неполный день при дневном тарифе округляется ВВЕРХ до целого дня;
//   - округление каскадное: комиссия считается от уже округлённого
//     subtotal, налог — от суммы округлённых subtotal и комиссии;
//     итог не пересчитывается из неокруглённых промежуточных значений.
//
// Менять эти правила нельзя — изменится реальная сумма списания.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rumianagent-hub/parkshare-mvp/internal/models"
)

var (
	// ErrInvalidInterval — endAt <= startAt. Ошибка входных данных,
	// фатальная для запроса; ретраи бессмысленны.
	ErrInvalidInterval = errors.New("invalid booking interval")

	// ErrInvalidRate — отрицательная базовая ставка.
	ErrInvalidRate = errors.New("invalid base rate")
)

// Engine — калькулятор цен. Ставки фиксируются при создании и далее
// неизменяемы, поэтому Engine безопасен для конкурентного использования.
type Engine struct {
	serviceFeeRate float64
	taxRate        float64
	currency       string
}

// New создаёт Engine с заданными ставками комиссии/налога и валютой.
func New(serviceFeeRate, taxRate float64, currency string) *Engine {
	return &Engine{
		serviceFeeRate: serviceFeeRate,
		taxRate:        taxRate,
		currency:       currency,
	}
}

// Calculate считает детализацию стоимости интервала [startAt, endAt)
// по ставке baseRate (в единицах валюты) и модели тарификации.
//
// Чистая функция: без I/O и скрытого состояния, одинаковый вход всегда
// даёт одинаковый результат. Неизвестная модель — ошибка программиста,
// а не бизнес-ошибка: паника.
func (e *Engine) Calculate(baseRate float64, model models.PricingModel, startAt, endAt time.Time) (models.PriceBreakdown, error) {
	const op = "pricing.Calculate"

	if baseRate < 0 {
		return models.PriceBreakdown{}, fmt.Errorf("%s: %w", op, ErrInvalidRate)
	}

	if !endAt.After(startAt) {
		return models.PriceBreakdown{}, fmt.Errorf("%s: %w", op, ErrInvalidInterval)
	}

	hours := endAt.Sub(startAt).Hours()

	var subtotal int64
	switch model {
	case models.PricingHourly:
		// Неполные часы тарифицируются дробно.
		subtotal = roundCents(baseRate * hours)
	case models.PricingDaily:
		// Неполный день округляется вверх до следующего целого дня.
		days := math.Ceil(hours / 24)
		subtotal = roundCents(baseRate * days)
	case models.PricingMonthly:
		// Месячный тариф — фиксированная плата за биллинговый период,
		// длина интервала игнорируется.
		subtotal = roundCents(baseRate)
	default:
		panic(fmt.Sprintf("%s: unknown pricing model %q", op, model))
	}

	fee := round(float64(subtotal) * e.serviceFeeRate)
	tax := round(float64(subtotal+fee) * e.taxRate)

	return models.PriceBreakdown{
		SubtotalCents:   subtotal,
		ServiceFeeCents: fee,
		TaxCents:        tax,
		TotalCents:      subtotal + fee + tax,
		Currency:        e.currency,
	}, nil
}

// roundCents переводит сумму в валюте в целые центы с округлением
// до ближайшего цента.
func roundCents(amount float64) int64 {
	return round(amount * 100)
}

// round — округление half-up; для неотрицательных значений math.Round
// ведёт себя именно так.
func round(v float64) int64 {
	return int64(math.Round(v))
}
