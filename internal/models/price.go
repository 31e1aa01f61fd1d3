package models

// PriceBreakdown — детализация стоимости бронирования в целых центах.
//
// Инвариант: TotalCents == SubtotalCents + ServiceFeeCents + TaxCents,
// каждая ступень округляется независимо (см. pricing.Engine).
type PriceBreakdown struct {
	SubtotalCents   int64  `json:"subtotal_cents"`
	ServiceFeeCents int64  `json:"service_fee_cents"`
	TaxCents        int64  `json:"tax_cents"`
	TotalCents      int64  `json:"total_cents"`
	Currency        string `json:"currency"`
}
