package service

import (
	"context"
	"fmt"

	"github.com/rumianagent-hub/parkshare-mvp/internal/pkg/log"

	"github.com/google/uuid"
	"log/slog"
)

// PaymentGateway — порт платёжного шлюза. Реальная интеграция сознательно
// вне скоупа: в проде и тестах используется MockGateway, а контракт
// позволяет подключить настоящий шлюз без изменения чекаута.
type PaymentGateway interface {
	// Charge списывает amountCents у водителя и возвращает идентификатор
	// платежа. Ключ идемпотентности прокидывается в шлюз, чтобы повтор
	// чекаута не списывал деньги дважды.
	Charge(ctx context.Context, driverID uuid.UUID, amountCents int64, currency, idempotencyKey string) (string, error)
}

// MockGateway — имитация платёжного шлюза.
// Decline=true заставляет шлюз отклонять все списания (для тестов).
type MockGateway struct {
	Decline bool
}

// Charge имитирует успешное списание и возвращает синтетический ID платежа.
func (g *MockGateway) Charge(ctx context.Context, driverID uuid.UUID, amountCents int64, currency, idempotencyKey string) (string, error) {
	const op = "service.payment.Charge"

	if g.Decline {
		return "", fmt.Errorf("%s: %w", op, ErrPaymentDeclined)
	}

	ref := "pay_" + uuid.NewString()

	log.From(ctx).Debug("mock_payment_charged",
		slog.String("op", op),
		slog.String("payment_ref", ref),
		slog.Int64("amount_cents", amountCents),
		slog.String("currency", currency),
	)

	return ref, nil
}
