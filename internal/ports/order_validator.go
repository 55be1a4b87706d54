package ports

import (
	"context"

	"github.com/Gunvolt24/jm_orders/internal/domain"
)

// OrderValidator — проверка одной записи заказа (только отчёт, импорт её не использует).
type OrderValidator interface {
	Validate(ctx context.Context, order *domain.Order) error
}
