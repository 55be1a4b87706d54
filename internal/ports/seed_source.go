package ports

import (
	"context"

	"github.com/Gunvolt24/jm_orders/internal/domain"
)

// SeedSource — источник начального набора заказов.
type SeedSource interface {
	Load(ctx context.Context) ([]domain.Order, error)
}
