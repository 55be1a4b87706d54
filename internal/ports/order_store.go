package ports

import (
	"context"

	"github.com/Gunvolt24/jm_orders/internal/domain"
)

// OrderStore — авторитетная коллекция заказов в памяти.
// Требования к реализации: потокобезопасность; замена целиком (без слияния); возврат копий.
type OrderStore interface {
	// Snapshot — копия текущего набора и номер поколения.
	Snapshot(ctx context.Context) ([]domain.Order, uint64)

	// Replace — заменить набор целиком; возвращает новое поколение.
	Replace(ctx context.Context, orders []domain.Order) uint64

	// FindByID — первый заказ с данным id по полному набору; (nil, false), если нет.
	FindByID(ctx context.Context, id string) (*domain.Order, bool)
}
