package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/Gunvolt24/jm_orders/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Проверка, что SeedRepository удовлетворяет интерфейсу SeedSource.
var _ ports.SeedSource = (*SeedRepository)(nil)

// SeedRepository — начальный набор заказов из Postgres (только чтение).
type SeedRepository struct {
	pool *pgxpool.Pool
}

// NewSeedRepository - конструктор SeedRepository.
func NewSeedRepository(pool *pgxpool.Pool) *SeedRepository { return &SeedRepository{pool: pool} }

// Load — все строки таблицы orders в порядке id.
// Сумма читается текстом, чтобы не терять точность NUMERIC.
func (r *SeedRepository) Load(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, date, customer, items, amount::text, status, details
		FROM orders
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var (
			order  domain.Order
			amount string
			status string
		)
		if err := rows.Scan(
			&order.ID, &order.Date, &order.Customer, &order.Items, &amount, &status, &order.Details,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if order.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("order %s amount %q: %w", order.ID, amount, err)
		}
		order.Status = domain.Status(status)
		if order.Status == "" {
			order.Status = domain.StatusUnknown
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}
	return orders, nil
}
