//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/jm_orders/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор заказа
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	o := domain.Order{
		ID:       "JM-" + UniqSuffix(),
		Date:     "2025-09-10",
		Customer: "Anita Joshi",
		Items:    1,
		Amount:   decimal.NewFromInt(1000),
		Status:   domain.StatusPending,
		Details:  "Test piece",
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithStatus(s domain.Status) func(*domain.Order) {
	return func(o *domain.Order) { o.Status = s }
}

func WithAmount(amount int64) func(*domain.Order) {
	return func(o *domain.Order) { o.Amount = decimal.NewFromInt(amount) }
}

// InsertOrder — прямая вставка строки в таблицу посева.
func InsertOrder(ctx context.Context, pool *pgxpool.Pool, o domain.Order) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO orders (id, date, customer, items, amount, status, details)
		VALUES ($1, $2, $3, $4, ($5::text)::numeric, $6, $7)
	`, o.ID, o.Date, o.Customer, o.Items, o.Amount.String(), string(o.Status), o.Details)
	if err != nil {
		return fmt.Errorf("insert order %s: %w", o.ID, err)
	}
	return nil
}
