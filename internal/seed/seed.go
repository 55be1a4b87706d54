// Package seed — источники начальных данных дашборда.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/Gunvolt24/jm_orders/internal/ports"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	_ ports.SeedSource = BuiltinSource{}
	_ ports.SeedSource = (*YAMLSource)(nil)
)

// Builtin — пять демонстрационных заказов ювелирного магазина.
func Builtin() []domain.Order {
	return []domain.Order{
		{ID: "JM-1001", Date: "2025-09-10", Customer: "Anita Joshi", Items: 2,
			Amount: decimal.NewFromInt(12400), Status: domain.StatusPending, Details: "2x Diamond stud, 1x polishing"},
		{ID: "JM-1002", Date: "2025-09-12", Customer: "Ravi Mehra", Items: 1,
			Amount: decimal.NewFromInt(5600), Status: domain.StatusShipped, Details: "Gold necklace"},
		{ID: "JM-1003", Date: "2025-09-14", Customer: "Sana Kapoor", Items: 3,
			Amount: decimal.NewFromInt(27800), Status: domain.StatusDelivered, Details: "Custom ring set"},
		{ID: "JM-1004", Date: "2025-09-15", Customer: "Arjun Patel", Items: 1,
			Amount: decimal.NewFromInt(4200), Status: domain.StatusCancelled, Details: "Refund processed"},
		{ID: "JM-1005", Date: "2025-09-16", Customer: "Leena Rao", Items: 4,
			Amount: decimal.NewFromInt(45200), Status: domain.StatusPending, Details: "Engagement set + cleaning"},
	}
}

// BuiltinSource — встроенный набор как ports.SeedSource.
type BuiltinSource struct{}

// Load — всегда новая копия.
func (BuiltinSource) Load(context.Context) ([]domain.Order, error) { return Builtin(), nil }

// YAMLSource — заказы из YAML-файла (список с полями как у domain.Order).
type YAMLSource struct {
	path string
}

// NewYAMLSource — конструктор.
func NewYAMLSource(path string) *YAMLSource { return &YAMLSource{path: path} }

// Load — читает и разбирает файл. Пустой статус → unknown.
func (s *YAMLSource) Load(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseYAML(raw)
}

// ParseYAML — разбор YAML-списка заказов.
func ParseYAML(raw []byte) ([]domain.Order, error) {
	var orders []domain.Order
	if err := yaml.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("decode seed yaml: %w", err)
	}
	for i := range orders {
		if orders[i].Status == "" {
			orders[i].Status = domain.StatusUnknown
		}
	}
	return orders, nil
}
