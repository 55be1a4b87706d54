package validate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/jm_orders/internal/domain"
)

func validOrder() domain.Order {
	return domain.Order{
		ID:       "JM-1001",
		Date:     "2025-09-10",
		Customer: "Anita Joshi",
		Items:    2,
		Amount:   decimal.NewFromInt(12400),
		Status:   domain.StatusPending,
	}
}

func TestOrderValidator_Valid(t *testing.T) {
	o := validOrder()
	if err := NewOrderValidator().Validate(context.Background(), &o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// неизвестный статус допустим без строгого режима
	o.Status = "on-hold"
	if err := NewOrderValidator().Validate(context.Background(), &o); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderValidator_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Order)
		want   string
	}{
		{"empty id", func(o *domain.Order) { o.ID = "  " }, "id"},
		{"empty customer", func(o *domain.Order) { o.Customer = "" }, "customer"},
		{"non iso date", func(o *domain.Order) { o.Date = "10/09/2025" }, "date"},
		{"negative items", func(o *domain.Order) { o.Items = -1 }, "items"},
		{"negative amount", func(o *domain.Order) { o.Amount = decimal.NewFromInt(-5) }, "amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOrder()
			tt.mutate(&o)
			err := NewOrderValidator().Validate(context.Background(), &o)
			if !errors.Is(err, ErrInvalidOrder) {
				t.Fatalf("want ErrInvalidOrder, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("want %q in error, got %v", tt.want, err)
			}
		})
	}
}

func TestOrderValidator_Nil(t *testing.T) {
	if err := NewOrderValidator().Validate(context.Background(), nil); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("want ErrInvalidOrder, got %v", err)
	}
}

func TestOrderValidator_StrictStatus(t *testing.T) {
	o := validOrder()
	o.Status = domain.StatusUnknown

	err := NewOrderValidator(WithStrictStatus()).Validate(context.Background(), &o)
	if !errors.Is(err, ErrInvalidOrder) || !strings.Contains(err.Error(), "status") {
		t.Fatalf("want status error, got %v", err)
	}
}
