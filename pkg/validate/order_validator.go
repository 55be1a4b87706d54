// Package validate — проверка файлов с заказами до импорта или посева.
// Импорт сам по себе ничего не отбрасывает, поэтому проверка здесь только сообщает о проблемах.
package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/Gunvolt24/jm_orders/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

// OrderValidator — структура для валидации заказа.
type OrderValidator struct {
	strictStatus bool
}

// Option — настройка OrderValidator.
type Option func(*OrderValidator)

// WithStrictStatus — статус должен входить в закрытый набор (pending, shipped, delivered, cancelled).
func WithStrictStatus() Option {
	return func(v *OrderValidator) { v.strictStatus = true }
}

// NewOrderValidator — конструктор OrderValidator.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func NewOrderValidator(opts ...Option) *OrderValidator {
	v := &OrderValidator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate — проверяет корректность полей заказа.
func (v *OrderValidator) Validate(_ context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidOrder)
	}
	if strings.TrimSpace(order.ID) == "" {
		return fmt.Errorf("%w: id обязателен", ErrInvalidOrder)
	}
	if strings.TrimSpace(order.Customer) == "" {
		return fmt.Errorf("%w: customer обязателен", ErrInvalidOrder)
	}
	if _, ok := order.ParsedDate(); !ok {
		return fmt.Errorf("%w: date %q не в формате YYYY-MM-DD", ErrInvalidOrder, order.Date)
	}
	if order.Items < 0 {
		return fmt.Errorf("%w: items должен быть неотрицательным", ErrInvalidOrder)
	}
	if order.Amount.IsNegative() {
		return fmt.Errorf("%w: amount должен быть неотрицательным", ErrInvalidOrder)
	}
	if v.strictStatus && !order.Status.Known() {
		return fmt.Errorf("%w: неизвестный status %q", ErrInvalidOrder, order.Status)
	}
	return nil
}
