package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout — формат нормализованной календарной даты заказа.
const DateLayout = "2006-01-02"

// Status — статус заказа. Набор известных значений закрыт только для оформления и фильтров:
// неизвестные значения хранятся и обрабатываются как есть.
type Status string

const (
	StatusPending   Status = "pending"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"

	// StatusUnknown — значение по умолчанию при импорте, если колонка статуса пуста.
	StatusUnknown Status = "unknown"
)

// KnownStatuses — статусы, для которых есть отдельное оформление.
var KnownStatuses = []Status{StatusPending, StatusShipped, StatusDelivered, StatusCancelled}

// Known — входит ли статус в закрытый набор.
func (s Status) Known() bool {
	for _, k := range KnownStatuses {
		if s == k {
			return true
		}
	}
	return false
}

// Order — заказ ювелирного магазина.
type Order struct {
	ID       string          `json:"id"                yaml:"id"`
	Date     string          `json:"date"              yaml:"date"`
	Customer string          `json:"customer"          yaml:"customer"`
	Items    int             `json:"items"             yaml:"items"`
	Amount   decimal.Decimal `json:"amount"            yaml:"amount"`
	Status   Status          `json:"status"            yaml:"status"`
	Details  string          `json:"details,omitempty" yaml:"details,omitempty"`
}

// ParsedDate — дата заказа как time.Time (UTC, полночь); false, если дата не в формате ISO.
func (o *Order) ParsedDate() (time.Time, bool) {
	t, err := time.Parse(DateLayout, o.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CloneOrders — копия среза заказов (Order не содержит ссылочных полей, поэтому копия полная).
func CloneOrders(orders []Order) []Order {
	if orders == nil {
		return nil
	}
	return append([]Order(nil), orders...)
}
