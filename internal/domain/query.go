package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// StatusAll — значение фильтра статуса «без фильтра».
const StatusAll = "all"

// SortKey — ключ сортировки видимого набора.
type SortKey string

const (
	SortDateDesc   SortKey = "date_desc"
	SortDateAsc    SortKey = "date_asc"
	SortAmountDesc SortKey = "amount_desc"
	SortAmountAsc  SortKey = "amount_asc"
)

// ErrUnknownSortKey — ключ сортировки вне поддерживаемого набора.
var ErrUnknownSortKey = errors.New("unknown sort key")

// ParseSortKey — разбор ключа сортировки на границе ввода (HTTP, CLI).
// Пустая строка → ключ по умолчанию. Принимаются и варианты через дефис (date-desc).
func ParseSortKey(raw string) (SortKey, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "-", "_")
	switch SortKey(s) {
	case "":
		return SortDateDesc, nil
	case SortDateDesc, SortDateAsc, SortAmountDesc, SortAmountAsc:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, raw)
	}
}

// QuerySpec — параметры текущего представления.
type QuerySpec struct {
	StatusFilter string  `json:"status"`
	SearchQuery  string  `json:"query"`
	SortKey      SortKey `json:"sort"`
}

// DefaultQuerySpec — параметры при старте сессии: все статусы, пустой поиск, новые сверху.
func DefaultQuerySpec() QuerySpec {
	return QuerySpec{StatusFilter: StatusAll, SearchQuery: "", SortKey: SortDateDesc}
}

// Aggregates — сводка по видимому (отфильтрованному) набору.
type Aggregates struct {
	Count     int             `json:"count"`
	Total     decimal.Decimal `json:"total"`
	Pending   int             `json:"pending"`
	Delivered int             `json:"delivered"`
}

// View — результат конвейера: видимые заказы в порядке отображения + сводка.
type View struct {
	Orders     []Order    `json:"orders"`
	Aggregates Aggregates `json:"aggregates"`
}

// Clone — независимая копия представления.
func (v View) Clone() View {
	out := v
	out.Orders = CloneOrders(v.Orders)
	return out
}
