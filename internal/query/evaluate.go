// Package query — конвейер представления заказов: фильтр по статусу → текстовый поиск →
// устойчивая сортировка → сводка. Чистые функции без побочных эффектов, вызываются на каждое
// изменение параметров.
package query

import (
	"slices"
	"strings"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/shopspring/decimal"
)

// Evaluate — строит видимый набор и сводку по нему. Вход не изменяется.
func Evaluate(orders []domain.Order, spec domain.QuerySpec) domain.View {
	visible := make([]domain.Order, 0, len(orders))

	q := normalizeQuery(spec.SearchQuery)
	for i := range orders {
		o := &orders[i]
		if spec.StatusFilter != domain.StatusAll && string(o.Status) != spec.StatusFilter {
			continue
		}
		if q != "" && !matches(o, q) {
			continue
		}
		visible = append(visible, *o)
	}

	sortStable(visible, spec.SortKey)

	return domain.View{
		Orders:     visible,
		Aggregates: Aggregate(visible),
	}
}

// Aggregate — количество, сумма, число pending и delivered по переданному набору.
func Aggregate(orders []domain.Order) domain.Aggregates {
	agg := domain.Aggregates{Total: decimal.Zero}
	for i := range orders {
		o := &orders[i]
		agg.Count++
		agg.Total = agg.Total.Add(o.Amount)
		switch o.Status {
		case domain.StatusPending:
			agg.Pending++
		case domain.StatusDelivered:
			agg.Delivered++
		}
	}
	return agg
}

// Matches — подходит ли заказ под поисковую строку (пустая строка подходит всегда).
func Matches(o *domain.Order, searchQuery string) bool {
	q := normalizeQuery(searchQuery)
	if q == "" {
		return true
	}
	return matches(o, q)
}

// matches — q уже обрезан и приведён к нижнему регистру.
func matches(o *domain.Order, q string) bool {
	return strings.Contains(strings.ToLower(o.ID), q) ||
		strings.Contains(strings.ToLower(o.Customer), q) ||
		strings.Contains(strings.ToLower(string(o.Status)), q) ||
		strings.Contains(o.Amount.String(), q)
}

func normalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// sortStable — устойчивая сортировка на месте; неизвестный ключ оставляет порядок фильтра.
func sortStable(orders []domain.Order, key domain.SortKey) {
	switch key {
	case domain.SortDateDesc:
		slices.SortStableFunc(orders, func(a, b domain.Order) int { return compareDates(&a, &b, true) })
	case domain.SortDateAsc:
		slices.SortStableFunc(orders, func(a, b domain.Order) int { return compareDates(&a, &b, false) })
	case domain.SortAmountDesc:
		slices.SortStableFunc(orders, func(a, b domain.Order) int { return b.Amount.Cmp(a.Amount) })
	case domain.SortAmountAsc:
		slices.SortStableFunc(orders, func(a, b domain.Order) int { return a.Amount.Cmp(b.Amount) })
	}
}

// compareDates — нераспознанные даты уходят в конец при любом направлении.
func compareDates(a, b *domain.Order, desc bool) int {
	ta, okA := a.ParsedDate()
	tb, okB := b.ParsedDate()
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	if desc {
		return tb.Compare(ta)
	}
	return ta.Compare(tb)
}
