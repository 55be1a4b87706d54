package ports

import (
	"context"
	"io"

	"github.com/Gunvolt24/jm_orders/internal/domain"
)

// DashboardService — прикладной контракт панели заказов для транспортного слоя.
type DashboardService interface {
	Query(ctx context.Context, spec domain.QuerySpec) domain.View
	Current(ctx context.Context) (domain.QuerySpec, domain.View)

	SetStatusFilter(ctx context.Context, status string) (domain.QuerySpec, domain.View)
	SetSearchQuery(ctx context.Context, query string) (domain.QuerySpec, domain.View)
	SetSortKey(ctx context.Context, key domain.SortKey) (domain.QuerySpec, domain.View)

	GetOrder(ctx context.Context, id string) (*domain.Order, bool)
	ExportCSV(ctx context.Context, w io.Writer) error
	Import(ctx context.Context, r io.Reader, format domain.ImportFormat) (domain.ImportOutcome, error)
}
