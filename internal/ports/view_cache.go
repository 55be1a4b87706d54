package ports

import (
	"context"

	"github.com/Gunvolt24/jm_orders/internal/domain"
)

// ViewCache — кэш вычисленных представлений.
// Ключ учитывает поколение хранилища, поэтому после замены набора старые записи не находятся.
type ViewCache interface {
	Get(ctx context.Context, generation uint64, spec domain.QuerySpec) (domain.View, bool)
	Set(ctx context.Context, generation uint64, spec domain.QuerySpec, view domain.View) error
}
