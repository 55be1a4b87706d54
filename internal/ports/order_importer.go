package ports

import (
	"context"
	"io"

	"github.com/Gunvolt24/jm_orders/internal/domain"
)

// OrderImporter — адаптер импорта таблиц.
// Ошибки: domain.ErrImportRead (чтение) или domain.ErrImportParse (разбор), обёрнутые с причиной.
type OrderImporter interface {
	Parse(ctx context.Context, r io.Reader, format domain.ImportFormat) (domain.ImportResult, error)
}
