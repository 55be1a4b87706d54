// Package importer — адаптер импорта таблиц заказов (xlsx, csv).
//
// Первая строка таблицы — заголовок и отбрасывается. Колонки сопоставляются по позиции:
// 0 id, 1 дата, 2 клиент, 3 позиции, 4 сумма, 5 статус; остальные игнорируются.
// Строки не отбрасываются из-за нечисловых значений: такие ячейки становятся нулём
// и попадают в предупреждения результата.
package importer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/Gunvolt24/jm_orders/internal/ports"
)

// Проверка, что Importer удовлетворяет интерфейсу ports.OrderImporter.
var _ ports.OrderImporter = (*Importer)(nil)

// DefaultMaxBytes — ограничение размера файла по умолчанию.
const DefaultMaxBytes int64 = 16 << 20

var (
	zipMagic = []byte("PK\x03\x04")
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0}
)

// Importer — разбор таблиц в заказы.
type Importer struct {
	maxBytes int64
}

// New — конструктор; maxBytes <= 0 → DefaultMaxBytes.
func New(maxBytes int64) *Importer {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Importer{maxBytes: maxBytes}
}

// Parse — читает байты целиком, затем разбирает их в выбранном формате.
// Ошибки чтения оборачивают domain.ErrImportRead, ошибки разбора — domain.ErrImportParse.
func (im *Importer) Parse(ctx context.Context, r io.Reader, format domain.ImportFormat) (domain.ImportResult, error) {
	raw, err := im.read(r)
	if err != nil {
		return domain.ImportResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.ImportResult{}, fmt.Errorf("%w: %w", domain.ErrImportRead, err)
	}
	return im.ParseBytes(raw, format)
}

// ParseBytes — разбор уже прочитанных байтов.
func (im *Importer) ParseBytes(raw []byte, format domain.ImportFormat) (domain.ImportResult, error) {
	if format == domain.ImportAuto || format == "" {
		format = sniff(raw)
	}

	var (
		rows     [][]string
		date1904 bool
		err      error
	)
	switch format {
	case domain.ImportXLSX:
		rows, date1904, err = readXLSX(raw)
	case domain.ImportCSV:
		rows, err = readCSV(raw)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return domain.ImportResult{}, fmt.Errorf("%w: %w", domain.ErrImportParse, err)
	}

	res := mapRows(rows, date1904)
	if len(res.Orders) == 0 {
		return domain.ImportResult{}, fmt.Errorf("%w: no data rows after header", domain.ErrImportParse)
	}
	return res, nil
}

func (im *Importer) read(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: no input", domain.ErrImportRead)
	}
	raw, err := io.ReadAll(io.LimitReader(r, im.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrImportRead, err)
	}
	if int64(len(raw)) > im.maxBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrImportRead, im.maxBytes)
	}
	return raw, nil
}

// sniff — xlsx узнаём по сигнатуре zip, всё остальное считаем текстом csv.
func sniff(raw []byte) domain.ImportFormat {
	if bytes.HasPrefix(raw, zipMagic) {
		return domain.ImportXLSX
	}
	if bytes.HasPrefix(raw, oleMagic) {
		// старый бинарный .xls не поддерживается
		return "xls"
	}
	return domain.ImportCSV
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
