package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/Gunvolt24/jm_orders/internal/importer"
	"github.com/Gunvolt24/jm_orders/internal/ports"
	"github.com/Gunvolt24/jm_orders/internal/seed"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
	FormatYAML  InputFormat = "yaml"
	FormatXLSX  InputFormat = "xlsx"
	FormatCSV   InputFormat = "csv"
)

// DetectFormat — формат по расширению; неизвестное → таблица с автоопределением (как при импорте).
func DetectFormat(path string) InputFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return FormatJSONL
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".csv":
		return FormatCSV
	default:
		return FormatXLSX
	}
}

// ValidateFile — проверяет файл заказов и пишет валидные заказы в ow (JSONL).
// Ошибка возвращается только если файл не удалось прочитать или разобрать целиком.
func ValidateFile(ctx context.Context, validator ports.OrderValidator, filePath string, format InputFormat, ow io.Writer) (Report, error) {
	if format == FormatAuto || format == "" {
		format = DetectFormat(filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return Report{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	if format == FormatJSONL {
		return ValidateJSONLStream(ctx, validator, file, ow)
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		return Report{}, fmt.Errorf("read file: %w", err)
	}
	orders, err := decodeFile(raw, format)
	if err != nil {
		return Report{}, err
	}
	return CheckOrders(ctx, validator, orders, ow)
}

func decodeFile(raw []byte, format InputFormat) ([]domain.Order, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(raw)
	case FormatYAML:
		return seed.ParseYAML(raw)
	case FormatXLSX, FormatCSV:
		kind := domain.ImportAuto
		if format == FormatCSV {
			kind = domain.ImportCSV
		}
		res, err := importer.New(0).ParseBytes(raw, kind)
		if err != nil {
			return nil, err
		}
		return res.Orders, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// decodeJSON — массив заказов или один объект.
func decodeJSON(raw []byte) ([]domain.Order, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var orders []domain.Order
		if err := json.Unmarshal(trimmed, &orders); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
		for i := range orders {
			if orders[i].Status == "" {
				orders[i].Status = domain.StatusUnknown
			}
		}
		return orders, nil
	}
	order, err := decodeOrder(trimmed)
	if err != nil {
		return nil, err
	}
	return []domain.Order{order}, nil
}
