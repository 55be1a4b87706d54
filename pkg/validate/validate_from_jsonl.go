package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/Gunvolt24/jm_orders/internal/ports"
)

// Issue — заказ, не прошедший проверку. Index — позиция в исходном наборе (с 0).
type Issue struct {
	Index int
	ID    string
	Err   error
}

// Report — итог проверки набора.
type Report struct {
	Valid   int
	Invalid int
	Issues  []Issue
}

func (r Report) String() string {
	return fmt.Sprintf("%d valid / %d invalid", r.Valid, r.Invalid)
}

// CheckOrders — проверяет заказы по порядку; валидные пишет в ow каноническим JSON по строке.
func CheckOrders(ctx context.Context, validator ports.OrderValidator, orders []domain.Order, ow io.Writer) (Report, error) {
	var res Report
	for i := range orders {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := validator.Validate(ctx, &orders[i]); err != nil {
			res.Invalid++
			res.Issues = append(res.Issues, Issue{Index: i, ID: orders[i].ID, Err: err})
			continue
		}
		if err := writeLine(ow, &orders[i]); err != nil {
			return res, err
		}
		res.Valid++
	}
	return res, nil
}

// ValidateJSONLStream — читает JSONL, валидирует каждую строку, валидные пишет в writer.
// Пустые строки пропускаются; строка, которую не удалось разобрать, считается невалидной.
func ValidateJSONLStream(ctx context.Context, validator ports.OrderValidator, ir io.Reader, ow io.Writer) (Report, error) {
	var res Report

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for idx := 0; scanner.Scan(); {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		order, err := decodeOrder(line)
		if err == nil {
			err = validator.Validate(ctx, &order)
		}
		if err != nil {
			res.Invalid++
			res.Issues = append(res.Issues, Issue{Index: idx, ID: order.ID, Err: err})
			idx++
			continue
		}
		if err := writeLine(ow, &order); err != nil {
			return res, err
		}
		res.Valid++
		idx++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

// decodeOrder — один заказ из JSON без лишних полей и хвоста.
func decodeOrder(raw []byte) (domain.Order, error) {
	var order domain.Order
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&order); err != nil {
		return domain.Order{}, fmt.Errorf("invalid json: %w", err)
	}
	if dec.More() {
		return domain.Order{}, fmt.Errorf("invalid json: trailing data")
	}
	if order.Status == "" {
		order.Status = domain.StatusUnknown
	}
	return order, nil
}

func writeLine(ow io.Writer, order *domain.Order) error {
	line, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order %s: %w", order.ID, err)
	}
	line = append(line, '\n')
	if _, err := ow.Write(line); err != nil {
		return fmt.Errorf("write valid line: %w", err)
	}
	return nil
}
