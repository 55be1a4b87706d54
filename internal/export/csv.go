// Package export — выгрузка заказов в CSV.
//
// Формат фиксированный: заголовок «Order ID,Date,Customer,Items,Amount,Status,Details»,
// строки разделены «\n» без завершающего перевода строки. Поле Details всегда в кавычках
// (внутренние кавычки удваиваются), остальные поля пишутся как есть.
package export

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/Gunvolt24/jm_orders/internal/domain"
)

// Header — строка заголовка выгрузки.
const Header = "Order ID,Date,Customer,Items,Amount,Status,Details"

// DefaultFilename — имя файла для скачивания.
const DefaultFilename = "jewel-market-orders.csv"

// ContentType — тип содержимого ответа.
const ContentType = "text/csv; charset=utf-8"

// WriteCSV пишет заказы в порядке переданного среза.
func WriteCSV(w io.Writer, orders []domain.Order) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header); err != nil {
		return err
	}
	for i := range orders {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		if _, err := bw.WriteString(Row(&orders[i])); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Row — одна строка выгрузки без перевода строки.
func Row(o *domain.Order) string {
	var b strings.Builder
	b.WriteString(o.ID)
	b.WriteByte(',')
	b.WriteString(o.Date)
	b.WriteByte(',')
	b.WriteString(o.Customer)
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(o.Items))
	b.WriteByte(',')
	b.WriteString(o.Amount.String())
	b.WriteByte(',')
	b.WriteString(string(o.Status))
	b.WriteByte(',')
	b.WriteString(quote(o.Details))
	return b.String()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
