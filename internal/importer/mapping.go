package importer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Позиции колонок во входной таблице.
const (
	colID = iota
	colDate
	colCustomer
	colItems
	colAmount
	colStatus
)

// Наибольший серийный номер даты в Excel (9999-12-31).
const maxExcelSerial = 2958465

// textDateLayouts — текстовые даты, которые приводятся к ISO. Числовые d/m/y трактуются
// в порядке en-IN (день первым).
var textDateLayouts = []string{
	domain.DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

var amountNoise = strings.NewReplacer("₹", "", "INR", "", "Rs.", "", "Rs", "", ",", "", " ", "", "_", "")

func mapRows(rows [][]string, date1904 bool) domain.ImportResult {
	var res domain.ImportResult
	if len(rows) <= 1 {
		return res
	}
	for i, cells := range rows[1:] {
		if isBlankRow(cells) {
			continue
		}
		rowNum := i + 2 // 1 — заголовок
		o, warns := mapRow(rowNum, cells, date1904)
		res.Orders = append(res.Orders, o)
		res.Warnings = append(res.Warnings, warns...)
	}
	return res
}

func mapRow(rowNum int, cells []string, date1904 bool) (domain.Order, []domain.ImportWarning) {
	var warns []domain.ImportWarning

	o := domain.Order{
		ID:       cell(cells, colID),
		Date:     normalizeDate(cell(cells, colDate), date1904),
		Customer: cell(cells, colCustomer),
		Amount:   decimal.Zero,
		Status:   normalizeStatus(cell(cells, colStatus)),
	}

	if raw := cell(cells, colItems); raw != "" {
		n, ok := parseItems(raw)
		if !ok {
			warns = append(warns, domain.ImportWarning{Row: rowNum, OrderID: o.ID, Column: "items", Value: raw})
		}
		o.Items = n
	}
	if raw := cell(cells, colAmount); raw != "" {
		amt, ok := parseAmount(raw)
		if !ok {
			warns = append(warns, domain.ImportWarning{Row: rowNum, OrderID: o.ID, Column: "amount", Value: raw})
		}
		o.Amount = amt
	}
	return o, warns
}

func cell(cells []string, idx int) string {
	if idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}

func normalizeStatus(raw string) domain.Status {
	s := strings.ToLower(raw)
	if s == "" {
		return domain.StatusUnknown
	}
	return domain.Status(s)
}

// normalizeDate — серийный номер или знакомый текстовый формат → ISO; иначе как есть.
func normalizeDate(raw string, date1904 bool) string {
	if raw == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if serial <= 0 || serial > maxExcelSerial {
			return raw
		}
		t, err := excelize.ExcelDateToTime(math.Floor(serial), date1904)
		if err != nil {
			return raw
		}
		return t.Format(domain.DateLayout)
	}
	for _, layout := range textDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(domain.DateLayout)
		}
	}
	return raw
}

// parseItems — целое число; «2.0» из числовой ячейки тоже принимается.
func parseItems(raw string) (int, bool) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func parseAmount(raw string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(amountNoise.Replace(raw))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
