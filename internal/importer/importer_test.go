package importer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/Gunvolt24/jm_orders/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const header = "Order ID,Date,Customer,Items,Amount,Status\n"

func parseCSV(t *testing.T, body string) (domain.ImportResult, error) {
	t.Helper()
	return New(0).Parse(context.Background(), strings.NewReader(body), domain.ImportCSV)
}

// makeXLSX — книга с одним листом из переданных строк.
func makeXLSX(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		r := row
		if err := f.SetSheetRow(sheet, cellRef, &r); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write xlsx: %v", err)
	}
	return buf.Bytes()
}

func TestParseCSV_PositionalMapping(t *testing.T) {
	t.Parallel()

	body := header +
		"JM-1001,2025-09-10,Anita Joshi,2,12400,Pending,ignored,extra\n" +
		"JM-1002,12/09/2025,Ravi Mehra,1,\"5,600\",SHIPPED\n"

	res, err := parseCSV(t, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Orders) != 2 || len(res.Warnings) != 0 {
		t.Fatalf("want 2 orders w/o warnings, got %+v", res)
	}

	first := res.Orders[0]
	if first.ID != "JM-1001" || first.Date != "2025-09-10" || first.Customer != "Anita Joshi" ||
		first.Items != 2 || !first.Amount.Equal(decimal.NewFromInt(12400)) || first.Status != domain.StatusPending {
		t.Fatalf("first row mapped wrong: %+v", first)
	}
	if first.Details != "" {
		t.Fatalf("columns beyond status must be ignored, got details=%q", first.Details)
	}

	second := res.Orders[1]
	if second.Date != "2025-09-12" || !second.Amount.Equal(decimal.NewFromInt(5600)) || second.Status != domain.StatusShipped {
		t.Fatalf("second row mapped wrong: %+v", second)
	}
}

func TestParseCSV_MissingStatusIsUnknown(t *testing.T) {
	t.Parallel()

	res, err := parseCSV(t, header+"JM-1,2025-01-01,A,1,10\nJM-2,2025-01-01,B,1,10,  \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, o := range res.Orders {
		if o.Status != domain.StatusUnknown {
			t.Fatalf("want unknown status, got %q for %s", o.Status, o.ID)
		}
	}
}

// Нечисловые значения не отбрасывают строку: ноль + предупреждение.
func TestParseCSV_MalformedNumbersWarn(t *testing.T) {
	t.Parallel()

	res, err := parseCSV(t, header+"JM-9,someday,Kiran,two,lots,pending\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Orders) != 1 {
		t.Fatalf("row must be kept, got %d orders", len(res.Orders))
	}
	o := res.Orders[0]
	if o.Items != 0 || !o.Amount.IsZero() || o.Date != "someday" {
		t.Fatalf("unexpected passthrough: %+v", o)
	}
	if len(res.Warnings) != 2 {
		t.Fatalf("want 2 warnings, got %+v", res.Warnings)
	}
	if w := res.Warnings[0]; w.Row != 2 || w.OrderID != "JM-9" || w.Column != "items" || w.Value != "two" {
		t.Fatalf("unexpected items warning: %+v", w)
	}
	if w := res.Warnings[1]; w.Row != 2 || w.Column != "amount" || w.Value != "lots" {
		t.Fatalf("unexpected amount warning: %+v", w)
	}
}

func TestParseCSV_SkipsBlankRows(t *testing.T) {
	t.Parallel()

	res, err := parseCSV(t, header+"\n,,,\nJM-1,2025-01-01,A,1,10,pending\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Orders) != 1 || res.Orders[0].ID != "JM-1" {
		t.Fatalf("blank rows must be skipped: %+v", res.Orders)
	}
}

// Сценарий E: только заголовок → ошибка разбора.
func TestParse_HeaderOnly_ParseFailure(t *testing.T) {
	t.Parallel()

	for _, body := range []string{header, "", "\n\n", header + ",,,,\n"} {
		_, err := parseCSV(t, body)
		if !errors.Is(err, domain.ErrImportParse) {
			t.Fatalf("body %q: want ErrImportParse, got %v", body, err)
		}
	}
}

func TestParse_ReadFailure(t *testing.T) {
	t.Parallel()

	_, err := New(0).Parse(context.Background(), iotest.ErrReader(errors.New("disk gone")), domain.ImportAuto)
	if !errors.Is(err, domain.ErrImportRead) || !strings.Contains(err.Error(), "disk gone") {
		t.Fatalf("want ErrImportRead with cause, got %v", err)
	}
	if errors.Is(err, domain.ErrImportParse) {
		t.Fatalf("read failure must be distinguishable from parse failure")
	}
}

func TestParse_TooLarge_ReadFailure(t *testing.T) {
	t.Parallel()

	_, err := New(10).Parse(context.Background(), strings.NewReader(header), domain.ImportCSV)
	if !errors.Is(err, domain.ErrImportRead) {
		t.Fatalf("want ErrImportRead for oversized input, got %v", err)
	}
}

func TestParse_BinaryGarbage_ParseFailure(t *testing.T) {
	t.Parallel()

	garbage := []byte{0xff, 0xfe, 0x00, 0x81, 0x92}
	_, err := New(0).Parse(context.Background(), bytes.NewReader(garbage), domain.ImportAuto)
	if !errors.Is(err, domain.ErrImportParse) {
		t.Fatalf("want ErrImportParse, got %v", err)
	}

	// сигнатура zip, но не книга
	_, err = New(0).Parse(context.Background(), bytes.NewReader([]byte("PK\x03\x04broken")), domain.ImportAuto)
	if !errors.Is(err, domain.ErrImportParse) {
		t.Fatalf("want ErrImportParse for broken zip, got %v", err)
	}

	// старый .xls
	_, err = New(0).Parse(context.Background(), bytes.NewReader([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1}), domain.ImportAuto)
	if !errors.Is(err, domain.ErrImportParse) {
		t.Fatalf("want ErrImportParse for legacy xls, got %v", err)
	}
}

func TestParseXLSX_SerialDatesAndAutoDetect(t *testing.T) {
	t.Parallel()

	raw := makeXLSX(t, [][]any{
		{"Order ID", "Date", "Customer", "Items", "Amount", "Status"},
		{"JM-1001", 45910, "Anita Joshi", 2, 12400, "Pending"},
		{"JM-1002", "2025-09-12", "Ravi Mehra", 1, 5600.5},
	})

	res, err := New(0).Parse(context.Background(), bytes.NewReader(raw), domain.ImportAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Orders) != 2 {
		t.Fatalf("want 2 orders, got %+v", res.Orders)
	}

	first := res.Orders[0]
	if first.Date != "2025-09-10" {
		t.Fatalf("serial date must be converted, got %q", first.Date)
	}
	if first.Items != 2 || !first.Amount.Equal(decimal.NewFromInt(12400)) || first.Status != domain.StatusPending {
		t.Fatalf("first row mapped wrong: %+v", first)
	}

	second := res.Orders[1]
	if second.Date != "2025-09-12" || !second.Amount.Equal(decimal.RequireFromString("5600.5")) || second.Status != domain.StatusUnknown {
		t.Fatalf("second row mapped wrong: %+v", second)
	}
}

func TestParseXLSX_HeaderOnly_ParseFailure(t *testing.T) {
	t.Parallel()

	raw := makeXLSX(t, [][]any{{"Order ID", "Date", "Customer", "Items", "Amount", "Status"}})
	_, err := New(0).Parse(context.Background(), bytes.NewReader(raw), domain.ImportXLSX)
	if !errors.Is(err, domain.ErrImportParse) {
		t.Fatalf("want ErrImportParse, got %v", err)
	}
}

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"2025-09-10", "2025-09-10"},
		{"45910", "2025-09-10"},
		{"45910.75", "2025-09-10"},
		{"10/09/2025", "2025-09-10"},
		{"10.9.2025", "2025-09-10"},
		{"2025/09/10", "2025-09-10"},
		{"10 Sep 2025", "2025-09-10"},
		{"2025-09-10T15:04:05Z", "2025-09-10"},
		{"-5", "-5"},
		{"next week", "next week"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeDate(tt.in, false); got != tt.want {
			t.Fatalf("normalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseAmountAndItems(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"12400", "12,400", "₹12,400", "INR 12400", "Rs. 12,400", "1.24E+4"} {
		d, ok := parseAmount(raw)
		if !ok || !d.Equal(decimal.NewFromInt(12400)) {
			t.Fatalf("parseAmount(%q) = %s ok=%v", raw, d, ok)
		}
	}
	if _, ok := parseAmount("n/a"); ok {
		t.Fatalf("parseAmount must reject text")
	}

	if n, ok := parseItems("3"); !ok || n != 3 {
		t.Fatalf("parseItems(3) = %d ok=%v", n, ok)
	}
	if n, ok := parseItems("2.0"); !ok || n != 2 {
		t.Fatalf("parseItems(2.0) = %d ok=%v", n, ok)
	}
	if _, ok := parseItems("2.5"); ok {
		t.Fatalf("parseItems must reject fractions")
	}
}

func TestImportFormatFromName(t *testing.T) {
	t.Parallel()

	tests := map[string]domain.ImportFormat{
		"orders.xlsx": domain.ImportXLSX,
		"ORDERS.CSV":  domain.ImportCSV,
		"orders":      domain.ImportAuto,
		"orders.xls":  domain.ImportAuto,
	}
	for name, want := range tests {
		if got := domain.ImportFormatFromName(name); got != want {
			t.Fatalf("ImportFormatFromName(%q) = %q, want %q", name, got, want)
		}
	}
}
