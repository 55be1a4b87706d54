// Package format — представление сумм и дат для людей (локаль en-IN).
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DisplayDateLayout — d/m/yyyy, как принято в en-IN.
const DisplayDateLayout = "2/1/2006"

var (
	inLocale = language.MustParse("en-IN")
	printer  = message.NewPrinter(inLocale)
)

// INR — сумма в рупиях без дробной части с индийской группировкой разрядов: ₹1,23,456.
func INR(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	f, _ := rounded.Abs().Float64()

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	b.WriteString(printer.Sprint(number.Decimal(f, number.MaxFractionDigits(0))))
	return b.String()
}

// Date — ISO-дата в формате d/m/yyyy; непарсящееся значение возвращается как есть.
func Date(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format(DisplayDateLayout)
}
