package pricing

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var gbPrinter = message.NewPrinter(language.BritishEnglish)

// Round is the presentation rounding for money amounts.
func Round(d decimal.Decimal) decimal.Decimal { return d.Round(MoneyPlaces) }

// FormatGBP renders an amount as pounds sterling with thousands separators,
// e.g. "£1,234.50". Pence come from the fixed-point string; only the whole
// pounds go through the locale printer.
func FormatGBP(d decimal.Decimal) string {
	fixed := Round(d).StringFixed(MoneyPlaces)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	pounds, pence, _ := strings.Cut(fixed, ".")
	if n, err := strconv.ParseInt(pounds, 10, 64); err == nil {
		pounds = gbPrinter.Sprintf("%d", n)
	}
	return sign + "£" + pounds + "." + pence
}

// FormatNullGBP renders TBC for an unresolved price.
func FormatNullGBP(d decimal.NullDecimal) string {
	if !d.Valid {
		return "TBC"
	}
	return FormatGBP(d.Decimal)
}
