// Package money formats AUD amounts for invoice output.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var auPrinter = message.NewPrinter(language.MustParse("en-AU"))

// FormatAUD renders an amount as Australian dollars with locale grouping,
// e.g. 1234.5 -> "$1,234.50". Negative amounts keep their sign: "-$30.00".
func FormatAUD(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	if f < 0 {
		return auPrinter.Sprintf("-$%.2f", -f)
	}
	return auPrinter.Sprintf("$%.2f", f)
}
