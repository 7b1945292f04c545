package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var esPrinter = message.NewPrinter(language.Spanish)

// FormatPrice renders an amount for display with "." thousands grouping and
// "," decimals, e.g. 1234.56 -> "1.234,56". Payloads always carry raw numbers.
func FormatPrice(amount float64) string {
	return esPrinter.Sprintf("%.2f", amount)
}
