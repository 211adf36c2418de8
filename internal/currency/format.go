package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders a monetary value with its currency symbol and grouped
// digits, e.g. "$1,234.50". Display-only; the stored document keeps raw
// numbers.
func FormatAmount(code string, amount float64) string {
	return Symbol(code) + printer.Sprintf("%.2f", amount)
}
