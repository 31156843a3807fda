package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var copPrinter = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP renders an amount the way the storefront shows prices,
// e.g. 50000 -> "$ 50.000".
func FormatCOP(amount int) string {
	return copPrinter.Sprintf("$ %v", number.Decimal(amount))
}
