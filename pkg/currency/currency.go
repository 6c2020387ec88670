package currency

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/scrubkh/invoice-api/internal/domain/enum"
)

// The printer is pinned to English so grouping separators and decimal
// points never depend on the host locale.
var printer = message.NewPrinter(language.English)

// Format renders an amount for one of the two supported currencies.
// USD: leading "$", grouping separators, exactly two decimals.
// KHR: grouping separators, no decimals, trailing riel sign.
// Negative amounts keep the standard numeric sign; callers add any
// semantic prefix (e.g. "-" on a discount line) themselves.
func Format(amount float64, c enum.Currency) string {
	switch c {
	case enum.CurrencyKHR:
		return printer.Sprintf("%.0f", amount) + c.Symbol()
	default:
		return c.Symbol() + printer.Sprintf("%.2f", amount)
	}
}

// ParseAmount parses a free-typed amount string. Every rune that is not
// a digit or a decimal point is stripped before parsing; anything that
// still fails to parse yields 0. It never returns an error.
func ParseAmount(text string) float64 {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
