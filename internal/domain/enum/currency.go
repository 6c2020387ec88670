package enum

import (
	"database/sql/driver"
	"fmt"
)

// Currency is the invoice currency code. Exactly two currencies are
// supported: US Dollar and Cambodian Riel.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyKHR Currency = "KHR"
)

// Currencies lists every supported currency code.
var Currencies = []Currency{CurrencyUSD, CurrencyKHR}

func (c Currency) String() string {
	return string(c)
}

// Valid reports whether c is one of the supported currency codes.
func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyKHR
}

// Symbol returns the display symbol for the currency.
// KHR uses the riel sign, rendered after the amount.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyUSD:
		return "$"
	case CurrencyKHR:
		return "៛"
	default:
		return ""
	}
}

// FractionDigits returns the number of decimal places shown for the
// currency. Riel has no practical sub-unit.
func (c Currency) FractionDigits() int {
	if c == CurrencyKHR {
		return 0
	}
	return 2
}

// CurrencyFromString parses a currency code, falling back to USD for
// anything outside the supported set.
func CurrencyFromString(code string) Currency {
	if c := Currency(code); c.Valid() {
		return c
	}
	return CurrencyUSD
}

func (c Currency) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *Currency) Scan(value interface{}) error {
	if value == nil {
		*c = CurrencyUSD
		return nil
	}
	switch v := value.(type) {
	case string:
		*c = CurrencyFromString(v)
	case []byte:
		*c = CurrencyFromString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Currency", value)
	}
	return nil
}
