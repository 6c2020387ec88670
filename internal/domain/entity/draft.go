package entity

import (
	"time"

	"github.com/scrubkh/invoice-api/internal/domain/enum"
)

// DraftItem is an in-progress invoice line. Blank names and zero
// numbers are valid here; validation happens only at finalization.
type DraftItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Amount    float64 `json:"amount"`
}

// Draft is the unvalidated invoice editing state. It is persisted to a
// single local slot on every change and cleared after a successful
// export. Last write wins; there is exactly one logical document.
type Draft struct {
	CustomerName    string        `json:"customer_name"`
	Date            string        `json:"date"` // YYYY-MM-DD
	Currency        enum.Currency `json:"currency"`
	Items           []DraftItem   `json:"items"`
	DiscountPercent float64       `json:"discount_percent"`
	DeliveryFee     float64       `json:"delivery_fee"`
}

// NewDraft returns an empty draft dated today in USD.
func NewDraft() *Draft {
	return &Draft{
		Date:     time.Now().Format("2006-01-02"),
		Currency: enum.CurrencyUSD,
		Items:    []DraftItem{},
	}
}

// ItemField names a user-editable line item field for tagged updates.
// The derived amount is not addressable.
type ItemField string

const (
	ItemFieldName      ItemField = "name"
	ItemFieldQuantity  ItemField = "quantity"
	ItemFieldUnitPrice ItemField = "unit_price"
)

// Recompute refreshes the derived amount from quantity and unit price.
func (it *DraftItem) Recompute() {
	it.Amount = ComputeItemAmount(it.Quantity, it.UnitPrice)
}
