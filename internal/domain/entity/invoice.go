package entity

import (
	"strings"

	"github.com/scrubkh/invoice-api/internal/domain/enum"
)

// SellerName is the fixed business name for this deployment. There is a
// single seller; it is part of the invoice record for display and export
// but never user-editable.
const SellerName = "Scrub"

// UnknownCustomer is substituted when the customer name is blank at
// finalization time.
const UnknownCustomer = "Unknown Customer"

// InvoiceItem is one line of a finalized invoice. Amount is stored
// redundantly for display but always equals Quantity * UnitPrice.
type InvoiceItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Amount    float64 `json:"amount"`
}

// Invoice is an immutable snapshot derived from a draft at preview or
// export time. It satisfies all model invariants and is safe to hand to
// a renderer without further validation.
type Invoice struct {
	ID              string        `json:"id,omitempty"`
	SellerName      string        `json:"seller_name"`
	CustomerName    string        `json:"customer_name"`
	Date            string        `json:"date"` // YYYY-MM-DD
	Currency        enum.Currency `json:"currency"`
	Items           []InvoiceItem `json:"items"`
	Subtotal        float64       `json:"subtotal"`
	DiscountPercent float64       `json:"discount_percent"`
	DiscountAmount  float64       `json:"discount_amount"`
	DeliveryFee     float64       `json:"delivery_fee"`
	Total           float64       `json:"total"`
}

// Totals holds the derived monetary fields of an invoice.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	Total          float64 `json:"total"`
}

// ComputeItemAmount derives a line amount from quantity and unit price.
// Full floating-point precision; rounding is a display-time concern.
func ComputeItemAmount(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}

// ComputeTotals derives subtotal, discount amount and total from the
// given items. Negative discount or delivery values are accepted as-is;
// leniency here is deliberate and callers must not re-validate.
func ComputeTotals(items []InvoiceItem, discountPercent, deliveryFee float64) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Amount
	}
	discountAmount := subtotal * discountPercent / 100
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Total:          subtotal - discountAmount + deliveryFee,
	}
}

// FinalizeDraft converts an editing draft into an invoice snapshot:
// the customer name is trimmed (sentinel on empty), blank-named items
// are dropped, line amounts are recomputed, and totals are derived over
// the surviving items.
func FinalizeDraft(d *Draft) *Invoice {
	customer := strings.TrimSpace(d.CustomerName)
	if customer == "" {
		customer = UnknownCustomer
	}

	items := make([]InvoiceItem, 0, len(d.Items))
	for _, it := range d.Items {
		if strings.TrimSpace(it.Name) == "" {
			continue
		}
		items = append(items, InvoiceItem{
			ID:        it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Amount:    ComputeItemAmount(it.Quantity, it.UnitPrice),
		})
	}

	totals := ComputeTotals(items, d.DiscountPercent, d.DeliveryFee)

	return &Invoice{
		SellerName:      SellerName,
		CustomerName:    customer,
		Date:            d.Date,
		Currency:        enum.CurrencyFromString(string(d.Currency)),
		Items:           items,
		Subtotal:        totals.Subtotal,
		DiscountPercent: d.DiscountPercent,
		DiscountAmount:  totals.DiscountAmount,
		DeliveryFee:     d.DeliveryFee,
		Total:           totals.Total,
	}
}
