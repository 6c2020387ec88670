package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/scrubkh/invoice-api/pkg/currency"
	"github.com/scrubkh/invoice-api/pkg/labels"
)

// XLSXRenderer writes the invoice as a single-sheet workbook with one
// row per line item and a totals block. Labels are bilingual here;
// spreadsheets have no glyph limitation.
type XLSXRenderer struct{}

func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

const xlsxSheet = "Invoice"

// Render writes the workbook to w.
func (r *XLSXRenderer) Render(doc *Document, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return fmt.Errorf("render: new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("render: drop default sheet: %w", err)
	}

	inv := doc.Invoice
	row := 1
	set := func(cells ...interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &cells); err != nil {
			return err
		}
		row++
		return nil
	}

	lines := [][]interface{}{
		{labels.Pair("invoice"), inv.SellerName},
		{labels.Pair("customer"), inv.CustomerName},
		{labels.Pair("date"), inv.Date},
		{},
		{labels.Pair("item"), labels.Pair("quantity"), labels.Pair("unit_price"), labels.Pair("amount")},
	}
	for _, l := range lines {
		if err := set(l...); err != nil {
			return err
		}
	}

	for _, it := range inv.Items {
		if err := set(it.Name, it.Quantity, it.UnitPrice, currency.Format(it.Amount, inv.Currency)); err != nil {
			return err
		}
	}

	totals := [][]interface{}{
		{},
		{labels.Pair("subtotal"), currency.Format(inv.Subtotal, inv.Currency)},
		{labels.Pair("discount"), "-" + currency.Format(inv.DiscountAmount, inv.Currency)},
		{labels.Pair("delivery_fee"), currency.Format(inv.DeliveryFee, inv.Currency)},
		{labels.Pair("total"), currency.Format(inv.Total, inv.Currency)},
	}
	for _, l := range totals {
		if err := set(l...); err != nil {
			return err
		}
	}

	return f.Write(w)
}
