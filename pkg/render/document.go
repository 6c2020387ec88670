package render

import (
	"fmt"
	"strings"

	"github.com/scrubkh/invoice-api/internal/domain/entity"
	"github.com/scrubkh/invoice-api/pkg/currency"
	"github.com/scrubkh/invoice-api/pkg/labels"
)

// Row kinds
const (
	RowTitle     = "title"
	RowText      = "text"
	RowKeyValue  = "keyvalue"
	RowItem      = "item"
	RowSeparator = "separator"
	RowSpacer    = "spacer"
)

// Assets holds the fixed image asset paths referenced by the rendered
// document. Missing files degrade to a text-only document.
type Assets struct {
	LogoPath   string
	QRKHQRPath string
	QRABAPath  string
}

// Row is one layout line of the invoice document. KeyValue and Item
// rows carry a left part and a right-aligned part.
type Row struct {
	Kind  string
	Left  string
	Right string
	Bold  bool
}

// Document is the declarative layout of a finalized invoice, consumed
// by the PNG, PDF and XLSX encoders.
type Document struct {
	Invoice *entity.Invoice
	Assets  Assets
	Rows    []Row
}

// BuildDocument lays out a finalized invoice. Monetary values are
// formatted here; encoders never touch raw numbers.
func BuildDocument(inv *entity.Invoice, assets Assets) *Document {
	d := &Document{Invoice: inv, Assets: assets}

	d.add(Row{Kind: RowTitle, Left: labels.T(labels.LangEnglish, "invoice"), Bold: true})
	d.add(Row{Kind: RowText, Left: inv.SellerName, Bold: true})
	d.add(Row{Kind: RowSpacer})
	d.add(Row{Kind: RowKeyValue, Left: labels.T(labels.LangEnglish, "customer"), Right: inv.CustomerName})
	d.add(Row{Kind: RowKeyValue, Left: labels.T(labels.LangEnglish, "date"), Right: inv.Date})
	d.add(Row{Kind: RowSeparator})

	d.add(Row{
		Kind:  RowItem,
		Left:  labels.T(labels.LangEnglish, "item"),
		Right: labels.T(labels.LangEnglish, "amount"),
		Bold:  true,
	})
	for _, it := range inv.Items {
		d.add(Row{
			Kind:  RowItem,
			Left:  fmt.Sprintf("%s x %s", trimFloat(it.Quantity), it.Name),
			Right: currency.Format(it.Amount, inv.Currency),
		})
	}
	d.add(Row{Kind: RowSeparator})

	d.add(Row{Kind: RowKeyValue, Left: labels.T(labels.LangEnglish, "subtotal"), Right: currency.Format(inv.Subtotal, inv.Currency)})
	if inv.DiscountPercent != 0 {
		d.add(Row{
			Kind:  RowKeyValue,
			Left:  fmt.Sprintf("%s (%s%%)", labels.T(labels.LangEnglish, "discount"), trimFloat(inv.DiscountPercent)),
			Right: "-" + currency.Format(inv.DiscountAmount, inv.Currency),
		})
	}
	if inv.DeliveryFee != 0 {
		d.add(Row{Kind: RowKeyValue, Left: labels.T(labels.LangEnglish, "delivery_fee"), Right: currency.Format(inv.DeliveryFee, inv.Currency)})
	}
	d.add(Row{Kind: RowKeyValue, Left: labels.T(labels.LangEnglish, "total"), Right: currency.Format(inv.Total, inv.Currency), Bold: true})

	d.add(Row{Kind: RowSpacer})
	d.add(Row{Kind: RowText, Left: labels.T(labels.LangEnglish, "payment_scan")})
	d.add(Row{Kind: RowText, Left: labels.T(labels.LangEnglish, "thank_you")})

	return d
}

func (d *Document) add(r Row) {
	d.Rows = append(d.Rows, r)
}

// PlainText renders the document as monospaced text, left parts padded
// against right-aligned parts. Used for logs and as a last-resort
// share body.
func (d *Document) PlainText(width int) string {
	if width <= 0 {
		width = 42
	}
	var b strings.Builder
	for _, r := range d.Rows {
		switch r.Kind {
		case RowSeparator:
			b.WriteString(strings.Repeat("-", width))
		case RowSpacer:
		case RowKeyValue, RowItem:
			spaces := width - len([]rune(r.Left)) - len([]rune(r.Right))
			if spaces < 1 {
				spaces = 1
			}
			b.WriteString(r.Left)
			b.WriteString(strings.Repeat(" ", spaces))
			b.WriteString(r.Right)
		default:
			b.WriteString(r.Left)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// trimFloat formats a float without trailing zeros: 2 -> "2", 1.5 -> "1.5".
func trimFloat(v float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.3f", v), "0")
	return strings.TrimRight(s, ".")
}
