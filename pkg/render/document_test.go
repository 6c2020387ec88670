package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/scrubkh/invoice-api/internal/domain/entity"
	"github.com/scrubkh/invoice-api/internal/domain/enum"
)

func testInvoice() *entity.Invoice {
	return &entity.Invoice{
		SellerName:   entity.SellerName,
		CustomerName: "Sokha",
		Date:         "2025-01-02",
		Currency:     enum.CurrencyUSD,
		Items: []entity.InvoiceItem{
			{ID: "1", Name: "Soap", Quantity: 2, UnitPrice: 5, Amount: 10},
		},
		Subtotal:        10,
		DiscountPercent: 10,
		DiscountAmount:  1,
		DeliveryFee:     2,
		Total:           11,
	}
}

func TestBuildDocumentRows(t *testing.T) {
	doc := BuildDocument(testInvoice(), Assets{})
	text := doc.PlainText(42)

	for _, want := range []string{"Sokha", "2025-01-02", "2 x Soap", "$10.00", "-$1.00", "$2.00", "$11.00"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in document:\n%s", want, text)
		}
	}
}

func TestBuildDocumentSkipsZeroAdjustments(t *testing.T) {
	inv := testInvoice()
	inv.DiscountPercent = 0
	inv.DiscountAmount = 0
	inv.DeliveryFee = 0
	inv.Total = 10

	doc := BuildDocument(inv, Assets{})
	text := doc.PlainText(42)

	if strings.Contains(text, "Discount") {
		t.Fatalf("unexpected discount row:\n%s", text)
	}
	if strings.Contains(text, "Delivery") {
		t.Fatalf("unexpected delivery row:\n%s", text)
	}
}

func TestPNGRender(t *testing.T) {
	r, err := NewPNGRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(BuildDocument(testInvoice(), Assets{}), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}

	signature := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if !bytes.HasPrefix(buf.Bytes(), signature) {
		t.Fatalf("output is not a PNG")
	}
}

func TestPNGRenderMissingAssetsTolerated(t *testing.T) {
	r, err := NewPNGRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	assets := Assets{
		LogoPath:   "does/not/exist.png",
		QRKHQRPath: "also/missing.png",
	}
	var buf bytes.Buffer
	if err := r.Render(BuildDocument(testInvoice(), assets), &buf); err != nil {
		t.Fatalf("render with missing assets: %v", err)
	}
}

func TestPDFRender(t *testing.T) {
	var buf bytes.Buffer
	if err := NewPDFRenderer().Render(BuildDocument(testInvoice(), Assets{}), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestXLSXRender(t *testing.T) {
	var buf bytes.Buffer
	if err := NewXLSXRenderer().Render(BuildDocument(testInvoice(), Assets{}), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	// XLSX is a zip archive.
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Fatalf("output is not a workbook")
	}
}

func TestTrimFloat(t *testing.T) {
	cases := map[float64]string{
		2:     "2",
		1.5:   "1.5",
		0.25:  "0.25",
		10.75: "10.75",
	}
	for in, want := range cases {
		if got := trimFloat(in); got != want {
			t.Fatalf("trimFloat(%v) = %q, want %q", in, got, want)
		}
	}
}
