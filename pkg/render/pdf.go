package render

import (
	"io"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer writes the invoice document as an A5 PDF using the
// built-in Helvetica font. The riel sign is outside the core font
// codepage, so KHR amounts carry the code instead of the symbol.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render writes the document as a PDF to w.
func (r *PDFRenderer) Render(doc *Document, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	usable := pageWidth - 24

	if assetExists(doc.Assets.LogoPath) {
		pdf.ImageOptions(doc.Assets.LogoPath, pageWidth-12-24, 12, 24, 0, false, gofpdf.ImageOptions{}, 0, "")
	}

	for _, row := range doc.Rows {
		switch row.Kind {
		case RowSpacer:
			pdf.Ln(4)
		case RowSeparator:
			x, y := pdf.GetXY()
			pdf.SetDrawColor(204, 204, 204)
			pdf.Line(x, y+1, x+usable, y+1)
			pdf.Ln(4)
		case RowTitle:
			pdf.SetFont("Helvetica", "B", 18)
			pdf.CellFormat(usable, 10, pdfText(row.Left), "", 1, "L", false, 0, "")
		case RowKeyValue, RowItem:
			style := ""
			if row.Bold {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 10)
			pdf.CellFormat(usable/2, 7, pdfText(row.Left), "", 0, "L", false, 0, "")
			pdf.CellFormat(usable/2, 7, pdfText(row.Right), "", 1, "R", false, 0, "")
		default:
			style := ""
			if row.Bold {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 10)
			pdf.CellFormat(usable, 7, pdfText(row.Left), "", 1, "L", false, 0, "")
		}
	}

	// Payment QR assets at the bottom, side by side.
	x := 12.0
	y := pdf.GetY() + 4
	for _, path := range []string{doc.Assets.QRKHQRPath, doc.Assets.QRABAPath} {
		if !assetExists(path) {
			continue
		}
		pdf.ImageOptions(path, x, y, 32, 0, false, gofpdf.ImageOptions{}, 0, "")
		x += 40
	}

	return pdf.Output(w)
}

// pdfText maps strings into the core-font codepage.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "៛", " KHR")
}

func assetExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
