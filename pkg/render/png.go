package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	_ "image/jpeg" // asset decoding
)

// PNG layout constants (pixels).
const (
	pngWidth      = 640
	pngMargin     = 32
	pngLineHeight = 30
	pngTitleSize  = 28
	pngBodySize   = 16
	pngLogoSize   = 96
	pngQRSize     = 128
)

// PNGRenderer rasterizes an invoice document. The bundled Go fonts
// carry Latin glyphs only, so the raster uses the English label set.
type PNGRenderer struct {
	regular font.Face
	bold    font.Face
	title   font.Face
}

// NewPNGRenderer parses the bundled fonts once and returns a reusable
// renderer. Faces are not safe for concurrent use; the export service
// serializes renders behind its busy flag.
func NewPNGRenderer() (*PNGRenderer, error) {
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse regular font: %w", err)
	}
	bld, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse bold font: %w", err)
	}

	regular, err := opentype.NewFace(reg, &opentype.FaceOptions{Size: pngBodySize, DPI: 72})
	if err != nil {
		return nil, fmt.Errorf("render: regular face: %w", err)
	}
	boldFace, err := opentype.NewFace(bld, &opentype.FaceOptions{Size: pngBodySize, DPI: 72})
	if err != nil {
		return nil, fmt.Errorf("render: bold face: %w", err)
	}
	titleFace, err := opentype.NewFace(bld, &opentype.FaceOptions{Size: pngTitleSize, DPI: 72})
	if err != nil {
		return nil, fmt.Errorf("render: title face: %w", err)
	}

	return &PNGRenderer{regular: regular, bold: boldFace, title: titleFace}, nil
}

// Render draws the document and writes a PNG to w.
func (r *PNGRenderer) Render(doc *Document, w io.Writer) error {
	height := pngMargin*2 + pngLineHeight*(len(doc.Rows)+1) + pngQRSize + pngLineHeight
	img := image.NewRGBA(image.Rect(0, 0, pngWidth, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	y := pngMargin + pngLineHeight

	if logo := loadAsset(doc.Assets.LogoPath); logo != nil {
		target := image.Rect(pngWidth-pngMargin-pngLogoSize, pngMargin, pngWidth-pngMargin, pngMargin+pngLogoSize)
		draw.ApproxBiLinear.Scale(img, target, logo, logo.Bounds(), draw.Over, nil)
	}

	for _, row := range doc.Rows {
		switch row.Kind {
		case RowSpacer:
		case RowSeparator:
			r.drawRule(img, y-pngLineHeight/3)
		case RowTitle:
			r.drawText(img, r.title, pngMargin, y, row.Left)
		case RowKeyValue, RowItem:
			face := r.regular
			if row.Bold {
				face = r.bold
			}
			r.drawText(img, face, pngMargin, y, row.Left)
			r.drawTextRight(img, face, pngWidth-pngMargin, y, row.Right)
		default:
			face := r.regular
			if row.Bold {
				face = r.bold
			}
			r.drawText(img, face, pngMargin, y, row.Left)
		}
		y += pngLineHeight
	}

	// Payment QR codes side by side under the document body.
	x := pngMargin
	for _, path := range []string{doc.Assets.QRKHQRPath, doc.Assets.QRABAPath} {
		if qr := loadAsset(path); qr != nil {
			target := image.Rect(x, y, x+pngQRSize, y+pngQRSize)
			draw.ApproxBiLinear.Scale(img, target, qr, qr.Bounds(), draw.Over, nil)
			x += pngQRSize + pngMargin
		}
	}

	return png.Encode(w, img)
}

func (r *PNGRenderer) drawText(img *image.RGBA, face font.Face, x, y int, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func (r *PNGRenderer) drawTextRight(img *image.RGBA, face font.Face, right, y int, s string) {
	width := font.MeasureString(face, s)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(right) - width, Y: fixed.I(y)},
	}
	d.DrawString(s)
}

func (r *PNGRenderer) drawRule(img *image.RGBA, y int) {
	grey := color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	for x := pngMargin; x < pngWidth-pngMargin; x++ {
		img.Set(x, y, grey)
	}
}

// loadAsset decodes an image asset; a missing or unreadable file is
// not an error, the document just renders without it.
func loadAsset(path string) image.Image {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil
	}
	return img
}
