package service

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/scrubkh/invoice-api/internal/domain/entity"
	"github.com/scrubkh/invoice-api/internal/domain/repository"
	"github.com/scrubkh/invoice-api/pkg/apperror"
	"github.com/scrubkh/invoice-api/pkg/render"
	"github.com/scrubkh/invoice-api/pkg/utils"
)

// Export formats
const (
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

var contentTypes = map[string]string{
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// ExportService renders export artifacts from the current draft. A
// busy flag refuses re-entry while a render is in flight; the flag is
// released on both success and failure. On success the artifact is
// written to the storage directory and the draft slot is cleared.
type ExportService struct {
	invoiceService *InvoiceService
	draftRepo      repository.DraftRepository
	png            *render.PNGRenderer
	pdf            *render.PDFRenderer
	xlsx           *render.XLSXRenderer
	assets         render.Assets
	storagePath    string
	busy           atomic.Bool
}

// NewExportService creates a new export service
func NewExportService(
	invoiceService *InvoiceService,
	draftRepo repository.DraftRepository,
	png *render.PNGRenderer,
	assets render.Assets,
	storagePath string,
) *ExportService {
	return &ExportService{
		invoiceService: invoiceService,
		draftRepo:      draftRepo,
		png:            png,
		pdf:            render.NewPDFRenderer(),
		xlsx:           render.NewXLSXRenderer(),
		assets:         assets,
		storagePath:    storagePath,
	}
}

// ExportResult is a rendered artifact plus its stored location.
type ExportResult struct {
	Filename    string `json:"filename"`
	Path        string `json:"path"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// Export finalizes the draft, renders it in the requested format and
// writes the artifact. The artifact is rendered fully in memory first
// so a render failure never leaves a partial file behind.
func (s *ExportService) Export(ctx context.Context, draft *entity.Draft, format string) (*ExportResult, error) {
	if format == "" {
		format = FormatPNG
	}
	contentType, ok := contentTypes[format]
	if !ok {
		return nil, apperror.NewBadRequestError("Unsupported export format: " + format)
	}

	if !s.busy.CompareAndSwap(false, true) {
		return nil, apperror.ErrExportInProgress
	}
	defer s.busy.Store(false)

	inv, err := s.invoiceService.Finalize(ctx, draft)
	if err != nil {
		return nil, err
	}

	doc := render.BuildDocument(inv, s.assets)

	var buf bytes.Buffer
	switch format {
	case FormatPNG:
		err = s.png.Render(doc, &buf)
	case FormatPDF:
		err = s.pdf.Render(doc, &buf)
	case FormatXLSX:
		err = s.xlsx.Render(doc, &buf)
	}
	if err != nil {
		log.Printf("Error: export render failed: %v", err)
		return nil, apperror.ErrExportFailed
	}

	filename := utils.ExportFilename(inv.CustomerName, inv.Date, format)
	path := filepath.Join(s.storagePath, filename)
	if err := os.MkdirAll(s.storagePath, 0o755); err != nil {
		log.Printf("Error: export storage dir: %v", err)
		return nil, apperror.ErrExportFailed
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		log.Printf("Error: export write failed: %v", err)
		return nil, apperror.ErrExportFailed
	}

	// The slot is only cleared after the artifact is safely on disk; a
	// failed clear leaves a stale draft, never a lost export.
	if err := s.draftRepo.Clear(ctx); err != nil {
		log.Printf("Warning: failed to clear draft after export: %v", err)
	}

	return &ExportResult{
		Filename:    filename,
		Path:        path,
		ContentType: contentType,
		Data:        buf.Bytes(),
	}, nil
}

// Busy reports whether an export is currently in flight.
func (s *ExportService) Busy() bool {
	return s.busy.Load()
}
