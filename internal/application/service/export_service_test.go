package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/scrubkh/invoice-api/internal/domain/entity"
	"github.com/scrubkh/invoice-api/internal/domain/enum"
	"github.com/scrubkh/invoice-api/pkg/apperror"
	"github.com/scrubkh/invoice-api/pkg/render"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func setupExportService(t *testing.T) (*ExportService, *DraftService) {
	repo := setupTestRepo(t)
	png, err := render.NewPNGRenderer()
	if err != nil {
		t.Fatalf("png renderer: %v", err)
	}
	invoiceService := NewInvoiceService(repo)
	return NewExportService(invoiceService, repo, png, render.Assets{}, t.TempDir()),
		NewDraftService(repo, sequentialIDs())
}

func testDraft() *entity.Draft {
	return &entity.Draft{
		CustomerName: "Sokha",
		Date:         "2025-01-02",
		Currency:     enum.CurrencyUSD,
		Items: []entity.DraftItem{
			{ID: "1", Name: "Soap", Quantity: 2, UnitPrice: 5},
		},
		DiscountPercent: 10,
		DeliveryFee:     2,
	}
}

func TestExportWritesPNGAndClearsDraft(t *testing.T) {
	exportSvc, draftSvc := setupExportService(t)
	ctx := context.Background()

	draftSvc.SaveDraft(ctx, testDraft())

	result, err := exportSvc.Export(ctx, nil, FormatPNG)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if result.Filename != "Scrub_Invoice_Sokha_20250102.png" {
		t.Fatalf("unexpected filename %q", result.Filename)
	}
	if !bytes.HasPrefix(result.Data, pngSignature) {
		t.Fatalf("artifact is not a PNG")
	}

	onDisk, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if !bytes.Equal(onDisk, result.Data) {
		t.Fatalf("stored artifact differs from response data")
	}

	// Successful export empties the slot.
	draft, err := draftSvc.GetDraft(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if draft != nil {
		t.Fatalf("expected cleared draft after export")
	}
}

func TestExportRefusedWhileBusy(t *testing.T) {
	exportSvc, _ := setupExportService(t)

	exportSvc.busy.Store(true)
	_, err := exportSvc.Export(context.Background(), testDraft(), FormatPNG)
	if err != apperror.ErrExportInProgress {
		t.Fatalf("expected busy refusal got %v", err)
	}

	// Flag released: the next attempt goes through.
	exportSvc.busy.Store(false)
	if _, err := exportSvc.Export(context.Background(), testDraft(), FormatPNG); err != nil {
		t.Fatalf("export after release: %v", err)
	}
	if exportSvc.Busy() {
		t.Fatalf("expected busy flag released after completion")
	}
}

func TestExportBusyFlagReleasedOnFailure(t *testing.T) {
	exportSvc, _ := setupExportService(t)

	// Empty slot and no posted draft: finalization fails.
	if _, err := exportSvc.Export(context.Background(), nil, FormatPNG); err == nil {
		t.Fatalf("expected error for empty slot")
	}
	if exportSvc.Busy() {
		t.Fatalf("expected busy flag released after failure")
	}
}

func TestExportNoPartialFileOnUnsupportedFormat(t *testing.T) {
	exportSvc, _ := setupExportService(t)

	if _, err := exportSvc.Export(context.Background(), testDraft(), "gif"); err == nil {
		t.Fatalf("expected unsupported format error")
	}

	entries, err := os.ReadDir(exportSvc.storagePath)
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("read storage: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files, got %d", len(entries))
	}
}

func TestExportFormats(t *testing.T) {
	exportSvc, _ := setupExportService(t)
	ctx := context.Background()

	for _, format := range []string{FormatPDF, FormatXLSX} {
		result, err := exportSvc.Export(ctx, testDraft(), format)
		if err != nil {
			t.Fatalf("export %s: %v", format, err)
		}
		if len(result.Data) == 0 {
			t.Fatalf("empty %s artifact", format)
		}
		if filepath.Ext(result.Filename) != "."+format {
			t.Fatalf("unexpected extension on %q", result.Filename)
		}
	}
}
