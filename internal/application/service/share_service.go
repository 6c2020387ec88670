package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/scrubkh/invoice-api/internal/domain/entity"
	"github.com/scrubkh/invoice-api/pkg/currency"
)

// shareBaseURL is the web share fallback. The native share sheet lives
// in the browser; when it is unavailable or cannot take files, the SPA
// opens this link with the text summary pre-filled.
const shareBaseURL = "https://t.me/share/url"

// ShareService builds the share payload for a finalized invoice.
type ShareService struct {
	invoiceService *InvoiceService
}

// NewShareService creates a new share service
func NewShareService(invoiceService *InvoiceService) *ShareService {
	return &ShareService{invoiceService: invoiceService}
}

// SharePayload is handed to the client's share path. CanAttachImage is
// always false for the fallback URL; the client surfaces that the
// image itself cannot ride along.
type SharePayload struct {
	Title          string `json:"title"`
	Text           string `json:"text"`
	FallbackURL    string `json:"fallback_url"`
	CanAttachImage bool   `json:"can_attach_image"`
}

// BuildShare finalizes the draft and returns the text summary plus the
// prefilled fallback link.
func (s *ShareService) BuildShare(ctx context.Context, draft *entity.Draft) (*SharePayload, error) {
	inv, err := s.invoiceService.Finalize(ctx, draft)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("Invoice from %s for %s on %s - Total: %s",
		inv.SellerName,
		inv.CustomerName,
		inv.Date,
		currency.Format(inv.Total, inv.Currency),
	)

	q := url.Values{}
	q.Set("text", text)
	fallback := shareBaseURL + "?" + q.Encode()

	return &SharePayload{
		Title:          "Invoice " + inv.Date,
		Text:           text,
		FallbackURL:    fallback,
		CanAttachImage: false,
	}, nil
}
