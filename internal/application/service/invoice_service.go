package service

import (
	"context"

	"github.com/scrubkh/invoice-api/internal/domain/entity"
	"github.com/scrubkh/invoice-api/internal/domain/repository"
	"github.com/scrubkh/invoice-api/pkg/apperror"
	"github.com/scrubkh/invoice-api/pkg/currency"
	"github.com/scrubkh/invoice-api/pkg/labels"
)

// InvoiceService turns drafts into immutable invoice snapshots for
// preview and export.
type InvoiceService struct {
	draftRepo repository.DraftRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(draftRepo repository.DraftRepository) *InvoiceService {
	return &InvoiceService{draftRepo: draftRepo}
}

// InvoicePreview is the finalized snapshot plus display-formatted
// strings and the bilingual label table, ready for the document view.
type InvoicePreview struct {
	Invoice   *entity.Invoice   `json:"invoice"`
	Formatted FormattedTotals   `json:"formatted"`
	Labels    map[string]Labels `json:"labels"`
}

// FormattedTotals carries the display strings for the monetary fields.
type FormattedTotals struct {
	Subtotal       string   `json:"subtotal"`
	DiscountAmount string   `json:"discount_amount"`
	DeliveryFee    string   `json:"delivery_fee"`
	Total          string   `json:"total"`
	ItemAmounts    []string `json:"item_amounts"`
}

// Labels is one bilingual label pair.
type Labels struct {
	Khmer   string `json:"km"`
	English string `json:"en"`
}

// Finalize resolves the draft to use (posted draft wins over the saved
// slot) and returns the immutable snapshot.
func (s *InvoiceService) Finalize(ctx context.Context, draft *entity.Draft) (*entity.Invoice, error) {
	if draft == nil {
		saved, err := s.draftRepo.Load(ctx)
		if err != nil {
			return nil, err
		}
		if saved == nil {
			return nil, apperror.NewNotFoundError("Draft")
		}
		draft = saved
	}
	return entity.FinalizeDraft(draft), nil
}

// Preview finalizes the draft and attaches formatted display strings.
func (s *InvoiceService) Preview(ctx context.Context, draft *entity.Draft) (*InvoicePreview, error) {
	inv, err := s.Finalize(ctx, draft)
	if err != nil {
		return nil, err
	}

	amounts := make([]string, len(inv.Items))
	for i, it := range inv.Items {
		amounts[i] = currency.Format(it.Amount, inv.Currency)
	}

	labelTable := make(map[string]Labels)
	for _, key := range labels.Keys() {
		labelTable[key] = Labels{
			Khmer:   labels.T(labels.LangKhmer, key),
			English: labels.T(labels.LangEnglish, key),
		}
	}

	return &InvoicePreview{
		Invoice: inv,
		Formatted: FormattedTotals{
			Subtotal:       currency.Format(inv.Subtotal, inv.Currency),
			DiscountAmount: currency.Format(inv.DiscountAmount, inv.Currency),
			DeliveryFee:    currency.Format(inv.DeliveryFee, inv.Currency),
			Total:          currency.Format(inv.Total, inv.Currency),
			ItemAmounts:    amounts,
		},
		Labels: labelTable,
	}, nil
}
