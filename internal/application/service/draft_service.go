package service

import (
	"context"
	"log"

	"github.com/scrubkh/invoice-api/internal/domain/entity"
	"github.com/scrubkh/invoice-api/internal/domain/repository"
	"github.com/scrubkh/invoice-api/pkg/apperror"
	"github.com/scrubkh/invoice-api/pkg/currency"
	"github.com/scrubkh/invoice-api/pkg/utils"
)

// DraftService manages the single invoice editing draft. Persistence
// is fire-and-forget: a failed save is logged and the session carries
// on with the in-memory state.
type DraftService struct {
	draftRepo repository.DraftRepository
	newItemID func() string
}

// NewDraftService creates a new draft service. idAlloc may be nil, in
// which case UUID item IDs are allocated.
func NewDraftService(draftRepo repository.DraftRepository, idAlloc func() string) *DraftService {
	if idAlloc == nil {
		idAlloc = utils.NewItemID
	}
	return &DraftService{draftRepo: draftRepo, newItemID: idAlloc}
}

// GetDraft loads the saved draft. Returns nil when the slot is empty.
func (s *DraftService) GetDraft(ctx context.Context) (*entity.Draft, error) {
	return s.draftRepo.Load(ctx)
}

// SaveDraft normalizes and persists the posted draft, overwriting the
// slot. The normalized draft is returned even when persistence fails.
func (s *DraftService) SaveDraft(ctx context.Context, draft *entity.Draft) *entity.Draft {
	s.normalize(draft)
	s.persist(ctx, draft)
	return draft
}

// ClearDraft empties the slot.
func (s *DraftService) ClearDraft(ctx context.Context) error {
	return s.draftRepo.Clear(ctx)
}

// AddItemInput represents the input for appending a draft item
type AddItemInput struct {
	Name      string
	Quantity  float64
	UnitPrice float64
}

// AddItem appends a line item with a freshly allocated ID and persists
// the draft.
func (s *DraftService) AddItem(ctx context.Context, input *AddItemInput) (*entity.Draft, *entity.DraftItem, error) {
	draft, err := s.loadOrNew(ctx)
	if err != nil {
		return nil, nil, err
	}

	item := entity.DraftItem{
		ID:        s.newItemID(),
		Name:      input.Name,
		Quantity:  input.Quantity,
		UnitPrice: input.UnitPrice,
	}
	item.Recompute()
	draft.Items = append(draft.Items, item)

	s.persist(ctx, draft)
	return draft, &draft.Items[len(draft.Items)-1], nil
}

// UpdateItemInput is a tagged field update for one line item. Values
// arrive as raw strings; numeric fields go through the lenient amount
// parser so junk input becomes 0 rather than an error.
type UpdateItemInput struct {
	ItemID string
	Field  entity.ItemField
	Value  string
}

// UpdateItem applies a tagged update to one item and recomputes the
// derived amount when the field affects it.
func (s *DraftService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.Draft, error) {
	draft, err := s.draftRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, apperror.NewNotFoundError("Draft")
	}

	idx := -1
	for i := range draft.Items {
		if draft.Items[i].ID == input.ItemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperror.NewNotFoundError("Item")
	}

	item := &draft.Items[idx]
	switch input.Field {
	case entity.ItemFieldName:
		item.Name = input.Value
	case entity.ItemFieldQuantity:
		item.Quantity = currency.ParseAmount(input.Value)
		item.Recompute()
	case entity.ItemFieldUnitPrice:
		item.UnitPrice = currency.ParseAmount(input.Value)
		item.Recompute()
	default:
		return nil, apperror.NewBadRequestError("Unknown item field: " + string(input.Field))
	}

	s.persist(ctx, draft)
	return draft, nil
}

// RemoveItem deletes a line item by ID and persists the draft.
func (s *DraftService) RemoveItem(ctx context.Context, itemID string) (*entity.Draft, error) {
	draft, err := s.draftRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, apperror.NewNotFoundError("Draft")
	}

	items := draft.Items[:0]
	found := false
	for _, it := range draft.Items {
		if it.ID == itemID {
			found = true
			continue
		}
		items = append(items, it)
	}
	if !found {
		return nil, apperror.NewNotFoundError("Item")
	}
	draft.Items = items

	s.persist(ctx, draft)
	return draft, nil
}

func (s *DraftService) loadOrNew(ctx context.Context) (*entity.Draft, error) {
	draft, err := s.draftRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		draft = entity.NewDraft()
	}
	return draft, nil
}

// normalize fills defaults and repairs derived state so the stored
// draft always round-trips: every item gets an ID and a consistent
// amount, the date defaults to today, the currency to USD.
func (s *DraftService) normalize(draft *entity.Draft) {
	base := entity.NewDraft()
	if draft.Date == "" {
		draft.Date = base.Date
	}
	if !draft.Currency.Valid() {
		draft.Currency = base.Currency
	}
	if draft.Items == nil {
		draft.Items = []entity.DraftItem{}
	}
	for i := range draft.Items {
		if draft.Items[i].ID == "" {
			draft.Items[i].ID = s.newItemID()
		}
		draft.Items[i].Recompute()
	}
}

func (s *DraftService) persist(ctx context.Context, draft *entity.Draft) {
	if err := s.draftRepo.Save(ctx, draft); err != nil {
		log.Printf("Warning: failed to persist draft: %v", err)
	}
}
