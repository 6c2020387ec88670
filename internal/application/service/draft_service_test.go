package service

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/scrubkh/invoice-api/internal/domain/entity"
	"github.com/scrubkh/invoice-api/internal/domain/enum"
	domainrepo "github.com/scrubkh/invoice-api/internal/domain/repository"
	"github.com/scrubkh/invoice-api/internal/infrastructure/repository"
)

func setupTestRepo(t *testing.T) domainrepo.DraftRepository {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entity.DraftRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewDraftRepository(db)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	}
}

func TestDraftSaveLoadRoundTrip(t *testing.T) {
	svc := NewDraftService(setupTestRepo(t), sequentialIDs())
	ctx := context.Background()

	draft := &entity.Draft{
		CustomerName: "Sokha",
		Date:         "2025-03-04",
		Currency:     enum.CurrencyKHR,
		Items: []entity.DraftItem{
			{ID: "a", Name: "Soap", Quantity: 2, UnitPrice: 2000},
		},
		DiscountPercent: 5,
		DeliveryFee:     1500,
	}
	saved := svc.SaveDraft(ctx, draft)

	loaded, err := svc.GetDraft(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil {
		t.Fatalf("expected saved draft")
	}
	if !reflect.DeepEqual(saved, loaded) {
		t.Fatalf("round trip mismatch:\nsaved  %+v\nloaded %+v", saved, loaded)
	}
}

func TestGetDraftEmptySlot(t *testing.T) {
	svc := NewDraftService(setupTestRepo(t), nil)

	draft, err := svc.GetDraft(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if draft != nil {
		t.Fatalf("expected nil draft for empty slot, got %+v", draft)
	}
}

func TestSaveDraftNormalizes(t *testing.T) {
	svc := NewDraftService(setupTestRepo(t), sequentialIDs())

	draft := svc.SaveDraft(context.Background(), &entity.Draft{
		Currency: "XXX",
		Items: []entity.DraftItem{
			{Name: "Soap", Quantity: 3, UnitPrice: 2, Amount: 42},
		},
	})

	if draft.Date == "" {
		t.Fatalf("expected default date")
	}
	if draft.Currency != enum.CurrencyUSD {
		t.Fatalf("expected USD fallback got %v", draft.Currency)
	}
	if draft.Items[0].ID != "item-1" {
		t.Fatalf("expected allocated item ID got %q", draft.Items[0].ID)
	}
	if draft.Items[0].Amount != 6 {
		t.Fatalf("expected recomputed amount 6 got %v", draft.Items[0].Amount)
	}
}

func TestAddItemAllocatesUniqueIDs(t *testing.T) {
	svc := NewDraftService(setupTestRepo(t), sequentialIDs())
	ctx := context.Background()

	_, first, err := svc.AddItem(ctx, &AddItemInput{Name: "Soap", Quantity: 2, UnitPrice: 5})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	draft, second, err := svc.AddItem(ctx, &AddItemInput{Name: "Shampoo", Quantity: 1, UnitPrice: 3})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected unique item IDs, both %q", first.ID)
	}
	if len(draft.Items) != 2 {
		t.Fatalf("expected 2 items got %d", len(draft.Items))
	}
	if first.Amount != 10 {
		t.Fatalf("expected derived amount 10 got %v", first.Amount)
	}
}

func TestUpdateItemRecomputesAmount(t *testing.T) {
	svc := NewDraftService(setupTestRepo(t), sequentialIDs())
	ctx := context.Background()

	_, item, err := svc.AddItem(ctx, &AddItemInput{Name: "Soap", Quantity: 2, UnitPrice: 5})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	draft, err := svc.UpdateItem(ctx, &UpdateItemInput{
		ItemID: item.ID,
		Field:  entity.ItemFieldQuantity,
		Value:  "3",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if draft.Items[0].Amount != 15 {
		t.Fatalf("expected amount 15 got %v", draft.Items[0].Amount)
	}

	// Junk numeric input coerces to 0 at the boundary, never an error.
	draft, err = svc.UpdateItem(ctx, &UpdateItemInput{
		ItemID: item.ID,
		Field:  entity.ItemFieldUnitPrice,
		Value:  "not a number",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if draft.Items[0].UnitPrice != 0 || draft.Items[0].Amount != 0 {
		t.Fatalf("expected zeroed price/amount got %+v", draft.Items[0])
	}
}

func TestUpdateItemRejectsAmountField(t *testing.T) {
	svc := NewDraftService(setupTestRepo(t), sequentialIDs())
	ctx := context.Background()

	_, item, err := svc.AddItem(ctx, &AddItemInput{Name: "Soap", Quantity: 1, UnitPrice: 1})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// The derived amount is never directly editable.
	if _, err := svc.UpdateItem(ctx, &UpdateItemInput{ItemID: item.ID, Field: "amount", Value: "99"}); err == nil {
		t.Fatalf("expected error updating derived amount field")
	}
}

func TestRemoveItem(t *testing.T) {
	svc := NewDraftService(setupTestRepo(t), sequentialIDs())
	ctx := context.Background()

	_, item, err := svc.AddItem(ctx, &AddItemInput{Name: "Soap", Quantity: 1, UnitPrice: 1})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, _, err := svc.AddItem(ctx, &AddItemInput{Name: "Shampoo", Quantity: 1, UnitPrice: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	draft, err := svc.RemoveItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(draft.Items) != 1 || draft.Items[0].Name != "Shampoo" {
		t.Fatalf("unexpected items after remove: %+v", draft.Items)
	}

	if _, err := svc.RemoveItem(ctx, "missing"); err == nil {
		t.Fatalf("expected not found for unknown item")
	}
}

func TestClearDraft(t *testing.T) {
	svc := NewDraftService(setupTestRepo(t), nil)
	ctx := context.Background()

	svc.SaveDraft(ctx, &entity.Draft{CustomerName: "Sokha"})
	if err := svc.ClearDraft(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	draft, err := svc.GetDraft(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if draft != nil {
		t.Fatalf("expected empty slot after clear")
	}
}
