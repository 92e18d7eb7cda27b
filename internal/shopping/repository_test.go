package shopping

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"byteright/internal/database"
	"byteright/internal/errs"
	"byteright/internal/ingredient"
)

func testDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("NewDB() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleList() *List {
	return &List{
		UserID:          1,
		MealPlanID:      7,
		EstimatedTotal:  12.40,
		CalculatedTotal: 9.80,
		Items: []Item{
			{IngredientName: "pasta", Quantity: "400", Unit: "g",
				Category: ingredient.CategoryStoreCupboard, EstimatedPrice: 0.80},
			{IngredientName: "onion", Quantity: "2", Unit: "",
				Category: ingredient.CategoryFreshProduce, EstimatedPrice: 0.30},
		},
	}
}

func TestRepositoryReplaceAndGet(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db.SQL)
	ctx := context.Background()

	list := sampleList()
	listID, err := repo.Replace(ctx, list)
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	loaded, err := repo.GetByPlan(ctx, 1, 7)
	if err != nil {
		t.Fatalf("GetByPlan() error = %v", err)
	}
	if loaded.ID != listID {
		t.Errorf("list ID = %d, want %d", loaded.ID, listID)
	}
	if loaded.EstimatedTotal != 12.40 || loaded.CalculatedTotal != 9.80 {
		t.Errorf("totals = (%v, %v), want (12.40, 9.80)", loaded.EstimatedTotal, loaded.CalculatedTotal)
	}
	if len(loaded.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(loaded.Items))
	}
	if loaded.Items[0].IngredientName != "pasta" || loaded.Items[0].Category != ingredient.CategoryStoreCupboard {
		t.Errorf("first item = %#v", loaded.Items[0])
	}
}

func TestRepositoryReplaceIsIdempotentPerPlan(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db.SQL)
	ctx := context.Background()

	if _, err := repo.Replace(ctx, sampleList()); err != nil {
		t.Fatalf("first Replace() error = %v", err)
	}

	replacement := sampleList()
	replacement.Items = replacement.Items[:1]
	if _, err := repo.Replace(ctx, replacement); err != nil {
		t.Fatalf("second Replace() error = %v", err)
	}

	loaded, err := repo.GetByPlan(ctx, 1, 7)
	if err != nil {
		t.Fatalf("GetByPlan() error = %v", err)
	}
	if len(loaded.Items) != 1 {
		t.Errorf("got %d items after replacement, want 1", len(loaded.Items))
	}
}

func TestRepositoryToggleItem(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db.SQL)
	ctx := context.Background()

	list := sampleList()
	listID, err := repo.Replace(ctx, list)
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	itemID := list.Items[0].ID
	if itemID == 0 {
		t.Fatal("Replace() did not backfill item IDs")
	}

	if err := repo.ToggleItem(ctx, 1, listID, itemID); err != nil {
		t.Fatalf("ToggleItem() error = %v", err)
	}

	loaded, err := repo.GetByPlan(ctx, 1, 7)
	if err != nil {
		t.Fatalf("GetByPlan() error = %v", err)
	}
	var checked bool
	for _, item := range loaded.Items {
		if item.ID == itemID {
			checked = item.Checked
		}
	}
	if !checked {
		t.Error("item not checked after toggle")
	}

	// Toggling through a user who does not own the list must fail.
	if err := repo.ToggleItem(ctx, 2, listID, itemID); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("foreign toggle = %v, want ErrNotFound", err)
	}
}

func TestRepositoryAddAndRemoveItem(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db.SQL)
	ctx := context.Background()

	list := sampleList()
	listID, err := repo.Replace(ctx, list)
	if err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	extra := &Item{IngredientName: "kitchen roll", Category: ingredient.CategoryOther, EstimatedPrice: 1.50}
	itemID, err := repo.AddItem(ctx, 1, listID, extra)
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	loaded, _ := repo.GetByPlan(ctx, 1, 7)
	if len(loaded.Items) != 3 {
		t.Fatalf("got %d items after add, want 3", len(loaded.Items))
	}

	if err := repo.RemoveItem(ctx, 1, listID, itemID); err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	loaded, _ = repo.GetByPlan(ctx, 1, 7)
	if len(loaded.Items) != 2 {
		t.Errorf("got %d items after remove, want 2", len(loaded.Items))
	}

	if _, err := repo.AddItem(ctx, 1, listID, &Item{}); !errs.IsValidation(err) {
		t.Errorf("empty item add = %v, want validation error", err)
	}
}

func TestRepositoryGetMissingList(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db.SQL)

	if _, err := repo.GetByPlan(context.Background(), 1, 999); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("GetByPlan() = %v, want ErrNotFound", err)
	}
}
