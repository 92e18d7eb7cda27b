package shopping

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"byteright/internal/errs"
	"byteright/internal/ingredient"
	shoppingdb "byteright/internal/shopping/shopping_db"
)

// Repository is a database-backed repository for shopping lists.
type Repository struct {
	queries *shoppingdb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: shoppingdb.New(d),
		db:      d,
	}
}

// Replace stores the list for its meal plan, removing any previous list for
// the same plan first. Regenerating a plan's list is therefore idempotent.
func (r *Repository) Replace(ctx context.Context, list *List) (int64, error) {
	if list.UserID == 0 {
		return 0, errs.Validation("user_id", "required")
	}
	if list.MealPlanID == 0 {
		return 0, errs.Validation("meal_plan_id", "required")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)

	err = q.DeleteShoppingListByPlan(ctx, shoppingdb.DeleteShoppingListByPlanParams{
		UserID:     list.UserID,
		MealPlanID: list.MealPlanID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to replace existing list: %w", err)
	}

	listID, err := q.InsertShoppingList(ctx, shoppingdb.InsertShoppingListParams{
		UserID:          list.UserID,
		MealPlanID:      list.MealPlanID,
		EstimatedTotal:  list.EstimatedTotal,
		CalculatedTotal: list.CalculatedTotal,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert shopping list: %w", err)
	}

	for i := range list.Items {
		item := &list.Items[i]
		itemID, err := q.InsertShoppingListItem(ctx, insertItemParams(listID, item))
		if err != nil {
			return 0, fmt.Errorf("failed to insert shopping list item: %w", err)
		}
		item.ID = itemID
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit shopping list: %w", err)
	}

	list.ID = listID
	return listID, nil
}

// GetByPlan loads the shopping list for a meal plan, items included.
func (r *Repository) GetByPlan(ctx context.Context, userID, mealPlanID int64) (*List, error) {
	row, err := r.queries.GetShoppingListByPlan(ctx, shoppingdb.GetShoppingListByPlanParams{
		UserID:     userID,
		MealPlanID: mealPlanID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("shopping list for plan %d: %w", mealPlanID, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get shopping list: %w", err)
	}
	return r.loadList(ctx, row)
}

// ToggleItem flips an item's checked state. The list must belong to the user.
func (r *Repository) ToggleItem(ctx context.Context, userID, listID, itemID int64) error {
	if err := r.ownList(ctx, userID, listID); err != nil {
		return err
	}
	err := r.queries.ToggleShoppingListItem(ctx, shoppingdb.ToggleShoppingListItemParams{
		ID:             itemID,
		ShoppingListID: listID,
	})
	if err != nil {
		return fmt.Errorf("failed to toggle shopping list item: %w", err)
	}
	return nil
}

// AddItem appends a manual item to an existing list and returns its ID.
func (r *Repository) AddItem(ctx context.Context, userID, listID int64, item *Item) (int64, error) {
	if item.IngredientName == "" {
		return 0, errs.Validation("ingredient_name", "required")
	}
	if err := r.ownList(ctx, userID, listID); err != nil {
		return 0, err
	}

	itemID, err := r.queries.InsertShoppingListItem(ctx, insertItemParams(listID, item))
	if err != nil {
		return 0, fmt.Errorf("failed to add shopping list item: %w", err)
	}
	item.ID = itemID
	return itemID, nil
}

// RemoveItem deletes an item from a list owned by the user.
func (r *Repository) RemoveItem(ctx context.Context, userID, listID, itemID int64) error {
	if err := r.ownList(ctx, userID, listID); err != nil {
		return err
	}
	err := r.queries.DeleteShoppingListItem(ctx, shoppingdb.DeleteShoppingListItemParams{
		ID:             itemID,
		ShoppingListID: listID,
	})
	if err != nil {
		return fmt.Errorf("failed to remove shopping list item: %w", err)
	}
	return nil
}

func (r *Repository) ownList(ctx context.Context, userID, listID int64) error {
	_, err := r.queries.GetShoppingListByID(ctx, shoppingdb.GetShoppingListByIDParams{
		ID:     listID,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("shopping list %d: %w", listID, errs.ErrNotFound)
		}
		return fmt.Errorf("failed to get shopping list: %w", err)
	}
	return nil
}

func (r *Repository) loadList(ctx context.Context, row shoppingdb.ShoppingList) (*List, error) {
	itemRows, err := r.queries.ListShoppingListItems(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping list items: %w", err)
	}

	items := make([]Item, 0, len(itemRows))
	for _, ir := range itemRows {
		items = append(items, Item{
			ID:             ir.ID,
			IngredientName: ir.IngredientName,
			Quantity:       ir.Quantity,
			Unit:           ir.Unit,
			Category:       ingredient.Category(ir.Category),
			EstimatedPrice: ir.EstimatedPrice,
			Checked:        ir.Checked,
		})
	}

	return &List{
		ID:              row.ID,
		UserID:          row.UserID,
		MealPlanID:      row.MealPlanID,
		Items:           items,
		EstimatedTotal:  row.EstimatedTotal,
		CalculatedTotal: row.CalculatedTotal,
		CreatedAt:       row.CreatedAt,
	}, nil
}

func insertItemParams(listID int64, item *Item) shoppingdb.InsertShoppingListItemParams {
	return shoppingdb.InsertShoppingListItemParams{
		ShoppingListID: listID,
		IngredientName: item.IngredientName,
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		Category:       string(item.Category),
		EstimatedPrice: item.EstimatedPrice,
		Checked:        item.Checked,
	}
}
