// Package fridge tracks what a user already has at home, so searches can
// start from the fridge instead of a typed ingredient list.
package fridge

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"byteright/internal/errs"
	fridgedb "byteright/internal/fridge/fridge_db"
)

const expiryLayout = "2006-01-02"

// Item is one thing in a user's fridge. Expiry is optional.
type Item struct {
	ID        int64
	UserID    int64
	Name      string
	Quantity  string
	Expiry    time.Time // zero when unknown
	CreatedAt time.Time
}

// ExpiresWithin reports whether the item has an expiry date inside the given
// number of days from now.
func (i Item) ExpiresWithin(days int) bool {
	if i.Expiry.IsZero() {
		return false
	}
	return !i.Expiry.After(time.Now().UTC().AddDate(0, 0, days))
}

// Repository is a database-backed repository for fridge items.
type Repository struct {
	queries *fridgedb.Queries
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{queries: fridgedb.New(d)}
}

// Add stores a fridge item for the user and returns its ID. Names are
// lowercased so they line up with parsed recipe ingredients.
func (r *Repository) Add(ctx context.Context, item *Item) (int64, error) {
	item.Name = strings.ToLower(strings.TrimSpace(item.Name))
	if item.Name == "" {
		return 0, errs.Validation("name", "required")
	}
	if item.UserID == 0 {
		return 0, errs.Validation("user_id", "required")
	}

	id, err := r.queries.InsertFridgeItem(ctx, fridgedb.InsertFridgeItemParams{
		UserID:     item.UserID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		ExpiryDate: formatExpiry(item.Expiry),
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert fridge item: %w", err)
	}
	item.ID = id
	return id, nil
}

// Update rewrites a fridge item the user owns.
func (r *Repository) Update(ctx context.Context, item *Item) error {
	item.Name = strings.ToLower(strings.TrimSpace(item.Name))
	if item.Name == "" {
		return errs.Validation("name", "required")
	}
	if err := r.exists(ctx, item.UserID, item.ID); err != nil {
		return err
	}

	err := r.queries.UpdateFridgeItem(ctx, fridgedb.UpdateFridgeItemParams{
		Name:       item.Name,
		Quantity:   item.Quantity,
		ExpiryDate: formatExpiry(item.Expiry),
		ID:         item.ID,
		UserID:     item.UserID,
	})
	if err != nil {
		return fmt.Errorf("failed to update fridge item: %w", err)
	}
	return nil
}

// Remove deletes a fridge item the user owns.
func (r *Repository) Remove(ctx context.Context, userID, itemID int64) error {
	if err := r.exists(ctx, userID, itemID); err != nil {
		return err
	}
	if err := r.queries.DeleteFridgeItem(ctx, fridgedb.DeleteFridgeItemParams{ID: itemID, UserID: userID}); err != nil {
		return fmt.Errorf("failed to delete fridge item: %w", err)
	}
	return nil
}

// List returns the user's fridge contents, soonest expiry first.
func (r *Repository) List(ctx context.Context, userID int64) ([]Item, error) {
	rows, err := r.queries.ListFridgeItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fridge items: %w", err)
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, fromRow(row))
	}
	return items, nil
}

// Names returns the distinct ingredient names in the user's fridge, in
// listing order. This is the input for "cook from my fridge" searches.
func (r *Repository) Names(ctx context.Context, userID int64) ([]string, error) {
	items, err := r.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(items))
	var names []string
	for _, item := range items {
		if _, dup := seen[item.Name]; dup {
			continue
		}
		seen[item.Name] = struct{}{}
		names = append(names, item.Name)
	}
	return names, nil
}

func (r *Repository) exists(ctx context.Context, userID, itemID int64) error {
	_, err := r.queries.GetFridgeItem(ctx, fridgedb.GetFridgeItemParams{ID: itemID, UserID: userID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("fridge item %d: %w", itemID, errs.ErrNotFound)
		}
		return fmt.Errorf("failed to get fridge item: %w", err)
	}
	return nil
}

func fromRow(row fridgedb.FridgeItem) Item {
	item := Item{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Quantity:  row.Quantity,
		CreatedAt: row.CreatedAt,
	}
	if row.ExpiryDate != "" {
		if t, err := time.ParseInLocation(expiryLayout, row.ExpiryDate, time.UTC); err == nil {
			item.Expiry = t
		}
	}
	return item
}

func formatExpiry(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(expiryLayout)
}
