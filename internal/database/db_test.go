package database

import (
	"context"
	"path/filepath"
	"testing"
)

func TestNewDBMigratesSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDB(dbPath, nil)
	if err != nil {
		t.Fatalf("NewDB() error = %v", err)
	}
	defer db.Close()

	tables := []string{
		"users", "recipes", "meal_plans", "meal_plan_items",
		"shopping_lists", "shopping_list_items", "fridge_items", "generation_runs",
	}
	for _, table := range tables {
		var name string
		err := db.SQL.QueryRowContext(context.Background(),
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing after migration: %v", table, err)
		}
	}
}

func TestNewDBReopenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDB(dbPath, nil)
	if err != nil {
		t.Fatalf("NewDB() error = %v", err)
	}
	db.Close()

	// A second open must not fail on already-applied migrations.
	db, err = NewDB(dbPath, nil)
	if err != nil {
		t.Fatalf("NewDB() reopen error = %v", err)
	}
	db.Close()
}

func TestForeignKeysCascade(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := NewDB(dbPath, nil)
	if err != nil {
		t.Fatalf("NewDB() error = %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	res, err := db.SQL.ExecContext(ctx,
		"INSERT INTO meal_plans (user_id, week_start) VALUES (1, '2026-08-24')")
	if err != nil {
		t.Fatalf("insert plan: %v", err)
	}
	planID, _ := res.LastInsertId()

	_, err = db.SQL.ExecContext(ctx,
		"INSERT INTO meal_plan_items (meal_plan_id, day_of_week, meal_type) VALUES (?, 0, 'dinner')", planID)
	if err != nil {
		t.Fatalf("insert item: %v", err)
	}

	if _, err := db.SQL.ExecContext(ctx, "DELETE FROM meal_plans WHERE id = ?", planID); err != nil {
		t.Fatalf("delete plan: %v", err)
	}

	var count int
	err = db.SQL.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM meal_plan_items WHERE meal_plan_id = ?", planID).Scan(&count)
	if err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 0 {
		t.Errorf("items survived plan deletion: %d left", count)
	}
}
