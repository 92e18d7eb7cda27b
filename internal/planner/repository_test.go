package planner

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"byteright/internal/database"
	"byteright/internal/errs"
	"byteright/internal/recipe"
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

func storedRecipe(t *testing.T, db *database.DB, title string, cost float64) int64 {
	t.Helper()
	repo := recipe.NewRepository(db.SQL)
	id, err := repo.Save(context.Background(), &recipe.Recipe{
		Title:         title,
		Ingredients:   []string{"200g pasta"},
		Servings:      2,
		EstimatedCost: cost,
	})
	if err != nil {
		t.Fatalf("save recipe: %v", err)
	}
	return id
}

func TestRepositorySaveAndGetPlan(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db.SQL)
	ctx := context.Background()

	recipeID := storedRecipe(t, db, "Pasta Bake", 2.00)
	weekStart := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	plan := &Plan{
		UserID:             1,
		WeekStart:          weekStart,
		BudgetTarget:       30,
		TotalEstimatedCost: 14,
		Source:             "local",
		Items: []Item{
			{DayOfWeek: 0, MealType: MealBreakfast, Ref: RecipeRef{RecipeID: recipeID}},
			{DayOfWeek: 0, MealType: MealDinner, Ref: CustomMeal{Name: "Takeaway Curry", ExternalID: 99}},
		},
	}

	planID, err := repo.SavePlan(ctx, plan)
	if err != nil {
		t.Fatalf("SavePlan() error = %v", err)
	}

	loaded, err := repo.GetPlan(ctx, 1, planID)
	if err != nil {
		t.Fatalf("GetPlan() error = %v", err)
	}
	if !loaded.WeekStart.Equal(weekStart) {
		t.Errorf("WeekStart = %v, want %v", loaded.WeekStart, weekStart)
	}
	if loaded.BudgetTarget != 30 || loaded.TotalEstimatedCost != 14 {
		t.Errorf("totals = (%v, %v), want (30, 14)", loaded.BudgetTarget, loaded.TotalEstimatedCost)
	}
	if len(loaded.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(loaded.Items))
	}

	first := loaded.Items[0]
	if ref, ok := first.Ref.(RecipeRef); !ok || ref.RecipeID != recipeID {
		t.Errorf("first item ref = %#v, want RecipeRef{%d}", first.Ref, recipeID)
	}
	if first.RecipeTitle != "Pasta Bake" {
		t.Errorf("joined title = %q, want Pasta Bake", first.RecipeTitle)
	}
	if first.EstimatedCost != 2.00 {
		t.Errorf("joined cost = %v, want 2.00", first.EstimatedCost)
	}

	second := loaded.Items[1]
	meal, ok := second.Ref.(CustomMeal)
	if !ok {
		t.Fatalf("second item ref = %#v, want CustomMeal", second.Ref)
	}
	if meal.Name != "Takeaway Curry" || meal.ExternalID != 99 {
		t.Errorf("custom meal = %#v", meal)
	}
}

func TestRepositorySavePlanReplacesSameWeek(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db.SQL)
	ctx := context.Background()

	weekStart := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	base := Plan{
		UserID:    1,
		WeekStart: weekStart,
		Source:    "local",
		Items:     []Item{{DayOfWeek: 0, MealType: MealDinner, Ref: CustomMeal{Name: "Soup"}}},
	}

	first := base
	if _, err := repo.SavePlan(ctx, &first); err != nil {
		t.Fatalf("first SavePlan() error = %v", err)
	}

	second := base
	second.Items = []Item{{DayOfWeek: 1, MealType: MealDinner, Ref: CustomMeal{Name: "Stew"}}}
	secondID, err := repo.SavePlan(ctx, &second)
	if err != nil {
		t.Fatalf("second SavePlan() error = %v", err)
	}

	// Only the replacement survives for that week.
	loaded, err := repo.GetPlanForWeek(ctx, 1, weekStart.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("GetPlanForWeek() error = %v", err)
	}
	if loaded.ID != secondID {
		t.Errorf("week resolves to plan %d, want %d", loaded.ID, secondID)
	}
	if len(loaded.Items) != 1 || loaded.Items[0].Ref.(CustomMeal).Name != "Stew" {
		t.Errorf("replaced plan items = %#v", loaded.Items)
	}

	if _, err := repo.GetPlan(ctx, 1, first.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("old plan lookup = %v, want ErrNotFound", err)
	}
}

func TestRepositoryPlanOwnership(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db.SQL)
	ctx := context.Background()

	plan := &Plan{
		UserID:    1,
		WeekStart: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		Source:    "local",
		Items:     []Item{{DayOfWeek: 0, MealType: MealDinner, Ref: CustomMeal{Name: "Soup"}}},
	}
	planID, err := repo.SavePlan(ctx, plan)
	if err != nil {
		t.Fatalf("SavePlan() error = %v", err)
	}

	if _, err := repo.GetPlan(ctx, 2, planID); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("other user's lookup = %v, want ErrNotFound", err)
	}
	if err := repo.DeletePlan(ctx, 2, planID); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("other user's delete = %v, want ErrNotFound", err)
	}

	if err := repo.DeletePlan(ctx, 1, planID); err != nil {
		t.Fatalf("DeletePlan() error = %v", err)
	}
	if _, err := repo.GetPlan(ctx, 1, planID); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("deleted plan lookup = %v, want ErrNotFound", err)
	}
}

func TestRepositorySavePlanRequiresUser(t *testing.T) {
	db := testDB(t)
	repo := NewRepository(db.SQL)

	_, err := repo.SavePlan(context.Background(), &Plan{WeekStart: time.Now()})
	if !errs.IsValidation(err) {
		t.Fatalf("SavePlan() error = %v, want validation error", err)
	}
}
