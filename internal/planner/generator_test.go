package planner

import (
	"context"
	"errors"
	"testing"

	"byteright/internal/errs"
	"byteright/internal/recipe"
)

// noopShuffler keeps sub-pools in rank order so tests are deterministic.
type noopShuffler struct{}

func (noopShuffler) Shuffle(n int, swap func(i, j int)) {}

func planPool() []recipe.Recipe {
	return []recipe.Recipe{
		{ID: 1, Title: "Overnight Oats", Ingredients: []string{"50g oats", "200ml milk"},
			PrepTime: 5, Servings: 1, EstimatedCost: 1.20, Tags: []string{"breakfast", "quick"}},
		{ID: 2, Title: "Beans on Toast", Ingredients: []string{"1 can baked beans", "2 slices bread"},
			PrepTime: 2, CookTime: 5, Servings: 1, EstimatedCost: 1.00, Tags: []string{"breakfast"}},
		{ID: 3, Title: "Bean Chilli", Ingredients: []string{"1 can kidney beans", "1 can chopped tomatoes"},
			PrepTime: 10, CookTime: 25, Servings: 4, EstimatedCost: 2.50, Tags: []string{"dinner"}},
		{ID: 4, Title: "Pasta Bake", Ingredients: []string{"300g pasta", "1 can chopped tomatoes"},
			PrepTime: 10, CookTime: 30, Servings: 4, EstimatedCost: 2.00, Tags: []string{"dinner"}},
		{ID: 5, Title: "Lentil Soup", Ingredients: []string{"200g lentils", "1 onion"},
			PrepTime: 10, CookTime: 20, Servings: 3, EstimatedCost: 1.80, Tags: []string{"lunch"}},
		{ID: 6, Title: "Hummus Wrap", Ingredients: []string{"1 pack tortilla wraps", "100g hummus"},
			PrepTime: 5, Servings: 1, EstimatedCost: 1.60, Tags: []string{"lunch", "quick"}},
	}
}

func TestGenerateEmptyPool(t *testing.T) {
	_, err := Generate(Request{WeeklyBudget: 30}, nil, noopShuffler{})
	if !errors.Is(err, errs.ErrEmptyCatalog) {
		t.Fatalf("Generate() error = %v, want ErrEmptyCatalog", err)
	}
}

func TestGenerateInvalidBudget(t *testing.T) {
	_, err := Generate(Request{WeeklyBudget: 0}, planPool(), noopShuffler{})
	if !errs.IsValidation(err) {
		t.Fatalf("Generate() error = %v, want validation error", err)
	}
}

func TestGeneratePlanShapeWithLunch(t *testing.T) {
	items, err := Generate(Request{WeeklyBudget: 49}, planPool(), noopShuffler{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(items) != 21 {
		t.Fatalf("got %d items, want 21", len(items))
	}

	assertWeekCovered(t, items, true)
}

func TestGeneratePlanShapeWithoutLunch(t *testing.T) {
	items, err := Generate(Request{WeeklyBudget: 21}, planPool(), noopShuffler{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(items) != 14 {
		t.Fatalf("got %d items, want 14", len(items))
	}

	for _, item := range items {
		if item.MealType == MealLunch {
			t.Errorf("tight budget plan has a lunch slot on day %d", item.DayOfWeek)
		}
	}
	assertWeekCovered(t, items, false)
}

func TestGenerateItemsReferenceCatalogRecipes(t *testing.T) {
	pool := planPool()
	known := make(map[int64]recipe.Recipe, len(pool))
	for _, r := range pool {
		known[r.ID] = r
	}

	items, err := Generate(Request{WeeklyBudget: 49}, pool, noopShuffler{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, item := range items {
		ref, ok := item.Ref.(RecipeRef)
		if !ok {
			t.Fatalf("item ref is %T, want RecipeRef", item.Ref)
		}
		r, exists := known[ref.RecipeID]
		if !exists {
			t.Fatalf("item references unknown recipe %d", ref.RecipeID)
		}
		if item.RecipeTitle != r.Title {
			t.Errorf("item title = %q, want %q", item.RecipeTitle, r.Title)
		}
		if item.EstimatedCost != r.EstimatedCost {
			t.Errorf("item cost = %v, want %v", item.EstimatedCost, r.EstimatedCost)
		}
	}
}

func TestGenerateDinnerPoolIncludesLunchTagged(t *testing.T) {
	// No dinner-tagged recipes at all: dinners must come from lunch-tagged
	// ones rather than the full pool.
	pool := []recipe.Recipe{
		{ID: 1, Title: "Overnight Oats", PrepTime: 5, Servings: 1, EstimatedCost: 1.20, Tags: []string{"breakfast"}},
		{ID: 5, Title: "Lentil Soup", PrepTime: 10, CookTime: 20, Servings: 3, EstimatedCost: 1.80, Tags: []string{"lunch"}},
		{ID: 6, Title: "Hummus Wrap", PrepTime: 5, Servings: 1, EstimatedCost: 1.60, Tags: []string{"lunch"}},
	}

	items, err := Generate(Request{WeeklyBudget: 21}, pool, noopShuffler{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, item := range items {
		if item.MealType != MealDinner {
			continue
		}
		id := item.Ref.(RecipeRef).RecipeID
		if id != 5 && id != 6 {
			t.Errorf("dinner on day %d uses recipe %d, want a lunch-tagged one", item.DayOfWeek, id)
		}
	}
}

func TestGenerateSupplementsThinBreakfastPool(t *testing.T) {
	// Only one breakfast recipe, so quick-tagged recipes top up the pool and
	// breakfasts vary across the week.
	pool := []recipe.Recipe{
		{ID: 1, Title: "Overnight Oats", PrepTime: 5, Servings: 1, EstimatedCost: 1.20, Tags: []string{"breakfast"}},
		{ID: 6, Title: "Hummus Wrap", PrepTime: 5, Servings: 1, EstimatedCost: 1.60, Tags: []string{"lunch", "quick"}},
		{ID: 7, Title: "Fruit Smoothie", PrepTime: 5, Servings: 1, EstimatedCost: 1.00, Tags: []string{"quick"}},
		{ID: 3, Title: "Bean Chilli", PrepTime: 10, CookTime: 25, Servings: 4, EstimatedCost: 2.50, Tags: []string{"dinner"}},
	}

	items, err := Generate(Request{WeeklyBudget: 21}, pool, noopShuffler{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	breakfasts := make(map[int64]bool)
	for _, item := range items {
		if item.MealType == MealBreakfast {
			breakfasts[item.Ref.(RecipeRef).RecipeID] = true
		}
	}
	if len(breakfasts) < 2 {
		t.Errorf("breakfast pool was not supplemented: only recipes %v used", breakfasts)
	}
}

func TestGenerateUntaggedPoolStillFillsWeek(t *testing.T) {
	pool := []recipe.Recipe{
		{ID: 10, Title: "Rice and Beans", PrepTime: 5, CookTime: 20, Servings: 2, EstimatedCost: 1.50},
		{ID: 11, Title: "Jacket Potato", PrepTime: 5, CookTime: 60, Servings: 1, EstimatedCost: 1.00},
	}

	items, err := Generate(Request{WeeklyBudget: 49}, pool, noopShuffler{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(items) != 21 {
		t.Fatalf("got %d items, want 21", len(items))
	}
}

func TestGenerateSeededShufflerIsReproducible(t *testing.T) {
	first, err := Generate(Request{WeeklyBudget: 49}, planPool(), NewSeededShuffler(42))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, err := Generate(Request{WeeklyBudget: 49}, planPool(), NewSeededShuffler(42))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("plan lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Ref != second[i].Ref {
			t.Errorf("item %d differs between identically seeded runs", i)
		}
	}
}

func assertWeekCovered(t *testing.T, items []Item, wantLunch bool) {
	t.Helper()

	type slot struct {
		day  int
		meal MealType
	}
	seen := make(map[slot]bool)
	for _, item := range items {
		if item.DayOfWeek < 0 || item.DayOfWeek > 6 {
			t.Errorf("day of week %d out of range", item.DayOfWeek)
		}
		seen[slot{item.DayOfWeek, item.MealType}] = true
	}

	for day := 0; day < 7; day++ {
		if !seen[slot{day, MealBreakfast}] {
			t.Errorf("day %d missing breakfast", day)
		}
		if !seen[slot{day, MealDinner}] {
			t.Errorf("day %d missing dinner", day)
		}
		if wantLunch && !seen[slot{day, MealLunch}] {
			t.Errorf("day %d missing lunch", day)
		}
	}
}

type stubLister struct {
	recipes []recipe.Recipe
	err     error
}

func (s *stubLister) List(ctx context.Context) ([]recipe.Recipe, error) {
	return s.recipes, s.err
}

func TestLocalSourceGeneratePlan(t *testing.T) {
	src := NewLocalSource(&stubLister{recipes: planPool()}, noopShuffler{})
	if src.Name() != "local" {
		t.Errorf("Name() = %q, want local", src.Name())
	}

	items, err := src.GeneratePlan(context.Background(), Request{WeeklyBudget: 49})
	if err != nil {
		t.Fatalf("GeneratePlan() error = %v", err)
	}
	if len(items) != 21 {
		t.Errorf("got %d items, want 21", len(items))
	}
}

func TestLocalSourceListerError(t *testing.T) {
	src := NewLocalSource(&stubLister{err: errors.New("db down")}, noopShuffler{})
	if _, err := src.GeneratePlan(context.Background(), Request{WeeklyBudget: 49}); err == nil {
		t.Fatal("GeneratePlan() expected error, got nil")
	}
}
