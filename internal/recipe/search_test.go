package recipe

import (
	"reflect"
	"testing"

	"byteright/internal/errs"
)

func testPool() []Recipe {
	return []Recipe{
		{ID: 1, Title: "Veggie Omelette", Ingredients: []string{"3 eggs", "milk", "pepper"}, Tags: []string{"vegetarian", "breakfast"}, PrepTime: 5, CookTime: 10, EstimatedCost: 1.80},
		{ID: 2, Title: "Tomato Pasta", Ingredients: []string{"200g pasta", "1 can chopped tomatoes", "garlic"}, Tags: []string{"vegetarian", "dinner"}, PrepTime: 5, CookTime: 15, EstimatedCost: 2.20},
		{ID: 3, Title: "Beef Stew", Ingredients: []string{"500g beef", "carrot", "onion"}, Tags: []string{"dinner"}, PrepTime: 20, CookTime: 90, EstimatedCost: 5.50},
		{ID: 4, Title: "Eggplant Curry", Ingredients: []string{"1 eggplant", "curry paste", "rice"}, Tags: []string{"vegan", "vegetarian", "dinner"}, PrepTime: 10, CookTime: 30, EstimatedCost: 3.00},
		{ID: 5, Title: "Porridge", Ingredients: []string{"50g oats", "water", "honey"}, Tags: []string{"vegetarian", "breakfast", "quick"}, PrepTime: 2, CookTime: 5, EstimatedCost: 0.60},
	}
}

func ids(scored []Scored) []int64 {
	out := make([]int64, len(scored))
	for i, s := range scored {
		out[i] = s.Recipe.ID
	}
	return out
}

func TestFilterAndScoreTimeBound(t *testing.T) {
	got := FilterAndScore(testPool(), Constraints{MaxTotalTime: 30})
	for _, s := range got {
		if s.Recipe.TotalTime() > 30 {
			t.Errorf("Recipe %d exceeds the time bound (%d min)", s.Recipe.ID, s.Recipe.TotalTime())
		}
	}
	if len(got) != 3 {
		t.Errorf("Expected 3 recipes under 30 minutes, got %v", ids(got))
	}
}

func TestFilterAndScoreVegetarianExcludesEggsNotEggplant(t *testing.T) {
	got := FilterAndScore(testPool(), Constraints{Diets: []string{"vegetarian"}})

	for _, s := range got {
		if s.Recipe.ID == 1 {
			t.Error("Egg-containing recipe survived the vegetarian filter")
		}
	}

	found := false
	for _, s := range got {
		if s.Recipe.ID == 4 {
			found = true
		}
	}
	if !found {
		t.Error("Eggplant recipe was wrongly excluded; the egg match must be word-bounded")
	}
}

func TestFilterAndScoreVeganExclusions(t *testing.T) {
	got := FilterAndScore(testPool(), Constraints{Diets: []string{"vegan"}})

	// Only the eggplant curry is tagged vegan; porridge contains honey and is
	// not tagged vegan anyway.
	if len(got) != 1 || got[0].Recipe.ID != 4 {
		t.Errorf("Expected only recipe 4 for vegan, got %v", ids(got))
	}
}

func TestFilterAndScoreVeganExcludesDairyWords(t *testing.T) {
	pool := []Recipe{
		{ID: 10, Title: "Coconut Curry", Ingredients: []string{"400ml coconut milk", "rice"}, Tags: []string{"vegan"}},
		{ID: 11, Title: "Rice Bowl", Ingredients: []string{"rice", "soy sauce"}, Tags: []string{"vegan"}},
	}
	// "coconut milk" contains the whole word "milk" and is excluded.
	got := FilterAndScore(pool, Constraints{Diets: []string{"vegan"}})
	if len(got) != 1 || got[0].Recipe.ID != 11 {
		t.Errorf("Expected only recipe 11, got %v", ids(got))
	}
}

func TestFilterAndScoreDisliked(t *testing.T) {
	got := FilterAndScore(testPool(), Constraints{Disliked: []string{"beef"}})
	for _, s := range got {
		if s.Recipe.ID == 3 {
			t.Error("Disliked-ingredient recipe survived the filter")
		}
	}
}

func TestFilterAndScoreFallbackNeverEmpty(t *testing.T) {
	pool := testPool()
	// Impossible constraints: nothing is both under 1 minute and under 1p.
	got := FilterAndScore(pool, Constraints{MaxTotalTime: 1, MaxCost: 0.01})
	if len(got) != len(pool) {
		t.Errorf("Expected fallback to the full pool (%d), got %d", len(pool), len(got))
	}
}

func TestFilterIdempotence(t *testing.T) {
	c := Constraints{Diets: []string{"vegetarian"}}
	once := filterPool(testPool(), c)
	twice := filterPool(once, c)
	if !reflect.DeepEqual(once, twice) {
		t.Error("Applying the filter twice changed the result")
	}
}

func TestFilterAndScoreOrdering(t *testing.T) {
	got := FilterAndScore(testPool(), Constraints{
		Liked:      []string{"tomato", "garlic"},
		TargetCost: 2.00,
	})

	// Tomato pasta matches two liked substrings, so it leads regardless of
	// cost distance.
	if got[0].Recipe.ID != 2 {
		t.Fatalf("Expected recipe 2 first, got %v", ids(got))
	}
	if got[0].LikeScore != 2 {
		t.Errorf("Expected like score 2, got %d", got[0].LikeScore)
	}

	// Among zero-score recipes the cost closest to 2.00 comes first.
	rest := got[1:]
	for i := 1; i < len(rest); i++ {
		di := abs(rest[i-1].Recipe.EstimatedCost - 2.00)
		dj := abs(rest[i].Recipe.EstimatedCost - 2.00)
		if di > dj {
			t.Errorf("Cost-distance ordering violated at position %d: %v > %v", i, di, dj)
		}
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func TestSearchByIngredients(t *testing.T) {
	matches, err := SearchByIngredients(testPool(), Query{Ingredients: []string{"pasta", "tomatoes"}})
	if err != nil {
		t.Fatalf("SearchByIngredients failed: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("Expected at least one match")
	}
	if matches[0].Recipe.ID != 2 {
		t.Fatalf("Expected tomato pasta first, got recipe %d", matches[0].Recipe.ID)
	}

	m := matches[0]
	if len(m.UsedIngredients) != 2 {
		t.Errorf("Expected 2 used ingredients, got %v", m.UsedIngredients)
	}
	// "garlic" is the only uncovered line and it is not a pantry staple.
	if len(m.MissedItems) != 1 || m.MissedItems[0] != "garlic" {
		t.Errorf("Expected missed [garlic], got %v", m.MissedItems)
	}
	// 2 used / 3 total = 67%.
	if m.MatchPercentage != 67 {
		t.Errorf("Expected match percentage 67, got %d", m.MatchPercentage)
	}
}

func TestSearchByIngredientsPantryStaples(t *testing.T) {
	matches, err := SearchByIngredients(testPool(), Query{Ingredients: []string{"oats"}})
	if err != nil {
		t.Fatalf("SearchByIngredients failed: %v", err)
	}
	for _, m := range matches {
		if m.Recipe.ID != 5 {
			continue
		}
		// "water" is a staple and must not count as missed; honey is missed.
		for _, missed := range m.MissedItems {
			if missed == "water" {
				t.Error("Pantry staple counted as a missed ingredient")
			}
		}
		return
	}
	t.Fatal("Expected porridge to match")
}

func TestSearchByIngredientsEmptyQuery(t *testing.T) {
	_, err := SearchByIngredients(testPool(), Query{})
	if err == nil {
		t.Fatal("Expected a validation error for an empty ingredient list")
	}
	if !errs.IsValidation(err) {
		t.Errorf("Expected a ValidationError, got %T", err)
	}
}

func TestSearchByIngredientsNoMatchIsEmpty(t *testing.T) {
	matches, err := SearchByIngredients(testPool(), Query{Ingredients: []string{"dragonfruit"}})
	if err != nil {
		t.Fatalf("SearchByIngredients failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("Expected no matches, got %d", len(matches))
	}
}
