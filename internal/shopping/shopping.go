// Package shopping aggregates ingredient lines of a meal plan's recipes into
// a deduplicated, categorized shopping list with price estimates.
package shopping

import (
	"strconv"
	"strings"
	"time"

	"byteright/internal/ingredient"
	"byteright/internal/recipe"
)

// Item is one entry of a shopping list. Quantity is a display string: merged
// lines with incompatible units keep both amounts ("100 + 1 cup").
type Item struct {
	ID             int64
	IngredientName string
	Quantity       string
	Unit           string
	Category       ingredient.Category
	EstimatedPrice float64
	Checked        bool
}

// List is the shopping list for one meal plan. EstimatedTotal is the sum of
// the plan's recipe costs; CalculatedTotal is the sum of per-item price
// estimates. The two are tracked independently and usually differ.
type List struct {
	ID              int64
	UserID          int64
	MealPlanID      int64
	Items           []Item
	EstimatedTotal  float64
	CalculatedTotal float64
	CreatedAt       time.Time
}

// BuildList aggregates the recipes' ingredients and computes both totals.
func BuildList(cat *ingredient.Catalog, userID, mealPlanID int64, recipes []recipe.Recipe) List {
	items := Aggregate(cat, recipes)

	var estimated, calculated float64
	for _, r := range recipes {
		estimated += r.EstimatedCost
	}
	for _, item := range items {
		calculated += item.EstimatedPrice
	}

	return List{
		UserID:          userID,
		MealPlanID:      mealPlanID,
		Items:           items,
		EstimatedTotal:  estimated,
		CalculatedTotal: calculated,
	}
}

// Aggregate parses every ingredient line of the given recipes and merges them
// by lowercased ingredient name, preserving first-appearance order. Each
// merged item is categorized and priced from the catalog.
func Aggregate(cat *ingredient.Catalog, recipes []recipe.Recipe) []Item {
	index := make(map[string]int)
	var items []Item

	for _, r := range recipes {
		for _, line := range r.Ingredients {
			parsed := ingredient.Parse(line)
			if parsed.Name == "" {
				continue
			}
			name := strings.ToLower(parsed.Name)

			i, seen := index[name]
			if !seen {
				index[name] = len(items)
				items = append(items, Item{
					IngredientName: name,
					Quantity:       parsed.Quantity,
					Unit:           parsed.Unit,
					Category:       cat.Categorize(name),
					EstimatedPrice: cat.EstimatePrice(name),
				})
				continue
			}

			items[i].Quantity, items[i].Unit = mergeQuantity(
				items[i].Quantity, items[i].Unit, parsed.Quantity, parsed.Unit)
		}
	}
	return items
}

// mergeQuantity combines an item's running quantity with a newly parsed one.
// The rules apply in order: numeric amounts whose units match
// (case-insensitively) sum, even when the amounts are identical; an empty or
// identical addition is then a no-op; anything else keeps both amounts as a
// display string.
func mergeQuantity(qty, unit, newQty, newUnit string) (string, string) {
	if newQty == "" {
		return qty, unit
	}
	if qty == "" {
		return newQty, newUnit
	}

	a, errA := strconv.ParseFloat(qty, 64)
	b, errB := strconv.ParseFloat(newQty, 64)
	if errA == nil && errB == nil && strings.EqualFold(unit, newUnit) {
		return strconv.FormatFloat(a+b, 'f', -1, 64), unit
	}

	if newQty == qty {
		return qty, unit
	}

	merged := qty + " + " + newQty
	if newUnit != "" {
		merged += " " + newUnit
	}
	return merged, unit
}
