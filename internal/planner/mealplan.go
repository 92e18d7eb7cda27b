// Package planner generates weekly meal plans from the recipe catalog under a
// budget, and defines the strategy chain that lets external sources take
// precedence over local generation.
package planner

import "time"

// MealType identifies the slot a meal fills within a day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealRef is the tagged variant filling one plan slot: either a catalog
// recipe or a custom (externally named) meal. Exactly one concrete type is
// set per item.
type MealRef interface {
	mealRef()
}

// RecipeRef points at a recipe in the local catalog.
type RecipeRef struct {
	RecipeID int64
}

func (RecipeRef) mealRef() {}

// CustomMeal names a meal that has no catalog recipe, optionally keeping the
// provider's ID for later lookup.
type CustomMeal struct {
	Name       string
	ExternalID int64
}

func (CustomMeal) mealRef() {}

// Item is one slot of a weekly plan. DayOfWeek runs 0 (Monday) to 6 (Sunday).
type Item struct {
	ID        int64
	DayOfWeek int
	MealType  MealType
	Ref       MealRef

	// Denormalized recipe details, populated when loading a stored plan.
	RecipeTitle   string
	EstimatedCost float64
}

// Plan is a stored weekly meal plan. WeekStart is always a Monday.
type Plan struct {
	ID                 int64
	UserID             int64
	WeekStart          time.Time
	BudgetTarget       float64
	TotalEstimatedCost float64
	Items              []Item
	Source             string
	CreatedAt          time.Time
}

// MondayOf normalizes a date to the Monday of its week, truncated to
// midnight UTC.
func MondayOf(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return day.AddDate(0, 0, -offset)
}

// Weekday returns the plan day index (Monday=0) for a time.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
