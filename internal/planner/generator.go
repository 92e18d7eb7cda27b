package planner

import (
	"context"
	"fmt"
	"strings"

	"byteright/internal/errs"
	"byteright/internal/recipe"
)

// topCandidates is the size of the top slice of each sub-pool that gets
// shuffled for day-to-day variety.
const topCandidates = 6

// minBreakfastPool is the sub-pool size below which breakfast candidates are
// supplemented with quick-tagged recipes.
const minBreakfastPool = 4

// Request carries everything plan generation needs. Diets, Liked and
// Disliked are lowercased at the preference boundary.
type Request struct {
	WeeklyBudget float64
	Diets        []string
	TimePref     string // under15, under30, under60 or any
	Liked        []string
	Disliked     []string
}

// Validate rejects requests the generator must never see.
func (r Request) Validate() error {
	if r.WeeklyBudget <= 0 {
		return errs.Validation("weekly_budget", "must be positive")
	}
	return nil
}

// MaxTotalTime maps the cooking-time preference to a prep+cook bound in
// minutes. Zero means unbounded.
func (r Request) MaxTotalTime() int {
	switch strings.ToLower(r.TimePref) {
	case "under15":
		return 15
	case "under30":
		return 30
	case "under60":
		return 60
	default:
		return 0
	}
}

// Generate builds the week's items from an in-memory recipe pool. It is the
// local generation core: pure apart from the injected shuffle.
//
// The pool is filtered and scored once, partitioned into per-meal sub-pools
// by tag, and each sub-pool is ordered for its slot's budget target. The top
// candidates of each sub-pool are shuffled, then slots are filled by cycling
// through the pool (day mod pool size).
func Generate(req Request, pool []recipe.Recipe, shuffler Shuffler) ([]Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, errs.ErrEmptyCatalog
	}
	if shuffler == nil {
		shuffler = RandomShuffler{}
	}

	scored := recipe.FilterAndScore(pool, recipe.Constraints{
		MaxTotalTime: req.MaxTotalTime(),
		Diets:        req.Diets,
		Liked:        req.Liked,
		Disliked:     req.Disliked,
	})

	alloc := AllocateBudget(req.WeeklyBudget)

	breakfast := subPool(scored, func(r recipe.Recipe) bool { return r.HasTag("breakfast") })
	lunch := subPool(scored, func(r recipe.Recipe) bool { return r.HasTag("lunch") })
	dinner := subPool(scored, func(r recipe.Recipe) bool { return r.HasTag("dinner") || r.HasTag("lunch") })

	breakfast = supplementBreakfast(breakfast, scored)

	if len(breakfast) == 0 {
		breakfast = scored
	}
	if len(lunch) == 0 {
		lunch = scored
	}
	if len(dinner) == 0 {
		dinner = scored
	}

	breakfast = prepare(breakfast, alloc.Breakfast, shuffler)
	dinner = prepare(dinner, alloc.Dinner, shuffler)
	if alloc.IncludeLunch {
		lunch = prepare(lunch, alloc.Lunch, shuffler)
	}

	var items []Item
	for day := 0; day < daysPerWeek; day++ {
		items = append(items, pick(breakfast, day, MealBreakfast))
		if alloc.IncludeLunch {
			items = append(items, pick(lunch, day, MealLunch))
		}
		items = append(items, pick(dinner, day, MealDinner))
	}
	return items, nil
}

func subPool(scored []recipe.Scored, match func(recipe.Recipe) bool) []recipe.Scored {
	var out []recipe.Scored
	for _, s := range scored {
		if match(s.Recipe) {
			out = append(out, s)
		}
	}
	return out
}

// supplementBreakfast tops up a thin breakfast pool with quick-tagged recipes
// that are not already in it.
func supplementBreakfast(breakfast, scored []recipe.Scored) []recipe.Scored {
	if len(breakfast) >= minBreakfastPool {
		return breakfast
	}

	have := make(map[int64]struct{}, len(breakfast))
	for _, s := range breakfast {
		have[s.Recipe.ID] = struct{}{}
	}
	for _, s := range scored {
		if !s.Recipe.HasTag("quick") {
			continue
		}
		if _, dup := have[s.Recipe.ID]; dup {
			continue
		}
		breakfast = append(breakfast, s)
	}
	return breakfast
}

// prepare orders a sub-pool for its slot target and shuffles the top slice,
// leaving the remainder in rank order.
func prepare(subPool []recipe.Scored, target float64, shuffler Shuffler) []recipe.Scored {
	ordered := make([]recipe.Scored, len(subPool))
	copy(ordered, subPool)
	recipe.SortByScore(ordered, target)

	n := topCandidates
	if len(ordered) < n {
		n = len(ordered)
	}
	top := ordered[:n]
	shuffler.Shuffle(n, func(i, j int) {
		top[i], top[j] = top[j], top[i]
	})

	return ordered
}

func pick(pool []recipe.Scored, day int, meal MealType) Item {
	chosen := pool[day%len(pool)].Recipe
	return Item{
		DayOfWeek:     day,
		MealType:      meal,
		Ref:           RecipeRef{RecipeID: chosen.ID},
		RecipeTitle:   chosen.Title,
		EstimatedCost: chosen.EstimatedCost,
	}
}

// RecipeLister provides the recipe pool snapshot for local generation.
type RecipeLister interface {
	List(ctx context.Context) ([]recipe.Recipe, error)
}

// LocalSource generates plans from the local recipe catalog. It is the last
// link of the source chain and the only one whose failure is final.
type LocalSource struct {
	recipes  RecipeLister
	shuffler Shuffler
}

// NewLocalSource creates a LocalSource. A nil shuffler defaults to the
// shared random source.
func NewLocalSource(recipes RecipeLister, shuffler Shuffler) *LocalSource {
	if shuffler == nil {
		shuffler = RandomShuffler{}
	}
	return &LocalSource{recipes: recipes, shuffler: shuffler}
}

func (s *LocalSource) Name() string { return "local" }

// GeneratePlan fetches the catalog snapshot and runs local generation on it.
func (s *LocalSource) GeneratePlan(ctx context.Context, req Request) ([]Item, error) {
	pool, err := s.recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe pool: %w", err)
	}
	return Generate(req, pool, s.shuffler)
}
