// Package app wires the services together and exposes the user-facing
// operations: plan generation, shopping lists, recipe search and import.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"byteright/internal/clipper"
	"byteright/internal/errs"
	"byteright/internal/fridge"
	"byteright/internal/ingredient"
	"byteright/internal/metrics"
	"byteright/internal/planner"
	"byteright/internal/recipe"
	"byteright/internal/shopping"
	"byteright/internal/user"
)

// RemoteSearcher is the external ingredient-search dependency. It is optional:
// when unavailable the app searches the local catalog instead.
type RemoteSearcher interface {
	SearchByIngredients(ctx context.Context, q recipe.Query) ([]recipe.Match, error)
}

// App holds the application's dependencies.
type App struct {
	users      *user.Repository
	recipes    *recipe.Repository
	plans      *planner.Repository
	lists      *shopping.Repository
	fridge     *fridge.Repository
	planSource *planner.Fallback
	searcher   RemoteSearcher
	clip       *clipper.Clipper
	metrics    *metrics.Store
	catalog    *ingredient.Catalog
	log        *slog.Logger
}

// Deps collects what NewApp needs. Searcher, Clip and Metrics may be nil; the
// corresponding operations degrade or are skipped.
type Deps struct {
	Users      *user.Repository
	Recipes    *recipe.Repository
	Plans      *planner.Repository
	Lists      *shopping.Repository
	Fridge     *fridge.Repository
	PlanSource *planner.Fallback
	Searcher   RemoteSearcher
	Clip       *clipper.Clipper
	Metrics    *metrics.Store
	Catalog    *ingredient.Catalog
	Log        *slog.Logger
}

// NewApp creates and initializes a new App instance.
func NewApp(d Deps) *App {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	if d.Catalog == nil {
		d.Catalog = ingredient.DefaultCatalog()
	}
	return &App{
		users:      d.Users,
		recipes:    d.Recipes,
		plans:      d.Plans,
		lists:      d.Lists,
		fridge:     d.Fridge,
		planSource: d.PlanSource,
		searcher:   d.Searcher,
		clip:       d.Clip,
		metrics:    d.Metrics,
		catalog:    d.Catalog,
		log:        d.Log,
	}
}

// GenerateMealPlan builds and stores the plan for the week containing date.
// A positive budget overrides the user's stored weekly budget for this run.
func (a *App) GenerateMealPlan(ctx context.Context, userID int64, date time.Time, budget float64) (*planner.Plan, error) {
	u, err := a.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if budget <= 0 {
		budget = u.Preferences.WeeklyBudget
	}
	req := planner.Request{
		WeeklyBudget: budget,
		Diets:        u.Preferences.Diets,
		TimePref:     u.Preferences.CookingTimePref,
		Liked:        u.Preferences.Liked,
		Disliked:     u.Preferences.Disliked,
	}

	started := time.Now()
	items, err := a.planSource.GeneratePlan(ctx, req)
	if err != nil {
		return nil, err
	}
	latency := time.Since(started)

	var total float64
	for _, item := range items {
		total += item.EstimatedCost
	}

	plan := &planner.Plan{
		UserID:             userID,
		WeekStart:          planner.MondayOf(date),
		BudgetTarget:       budget,
		TotalEstimatedCost: total,
		Items:              items,
		Source:             a.planSource.LastUsed(),
	}
	if _, err := a.plans.SavePlan(ctx, plan); err != nil {
		return nil, err
	}

	a.recordRun(ctx, userID, plan.Source, latency, len(items))

	a.log.Info("meal plan generated",
		"user", userID, "week", plan.WeekStart.Format("2006-01-02"),
		"source", plan.Source, "items", len(items), "total", total)

	return a.plans.GetPlan(ctx, userID, plan.ID)
}

func (a *App) recordRun(ctx context.Context, userID int64, source string, latency time.Duration, itemCount int) {
	if a.metrics == nil {
		return
	}

	candidates, err := a.recipes.Count(ctx)
	if err != nil {
		candidates = 0
	}
	err = a.metrics.Record(ctx, metrics.GenerationRun{
		UserID:         userID,
		Source:         source,
		LatencyMS:      latency.Milliseconds(),
		CandidateCount: candidates,
		ItemCount:      itemCount,
	})
	if err != nil {
		a.log.Warn("failed to record generation run", "error", err)
	}
}

// PlanForWeek loads the stored plan for the week containing date.
func (a *App) PlanForWeek(ctx context.Context, userID int64, date time.Time) (*planner.Plan, error) {
	return a.plans.GetPlanForWeek(ctx, userID, date)
}

// BuildShoppingList aggregates the plan's recipe ingredients into a shopping
// list and stores it, replacing any previous list for that plan.
func (a *App) BuildShoppingList(ctx context.Context, userID, planID int64) (*shopping.List, error) {
	plan, err := a.plans.GetPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	// One entry per plan slot: a recipe filling several slots contributes its
	// ingredients and cost once per slot.
	fetched := make(map[int64]*recipe.Recipe)
	var recipes []recipe.Recipe
	for _, item := range plan.Items {
		ref, ok := item.Ref.(planner.RecipeRef)
		if !ok {
			continue
		}

		rec, cached := fetched[ref.RecipeID]
		if !cached {
			var err error
			rec, err = a.recipes.Get(ctx, ref.RecipeID)
			if err != nil {
				return nil, fmt.Errorf("plan references recipe %d: %w", ref.RecipeID, err)
			}
			fetched[ref.RecipeID] = rec
		}
		recipes = append(recipes, *rec)
	}

	list := shopping.BuildList(a.catalog, userID, planID, recipes)
	if _, err := a.lists.Replace(ctx, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// SearchRecipes finds recipes by available ingredients, remote first with a
// silent fallback to the local catalog. The result notes which source served
// it through the recipes' Source field.
func (a *App) SearchRecipes(ctx context.Context, q recipe.Query) ([]recipe.Match, error) {
	if a.searcher != nil {
		matches, err := a.searcher.SearchByIngredients(ctx, q)
		if err == nil && len(matches) > 0 {
			return matches, nil
		}
		if err != nil {
			if errs.IsValidation(err) {
				return nil, err
			}
			if !errors.Is(err, errs.ErrExternalUnavailable) {
				return nil, err
			}
			a.log.Warn("remote search unavailable, using local catalog", "error", err)
		}
	}

	pool, err := a.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	return recipe.SearchByIngredients(pool, q)
}

// SearchFromFridge runs an ingredient search seeded with the user's fridge
// contents.
func (a *App) SearchFromFridge(ctx context.Context, userID int64, q recipe.Query) ([]recipe.Match, error) {
	names, err := a.fridge.Names(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, errs.Validation("fridge", "no items in the fridge to cook from")
	}
	q.Ingredients = names
	return a.SearchRecipes(ctx, q)
}

// ImportRecipe clips a recipe from a web page and stores it in the catalog.
func (a *App) ImportRecipe(ctx context.Context, pageURL string) (*recipe.Recipe, error) {
	if a.clip == nil {
		return nil, errs.Validation("clipper", "recipe import is not configured")
	}

	rec, err := a.clip.ClipURL(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	if _, err := a.recipes.Save(ctx, rec); err != nil {
		return nil, err
	}

	a.log.Info("recipe imported", "title", rec.Title, "url", pageURL)
	return rec, nil
}
