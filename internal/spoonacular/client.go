// Package spoonacular adapts the Spoonacular HTTP API as an external recipe
// source: weekly plan generation and ingredient-based search. Every failure
// is reported as unavailability so callers fall back to local computation.
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"byteright/internal/errs"
	"byteright/internal/planner"
	"byteright/internal/recipe"
)

const (
	// DefaultBaseURL is the public Spoonacular API endpoint.
	DefaultBaseURL = "https://api.spoonacular.com"

	// planTimeout bounds the weekly plan call; searchTimeout bounds search
	// calls including the per-recipe information lookups.
	planTimeout   = 10 * time.Second
	searchTimeout = 5 * time.Second

	// searchNumber is how many candidates findByIngredients is asked for.
	searchNumber = 10
)

// RecipeCacher stores API recipes in the local catalog, keyed by their
// external ID.
type RecipeCacher interface {
	CacheExternal(ctx context.Context, rec *recipe.Recipe) (int64, error)
}

// Client calls the Spoonacular API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      RecipeCacher
	log        *slog.Logger
}

// NewClient creates a Spoonacular client. An empty base URL falls back to the
// public endpoint; cache may be nil to skip local caching of search results.
func NewClient(apiKey, baseURL string, cache RecipeCacher, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		cache:      cache,
		log:        log,
	}
}

// Name identifies the client in the plan source chain.
func (c *Client) Name() string { return "spoonacular" }

type apiMeal struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type apiDay struct {
	Meals []apiMeal `json:"meals"`
}

type weekResponse struct {
	Week map[string]apiDay `json:"week"`
}

var weekDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// GeneratePlan asks the API for a week of meals. The provider's meal lists
// are mapped positionally: first meal of a day is breakfast, second lunch,
// third dinner, any surplus a snack. Costs are unknown at this point and
// stay zero.
func (c *Client) GeneratePlan(ctx context.Context, req planner.Request) ([]planner.Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if c.apiKey == "" {
		return nil, errs.Unavailablef("no spoonacular API key configured")
	}

	ctx, cancel := context.WithTimeout(ctx, planTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("timeFrame", "week")
	if diet := dietParam(req.Diets); diet != "" {
		params.Set("diet", diet)
	}

	var week weekResponse
	if err := c.getJSON(ctx, "/mealplanner/generate", params, &week); err != nil {
		return nil, err
	}
	if len(week.Week) == 0 {
		return nil, errs.Unavailablef("response has no week structure")
	}

	mealOrder := []planner.MealType{planner.MealBreakfast, planner.MealLunch, planner.MealDinner}

	var items []planner.Item
	for dayIndex, dayName := range weekDays {
		day, ok := week.Week[dayName]
		if !ok {
			continue
		}
		for i, meal := range day.Meals {
			mealType := planner.MealSnack
			if i < len(mealOrder) {
				mealType = mealOrder[i]
			}
			items = append(items, planner.Item{
				DayOfWeek: dayIndex,
				MealType:  mealType,
				Ref:       planner.CustomMeal{Name: meal.Title, ExternalID: meal.ID},
			})
		}
	}
	return items, nil
}

// dietParam picks the strictest requested diet the API understands.
func dietParam(diets []string) string {
	vegetarian := false
	for _, d := range diets {
		switch strings.ToLower(d) {
		case "vegan":
			return "vegan"
		case "vegetarian":
			vegetarian = true
		}
	}
	if vegetarian {
		return "vegetarian"
	}
	return ""
}

type findByIngredientsItem struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Image           string `json:"image"`
	UsedIngredients []struct {
		Name string `json:"name"`
	} `json:"usedIngredients"`
	MissedIngredients []struct {
		Name string `json:"name"`
	} `json:"missedIngredients"`
}

type recipeInformation struct {
	PreparationMinutes  int      `json:"preparationMinutes"`
	ReadyInMinutes      int      `json:"readyInMinutes"`
	Servings            int      `json:"servings"`
	PricePerServing     float64  `json:"pricePerServing"`
	Instructions        string   `json:"instructions"`
	Diets               []string `json:"diets"`
	ExtendedIngredients []struct {
		Original string `json:"original"`
	} `json:"extendedIngredients"`
}

// SearchByIngredients finds recipes using the given ingredients, enriches
// each hit with its full information, applies the query's diet and time
// filters and caches the results into the local catalog. Results come back
// ordered by match percentage.
func (c *Client) SearchByIngredients(ctx context.Context, q recipe.Query) ([]recipe.Match, error) {
	if len(q.Ingredients) == 0 {
		return nil, errs.Validation("ingredients", "provide at least one ingredient")
	}
	if c.apiKey == "" {
		return nil, errs.Unavailablef("no spoonacular API key configured")
	}

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("ingredients", strings.Join(q.Ingredients, ","))
	params.Set("number", fmt.Sprint(searchNumber))
	params.Set("ranking", "1") // maximize used ingredients
	params.Set("ignorePantry", "true")

	var found []findByIngredientsItem
	if err := c.getJSON(ctx, "/recipes/findByIngredients", params, &found); err != nil {
		return nil, err
	}

	diet := strings.ToLower(q.Diet)

	var matches []recipe.Match
	for _, item := range found {
		rec := recipe.Recipe{
			Title:      item.Title,
			ImageURL:   item.Image,
			Source:     recipe.SourceAPI,
			ExternalID: item.ID,
		}

		var info recipeInformation
		infoParams := url.Values{}
		infoParams.Set("apiKey", c.apiKey)
		err := c.getJSON(ctx, fmt.Sprintf("/recipes/%d/information", item.ID), infoParams, &info)
		if err == nil {
			rec.PrepTime = info.PreparationMinutes
			rec.CookTime = info.ReadyInMinutes
			rec.Servings = info.Servings
			if rec.Servings == 0 {
				rec.Servings = 2
			}
			rec.EstimatedCost = math.Round(info.PricePerServing*float64(rec.Servings)) / 100
			rec.Difficulty = difficultyFor(info.ReadyInMinutes)
			rec.Tags = info.Diets
			if info.Instructions != "" {
				rec.Instructions = []string{info.Instructions}
			}
			for _, ing := range info.ExtendedIngredients {
				rec.Ingredients = append(rec.Ingredients, ing.Original)
			}

			if diet != "" && !rec.HasTag(diet) {
				continue
			}
			if q.MaxTime > 0 && rec.CookTime > q.MaxTime {
				continue
			}
			if (diet == "vegetarian" || diet == "vegan") && containsEgg(rec.IngredientText()) {
				continue
			}
		} else {
			c.log.Warn("recipe information lookup failed", "id", item.ID, "error", err)
		}

		used := make([]string, 0, len(item.UsedIngredients))
		for _, u := range item.UsedIngredients {
			used = append(used, u.Name)
		}
		missed := make([]string, 0, len(item.MissedIngredients))
		for _, m := range item.MissedIngredients {
			missed = append(missed, m.Name)
		}

		pct := 0
		if total := len(used) + len(missed); total > 0 {
			pct = int(math.Round(float64(len(used)) / float64(total) * 100))
		}

		if c.cache != nil {
			if _, err := c.cache.CacheExternal(ctx, &rec); err != nil {
				c.log.Warn("failed to cache recipe", "external_id", item.ID, "error", err)
			}
		}

		matches = append(matches, recipe.Match{
			Recipe:          rec,
			UsedIngredients: used,
			MissedItems:     missed,
			MatchPercentage: pct,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})
	return matches, nil
}

func difficultyFor(readyInMinutes int) recipe.Difficulty {
	switch {
	case readyInMinutes <= 15:
		return recipe.DifficultyEasy
	case readyInMinutes <= 30:
		return recipe.DifficultyMedium
	default:
		return recipe.DifficultyHard
	}
}

var eggWord = regexp.MustCompile(`\beggs?\b`)

func containsEgg(ingredients string) bool {
	return eggWord.MatchString(ingredients)
}

// getJSON performs a GET against the API and decodes the JSON body. Network
// failures, non-200 statuses and malformed bodies all surface as
// unavailability.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return errs.Unavailable(fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Unavailable(fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.Unavailablef("api error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Unavailable(fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}
