package recipe

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"byteright/internal/errs"
)

// eggPattern matches "egg"/"eggs" as whole words so that vegetarian filtering
// does not trip over names like "eggplant".
var eggPattern = regexp.MustCompile(`\beggs?\b`)

// veganExcluded matches animal products excluded for a vegan diet.
var veganExcluded = regexp.MustCompile(`\b(cheese|milk|butter|cream|yoghurt|honey|egg)\b`)

// pantryStaples are ingredients assumed to be on hand; they are never counted
// as "missed" when matching a recipe against available ingredients.
var pantryStaples = []string{"salt", "pepper", "oil", "olive oil", "butter", "water"}

// Constraints narrow a recipe pool and steer its ordering.
type Constraints struct {
	MaxTotalTime int      // prep+cook bound in minutes; 0 means unbounded
	MaxCost      float64  // upper cost bound; 0 means unbounded
	Diets        []string // required diet tags, e.g. "vegetarian", "vegan"
	Liked        []string // lowercased substrings that boost a recipe's score
	Disliked     []string // lowercased substrings that exclude a recipe
	TargetCost   float64  // preferred cost; ties are broken by closeness to it
}

// Scored is a recipe with its liked-ingredient score.
type Scored struct {
	Recipe    Recipe
	LikeScore int
}

// FilterAndScore applies the hard filters, falls back to the full pool when
// they eliminate everything, and returns the candidates ordered by
// liked-ingredient score (descending) then closeness of cost to the target.
// For any non-empty input pool the result is non-empty.
func FilterAndScore(pool []Recipe, c Constraints) []Scored {
	filtered := filterPool(pool, c)

	// Intentional resilience: an over-constrained request falls back to the
	// complete pool rather than returning nothing.
	if len(filtered) == 0 {
		filtered = pool
	}

	scored := make([]Scored, 0, len(filtered))
	for _, r := range filtered {
		scored = append(scored, Scored{Recipe: r, LikeScore: likeScore(r, c.Liked)})
	}

	SortByScore(scored, c.TargetCost)
	return scored
}

// SortByScore orders candidates by like score descending, then by distance of
// estimated cost to target ascending. The sort is stable: equal candidates
// keep their input order.
func SortByScore(scored []Scored, targetCost float64) {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].LikeScore != scored[j].LikeScore {
			return scored[i].LikeScore > scored[j].LikeScore
		}
		di := math.Abs(scored[i].Recipe.EstimatedCost - targetCost)
		dj := math.Abs(scored[j].Recipe.EstimatedCost - targetCost)
		return di < dj
	})
}

func filterPool(pool []Recipe, c Constraints) []Recipe {
	vegetarian := false
	vegan := false
	for _, d := range c.Diets {
		switch strings.ToLower(d) {
		case "vegetarian":
			vegetarian = true
		case "vegan":
			vegan = true
		}
	}

	var out []Recipe
	for _, r := range pool {
		if c.MaxTotalTime > 0 && r.TotalTime() > c.MaxTotalTime {
			continue
		}
		if c.MaxCost > 0 && r.EstimatedCost > c.MaxCost {
			continue
		}
		if !hasAllTags(r, c.Diets) {
			continue
		}

		ing := r.IngredientText()
		if (vegetarian || vegan) && eggPattern.MatchString(ing) {
			continue
		}
		if vegan && veganExcluded.MatchString(ing) {
			continue
		}
		if containsAny(ing, c.Disliked) {
			continue
		}

		out = append(out, r)
	}
	return out
}

func hasAllTags(r Recipe, tags []string) bool {
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if !r.HasTag(normalizeTag(tag)) {
			return false
		}
	}
	return true
}

// normalizeTag folds "Gluten-Free" style labels into the stored tag form.
func normalizeTag(tag string) string {
	return strings.ReplaceAll(strings.ToLower(tag), "-", "_")
}

func containsAny(text string, substrings []string) bool {
	for _, s := range substrings {
		if s != "" && strings.Contains(text, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

func likeScore(r Recipe, liked []string) int {
	if len(liked) == 0 {
		return 0
	}
	ing := r.IngredientText()
	score := 0
	for _, like := range liked {
		if like != "" && strings.Contains(ing, strings.ToLower(like)) {
			score++
		}
	}
	return score
}

// Query describes an ingredient-based recipe search.
type Query struct {
	Ingredients []string // what the user has available
	Diet        string   // optional diet tag, also triggers diet exclusions
	MaxTime     int      // minutes; 0 means unbounded
	MaxCost     float64  // 0 means unbounded
}

// Match is a search result: which query ingredients the recipe uses, which of
// its ingredients are missing, and the resulting match percentage.
type Match struct {
	Recipe          Recipe   `json:"recipe"`
	UsedIngredients []string `json:"used_ingredients"`
	MissedItems     []string `json:"missed_ingredients"`
	MatchPercentage int      `json:"match_percentage"`
}

// maxSearchResults caps how many matches a search returns.
const maxSearchResults = 15

// SearchByIngredients scores the pool against the available ingredients and
// returns the best matches, highest match percentage first. Recipes using
// none of the query ingredients are dropped; pantry staples are not counted
// as missing.
func SearchByIngredients(pool []Recipe, q Query) ([]Match, error) {
	available := normalizeList(q.Ingredients)
	if len(available) == 0 {
		return nil, errs.Validation("ingredients", "provide at least one ingredient")
	}

	var diets []string
	if q.Diet != "" {
		diets = []string{q.Diet}
	}
	candidates := filterPool(pool, Constraints{
		MaxTotalTime: q.MaxTime,
		MaxCost:      q.MaxCost,
		Diets:        diets,
	})

	var matches []Match
	for _, r := range candidates {
		ing := r.IngredientText()

		var used []string
		for _, have := range available {
			if strings.Contains(ing, have) {
				used = append(used, have)
			}
		}
		if len(used) == 0 {
			continue
		}

		missed := missedIngredients(r.Ingredients, available)

		total := len(used) + len(missed)
		pct := 0
		if total > 0 {
			pct = int(math.Round(float64(len(used)) / float64(total) * 100))
		}

		matches = append(matches, Match{
			Recipe:          r,
			UsedIngredients: used,
			MissedItems:     missed,
			MatchPercentage: pct,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})

	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}
	return matches, nil
}

// missedIngredients lists the recipe lines not covered by the available
// ingredients, skipping pantry staples.
func missedIngredients(lines, available []string) []string {
	var missed []string
	for _, line := range lines {
		lower := strings.ToLower(line)

		covered := false
		for _, have := range available {
			if strings.Contains(lower, have) {
				covered = true
				break
			}
		}
		if covered {
			continue
		}

		staple := false
		for _, p := range pantryStaples {
			if strings.Contains(lower, p) {
				staple = true
				break
			}
		}
		if !staple {
			missed = append(missed, line)
		}
	}
	return missed
}

func normalizeList(items []string) []string {
	var out []string
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
