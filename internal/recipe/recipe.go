// Package recipe holds the recipe catalog: the entity itself plus the
// constraint filtering and scoring used by search and meal planning.
package recipe

import (
	"strings"

	"byteright/internal/errs"
)

// Difficulty classifies how demanding a recipe is to cook.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Source records where a recipe came from.
type Source string

const (
	SourceLocal Source = "local"
	SourceAPI   Source = "api"
)

// Recipe is a single catalog entry. Ingredients are free-text lines in
// cooking order; Tags are lowercase diet/meal-type labels.
type Recipe struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Ingredients   []string   `json:"ingredients"`
	Instructions  []string   `json:"instructions"`
	PrepTime      int        `json:"prep_time"` // minutes
	CookTime      int        `json:"cook_time"` // minutes
	Servings      int        `json:"servings"`
	EstimatedCost float64    `json:"estimated_cost"`
	Difficulty    Difficulty `json:"difficulty"`
	ImageURL      string     `json:"image_url,omitempty"`
	Tags          []string   `json:"tags"`
	Source        Source     `json:"source"`
	ExternalID    int64      `json:"external_id,omitempty"`
}

// Validate checks the invariants that must hold before a recipe enters the
// catalog. Costs and times are validated here, at the boundary, so the core
// algorithms never see negative values.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errs.Validation("title", "must not be empty")
	}
	if r.PrepTime < 0 || r.CookTime < 0 {
		return errs.Validation("prep_time/cook_time", "must not be negative")
	}
	if r.EstimatedCost < 0 {
		return errs.Validation("estimated_cost", "must not be negative")
	}
	if r.Servings < 0 {
		return errs.Validation("servings", "must not be negative")
	}
	return nil
}

// Normalize lowercases and deduplicates tags, preserving first occurrence
// order, and defaults missing difficulty/source.
func (r *Recipe) Normalize() {
	seen := make(map[string]struct{}, len(r.Tags))
	tags := r.Tags[:0]
	for _, tag := range r.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	r.Tags = tags

	if r.Difficulty == "" {
		r.Difficulty = DifficultyEasy
	}
	if r.Source == "" {
		r.Source = SourceLocal
	}
}

// TotalTime is prep plus cook time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// HasTag reports whether the recipe carries the given tag (case-insensitive).
func (r *Recipe) HasTag(tag string) bool {
	tag = strings.ToLower(tag)
	for _, t := range r.Tags {
		if strings.ToLower(t) == tag {
			return true
		}
	}
	return false
}

// IngredientText joins all ingredient lines into one lowercased string for
// substring and word-boundary matching.
func (r *Recipe) IngredientText() string {
	return strings.ToLower(strings.Join(r.Ingredients, " "))
}
