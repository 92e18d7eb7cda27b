// Package user stores per-user planning preferences: budget, cooking time,
// diets and liked/disliked ingredients.
package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"byteright/internal/errs"
	userdb "byteright/internal/user/user_db"
)

// TimePrefs are the accepted cooking-time preference values.
var TimePrefs = []string{"under15", "under30", "under60", "any"}

// Preferences drive meal plan generation and recipe filtering for a user.
// Liked and Disliked hold normalized (trimmed, lowercased) ingredient names.
type Preferences struct {
	WeeklyBudget    float64
	CookingTimePref string
	Diets           []string
	Liked           []string
	Disliked        []string
}

// User is an account with its planning preferences.
type User struct {
	ID          int64
	Username    string
	Preferences Preferences
	CreatedAt   time.Time
}

// Validate rejects preference values the planner cannot work with.
func (p Preferences) Validate() error {
	if p.WeeklyBudget <= 0 {
		return errs.Validation("weekly_budget", "must be positive")
	}
	if p.CookingTimePref != "" && !validTimePref(p.CookingTimePref) {
		return errs.Validation("cooking_time_pref",
			fmt.Sprintf("must be one of %s", strings.Join(TimePrefs, ", ")))
	}
	return nil
}

func validTimePref(pref string) bool {
	for _, p := range TimePrefs {
		if pref == p {
			return true
		}
	}
	return false
}

// Repository is a database-backed repository for users and their preferences.
type Repository struct {
	queries *userdb.Queries
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{queries: userdb.New(d)}
}

// Ensure returns the user with the given username, creating one with the
// given default budget when none exists yet.
func (r *Repository) Ensure(ctx context.Context, username string, defaultBudget float64) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.Validation("username", "required")
	}

	row, err := r.queries.GetUserByUsername(ctx, username)
	if err == nil {
		return fromRow(row)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	id, err := r.queries.InsertUser(ctx, userdb.InsertUserParams{
		Username:           username,
		WeeklyBudget:       defaultBudget,
		CookingTimePref:    "any",
		DietaryPreferences: "[]",
		CreatedAt:          time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &User{
		ID:       id,
		Username: username,
		Preferences: Preferences{
			WeeklyBudget:    defaultBudget,
			CookingTimePref: "any",
		},
	}, nil
}

// Get loads a user by ID.
func (r *Repository) Get(ctx context.Context, id int64) (*User, error) {
	row, err := r.queries.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", id, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return fromRow(row)
}

// UpdatePreferences validates and stores a user's preferences.
func (r *Repository) UpdatePreferences(ctx context.Context, userID int64, prefs Preferences) error {
	prefs.Liked = normalizeList(prefs.Liked)
	prefs.Disliked = normalizeList(prefs.Disliked)
	prefs.Diets = normalizeList(prefs.Diets)
	if prefs.CookingTimePref == "" {
		prefs.CookingTimePref = "any"
	}
	if err := prefs.Validate(); err != nil {
		return err
	}
	if _, err := r.Get(ctx, userID); err != nil {
		return err
	}

	diets, err := json.Marshal(prefs.Diets)
	if err != nil {
		return fmt.Errorf("failed to marshal diets: %w", err)
	}

	err = r.queries.UpdateUserPreferences(ctx, userdb.UpdateUserPreferencesParams{
		WeeklyBudget:        prefs.WeeklyBudget,
		CookingTimePref:     prefs.CookingTimePref,
		DietaryPreferences:  string(diets),
		LikedIngredients:    strings.Join(prefs.Liked, ","),
		DislikedIngredients: strings.Join(prefs.Disliked, ","),
		ID:                  userID,
	})
	if err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	return nil
}

func fromRow(row userdb.User) (*User, error) {
	prefs := Preferences{
		WeeklyBudget:    row.WeeklyBudget,
		CookingTimePref: row.CookingTimePref,
		Liked:           splitList(row.LikedIngredients),
		Disliked:        splitList(row.DislikedIngredients),
	}
	if row.DietaryPreferences != "" {
		if err := json.Unmarshal([]byte(row.DietaryPreferences), &prefs.Diets); err != nil {
			return nil, fmt.Errorf("failed to unmarshal diets for user %d: %w", row.ID, err)
		}
	}

	return &User{
		ID:          row.ID,
		Username:    row.Username,
		Preferences: prefs,
		CreatedAt:   row.CreatedAt,
	}, nil
}

// splitList turns comma-separated storage into a normalized slice.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return normalizeList(strings.Split(s, ","))
}

func normalizeList(values []string) []string {
	var out []string
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
