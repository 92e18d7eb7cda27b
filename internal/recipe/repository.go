package recipe

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"byteright/internal/errs"
	db "byteright/internal/recipe/db"
)

// Repository is a database-backed repository for recipes.
type Repository struct {
	queries *db.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: db.New(d),
		db:      d,
	}
}

// Save validates, normalizes and inserts a recipe, returning its new ID.
func (r *Repository) Save(ctx context.Context, rec *Recipe) (int64, error) {
	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return 0, err
	}

	params, err := insertParams(rec)
	if err != nil {
		return 0, err
	}

	id, err := r.queries.InsertRecipe(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe: %w", err)
	}
	rec.ID = id
	return id, nil
}

// CacheExternal stores an API-sourced recipe unless one with the same
// external ID is already cached. It returns the local ID either way.
func (r *Repository) CacheExternal(ctx context.Context, rec *Recipe) (int64, error) {
	if rec.ExternalID == 0 {
		return 0, errs.Validation("external_id", "required for cached API recipes")
	}
	rec.Source = SourceAPI

	existing, err := r.queries.GetRecipeByExternalID(ctx, rec.ExternalID)
	if err == nil {
		rec.ID = existing.ID
		return existing.ID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to look up cached recipe: %w", err)
	}

	return r.Save(ctx, rec)
}

// Get retrieves a recipe by its ID. A missing recipe yields errs.ErrNotFound.
func (r *Repository) Get(ctx context.Context, id int64) (*Recipe, error) {
	dbRec, err := r.queries.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("recipe %d: %w", id, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get recipe by ID: %w", err)
	}

	rec, err := fromRow(dbRec)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List retrieves the complete recipe catalog.
func (r *Repository) List(ctx context.Context) ([]Recipe, error) {
	dbRecipes, err := r.queries.ListAllRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]Recipe, 0, len(dbRecipes))
	for _, dbRec := range dbRecipes {
		rec, err := fromRow(dbRec)
		if err != nil {
			return nil, fmt.Errorf("recipe %d: %w", dbRec.ID, err)
		}
		recipes = append(recipes, *rec)
	}
	return recipes, nil
}

// Count returns the number of recipes in the catalog.
func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.queries.CountRecipes(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return int(count), nil
}

func insertParams(rec *Recipe) (db.InsertRecipeParams, error) {
	ingredients, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return db.InsertRecipeParams{}, fmt.Errorf("failed to marshal ingredients: %w", err)
	}
	instructions, err := json.Marshal(rec.Instructions)
	if err != nil {
		return db.InsertRecipeParams{}, fmt.Errorf("failed to marshal instructions: %w", err)
	}
	tags, err := json.Marshal(rec.Tags)
	if err != nil {
		return db.InsertRecipeParams{}, fmt.Errorf("failed to marshal tags: %w", err)
	}

	return db.InsertRecipeParams{
		Title:         rec.Title,
		Description:   rec.Description,
		Ingredients:   string(ingredients),
		Instructions:  string(instructions),
		PrepTime:      int64(rec.PrepTime),
		CookTime:      int64(rec.CookTime),
		Servings:      int64(rec.Servings),
		EstimatedCost: rec.EstimatedCost,
		Difficulty:    string(rec.Difficulty),
		ImageUrl:      rec.ImageURL,
		Tags:          string(tags),
		Source:        string(rec.Source),
		ExternalID:    rec.ExternalID,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

func fromRow(row db.Recipe) (*Recipe, error) {
	rec := &Recipe{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		PrepTime:      int(row.PrepTime),
		CookTime:      int(row.CookTime),
		Servings:      int(row.Servings),
		EstimatedCost: row.EstimatedCost,
		Difficulty:    Difficulty(row.Difficulty),
		ImageURL:      row.ImageUrl,
		Source:        Source(row.Source),
		ExternalID:    row.ExternalID,
	}

	if err := json.Unmarshal([]byte(row.Ingredients), &rec.Ingredients); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ingredients: %w", err)
	}
	if err := json.Unmarshal([]byte(row.Instructions), &rec.Instructions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal instructions: %w", err)
	}
	if err := json.Unmarshal([]byte(row.Tags), &rec.Tags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
	}
	return rec, nil
}
