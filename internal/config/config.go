package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultDatabasePath   = "data/byteright.db"
	defaultSpoonacularURL = "https://api.spoonacular.com"
	defaultWeeklyBudget   = 30.00
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath string

	// Spoonacular (optional; an empty key disables the remote source)
	SpoonacularAPIKey  string
	SpoonacularBaseURL string

	// Gemini (optional; an empty key disables the AI plan source)
	GeminiAPIKey string
	GeminiModel  string

	DefaultWeeklyBudget float64

	// Optional JSON file overriding the built-in ingredient catalog
	IngredientCatalogPath string

	LogLevel  string
	LogFormat string
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	cfg := &Config{
		DatabasePath:          envOr("BYTERIGHT_DB_PATH", defaultDatabasePath),
		SpoonacularAPIKey:     os.Getenv("SPOONACULAR_API_KEY"),
		SpoonacularBaseURL:    envOr("SPOONACULAR_BASE_URL", defaultSpoonacularURL),
		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		GeminiModel:           envOr("GEMINI_MODEL", "gemini-1.5-flash"),
		DefaultWeeklyBudget:   defaultWeeklyBudget,
		IngredientCatalogPath: os.Getenv("INGREDIENT_CATALOG_PATH"),
		LogLevel:              envOr("LOG_LEVEL", "info"),
		LogFormat:             envOr("LOG_FORMAT", "text"),
	}

	if raw := os.Getenv("DEFAULT_WEEKLY_BUDGET"); raw != "" {
		budget, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid DEFAULT_WEEKLY_BUDGET %q: %w", raw, err)
		}
		if budget <= 0 {
			return nil, fmt.Errorf("DEFAULT_WEEKLY_BUDGET must be positive, got %v", budget)
		}
		cfg.DefaultWeeklyBudget = budget
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
