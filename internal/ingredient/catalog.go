package ingredient

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Category is a shopping section an ingredient belongs to.
type Category string

const (
	CategoryFreshProduce  Category = "fresh_produce"
	CategoryFridgeFreezer Category = "fridge_freezer"
	CategoryStoreCupboard Category = "store_cupboard"
	CategoryOther         Category = "other"
)

// defaultPrice is the estimate used when no keyword matches.
const defaultPrice = 0.50

//go:embed catalog.json
var defaultCatalogJSON []byte

// PriceEntry pairs a keyword with a rough price estimate. The table is
// ordered: the first substring match wins.
type PriceEntry struct {
	Keyword string  `json:"keyword"`
	Price   float64 `json:"price"`
}

// Catalog holds the classification keyword lists and the price table. The
// lists are data, not logic: they can be replaced wholesale from a JSON file
// without touching the matching rules.
type Catalog struct {
	FreshProduce  []string     `json:"fresh_produce"`
	FridgeFreezer []string     `json:"fridge_freezer"`
	Prices        []PriceEntry `json:"prices"`
}

// DefaultCatalog returns the built-in catalog embedded in the binary.
func DefaultCatalog() *Catalog {
	var c Catalog
	// The embedded file is validated by tests; a decode failure here would be
	// a build defect, not a runtime condition.
	if err := json.Unmarshal(defaultCatalogJSON, &c); err != nil {
		panic(fmt.Sprintf("ingredient: embedded catalog is invalid: %v", err))
	}
	return &c
}

// LoadCatalog reads a replacement catalog from a JSON file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ingredient catalog: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse ingredient catalog %s: %w", path, err)
	}
	return &c, nil
}

// Categorize maps an ingredient name to a shopping section. Fresh-produce
// keywords are checked before fridge/freezer ones; anything unmatched goes to
// the store cupboard. Matching is substring-based on the lowercased name.
func (c *Catalog) Categorize(name string) Category {
	name = strings.ToLower(name)

	for _, kw := range c.FreshProduce {
		if strings.Contains(name, kw) {
			return CategoryFreshProduce
		}
	}
	for _, kw := range c.FridgeFreezer {
		if strings.Contains(name, kw) {
			return CategoryFridgeFreezer
		}
	}

	return CategoryStoreCupboard
}

// EstimatePrice returns a rough price for an ingredient: the first matching
// entry of the price table, or the default estimate.
func (c *Catalog) EstimatePrice(name string) float64 {
	name = strings.ToLower(name)

	for _, entry := range c.Prices {
		if strings.Contains(name, entry.Keyword) {
			return entry.Price
		}
	}

	return defaultPrice
}
