// Package clipper imports recipes from web pages by reading their schema.org
// Recipe markup: JSON-LD first, itemprop microdata as a fallback.
package clipper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"byteright/internal/errs"
	"byteright/internal/recipe"
)

const fetchTimeout = 15 * time.Second

// Clipper fetches a page and extracts its recipe.
type Clipper struct {
	httpClient *http.Client
}

// NewClipper creates a new Clipper instance.
func NewClipper() *Clipper {
	return &Clipper{
		httpClient: &http.Client{Timeout: fetchTimeout},
	}
}

// ClipURL fetches the URL and extracts a recipe from its markup. Pages
// without recognizable recipe markup yield errs.ErrNotFound.
func (c *Clipper) ClipURL(ctx context.Context, pageURL string) (*recipe.Recipe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	rec := extractJSONLD(doc)
	if rec == nil {
		rec = extractMicrodata(doc)
	}
	if rec == nil {
		return nil, fmt.Errorf("no recipe markup at %s: %w", pageURL, errs.ErrNotFound)
	}

	rec.Source = recipe.SourceLocal
	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("extracted recipe is unusable: %w", err)
	}
	return rec, nil
}

// jsonLDRecipe mirrors the subset of schema.org/Recipe the importer reads.
// Fields that sites encode inconsistently use tolerant types.
type jsonLDRecipe struct {
	Type               anyStrings      `json:"@type"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Image              anyStrings      `json:"image"`
	RecipeIngredient   []string        `json:"recipeIngredient"`
	RecipeInstructions json.RawMessage `json:"recipeInstructions"`
	PrepTime           string          `json:"prepTime"`
	CookTime           string          `json:"cookTime"`
	RecipeYield        anyStrings      `json:"recipeYield"`
	Keywords           string          `json:"keywords"`
}

// anyStrings accepts a JSON string or array of strings.
type anyStrings []string

func (a *anyStrings) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = []string{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = list
		return nil
	}
	// Unrecognized shape (e.g. ImageObject): ignore rather than fail the clip.
	*a = nil
	return nil
}

func (a anyStrings) first() string {
	if len(a) == 0 {
		return ""
	}
	return a[0]
}

func (a anyStrings) contains(v string) bool {
	for _, s := range a {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// extractJSONLD scans <script type="application/ld+json"> blocks for a
// schema.org Recipe, unwrapping @graph containers where present.
func extractJSONLD(doc *goquery.Document) *recipe.Recipe {
	var found *recipe.Recipe

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := s.Text()

		for _, candidate := range jsonLDCandidates(raw) {
			var ld jsonLDRecipe
			if err := json.Unmarshal(candidate, &ld); err != nil {
				continue
			}
			if !ld.Type.contains("Recipe") || ld.Name == "" {
				continue
			}
			found = fromJSONLD(ld)
			return false
		}
		return true
	})

	return found
}

// jsonLDCandidates returns the objects a script block may hide a recipe in:
// the block itself, a top-level array, or an @graph list.
func jsonLDCandidates(raw string) []json.RawMessage {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	var list []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &list); err == nil {
		return list
	}

	var envelope struct {
		Graph []json.RawMessage `json:"@graph"`
	}
	if err := json.Unmarshal([]byte(trimmed), &envelope); err == nil && len(envelope.Graph) > 0 {
		return append([]json.RawMessage{json.RawMessage(trimmed)}, envelope.Graph...)
	}

	return []json.RawMessage{json.RawMessage(trimmed)}
}

func fromJSONLD(ld jsonLDRecipe) *recipe.Recipe {
	rec := &recipe.Recipe{
		Title:       strings.TrimSpace(ld.Name),
		Description: strings.TrimSpace(ld.Description),
		Ingredients: ld.RecipeIngredient,
		PrepTime:    parseISODuration(ld.PrepTime),
		CookTime:    parseISODuration(ld.CookTime),
		Servings:    parseServings(ld.RecipeYield.first()),
		ImageURL:    ld.Image.first(),
	}

	rec.Instructions = parseInstructions(ld.RecipeInstructions)

	if ld.Keywords != "" {
		for _, kw := range strings.Split(ld.Keywords, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				rec.Tags = append(rec.Tags, kw)
			}
		}
	}
	return rec
}

// parseInstructions accepts the three common encodings of
// recipeInstructions: a plain string, a list of strings, or a list of
// HowToStep objects.
func parseInstructions(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if single = strings.TrimSpace(single); single != "" {
			return []string{single}
		}
		return nil
	}

	var plain []string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return plain
	}

	var steps []struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &steps); err == nil {
		var out []string
		for _, step := range steps {
			if text := strings.TrimSpace(step.Text); text != "" {
				out = append(out, text)
			}
		}
		return out
	}

	return nil
}

// extractMicrodata falls back to itemprop attributes for pages that mark up
// recipes inline instead of via JSON-LD.
func extractMicrodata(doc *goquery.Document) *recipe.Recipe {
	scope := doc.Find(`[itemtype*="schema.org/Recipe"]`).First()
	if scope.Length() == 0 {
		return nil
	}

	rec := &recipe.Recipe{
		Title:       strings.TrimSpace(scope.Find(`[itemprop="name"]`).First().Text()),
		Description: strings.TrimSpace(scope.Find(`[itemprop="description"]`).First().Text()),
	}

	scope.Find(`[itemprop="recipeIngredient"], [itemprop="ingredients"]`).Each(func(_ int, s *goquery.Selection) {
		if line := strings.TrimSpace(s.Text()); line != "" {
			rec.Ingredients = append(rec.Ingredients, line)
		}
	})
	scope.Find(`[itemprop="recipeInstructions"]`).Each(func(_ int, s *goquery.Selection) {
		if step := strings.TrimSpace(s.Text()); step != "" {
			rec.Instructions = append(rec.Instructions, step)
		}
	})

	if v, ok := scope.Find(`[itemprop="prepTime"]`).First().Attr("content"); ok {
		rec.PrepTime = parseISODuration(v)
	}
	if v, ok := scope.Find(`[itemprop="cookTime"]`).First().Attr("content"); ok {
		rec.CookTime = parseISODuration(v)
	}
	rec.Servings = parseServings(scope.Find(`[itemprop="recipeYield"]`).First().Text())
	if src, ok := scope.Find(`[itemprop="image"]`).First().Attr("src"); ok {
		rec.ImageURL = src
	}

	if rec.Title == "" {
		return nil
	}
	return rec
}

var isoDuration = regexp.MustCompile(`(?i)^PT(?:(\d+)H)?(?:(\d+)M)?`)

// parseISODuration converts ISO-8601 durations like "PT1H30M" to minutes.
func parseISODuration(s string) int {
	m := isoDuration.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes
}

var leadingNumber = regexp.MustCompile(`\d+`)

// parseServings pulls the first number out of a yield like "Serves 4".
func parseServings(s string) int {
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0
	}
	n, _ := strconv.Atoi(m)
	return n
}
