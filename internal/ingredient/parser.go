// Package ingredient turns free-text ingredient lines into structured data
// and classifies ingredient names for shopping.
package ingredient

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Parsed is the structured form of a free-text ingredient line. Quantity is
// kept as a string: an empty quantity means unspecified ("to taste").
type Parsed struct {
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Name     string `json:"name"`
}

// linePattern matches lines like "200g pasta", "2 eggs", "1 tbsp oil",
// "1/2 cup flour" or just "salt".
// Plural unit forms come before their singular prefix so that alternation
// matches the whole token ("cloves", not "clove" + leftover "s").
var linePattern = regexp.MustCompile(`(?i)^([\d/.]+)?\s*(g|kg|ml|l|tbsp|tsp|cups|cup|handful|pinch|cans|can|slices|slice|cloves|clove|packs|pack)?\s*(?:of\s+)?(.+)$`)

// Parse extracts quantity, unit and name from a raw ingredient line. It never
// fails: when nothing matches, the whole trimmed line becomes the name.
func Parse(raw string) Parsed {
	raw = strings.TrimSpace(raw)

	m := linePattern.FindStringSubmatch(raw)
	if m == nil {
		return Parsed{Name: raw}
	}

	return Parsed{
		Quantity: normalizeQuantity(strings.TrimSpace(m[1])),
		Unit:     strings.TrimSpace(m[2]),
		Name:     strings.TrimSpace(m[3]),
	}
}

// normalizeQuantity converts a fraction "a/b" into a decimal rounded to two
// places. A zero or unparseable denominator keeps the original string.
func normalizeQuantity(qty string) string {
	if !strings.Contains(qty, "/") {
		return qty
	}

	parts := strings.SplitN(qty, "/", 2)
	num, errN := strconv.ParseFloat(parts[0], 64)
	den, errD := strconv.ParseFloat(parts[1], 64)
	if errN != nil || errD != nil || den == 0 {
		return qty
	}

	rounded := math.Round(num/den*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
