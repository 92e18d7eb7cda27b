package recipe

import (
	"testing"

	"byteright/internal/errs"
)

func TestNormalize(t *testing.T) {
	r := Recipe{
		Title: "Test",
		Tags:  []string{"Vegetarian", "quick", "VEGETARIAN", " dinner ", ""},
	}
	r.Normalize()

	want := []string{"vegetarian", "quick", "dinner"}
	if len(r.Tags) != len(want) {
		t.Fatalf("Expected %d tags, got %v", len(want), r.Tags)
	}
	for i, tag := range want {
		if r.Tags[i] != tag {
			t.Errorf("Tag %d: expected %q, got %q", i, tag, r.Tags[i])
		}
	}
	if r.Difficulty != DifficultyEasy {
		t.Errorf("Expected default difficulty easy, got %q", r.Difficulty)
	}
	if r.Source != SourceLocal {
		t.Errorf("Expected default source local, got %q", r.Source)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		recipe Recipe
		ok     bool
	}{
		{"Valid", Recipe{Title: "Soup", PrepTime: 5, CookTime: 20, EstimatedCost: 2.50}, true},
		{"EmptyTitle", Recipe{Title: "  "}, false},
		{"NegativeCost", Recipe{Title: "Soup", EstimatedCost: -1}, false},
		{"NegativeTime", Recipe{Title: "Soup", PrepTime: -5}, false},
		{"NegativeServings", Recipe{Title: "Soup", Servings: -2}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.recipe.Validate()
			if tc.ok && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatal("Expected a validation error, got nil")
				}
				if !errs.IsValidation(err) {
					t.Errorf("Expected a ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestHasTag(t *testing.T) {
	r := Recipe{Tags: []string{"vegetarian", "dinner"}}
	if !r.HasTag("Vegetarian") {
		t.Error("Expected case-insensitive tag match")
	}
	if r.HasTag("vegan") {
		t.Error("Did not expect vegan tag")
	}
}
