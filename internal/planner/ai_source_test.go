package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"byteright/internal/errs"
)

type stubTextGen struct {
	reply  string
	err    error
	prompt string
}

func (s *stubTextGen) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.reply, s.err
}

const aiWeekReply = `{"plan":[
  {"day":"Monday","breakfast":"Porridge","lunch":"Leek Soup","dinner":"Veggie Chilli"},
  {"day":"Tuesday","breakfast":"Toast","lunch":"Pasta Salad","dinner":"Stir Fry"},
  {"day":"Wednesday","breakfast":"Porridge","lunch":"Wrap","dinner":"Curry"},
  {"day":"Thursday","breakfast":"Granola","lunch":"Soup","dinner":"Risotto"},
  {"day":"Friday","breakfast":"Toast","lunch":"Salad","dinner":"Pizza"},
  {"day":"Saturday","breakfast":"Pancakes","lunch":"Sandwich","dinner":"Tacos"},
  {"day":"Sunday","breakfast":"Porridge","lunch":"Leftovers","dinner":"Roast Veg"}
]}`

func TestAISourceGeneratePlan(t *testing.T) {
	gen := &stubTextGen{reply: aiWeekReply}
	src := NewAISource(gen)
	if src.Name() != "ai" {
		t.Errorf("Name() = %q, want ai", src.Name())
	}

	items, err := src.GeneratePlan(context.Background(), Request{
		WeeklyBudget: 49,
		Diets:        []string{"vegetarian"},
	})
	if err != nil {
		t.Fatalf("GeneratePlan() error = %v", err)
	}
	if len(items) != 21 {
		t.Fatalf("got %d items, want 21", len(items))
	}

	if !strings.Contains(gen.prompt, "vegetarian") {
		t.Error("prompt does not mention requested diet")
	}

	first := items[0]
	if first.DayOfWeek != 0 || first.MealType != MealBreakfast {
		t.Errorf("first item = day %d %s, want day 0 breakfast", first.DayOfWeek, first.MealType)
	}
	meal, ok := first.Ref.(CustomMeal)
	if !ok {
		t.Fatalf("item ref is %T, want CustomMeal", first.Ref)
	}
	if meal.Name != "Porridge" {
		t.Errorf("first breakfast = %q, want Porridge", meal.Name)
	}
}

func TestAISourceSkipsLunchOnTightBudget(t *testing.T) {
	src := NewAISource(&stubTextGen{reply: aiWeekReply})

	items, err := src.GeneratePlan(context.Background(), Request{WeeklyBudget: 21})
	if err != nil {
		t.Fatalf("GeneratePlan() error = %v", err)
	}
	if len(items) != 14 {
		t.Fatalf("got %d items, want 14", len(items))
	}
	for _, item := range items {
		if item.MealType == MealLunch {
			t.Errorf("tight budget plan has lunch on day %d", item.DayOfWeek)
		}
	}
}

func TestAISourceFailuresAreUnavailability(t *testing.T) {
	tests := []struct {
		name string
		gen  *stubTextGen
	}{
		{"model error", &stubTextGen{err: errors.New("quota exceeded")}},
		{"garbage reply", &stubTextGen{reply: "sorry, I cannot help"}},
		{"wrong day count", &stubTextGen{reply: `{"plan":[{"day":"Monday","breakfast":"Toast","lunch":"Soup","dinner":"Curry"}]}`}},
		{"unknown day", &stubTextGen{reply: strings.Replace(aiWeekReply, "Sunday", "Funday", 1)}},
		{"empty slot", &stubTextGen{reply: strings.Replace(aiWeekReply, `"Porridge"`, `""`, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewAISource(tt.gen)
			_, err := src.GeneratePlan(context.Background(), Request{WeeklyBudget: 49})
			if !errors.Is(err, errs.ErrExternalUnavailable) {
				t.Fatalf("GeneratePlan() error = %v, want ErrExternalUnavailable", err)
			}
		})
	}
}

func TestAISourceNilGenerator(t *testing.T) {
	src := NewAISource(nil)
	_, err := src.GeneratePlan(context.Background(), Request{WeeklyBudget: 49})
	if !errors.Is(err, errs.ErrExternalUnavailable) {
		t.Fatalf("GeneratePlan() error = %v, want ErrExternalUnavailable", err)
	}
}

func TestAISourceInvalidRequest(t *testing.T) {
	src := NewAISource(&stubTextGen{reply: aiWeekReply})
	_, err := src.GeneratePlan(context.Background(), Request{WeeklyBudget: 0})
	if !errs.IsValidation(err) {
		t.Fatalf("GeneratePlan() error = %v, want validation error", err)
	}
}
