package planner

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"strings"
	"text/template"

	"byteright/internal/errs"
	"byteright/internal/llm"
)

//go:embed ai_prompt.md
var aiPrompt string

var aiPromptTmpl = template.Must(
	template.New("MealPlan").Funcs(template.FuncMap{"join": strings.Join}).Parse(aiPrompt),
)

var dayIndex = map[string]int{
	"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3,
	"friday": 4, "saturday": 5, "sunday": 6,
}

// AISource asks a text-generation model for a weekly plan. Like the remote
// provider it is optional: every failure is reported as unavailability so the
// chain proceeds to local generation.
type AISource struct {
	textGen llm.TextGenerator
}

func NewAISource(textGen llm.TextGenerator) *AISource {
	return &AISource{textGen: textGen}
}

func (s *AISource) Name() string { return "ai" }

type aiDay struct {
	Day       string `json:"day"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

type aiPlan struct {
	Plan []aiDay `json:"plan"`
}

// GeneratePlan prompts the model and maps its JSON reply onto plan items as
// custom meals.
func (s *AISource) GeneratePlan(ctx context.Context, req Request) ([]Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.textGen == nil {
		return nil, errs.Unavailablef("no text generator configured")
	}

	alloc := AllocateBudget(req.WeeklyBudget)

	prompt, err := buildAIPrompt(req, alloc.IncludeLunch)
	if err != nil {
		return nil, errs.Unavailable(err)
	}

	reply, err := s.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, errs.Unavailable(err)
	}

	var parsed aiPlan
	if err := json.Unmarshal([]byte(reply), &parsed); err != nil {
		return nil, errs.Unavailablef("unparseable model reply: %v", err)
	}
	if len(parsed.Plan) != daysPerWeek {
		return nil, errs.Unavailablef("model returned %d days, want %d", len(parsed.Plan), daysPerWeek)
	}

	var items []Item
	for _, d := range parsed.Plan {
		day, ok := dayIndex[strings.ToLower(strings.TrimSpace(d.Day))]
		if !ok {
			return nil, errs.Unavailablef("model returned unknown day %q", d.Day)
		}

		if d.Breakfast == "" || d.Dinner == "" {
			return nil, errs.Unavailablef("model left a meal slot empty on %s", d.Day)
		}
		items = append(items, customItem(day, MealBreakfast, d.Breakfast))
		if alloc.IncludeLunch {
			if d.Lunch == "" {
				return nil, errs.Unavailablef("model left lunch empty on %s", d.Day)
			}
			items = append(items, customItem(day, MealLunch, d.Lunch))
		}
		items = append(items, customItem(day, MealDinner, d.Dinner))
	}
	return items, nil
}

func customItem(day int, meal MealType, name string) Item {
	return Item{
		DayOfWeek: day,
		MealType:  meal,
		Ref:       CustomMeal{Name: strings.TrimSpace(name)},
	}
}

func buildAIPrompt(req Request, includeLunch bool) (string, error) {
	data := struct {
		Request
		IncludeLunch bool
	}{Request: req, IncludeLunch: includeLunch}

	var buf bytes.Buffer
	if err := aiPromptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
