package planner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"byteright/internal/errs"
	plandb "byteright/internal/planner/plan_db"
)

const weekStartLayout = "2006-01-02"

// Repository is a database-backed repository for meal plans.
type Repository struct {
	queries *plandb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: plandb.New(d),
		db:      d,
	}
}

// SavePlan stores a plan for its user and week, replacing any existing plan
// for the same (user, week start) pair. The delete and insert run in one
// transaction so a user never sees a half-replaced week.
func (r *Repository) SavePlan(ctx context.Context, plan *Plan) (int64, error) {
	if plan.UserID == 0 {
		return 0, errs.Validation("user_id", "required")
	}
	weekStart := MondayOf(plan.WeekStart).Format(weekStartLayout)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := r.queries.WithTx(tx)

	err = q.DeleteMealPlanByUserAndWeek(ctx, plandb.DeleteMealPlanByUserAndWeekParams{
		UserID:    plan.UserID,
		WeekStart: weekStart,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to replace existing plan: %w", err)
	}

	planID, err := q.InsertMealPlan(ctx, plandb.InsertMealPlanParams{
		UserID:             plan.UserID,
		WeekStart:          weekStart,
		BudgetTarget:       plan.BudgetTarget,
		TotalEstimatedCost: plan.TotalEstimatedCost,
		Source:             plan.Source,
		CreatedAt:          time.Now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert meal plan: %w", err)
	}

	for _, item := range plan.Items {
		params := plandb.InsertMealPlanItemParams{
			MealPlanID:    planID,
			DayOfWeek:     int64(item.DayOfWeek),
			MealType:      string(item.MealType),
			EstimatedCost: item.EstimatedCost,
		}
		switch ref := item.Ref.(type) {
		case RecipeRef:
			params.RecipeID = ref.RecipeID
		case CustomMeal:
			params.CustomName = ref.Name
			params.ExternalID = ref.ExternalID
		default:
			return 0, errs.Validation("items", "meal item has no recipe or custom meal")
		}
		if err := q.InsertMealPlanItem(ctx, params); err != nil {
			return 0, fmt.Errorf("failed to insert meal plan item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit plan: %w", err)
	}

	plan.ID = planID
	return planID, nil
}

// GetPlan loads a plan by ID for a user, including its items with recipe
// titles resolved from the catalog.
func (r *Repository) GetPlan(ctx context.Context, userID, planID int64) (*Plan, error) {
	row, err := r.queries.GetMealPlanByID(ctx, plandb.GetMealPlanByIDParams{ID: planID, UserID: userID})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("meal plan %d: %w", planID, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}
	return r.loadPlan(ctx, row)
}

// GetPlanForWeek loads the plan covering the week of the given date, if any.
func (r *Repository) GetPlanForWeek(ctx context.Context, userID int64, date time.Time) (*Plan, error) {
	weekStart := MondayOf(date).Format(weekStartLayout)
	row, err := r.queries.GetMealPlanByUserAndWeek(ctx, plandb.GetMealPlanByUserAndWeekParams{
		UserID:    userID,
		WeekStart: weekStart,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("meal plan for week %s: %w", weekStart, errs.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}
	return r.loadPlan(ctx, row)
}

// DeletePlan removes a plan owned by the user. Items go with it via cascade.
func (r *Repository) DeletePlan(ctx context.Context, userID, planID int64) error {
	if _, err := r.GetPlan(ctx, userID, planID); err != nil {
		return err
	}
	err := r.queries.DeleteMealPlan(ctx, plandb.DeleteMealPlanParams{ID: planID, UserID: userID})
	if err != nil {
		return fmt.Errorf("failed to delete meal plan: %w", err)
	}
	return nil
}

func (r *Repository) loadPlan(ctx context.Context, row plandb.MealPlan) (*Plan, error) {
	weekStart, err := time.ParseInLocation(weekStartLayout, row.WeekStart, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("failed to parse week start %q: %w", row.WeekStart, err)
	}

	itemRows, err := r.queries.ListMealPlanItems(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plan items: %w", err)
	}

	items := make([]Item, 0, len(itemRows))
	for _, ir := range itemRows {
		item := Item{
			ID:            ir.ID,
			DayOfWeek:     int(ir.DayOfWeek),
			MealType:      MealType(ir.MealType),
			EstimatedCost: ir.EstimatedCost,
		}
		if ir.RecipeID != 0 {
			item.Ref = RecipeRef{RecipeID: ir.RecipeID}
			if ir.RecipeTitle.Valid {
				item.RecipeTitle = ir.RecipeTitle.String
			}
			if ir.RecipeCost.Valid {
				item.EstimatedCost = ir.RecipeCost.Float64
			}
		} else {
			item.Ref = CustomMeal{Name: ir.CustomName, ExternalID: ir.ExternalID}
			item.RecipeTitle = ir.CustomName
		}
		items = append(items, item)
	}

	return &Plan{
		ID:                 row.ID,
		UserID:             row.UserID,
		WeekStart:          weekStart,
		BudgetTarget:       row.BudgetTarget,
		TotalEstimatedCost: row.TotalEstimatedCost,
		Items:              items,
		Source:             row.Source,
		CreatedAt:          row.CreatedAt,
	}, nil
}
