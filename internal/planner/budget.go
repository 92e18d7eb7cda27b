package planner

// lunchThreshold is the daily budget (currency units) above which a separate
// lunch slot is planned.
const lunchThreshold = 6.0

// daysPerWeek is the number of days a plan covers.
const daysPerWeek = 7

// Allocation splits one day's budget across meal slots.
type Allocation struct {
	Daily        float64
	Breakfast    float64
	Lunch        float64
	Dinner       float64
	IncludeLunch bool
}

// AllocateBudget derives per-meal daily targets from a weekly budget. Lunch
// is only planned when the daily budget clears the threshold; the split is
// 25/30/45 with lunch and 35/65 without.
func AllocateBudget(weekly float64) Allocation {
	daily := weekly / daysPerWeek

	if daily >= lunchThreshold {
		return Allocation{
			Daily:        daily,
			Breakfast:    daily * 0.25,
			Lunch:        daily * 0.30,
			Dinner:       daily * 0.45,
			IncludeLunch: true,
		}
	}

	return Allocation{
		Daily:     daily,
		Breakfast: daily * 0.35,
		Dinner:    daily * 0.65,
	}
}
